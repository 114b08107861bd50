// internal/service/user.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dangerclosesec/mubadara/internal/auth"
	"github.com/dangerclosesec/mubadara/internal/domain"
	"github.com/dangerclosesec/mubadara/internal/model"
	"github.com/dangerclosesec/mubadara/internal/repository"
	"github.com/dangerclosesec/mubadara/internal/workflow"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type UserService struct {
	repo           repository.UserRepositoryIface
	orgRepo        repository.OrganizationRepositoryIface
	passwordHasher *auth.PasswordHasher
	tokenManager   *auth.TokenManager
	relationships  Relationships
	logger         *slog.Logger
	validate       *validator.Validate
}

func NewUserService(
	repo repository.UserRepositoryIface,
	orgRepo repository.OrganizationRepositoryIface,
	passwordHasher *auth.PasswordHasher,
	tokenManager *auth.TokenManager,
	relationships Relationships,
	logger *slog.Logger,
) *UserService {
	if relationships == nil {
		relationships = auth.NoopRelationships{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &UserService{
		repo:           repo,
		orgRepo:        orgRepo,
		passwordHasher: passwordHasher,
		tokenManager:   tokenManager,
		relationships:  relationships,
		logger:         logger,
		validate:       newValidator(),
	}
}

type SignupInput struct {
	Email           string `json:"email" validate:"required,email"`
	Name            string `json:"name" validate:"required,max=200"`
	Phone           string `json:"phone" validate:"omitempty,max=32"`
	City            string `json:"city" validate:"omitempty,max=100"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
}

type SignupOutput struct {
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginOutput struct {
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}

// Signup creates an individual account and returns a session token. The
// account becomes an organization account once an organization it owns is
// approved.
func (s *UserService) Signup(ctx context.Context, input SignupInput) (*SignupOutput, error) {
	input.Name = strings.TrimSpace(input.Name)
	if err := validateStruct(s.validate, input); err != nil {
		var ve *ValidationError
		if errors.As(err, &ve) && ve.Field == "confirm_password" && ve.Tag == "eqfield" {
			return nil, domain.ErrPasswordsDoNotMatch
		}
		return nil, err
	}

	existing, err := s.repo.FindByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := s.passwordHasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &model.User{
		Email:        input.Email,
		Name:         input.Name,
		Phone:        input.Phone,
		City:         input.City,
		UserType:     model.UserTypeIndividual,
		PasswordHash: hash,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.tokenManager.Generate(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	s.logger.InfoContext(ctx, "user signed up", "user_id", user.ID)
	return &SignupOutput{User: user, Token: token}, nil
}

func (s *UserService) Login(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	if err := validateStruct(s.validate, input); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := s.passwordHasher.Verify(input.Password, user.PasswordHash); err != nil {
		s.logger.DebugContext(ctx, "login refused", "user_id", user.ID, "error", err)
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokenManager.Generate(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	return &LoginOutput{User: user, Token: token}, nil
}

func (s *UserService) Get(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return s.repo.FindByID(ctx, id)
}

// ResolveActor builds the request identity for userID. Only approved
// organizations the user owns or manages count as managed.
func (s *UserService) ResolveActor(ctx context.Context, userID uuid.UUID) (workflow.Actor, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return workflow.Actor{}, err
	}

	managed, err := s.orgRepo.ManagedApproved(ctx, user.ID)
	if err != nil {
		return workflow.Actor{}, fmt.Errorf("resolving managed organizations: %w", err)
	}

	return workflow.Actor{
		UserID:               user.ID,
		Admin:                user.IsAdmin,
		ManagedOrganizations: managed,
	}, nil
}

// GrantAdmin turns an existing account into a platform administrator.
func (s *UserService) GrantAdmin(ctx context.Context, email string) (*model.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if !user.IsAdmin {
		user.IsAdmin = true
		if err := s.repo.Update(ctx, user); err != nil {
			return nil, err
		}
	}

	if err := s.relationships.AdminGranted(ctx, user.ID); err != nil {
		return nil, fmt.Errorf("syncing admin relationship: %w", err)
	}

	s.logger.InfoContext(ctx, "admin granted", "user_id", user.ID)
	return user, nil
}

func (s *UserService) List(ctx context.Context, page repository.Page) ([]*model.User, int64, error) {
	return s.repo.FindAllPaginated(ctx, page)
}
