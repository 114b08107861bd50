// internal/service/organization.go
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dangerclosesec/mubadara/internal/auth"
	"github.com/dangerclosesec/mubadara/internal/domain"
	"github.com/dangerclosesec/mubadara/internal/model"
	"github.com/dangerclosesec/mubadara/internal/moderation"
	"github.com/dangerclosesec/mubadara/internal/repository"
	"github.com/dangerclosesec/mubadara/internal/workflow"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type OrganizationService struct {
	repo          repository.OrganizationRepositoryIface
	users         repository.UserRepositoryIface
	moderation    Transitioner
	history       HistoryReader
	relationships Relationships
	logger        *slog.Logger
	validate      *validator.Validate
}

func NewOrganizationService(
	repo repository.OrganizationRepositoryIface,
	users repository.UserRepositoryIface,
	moderation Transitioner,
	history HistoryReader,
	relationships Relationships,
	logger *slog.Logger,
) *OrganizationService {
	if relationships == nil {
		relationships = auth.NoopRelationships{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &OrganizationService{
		repo:          repo,
		users:         users,
		moderation:    moderation,
		history:       history,
		relationships: relationships,
		logger:        logger,
		validate:      newValidator(),
	}
}

type CreateOrganizationInput struct {
	Name          string `json:"name" validate:"required,max=200"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone" validate:"omitempty,max=32"`
	City          string `json:"city" validate:"required,max=100"`
	Category      string `json:"category" validate:"omitempty,max=100"`
	Description   string `json:"description" validate:"omitempty,max=5000"`
	LicenseNumber string `json:"license_number" validate:"omitempty,max=64"`
}

type AddMemberInput struct {
	Email string                 `json:"email" validate:"required,email"`
	Role  model.OrganizationRole `json:"role" validate:"required,oneof=manager"`
}

// Create registers an organization for review. The actor becomes its owner.
func (s *OrganizationService) Create(ctx context.Context, actor workflow.Actor, input CreateOrganizationInput) (*model.Organization, error) {
	if actor.UserID == uuid.Nil {
		return nil, unauthorized("sign in to register an organization")
	}

	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Phone = strings.TrimSpace(input.Phone)
	input.City = strings.TrimSpace(input.City)
	input.Category = strings.TrimSpace(input.Category)
	if err := validateStruct(s.validate, input); err != nil {
		return nil, err
	}

	org := &model.Organization{
		Name:          input.Name,
		Email:         input.Email,
		Phone:         input.Phone,
		City:          input.City,
		Category:      input.Category,
		Description:   input.Description,
		LicenseNumber: input.LicenseNumber,
		OwnerID:       actor.UserID,
	}
	if err := s.repo.Create(ctx, org); err != nil {
		return nil, err
	}

	if err := s.relationships.OrganizationCreated(ctx, org); err != nil {
		s.logger.WarnContext(ctx, "syncing organization relationships", "organization_id", org.ID, "error", err)
	}

	s.logger.InfoContext(ctx, "organization registered", "organization_id", org.ID, "owner_id", org.OwnerID)
	return org, nil
}

// Get returns an approved organization to anyone, and any organization to
// its members and admins.
func (s *OrganizationService) Get(ctx context.Context, actor workflow.Actor, id uuid.UUID) (*model.Organization, error) {
	org, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if org.Status == workflow.OrganizationApproved || actor.Admin || org.OwnerID == actor.UserID {
		return org, nil
	}

	member, err := s.isMember(ctx, org.ID, actor.UserID)
	if err != nil {
		return nil, err
	}
	if !member {
		return nil, domain.ErrOrganizationNotFound
	}
	return org, nil
}

// List is the admin review listing.
func (s *OrganizationService) List(ctx context.Context, actor workflow.Actor, filters workflow.Filters, page repository.Page) ([]*model.Organization, int64, error) {
	if !actor.Admin {
		return nil, 0, unauthorized("only admins can list organizations")
	}
	return s.repo.List(ctx, filters, page)
}

// Mine returns every organization the actor belongs to, whatever its status.
func (s *OrganizationService) Mine(ctx context.Context, actor workflow.Actor) ([]model.Organization, error) {
	return s.repo.FindByUser(ctx, actor.UserID)
}

// AddMember lets the owner of an organization appoint another user as manager.
func (s *OrganizationService) AddMember(ctx context.Context, actor workflow.Actor, orgID uuid.UUID, input AddMemberInput) (*model.OrganizationUser, error) {
	if err := validateStruct(s.validate, input); err != nil {
		return nil, err
	}

	org, err := s.repo.FindByID(ctx, orgID)
	if err != nil {
		return nil, err
	}
	if !actor.Admin && org.OwnerID != actor.UserID {
		return nil, unauthorized("only the owner can add members")
	}

	user, err := s.users.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}

	if err := s.repo.AddMember(ctx, org.ID, user.ID, input.Role); err != nil {
		return nil, err
	}

	if err := s.relationships.MemberAdded(ctx, org.ID, user.ID, input.Role); err != nil {
		s.logger.WarnContext(ctx, "syncing member relationship", "organization_id", org.ID, "user_id", user.ID, "error", err)
	}

	return &model.OrganizationUser{OrganizationID: org.ID, UserID: user.ID, Role: input.Role}, nil
}

func (s *OrganizationService) Members(ctx context.Context, actor workflow.Actor, orgID uuid.UUID) ([]*model.OrganizationUser, error) {
	org, err := s.Get(ctx, actor, orgID)
	if err != nil {
		return nil, err
	}
	return s.repo.FindOrganizationUsers(ctx, org.ID)
}

func (s *OrganizationService) Approve(ctx context.Context, actor workflow.Actor, id uuid.UUID) (*model.Organization, error) {
	return transitionAs[*model.Organization](ctx, s.moderation, workflow.KindOrganization, id, workflow.OrganizationApproved, actor, "")
}

func (s *OrganizationService) Reject(ctx context.Context, actor workflow.Actor, id uuid.UUID, reason string) (*model.Organization, error) {
	return transitionAs[*model.Organization](ctx, s.moderation, workflow.KindOrganization, id, workflow.OrganizationRejected, actor, reason)
}

func (s *OrganizationService) AvailableTransitions(ctx context.Context, actor workflow.Actor, id uuid.UUID) ([]workflow.Status, error) {
	return s.moderation.AvailableTransitions(ctx, workflow.KindOrganization, id, actor)
}

// History is visible to admins and the owner.
func (s *OrganizationService) History(ctx context.Context, actor workflow.Actor, id uuid.UUID) ([]model.StatusChange, error) {
	org, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.Admin && org.OwnerID != actor.UserID {
		return nil, unauthorized("history is visible to the owner and admins")
	}
	return s.history.History(ctx, workflow.KindOrganization, id)
}

// OwnerTypeHook marks the owner of an approved organization as an
// organization account.
func (s *OrganizationService) OwnerTypeHook() moderation.Hook {
	return func(ctx context.Context, e moderation.Event) error {
		if e.Kind != workflow.KindOrganization || e.To != workflow.OrganizationApproved {
			return nil
		}
		if err := s.users.SetUserType(ctx, e.Subject.OwnerRef(), model.UserTypeOrganization); err != nil {
			return fmt.Errorf("promoting organization owner: %w", err)
		}
		return nil
	}
}

func (s *OrganizationService) isMember(ctx context.Context, orgID, userID uuid.UUID) (bool, error) {
	if userID == uuid.Nil {
		return false, nil
	}
	members, err := s.repo.FindOrganizationUsers(ctx, orgID)
	if err != nil {
		return false, err
	}
	for _, m := range members {
		if m.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}
