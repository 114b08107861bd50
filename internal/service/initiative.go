// internal/service/initiative.go
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dangerclosesec/mubadara/internal/auth"
	"github.com/dangerclosesec/mubadara/internal/domain"
	"github.com/dangerclosesec/mubadara/internal/model"
	"github.com/dangerclosesec/mubadara/internal/repository"
	"github.com/dangerclosesec/mubadara/internal/workflow"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type InitiativeService struct {
	repo          repository.InitiativeRepositoryIface
	orgs          repository.OrganizationRepositoryIface
	moderation    Transitioner
	history       HistoryReader
	relationships Relationships
	logger        *slog.Logger
	validate      *validator.Validate
}

func NewInitiativeService(
	repo repository.InitiativeRepositoryIface,
	orgs repository.OrganizationRepositoryIface,
	moderation Transitioner,
	history HistoryReader,
	relationships Relationships,
	logger *slog.Logger,
) *InitiativeService {
	if relationships == nil {
		relationships = auth.NoopRelationships{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &InitiativeService{
		repo:          repo,
		orgs:          orgs,
		moderation:    moderation,
		history:       history,
		relationships: relationships,
		logger:        logger,
		validate:      newValidator(),
	}
}

type InitiativeInput struct {
	Title           string     `json:"title" validate:"required,max=200"`
	Description     string     `json:"description" validate:"omitempty,max=5000"`
	Category        string     `json:"category" validate:"required,max=100"`
	City            string     `json:"city" validate:"required,max=100"`
	Location        string     `json:"location" validate:"omitempty,max=500"`
	StartDate       *time.Time `json:"start_date"`
	EndDate         *time.Time `json:"end_date"`
	MaxParticipants *int       `json:"max_participants" validate:"omitempty,min=1"`
	// OrganizationID runs the initiative on behalf of an organization the
	// actor manages. Ignored on update.
	OrganizationID *uuid.UUID `json:"organization_id"`
}

func (s *InitiativeService) validateInput(input *InitiativeInput) error {
	input.Title = strings.TrimSpace(input.Title)
	input.Category = strings.TrimSpace(input.Category)
	input.City = strings.TrimSpace(input.City)
	if err := validateStruct(s.validate, input); err != nil {
		return err
	}
	if input.StartDate != nil && input.EndDate != nil && input.EndDate.Before(*input.StartDate) {
		return &ValidationError{Field: "end_date", Tag: "gtefield"}
	}
	return nil
}

// Create stores a draft. Individual organizers own their initiatives; an
// initiative on behalf of an organization requires the actor to manage it
// while it is approved.
func (s *InitiativeService) Create(ctx context.Context, actor workflow.Actor, input InitiativeInput) (*model.Initiative, error) {
	if actor.UserID == uuid.Nil {
		return nil, unauthorized("sign in to create an initiative")
	}
	if err := s.validateInput(&input); err != nil {
		return nil, err
	}

	initiative := &model.Initiative{
		Title:           input.Title,
		Description:     input.Description,
		Category:        input.Category,
		City:            input.City,
		Location:        input.Location,
		StartDate:       input.StartDate,
		EndDate:         input.EndDate,
		MaxParticipants: input.MaxParticipants,
		OwnerID:         actor.UserID,
		OrganizerType:   model.OrganizerIndividual,
	}

	if input.OrganizationID != nil {
		org, err := s.orgs.FindByID(ctx, *input.OrganizationID)
		if err != nil {
			return nil, err
		}
		if org.Status != workflow.OrganizationApproved {
			return nil, domain.ErrOrganizationInactive
		}
		if !actor.Admin && !actor.Manages(org.ID) {
			return nil, unauthorized("not a manager of organization %s", org.ID)
		}
		initiative.OrganizationID = &org.ID
		initiative.OrganizerType = model.OrganizerOrganization
	}

	if err := s.repo.Create(ctx, initiative); err != nil {
		return nil, err
	}

	if err := s.relationships.InitiativeCreated(ctx, initiative); err != nil {
		s.logger.WarnContext(ctx, "syncing initiative relationships", "initiative_id", initiative.ID, "error", err)
	}

	s.logger.InfoContext(ctx, "initiative drafted", "initiative_id", initiative.ID, "owner_id", initiative.OwnerID)
	return initiative, nil
}

// Update edits a draft.
func (s *InitiativeService) Update(ctx context.Context, actor workflow.Actor, id uuid.UUID, input InitiativeInput) (*model.Initiative, error) {
	if err := s.validateInput(&input); err != nil {
		return nil, err
	}

	initiative, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canManageInitiative(actor, initiative) {
		return nil, unauthorized("may not edit initiative %s", id)
	}
	if initiative.Status != workflow.InitiativeDraft {
		return nil, fmt.Errorf("%w: only drafts can be edited", domain.ErrConflict)
	}

	initiative.Title = input.Title
	initiative.Description = input.Description
	initiative.Category = input.Category
	initiative.City = input.City
	initiative.Location = input.Location
	initiative.StartDate = input.StartDate
	initiative.EndDate = input.EndDate
	initiative.MaxParticipants = input.MaxParticipants

	if err := s.repo.UpdateDraft(ctx, initiative); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

// Get returns a published initiative to anyone and any initiative to the
// people who run it.
func (s *InitiativeService) Get(ctx context.Context, actor workflow.Actor, id uuid.UUID) (*model.Initiative, error) {
	initiative, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if initiative.Status != workflow.InitiativePublished && !canManageInitiative(actor, initiative) {
		return nil, domain.ErrInitiativeNotFound
	}
	return initiative, nil
}

// ListPublic lists published initiatives only, whatever status was asked for.
func (s *InitiativeService) ListPublic(ctx context.Context, filters workflow.Filters, page repository.Page) ([]*model.Initiative, int64, error) {
	filters.Status = workflow.InitiativePublished
	return s.repo.List(ctx, filters, page)
}

func (s *InitiativeService) ListAdmin(ctx context.Context, actor workflow.Actor, filters workflow.Filters, page repository.Page) ([]*model.Initiative, int64, error) {
	if !actor.Admin {
		return nil, 0, unauthorized("only admins can list every initiative")
	}
	return s.repo.List(ctx, filters, page)
}

func (s *InitiativeService) Publish(ctx context.Context, actor workflow.Actor, id uuid.UUID) (*model.Initiative, error) {
	return transitionAs[*model.Initiative](ctx, s.moderation, workflow.KindInitiative, id, workflow.InitiativePublished, actor, "")
}

func (s *InitiativeService) Cancel(ctx context.Context, actor workflow.Actor, id uuid.UUID, reason string) (*model.Initiative, error) {
	return transitionAs[*model.Initiative](ctx, s.moderation, workflow.KindInitiative, id, workflow.InitiativeCancelled, actor, reason)
}

func (s *InitiativeService) AvailableTransitions(ctx context.Context, actor workflow.Actor, id uuid.UUID) ([]workflow.Status, error) {
	return s.moderation.AvailableTransitions(ctx, workflow.KindInitiative, id, actor)
}

func (s *InitiativeService) History(ctx context.Context, actor workflow.Actor, id uuid.UUID) ([]model.StatusChange, error) {
	initiative, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canManageInitiative(actor, initiative) {
		return nil, unauthorized("may not read history of initiative %s", id)
	}
	return s.history.History(ctx, workflow.KindInitiative, id)
}
