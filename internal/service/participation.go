// internal/service/participation.go
package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/dangerclosesec/mubadara/internal/domain"
	"github.com/dangerclosesec/mubadara/internal/model"
	"github.com/dangerclosesec/mubadara/internal/repository"
	"github.com/dangerclosesec/mubadara/internal/workflow"
	"github.com/google/uuid"
)

// DecisionMailer tells a volunteer about an accept or reject.
type DecisionMailer interface {
	SendDecision(ctx context.Context, p *model.Participant, initiative *model.Initiative) error
}

type ParticipationService struct {
	repo        repository.ParticipantRepositoryIface
	initiatives repository.InitiativeRepositoryIface
	mailer      DecisionMailer
	logger      *slog.Logger
}

func NewParticipationService(
	repo repository.ParticipantRepositoryIface,
	initiatives repository.InitiativeRepositoryIface,
	mailer DecisionMailer,
	logger *slog.Logger,
) *ParticipationService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ParticipationService{
		repo:        repo,
		initiatives: initiatives,
		mailer:      mailer,
		logger:      logger,
	}
}

type JoinInput struct {
	Message string `json:"message"`
}

// Join files a pending request to volunteer in a published initiative.
func (s *ParticipationService) Join(ctx context.Context, actor workflow.Actor, initiativeID uuid.UUID, input JoinInput) (*model.Participant, error) {
	if actor.UserID == uuid.Nil {
		return nil, unauthorized("sign in to volunteer")
	}

	initiative, err := s.initiatives.FindByID(ctx, initiativeID)
	if err != nil {
		return nil, err
	}
	if initiative.Status != workflow.InitiativePublished {
		return nil, domain.ErrInitiativeNotPublished
	}

	p := &model.Participant{
		InitiativeID: initiative.ID,
		UserID:       actor.UserID,
		Status:       model.ParticipantPending,
		Message:      strings.TrimSpace(input.Message),
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Accept takes a slot of the initiative's capacity for a pending request.
func (s *ParticipationService) Accept(ctx context.Context, actor workflow.Actor, participantID uuid.UUID) (*model.Participant, error) {
	return s.decide(ctx, actor, participantID, model.ParticipantPending, model.ParticipantAccepted)
}

func (s *ParticipationService) Reject(ctx context.Context, actor workflow.Actor, participantID uuid.UUID) (*model.Participant, error) {
	return s.decide(ctx, actor, participantID, model.ParticipantPending, model.ParticipantRejected)
}

// Remove drops an accepted volunteer and frees their slot.
func (s *ParticipationService) Remove(ctx context.Context, actor workflow.Actor, participantID uuid.UUID) (*model.Participant, error) {
	return s.decide(ctx, actor, participantID, model.ParticipantAccepted, model.ParticipantRejected)
}

// Leave withdraws the actor's own pending or accepted request.
func (s *ParticipationService) Leave(ctx context.Context, actor workflow.Actor, initiativeID uuid.UUID) (*model.Participant, error) {
	p, err := s.repo.FindByInitiativeAndUser(ctx, initiativeID, actor.UserID)
	if err != nil {
		return nil, err
	}
	if !slices.Contains([]model.ParticipantStatus{model.ParticipantPending, model.ParticipantAccepted}, p.Status) {
		return nil, fmt.Errorf("%w: request is already %s", domain.ErrParticipantState, p.Status)
	}
	return s.repo.Decide(ctx, p.ID, p.Status, model.ParticipantLeft, actor.UserID)
}

// List returns the requests of an initiative, optionally narrowed to one status.
func (s *ParticipationService) List(ctx context.Context, actor workflow.Actor, initiativeID uuid.UUID, status model.ParticipantStatus) ([]*model.Participant, error) {
	initiative, err := s.initiatives.FindByID(ctx, initiativeID)
	if err != nil {
		return nil, err
	}
	if !canManageInitiative(actor, initiative) {
		return nil, unauthorized("may not list participants of initiative %s", initiativeID)
	}
	return s.repo.ListByInitiative(ctx, initiative.ID, status)
}

func (s *ParticipationService) decide(ctx context.Context, actor workflow.Actor, participantID uuid.UUID, from, to model.ParticipantStatus) (*model.Participant, error) {
	p, err := s.repo.FindByID(ctx, participantID)
	if err != nil {
		return nil, err
	}

	initiative, err := s.initiatives.FindByID(ctx, p.InitiativeID)
	if err != nil {
		return nil, err
	}
	if !canManageInitiative(actor, initiative) {
		return nil, unauthorized("may not decide on participants of initiative %s", initiative.ID)
	}
	if to == model.ParticipantAccepted && initiative.Status != workflow.InitiativePublished {
		return nil, fmt.Errorf("%w: initiative %s is %s", domain.ErrInitiativeNotPublished, initiative.ID, initiative.Status)
	}

	updated, err := s.repo.Decide(ctx, p.ID, from, to, actor.UserID)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "participant decided",
		"participant_id", updated.ID,
		"initiative_id", initiative.ID,
		"from", from,
		"to", to,
		"actor", actor.UserID,
	)

	if s.mailer != nil && from == model.ParticipantPending {
		if err := s.mailer.SendDecision(context.WithoutCancel(ctx), updated, initiative); err != nil {
			s.logger.WarnContext(ctx, "sending participant decision", "participant_id", updated.ID, "error", err)
		}
	}

	return updated, nil
}
