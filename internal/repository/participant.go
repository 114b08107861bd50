// internal/repository/participant.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dangerclosesec/mubadara/internal/domain"
	"github.com/dangerclosesec/mubadara/internal/metrics"
	"github.com/dangerclosesec/mubadara/internal/model"
	"github.com/dangerclosesec/mubadara/internal/workflow"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ParticipantRepositoryIface interface {
	Create(ctx context.Context, p *model.Participant) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Participant, error)
	FindByInitiativeAndUser(ctx context.Context, initiativeID, userID uuid.UUID) (*model.Participant, error)
	ListByInitiative(ctx context.Context, initiativeID uuid.UUID, status model.ParticipantStatus) ([]*model.Participant, error)
	Decide(ctx context.Context, id uuid.UUID, from, to model.ParticipantStatus, actorID uuid.UUID) (*model.Participant, error)
}

// ParticipantRepository keeps participant rows and the initiative's
// current_participants counter consistent: a status change that takes or
// gives back a slot commits together with the counter update.
type ParticipantRepository struct {
	db      *gorm.DB
	metrics *metrics.Registry
	now     func() time.Time
}

func NewParticipantRepository(db *gorm.DB, reg *metrics.Registry) *ParticipantRepository {
	return &ParticipantRepository{db: db, metrics: reg, now: time.Now}
}

func (r *ParticipantRepository) Create(ctx context.Context, p *model.Participant) error {
	p.Status = model.ParticipantPending
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyParticipant
		}
		return translateError("creating participant", err, domain.ErrParticipantNotFound)
	}
	return nil
}

func (r *ParticipantRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Participant, error) {
	var p model.Participant
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, translateError("finding participant", err, domain.ErrParticipantNotFound)
	}
	return &p, nil
}

func (r *ParticipantRepository) FindByInitiativeAndUser(ctx context.Context, initiativeID, userID uuid.UUID) (*model.Participant, error) {
	var p model.Participant
	err := r.db.WithContext(ctx).
		Where("initiative_id = ? AND user_id = ?", initiativeID, userID).
		First(&p).Error
	if err != nil {
		return nil, translateError("finding participant", err, domain.ErrParticipantNotFound)
	}
	return &p, nil
}

// ListByInitiative lists participants of an initiative, optionally narrowed
// to one status.
func (r *ParticipantRepository) ListByInitiative(ctx context.Context, initiativeID uuid.UUID, status model.ParticipantStatus) ([]*model.Participant, error) {
	q := r.db.WithContext(ctx).Where("initiative_id = ?", initiativeID)
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var participants []*model.Participant
	if err := q.Order("created_at ASC").Find(&participants).Error; err != nil {
		return nil, translateError("listing participants", err, domain.ErrParticipantNotFound)
	}
	return participants, nil
}

// Decide moves a participant from one status to another with a
// compare-and-swap on the current status. Entering accepted reserves a slot
// and leaving accepted releases one, in the same transaction.
func (r *ParticipantRepository) Decide(ctx context.Context, id uuid.UUID, from, to model.ParticipantStatus, actorID uuid.UUID) (*model.Participant, error) {
	now := r.now().UTC()
	var out model.Participant

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&out, "id = ?", id).Error; err != nil {
			return err
		}

		res := tx.Model(&model.Participant{}).
			Where("id = ? AND status = ?", id, from).
			Updates(map[string]any{
				"status":        to,
				"decided_by_id": actorID,
				"decided_at":    now,
				"updated_at":    now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: participant is %s, expected %s", domain.ErrParticipantState, out.Status, from)
		}

		delta := 0
		switch {
		case from != model.ParticipantAccepted && to == model.ParticipantAccepted:
			delta = 1
		case from == model.ParticipantAccepted && to != model.ParticipantAccepted:
			delta = -1
		}
		if delta > 0 {
			var initiative model.Initiative
			if err := tx.Select("id", "status").First(&initiative, "id = ?", out.InitiativeID).Error; err != nil {
				return err
			}
			if initiative.Status != workflow.InitiativePublished {
				return fmt.Errorf("%w: initiative %s is %s", domain.ErrInitiativeNotPublished, initiative.ID, initiative.Status)
			}
		}
		if delta != 0 {
			if _, err := reserve(tx, ParticipantsCounter(out.InitiativeID), delta); err != nil {
				return err
			}
		}

		return tx.First(&out, "id = ?", id).Error
	})
	if err != nil {
		if errors.Is(err, domain.ErrCapacityExceeded) {
			r.metrics.CapacityRejected(ParticipantsCounter(out.InitiativeID).Name)
		}
		return nil, translateError("deciding participant", err, domain.ErrParticipantNotFound)
	}
	return &out, nil
}
