// internal/repository/moderation_store.go
package repository

import (
	"context"
	"fmt"

	"github.com/dangerclosesec/mubadara/internal/domain"
	"github.com/dangerclosesec/mubadara/internal/model"
	"github.com/dangerclosesec/mubadara/internal/workflow"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// moderatedTable binds a workflow kind to its gorm model.
type moderatedTable struct {
	newModel func() workflow.Subject
	notFound error
	// columns returns the kind-specific columns a transition writes besides
	// status and updated_at.
	columns func(p workflow.Patch) map[string]any
}

// ModerationStore is the gorm-backed moderation.EntityStore. Every status
// write is a compare-and-swap on (id, status) and records a StatusChange in
// the same transaction.
type ModerationStore struct {
	db     *gorm.DB
	tables map[workflow.Kind]moderatedTable
}

func NewModerationStore(db *gorm.DB) *ModerationStore {
	return &ModerationStore{
		db: db,
		tables: map[workflow.Kind]moderatedTable{
			workflow.KindOrganization: {
				newModel: func() workflow.Subject { return &model.Organization{} },
				notFound: domain.ErrOrganizationNotFound,
				columns: func(p workflow.Patch) map[string]any {
					cols := map[string]any{
						"reviewed_by_id": p.ActorID,
						"reviewed_at":    p.UpdatedAt,
					}
					if p.Status == workflow.OrganizationRejected {
						cols["rejection_reason"] = p.Reason
					}
					return cols
				},
			},
			workflow.KindInitiative: {
				newModel: func() workflow.Subject { return &model.Initiative{} },
				notFound: domain.ErrInitiativeNotFound,
				columns: func(p workflow.Patch) map[string]any {
					cols := map[string]any{}
					switch p.Status {
					case workflow.InitiativePublished:
						cols["published_at"] = p.UpdatedAt
					case workflow.InitiativeCancelled:
						cols["cancellation_reason"] = p.Reason
					}
					return cols
				},
			},
		},
	}
}

func (s *ModerationStore) table(kind workflow.Kind) (moderatedTable, error) {
	t, ok := s.tables[kind]
	if !ok {
		return t, fmt.Errorf("%w: unknown entity kind %q", domain.ErrInvalidInput, kind)
	}
	return t, nil
}

func (s *ModerationStore) Get(ctx context.Context, kind workflow.Kind, id uuid.UUID) (workflow.Subject, error) {
	t, err := s.table(kind)
	if err != nil {
		return nil, err
	}
	m := t.newModel()
	if err := s.db.WithContext(ctx).First(m, "id = ?", id).Error; err != nil {
		return nil, translateError(fmt.Sprintf("finding %s", kind), err, t.notFound)
	}
	return m, nil
}

func (s *ModerationStore) ConditionalUpdate(ctx context.Context, kind workflow.Kind, id uuid.UUID, expected workflow.Status, patch workflow.Patch) (workflow.Subject, error) {
	t, err := s.table(kind)
	if err != nil {
		return nil, err
	}

	cols := t.columns(patch)
	cols["status"] = patch.Status
	cols["updated_at"] = patch.UpdatedAt

	updated := t.newModel()
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(t.newModel()).
			Where("id = ? AND status = ?", id, expected).
			Updates(cols)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			var count int64
			if err := tx.Model(t.newModel()).Where("id = ?", id).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return t.notFound
			}
			return fmt.Errorf("%w: %s %s is no longer %s", domain.ErrConflict, kind, id, expected)
		}

		change := &model.StatusChange{
			EntityKind: kind,
			EntityID:   id,
			FromStatus: expected,
			ToStatus:   patch.Status,
			ActorID:    patch.ActorID,
			Reason:     patch.Reason,
			CreatedAt:  patch.UpdatedAt,
		}
		if patch.ActorRole != "" {
			change.Metadata = model.JSONMap{"actor_role": string(patch.ActorRole)}
		}
		if err := tx.Create(change).Error; err != nil {
			return fmt.Errorf("recording status change: %w", err)
		}

		return tx.First(updated, "id = ?", id).Error
	})
	if err != nil {
		return nil, translateError(fmt.Sprintf("updating %s status", kind), err, t.notFound)
	}
	return updated, nil
}

// History returns the recorded transitions of one entity, oldest first.
func (s *ModerationStore) History(ctx context.Context, kind workflow.Kind, id uuid.UUID) ([]model.StatusChange, error) {
	var changes []model.StatusChange
	err := s.db.WithContext(ctx).
		Where("entity_kind = ? AND entity_id = ?", kind, id).
		Order("created_at ASC").
		Find(&changes).Error
	if err != nil {
		return nil, translateError("listing status changes", err, domain.ErrNotFound)
	}
	return changes, nil
}
