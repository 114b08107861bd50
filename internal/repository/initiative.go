// internal/repository/initiative.go
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

type InitiativeRepositoryIface interface {
	Create(ctx context.Context, initiative *model.Initiative) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Initiative, error)
	List(ctx context.Context, filters workflow.Filters, page Page) ([]*model.Initiative, int64, error)
	UpdateDraft(ctx context.Context, initiative *model.Initiative) error
}

type InitiativeRepository struct {
	db *gorm.DB
}

func NewInitiativeRepository(db *gorm.DB) *InitiativeRepository {
	return &InitiativeRepository{db: db}
}

// Create stores a new draft. Counters always start at zero.
func (r *InitiativeRepository) Create(ctx context.Context, initiative *model.Initiative) error {
	initiative.Status = workflow.InitiativeDraft
	initiative.CurrentParticipants = 0
	initiative.AttachmentCount = 0
	if err := r.db.WithContext(ctx).Create(initiative).Error; err != nil {
		return translateError("creating initiative", err, domain.ErrInitiativeNotFound)
	}
	return nil
}

func (r *InitiativeRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Initiative, error) {
	var initiative model.Initiative
	if err := r.db.WithContext(ctx).First(&initiative, "id = ?", id).Error; err != nil {
		return nil, translateError("finding initiative", err, domain.ErrInitiativeNotFound)
	}
	return &initiative, nil
}

func (r *InitiativeRepository) List(ctx context.Context, filters workflow.Filters, page Page) ([]*model.Initiative, int64, error) {
	page = page.Normalize()

	q, err := workflow.BuildFilterPredicate(filters).Apply(r.db.WithContext(ctx).Model(&model.Initiative{}), model.InitiativeColumns)
	if err != nil {
		return nil, 0, err
	}
	q = q.Session(&gorm.Session{})

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return nil, 0, translateError("counting initiatives", err, domain.ErrInitiativeNotFound)
	}

	var initiatives []*model.Initiative
	if err := q.Order("initiatives.created_at DESC").Offset(page.Offset).Limit(page.Limit).Find(&initiatives).Error; err != nil {
		return nil, 0, translateError("listing initiatives", err, domain.ErrInitiativeNotFound)
	}

	return initiatives, count, nil
}

// UpdateDraft saves the editable fields of an initiative that is still a
// draft. Status and counters are never written here.
func (r *InitiativeRepository) UpdateDraft(ctx context.Context, initiative *model.Initiative) error {
	res := r.db.WithContext(ctx).
		Model(&model.Initiative{}).
		Where("id = ? AND status = ?", initiative.ID, workflow.InitiativeDraft).
		Select("title", "description", "category", "city", "location", "start_date", "end_date", "max_participants").
		Updates(initiative)
	if res.Error != nil {
		return translateError("updating initiative", res.Error, domain.ErrInitiativeNotFound)
	}
	if res.RowsAffected == 0 {
		if _, err := r.FindByID(ctx, initiative.ID); err != nil {
			return err
		}
		return fmt.Errorf("%w: only drafts can be edited", domain.ErrConflict)
	}
	return nil
}
