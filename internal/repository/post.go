// internal/repository/post.go
package repository

import (
	"context"

	"github.com/dangerclosesec/mubadara/internal/domain"
	"github.com/dangerclosesec/mubadara/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostRepositoryIface interface {
	Create(ctx context.Context, post *model.Post) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Post, error)
	ListByInitiative(ctx context.Context, initiativeID uuid.UUID, page Page) ([]*model.Post, int64, error)
	AddAttachments(ctx context.Context, attachments []*model.PostAttachment) error
	FindAttachment(ctx context.Context, id uuid.UUID) (*model.PostAttachment, error)
	DeleteAttachment(ctx context.Context, attachment *model.PostAttachment) error
	Delete(ctx context.Context, post *model.Post) error
}

type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) Create(ctx context.Context, post *model.Post) error {
	if err := r.db.WithContext(ctx).Omit("Attachments").Create(post).Error; err != nil {
		return translateError("creating post", err, domain.ErrPostNotFound)
	}
	return nil
}

func (r *PostRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Post, error) {
	var post model.Post
	err := r.db.WithContext(ctx).
		Preload("Attachments", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		First(&post, "id = ?", id).Error
	if err != nil {
		return nil, translateError("finding post", err, domain.ErrPostNotFound)
	}
	return &post, nil
}

func (r *PostRepository) ListByInitiative(ctx context.Context, initiativeID uuid.UUID, page Page) ([]*model.Post, int64, error) {
	page = page.Normalize()
	q := r.db.WithContext(ctx).Model(&model.Post{}).Where("initiative_id = ?", initiativeID).Session(&gorm.Session{})

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return nil, 0, translateError("counting posts", err, domain.ErrPostNotFound)
	}

	var posts []*model.Post
	err := q.Preload("Attachments", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		Order("created_at DESC").
		Offset(page.Offset).
		Limit(page.Limit).
		Find(&posts).Error
	if err != nil {
		return nil, 0, translateError("listing posts", err, domain.ErrPostNotFound)
	}
	return posts, count, nil
}

// AddAttachments inserts attachment rows whose slots were already reserved
// on the initiative's attachment counter.
func (r *PostRepository) AddAttachments(ctx context.Context, attachments []*model.PostAttachment) error {
	if len(attachments) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Create(attachments).Error; err != nil {
		return translateError("creating attachments", err, domain.ErrAttachmentNotFound)
	}
	return nil
}

func (r *PostRepository) FindAttachment(ctx context.Context, id uuid.UUID) (*model.PostAttachment, error) {
	var a model.PostAttachment
	if err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error; err != nil {
		return nil, translateError("finding attachment", err, domain.ErrAttachmentNotFound)
	}
	return &a, nil
}

// DeleteAttachment removes the row and gives its slot back in one transaction.
func (r *PostRepository) DeleteAttachment(ctx context.Context, attachment *model.PostAttachment) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&model.PostAttachment{}, "id = ?", attachment.ID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrAttachmentNotFound
		}
		_, err := reserve(tx, AttachmentsCounter(attachment.InitiativeID, 0), -1)
		return err
	})
	return translateError("deleting attachment", err, domain.ErrAttachmentNotFound)
}

// Delete removes a post with its attachment rows and releases their slots.
func (r *PostRepository) Delete(ctx context.Context, post *model.Post) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&model.PostAttachment{}, "post_id = ?", post.ID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			if _, err := reserve(tx, AttachmentsCounter(post.InitiativeID, 0), -int(res.RowsAffected)); err != nil {
				return err
			}
		}
		del := tx.Delete(&model.Post{}, "id = ?", post.ID)
		if del.Error != nil {
			return del.Error
		}
		if del.RowsAffected == 0 {
			return domain.ErrPostNotFound
		}
		return nil
	})
	return translateError("deleting post", err, domain.ErrPostNotFound)
}
