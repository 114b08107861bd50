// internal/model/post.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Post struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	InitiativeID uuid.UUID `gorm:"type:uuid;not null;index" json:"initiative_id"`
	AuthorID     uuid.UUID `gorm:"type:uuid;not null" json:"author_id"`
	Content      string    `gorm:"type:text;not null" json:"content"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Attachments []PostAttachment `gorm:"foreignKey:PostID" json:"attachments"`
}

// PostAttachment is an image stored in object storage. InitiativeID is
// denormalized so the per-initiative limit can be checked without joins.
type PostAttachment struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	PostID       uuid.UUID `gorm:"type:uuid;not null;index" json:"post_id"`
	InitiativeID uuid.UUID `gorm:"type:uuid;not null;index" json:"initiative_id"`
	Bucket       string    `gorm:"type:varchar(255);not null" json:"-"`
	Path         string    `gorm:"type:text;not null" json:"-"`
	URL          string    `gorm:"type:text;not null" json:"url"`
	MimeType     string    `gorm:"type:varchar(100);not null" json:"mime_type"`
	Size         int64     `gorm:"not null" json:"size"`
	CreatedAt    time.Time `json:"created_at"`
}

func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

func (a *PostAttachment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
