// internal/model/initiative.go
package model

import (
	"time"

	"github.com/dangerclosesec/mubadara/internal/workflow"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrganizerType string

const (
	OrganizerIndividual   OrganizerType = "individual"
	OrganizerOrganization OrganizerType = "organization"
)

type Initiative struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Title               string          `gorm:"type:text;not null" json:"title"`
	Description         string          `gorm:"type:text" json:"description,omitempty"`
	Category            string          `gorm:"type:varchar(100);index" json:"category"`
	City                string          `gorm:"type:varchar(100);index" json:"city"`
	Location            string          `gorm:"type:text" json:"location,omitempty"`
	StartDate           *time.Time      `json:"start_date,omitempty"`
	EndDate             *time.Time      `json:"end_date,omitempty"`
	Status              workflow.Status `gorm:"type:varchar(20);not null;index" json:"status"`
	OwnerID             uuid.UUID       `gorm:"type:uuid;not null;index" json:"owner_id"`
	OrganizationID      *uuid.UUID      `gorm:"type:uuid;index" json:"organization_id,omitempty"`
	OrganizerType       OrganizerType   `gorm:"type:varchar(20);not null" json:"organizer_type"`
	MaxParticipants     *int            `json:"max_participants"`
	CurrentParticipants int             `gorm:"not null;default:0" json:"current_participants"`
	AttachmentCount     int             `gorm:"not null;default:0" json:"attachment_count"`
	CancellationReason  string          `gorm:"type:text" json:"cancellation_reason,omitempty"`
	PublishedAt         *time.Time      `json:"published_at,omitempty"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`

	Owner        User          `gorm:"foreignKey:OwnerID" json:"-"`
	Organization *Organization `gorm:"foreignKey:OrganizationID" json:"-"`
}

func (i *Initiative) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	if i.Status == "" {
		i.Status = workflow.InitiativeDraft
	}
	if i.OrganizerType == "" {
		i.OrganizerType = OrganizerIndividual
		if i.OrganizationID != nil {
			i.OrganizerType = OrganizerOrganization
		}
	}
	return nil
}

func (i *Initiative) SubjectID() uuid.UUID { return i.ID }
func (i *Initiative) CurrentStatus() workflow.Status { return i.Status }
func (i *Initiative) OwnerRef() uuid.UUID { return i.OwnerID }
func (i *Initiative) OrganizationRef() *uuid.UUID { return i.OrganizationID }
func (i *Initiative) LastUpdated() time.Time { return i.UpdatedAt }

// SpotsAvailable reports whether one more participant can be accepted.
func (i *Initiative) SpotsAvailable() bool {
	return workflow.SpotsAvailable(i.CurrentParticipants, i.MaxParticipants)
}

func (i *Initiative) Candidate() workflow.Candidate {
	return workflow.Candidate{
		Status:        i.Status,
		Name:          i.Title,
		Category:      i.Category,
		City:          i.City,
		OrganizerType: string(i.OrganizerType),
		Current:       i.CurrentParticipants,
		Max:           i.MaxParticipants,
	}
}

var InitiativeColumns = workflow.Columns{
	Status:        "initiatives.status",
	Search:        []string{"initiatives.title"},
	Category:      "initiatives.category",
	City:          "initiatives.city",
	OrganizerType: "initiatives.organizer_type",
	Current:       "initiatives.current_participants",
	Max:           "initiatives.max_participants",
}
