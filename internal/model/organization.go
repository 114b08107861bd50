// internal/model/organization.go
package model

import (
	"time"

	"github.com/dangerclosesec/mubadara/internal/workflow"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrganizationRole string

const (
	OrgRoleOwner   OrganizationRole = "owner"
	OrgRoleManager OrganizationRole = "manager"
)

type Organization struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Name            string          `gorm:"type:text;not null" json:"name"`
	Email           string          `gorm:"type:varchar(320);not null" json:"email"`
	Phone           string          `gorm:"type:varchar(32)" json:"phone,omitempty"`
	City            string          `gorm:"type:varchar(100);index" json:"city"`
	Category        string          `gorm:"type:varchar(100);index" json:"category"`
	Description     string          `gorm:"type:text" json:"description,omitempty"`
	LicenseNumber   string          `gorm:"type:varchar(64)" json:"license_number,omitempty"`
	Status          workflow.Status `gorm:"type:varchar(20);not null;index" json:"status"`
	OwnerID         uuid.UUID       `gorm:"type:uuid;not null;index" json:"owner_id"`
	RejectionReason string          `gorm:"type:text" json:"rejection_reason,omitempty"`
	ReviewedByID    *uuid.UUID      `gorm:"type:uuid" json:"reviewed_by_id,omitempty"`
	ReviewedAt      *time.Time      `json:"reviewed_at,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`

	Owner User               `gorm:"foreignKey:OwnerID" json:"-"`
	Users []OrganizationUser `gorm:"foreignKey:OrganizationID" json:"-"`
}

type OrganizationUser struct {
	ID             uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	OrganizationID uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_org_user" json:"organization_id"`
	UserID         uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_org_user" json:"user_id"`
	Role           OrganizationRole `gorm:"type:varchar(20);not null" json:"role"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`

	Organization Organization `gorm:"foreignKey:OrganizationID" json:"-"`
	User         User         `gorm:"foreignKey:UserID" json:"-"`
}

func (o *Organization) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	if o.Status == "" {
		o.Status = workflow.OrganizationPending
	}
	return nil
}

func (ou *OrganizationUser) BeforeCreate(tx *gorm.DB) error {
	if ou.ID == uuid.Nil {
		ou.ID = uuid.New()
	}
	return nil
}

func (o *Organization) SubjectID() uuid.UUID { return o.ID }
func (o *Organization) CurrentStatus() workflow.Status { return o.Status }
func (o *Organization) OwnerRef() uuid.UUID { return o.OwnerID }
func (o *Organization) LastUpdated() time.Time { return o.UpdatedAt }

// OrganizationRef is nil: an organization is accountable to its owner only.
func (o *Organization) OrganizationRef() *uuid.UUID { return nil }

// Candidate is the filterable view used by listings.
func (o *Organization) Candidate() workflow.Candidate {
	return workflow.Candidate{
		Status:   o.Status,
		Name:     o.Name,
		Email:    o.Email,
		Category: o.Category,
		City:     o.City,
	}
}

// OrganizationColumns maps listing filters to the organizations table.
var OrganizationColumns = workflow.Columns{
	Status:   "organizations.status",
	Search:   []string{"organizations.name", "organizations.email"},
	Category: "organizations.category",
	City:     "organizations.city",
}
