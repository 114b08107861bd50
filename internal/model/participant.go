// internal/model/participant.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ParticipantStatus string

const (
	ParticipantPending  ParticipantStatus = "pending"
	ParticipantAccepted ParticipantStatus = "accepted"
	ParticipantRejected ParticipantStatus = "rejected"
	ParticipantLeft     ParticipantStatus = "left"
)

// Participant is a user's request to volunteer in an initiative. Only
// accepted participants hold a slot of the initiative's capacity.
type Participant struct {
	ID           uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	InitiativeID uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:idx_participant_user" json:"initiative_id"`
	UserID       uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:idx_participant_user" json:"user_id"`
	Status       ParticipantStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	Message      string            `gorm:"type:text" json:"message,omitempty"`
	DecidedByID  *uuid.UUID        `gorm:"type:uuid" json:"decided_by_id,omitempty"`
	DecidedAt    *time.Time        `json:"decided_at,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`

	User       User       `gorm:"foreignKey:UserID" json:"-"`
	Initiative Initiative `gorm:"foreignKey:InitiativeID" json:"-"`
}

func (p *Participant) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Status == "" {
		p.Status = ParticipantPending
	}
	return nil
}

// HoldsSlot reports whether the participant counts towards current_participants.
func (p *Participant) HoldsSlot() bool {
	return p.Status == ParticipantAccepted
}
