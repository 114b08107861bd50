// internal/model/user.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserType string

const (
	UserTypeIndividual   UserType = "individual"
	UserTypeOrganization UserType = "organization"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email        string    `gorm:"type:varchar(320);uniqueIndex;not null" json:"email"`
	Name         string    `gorm:"type:text;not null" json:"name"`
	Phone        string    `gorm:"type:varchar(32)" json:"phone,omitempty"`
	City         string    `gorm:"type:varchar(100)" json:"city,omitempty"`
	UserType     UserType  `gorm:"type:varchar(20);not null;default:'individual'" json:"user_type"`
	IsAdmin      bool      `gorm:"not null;default:false" json:"is_admin"`
	PasswordHash string    `gorm:"type:text;not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// BeforeCreate assigns the primary key and the default account type.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.UserType == "" {
		u.UserType = UserTypeIndividual
	}
	return nil
}
