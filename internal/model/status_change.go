// internal/model/status_change.go
package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/dangerclosesec/mubadara/internal/workflow"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// StatusChange is the history row written in the same transaction as every
// committed status transition.
type StatusChange struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	EntityKind workflow.Kind   `gorm:"type:varchar(32);not null;index:idx_status_change_entity" json:"entity_kind"`
	EntityID   uuid.UUID       `gorm:"type:uuid;not null;index:idx_status_change_entity" json:"entity_id"`
	FromStatus workflow.Status `gorm:"type:varchar(20);not null" json:"from_status"`
	ToStatus   workflow.Status `gorm:"type:varchar(20);not null" json:"to_status"`
	ActorID    uuid.UUID       `gorm:"type:uuid;not null" json:"actor_id"`
	Reason     string          `gorm:"type:text" json:"reason,omitempty"`
	Metadata   JSONMap         `json:"metadata,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

func (StatusChange) TableName() string {
	return "status_changes"
}

func (c *StatusChange) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// JSONMap represents a generic map stored as JSON in the database
type JSONMap map[string]interface{}

func (JSONMap) GormDataType() string {
	return "json"
}

// GormDBDataType picks JSONB on postgres and plain JSON elsewhere.
func (JSONMap) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	if db.Dialector.Name() == "postgres" {
		return "JSONB"
	}
	return "JSON"
}

// Value implements the driver.Valuer interface for JSONMap
func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements the sql.Scanner interface for JSONMap
func (m *JSONMap) Scan(value interface{}) error {
	if value == nil {
		*m = make(JSONMap)
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("type assertion failed: failed to decode JSON")
	}

	return json.Unmarshal(bytes, m)
}
