package entity

import (
	"time"

	"github.com/google/uuid"
)

// ActivityLog records who did what, for audit purposes. Writes are
// fire-and-forget; a failed write never fails the triggering operation.
type ActivityLog struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	UserID     *uuid.UUID `gorm:"type:uuid;index" json:"user_id,omitempty"`
	UserEmail  string     `gorm:"size:255" json:"user_email"`
	Action     string     `gorm:"size:100;not null" json:"action"`
	EntityType string     `gorm:"size:50;not null;index" json:"entity_type"`
	EntityID   string     `gorm:"size:100" json:"entity_id"`
	Details    *string    `gorm:"type:text" json:"details,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// TableName returns the table name for the ActivityLog model
func (ActivityLog) TableName() string {
	return "activity_logs"
}
