package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ActionCreateComplaint  = "CREATE_COMPLAINT"
	ActionAssignComplaint  = "ASSIGN_COMPLAINT"
	ActionResolveComplaint = "RESOLVE_COMPLAINT"
	ActionReopenComplaint  = "REOPEN_COMPLAINT"
	ActionDeleteComplaint  = "DELETE_COMPLAINT"
	ActionCreateUser       = "CREATE_USER"
	ActionDeleteUser       = "DELETE_USER"
	ActionChangePassword   = "CHANGE_PASSWORD"
)

// AuditLog tracks Who, What, and When for critical system changes
type AuditLog struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     *uuid.UUID `gorm:"type:uuid;index" json:"user_id"` // Nullable for unauthenticated legacy calls
	User       *User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Action     string     `gorm:"type:varchar(50);not null;index" json:"action"`
	EntityID   string     `gorm:"type:varchar(50);index" json:"entity_id"`
	EntityName string     `gorm:"type:varchar(255)" json:"entity_name,omitempty"` // Human readable reference
	Details    string     `gorm:"type:jsonb" json:"details"`                      // Serialized JSON payload of the action
	CreatedAt  time.Time  `gorm:"index" json:"created_at"`
}

func (a *AuditLog) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
