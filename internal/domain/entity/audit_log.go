package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AuditLog represents a system audit trail entry
type AuditLog struct {
	ID        int64             `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    *uuid.UUID        `gorm:"type:uuid;index" json:"user_id,omitempty"`
	Action    string            `gorm:"type:varchar(100);not null;index" json:"action"`
	Metadata  datatypes.JSONMap `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt time.Time         `gorm:"autoCreateTime;index" json:"created_at"`

	// Relationships
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

// Common audit actions
const (
	AuditActionDoctorCreate    = "doctor.create"
	AuditActionDoctorUpdate    = "doctor.update"
	AuditActionDocumentSubmit  = "document.submit"
	AuditActionDocumentApprove = "document.approve"
	AuditActionDocumentReject  = "document.reject"
	AuditActionProfileApprove  = "profile.approve"
	AuditActionProfileReject   = "profile.reject"
)

// AuditLogFilter narrows the audit trail. Zero values disable a predicate.
type AuditLogFilter struct {
	Action   string
	Entity   string
	EntityID string
	Limit    int
}
