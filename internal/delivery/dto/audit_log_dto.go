package dto

import (
	"time"

	"github.com/google/uuid"
)

// AuditLogQuery is read from the query string of the audit trail endpoint
type AuditLogQuery struct {
	Action   string `json:"action" validate:"omitempty,max=100"`
	Entity   string `json:"entity" validate:"omitempty,oneof=doctor_profile verification_document"`
	EntityID string `json:"entity_id" validate:"omitempty,max=64"`
	Limit    int    `json:"limit" validate:"omitempty,gte=1,lte=500"`
}

// Response DTOs

type AuditLogResponse struct {
	ID        int64                  `json:"id"`
	UserID    *uuid.UUID             `json:"user_id,omitempty"`
	User      *UserResponse          `json:"user,omitempty"`
	Action    string                 `json:"action"`
	Metadata  map[string]interface{} `json:"metadata"`
	CreatedAt time.Time              `json:"created_at"`
}

type AuditLogListResponse struct {
	Logs  []AuditLogResponse `json:"logs"`
	Total int                `json:"total"`
}
