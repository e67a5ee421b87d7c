package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateDoctorRequest struct {
	Email           string           `json:"email" validate:"required,email,max=255"`
	Password        string           `json:"password" validate:"required,min=8,max=72"`
	FirstName       string           `json:"first_name" validate:"required,notblank,max=100"`
	LastName        string           `json:"last_name" validate:"required,notblank,max=100"`
	SpecialtyID     *int             `json:"specialty_id" validate:"omitempty,gt=0"`
	Bio             string           `json:"bio" validate:"omitempty"`
	Education       string           `json:"education" validate:"omitempty"`
	Experience      string           `json:"experience" validate:"omitempty"`
	ConsultationFee *decimal.Decimal `json:"consultation_fee" validate:"omitempty"`
	AvailableHours  string           `json:"available_hours" validate:"omitempty"`
}

// DoctorUpdateSelfRequest carries informational attributes only. Nil fields are left unchanged.
type DoctorUpdateSelfRequest struct {
	SpecialtyID     *int             `json:"specialty_id" validate:"omitempty,gt=0"`
	Bio             *string          `json:"bio" validate:"omitempty"`
	Education       *string          `json:"education" validate:"omitempty"`
	Experience      *string          `json:"experience" validate:"omitempty"`
	ConsultationFee *decimal.Decimal `json:"consultation_fee" validate:"omitempty"`
	AvailableHours  *string          `json:"available_hours" validate:"omitempty"`
}

// WorklistQuery is read from the query string of the admin worklist
type WorklistQuery struct {
	Search string `json:"search" validate:"omitempty,max=255"`
	Status string `json:"status" validate:"omitempty,oneof=pending approved rejected all"`
}

// Response DTOs

type DoctorResponse struct {
	ID                   int             `json:"id"`
	UserID               uuid.UUID       `json:"user_id"`
	Email                string          `json:"email"`
	FirstName            string          `json:"first_name"`
	LastName             string          `json:"last_name"`
	FullName             string          `json:"full_name"`
	SpecialtyID          *int            `json:"specialty_id,omitempty"`
	Bio                  string          `json:"bio,omitempty"`
	Education            string          `json:"education,omitempty"`
	Experience           string          `json:"experience,omitempty"`
	ConsultationFee      decimal.Decimal `json:"consultation_fee"`
	AvailableHours       string          `json:"available_hours,omitempty"`
	IsActive             *bool           `json:"is_active,omitempty"`
	VerificationStatus   string          `json:"verification_status"`
	VerificationComments string          `json:"verification_comments,omitempty"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}

// StatusCountsResponse feeds the worklist status tabs
type StatusCountsResponse struct {
	Pending  int64 `json:"pending"`
	Approved int64 `json:"approved"`
	Rejected int64 `json:"rejected"`
	All      int64 `json:"all"`
}
