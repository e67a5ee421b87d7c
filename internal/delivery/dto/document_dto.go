package dto

import "time"

// Request DTOs

type SubmitDocumentRequest struct {
	DocumentType string `json:"document_type" validate:"required,oneof=license specialty profile_photo curriculum certificates"`
	FileURL      string `json:"file_url" validate:"required,url"`
	FileName     string `json:"file_name" validate:"required,notblank,max=255"`
}

type ReviewDocumentRequest struct {
	Action string `json:"action" validate:"required,oneof=approve reject"`
	Notes  string `json:"notes" validate:"required_if=Action reject,omitempty,notblank"`
}

// Response DTOs

type DocumentResponse struct {
	ID           int       `json:"id"`
	DoctorID     int       `json:"doctor_id"`
	DocumentType string    `json:"document_type"`
	FileURL      string    `json:"file_url"`
	FileName     string    `json:"file_name"`
	Status       string    `json:"status"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
