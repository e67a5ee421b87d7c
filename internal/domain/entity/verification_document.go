package entity

import (
	"fmt"
	"strings"
	"time"

	"doctor-verification/pkg/apperror"
)

// DocumentType is the kind of credential a verification document carries
type DocumentType string

const (
	DocumentTypeLicense      DocumentType = "license"
	DocumentTypeSpecialty    DocumentType = "specialty"
	DocumentTypeProfilePhoto DocumentType = "profile_photo"
	DocumentTypeCurriculum   DocumentType = "curriculum"
	DocumentTypeCertificates DocumentType = "certificates"
)

// DocumentTypes lists every accepted document type
var DocumentTypes = []DocumentType{
	DocumentTypeLicense,
	DocumentTypeSpecialty,
	DocumentTypeProfilePhoto,
	DocumentTypeCurriculum,
	DocumentTypeCertificates,
}

func (t DocumentType) IsValid() bool {
	switch t {
	case DocumentTypeLicense, DocumentTypeSpecialty, DocumentTypeProfilePhoto,
		DocumentTypeCurriculum, DocumentTypeCertificates:
		return true
	}
	return false
}

// ParseDocumentType converts raw input into a DocumentType
func ParseDocumentType(raw string) (DocumentType, error) {
	t := DocumentType(strings.ToLower(strings.TrimSpace(raw)))
	if !t.IsValid() {
		return "", fmt.Errorf("invalid document type %q", raw)
	}
	return t, nil
}

// DocumentStatus represents the review state of a single document
type DocumentStatus string

const (
	DocumentStatusPending  DocumentStatus = "pending"
	DocumentStatusApproved DocumentStatus = "approved"
	DocumentStatusRejected DocumentStatus = "rejected"
)

func (s DocumentStatus) IsValid() bool {
	switch s {
	case DocumentStatusPending, DocumentStatusApproved, DocumentStatusRejected:
		return true
	}
	return false
}

// ParseDocumentStatus converts raw input into a DocumentStatus
func ParseDocumentStatus(raw string) (DocumentStatus, error) {
	status := DocumentStatus(strings.ToLower(strings.TrimSpace(raw)))
	if !status.IsValid() {
		return "", fmt.Errorf("invalid document status %q", raw)
	}
	return status, nil
}

// VerificationDocument is one uploaded credential artifact tied to a doctor profile.
// A reviewed document is never reviewed again; corrections arrive as a new record.
type VerificationDocument struct {
	ID           int            `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorID     int            `gorm:"not null;index:idx_documents_doctor_type" json:"doctor_id"`
	DocumentType DocumentType   `gorm:"type:varchar(30);not null;index:idx_documents_doctor_type" json:"document_type"`
	FileURL      string         `gorm:"type:text;not null" json:"file_url"`
	FileName     string         `gorm:"type:varchar(255);not null" json:"file_name"`
	Status       DocumentStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	Notes        string         `gorm:"type:text;not null;default:''" json:"notes,omitempty"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor *DoctorProfile `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (VerificationDocument) TableName() string {
	return "verification_documents"
}

// IsPending checks if the document still awaits review
func (d *VerificationDocument) IsPending() bool {
	return d.Status == DocumentStatusPending
}

// IsApproved checks if the document was accepted
func (d *VerificationDocument) IsApproved() bool {
	return d.Status == DocumentStatusApproved
}

// IsRejected checks if the document was refused
func (d *VerificationDocument) IsRejected() bool {
	return d.Status == DocumentStatusRejected
}

// Approve accepts a pending document
func (d *VerificationDocument) Approve(now time.Time) error {
	if !d.IsPending() {
		return apperror.InvalidState(fmt.Sprintf("document has already been %s", d.Status))
	}
	d.Status = DocumentStatusApproved
	d.Notes = ""
	d.touch(now)
	return nil
}

// Reject refuses a pending document with a mandatory note
func (d *VerificationDocument) Reject(notes string, now time.Time) error {
	notes = strings.TrimSpace(notes)
	if notes == "" {
		return apperror.Validation("rejection notes are required")
	}
	if !d.IsPending() {
		return apperror.InvalidState(fmt.Sprintf("document has already been %s", d.Status))
	}
	d.Status = DocumentStatusRejected
	d.Notes = notes
	d.touch(now)
	return nil
}

// SupersededBy reports whether other is a later upload of the same type
func (d *VerificationDocument) SupersededBy(other *VerificationDocument) bool {
	if d.DocumentType != other.DocumentType {
		return false
	}
	if other.CreatedAt.Equal(d.CreatedAt) {
		return other.ID > d.ID
	}
	return other.CreatedAt.After(d.CreatedAt)
}

func (d *VerificationDocument) touch(now time.Time) {
	now = now.UTC().Truncate(time.Microsecond)
	if now.After(d.UpdatedAt) {
		d.UpdatedAt = now
	}
}
