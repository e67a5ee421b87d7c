package entity

import (
	"fmt"
	"strings"
	"time"

	"doctor-verification/pkg/apperror"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VerificationStatus represents the verification state of a doctor profile
type VerificationStatus string

const (
	VerificationStatusPending  VerificationStatus = "pending"
	VerificationStatusApproved VerificationStatus = "approved"
	VerificationStatusRejected VerificationStatus = "rejected"
)

// VerificationStatuses lists every valid profile status in display order
var VerificationStatuses = []VerificationStatus{
	VerificationStatusPending,
	VerificationStatusApproved,
	VerificationStatusRejected,
}

func (s VerificationStatus) IsValid() bool {
	switch s {
	case VerificationStatusPending, VerificationStatusApproved, VerificationStatusRejected:
		return true
	}
	return false
}

// ParseVerificationStatus converts raw input into a VerificationStatus
func ParseVerificationStatus(raw string) (VerificationStatus, error) {
	status := VerificationStatus(strings.ToLower(strings.TrimSpace(raw)))
	if !status.IsValid() {
		return "", fmt.Errorf("invalid verification status %q", raw)
	}
	return status, nil
}

// DoctorProfile represents the professional record subject to credential verification
type DoctorProfile struct {
	ID                   int                `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID               uuid.UUID          `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	SpecialtyID          *int               `gorm:"index" json:"specialty_id,omitempty"`
	Bio                  string             `gorm:"type:text" json:"bio,omitempty"`
	Education            string             `gorm:"type:text" json:"education,omitempty"`
	Experience           string             `gorm:"type:text" json:"experience,omitempty"`
	ConsultationFee      decimal.Decimal    `gorm:"type:numeric(10,2);not null;default:0" json:"consultation_fee"`
	AvailableHours       string             `gorm:"type:text" json:"available_hours,omitempty"`
	VerificationStatus   VerificationStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"verification_status"`
	VerificationComments string             `gorm:"type:text;not null;default:''" json:"verification_comments,omitempty"`
	CreatedAt            time.Time          `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time          `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User      User                   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Documents []VerificationDocument `gorm:"foreignKey:DoctorID" json:"documents,omitempty"`
}

func (DoctorProfile) TableName() string {
	return "doctor_profiles"
}

// IsPending checks if the profile is still awaiting a verification decision
func (p *DoctorProfile) IsPending() bool {
	return p.VerificationStatus == VerificationStatusPending
}

// IsApproved checks if the doctor is a verified professional
func (p *DoctorProfile) IsApproved() bool {
	return p.VerificationStatus == VerificationStatusApproved
}

// Approve moves a pending profile to approved and clears any comments.
// The caller is responsible for evaluating the profile gate first.
func (p *DoctorProfile) Approve(now time.Time) error {
	if !p.IsPending() {
		return apperror.InvalidState(fmt.Sprintf("doctor profile has already been %s", p.VerificationStatus))
	}
	p.VerificationStatus = VerificationStatusApproved
	p.VerificationComments = ""
	p.touch(now)
	return nil
}

// Reject moves a pending profile to rejected with a mandatory reason
func (p *DoctorProfile) Reject(comments string, now time.Time) error {
	comments = strings.TrimSpace(comments)
	if comments == "" {
		return apperror.Validation("rejection comments are required")
	}
	if !p.IsPending() {
		return apperror.InvalidState(fmt.Sprintf("doctor profile has already been %s", p.VerificationStatus))
	}
	p.VerificationStatus = VerificationStatusRejected
	p.VerificationComments = comments
	p.touch(now)
	return nil
}

func (p *DoctorProfile) touch(now time.Time) {
	now = now.UTC().Truncate(time.Microsecond)
	if now.After(p.UpdatedAt) {
		p.UpdatedAt = now
	}
}
