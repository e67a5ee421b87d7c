package repository

import (
	"context"
	"time"

	"doctor-verification/internal/domain/entity"

	"gorm.io/gorm"
)

//go:generate mockgen -source=verification_document_repository.go -destination=mocks/verification_document_repository_mock.go -package=mocks

type VerificationDocumentRepository interface {
	Create(ctx context.Context, db *gorm.DB, document *entity.VerificationDocument) error
	FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.VerificationDocument, error)
	FindByDoctorID(ctx context.Context, db *gorm.DB, doctorID int) ([]entity.VerificationDocument, error)
	// UpdateReview writes status, notes and updated_at only while the stored row is
	// still pending and unchanged since previousUpdatedAt. Returns affected rows.
	UpdateReview(ctx context.Context, db *gorm.DB, document *entity.VerificationDocument, previousUpdatedAt time.Time) (int64, error)
}
