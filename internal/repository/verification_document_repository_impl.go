package repository

import (
	"context"
	"errors"
	"time"

	"doctor-verification/internal/domain/entity"
	domainRepo "doctor-verification/internal/domain/repository"

	"gorm.io/gorm"
)

type verificationDocumentRepository struct{}

func NewVerificationDocumentRepository() domainRepo.VerificationDocumentRepository {
	return &verificationDocumentRepository{}
}

func (r *verificationDocumentRepository) Create(ctx context.Context, db *gorm.DB, document *entity.VerificationDocument) error {
	return db.WithContext(ctx).Omit("Doctor").Create(document).Error
}

func (r *verificationDocumentRepository) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.VerificationDocument, error) {
	var document entity.VerificationDocument
	err := db.WithContext(ctx).Where("id = ?", id).First(&document).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &document, nil
}

func (r *verificationDocumentRepository) FindByDoctorID(ctx context.Context, db *gorm.DB, doctorID int) ([]entity.VerificationDocument, error) {
	var documents []entity.VerificationDocument
	err := db.WithContext(ctx).
		Where("doctor_id = ?", doctorID).
		Order("created_at ASC, id ASC").
		Find(&documents).Error
	if err != nil {
		return nil, err
	}
	return documents, nil
}

// UpdateReview is a compare-and-swap on (status, updated_at).
// Returns affected rows: 1 = success, 0 = another reviewer got there first.
func (r *verificationDocumentRepository) UpdateReview(ctx context.Context, db *gorm.DB, document *entity.VerificationDocument, previousUpdatedAt time.Time) (int64, error) {
	result := db.WithContext(ctx).
		Model(&entity.VerificationDocument{}).
		Where("id = ? AND status = ? AND updated_at = ?", document.ID, entity.DocumentStatusPending, previousUpdatedAt).
		Updates(map[string]interface{}{
			"status":     document.Status,
			"notes":      document.Notes,
			"updated_at": document.UpdatedAt,
		})
	return result.RowsAffected, result.Error
}
