package repository

import (
	"context"

	"doctor-verification/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=doctor_profile_repository.go -destination=mocks/doctor_profile_repository_mock.go -package=mocks

type DoctorProfileRepository interface {
	Create(ctx context.Context, db *gorm.DB, profile *entity.DoctorProfile) error
	FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.DoctorProfile, error)
	// FindByIDForUpdate locks the profile row until the surrounding transaction ends
	FindByIDForUpdate(ctx context.Context, db *gorm.DB, id int) (*entity.DoctorProfile, error)
	FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*entity.DoctorProfile, error)
	FindAll(ctx context.Context, db *gorm.DB, filter entity.WorklistFilter) ([]entity.DoctorProfile, error)
	UpdateAttributes(ctx context.Context, db *gorm.DB, profile *entity.DoctorProfile) error
	// UpdateVerification writes the profile's status and comments only while the
	// stored status still equals from. Returns affected rows.
	UpdateVerification(ctx context.Context, db *gorm.DB, profile *entity.DoctorProfile, from entity.VerificationStatus) (int64, error)
	CountByStatus(ctx context.Context, db *gorm.DB) (map[entity.VerificationStatus]int64, error)
}
