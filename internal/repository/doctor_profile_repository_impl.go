package repository

import (
	"context"
	"errors"

	"doctor-verification/internal/domain/entity"
	domainRepo "doctor-verification/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type doctorProfileRepository struct{}

func NewDoctorProfileRepository() domainRepo.DoctorProfileRepository {
	return &doctorProfileRepository{}
}

func (r *doctorProfileRepository) Create(ctx context.Context, db *gorm.DB, profile *entity.DoctorProfile) error {
	return db.WithContext(ctx).Create(profile).Error
}

func (r *doctorProfileRepository) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.DoctorProfile, error) {
	var profile entity.DoctorProfile
	err := db.WithContext(ctx).Preload("User").Where("id = ?", id).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

// FindByIDForUpdate takes a row lock on the profile so every writer for the same
// doctor is serialised for the rest of the transaction.
func (r *doctorProfileRepository) FindByIDForUpdate(ctx context.Context, db *gorm.DB, id int) (*entity.DoctorProfile, error) {
	var profile entity.DoctorProfile
	err := db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("User").
		Where("id = ?", id).
		First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *doctorProfileRepository) FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*entity.DoctorProfile, error) {
	var profile entity.DoctorProfile
	err := db.WithContext(ctx).Preload("User").Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

// FindAll returns the worklist. The status tab is applied in SQL, the search
// text with ILIKE on "first last" and email.
func (r *doctorProfileRepository) FindAll(ctx context.Context, db *gorm.DB, filter entity.WorklistFilter) ([]entity.DoctorProfile, error) {
	var profiles []entity.DoctorProfile
	query := db.WithContext(ctx).
		Joins("JOIN users ON users.id = doctor_profiles.user_id")

	if status, ok := filter.StatusPredicate(); ok {
		query = query.Where("doctor_profiles.verification_status = ?", status)
	}
	if filter.Search != "" {
		pattern := "%" + escapeLike(filter.Search) + "%"
		query = query.Where(
			"(users.first_name || ' ' || users.last_name) ILIKE ? OR users.email ILIKE ?",
			pattern, pattern,
		)
	}

	err := query.
		Preload("User").
		Order("doctor_profiles.created_at DESC, doctor_profiles.id DESC").
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

// UpdateAttributes saves informational fields only; verification columns are never written here.
func (r *doctorProfileRepository) UpdateAttributes(ctx context.Context, db *gorm.DB, profile *entity.DoctorProfile) error {
	return db.WithContext(ctx).
		Model(&entity.DoctorProfile{}).
		Where("id = ?", profile.ID).
		Updates(map[string]interface{}{
			"specialty_id":     profile.SpecialtyID,
			"bio":              profile.Bio,
			"education":        profile.Education,
			"experience":       profile.Experience,
			"consultation_fee": profile.ConsultationFee,
			"available_hours":  profile.AvailableHours,
		}).Error
}

// UpdateVerification atomically moves the profile ONLY if it is still in the expected status.
// Returns affected rows: 1 = success, 0 = status changed concurrently.
func (r *doctorProfileRepository) UpdateVerification(ctx context.Context, db *gorm.DB, profile *entity.DoctorProfile, from entity.VerificationStatus) (int64, error) {
	result := db.WithContext(ctx).
		Model(&entity.DoctorProfile{}).
		Where("id = ? AND verification_status = ?", profile.ID, from).
		Updates(map[string]interface{}{
			"verification_status":   profile.VerificationStatus,
			"verification_comments": profile.VerificationComments,
			"updated_at":            profile.UpdatedAt,
		})
	return result.RowsAffected, result.Error
}

func (r *doctorProfileRepository) CountByStatus(ctx context.Context, db *gorm.DB) (map[entity.VerificationStatus]int64, error) {
	var rows []struct {
		VerificationStatus entity.VerificationStatus
		Total              int64
	}
	err := db.WithContext(ctx).
		Model(&entity.DoctorProfile{}).
		Select("verification_status, COUNT(*) AS total").
		Group("verification_status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[entity.VerificationStatus]int64, len(entity.VerificationStatuses))
	for _, status := range entity.VerificationStatuses {
		counts[status] = 0
	}
	for _, row := range rows {
		counts[row.VerificationStatus] = row.Total
	}
	return counts, nil
}
