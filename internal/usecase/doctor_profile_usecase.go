package usecase

import (
	"context"
	"strconv"
	"strings"

	"doctor-verification/internal/converter"
	"doctor-verification/internal/delivery/dto"
	"doctor-verification/internal/domain/entity"
	"doctor-verification/internal/domain/repository"
	"doctor-verification/internal/service"
	"doctor-verification/pkg/apperror"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

//go:generate mockgen -source=doctor_profile_usecase.go -destination=mocks/doctor_profile_usecase_mock.go -package=mocks

type DoctorProfileUsecase interface {
	CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error)
	GetDoctor(ctx context.Context, doctorID int) (*dto.DoctorResponse, error)
	ListDoctors(ctx context.Context, query *dto.WorklistQuery) (*dto.DoctorListResponse, error)
	GetStatusCounts(ctx context.Context) (*dto.StatusCountsResponse, error)
	UpdateSelfProfile(ctx context.Context, userID uuid.UUID, req *dto.DoctorUpdateSelfRequest) (*dto.DoctorResponse, error)
}

type doctorProfileUsecase struct {
	db                *gorm.DB
	log               *logrus.Logger
	transactor        repository.Transactor
	doctorProfileRepo repository.DoctorProfileRepository
	auditService      service.AuditService
	statsService      *service.VerificationStatsService
}

func NewDoctorProfileUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	transactor repository.Transactor,
	doctorProfileRepo repository.DoctorProfileRepository,
	auditService service.AuditService,
	statsService *service.VerificationStatsService,
) DoctorProfileUsecase {
	return &doctorProfileUsecase{
		db:                db,
		log:               log,
		transactor:        transactor,
		doctorProfileRepo: doctorProfileRepo,
		auditService:      auditService,
		statsService:      statsService,
	}
}

// CreateDoctor creates the doctor account and its profile in a single insert.
// Every new profile starts pending.
func (u *doctorProfileUsecase) CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
	if req.ConsultationFee != nil && req.ConsultationFee.IsNegative() {
		return nil, apperror.Validation("consultation fee must not be negative")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, apperror.Internal(err, "failed to create doctor")
	}

	active := true
	doctorProfile := &entity.DoctorProfile{
		SpecialtyID:        req.SpecialtyID,
		Bio:                req.Bio,
		Education:          req.Education,
		Experience:         req.Experience,
		AvailableHours:     req.AvailableHours,
		VerificationStatus: entity.VerificationStatusPending,
		User: entity.User{
			Email:     strings.ToLower(strings.TrimSpace(req.Email)),
			Password:  string(hashedPassword),
			FirstName: strings.TrimSpace(req.FirstName),
			LastName:  strings.TrimSpace(req.LastName),
			RoleID:    entity.RoleIDDoctor,
			IsActive:  &active,
		},
	}
	if req.ConsultationFee != nil {
		doctorProfile.ConsultationFee = *req.ConsultationFee
	}

	err = u.transactor.WithinTransaction(ctx, func(tx *gorm.DB) error {
		if err := u.doctorProfileRepo.Create(ctx, tx, doctorProfile); err != nil {
			u.log.Warnf("Failed to create doctor: %+v", err)
			if isDuplicateKeyError(err, "email") {
				return apperror.Validation("email already exists")
			}
			if isForeignKeyError(err, "role") {
				return apperror.Validation("doctor role is not configured")
			}
			return apperror.Internal(err, "failed to create doctor")
		}

		if err := u.auditService.LogCreate(ctx, tx, actorFromContext(ctx), entity.AuditActionDoctorCreate, service.AuditEntityDoctorProfile, strconv.Itoa(doctorProfile.ID), converter.DoctorProfileToResponse(doctorProfile)); err != nil {
			return apperror.Internal(err, "failed to record audit log")
		}
		return nil
	})
	if err != nil {
		return nil, toAppError(err, "failed to create doctor")
	}

	u.statsService.RecordCreated(ctx, doctorProfile.VerificationStatus)

	return converter.DoctorProfileToResponse(doctorProfile), nil
}

func (u *doctorProfileUsecase) GetDoctor(ctx context.Context, doctorID int) (*dto.DoctorResponse, error) {
	profile, err := u.doctorProfileRepo.FindByID(ctx, u.db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile: %+v", err)
		return nil, apperror.Internal(err, "failed to load doctor profile")
	}
	if profile == nil {
		return nil, apperror.NotFound("doctor profile not found")
	}

	return converter.DoctorProfileToResponse(profile), nil
}

// ListDoctors returns the admin worklist for a search text and status tab
func (u *doctorProfileUsecase) ListDoctors(ctx context.Context, query *dto.WorklistQuery) (*dto.DoctorListResponse, error) {
	filter := entity.WorklistFilter{
		Search: query.Search,
		Status: strings.ToLower(strings.TrimSpace(query.Status)),
	}
	if filter.Status != "" && filter.Status != entity.WorklistStatusAll {
		if _, err := entity.ParseVerificationStatus(filter.Status); err != nil {
			return nil, apperror.Validation(err.Error())
		}
	}

	profiles, err := u.doctorProfileRepo.FindAll(ctx, u.db, filter)
	if err != nil {
		u.log.Warnf("Failed to find all doctor profiles: %+v", err)
		return nil, apperror.Internal(err, "failed to load doctors")
	}

	// The repository narrows in SQL; the filter stays the single definition of a match.
	doctors := converter.DoctorProfilesToResponses(filter.Apply(profiles))

	return &dto.DoctorListResponse{
		Doctors: doctors,
		Total:   len(doctors),
	}, nil
}

func (u *doctorProfileUsecase) GetStatusCounts(ctx context.Context) (*dto.StatusCountsResponse, error) {
	counts, err := u.statsService.GetCounts(ctx)
	if err != nil {
		u.log.Warnf("Failed to get verification counts: %+v", err)
		return nil, apperror.Internal(err, "failed to load status counts")
	}

	return converter.StatusCountsToResponse(counts), nil
}

// UpdateSelfProfile lets a doctor edit informational attributes. The verification
// status and comments are never touched here.
func (u *doctorProfileUsecase) UpdateSelfProfile(ctx context.Context, userID uuid.UUID, req *dto.DoctorUpdateSelfRequest) (*dto.DoctorResponse, error) {
	if req.ConsultationFee != nil && req.ConsultationFee.IsNegative() {
		return nil, apperror.Validation("consultation fee must not be negative")
	}

	var profile *entity.DoctorProfile
	err := u.transactor.WithinTransaction(ctx, func(tx *gorm.DB) error {
		owner, err := u.doctorProfileRepo.FindByUserID(ctx, tx, userID)
		if err != nil {
			u.log.Warnf("Failed to find doctor profile: %+v", err)
			return apperror.Internal(err, "failed to load doctor profile")
		}
		if owner == nil {
			return apperror.NotFound("doctor profile not found")
		}

		locked, err := u.doctorProfileRepo.FindByIDForUpdate(ctx, tx, owner.ID)
		if err != nil {
			u.log.Warnf("Failed to lock doctor profile %d: %+v", owner.ID, err)
			return apperror.Internal(err, "failed to load doctor profile")
		}
		if locked == nil {
			return apperror.NotFound("doctor profile not found")
		}

		// Capture old value for audit
		oldValue := converter.DoctorProfileToResponse(locked)

		if !applySelfUpdate(locked, req) {
			profile = locked
			return nil
		}

		if err := u.doctorProfileRepo.UpdateAttributes(ctx, tx, locked); err != nil {
			u.log.Warnf("Failed to update doctor profile: %+v", err)
			return apperror.Internal(err, "failed to update doctor profile")
		}

		newValue := converter.DoctorProfileToResponse(locked)
		if err := u.auditService.LogUpdate(ctx, tx, &userID, entity.AuditActionDoctorUpdate, service.AuditEntityDoctorProfile, strconv.Itoa(locked.ID), oldValue, newValue); err != nil {
			return apperror.Internal(err, "failed to record audit log")
		}

		profile = locked
		return nil
	})
	if err != nil {
		return nil, toAppError(err, "failed to update doctor profile")
	}

	return converter.DoctorProfileToResponse(profile), nil
}

// applySelfUpdate copies the provided fields and reports whether anything was set
func applySelfUpdate(profile *entity.DoctorProfile, req *dto.DoctorUpdateSelfRequest) bool {
	updated := false
	if req.SpecialtyID != nil {
		profile.SpecialtyID = req.SpecialtyID
		updated = true
	}
	if req.Bio != nil {
		profile.Bio = *req.Bio
		updated = true
	}
	if req.Education != nil {
		profile.Education = *req.Education
		updated = true
	}
	if req.Experience != nil {
		profile.Experience = *req.Experience
		updated = true
	}
	if req.ConsultationFee != nil {
		profile.ConsultationFee = *req.ConsultationFee
		updated = true
	}
	if req.AvailableHours != nil {
		profile.AvailableHours = *req.AvailableHours
		updated = true
	}
	return updated
}
