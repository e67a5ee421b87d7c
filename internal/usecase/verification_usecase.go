package usecase

import (
	"context"
	"strconv"
	"strings"
	"time"

	"doctor-verification/internal/converter"
	"doctor-verification/internal/delivery/dto"
	"doctor-verification/internal/delivery/http/middleware"
	"doctor-verification/internal/domain/entity"
	"doctor-verification/internal/domain/repository"
	"doctor-verification/internal/domain/verification"
	"doctor-verification/internal/metrics"
	"doctor-verification/internal/service"
	"doctor-verification/pkg/apperror"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

//go:generate mockgen -source=verification_usecase.go -destination=mocks/verification_usecase_mock.go -package=mocks

// VerificationUsecase owns every change to a doctor profile's verification status
type VerificationUsecase interface {
	ApproveProfile(ctx context.Context, doctorID int) (*dto.DoctorResponse, error)
	RejectProfile(ctx context.Context, doctorID int, comments string) (*dto.DoctorResponse, error)
	ReviewProfile(ctx context.Context, doctorID int, req *dto.ReviewProfileRequest) (*dto.DoctorResponse, error)
	GetVerification(ctx context.Context, doctorID int) (*dto.VerificationResponse, error)
	GetOwnVerification(ctx context.Context, userID uuid.UUID) (*dto.VerificationResponse, error)
}

type verificationUsecase struct {
	db                *gorm.DB
	log               *logrus.Logger
	transactor        repository.Transactor
	doctorProfileRepo repository.DoctorProfileRepository
	documentRepo      repository.VerificationDocumentRepository
	auditService      service.AuditService
	statsService      *service.VerificationStatsService
	metrics           *metrics.Metrics
	now               func() time.Time
}

func NewVerificationUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	transactor repository.Transactor,
	doctorProfileRepo repository.DoctorProfileRepository,
	documentRepo repository.VerificationDocumentRepository,
	auditService service.AuditService,
	statsService *service.VerificationStatsService,
	metrics *metrics.Metrics,
) VerificationUsecase {
	return &verificationUsecase{
		db:                db,
		log:               log,
		transactor:        transactor,
		doctorProfileRepo: doctorProfileRepo,
		documentRepo:      documentRepo,
		auditService:      auditService,
		statsService:      statsService,
		metrics:           metrics,
		now:               time.Now,
	}
}

// ApproveProfile approves a pending profile once the document gate holds.
// The gate reads the document set inside the same transaction that holds the
// profile lock, so no review can slip in between evaluation and write.
func (u *verificationUsecase) ApproveProfile(ctx context.Context, doctorID int) (*dto.DoctorResponse, error) {
	return u.decide(ctx, doctorID, dto.ReviewActionApprove, func(tx *gorm.DB, profile *entity.DoctorProfile) error {
		if !profile.IsPending() {
			return apperror.InvalidState("doctor profile has already been " + string(profile.VerificationStatus))
		}

		docs, err := u.documentRepo.FindByDoctorID(ctx, tx, profile.ID)
		if err != nil {
			u.log.Warnf("Failed to find documents for doctor %d: %+v", profile.ID, err)
			return apperror.Internal(err, "failed to load verification documents")
		}

		result := verification.Evaluate(profile, docs)
		if !result.Eligible {
			u.metrics.GateRejected(string(result.Reason))
			return result.Err()
		}

		return profile.Approve(u.now())
	})
}

// RejectProfile rejects a pending profile. Comments are mandatory; no gate applies.
func (u *verificationUsecase) RejectProfile(ctx context.Context, doctorID int, comments string) (*dto.DoctorResponse, error) {
	if strings.TrimSpace(comments) == "" {
		return nil, apperror.Validation("rejection comments are required")
	}

	return u.decide(ctx, doctorID, dto.ReviewActionReject, func(tx *gorm.DB, profile *entity.DoctorProfile) error {
		return profile.Reject(comments, u.now())
	})
}

func (u *verificationUsecase) ReviewProfile(ctx context.Context, doctorID int, req *dto.ReviewProfileRequest) (*dto.DoctorResponse, error) {
	switch req.Action {
	case dto.ReviewActionApprove:
		return u.ApproveProfile(ctx, doctorID)
	case dto.ReviewActionReject:
		return u.RejectProfile(ctx, doctorID, req.Comments)
	default:
		return nil, apperror.Validation("action must be approve or reject")
	}
}

// decide runs one profile decision: lock, mutate, compare-and-swap, audit.
// Cache and metrics are updated only after commit and never fail the decision.
func (u *verificationUsecase) decide(
	ctx context.Context,
	doctorID int,
	action string,
	mutate func(tx *gorm.DB, profile *entity.DoctorProfile) error,
) (*dto.DoctorResponse, error) {
	start := time.Now()
	var (
		profile *entity.DoctorProfile
		from    entity.VerificationStatus
	)

	err := u.transactor.WithinTransaction(ctx, func(tx *gorm.DB) error {
		locked, err := u.doctorProfileRepo.FindByIDForUpdate(ctx, tx, doctorID)
		if err != nil {
			u.log.Warnf("Failed to lock doctor profile %d: %+v", doctorID, err)
			return apperror.Internal(err, "failed to load doctor profile")
		}
		if locked == nil {
			return apperror.NotFound("doctor profile not found")
		}

		from = locked.VerificationStatus
		if err := mutate(tx, locked); err != nil {
			return err
		}

		rows, err := u.doctorProfileRepo.UpdateVerification(ctx, tx, locked, from)
		if err != nil {
			u.log.Warnf("Failed to update verification status of doctor %d: %+v", doctorID, err)
			return apperror.Internal(err, "failed to update doctor profile")
		}
		if rows == 0 {
			return apperror.ConcurrentModification(concurrentModificationReason)
		}

		if err := u.auditService.LogTransition(ctx, tx, actorFromContext(ctx), profileAuditAction(action), service.AuditEntityDoctorProfile, strconv.Itoa(locked.ID), service.Transition{
			From:   string(from),
			To:     string(locked.VerificationStatus),
			Reason: locked.VerificationComments,
		}); err != nil {
			return apperror.Internal(err, "failed to record audit log")
		}

		profile = locked
		return nil
	})

	u.metrics.ObserveDecision(metrics.EntityProfile, action, err, time.Since(start))
	if err != nil {
		return nil, toAppError(err, "failed to commit verification decision")
	}

	u.statsService.RecordTransition(ctx, from, profile.VerificationStatus)
	u.log.WithFields(logrus.Fields{
		"doctor_id": profile.ID,
		"from":      from,
		"to":        profile.VerificationStatus,
	}).Info("Doctor profile reviewed")

	return converter.DoctorProfileToResponse(profile), nil
}

func (u *verificationUsecase) GetVerification(ctx context.Context, doctorID int) (*dto.VerificationResponse, error) {
	profile, err := u.doctorProfileRepo.FindByID(ctx, u.db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile: %+v", err)
		return nil, apperror.Internal(err, "failed to load doctor profile")
	}
	if profile == nil {
		return nil, apperror.NotFound("doctor profile not found")
	}

	return u.overview(ctx, profile)
}

func (u *verificationUsecase) GetOwnVerification(ctx context.Context, userID uuid.UUID) (*dto.VerificationResponse, error) {
	profile, err := u.doctorProfileRepo.FindByUserID(ctx, u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile: %+v", err)
		return nil, apperror.Internal(err, "failed to load doctor profile")
	}
	if profile == nil {
		return nil, apperror.NotFound("doctor profile not found")
	}

	return u.overview(ctx, profile)
}

func (u *verificationUsecase) overview(ctx context.Context, profile *entity.DoctorProfile) (*dto.VerificationResponse, error) {
	docs, err := u.documentRepo.FindByDoctorID(ctx, u.db, profile.ID)
	if err != nil {
		u.log.Warnf("Failed to find documents for doctor %d: %+v", profile.ID, err)
		return nil, apperror.Internal(err, "failed to load verification documents")
	}

	return converter.VerificationToResponse(profile, docs, verification.Evaluate(profile, docs)), nil
}

func profileAuditAction(action string) string {
	if action == dto.ReviewActionApprove {
		return entity.AuditActionProfileApprove
	}
	return entity.AuditActionProfileReject
}

// actorFromContext returns the authenticated user, or nil outside a request
func actorFromContext(ctx context.Context) *uuid.UUID {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil
	}
	return &userID
}
