package usecase

import (
	"context"
	"strconv"
	"strings"
	"time"

	"doctor-verification/internal/converter"
	"doctor-verification/internal/delivery/dto"
	"doctor-verification/internal/domain/entity"
	"doctor-verification/internal/domain/repository"
	"doctor-verification/internal/metrics"
	"doctor-verification/internal/service"
	"doctor-verification/pkg/apperror"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

//go:generate mockgen -source=document_review_usecase.go -destination=mocks/document_review_usecase_mock.go -package=mocks

// DocumentReviewUsecase reviews single verification documents and accepts new uploads.
// It never changes a profile's verification status.
type DocumentReviewUsecase interface {
	ApproveDocument(ctx context.Context, documentID int) (*dto.DocumentResponse, error)
	RejectDocument(ctx context.Context, documentID int, notes string) (*dto.DocumentResponse, error)
	ReviewDocument(ctx context.Context, documentID int, req *dto.ReviewDocumentRequest) (*dto.DocumentResponse, error)
	SubmitDocument(ctx context.Context, userID uuid.UUID, req *dto.SubmitDocumentRequest) (*dto.DocumentResponse, error)
}

type documentReviewUsecase struct {
	log               *logrus.Logger
	transactor        repository.Transactor
	doctorProfileRepo repository.DoctorProfileRepository
	documentRepo      repository.VerificationDocumentRepository
	auditService      service.AuditService
	metrics           *metrics.Metrics
	now               func() time.Time
}

func NewDocumentReviewUsecase(
	log *logrus.Logger,
	transactor repository.Transactor,
	doctorProfileRepo repository.DoctorProfileRepository,
	documentRepo repository.VerificationDocumentRepository,
	auditService service.AuditService,
	metrics *metrics.Metrics,
) DocumentReviewUsecase {
	return &documentReviewUsecase{
		log:               log,
		transactor:        transactor,
		doctorProfileRepo: doctorProfileRepo,
		documentRepo:      documentRepo,
		auditService:      auditService,
		metrics:           metrics,
		now:               time.Now,
	}
}

func (u *documentReviewUsecase) ApproveDocument(ctx context.Context, documentID int) (*dto.DocumentResponse, error) {
	return u.review(ctx, documentID, dto.ReviewActionApprove, func(doc *entity.VerificationDocument) error {
		return doc.Approve(u.now())
	})
}

func (u *documentReviewUsecase) RejectDocument(ctx context.Context, documentID int, notes string) (*dto.DocumentResponse, error) {
	if strings.TrimSpace(notes) == "" {
		return nil, apperror.Validation("rejection notes are required")
	}

	return u.review(ctx, documentID, dto.ReviewActionReject, func(doc *entity.VerificationDocument) error {
		return doc.Reject(notes, u.now())
	})
}

func (u *documentReviewUsecase) ReviewDocument(ctx context.Context, documentID int, req *dto.ReviewDocumentRequest) (*dto.DocumentResponse, error) {
	switch req.Action {
	case dto.ReviewActionApprove:
		return u.ApproveDocument(ctx, documentID)
	case dto.ReviewActionReject:
		return u.RejectDocument(ctx, documentID, req.Notes)
	default:
		return nil, apperror.Validation("action must be approve or reject")
	}
}

// review locks the owning profile, applies decide and writes the result only if
// the document is still pending and unchanged since it was read.
func (u *documentReviewUsecase) review(
	ctx context.Context,
	documentID int,
	action string,
	decide func(doc *entity.VerificationDocument) error,
) (*dto.DocumentResponse, error) {
	start := time.Now()
	var (
		document *entity.VerificationDocument
		from     entity.DocumentStatus
	)

	err := u.transactor.WithinTransaction(ctx, func(tx *gorm.DB) error {
		doc, err := u.documentRepo.FindByID(ctx, tx, documentID)
		if err != nil {
			u.log.Warnf("Failed to find document %d: %+v", documentID, err)
			return apperror.Internal(err, "failed to load document")
		}
		if doc == nil {
			return apperror.NotFound("document not found")
		}

		profile, err := u.doctorProfileRepo.FindByIDForUpdate(ctx, tx, doc.DoctorID)
		if err != nil {
			u.log.Warnf("Failed to lock doctor profile %d: %+v", doc.DoctorID, err)
			return apperror.Internal(err, "failed to load doctor profile")
		}
		if profile == nil {
			return apperror.NotFound("doctor profile not found")
		}

		from = doc.Status
		previousUpdatedAt := doc.UpdatedAt
		if err := decide(doc); err != nil {
			return err
		}

		rows, err := u.documentRepo.UpdateReview(ctx, tx, doc, previousUpdatedAt)
		if err != nil {
			u.log.Warnf("Failed to update document %d: %+v", documentID, err)
			return apperror.Internal(err, "failed to update document")
		}
		if rows == 0 {
			return apperror.ConcurrentModification(concurrentModificationReason)
		}

		if err := u.auditService.LogTransition(ctx, tx, actorFromContext(ctx), documentAuditAction(action), service.AuditEntityDocument, strconv.Itoa(doc.ID), service.Transition{
			From:   string(from),
			To:     string(doc.Status),
			Reason: doc.Notes,
		}); err != nil {
			return apperror.Internal(err, "failed to record audit log")
		}

		document = doc
		return nil
	})

	u.metrics.ObserveDecision(metrics.EntityDocument, action, err, time.Since(start))
	if err != nil {
		return nil, toAppError(err, "failed to commit document review")
	}

	u.log.WithFields(logrus.Fields{
		"doctor_id":   document.DoctorID,
		"document_id": document.ID,
		"from":        from,
		"to":          document.Status,
	}).Info("Verification document reviewed")

	return converter.DocumentToResponse(document), nil
}

// A new upload of an already reviewed type becomes the latest of its type; earlier records are kept.
// A new upload of an already reviewed type supersedes the older record.
func (u *documentReviewUsecase) SubmitDocument(ctx context.Context, userID uuid.UUID, req *dto.SubmitDocumentRequest) (*dto.DocumentResponse, error) {
	docType, err := entity.ParseDocumentType(req.DocumentType)
	if err != nil {
		return nil, apperror.Validation(err.Error())
	}
	fileName := strings.TrimSpace(req.FileName)
	fileURL := strings.TrimSpace(req.FileURL)
	if fileName == "" || fileURL == "" {
		return nil, apperror.Validation("file url and file name are required")
	}

	var document *entity.VerificationDocument
	err = u.transactor.WithinTransaction(ctx, func(tx *gorm.DB) error {
		owner, err := u.doctorProfileRepo.FindByUserID(ctx, tx, userID)
		if err != nil {
			u.log.Warnf("Failed to find doctor profile: %+v", err)
			return apperror.Internal(err, "failed to load doctor profile")
		}
		if owner == nil {
			return apperror.NotFound("doctor profile not found")
		}

		if _, err := u.doctorProfileRepo.FindByIDForUpdate(ctx, tx, owner.ID); err != nil {
			u.log.Warnf("Failed to lock doctor profile %d: %+v", owner.ID, err)
			return apperror.Internal(err, "failed to load doctor profile")
		}

		now := u.now().UTC().Truncate(time.Microsecond)
		doc := &entity.VerificationDocument{
			DoctorID:     owner.ID,
			DocumentType: docType,
			FileURL:      fileURL,
			FileName:     fileName,
			Status:       entity.DocumentStatusPending,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := u.documentRepo.Create(ctx, tx, doc); err != nil {
			u.log.Warnf("Failed to create document: %+v", err)
			if isForeignKeyError(err, "doctor") {
				return apperror.NotFound("doctor profile not found")
			}
			return apperror.Internal(err, "failed to store document")
		}

		if err := u.auditService.LogCreate(ctx, tx, &userID, entity.AuditActionDocumentSubmit, service.AuditEntityDocument, strconv.Itoa(doc.ID), converter.DocumentToResponse(doc)); err != nil {
			return apperror.Internal(err, "failed to record audit log")
		}

		document = doc
		return nil
	})
	if err != nil {
		return nil, toAppError(err, "failed to commit document submission")
	}

	u.log.WithFields(logrus.Fields{
		"doctor_id":     document.DoctorID,
		"document_id":   document.ID,
		"document_type": document.DocumentType,
	}).Info("Verification document submitted")

	return converter.DocumentToResponse(document), nil
}

func documentAuditAction(action string) string {
	if action == dto.ReviewActionApprove {
		return entity.AuditActionDocumentApprove
	}
	return entity.AuditActionDocumentReject
}
