package usecase

import (
	"context"

	"doctor-verification/internal/converter"
	"doctor-verification/internal/delivery/dto"
	"doctor-verification/internal/domain/entity"
	"doctor-verification/internal/domain/repository"
	"doctor-verification/pkg/apperror"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

//go:generate mockgen -source=audit_log_usecase.go -destination=mocks/audit_log_usecase_mock.go -package=mocks

type AuditLogUsecase interface {
	GetAllAuditLogs(ctx context.Context, query *dto.AuditLogQuery) (*dto.AuditLogListResponse, error)
	GetAuditLog(ctx context.Context, id int64) (*dto.AuditLogResponse, error)
}

type auditLogUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	auditLogRepo repository.AuditLogRepository
}

func NewAuditLogUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	auditLogRepo repository.AuditLogRepository,
) AuditLogUsecase {
	return &auditLogUsecase{
		db:           db,
		log:          log,
		auditLogRepo: auditLogRepo,
	}
}

func (u *auditLogUsecase) GetAllAuditLogs(ctx context.Context, query *dto.AuditLogQuery) (*dto.AuditLogListResponse, error) {
	logs, err := u.auditLogRepo.FindAll(ctx, u.db, entity.AuditLogFilter{
		Action:   query.Action,
		Entity:   query.Entity,
		EntityID: query.EntityID,
		Limit:    query.Limit,
	})
	if err != nil {
		u.log.Warnf("Failed to find all audit logs: %+v", err)
		return nil, apperror.Internal(err, "failed to load audit logs")
	}

	return &dto.AuditLogListResponse{
		Logs:  converter.AuditLogsToResponses(logs),
		Total: len(logs),
	}, nil
}

func (u *auditLogUsecase) GetAuditLog(ctx context.Context, id int64) (*dto.AuditLogResponse, error) {
	auditLog, err := u.auditLogRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find audit log: %+v", err)
		return nil, apperror.Internal(err, "failed to load audit log")
	}
	if auditLog == nil {
		return nil, apperror.NotFound("audit log not found")
	}

	return converter.AuditLogToResponse(auditLog), nil
}
