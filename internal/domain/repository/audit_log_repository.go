package repository

import (
	"context"

	"doctor-verification/internal/domain/entity"

	"gorm.io/gorm"
)

//go:generate mockgen -source=audit_log_repository.go -destination=mocks/audit_log_repository_mock.go -package=mocks

type AuditLogRepository interface {
	Create(ctx context.Context, db *gorm.DB, log *entity.AuditLog) error
	FindAll(ctx context.Context, db *gorm.DB, filter entity.AuditLogFilter) ([]entity.AuditLog, error)
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.AuditLog, error)
}
