package service

import (
	"context"

	"doctor-verification/internal/domain/entity"
	"doctor-verification/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Audit entity names stored in metadata.entity
const (
	AuditEntityDoctorProfile = "doctor_profile"
	AuditEntityDocument      = "verification_document"
)

// Transition describes a status change recorded in the audit trail
type Transition struct {
	From   string
	To     string
	Reason string
}

type AuditService interface {
	LogCreate(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, newValue interface{}) error
	LogUpdate(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, oldValue, newValue interface{}) error
	LogTransition(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, transition Transition) error
}

type auditService struct {
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		log:       log,
		auditRepo: auditRepo,
	}
}

// LogCreate logs a create action
func (s *auditService) LogCreate(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, newValue interface{}) error {
	return s.write(ctx, tx, userID, action, datatypes.JSONMap{
		"entity":    entityName,
		"entity_id": entityID,
		"old_value": nil,
		"new_value": newValue,
	})
}

// LogUpdate logs an update action with old and new values
func (s *auditService) LogUpdate(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, oldValue, newValue interface{}) error {
	return s.write(ctx, tx, userID, action, datatypes.JSONMap{
		"entity":    entityName,
		"entity_id": entityID,
		"old_value": oldValue,
		"new_value": newValue,
	})
}

// LogTransition logs a review decision. Reason is omitted when empty.
func (s *auditService) LogTransition(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, transition Transition) error {
	metadata := datatypes.JSONMap{
		"entity":    entityName,
		"entity_id": entityID,
		"from":      transition.From,
		"to":        transition.To,
	}
	if transition.Reason != "" {
		metadata["reason"] = transition.Reason
	}
	return s.write(ctx, tx, userID, action, metadata)
}

func (s *auditService) write(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, metadata datatypes.JSONMap) error {
	auditLog := &entity.AuditLog{
		UserID:   userID,
		Action:   action,
		Metadata: metadata,
	}

	if err := s.auditRepo.Create(ctx, tx, auditLog); err != nil {
		s.log.Warnf("Failed to create audit log: %+v", err)
		return err
	}

	return nil
}
