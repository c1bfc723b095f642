package service

import (
	"context"

	"sistema-provale/internal/domain/entity"
	"sistema-provale/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AuditService interface {
	LogCreate(ctx context.Context, tx *gorm.DB, userID *int, action string, entityName string, entityID int, newValue interface{}) error
	LogUpdate(ctx context.Context, tx *gorm.DB, userID *int, action string, entityName string, entityID int, oldValue, newValue interface{}) error
	LogDelete(ctx context.Context, tx *gorm.DB, userID *int, action string, entityName string, entityID int, oldValue interface{}) error
	LogEvent(ctx context.Context, tx *gorm.DB, userID *int, action string, metadata entity.JSON) error
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
func (s *auditService) LogCreate(ctx context.Context, tx *gorm.DB, userID *int, action string, entityName string, entityID int, newValue interface{}) error {
	return s.write(tx, userID, action, entity.JSON{
		"entity":    entityName,
		"entity_id": entityID,
		"old_value": nil,
		"new_value": newValue,
	})
}

// LogUpdate logs an update action with old and new values
func (s *auditService) LogUpdate(ctx context.Context, tx *gorm.DB, userID *int, action string, entityName string, entityID int, oldValue, newValue interface{}) error {
	return s.write(tx, userID, action, entity.JSON{
		"entity":    entityName,
		"entity_id": entityID,
		"old_value": oldValue,
		"new_value": newValue,
	})
}

// LogDelete logs a delete action with old value
func (s *auditService) LogDelete(ctx context.Context, tx *gorm.DB, userID *int, action string, entityName string, entityID int, oldValue interface{}) error {
	return s.write(tx, userID, action, entity.JSON{
		"entity":    entityName,
		"entity_id": entityID,
		"old_value": oldValue,
		"new_value": nil,
	})
}

// LogEvent records an action that is not tied to a single row (login, logout)
func (s *auditService) LogEvent(ctx context.Context, tx *gorm.DB, userID *int, action string, metadata entity.JSON) error {
	return s.write(tx, userID, action, metadata)
}

func (s *auditService) write(tx *gorm.DB, userID *int, action string, metadata entity.JSON) error {
	auditLog := &entity.AuditLog{
		CodUsuario: userID,
		Action:     action,
		Metadata:   metadata,
	}

	// A savepoint keeps a failed audit insert from aborting the caller's transaction
	err := tx.Transaction(func(sp *gorm.DB) error {
		return s.auditRepo.Create(sp, auditLog)
	})
	if err != nil {
		s.log.Warnf("Failed to create audit log: %+v", err)
		return err
	}

	return nil
}
