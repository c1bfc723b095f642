package usecase

import (
	"context"
	"errors"

	"sistema-provale/internal/converter"
	"sistema-provale/internal/delivery/dto"
	"sistema-provale/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAuditLogNotFound = errors.New("audit log not found")
)

type AuditLogUsecase interface {
	GetAllAuditLogs(ctx context.Context, query *dto.ListQuery) ([]dto.AuditLogResponse, int64, error)
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

func (u *auditLogUsecase) GetAllAuditLogs(ctx context.Context, query *dto.ListQuery) ([]dto.AuditLogResponse, int64, error) {
	query.Normalize()

	logs, total, err := u.auditLogRepo.FindAll(u.db.WithContext(ctx), query.Limit, query.Offset())
	if err != nil {
		u.log.Warnf("Failed to find all audit logs: %+v", err)
		return nil, 0, err
	}

	return converter.AuditLogsToResponses(logs), total, nil
}

func (u *auditLogUsecase) GetAuditLog(ctx context.Context, id int64) (*dto.AuditLogResponse, error) {
	auditLog, err := u.auditLogRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find audit log: %+v", err)
		return nil, err
	}
	if auditLog == nil {
		return nil, ErrAuditLogNotFound
	}

	return converter.AuditLogToResponse(auditLog), nil
}
