package repository

import (
	"errors"

	"sistema-provale/internal/domain/entity"
	domainRepo "sistema-provale/internal/domain/repository"

	"gorm.io/gorm"
)

type auditLogRepository struct{}

func NewAuditLogRepository() domainRepo.AuditLogRepository {
	return &auditLogRepository{}
}

func (r *auditLogRepository) Create(db *gorm.DB, log *entity.AuditLog) error {
	return db.Omit("Usuario").Create(log).Error
}

func (r *auditLogRepository) FindAll(db *gorm.DB, limit, offset int) ([]entity.AuditLog, int64, error) {
	var logs []entity.AuditLog
	var total int64

	if err := db.Model(&entity.AuditLog{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := db.Preload("Usuario.Rol").Order("created_at DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&logs).Error; err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}

func (r *auditLogRepository) FindByID(db *gorm.DB, id int64) (*entity.AuditLog, error) {
	var log entity.AuditLog
	err := db.Preload("Usuario.Rol").Where("id = ?", id).First(&log).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &log, nil
}
