package repository

import (
	"sistema-provale/internal/domain/entity"

	"gorm.io/gorm"
)

type AuditLogRepository interface {
	Create(db *gorm.DB, log *entity.AuditLog) error
	FindAll(db *gorm.DB, limit, offset int) ([]entity.AuditLog, int64, error)
	FindByID(db *gorm.DB, id int64) (*entity.AuditLog, error)
}
