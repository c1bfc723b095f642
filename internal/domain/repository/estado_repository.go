package repository

import (
	"sistema-provale/internal/domain/entity"

	"gorm.io/gorm"
)

type EstadoRepository interface {
	Create(db *gorm.DB, estado *entity.Estado) error
	FindAll(db *gorm.DB) ([]entity.Estado, error)
	FindByID(db *gorm.DB, id int) (*entity.Estado, error)
	FindByAbreviatura(db *gorm.DB, abreviatura string) (*entity.Estado, error)
	Update(db *gorm.DB, estado *entity.Estado) error
	Delete(db *gorm.DB, id int) (int64, error)
}
