package repository

import (
	"sistema-provale/internal/domain/entity"

	"gorm.io/gorm"
)

type TipoBeneficioRepository interface {
	Create(db *gorm.DB, tipo *entity.TipoBeneficio) error
	FindAll(db *gorm.DB) ([]entity.TipoBeneficio, error)
	FindByID(db *gorm.DB, id int) (*entity.TipoBeneficio, error)
	Update(db *gorm.DB, tipo *entity.TipoBeneficio) error
	Delete(db *gorm.DB, id int) (int64, error)
}
