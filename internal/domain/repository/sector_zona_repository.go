package repository

import (
	"sistema-provale/internal/domain/entity"

	"gorm.io/gorm"
)

type SectorZonaRepository interface {
	Create(db *gorm.DB, sz *entity.SectorZona) error
	FindAll(db *gorm.DB) ([]entity.SectorZona, error)
	FindByID(db *gorm.DB, id int) (*entity.SectorZona, error)
	Delete(db *gorm.DB, id int) (int64, error)
}
