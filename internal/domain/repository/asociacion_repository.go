package repository

import (
	"sistema-provale/internal/domain/entity"

	"gorm.io/gorm"
)

type AsociacionRepository interface {
	Create(db *gorm.DB, asociacion *entity.Asociacion) error
	FindAll(db *gorm.DB, filter *entity.AsociacionFilter) ([]entity.Asociacion, int64, error)
	FindByID(db *gorm.DB, id int) (*entity.Asociacion, error)
	Update(db *gorm.DB, asociacion *entity.Asociacion) error
	Delete(db *gorm.DB, id int) (int64, error)
	Count(db *gorm.DB) (int64, error)
}

type ReconocimientoRepository interface {
	Create(db *gorm.DB, reconocimiento *entity.Reconocimiento) error
	FindByAsociacionID(db *gorm.DB, asociacionID int) ([]entity.Reconocimiento, error)
	FindByID(db *gorm.DB, id int) (*entity.Reconocimiento, error)
	Delete(db *gorm.DB, id int) (int64, error)
}

type DirectivaRepository interface {
	Create(db *gorm.DB, directiva *entity.Directiva) error
	FindByReconocimientoID(db *gorm.DB, reconocimientoID int) ([]entity.Directiva, error)
	Delete(db *gorm.DB, id int) (int64, error)
}
