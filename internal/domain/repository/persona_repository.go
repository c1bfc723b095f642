package repository

import (
	"time"

	"sistema-provale/internal/domain/entity"

	"gorm.io/gorm"
)

type PersonaRepository interface {
	Create(db *gorm.DB, persona *entity.Persona) error
	FindAll(db *gorm.DB, filter *entity.PersonaFilter) ([]entity.Persona, int64, error)
	FindByID(db *gorm.DB, id int) (*entity.Persona, error)
	FindByDNI(db *gorm.DB, dni string) (*entity.Persona, error)
	Update(db *gorm.DB, persona *entity.Persona) error
	Delete(db *gorm.DB, id int) (int64, error)
}

type SocioRepository interface {
	Create(db *gorm.DB, socio *entity.Socio) error
	FindAll(db *gorm.DB, asociacionID *int) ([]entity.Socio, error)
	FindByID(db *gorm.DB, id int) (*entity.Socio, error)
	Delete(db *gorm.DB, id int) (int64, error)
	// CountVigentes counts memberships with no end date or one on/after at
	CountVigentes(db *gorm.DB, at time.Time) (int64, error)
}
