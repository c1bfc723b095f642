package repository

import (
	"time"

	"sistema-provale/internal/domain/entity"

	"gorm.io/gorm"
)

type UsuarioRepository interface {
	Create(db *gorm.DB, usuario *entity.Usuario) error
	FindByID(db *gorm.DB, id int) (*entity.Usuario, error)
	FindByUsername(db *gorm.DB, username string) (*entity.Usuario, error)
	UpdateLastLogin(db *gorm.DB, id int, at time.Time) error
	UpdatePassword(db *gorm.DB, id int, hash string) error
}
