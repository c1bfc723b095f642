package repository

import (
	"errors"
	"time"

	"sistema-provale/internal/domain/entity"
	domainRepo "sistema-provale/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type usuarioRepository struct{}

func NewUsuarioRepository() domainRepo.UsuarioRepository {
	return &usuarioRepository{}
}

func (r *usuarioRepository) Create(db *gorm.DB, usuario *entity.Usuario) error {
	return db.Omit(clause.Associations).Create(usuario).Error
}

func (r *usuarioRepository) FindByID(db *gorm.DB, id int) (*entity.Usuario, error) {
	var usuario entity.Usuario
	err := db.Preload("Rol").Preload("Estado").Where("id = ?", id).First(&usuario).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &usuario, nil
}

func (r *usuarioRepository) FindByUsername(db *gorm.DB, username string) (*entity.Usuario, error) {
	var usuario entity.Usuario
	err := db.Preload("Rol").Preload("Estado").Where("username = ?", username).First(&usuario).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &usuario, nil
}

func (r *usuarioRepository) UpdateLastLogin(db *gorm.DB, id int, at time.Time) error {
	return db.Model(&entity.Usuario{}).Where("id = ?", id).Update("last_login", at).Error
}

func (r *usuarioRepository) UpdatePassword(db *gorm.DB, id int, hash string) error {
	return db.Model(&entity.Usuario{}).Where("id = ?", id).Update("password", hash).Error
}
