package repository

import (
	"errors"

	"sistema-provale/internal/domain/entity"
	domainRepo "sistema-provale/internal/domain/repository"

	"gorm.io/gorm"
)

type tipoBeneficioRepository struct{}

func NewTipoBeneficioRepository() domainRepo.TipoBeneficioRepository {
	return &tipoBeneficioRepository{}
}

func (r *tipoBeneficioRepository) Create(db *gorm.DB, tipo *entity.TipoBeneficio) error {
	return db.Create(tipo).Error
}

func (r *tipoBeneficioRepository) FindAll(db *gorm.DB) ([]entity.TipoBeneficio, error) {
	var tipos []entity.TipoBeneficio
	err := db.Order("prioridad ASC, descripcion ASC").Find(&tipos).Error
	if err != nil {
		return nil, err
	}
	return tipos, nil
}

func (r *tipoBeneficioRepository) FindByID(db *gorm.DB, id int) (*entity.TipoBeneficio, error) {
	var tipo entity.TipoBeneficio
	err := db.Where(`"codTipoBeneficio" = ?`, id).First(&tipo).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tipo, nil
}

func (r *tipoBeneficioRepository) Update(db *gorm.DB, tipo *entity.TipoBeneficio) error {
	return db.Save(tipo).Error
}

func (r *tipoBeneficioRepository) Delete(db *gorm.DB, id int) (int64, error) {
	result := db.Where(`"codTipoBeneficio" = ?`, id).Delete(&entity.TipoBeneficio{})
	return result.RowsAffected, result.Error
}
