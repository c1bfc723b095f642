package repository

import (
	"errors"
	"strings"

	"sistema-provale/internal/domain/entity"
	domainRepo "sistema-provale/internal/domain/repository"

	"gorm.io/gorm"
)

type estadoRepository struct{}

func NewEstadoRepository() domainRepo.EstadoRepository {
	return &estadoRepository{}
}

func (r *estadoRepository) Create(db *gorm.DB, estado *entity.Estado) error {
	return db.Create(estado).Error
}

func (r *estadoRepository) FindAll(db *gorm.DB) ([]entity.Estado, error) {
	var estados []entity.Estado
	err := db.Order("descripcion ASC").Find(&estados).Error
	if err != nil {
		return nil, err
	}
	return estados, nil
}

func (r *estadoRepository) FindByID(db *gorm.DB, id int) (*entity.Estado, error) {
	var estado entity.Estado
	err := db.Where(`"codEstado" = ?`, id).First(&estado).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &estado, nil
}

func (r *estadoRepository) FindByAbreviatura(db *gorm.DB, abreviatura string) (*entity.Estado, error) {
	var estado entity.Estado
	err := db.Where("UPPER(abreviatura) = ?", strings.ToUpper(abreviatura)).First(&estado).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &estado, nil
}

func (r *estadoRepository) Update(db *gorm.DB, estado *entity.Estado) error {
	return db.Save(estado).Error
}

func (r *estadoRepository) Delete(db *gorm.DB, id int) (int64, error) {
	result := db.Where(`"codEstado" = ?`, id).Delete(&entity.Estado{})
	return result.RowsAffected, result.Error
}
