package repository

import (
	"errors"
	"strings"

	"sistema-provale/internal/domain/entity"
	domainRepo "sistema-provale/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type asociacionRepository struct{}

func NewAsociacionRepository() domainRepo.AsociacionRepository {
	return &asociacionRepository{}
}

func (r *asociacionRepository) Create(db *gorm.DB, asociacion *entity.Asociacion) error {
	return db.Omit(clause.Associations).Create(asociacion).Error
}

func asociacionScope(filter *entity.AsociacionFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if filter == nil {
			return db
		}
		if filter.Search != "" {
			like := "%" + strings.ToLower(filter.Search) + "%"
			db = db.Where(`LOWER("codigoAsociacion") LIKE ? OR LOWER("nombreAsociacion") LIKE ?`, like, like)
		}
		if filter.CodEstado != nil {
			db = db.Where(`"codEstado" = ?`, *filter.CodEstado)
		}
		return db
	}
}

func (r *asociacionRepository) FindAll(db *gorm.DB, filter *entity.AsociacionFilter) ([]entity.Asociacion, int64, error) {
	var asociaciones []entity.Asociacion
	var total int64

	if err := db.Model(&entity.Asociacion{}).Scopes(asociacionScope(filter)).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := db.Scopes(asociacionScope(filter)).
		Preload("TipoLocal").Preload("Estado").
		Order(`"nombreAsociacion" ASC`)
	if filter != nil && filter.Limit > 0 {
		query = query.Limit(filter.Limit).Offset(filter.Offset)
	}
	if err := query.Find(&asociaciones).Error; err != nil {
		return nil, 0, err
	}

	return asociaciones, total, nil
}

func (r *asociacionRepository) FindByID(db *gorm.DB, id int) (*entity.Asociacion, error) {
	var asociacion entity.Asociacion
	err := db.
		Preload("SectorZona.Zona").Preload("SectorZona.Sector").
		Preload("TipoLocal").Preload("Estado").
		Where(`"codAsociacion" = ?`, id).
		First(&asociacion).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &asociacion, nil
}

func (r *asociacionRepository) Update(db *gorm.DB, asociacion *entity.Asociacion) error {
	return db.Omit(clause.Associations).Save(asociacion).Error
}

func (r *asociacionRepository) Delete(db *gorm.DB, id int) (int64, error) {
	result := db.Where(`"codAsociacion" = ?`, id).Delete(&entity.Asociacion{})
	return result.RowsAffected, result.Error
}

func (r *asociacionRepository) Count(db *gorm.DB) (int64, error) {
	var total int64
	err := db.Model(&entity.Asociacion{}).Count(&total).Error
	return total, err
}

type reconocimientoRepository struct{}

func NewReconocimientoRepository() domainRepo.ReconocimientoRepository {
	return &reconocimientoRepository{}
}

func (r *reconocimientoRepository) Create(db *gorm.DB, reconocimiento *entity.Reconocimiento) error {
	return db.Omit(clause.Associations).Create(reconocimiento).Error
}

func (r *reconocimientoRepository) FindByAsociacionID(db *gorm.DB, asociacionID int) ([]entity.Reconocimiento, error) {
	var reconocimientos []entity.Reconocimiento
	err := db.Preload("Estado").
		Where(`"codAsociacion" = ?`, asociacionID).
		Order(`"fechaInicio" DESC`).
		Find(&reconocimientos).Error
	if err != nil {
		return nil, err
	}
	return reconocimientos, nil
}

func (r *reconocimientoRepository) FindByID(db *gorm.DB, id int) (*entity.Reconocimiento, error) {
	var reconocimiento entity.Reconocimiento
	err := db.Preload("Estado").Where(`"codReconocimiento" = ?`, id).First(&reconocimiento).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &reconocimiento, nil
}

func (r *reconocimientoRepository) Delete(db *gorm.DB, id int) (int64, error) {
	result := db.Where(`"codReconocimiento" = ?`, id).Delete(&entity.Reconocimiento{})
	return result.RowsAffected, result.Error
}

type directivaRepository struct{}

func NewDirectivaRepository() domainRepo.DirectivaRepository {
	return &directivaRepository{}
}

func (r *directivaRepository) Create(db *gorm.DB, directiva *entity.Directiva) error {
	return db.Omit(clause.Associations).Create(directiva).Error
}

func (r *directivaRepository) FindByReconocimientoID(db *gorm.DB, reconocimientoID int) ([]entity.Directiva, error) {
	var directivas []entity.Directiva
	err := db.Preload("Socio.Persona").Preload("Cargo").Preload("Estado").
		Where(`"codReconocimiento" = ?`, reconocimientoID).
		Order(`"codCargo" ASC`).
		Find(&directivas).Error
	if err != nil {
		return nil, err
	}
	return directivas, nil
}

func (r *directivaRepository) Delete(db *gorm.DB, id int) (int64, error) {
	result := db.Where(`"codDirectiva" = ?`, id).Delete(&entity.Directiva{})
	return result.RowsAffected, result.Error
}
