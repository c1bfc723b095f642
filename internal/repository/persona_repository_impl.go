package repository

import (
	"errors"
	"strings"
	"time"

	"sistema-provale/internal/domain/entity"
	domainRepo "sistema-provale/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type personaRepository struct{}

func NewPersonaRepository() domainRepo.PersonaRepository {
	return &personaRepository{}
}

func (r *personaRepository) Create(db *gorm.DB, persona *entity.Persona) error {
	return db.Omit(clause.Associations).Create(persona).Error
}

func personaScope(filter *entity.PersonaFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if filter == nil || filter.Search == "" {
			return db
		}
		like := "%" + strings.ToLower(filter.Search) + "%"
		return db.Where(
			`dni LIKE ? OR LOWER(nombres) LIKE ? OR LOWER("apellidoPaterno") LIKE ? OR LOWER("apellidoMaterno") LIKE ?`,
			filter.Search+"%", like, like, like,
		)
	}
}

func (r *personaRepository) FindAll(db *gorm.DB, filter *entity.PersonaFilter) ([]entity.Persona, int64, error) {
	var personas []entity.Persona
	var total int64

	if err := db.Model(&entity.Persona{}).Scopes(personaScope(filter)).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := db.Scopes(personaScope(filter)).
		Order(`"apellidoPaterno" ASC, "apellidoMaterno" ASC, nombres ASC`)
	if filter != nil && filter.Limit > 0 {
		query = query.Limit(filter.Limit).Offset(filter.Offset)
	}
	if err := query.Find(&personas).Error; err != nil {
		return nil, 0, err
	}

	return personas, total, nil
}

func (r *personaRepository) FindByID(db *gorm.DB, id int) (*entity.Persona, error) {
	var persona entity.Persona
	err := db.Preload("SectorZona.Zona").Preload("SectorZona.Sector").
		Where(`"codPersona" = ?`, id).
		First(&persona).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &persona, nil
}

func (r *personaRepository) FindByDNI(db *gorm.DB, dni string) (*entity.Persona, error) {
	var persona entity.Persona
	err := db.Where("dni = ?", dni).First(&persona).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &persona, nil
}

func (r *personaRepository) Update(db *gorm.DB, persona *entity.Persona) error {
	return db.Omit(clause.Associations).Save(persona).Error
}

func (r *personaRepository) Delete(db *gorm.DB, id int) (int64, error) {
	result := db.Where(`"codPersona" = ?`, id).Delete(&entity.Persona{})
	return result.RowsAffected, result.Error
}

type socioRepository struct{}

func NewSocioRepository() domainRepo.SocioRepository {
	return &socioRepository{}
}

func (r *socioRepository) Create(db *gorm.DB, socio *entity.Socio) error {
	return db.Omit(clause.Associations).Create(socio).Error
}

func (r *socioRepository) FindAll(db *gorm.DB, asociacionID *int) ([]entity.Socio, error) {
	var socios []entity.Socio
	query := db.Preload("Persona").Preload("Asociacion").Preload("Estado")
	if asociacionID != nil {
		query = query.Where(`"codAsociacion" = ?`, *asociacionID)
	}
	if err := query.Order(`"fechaInicio" DESC`).Find(&socios).Error; err != nil {
		return nil, err
	}
	return socios, nil
}

func (r *socioRepository) FindByID(db *gorm.DB, id int) (*entity.Socio, error) {
	var socio entity.Socio
	err := db.Preload("Persona").Preload("Asociacion").Preload("Estado").
		Where(`"codSocio" = ?`, id).
		First(&socio).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &socio, nil
}

func (r *socioRepository) Delete(db *gorm.DB, id int) (int64, error) {
	result := db.Where(`"codSocio" = ?`, id).Delete(&entity.Socio{})
	return result.RowsAffected, result.Error
}

func (r *socioRepository) CountVigentes(db *gorm.DB, at time.Time) (int64, error) {
	var total int64
	err := db.Model(&entity.Socio{}).
		Where(`"fechaFin" IS NULL OR "fechaFin" >= ?`, at).
		Count(&total).Error
	return total, err
}
