package repository

import (
	"errors"

	domainRepo "sistema-provale/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type catalogoRepository[T any] struct {
	pk string
}

// NewCatalogoRepository builds a repository for a lookup table whose primary key column is pk
func NewCatalogoRepository[T any](pk string) domainRepo.CatalogoRepository[T] {
	return &catalogoRepository[T]{pk: pk}
}

func (r *catalogoRepository[T]) byID(id int) clause.Expression {
	return clause.Eq{Column: clause.Column{Name: r.pk}, Value: id}
}

func (r *catalogoRepository[T]) Create(db *gorm.DB, item *T) error {
	return db.Create(item).Error
}

func (r *catalogoRepository[T]) FindAll(db *gorm.DB) ([]T, error) {
	var items []T
	err := db.Order(clause.OrderByColumn{Column: clause.Column{Name: "descripcion"}}).Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *catalogoRepository[T]) FindByID(db *gorm.DB, id int) (*T, error) {
	var item T
	err := db.Where(r.byID(id)).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *catalogoRepository[T]) FindByDescripcion(db *gorm.DB, descripcion string) (*T, error) {
	var item T
	err := db.Where(clause.Eq{Column: clause.Column{Name: "descripcion"}, Value: descripcion}).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *catalogoRepository[T]) Update(db *gorm.DB, item *T) error {
	return db.Omit(clause.Associations).Save(item).Error
}

func (r *catalogoRepository[T]) Delete(db *gorm.DB, id int) (int64, error) {
	result := db.Where(r.byID(id)).Delete(new(T))
	return result.RowsAffected, result.Error
}
