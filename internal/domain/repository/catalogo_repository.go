package repository

import "gorm.io/gorm"

// CatalogoRepository serves the plain lookup tables (roles, cargos, parentescos...).
// T is the entity type; rows are ordered by their description.
type CatalogoRepository[T any] interface {
	Create(db *gorm.DB, item *T) error
	FindAll(db *gorm.DB) ([]T, error)
	FindByID(db *gorm.DB, id int) (*T, error)
	FindByDescripcion(db *gorm.DB, descripcion string) (*T, error)
	Update(db *gorm.DB, item *T) error
	Delete(db *gorm.DB, id int) (int64, error)
}
