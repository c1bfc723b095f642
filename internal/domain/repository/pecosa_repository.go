package repository

import (
	"sistema-provale/internal/domain/entity"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PecosaRepository interface {
	Create(db *gorm.DB, pecosa *entity.Pecosa) error
	FindAll(db *gorm.DB, filter *entity.PecosaFilter) ([]entity.Pecosa, int64, error)
	FindByID(db *gorm.DB, id int) (*entity.Pecosa, error)
	Delete(db *gorm.DB, id int) (int64, error)
	Count(db *gorm.DB) (int64, error)
	// Totales sums cantidad * precioUnitario per voucher; vouchers without lines are absent
	Totales(db *gorm.DB, pecosaIDs []int) (map[int]decimal.Decimal, error)
}

type DetallePecosaRepository interface {
	Create(db *gorm.DB, detalle *entity.DetallePecosa) error
	FindByPecosaID(db *gorm.DB, pecosaID int) ([]entity.DetallePecosa, error)
}
