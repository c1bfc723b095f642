package repository

import (
	"sistema-provale/internal/domain/entity"

	"gorm.io/gorm"
)

type ProductoRepository interface {
	Create(db *gorm.DB, producto *entity.Producto) error
	FindAll(db *gorm.DB) ([]entity.Producto, error)
	FindByID(db *gorm.DB, id int) (*entity.Producto, error)
	Update(db *gorm.DB, producto *entity.Producto) error
	Delete(db *gorm.DB, id int) (int64, error)
	Count(db *gorm.DB) (int64, error)
	// StockReal aggregates the signed movement quantities of one product in the database
	StockReal(db *gorm.DB, productoID int) (int, error)
	// StocksReales is StockReal for many products at once; products without movements are absent
	StocksReales(db *gorm.DB, productoIDs []int) (map[int]int, error)
}

type TipoMovimientoRepository interface {
	FindByID(db *gorm.DB, id int) (*entity.TipoMovimiento, error)
}

type MovimientoRepository interface {
	Create(db *gorm.DB, movimiento *entity.Movimiento) error
	FindAll(db *gorm.DB, filter *entity.MovimientoFilter) ([]entity.Movimiento, int64, error)
	FindByProductoID(db *gorm.DB, productoID int) ([]entity.Movimiento, error)
}
