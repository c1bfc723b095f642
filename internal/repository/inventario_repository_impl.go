package repository

import (
	"errors"

	"sistema-provale/internal/domain/entity"
	domainRepo "sistema-provale/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// stockRealSelect signs each quantity by movement type: only ENTRADA adds
const stockRealSelect = `COALESCE(SUM(CASE WHEN tm.descripcion = ? THEN m.cantidad ELSE -m.cantidad END), 0)`

type stockRow struct {
	CodProducto int
	Stock       int
}

type productoRepository struct{}

func NewProductoRepository() domainRepo.ProductoRepository {
	return &productoRepository{}
}

func (r *productoRepository) Create(db *gorm.DB, producto *entity.Producto) error {
	return db.Omit(clause.Associations).Create(producto).Error
}

func (r *productoRepository) FindAll(db *gorm.DB) ([]entity.Producto, error) {
	var productos []entity.Producto
	err := db.Preload("UnidadMedida").Preload("Estado").Order("descripcion ASC").Find(&productos).Error
	if err != nil {
		return nil, err
	}
	return productos, nil
}

func (r *productoRepository) FindByID(db *gorm.DB, id int) (*entity.Producto, error) {
	var producto entity.Producto
	err := db.Preload("UnidadMedida").Preload("Estado").Where(`"codProducto" = ?`, id).First(&producto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &producto, nil
}

func (r *productoRepository) Update(db *gorm.DB, producto *entity.Producto) error {
	return db.Omit(clause.Associations).Save(producto).Error
}

func (r *productoRepository) Delete(db *gorm.DB, id int) (int64, error) {
	result := db.Where(`"codProducto" = ?`, id).Delete(&entity.Producto{})
	return result.RowsAffected, result.Error
}

func (r *productoRepository) Count(db *gorm.DB) (int64, error) {
	var total int64
	err := db.Model(&entity.Producto{}).Count(&total).Error
	return total, err
}

func (r *productoRepository) StockReal(db *gorm.DB, productoID int) (int, error) {
	var stock int
	err := db.Raw(
		`SELECT `+stockRealSelect+`
		FROM "Movimientos" m
		JOIN "TipoMovimiento" tm ON tm."codTipoMovimiento" = m."codTipoMovimiento"
		WHERE m."codProducto" = ?`,
		entity.TipoMovimientoEntrada, productoID,
	).Scan(&stock).Error
	if err != nil {
		return 0, err
	}
	return stock, nil
}

func (r *productoRepository) StocksReales(db *gorm.DB, productoIDs []int) (map[int]int, error) {
	stocks := make(map[int]int, len(productoIDs))
	if len(productoIDs) == 0 {
		return stocks, nil
	}

	var rows []stockRow
	err := db.Raw(
		`SELECT m."codProducto" AS cod_producto, `+stockRealSelect+` AS stock
		FROM "Movimientos" m
		JOIN "TipoMovimiento" tm ON tm."codTipoMovimiento" = m."codTipoMovimiento"
		WHERE m."codProducto" IN ?
		GROUP BY m."codProducto"`,
		entity.TipoMovimientoEntrada, productoIDs,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		stocks[row.CodProducto] = row.Stock
	}
	return stocks, nil
}

type tipoMovimientoRepository struct{}

func NewTipoMovimientoRepository() domainRepo.TipoMovimientoRepository {
	return &tipoMovimientoRepository{}
}

func (r *tipoMovimientoRepository) FindByID(db *gorm.DB, id int) (*entity.TipoMovimiento, error) {
	var tipo entity.TipoMovimiento
	err := db.Where(`"codTipoMovimiento" = ?`, id).First(&tipo).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tipo, nil
}

type movimientoRepository struct{}

func NewMovimientoRepository() domainRepo.MovimientoRepository {
	return &movimientoRepository{}
}

// Create goes through the BeforeSave hook, so PrecioTotal is always recomputed
func (r *movimientoRepository) Create(db *gorm.DB, movimiento *entity.Movimiento) error {
	return db.Omit(clause.Associations).Create(movimiento).Error
}

func movimientoScope(filter *entity.MovimientoFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if filter == nil {
			return db
		}
		if filter.CodProducto != nil {
			db = db.Where(`"codProducto" = ?`, *filter.CodProducto)
		}
		if filter.CodTipoMovimiento != nil {
			db = db.Where(`"codTipoMovimiento" = ?`, *filter.CodTipoMovimiento)
		}
		if filter.Desde != nil {
			db = db.Where(`"fechaMovimiento" >= ?`, *filter.Desde)
		}
		if filter.Hasta != nil {
			db = db.Where(`"fechaMovimiento" <= ?`, *filter.Hasta)
		}
		return db
	}
}

func (r *movimientoRepository) FindAll(db *gorm.DB, filter *entity.MovimientoFilter) ([]entity.Movimiento, int64, error) {
	var movimientos []entity.Movimiento
	var total int64

	if err := db.Model(&entity.Movimiento{}).Scopes(movimientoScope(filter)).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := db.Scopes(movimientoScope(filter)).
		Preload("Producto").Preload("TipoMovimiento").
		Order(`"fechaMovimiento" DESC, "codMovimiento" DESC`)
	if filter != nil && filter.Limit > 0 {
		query = query.Limit(filter.Limit).Offset(filter.Offset)
	}
	if err := query.Find(&movimientos).Error; err != nil {
		return nil, 0, err
	}

	return movimientos, total, nil
}

func (r *movimientoRepository) FindByProductoID(db *gorm.DB, productoID int) ([]entity.Movimiento, error) {
	var movimientos []entity.Movimiento
	err := db.Preload("TipoMovimiento").
		Where(`"codProducto" = ?`, productoID).
		Order(`"fechaMovimiento" DESC, "codMovimiento" DESC`).
		Find(&movimientos).Error
	if err != nil {
		return nil, err
	}
	return movimientos, nil
}
