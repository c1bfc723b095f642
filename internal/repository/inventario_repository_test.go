package repository

import (
	"regexp"
	"testing"

	"sistema-provale/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductoRepository_StockReal(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixture(t, db)
	productoRepo := NewProductoRepository()
	movimientoRepo := NewMovimientoRepository()

	movimientos := []struct {
		tipo     int
		cantidad int
	}{
		{f.Entrada.CodTipoMovimiento, 100},
		{f.Salida.CodTipoMovimiento, 50},
		{f.Entrada.CodTipoMovimiento, 200},
		{f.Salida.CodTipoMovimiento, 25},
	}
	for _, m := range movimientos {
		require.NoError(t, movimientoRepo.Create(db, &entity.Movimiento{
			CodProducto:       f.Producto.CodProducto,
			CodTipoMovimiento: m.tipo,
			Cantidad:          m.cantidad,
			PrecioUnitario:    decimal.RequireFromString("3.20"),
		}))
	}

	t.Run("aggregates signed quantities", func(t *testing.T) {
		stock, err := productoRepo.StockReal(db, f.Producto.CodProducto)
		require.NoError(t, err)
		assert.Equal(t, 225, stock)
	})

	t.Run("matches the in-memory computation", func(t *testing.T) {
		loaded, err := movimientoRepo.FindByProductoID(db, f.Producto.CodProducto)
		require.NoError(t, err)
		require.Len(t, loaded, 4)

		stock, err := entity.StockReal(loaded)
		require.NoError(t, err)
		assert.Equal(t, 225, stock)
	})

	t.Run("product without movements has zero stock", func(t *testing.T) {
		otro := entity.Producto{
			CodUnidadMedida: f.Unidad.CodUnidadMedida,
			Descripcion:     "Avena",
			CodEstado:       f.Estado.CodEstado,
		}
		require.NoError(t, productoRepo.Create(db, &otro))

		stock, err := productoRepo.StockReal(db, otro.CodProducto)
		require.NoError(t, err)
		assert.Equal(t, 0, stock)

		stocks, err := productoRepo.StocksReales(db, []int{f.Producto.CodProducto, otro.CodProducto})
		require.NoError(t, err)
		assert.Equal(t, 225, stocks[f.Producto.CodProducto])
		_, found := stocks[otro.CodProducto]
		assert.False(t, found)
	})
}

func TestMovimientoRepository_CreateRecomputesTotal(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixture(t, db)
	repo := NewMovimientoRepository()

	movimiento := &entity.Movimiento{
		CodProducto:       f.Producto.CodProducto,
		CodTipoMovimiento: f.Entrada.CodTipoMovimiento,
		Cantidad:          3,
		PrecioUnitario:    decimal.RequireFromString("1.25"),
		PrecioTotal:       decimal.RequireFromString("999"),
	}
	require.NoError(t, repo.Create(db, movimiento))

	var stored entity.Movimiento
	require.NoError(t, db.First(&stored, movimiento.CodMovimiento).Error)
	assert.True(t, decimal.RequireFromString("3.75").Equal(stored.PrecioTotal.Round(2)), "got %s", stored.PrecioTotal)
	assert.False(t, stored.FechaMovimiento.IsZero())
}

func TestMovimientoRepository_FindAllFilters(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixture(t, db)
	repo := NewMovimientoRepository()

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Create(db, &entity.Movimiento{
			CodProducto:       f.Producto.CodProducto,
			CodTipoMovimiento: f.Entrada.CodTipoMovimiento,
			Cantidad:          10,
			PrecioUnitario:    decimal.NewFromInt(1),
		}))
	}
	require.NoError(t, repo.Create(db, &entity.Movimiento{
		CodProducto:       f.Producto.CodProducto,
		CodTipoMovimiento: f.Salida.CodTipoMovimiento,
		Cantidad:          5,
		PrecioUnitario:    decimal.NewFromInt(1),
	}))

	tipo := f.Entrada.CodTipoMovimiento
	movimientos, total, err := repo.FindAll(db, &entity.MovimientoFilter{CodTipoMovimiento: &tipo, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, movimientos, 2)
	for _, m := range movimientos {
		require.NotNil(t, m.TipoMovimiento)
		assert.True(t, m.TipoMovimiento.EsEntrada())
	}
}

func TestProductoRepository_StockRealQuery(t *testing.T) {
	db, mock, _ := setupMockDB(t)
	repo := NewProductoRepository()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COALESCE(SUM(CASE WHEN tm.descripcion = $1 THEN m.cantidad ELSE -m.cantidad END), 0)`)).
		WithArgs(entity.TipoMovimientoEntrada, 7).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(42))

	stock, err := repo.StockReal(db, 7)
	require.NoError(t, err)
	assert.Equal(t, 42, stock)
	assert.NoError(t, mock.ExpectationsWereMet())
}
