package usecase

import (
	"context"
	"testing"

	"sistema-provale/internal/delivery/dto"
	"sistema-provale/internal/domain/entity"
	"sistema-provale/internal/repository"
	"sistema-provale/internal/testutil"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInventarioUsecase(t *testing.T) (InventarioUsecase, *testutil.Fixture, func(action string) int64) {
	t.Helper()

	db := testutil.NewSQLiteDB(t)
	f := testutil.SeedFixture(t, db)
	uc := NewInventarioUsecase(
		db,
		testutil.NewLogger(),
		repository.NewProductoRepository(),
		repository.NewTipoMovimientoRepository(),
		repository.NewMovimientoRepository(),
		newAuditService(),
	)
	return uc, f, func(action string) int64 { return auditCount(t, db, action) }
}

func TestInventarioUsecase_StockReal(t *testing.T) {
	uc, f, audits := newInventarioUsecase(t)
	ctx := context.Background()

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
		_, err := uc.CreateMovimiento(ctx, &dto.CreateMovimientoRequest{
			CodProducto:       f.Producto.CodProducto,
			CodTipoMovimiento: m.tipo,
			Cantidad:          m.cantidad,
			PrecioUnitario:    decimal.RequireFromString("3.20"),
		})
		require.NoError(t, err)
	}

	producto, err := uc.GetProducto(ctx, f.Producto.CodProducto)
	require.NoError(t, err)
	assert.Equal(t, 225, producto.StockReal)
	assert.Equal(t, "Kilogramo", producto.UnidadMedida)

	productos, err := uc.GetProductos(ctx)
	require.NoError(t, err)
	require.Len(t, productos, 1)
	assert.Equal(t, 225, productos[0].StockReal)

	assert.Equal(t, int64(4), audits(entity.AuditActionMovimientoCreate))
}

func TestInventarioUsecase_CreateProducto(t *testing.T) {
	uc, f, _ := newInventarioUsecase(t)
	ctx := context.Background()

	t.Run("new product starts with zero stock", func(t *testing.T) {
		producto, err := uc.CreateProducto(ctx, &dto.CreateProductoRequest{
			CodUnidadMedida: f.Unidad.CodUnidadMedida,
			Descripcion:     "  Avena  ",
			Stock:           testutil.IntPtr(40),
			CodEstado:       f.Estado.CodEstado,
		})
		require.NoError(t, err)
		assert.Equal(t, "Avena", producto.Descripcion)
		assert.Equal(t, 0, producto.StockReal)
		require.NotNil(t, producto.Stock)
		assert.Equal(t, 40, *producto.Stock)
	})

	t.Run("duplicate description", func(t *testing.T) {
		_, err := uc.CreateProducto(ctx, &dto.CreateProductoRequest{
			CodUnidadMedida: f.Unidad.CodUnidadMedida,
			Descripcion:     "Leche evaporada",
			CodEstado:       f.Estado.CodEstado,
		})
		assert.ErrorIs(t, err, ErrDuplicado)
	})

	t.Run("unknown unit", func(t *testing.T) {
		_, err := uc.CreateProducto(ctx, &dto.CreateProductoRequest{
			CodUnidadMedida: 999,
			Descripcion:     "Arroz",
			CodEstado:       f.Estado.CodEstado,
		})
		assert.ErrorIs(t, err, ErrReferenciaInvalida)
	})

	t.Run("missing product", func(t *testing.T) {
		_, err := uc.GetProducto(ctx, 999)
		assert.ErrorIs(t, err, ErrProductoNotFound)
	})
}

func TestInventarioUsecase_CreateMovimiento(t *testing.T) {
	uc, f, _ := newInventarioUsecase(t)
	ctx := context.Background()

	t.Run("total is quantity times unit price", func(t *testing.T) {
		movimiento, err := uc.CreateMovimiento(ctx, &dto.CreateMovimientoRequest{
			CodProducto:       f.Producto.CodProducto,
			CodTipoMovimiento: f.Entrada.CodTipoMovimiento,
			Cantidad:          12,
			PrecioUnitario:    decimal.RequireFromString("3.25"),
		})
		require.NoError(t, err)
		assert.True(t, movimiento.PrecioTotal.Equal(decimal.RequireFromString("39.00")))
		assert.Equal(t, entity.TipoMovimientoEntrada, movimiento.TipoMovimiento)
		assert.Equal(t, "Leche evaporada", movimiento.Producto)
	})

	t.Run("unknown movement type", func(t *testing.T) {
		_, err := uc.CreateMovimiento(ctx, &dto.CreateMovimientoRequest{
			CodProducto:       f.Producto.CodProducto,
			CodTipoMovimiento: 999,
			Cantidad:          1,
		})
		assert.ErrorIs(t, err, ErrTipoMovimientoNotFound)
	})

	t.Run("unknown product", func(t *testing.T) {
		_, err := uc.CreateMovimiento(ctx, &dto.CreateMovimientoRequest{
			CodProducto:       999,
			CodTipoMovimiento: f.Entrada.CodTipoMovimiento,
			Cantidad:          1,
		})
		assert.ErrorIs(t, err, ErrProductoNotFound)
	})
}

func TestInventarioUsecase_AuditFailureIsLogged(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	f := testutil.SeedFixture(t, db)
	log, hook := logtest.NewNullLogger()
	uc := NewInventarioUsecase(
		db,
		log,
		repository.NewProductoRepository(),
		repository.NewTipoMovimientoRepository(),
		repository.NewMovimientoRepository(),
		failingAuditService{},
	)

	movimiento, err := uc.CreateMovimiento(context.Background(), &dto.CreateMovimientoRequest{
		CodProducto:       f.Producto.CodProducto,
		CodTipoMovimiento: f.Entrada.CodTipoMovimiento,
		Cantidad:          5,
		PrecioUnitario:    decimal.RequireFromString("3.20"),
	})
	require.NoError(t, err)
	assert.NotZero(t, movimiento.CodMovimiento)

	var warnings []string
	for _, entry := range hook.AllEntries() {
		if entry.Level == logrus.WarnLevel {
			warnings = append(warnings, entry.Message)
		}
	}
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "Failed to create audit log")
	assert.Contains(t, warnings[0], errAuditUnavailable.Error())
}

func TestInventarioUsecase_GetMovimientos(t *testing.T) {
	uc, f, _ := newInventarioUsecase(t)
	ctx := context.Background()

	for _, tipo := range []int{f.Entrada.CodTipoMovimiento, f.Salida.CodTipoMovimiento, f.Entrada.CodTipoMovimiento} {
		_, err := uc.CreateMovimiento(ctx, &dto.CreateMovimientoRequest{
			CodProducto:       f.Producto.CodProducto,
			CodTipoMovimiento: tipo,
			Cantidad:          5,
			PrecioUnitario:    decimal.NewFromInt(2),
		})
		require.NoError(t, err)
	}

	t.Run("filters by type", func(t *testing.T) {
		items, total, err := uc.GetMovimientos(ctx, &dto.MovimientoListQuery{CodTipoMovimiento: &f.Entrada.CodTipoMovimiento})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Len(t, items, 2)
	})

	t.Run("pages results", func(t *testing.T) {
		items, total, err := uc.GetMovimientos(ctx, &dto.MovimientoListQuery{ListQuery: dto.ListQuery{Page: 2, Limit: 2}})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.Len(t, items, 1)
	})

	t.Run("rejects malformed dates", func(t *testing.T) {
		_, _, err := uc.GetMovimientos(ctx, &dto.MovimientoListQuery{Desde: "2025-13-01"})
		assert.ErrorIs(t, err, ErrFechaInvalida)
	})

	t.Run("movements of one product", func(t *testing.T) {
		items, err := uc.GetMovimientosProducto(ctx, f.Producto.CodProducto)
		require.NoError(t, err)
		assert.Len(t, items, 3)

		_, err = uc.GetMovimientosProducto(ctx, 999)
		assert.ErrorIs(t, err, ErrProductoNotFound)
	})
}
