package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	entrada = &TipoMovimiento{CodTipoMovimiento: 1, Descripcion: TipoMovimientoEntrada}
	salida  = &TipoMovimiento{CodTipoMovimiento: 2, Descripcion: TipoMovimientoSalida}
)

func mov(tipo *TipoMovimiento, cantidad int) Movimiento {
	return Movimiento{Cantidad: cantidad, TipoMovimiento: tipo}
}

func TestStockReal(t *testing.T) {
	tests := []struct {
		name        string
		movimientos []Movimiento
		want        int
	}{
		{
			name:        "mixed entries and exits",
			movimientos: []Movimiento{mov(entrada, 100), mov(salida, 50), mov(entrada, 200), mov(salida, 25)},
			want:        225,
		},
		{
			name:        "no movements",
			movimientos: nil,
			want:        0,
		},
		{
			name:        "exits only go negative",
			movimientos: []Movimiento{mov(salida, 10)},
			want:        -10,
		},
		{
			name: "unknown type subtracts",
			movimientos: []Movimiento{
				mov(entrada, 30),
				mov(&TipoMovimiento{Descripcion: "AJUSTE"}, 5),
			},
			want: 25,
		},
		{
			name:        "lowercase entrada is not an entry",
			movimientos: []Movimiento{mov(&TipoMovimiento{Descripcion: "entrada"}, 7)},
			want:        -7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := StockReal(tt.movimientos)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStockReal_RequiresTipoMovimiento(t *testing.T) {
	_, err := StockReal([]Movimiento{mov(entrada, 10), {Cantidad: 3}})
	assert.ErrorIs(t, err, ErrTipoMovimientoNoCargado)
}

func TestMovimiento_CalcularTotal(t *testing.T) {
	m := &Movimiento{
		Cantidad:       12,
		PrecioUnitario: decimal.RequireFromString("3.50"),
		PrecioTotal:    decimal.RequireFromString("999.99"),
	}

	m.CalcularTotal()
	assert.True(t, decimal.RequireFromString("42.00").Equal(m.PrecioTotal), "got %s", m.PrecioTotal)
}

func TestMovimiento_BeforeSaveOverridesTotal(t *testing.T) {
	m := &Movimiento{
		Cantidad:       3,
		PrecioUnitario: decimal.RequireFromString("1.25"),
		PrecioTotal:    decimal.RequireFromString("100"),
	}

	require.NoError(t, m.BeforeSave(nil))
	assert.True(t, decimal.RequireFromString("3.75").Equal(m.PrecioTotal), "got %s", m.PrecioTotal)
}
