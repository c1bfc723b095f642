package entity

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTotalPecosa(t *testing.T) {
	tests := []struct {
		name     string
		detalles []DetallePecosa
		want     string
	}{
		{
			name: "two lines",
			detalles: []DetallePecosa{
				{Cantidad: 10, PrecioUnitario: decimal.RequireFromString("2.50")},
				{Cantidad: 4, PrecioUnitario: decimal.RequireFromString("11.45")},
			},
			want: "70.80",
		},
		{
			name:     "no lines",
			detalles: nil,
			want:     "0",
		},
		{
			name: "zero quantity line",
			detalles: []DetallePecosa{
				{Cantidad: 0, PrecioUnitario: decimal.RequireFromString("8.00")},
			},
			want: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TotalPecosa(tt.detalles)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s want %s", got, tt.want)
		})
	}
}

func TestDetallePecosa_ValidarVigencia(t *testing.T) {
	desde := fecha(2025, time.March, 1)
	hasta := fecha(2025, time.March, 31)
	antes := fecha(2025, time.February, 1)

	tests := []struct {
		name    string
		desde   *time.Time
		hasta   *time.Time
		wantErr error
	}{
		{name: "closed window", desde: &desde, hasta: &hasta},
		{name: "open end", desde: &desde},
		{name: "open start", hasta: &hasta},
		{name: "same day", desde: &desde, hasta: &desde},
		{name: "end before start", desde: &desde, hasta: &antes, wantErr: ErrRangoFechasInvalido},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &DetallePecosa{FechaDesde: tt.desde, FechaHasta: tt.hasta}
			if tt.wantErr != nil {
				assert.ErrorIs(t, d.ValidarVigencia(), tt.wantErr)
				return
			}
			assert.NoError(t, d.ValidarVigencia())
		})
	}
}
