package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateProductoRequest struct {
	CodUnidadMedida int                 `json:"cod_unidad_medida" validate:"required,gt=0"`
	Descripcion     string              `json:"descripcion" validate:"required,max=100"`
	Abreviatura     *string             `json:"abreviatura" validate:"omitempty,max=5"`
	Stock           *int                `json:"stock" validate:"omitempty,gte=0"`
	PrecioUnitario  decimal.NullDecimal `json:"precio_unitario"`
	CodEstado       int                 `json:"cod_estado" validate:"required,gt=0"`
}

// CreateMovimientoRequest has no total: it is always quantity times unit price
type CreateMovimientoRequest struct {
	CodProducto       int             `json:"cod_producto" validate:"required,gt=0"`
	CodTipoMovimiento int             `json:"cod_tipo_movimiento" validate:"required,gt=0"`
	Cantidad          int             `json:"cantidad" validate:"required,gt=0"`
	PrecioUnitario    decimal.Decimal `json:"precio_unitario" validate:"gte=0"`
}

type MovimientoListQuery struct {
	ListQuery
	CodProducto       *int
	CodTipoMovimiento *int
	Desde             string
	Hasta             string
}

// Response DTOs

type ProductoResponse struct {
	CodProducto    int                 `json:"cod_producto"`
	Descripcion    string              `json:"descripcion"`
	Abreviatura    *string             `json:"abreviatura,omitempty"`
	UnidadMedida   string              `json:"unidad_medida,omitempty"`
	Stock          *int                `json:"stock,omitempty"`
	StockReal      int                 `json:"stock_real"`
	PrecioUnitario decimal.NullDecimal `json:"precio_unitario"`
	Estado         *EstadoResponse     `json:"estado,omitempty"`
	FechaRegistro  string              `json:"fecha_registro"`
}

type MovimientoResponse struct {
	CodMovimiento   int             `json:"cod_movimiento"`
	CodProducto     int             `json:"cod_producto"`
	Producto        string          `json:"producto,omitempty"`
	TipoMovimiento  string          `json:"tipo_movimiento,omitempty"`
	FechaMovimiento time.Time       `json:"fecha_movimiento"`
	Cantidad        int             `json:"cantidad"`
	PrecioUnitario  decimal.Decimal `json:"precio_unitario"`
	PrecioTotal     decimal.Decimal `json:"precio_total"`
}
