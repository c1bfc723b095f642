package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request DTOs

type CreatePecosaRequest struct {
	CodAsociacion      int                          `json:"cod_asociacion" validate:"required,gt=0"`
	NumeroPecosa       *string                      `json:"numero_pecosa" validate:"omitempty,max=8"`
	CodSocioPresidenta int                          `json:"cod_socio_presidenta" validate:"required,gt=0"`
	FechaReparto       string                       `json:"fecha_reparto" validate:"omitempty,datetime=2006-01-02"`
	Observacion        *string                      `json:"observacion" validate:"omitempty,max=255"`
	CodEstado          int                          `json:"cod_estado" validate:"required,gt=0"`
	Detalles           []CreateDetallePecosaRequest `json:"detalles" validate:"omitempty,dive"`
}

type CreateDetallePecosaRequest struct {
	CodProducto    int                 `json:"cod_producto" validate:"required,gt=0"`
	Prioridad      int                 `json:"prioridad" validate:"gte=0"`
	FechaDesde     string              `json:"fecha_desde" validate:"omitempty,datetime=2006-01-02"`
	FechaHasta     string              `json:"fecha_hasta" validate:"omitempty,datetime=2006-01-02"`
	Cantidad       int                 `json:"cantidad" validate:"gte=0"`
	PrecioUnitario decimal.NullDecimal `json:"precio_unitario"`
}

type PecosaListQuery struct {
	ListQuery
	CodAsociacion *int
	CodEstado     *int
	Numero        string
}

// Response DTOs

type PecosaResponse struct {
	CodPecosa          int                     `json:"cod_pecosa"`
	CodAsociacion      int                     `json:"cod_asociacion"`
	Asociacion         string                  `json:"asociacion,omitempty"`
	NumeroPecosa       *string                 `json:"numero_pecosa,omitempty"`
	CodSocioPresidenta int                     `json:"cod_socio_presidenta"`
	Presidenta         string                  `json:"presidenta,omitempty"`
	FechaReparto       *string                 `json:"fecha_reparto,omitempty"`
	FechaRegistro      time.Time               `json:"fecha_registro"`
	Observacion        *string                 `json:"observacion,omitempty"`
	Estado             *EstadoResponse         `json:"estado,omitempty"`
	Total              decimal.Decimal         `json:"total"`
	Detalles           []DetallePecosaResponse `json:"detalles,omitempty"`
}

type DetallePecosaResponse struct {
	CodDetallePecosa int             `json:"cod_detalle_pecosa"`
	CodProducto      int             `json:"cod_producto"`
	Producto         string          `json:"producto,omitempty"`
	Prioridad        int             `json:"prioridad"`
	FechaDesde       *string         `json:"fecha_desde,omitempty"`
	FechaHasta       *string         `json:"fecha_hasta,omitempty"`
	Cantidad         int             `json:"cantidad"`
	PrecioUnitario   decimal.Decimal `json:"precio_unitario"`
	Subtotal         decimal.Decimal `json:"subtotal"`
}
