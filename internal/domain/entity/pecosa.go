package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Pecosa is a distribution voucher issued to an association and signed by its presiding member.
// Its total is derived from the line items on read, never stored.
type Pecosa struct {
	CodPecosa          int        `gorm:"column:codPecosa;primaryKey;autoIncrement" json:"cod_pecosa"`
	CodAsociacion      int        `gorm:"column:codAsociacion;not null;index" json:"cod_asociacion"`
	NumeroPecosa       *string    `gorm:"column:numeroPecosa;type:varchar(8)" json:"numero_pecosa,omitempty"`
	CodSocioPresidenta int        `gorm:"column:codSocioPresidenta;not null;index" json:"cod_socio_presidenta"`
	FechaReparto       *time.Time `gorm:"column:fechaReparto" json:"fecha_reparto,omitempty"`
	FechaRegistro      time.Time  `gorm:"column:fechaRegistro;autoCreateTime;index" json:"fecha_registro"`
	Observacion        *string    `gorm:"column:observacion;type:varchar(255)" json:"observacion,omitempty"`
	CodEstado          int        `gorm:"column:codEstado;not null;index" json:"cod_estado"`

	// Relationships
	Asociacion      *Asociacion `gorm:"foreignKey:CodAsociacion;references:CodAsociacion;belongsTo;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"asociacion,omitempty"`
	SocioPresidenta *Socio      `gorm:"foreignKey:CodSocioPresidenta;references:CodSocio;belongsTo;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"socio_presidenta,omitempty"`
	Estado          *Estado     `gorm:"foreignKey:CodEstado;references:CodEstado;belongsTo;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"estado,omitempty"`
}

func (Pecosa) TableName() string {
	return "Pecosas"
}

// DetallePecosa is a voucher line. PrecioUnitario is the price at distribution time
// and is intentionally not re-read from Producto. Lines are deleted with their voucher.
type DetallePecosa struct {
	CodDetallePecosa int             `gorm:"column:codDetallePecosa;primaryKey;autoIncrement" json:"cod_detalle_pecosa"`
	CodProducto      int             `gorm:"column:codProducto;not null;index" json:"cod_producto"`
	CodPecosa        int             `gorm:"column:codPecosa;not null;index" json:"cod_pecosa"`
	Prioridad        int             `gorm:"column:prioridad;not null" json:"prioridad"`
	FechaDesde       *time.Time      `gorm:"column:fechaDesde" json:"fecha_desde,omitempty"`
	FechaHasta       *time.Time      `gorm:"column:fechaHasta" json:"fecha_hasta,omitempty"`
	Cantidad         int             `gorm:"column:cantidad;not null" json:"cantidad"`
	PrecioUnitario   decimal.Decimal `gorm:"column:precioUnitario;type:decimal(9,2);not null" json:"precio_unitario"`
	FechaRegistro    time.Time       `gorm:"column:fechaRegistro;autoCreateTime" json:"fecha_registro"`

	// Relationships
	Producto *Producto `gorm:"foreignKey:CodProducto;references:CodProducto;belongsTo;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"producto,omitempty"`
	Pecosa   *Pecosa   `gorm:"foreignKey:CodPecosa;references:CodPecosa;belongsTo;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (DetallePecosa) TableName() string {
	return "DetallePecosa"
}

func (d *DetallePecosa) Subtotal() decimal.Decimal {
	return decimal.NewFromInt(int64(d.Cantidad)).Mul(d.PrecioUnitario)
}

// ValidarVigencia rejects a price window whose end precedes its start; open windows pass
func (d *DetallePecosa) ValidarVigencia() error {
	return validarRango(d.FechaDesde, d.FechaHasta)
}

// TotalPecosa sums the line subtotals. A voucher without lines totals zero.
func TotalPecosa(detalles []DetallePecosa) decimal.Decimal {
	total := decimal.Zero
	for i := range detalles {
		total = total.Add(detalles[i].Subtotal())
	}
	return total
}
