package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type UnidadMedida struct {
	CodUnidadMedida int    `gorm:"column:codUnidadMedida;primaryKey;autoIncrement" json:"cod_unidad_medida"`
	Descripcion     string `gorm:"column:descripcion;type:varchar(100);not null" json:"descripcion"`
}

func (UnidadMedida) TableName() string {
	return "UnidadMedida"
}

// Producto is a distributable good. Stock is informational only;
// the quantity on hand is always derived from Movimientos (see StockReal).
type Producto struct {
	CodProducto     int                 `gorm:"column:codProducto;primaryKey;autoIncrement" json:"cod_producto"`
	CodUnidadMedida int                 `gorm:"column:codUnidadMedida;not null;index" json:"cod_unidad_medida"`
	Descripcion     string              `gorm:"column:descripcion;type:varchar(100);uniqueIndex;not null" json:"descripcion"`
	Abreviatura     *string             `gorm:"column:abreviatura;type:varchar(5)" json:"abreviatura,omitempty"`
	FechaRegistro   time.Time           `gorm:"column:fechaRegistro;autoCreateTime" json:"fecha_registro"`
	Stock           *int                `gorm:"column:stock" json:"stock,omitempty"`
	PrecioUnitario  decimal.NullDecimal `gorm:"column:precioUnitario;type:decimal(9,2)" json:"precio_unitario"`
	CodEstado       int                 `gorm:"column:codEstado;not null;index" json:"cod_estado"`

	// Relationships
	UnidadMedida *UnidadMedida `gorm:"foreignKey:CodUnidadMedida;references:CodUnidadMedida;belongsTo;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"unidad_medida,omitempty"`
	Estado       *Estado       `gorm:"foreignKey:CodEstado;references:CodEstado;belongsTo;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"estado,omitempty"`
}

func (Producto) TableName() string {
	return "Productos"
}

// TipoMovimiento descriptions. Only ENTRADA adds stock; anything else subtracts.
const (
	TipoMovimientoEntrada = "ENTRADA"
	TipoMovimientoSalida  = "SALIDA"
)

type TipoMovimiento struct {
	CodTipoMovimiento int    `gorm:"column:codTipoMovimiento;primaryKey;autoIncrement" json:"cod_tipo_movimiento"`
	Descripcion       string `gorm:"column:descripcion;type:varchar(100);not null" json:"descripcion"`
}

func (TipoMovimiento) TableName() string {
	return "TipoMovimiento"
}

func (t *TipoMovimiento) EsEntrada() bool {
	return t.Descripcion == TipoMovimientoEntrada
}

// Movimiento is a stock-affecting transaction. PrecioTotal is always
// Cantidad * PrecioUnitario; it is recomputed on every save.
type Movimiento struct {
	CodMovimiento     int             `gorm:"column:codMovimiento;primaryKey;autoIncrement" json:"cod_movimiento"`
	CodProducto       int             `gorm:"column:codProducto;not null;index" json:"cod_producto"`
	CodTipoMovimiento int             `gorm:"column:codTipoMovimiento;not null;index" json:"cod_tipo_movimiento"`
	FechaMovimiento   time.Time       `gorm:"column:fechaMovimiento;autoCreateTime;index" json:"fecha_movimiento"`
	Cantidad          int             `gorm:"column:cantidad;not null" json:"cantidad"`
	PrecioUnitario    decimal.Decimal `gorm:"column:precioUnitario;type:decimal(9,2);not null" json:"precio_unitario"`
	PrecioTotal       decimal.Decimal `gorm:"column:precioTotal;type:decimal(9,2);not null" json:"precio_total"`

	// Relationships
	Producto       *Producto       `gorm:"foreignKey:CodProducto;references:CodProducto;belongsTo;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"producto,omitempty"`
	TipoMovimiento *TipoMovimiento `gorm:"foreignKey:CodTipoMovimiento;references:CodTipoMovimiento;belongsTo;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"tipo_movimiento,omitempty"`
}

func (Movimiento) TableName() string {
	return "Movimientos"
}

// CalcularTotal overwrites PrecioTotal with Cantidad * PrecioUnitario
func (m *Movimiento) CalcularTotal() {
	m.PrecioTotal = decimal.NewFromInt(int64(m.Cantidad)).Mul(m.PrecioUnitario)
}

// BeforeSave runs on create and on full-row updates, discarding any caller-supplied total
func (m *Movimiento) BeforeSave(tx *gorm.DB) error {
	m.CalcularTotal()
	return nil
}

// CantidadConSigno is +Cantidad for ENTRADA and -Cantidad for every other type
func (m *Movimiento) CantidadConSigno() (int, error) {
	if m.TipoMovimiento == nil {
		return 0, ErrTipoMovimientoNoCargado
	}
	if m.TipoMovimiento.EsEntrada() {
		return m.Cantidad, nil
	}
	return -m.Cantidad, nil
}

// StockReal sums the signed quantities of a product's movements; zero movements yield 0.
// Every movement must have its TipoMovimiento loaded.
func StockReal(movimientos []Movimiento) (int, error) {
	stock := 0
	for i := range movimientos {
		cantidad, err := movimientos[i].CantidadConSigno()
		if err != nil {
			return 0, err
		}
		stock += cantidad
	}
	return stock, nil
}
