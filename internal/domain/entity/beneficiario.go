package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Parentesco is the family relationship between a beneficiary and the sponsoring member
type Parentesco struct {
	CodParentesco int       `gorm:"column:codParentesco;primaryKey;autoIncrement" json:"cod_parentesco"`
	Descripcion   string    `gorm:"column:descripcion;type:varchar(100);uniqueIndex;not null" json:"descripcion"`
	FechaRegistro time.Time `gorm:"column:fechaRegistro;autoCreateTime" json:"fecha_registro"`
}

func (Parentesco) TableName() string {
	return "Parentescos"
}

// TipoBeneficio is a benefit kind (pregnant, nursing, child under 3...).
// Lower Prioridad is served first.
type TipoBeneficio struct {
	CodTipoBeneficio int       `gorm:"column:codTipoBeneficio;primaryKey;autoIncrement" json:"cod_tipo_beneficio"`
	Descripcion      string    `gorm:"column:descripcion;type:varchar(100);uniqueIndex;not null" json:"descripcion"`
	EdadMinima       *int      `gorm:"column:edadMinima" json:"edad_minima,omitempty"`
	EdadMaxima       *int      `gorm:"column:edadMaxima" json:"edad_maxima,omitempty"`
	Prioridad        int       `gorm:"column:prioridad;not null" json:"prioridad"`
	FechaRegistro    time.Time `gorm:"column:fechaRegistro;autoCreateTime" json:"fecha_registro"`
	Observaciones    *string   `gorm:"column:observaciones;type:varchar(255)" json:"observaciones,omitempty"`
}

func (TipoBeneficio) TableName() string {
	return "TiposBeneficio"
}

// AdmiteEdad reports whether an age in years falls inside the optional bounds
func (t *TipoBeneficio) AdmiteEdad(anios int) bool {
	if t.EdadMinima != nil && anios < *t.EdadMinima {
		return false
	}
	if t.EdadMaxima != nil && anios > *t.EdadMaxima {
		return false
	}
	return true
}

// EsObstetrico reports whether the benefit tracks pregnancy or nursing milestones
func (t *TipoBeneficio) EsObstetrico() bool {
	d := strings.ToUpper(t.Descripcion)
	return strings.Contains(d, "GESTA") || strings.Contains(d, "LACTA")
}

// MotivoInhabilitacion is a reason for removing a beneficiary from the program
type MotivoInhabilitacion struct {
	CodMotivoInhabilitacion int     `gorm:"column:codMotivoInhabilitacion;primaryKey;autoIncrement" json:"cod_motivo_inhabilitacion"`
	Descripcion             string  `gorm:"column:descripcion;type:varchar(100);uniqueIndex;not null" json:"descripcion"`
	Observacion             *string `gorm:"column:observacion;type:varchar(255)" json:"observacion,omitempty"`
}

func (MotivoInhabilitacion) TableName() string {
	return "MotivosInhabilitacion"
}

// Beneficiario links a benefit recipient to the member through whom they qualify
type Beneficiario struct {
	CodBeneficiario int       `gorm:"column:codBeneficiario;primaryKey;autoIncrement" json:"cod_beneficiario"`
	CodPersona      int       `gorm:"column:codPersona;not null;index" json:"cod_persona"`
	CodSocio        int       `gorm:"column:codSocio;not null;index" json:"cod_socio"`
	CodParentesco   int       `gorm:"column:codParentesco;not null;index" json:"cod_parentesco"`
	FechaRegistro   time.Time `gorm:"column:fechaRegistro;autoCreateTime" json:"fecha_registro"`

	// Relationships
	Persona    *Persona    `gorm:"foreignKey:CodPersona;references:CodPersona;belongsTo;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"persona,omitempty"`
	Socio      *Socio      `gorm:"foreignKey:CodSocio;references:CodSocio;belongsTo;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"socio,omitempty"`
	Parentesco *Parentesco `gorm:"foreignKey:CodParentesco;references:CodParentesco;belongsTo;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"parentesco,omitempty"`
}

func (Beneficiario) TableName() string {
	return "Beneficiarios"
}

// HistoricoBeneficiario is one benefit period with its nutritional measurements.
// Obstetric dates live in DatosObstetricos.
type HistoricoBeneficiario struct {
	CodHistoricoBeneficiario int                 `gorm:"column:codHistoricoBeneficiario;primaryKey;autoIncrement" json:"cod_historico_beneficiario"`
	CodTipoBeneficio         int                 `gorm:"column:codTipoBeneficio;not null;index" json:"cod_tipo_beneficio"`
	CodBeneficiario          int                 `gorm:"column:codBeneficiario;not null;index" json:"cod_beneficiario"`
	Peso                     decimal.NullDecimal `gorm:"column:peso;type:decimal(9,3)" json:"peso"`
	Talla                    decimal.NullDecimal `gorm:"column:talla;type:decimal(9,2)" json:"talla"`
	Hmg                      decimal.NullDecimal `gorm:"column:hmg;type:decimal(9,2)" json:"hmg"`
	FechaInicio              time.Time           `gorm:"column:fechaInicio;autoCreateTime" json:"fecha_inicio"`
	FechaTermino             *time.Time          `gorm:"column:fechaTermino" json:"fecha_termino,omitempty"`
	CodEstado                int                 `gorm:"column:codEstado;not null;index" json:"cod_estado"`
	CodMotivoInhabilitacion  *int                `gorm:"column:codMotivoInhabilitacion;index" json:"cod_motivo_inhabilitacion,omitempty"`

	// Relationships
	TipoBeneficio        *TipoBeneficio        `gorm:"foreignKey:CodTipoBeneficio;references:CodTipoBeneficio;belongsTo;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"tipo_beneficio,omitempty"`
	Beneficiario         *Beneficiario         `gorm:"foreignKey:CodBeneficiario;references:CodBeneficiario;belongsTo;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"beneficiario,omitempty"`
	Estado               *Estado               `gorm:"foreignKey:CodEstado;references:CodEstado;belongsTo;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"estado,omitempty"`
	MotivoInhabilitacion *MotivoInhabilitacion `gorm:"foreignKey:CodMotivoInhabilitacion;references:CodMotivoInhabilitacion;belongsTo;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"motivo_inhabilitacion,omitempty"`
}

func (HistoricoBeneficiario) TableName() string {
	return "HistoricoBeneficiarios"
}

func (h *HistoricoBeneficiario) Abierto() bool {
	return h.FechaTermino == nil
}

// Cerrar ends the period at fin, optionally recording why the beneficiary was disabled.
// Closing on the start day is allowed.
func (h *HistoricoBeneficiario) Cerrar(fin time.Time, codMotivo *int) error {
	if !h.Abierto() {
		return ErrPeriodoCerrado
	}
	if !h.FechaInicio.IsZero() && truncarDia(fin).Before(truncarDia(h.FechaInicio)) {
		return ErrRangoFechasInvalido
	}
	h.FechaTermino = &fin
	h.CodMotivoInhabilitacion = codMotivo
	return nil
}

// DatosObstetricos is the optional 1:1 obstetric follow-up of a history row.
// It is deleted together with its HistoricoBeneficiario.
type DatosObstetricos struct {
	CodDatoObstetrico        int        `gorm:"column:codDatoObstetrico;primaryKey;autoIncrement" json:"cod_dato_obstetrico"`
	CodHistoricoBeneficiario int        `gorm:"column:codHistoricoBeneficiario;not null;uniqueIndex" json:"cod_historico_beneficiario"`
	FechaUltimaMenstruacion  *time.Time `gorm:"column:fechaUltimaMestruacion;type:date" json:"fecha_ultima_menstruacion,omitempty"`
	FechaProbableParto       *time.Time `gorm:"column:fechaProbableParto;type:date" json:"fecha_probable_parto,omitempty"`
	FechaDeParto             *time.Time `gorm:"column:fechaDeParto;type:date" json:"fecha_de_parto,omitempty"`
	FechaFinLactancia        *time.Time `gorm:"column:fechaFinLactancia;type:date" json:"fecha_fin_lactancia,omitempty"`

	// Relationships
	Historico *HistoricoBeneficiario `gorm:"foreignKey:CodHistoricoBeneficiario;references:CodHistoricoBeneficiario;belongsTo;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (DatosObstetricos) TableName() string {
	return "DatosObstetricos"
}
