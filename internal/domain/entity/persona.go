package entity

import (
	"strings"
	"time"
)

// Persona holds the identity data shared by members and beneficiaries.
// Age is never stored; use Edad.
type Persona struct {
	CodPersona      int       `gorm:"column:codPersona;primaryKey;autoIncrement" json:"cod_persona"`
	Nombres         string    `gorm:"column:nombres;type:varchar(100);not null" json:"nombres"`
	ApellidoPaterno string    `gorm:"column:apellidoPaterno;type:varchar(50);not null" json:"apellido_paterno"`
	ApellidoMaterno string    `gorm:"column:apellidoMaterno;type:varchar(50);not null" json:"apellido_materno"`
	DNI             string    `gorm:"column:dni;type:varchar(8);uniqueIndex;not null" json:"dni"`
	Sexo            string    `gorm:"column:sexo;type:varchar(1);not null" json:"sexo"`
	Telefono        *string   `gorm:"column:telefono;type:varchar(6)" json:"telefono,omitempty"`
	Celular         *string   `gorm:"column:celular;type:varchar(9)" json:"celular,omitempty"`
	FechaNacimiento time.Time `gorm:"column:fechaNacimiento;type:date;not null" json:"fecha_nacimiento"`
	CodSectorZona   int       `gorm:"column:codSectorZona;not null;index" json:"cod_sector_zona"`
	Direccion       string    `gorm:"column:direccion;type:varchar(100);not null" json:"direccion"`
	NumeroFinca     *int      `gorm:"column:numeroFinca" json:"numero_finca,omitempty"`
	FechaRegistro   time.Time `gorm:"column:fechaRegistro;autoCreateTime" json:"fecha_registro"`

	// Relationships
	SectorZona *SectorZona `gorm:"foreignKey:CodSectorZona;references:CodSectorZona;belongsTo;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"sector_zona,omitempty"`
}

func (Persona) TableName() string {
	return "Personas"
}

// Sexo values
const (
	SexoMasculino = "M"
	SexoFemenino  = "F"
)

func (p *Persona) NombreCompleto() string {
	return strings.Join([]string{p.Nombres, p.ApellidoPaterno, p.ApellidoMaterno}, " ")
}

// Edad derives the age at the given date
func (p *Persona) Edad(hoy time.Time) (Edad, error) {
	if p.FechaNacimiento.IsZero() {
		return Edad{}, ErrFechaNacimientoRequerida
	}
	return CalcularEdad(p.FechaNacimiento, hoy), nil
}

// Socio links a Persona to an Asociacion for a period.
// A person may hold concurrent or historical memberships in different associations.
type Socio struct {
	CodSocio      int        `gorm:"column:codSocio;primaryKey;autoIncrement" json:"cod_socio"`
	CodPersona    int        `gorm:"column:codPersona;not null;index" json:"cod_persona"`
	CodAsociacion int        `gorm:"column:codAsociacion;not null;index" json:"cod_asociacion"`
	FechaRegistro time.Time  `gorm:"column:fechaRegistro;autoCreateTime" json:"fecha_registro"`
	FechaInicio   time.Time  `gorm:"column:fechaInicio;autoCreateTime" json:"fecha_inicio"`
	FechaFin      *time.Time `gorm:"column:fechaFin" json:"fecha_fin,omitempty"`
	Observaciones *string    `gorm:"column:observaciones;type:varchar(255)" json:"observaciones,omitempty"`
	CodEstado     int        `gorm:"column:codEstado;not null;index" json:"cod_estado"`

	// Relationships
	Persona    *Persona    `gorm:"foreignKey:CodPersona;references:CodPersona;belongsTo;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"persona,omitempty"`
	Asociacion *Asociacion `gorm:"foreignKey:CodAsociacion;references:CodAsociacion;belongsTo;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"asociacion,omitempty"`
	Estado     *Estado     `gorm:"foreignKey:CodEstado;references:CodEstado;belongsTo;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"estado,omitempty"`
}

func (Socio) TableName() string {
	return "Socios"
}

// ValidarPeriodo rejects an end date before the start date
func (s *Socio) ValidarPeriodo() error {
	if s.FechaInicio.IsZero() {
		return nil
	}
	return validarRango(&s.FechaInicio, s.FechaFin)
}

// VigenteEn reports whether the membership covers t
func (s *Socio) VigenteEn(t time.Time) bool {
	if !s.FechaInicio.IsZero() && t.Before(s.FechaInicio) {
		return false
	}
	return s.FechaFin == nil || !t.After(*s.FechaFin)
}
