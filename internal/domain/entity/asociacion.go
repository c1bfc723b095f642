package entity

import "time"

// TipoLocal classifies the premises an association works from (own, rented, lent...)
type TipoLocal struct {
	CodTipoLocal  int       `gorm:"column:codTipoLocal;primaryKey;autoIncrement" json:"cod_tipo_local"`
	Descripcion   string    `gorm:"column:descripcion;type:varchar(100);uniqueIndex;not null" json:"descripcion"`
	FechaRegistro time.Time `gorm:"column:fechaRegistro;autoCreateTime" json:"fecha_registro"`
}

func (TipoLocal) TableName() string {
	return "TiposLocal"
}

// Asociacion is a registered mothers' club. CodigoAsociacion identifies it regardless of name.
type Asociacion struct {
	CodAsociacion    int       `gorm:"column:codAsociacion;primaryKey;autoIncrement" json:"cod_asociacion"`
	CodigoAsociacion string    `gorm:"column:codigoAsociacion;type:varchar(20);uniqueIndex;not null" json:"codigo_asociacion"`
	NombreAsociacion *string   `gorm:"column:nombreAsociacion;type:varchar(100);uniqueIndex" json:"nombre_asociacion,omitempty"`
	CodSectorZona    int       `gorm:"column:codSectorZona;not null;index" json:"cod_sector_zona"`
	CodTipoLocal     int       `gorm:"column:codTipoLocal;not null;index" json:"cod_tipo_local"`
	Direccion        string    `gorm:"column:direccion;type:varchar(200);not null" json:"direccion"`
	NumeroFinca      *int      `gorm:"column:numeroFinca" json:"numero_finca,omitempty"`
	Observaciones    *string   `gorm:"column:observaciones;type:varchar(255)" json:"observaciones,omitempty"`
	FechaRegistro    time.Time `gorm:"column:fechaRegistro;autoCreateTime" json:"fecha_registro"`
	CodEstado        int       `gorm:"column:codEstado;not null;index" json:"cod_estado"`

	// Relationships
	SectorZona *SectorZona `gorm:"foreignKey:CodSectorZona;references:CodSectorZona;belongsTo;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"sector_zona,omitempty"`
	TipoLocal  *TipoLocal  `gorm:"foreignKey:CodTipoLocal;references:CodTipoLocal;belongsTo;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"tipo_local,omitempty"`
	Estado     *Estado     `gorm:"foreignKey:CodEstado;references:CodEstado;belongsTo;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"estado,omitempty"`
}

func (Asociacion) TableName() string {
	return "Asociaciones"
}

// Reconocimiento is an official recognition document with a validity window
type Reconocimiento struct {
	CodReconocimiento int       `gorm:"column:codReconocimiento;primaryKey;autoIncrement" json:"cod_reconocimiento"`
	CodAsociacion     int       `gorm:"column:codAsociacion;not null;index" json:"cod_asociacion"`
	Documento         string    `gorm:"column:documento;type:varchar(100);not null" json:"documento"`
	FechaDocumento    time.Time `gorm:"column:fechaDocumento;autoCreateTime" json:"fecha_documento"`
	FechaRegistro     time.Time `gorm:"column:fechaRegistro;autoCreateTime" json:"fecha_registro"`
	FechaInicio       time.Time `gorm:"column:fechaInicio;type:date;not null" json:"fecha_inicio"`
	FechaFin          time.Time `gorm:"column:fechaFin;type:date;not null" json:"fecha_fin"`
	CodEstado         int       `gorm:"column:codEstado;not null;index" json:"cod_estado"`

	// Relationships
	Asociacion *Asociacion `gorm:"foreignKey:CodAsociacion;references:CodAsociacion;belongsTo;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"asociacion,omitempty"`
	Estado     *Estado     `gorm:"foreignKey:CodEstado;references:CodEstado;belongsTo;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"estado,omitempty"`
}

func (Reconocimiento) TableName() string {
	return "Reconocimientos"
}

// ValidarVigencia rejects a window whose end precedes its start
func (r *Reconocimiento) ValidarVigencia() error {
	return validarRango(&r.FechaInicio, &r.FechaFin)
}

// VigenteEn reports whether the date falls inside [FechaInicio, FechaFin], day granularity
func (r *Reconocimiento) VigenteEn(t time.Time) bool {
	dia := truncarDia(t)
	return !dia.Before(truncarDia(r.FechaInicio)) && !dia.After(truncarDia(r.FechaFin))
}

// Cargo is a board position (president, secretary, treasurer...)
type Cargo struct {
	CodCargo      int       `gorm:"column:codCargo;primaryKey;autoIncrement" json:"cod_cargo"`
	Descripcion   string    `gorm:"column:descripcion;type:varchar(100);not null" json:"descripcion"`
	FechaRegistro time.Time `gorm:"column:fechaRegistro;autoCreateTime" json:"fecha_registro"`
}

func (Cargo) TableName() string {
	return "Cargos"
}

// Directiva assigns a Cargo to a Socio for one Reconocimiento period.
// A socio holds at most one cargo per period; other periods may assign a different one.
type Directiva struct {
	CodDirectiva      int       `gorm:"column:codDirectiva;primaryKey;autoIncrement" json:"cod_directiva"`
	CodReconocimiento int       `gorm:"column:codReconocimiento;not null;uniqueIndex:idx_directivas_periodo_socio" json:"cod_reconocimiento"`
	CodSocio          int       `gorm:"column:codSocio;not null;uniqueIndex:idx_directivas_periodo_socio" json:"cod_socio"`
	CodCargo          int       `gorm:"column:codCargo;not null;index" json:"cod_cargo"`
	FechaRegistro     time.Time `gorm:"column:fechaRegistro;autoCreateTime" json:"fecha_registro"`
	CodEstado         int       `gorm:"column:codEstado;not null;index" json:"cod_estado"`

	// Relationships
	Reconocimiento *Reconocimiento `gorm:"foreignKey:CodReconocimiento;references:CodReconocimiento;belongsTo;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"reconocimiento,omitempty"`
	Socio          *Socio          `gorm:"foreignKey:CodSocio;references:CodSocio;belongsTo;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"socio,omitempty"`
	Cargo          *Cargo          `gorm:"foreignKey:CodCargo;references:CodCargo;belongsTo;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"cargo,omitempty"`
	Estado         *Estado         `gorm:"foreignKey:CodEstado;references:CodEstado;belongsTo;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"estado,omitempty"`
}

func (Directiva) TableName() string {
	return "Directivas"
}
