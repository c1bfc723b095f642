package dto

// Request DTOs

type CreateAsociacionRequest struct {
	CodigoAsociacion string  `json:"codigo_asociacion" validate:"required,max=20"`
	NombreAsociacion *string `json:"nombre_asociacion" validate:"omitempty,max=100"`
	CodSectorZona    int     `json:"cod_sector_zona" validate:"required,gt=0"`
	CodTipoLocal     int     `json:"cod_tipo_local" validate:"required,gt=0"`
	Direccion        string  `json:"direccion" validate:"required,max=200"`
	NumeroFinca      *int    `json:"numero_finca" validate:"omitempty,gte=0"`
	Observaciones    *string `json:"observaciones" validate:"omitempty,max=255"`
	CodEstado        int     `json:"cod_estado" validate:"required,gt=0"`
}

type AsociacionListQuery struct {
	ListQuery
	Search    string
	CodEstado *int
}

type CreateReconocimientoRequest struct {
	Documento      string `json:"documento" validate:"required,max=100"`
	FechaDocumento string `json:"fecha_documento" validate:"omitempty,datetime=2006-01-02"`
	FechaInicio    string `json:"fecha_inicio" validate:"required,datetime=2006-01-02"`
	FechaFin       string `json:"fecha_fin" validate:"required,datetime=2006-01-02"`
	CodEstado      int    `json:"cod_estado" validate:"required,gt=0"`
}

type CreateDirectivaRequest struct {
	CodSocio  int `json:"cod_socio" validate:"required,gt=0"`
	CodCargo  int `json:"cod_cargo" validate:"required,gt=0"`
	CodEstado int `json:"cod_estado" validate:"required,gt=0"`
}

// Response DTOs

type AsociacionResponse struct {
	CodAsociacion    int                 `json:"cod_asociacion"`
	CodigoAsociacion string              `json:"codigo_asociacion"`
	NombreAsociacion *string             `json:"nombre_asociacion,omitempty"`
	SectorZona       *SectorZonaResponse `json:"sector_zona,omitempty"`
	TipoLocal        *CatalogoResponse   `json:"tipo_local,omitempty"`
	Direccion        string              `json:"direccion"`
	NumeroFinca      *int                `json:"numero_finca,omitempty"`
	Observaciones    *string             `json:"observaciones,omitempty"`
	Estado           *EstadoResponse     `json:"estado,omitempty"`
	FechaRegistro    string              `json:"fecha_registro"`
}

type ReconocimientoResponse struct {
	CodReconocimiento int             `json:"cod_reconocimiento"`
	CodAsociacion     int             `json:"cod_asociacion"`
	Documento         string          `json:"documento"`
	FechaDocumento    string          `json:"fecha_documento"`
	FechaInicio       string          `json:"fecha_inicio"`
	FechaFin          string          `json:"fecha_fin"`
	Vigente           bool            `json:"vigente"`
	Estado            *EstadoResponse `json:"estado,omitempty"`
}

type DirectivaResponse struct {
	CodDirectiva      int             `json:"cod_directiva"`
	CodReconocimiento int             `json:"cod_reconocimiento"`
	CodSocio          int             `json:"cod_socio"`
	NombreSocio       string          `json:"nombre_socio,omitempty"`
	Cargo             string          `json:"cargo,omitempty"`
	Estado            *EstadoResponse `json:"estado,omitempty"`
}
