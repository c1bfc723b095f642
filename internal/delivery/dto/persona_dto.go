package dto

// Request DTOs

type CreatePersonaRequest struct {
	Nombres         string  `json:"nombres" validate:"required,max=100"`
	ApellidoPaterno string  `json:"apellido_paterno" validate:"required,max=50"`
	ApellidoMaterno string  `json:"apellido_materno" validate:"required,max=50"`
	DNI             string  `json:"dni" validate:"required,len=8,numeric"`
	Sexo            string  `json:"sexo" validate:"required,oneof=M F"`
	Telefono        *string `json:"telefono" validate:"omitempty,max=6,numeric"`
	Celular         *string `json:"celular" validate:"omitempty,max=9,numeric"`
	FechaNacimiento string  `json:"fecha_nacimiento" validate:"required,datetime=2006-01-02"`
	CodSectorZona   int     `json:"cod_sector_zona" validate:"required,gt=0"`
	Direccion       string  `json:"direccion" validate:"required,max=100"`
	NumeroFinca     *int    `json:"numero_finca" validate:"omitempty,gte=0"`
}

type PersonaListQuery struct {
	ListQuery
	Search string
}

type CreateSocioRequest struct {
	CodPersona    int     `json:"cod_persona" validate:"required,gt=0"`
	CodAsociacion int     `json:"cod_asociacion" validate:"required,gt=0"`
	FechaInicio   string  `json:"fecha_inicio" validate:"omitempty,datetime=2006-01-02"`
	FechaFin      string  `json:"fecha_fin" validate:"omitempty,datetime=2006-01-02"`
	Observaciones *string `json:"observaciones" validate:"omitempty,max=255"`
	CodEstado     int     `json:"cod_estado" validate:"required,gt=0"`
}

// Response DTOs

type EdadResponse struct {
	Anios int `json:"anios"`
	Meses int `json:"meses"`
	Dias  int `json:"dias"`
}

type PersonaResponse struct {
	CodPersona      int                 `json:"cod_persona"`
	Nombres         string              `json:"nombres"`
	ApellidoPaterno string              `json:"apellido_paterno"`
	ApellidoMaterno string              `json:"apellido_materno"`
	NombreCompleto  string              `json:"nombre_completo"`
	DNI             string              `json:"dni"`
	Sexo            string              `json:"sexo"`
	Telefono        *string             `json:"telefono,omitempty"`
	Celular         *string             `json:"celular,omitempty"`
	FechaNacimiento string              `json:"fecha_nacimiento"`
	Edad            *EdadResponse       `json:"edad,omitempty"`
	SectorZona      *SectorZonaResponse `json:"sector_zona,omitempty"`
	Direccion       string              `json:"direccion"`
	NumeroFinca     *int                `json:"numero_finca,omitempty"`
}

type SocioResponse struct {
	CodSocio      int              `json:"cod_socio"`
	CodPersona    int              `json:"cod_persona"`
	CodAsociacion int              `json:"cod_asociacion"`
	Persona       *PersonaResponse `json:"persona,omitempty"`
	Asociacion    string           `json:"asociacion,omitempty"`
	FechaInicio   string           `json:"fecha_inicio"`
	FechaFin      *string          `json:"fecha_fin,omitempty"`
	Observaciones *string          `json:"observaciones,omitempty"`
	Estado        *EstadoResponse  `json:"estado,omitempty"`
}
