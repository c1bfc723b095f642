package dto

// Request DTOs

type CreateEstadoRequest struct {
	Abreviatura string `json:"abreviatura" validate:"required,max=3"`
	Descripcion string `json:"descripcion" validate:"required,max=100"`
}

// CreateCatalogoRequest is shared by every description-only catalog
type CreateCatalogoRequest struct {
	Descripcion string  `json:"descripcion" validate:"required,max=100"`
	Observacion *string `json:"observacion" validate:"omitempty,max=255"`
}

type CreateTipoBeneficioRequest struct {
	Descripcion   string  `json:"descripcion" validate:"required,max=100"`
	EdadMinima    *int    `json:"edad_minima" validate:"omitempty,gte=0"`
	EdadMaxima    *int    `json:"edad_maxima" validate:"omitempty,gte=0"`
	Prioridad     int     `json:"prioridad" validate:"gte=0"`
	Observaciones *string `json:"observaciones" validate:"omitempty,max=255"`
}

type CreateSectorZonaRequest struct {
	CodZona   int `json:"cod_zona" validate:"required,gt=0"`
	CodSector int `json:"cod_sector" validate:"required,gt=0"`
}

// Response DTOs

type EstadoResponse struct {
	CodEstado   int    `json:"cod_estado"`
	Abreviatura string `json:"abreviatura"`
	Descripcion string `json:"descripcion"`
}

// CatalogoResponse is the uniform shape of catalog rows regardless of their table
type CatalogoResponse struct {
	ID            int     `json:"id"`
	Descripcion   string  `json:"descripcion"`
	Observacion   *string `json:"observacion,omitempty"`
	FechaRegistro string  `json:"fecha_registro,omitempty"`
}

type TipoBeneficioResponse struct {
	CodTipoBeneficio int     `json:"cod_tipo_beneficio"`
	Descripcion      string  `json:"descripcion"`
	EdadMinima       *int    `json:"edad_minima,omitempty"`
	EdadMaxima       *int    `json:"edad_maxima,omitempty"`
	Prioridad        int     `json:"prioridad"`
	Obstetrico       bool    `json:"obstetrico"`
	Observaciones    *string `json:"observaciones,omitempty"`
}

type SectorZonaResponse struct {
	CodSectorZona int    `json:"cod_sector_zona"`
	CodZona       int    `json:"cod_zona"`
	CodSector     int    `json:"cod_sector"`
	Etiqueta      string `json:"etiqueta"`
}
