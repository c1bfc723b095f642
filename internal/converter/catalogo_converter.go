package converter

import (
	"sistema-provale/internal/delivery/dto"
	"sistema-provale/internal/domain/entity"
)

// EstadoToResponse converts an Estado entity to EstadoResponse DTO
func EstadoToResponse(estado *entity.Estado) *dto.EstadoResponse {
	if estado == nil {
		return nil
	}
	return &dto.EstadoResponse{
		CodEstado:   estado.CodEstado,
		Abreviatura: estado.Abreviatura,
		Descripcion: estado.Descripcion,
	}
}

func EstadosToResponses(estados []entity.Estado) []dto.EstadoResponse {
	responses := make([]dto.EstadoResponse, len(estados))
	for i := range estados {
		responses[i] = *EstadoToResponse(&estados[i])
	}
	return responses
}

func RolToResponse(r *entity.Rol) dto.CatalogoResponse {
	return dto.CatalogoResponse{ID: r.CodRol, Descripcion: r.Descripcion, FechaRegistro: formatDate(r.FechaRegistro)}
}

func TipoLocalToResponse(t *entity.TipoLocal) dto.CatalogoResponse {
	return dto.CatalogoResponse{ID: t.CodTipoLocal, Descripcion: t.Descripcion, FechaRegistro: formatDate(t.FechaRegistro)}
}

func CargoToResponse(c *entity.Cargo) dto.CatalogoResponse {
	return dto.CatalogoResponse{ID: c.CodCargo, Descripcion: c.Descripcion, FechaRegistro: formatDate(c.FechaRegistro)}
}

func ParentescoToResponse(p *entity.Parentesco) dto.CatalogoResponse {
	return dto.CatalogoResponse{ID: p.CodParentesco, Descripcion: p.Descripcion, FechaRegistro: formatDate(p.FechaRegistro)}
}

func UnidadMedidaToResponse(u *entity.UnidadMedida) dto.CatalogoResponse {
	return dto.CatalogoResponse{ID: u.CodUnidadMedida, Descripcion: u.Descripcion}
}

func TipoMovimientoToResponse(t *entity.TipoMovimiento) dto.CatalogoResponse {
	return dto.CatalogoResponse{ID: t.CodTipoMovimiento, Descripcion: t.Descripcion}
}

func ZonaToResponse(z *entity.Zona) dto.CatalogoResponse {
	return dto.CatalogoResponse{ID: z.CodZona, Descripcion: derefString(z.Descripcion), FechaRegistro: formatDate(z.FechaRegistro)}
}

func SectorToResponse(s *entity.Sector) dto.CatalogoResponse {
	return dto.CatalogoResponse{ID: s.CodSector, Descripcion: derefString(s.Descripcion), FechaRegistro: formatDate(s.FechaRegistro)}
}

func MotivoInhabilitacionToResponse(m *entity.MotivoInhabilitacion) dto.CatalogoResponse {
	return dto.CatalogoResponse{ID: m.CodMotivoInhabilitacion, Descripcion: m.Descripcion, Observacion: m.Observacion}
}

func TipoBeneficioToResponse(t *entity.TipoBeneficio) *dto.TipoBeneficioResponse {
	if t == nil {
		return nil
	}
	return &dto.TipoBeneficioResponse{
		CodTipoBeneficio: t.CodTipoBeneficio,
		Descripcion:      t.Descripcion,
		EdadMinima:       t.EdadMinima,
		EdadMaxima:       t.EdadMaxima,
		Prioridad:        t.Prioridad,
		Obstetrico:       t.EsObstetrico(),
		Observaciones:    t.Observaciones,
	}
}

func TiposBeneficioToResponses(tipos []entity.TipoBeneficio) []dto.TipoBeneficioResponse {
	responses := make([]dto.TipoBeneficioResponse, len(tipos))
	for i := range tipos {
		responses[i] = *TipoBeneficioToResponse(&tipos[i])
	}
	return responses
}

// SectorZonaToResponse includes the "zona / sector" label when both sides are preloaded
func SectorZonaToResponse(sz *entity.SectorZona) *dto.SectorZonaResponse {
	if sz == nil {
		return nil
	}
	return &dto.SectorZonaResponse{
		CodSectorZona: sz.CodSectorZona,
		CodZona:       sz.CodZona,
		CodSector:     sz.CodSector,
		Etiqueta:      sz.Etiqueta(),
	}
}

func SectoresZonaToResponses(items []entity.SectorZona) []dto.SectorZonaResponse {
	responses := make([]dto.SectorZonaResponse, len(items))
	for i := range items {
		responses[i] = *SectorZonaToResponse(&items[i])
	}
	return responses
}
