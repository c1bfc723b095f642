package converter

import (
	"time"

	"sistema-provale/internal/delivery/dto"
	"sistema-provale/internal/domain/entity"
)

func AsociacionToResponse(a *entity.Asociacion) *dto.AsociacionResponse {
	if a == nil {
		return nil
	}

	response := &dto.AsociacionResponse{
		CodAsociacion:    a.CodAsociacion,
		CodigoAsociacion: a.CodigoAsociacion,
		NombreAsociacion: a.NombreAsociacion,
		SectorZona:       SectorZonaToResponse(a.SectorZona),
		Direccion:        a.Direccion,
		NumeroFinca:      a.NumeroFinca,
		Observaciones:    a.Observaciones,
		Estado:           EstadoToResponse(a.Estado),
		FechaRegistro:    formatDate(a.FechaRegistro),
	}

	if a.TipoLocal != nil {
		tipoLocal := TipoLocalToResponse(a.TipoLocal)
		response.TipoLocal = &tipoLocal
	}

	return response
}

func AsociacionesToResponses(asociaciones []entity.Asociacion) []dto.AsociacionResponse {
	responses := make([]dto.AsociacionResponse, len(asociaciones))
	for i := range asociaciones {
		responses[i] = *AsociacionToResponse(&asociaciones[i])
	}
	return responses
}

// ReconocimientoToResponse flags whether the recognition covers hoy
func ReconocimientoToResponse(r *entity.Reconocimiento, hoy time.Time) *dto.ReconocimientoResponse {
	if r == nil {
		return nil
	}
	return &dto.ReconocimientoResponse{
		CodReconocimiento: r.CodReconocimiento,
		CodAsociacion:     r.CodAsociacion,
		Documento:         r.Documento,
		FechaDocumento:    formatDate(r.FechaDocumento),
		FechaInicio:       formatDate(r.FechaInicio),
		FechaFin:          formatDate(r.FechaFin),
		Vigente:           r.VigenteEn(hoy),
		Estado:            EstadoToResponse(r.Estado),
	}
}

func ReconocimientosToResponses(items []entity.Reconocimiento, hoy time.Time) []dto.ReconocimientoResponse {
	responses := make([]dto.ReconocimientoResponse, len(items))
	for i := range items {
		responses[i] = *ReconocimientoToResponse(&items[i], hoy)
	}
	return responses
}

func DirectivaToResponse(d *entity.Directiva) *dto.DirectivaResponse {
	if d == nil {
		return nil
	}

	response := &dto.DirectivaResponse{
		CodDirectiva:      d.CodDirectiva,
		CodReconocimiento: d.CodReconocimiento,
		CodSocio:          d.CodSocio,
		Estado:            EstadoToResponse(d.Estado),
	}
	if d.Socio != nil && d.Socio.Persona != nil {
		response.NombreSocio = d.Socio.Persona.NombreCompleto()
	}
	if d.Cargo != nil {
		response.Cargo = d.Cargo.Descripcion
	}

	return response
}

func DirectivasToResponses(items []entity.Directiva) []dto.DirectivaResponse {
	responses := make([]dto.DirectivaResponse, len(items))
	for i := range items {
		responses[i] = *DirectivaToResponse(&items[i])
	}
	return responses
}
