package converter

import (
	"time"

	"sistema-provale/internal/delivery/dto"
	"sistema-provale/internal/domain/entity"
)

// PersonaToResponse converts a Persona entity. Edad is only set when withEdad is true,
// so list views do not pay for it.
func PersonaToResponse(p *entity.Persona, hoy time.Time, withEdad bool) (*dto.PersonaResponse, error) {
	if p == nil {
		return nil, nil
	}

	response := &dto.PersonaResponse{
		CodPersona:      p.CodPersona,
		Nombres:         p.Nombres,
		ApellidoPaterno: p.ApellidoPaterno,
		ApellidoMaterno: p.ApellidoMaterno,
		NombreCompleto:  p.NombreCompleto(),
		DNI:             p.DNI,
		Sexo:            p.Sexo,
		Telefono:        p.Telefono,
		Celular:         p.Celular,
		FechaNacimiento: formatDate(p.FechaNacimiento),
		SectorZona:      SectorZonaToResponse(p.SectorZona),
		Direccion:       p.Direccion,
		NumeroFinca:     p.NumeroFinca,
	}

	if withEdad {
		edad, err := p.Edad(hoy)
		if err != nil {
			return nil, err
		}
		response.Edad = &dto.EdadResponse{Anios: edad.Anios, Meses: edad.Meses, Dias: edad.Dias}
	}

	return response, nil
}

func PersonasToResponses(personas []entity.Persona) []dto.PersonaResponse {
	responses := make([]dto.PersonaResponse, len(personas))
	for i := range personas {
		response, _ := PersonaToResponse(&personas[i], time.Time{}, false)
		responses[i] = *response
	}
	return responses
}

func SocioToResponse(s *entity.Socio) *dto.SocioResponse {
	if s == nil {
		return nil
	}

	response := &dto.SocioResponse{
		CodSocio:      s.CodSocio,
		CodPersona:    s.CodPersona,
		CodAsociacion: s.CodAsociacion,
		FechaInicio:   formatDate(s.FechaInicio),
		FechaFin:      formatDatePtr(s.FechaFin),
		Observaciones: s.Observaciones,
		Estado:        EstadoToResponse(s.Estado),
	}
	if s.Persona != nil {
		response.Persona, _ = PersonaToResponse(s.Persona, time.Time{}, false)
	}
	if s.Asociacion != nil {
		response.Asociacion = s.Asociacion.CodigoAsociacion
	}

	return response
}

func SociosToResponses(socios []entity.Socio) []dto.SocioResponse {
	responses := make([]dto.SocioResponse, len(socios))
	for i := range socios {
		responses[i] = *SocioToResponse(&socios[i])
	}
	return responses
}
