package converter

import (
	"time"

	"sistema-provale/internal/delivery/dto"
	"sistema-provale/internal/domain/entity"
)

func BeneficiarioToResponse(b *entity.Beneficiario) *dto.BeneficiarioResponse {
	if b == nil {
		return nil
	}

	response := &dto.BeneficiarioResponse{
		CodBeneficiario: b.CodBeneficiario,
		CodSocio:        b.CodSocio,
		FechaRegistro:   formatDate(b.FechaRegistro),
	}
	if b.Persona != nil {
		response.Persona, _ = PersonaToResponse(b.Persona, time.Time{}, false)
	}
	if b.Parentesco != nil {
		response.Parentesco = b.Parentesco.Descripcion
	}

	return response
}

func BeneficiariosToResponses(items []entity.Beneficiario) []dto.BeneficiarioResponse {
	responses := make([]dto.BeneficiarioResponse, len(items))
	for i := range items {
		responses[i] = *BeneficiarioToResponse(&items[i])
	}
	return responses
}

func HistoricoToResponse(h *entity.HistoricoBeneficiario, datos *entity.DatosObstetricos) *dto.HistoricoResponse {
	if h == nil {
		return nil
	}

	response := &dto.HistoricoResponse{
		CodHistoricoBeneficiario: h.CodHistoricoBeneficiario,
		CodBeneficiario:          h.CodBeneficiario,
		Peso:                     h.Peso,
		Talla:                    h.Talla,
		Hmg:                      h.Hmg,
		FechaInicio:              formatDate(h.FechaInicio),
		FechaTermino:             formatDatePtr(h.FechaTermino),
		Estado:                   EstadoToResponse(h.Estado),
		DatosObstetricos:         DatosObstetricosToResponse(datos),
	}
	if h.TipoBeneficio != nil {
		response.TipoBeneficio = h.TipoBeneficio.Descripcion
	}
	if h.MotivoInhabilitacion != nil {
		response.MotivoInhabilitacion = h.MotivoInhabilitacion.Descripcion
	}

	return response
}

func HistoricosToResponses(items []entity.HistoricoBeneficiario) []dto.HistoricoResponse {
	responses := make([]dto.HistoricoResponse, len(items))
	for i := range items {
		responses[i] = *HistoricoToResponse(&items[i], nil)
	}
	return responses
}

func DatosObstetricosToResponse(d *entity.DatosObstetricos) *dto.DatosObstetricosResponse {
	if d == nil {
		return nil
	}
	return &dto.DatosObstetricosResponse{
		CodDatoObstetrico:       d.CodDatoObstetrico,
		FechaUltimaMenstruacion: formatDatePtr(d.FechaUltimaMenstruacion),
		FechaProbableParto:      formatDatePtr(d.FechaProbableParto),
		FechaDeParto:            formatDatePtr(d.FechaDeParto),
		FechaFinLactancia:       formatDatePtr(d.FechaFinLactancia),
	}
}
