package converter

import (
	"sistema-provale/internal/delivery/dto"
	"sistema-provale/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// PecosaToResponse converts a voucher with its lines; the total is derived from the lines
func PecosaToResponse(p *entity.Pecosa, detalles []entity.DetallePecosa) *dto.PecosaResponse {
	if p == nil {
		return nil
	}

	response := pecosaHeader(p)
	response.Total = entity.TotalPecosa(detalles)
	response.Detalles = DetallesPecosaToResponses(detalles)
	return response
}

// PecosasToResponses converts a voucher page using totals computed in the database
func PecosasToResponses(pecosas []entity.Pecosa, totales map[int]decimal.Decimal) []dto.PecosaResponse {
	responses := make([]dto.PecosaResponse, len(pecosas))
	for i := range pecosas {
		response := pecosaHeader(&pecosas[i])
		if total, ok := totales[pecosas[i].CodPecosa]; ok {
			response.Total = total
		}
		responses[i] = *response
	}
	return responses
}

func pecosaHeader(p *entity.Pecosa) *dto.PecosaResponse {
	response := &dto.PecosaResponse{
		CodPecosa:          p.CodPecosa,
		CodAsociacion:      p.CodAsociacion,
		NumeroPecosa:       p.NumeroPecosa,
		CodSocioPresidenta: p.CodSocioPresidenta,
		FechaReparto:       formatDatePtr(p.FechaReparto),
		FechaRegistro:      p.FechaRegistro,
		Observacion:        p.Observacion,
		Estado:             EstadoToResponse(p.Estado),
		Total:              decimal.Zero,
	}
	if p.Asociacion != nil {
		response.Asociacion = derefString(p.Asociacion.NombreAsociacion)
	}
	if p.SocioPresidenta != nil && p.SocioPresidenta.Persona != nil {
		response.Presidenta = p.SocioPresidenta.Persona.NombreCompleto()
	}
	return response
}

func DetallePecosaToResponse(d *entity.DetallePecosa) dto.DetallePecosaResponse {
	response := dto.DetallePecosaResponse{
		CodDetallePecosa: d.CodDetallePecosa,
		CodProducto:      d.CodProducto,
		Prioridad:        d.Prioridad,
		FechaDesde:       formatDatePtr(d.FechaDesde),
		FechaHasta:       formatDatePtr(d.FechaHasta),
		Cantidad:         d.Cantidad,
		PrecioUnitario:   d.PrecioUnitario,
		Subtotal:         d.Subtotal(),
	}
	if d.Producto != nil {
		response.Producto = d.Producto.Descripcion
	}
	return response
}

func DetallesPecosaToResponses(detalles []entity.DetallePecosa) []dto.DetallePecosaResponse {
	responses := make([]dto.DetallePecosaResponse, len(detalles))
	for i := range detalles {
		responses[i] = DetallePecosaToResponse(&detalles[i])
	}
	return responses
}
