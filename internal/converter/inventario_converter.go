package converter

import (
	"sistema-provale/internal/delivery/dto"
	"sistema-provale/internal/domain/entity"
)

// ProductoToResponse converts a Producto entity; stockReal comes from the movement aggregate
func ProductoToResponse(p *entity.Producto, stockReal int) *dto.ProductoResponse {
	if p == nil {
		return nil
	}

	response := &dto.ProductoResponse{
		CodProducto:    p.CodProducto,
		Descripcion:    p.Descripcion,
		Abreviatura:    p.Abreviatura,
		Stock:          p.Stock,
		StockReal:      stockReal,
		PrecioUnitario: p.PrecioUnitario,
		Estado:         EstadoToResponse(p.Estado),
		FechaRegistro:  formatDate(p.FechaRegistro),
	}
	if p.UnidadMedida != nil {
		response.UnidadMedida = p.UnidadMedida.Descripcion
	}

	return response
}

// ProductosToResponses looks each product up in stocks; products without movements get 0
func ProductosToResponses(productos []entity.Producto, stocks map[int]int) []dto.ProductoResponse {
	responses := make([]dto.ProductoResponse, len(productos))
	for i := range productos {
		responses[i] = *ProductoToResponse(&productos[i], stocks[productos[i].CodProducto])
	}
	return responses
}

func MovimientoToResponse(m *entity.Movimiento) *dto.MovimientoResponse {
	if m == nil {
		return nil
	}

	response := &dto.MovimientoResponse{
		CodMovimiento:   m.CodMovimiento,
		CodProducto:     m.CodProducto,
		FechaMovimiento: m.FechaMovimiento,
		Cantidad:        m.Cantidad,
		PrecioUnitario:  m.PrecioUnitario,
		PrecioTotal:     m.PrecioTotal,
	}
	if m.Producto != nil {
		response.Producto = m.Producto.Descripcion
	}
	if m.TipoMovimiento != nil {
		response.TipoMovimiento = m.TipoMovimiento.Descripcion
	}

	return response
}

func MovimientosToResponses(items []entity.Movimiento) []dto.MovimientoResponse {
	responses := make([]dto.MovimientoResponse, len(items))
	for i := range items {
		responses[i] = *MovimientoToResponse(&items[i])
	}
	return responses
}
