package handler

import (
	"errors"
	"net/http"

	"sistema-provale/internal/delivery/dto"
	"sistema-provale/internal/usecase"
	"sistema-provale/pkg/response"
	"sistema-provale/pkg/validator"
)

type InventarioHandler struct {
	inventarioUsecase usecase.InventarioUsecase
	validator         *validator.CustomValidator
}

func NewInventarioHandler(inventarioUsecase usecase.InventarioUsecase, validator *validator.CustomValidator) *InventarioHandler {
	return &InventarioHandler{
		inventarioUsecase: inventarioUsecase,
		validator:         validator,
	}
}

// GetProductos handles listing products with their real stock
// @Summary List products
// @Tags Inventario
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /productos [get]
func (h *InventarioHandler) GetProductos(w http.ResponseWriter, r *http.Request) {
	productos, err := h.inventarioUsecase.GetProductos(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get productos")
		return
	}

	response.Success(w, http.StatusOK, "Productos retrieved successfully", productos)
}

// GetProducto handles getting a product with stock_real
// @Summary Get product by ID
// @Tags Inventario
// @Security BearerAuth
// @Produce json
// @Param id path int true "Producto ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /productos/{id} [get]
func (h *InventarioHandler) GetProducto(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", "producto")
	if !ok {
		return
	}

	producto, err := h.inventarioUsecase.GetProducto(r.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrProductoNotFound) {
			response.NotFound(w, "Producto not found")
			return
		}
		response.InternalServerError(w, "Failed to get producto")
		return
	}

	response.Success(w, http.StatusOK, "Producto retrieved successfully", producto)
}

// CreateProducto handles product creation
// @Summary Create a product
// @Tags Inventario
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateProductoRequest true "Create Producto Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /productos [post]
func (h *InventarioHandler) CreateProducto(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateProductoRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	producto, err := h.inventarioUsecase.CreateProducto(r.Context(), &req)
	if err != nil {
		writeError(w, err, "Failed to create producto")
		return
	}

	response.Success(w, http.StatusCreated, "Producto created successfully", producto)
}

// GetMovimientosProducto handles listing the movements of one product, newest first
// @Summary List movements of a product
// @Tags Inventario
// @Security BearerAuth
// @Produce json
// @Param id path int true "Producto ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /productos/{id}/movimientos [get]
func (h *InventarioHandler) GetMovimientosProducto(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", "producto")
	if !ok {
		return
	}

	movimientos, err := h.inventarioUsecase.GetMovimientosProducto(r.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrProductoNotFound) {
			response.NotFound(w, "Producto not found")
			return
		}
		response.InternalServerError(w, "Failed to get movimientos")
		return
	}

	response.Success(w, http.StatusOK, "Movimientos retrieved successfully", movimientos)
}

// GetMovimientos handles listing stock movements
// @Summary List movements
// @Tags Inventario
// @Security BearerAuth
// @Produce json
// @Param cod_producto query int false "Producto ID"
// @Param cod_tipo_movimiento query int false "TipoMovimiento ID"
// @Param desde query string false "From date (YYYY-MM-DD)"
// @Param hasta query string false "To date, inclusive (YYYY-MM-DD)"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /movimientos [get]
func (h *InventarioHandler) GetMovimientos(w http.ResponseWriter, r *http.Request) {
	query := dto.MovimientoListQuery{
		ListQuery:         listQuery(r),
		CodProducto:       queryInt(r, "cod_producto"),
		CodTipoMovimiento: queryInt(r, "cod_tipo_movimiento"),
		Desde:             r.URL.Query().Get("desde"),
		Hasta:             r.URL.Query().Get("hasta"),
	}

	movimientos, total, err := h.inventarioUsecase.GetMovimientos(r.Context(), &query)
	if err != nil {
		writeError(w, err, "Failed to get movimientos")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Movimientos retrieved successfully", movimientos, meta(query.ListQuery, total))
}

// CreateMovimiento handles recording a stock movement; the total is always computed
// @Summary Record a movement
// @Tags Inventario
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateMovimientoRequest true "Create Movimiento Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /movimientos [post]
func (h *InventarioHandler) CreateMovimiento(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateMovimientoRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	movimiento, err := h.inventarioUsecase.CreateMovimiento(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrProductoNotFound), errors.Is(err, usecase.ErrTipoMovimientoNotFound):
			response.UnprocessableEntity(w, err.Error())
		default:
			writeError(w, err, "Failed to create movimiento")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Movimiento created successfully", movimiento)
}
