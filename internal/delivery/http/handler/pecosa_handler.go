package handler

import (
	"errors"
	"net/http"

	"sistema-provale/internal/delivery/dto"
	"sistema-provale/internal/usecase"
	"sistema-provale/pkg/response"
	"sistema-provale/pkg/validator"
)

type PecosaHandler struct {
	pecosaUsecase usecase.PecosaUsecase
	validator     *validator.CustomValidator
}

func NewPecosaHandler(pecosaUsecase usecase.PecosaUsecase, validator *validator.CustomValidator) *PecosaHandler {
	return &PecosaHandler{
		pecosaUsecase: pecosaUsecase,
		validator:     validator,
	}
}

func pecosaError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, usecase.ErrPecosaNotFound):
		response.NotFound(w, "Pecosa not found")
	case errors.Is(err, usecase.ErrSocioNotFound), errors.Is(err, usecase.ErrPresidentaAjena),
		errors.Is(err, usecase.ErrProductoNotFound), errors.Is(err, usecase.ErrPrecioNoDefinido):
		response.UnprocessableEntity(w, err.Error())
	default:
		writeError(w, err, fallback)
	}
}

// GetAll handles listing vouchers with their totals
// @Summary List pecosas
// @Tags Pecosas
// @Security BearerAuth
// @Produce json
// @Param cod_asociacion query int false "Asociacion ID"
// @Param cod_estado query int false "Estado ID"
// @Param numero query string false "Voucher number prefix"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} response.Response
// @Router /pecosas [get]
func (h *PecosaHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	query := dto.PecosaListQuery{
		ListQuery:     listQuery(r),
		CodAsociacion: queryInt(r, "cod_asociacion"),
		CodEstado:     queryInt(r, "cod_estado"),
		Numero:        r.URL.Query().Get("numero"),
	}

	pecosas, total, err := h.pecosaUsecase.GetAll(r.Context(), &query)
	if err != nil {
		response.InternalServerError(w, "Failed to get pecosas")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Pecosas retrieved successfully", pecosas, meta(query.ListQuery, total))
}

// GetByID handles getting a voucher with line subtotals and total
// @Summary Get pecosa by ID
// @Tags Pecosas
// @Security BearerAuth
// @Produce json
// @Param id path int true "Pecosa ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /pecosas/{id} [get]
func (h *PecosaHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", "pecosa")
	if !ok {
		return
	}

	pecosa, err := h.pecosaUsecase.GetByID(r.Context(), id)
	if err != nil {
		pecosaError(w, err, "Failed to get pecosa")
		return
	}

	response.Success(w, http.StatusOK, "Pecosa retrieved successfully", pecosa)
}

// Create handles issuing a voucher with its lines
// @Summary Create a pecosa
// @Tags Pecosas
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreatePecosaRequest true "Create Pecosa Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /pecosas [post]
func (h *PecosaHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePecosaRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	pecosa, err := h.pecosaUsecase.Create(r.Context(), &req)
	if err != nil {
		pecosaError(w, err, "Failed to create pecosa")
		return
	}

	response.Success(w, http.StatusCreated, "Pecosa created successfully", pecosa)
}

// AddDetalle handles appending a line to a voucher
// @Summary Add a voucher line
// @Tags Pecosas
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Pecosa ID"
// @Param request body dto.CreateDetallePecosaRequest true "Create Detalle Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /pecosas/{id}/detalles [post]
func (h *PecosaHandler) AddDetalle(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", "pecosa")
	if !ok {
		return
	}

	var req dto.CreateDetallePecosaRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	pecosa, err := h.pecosaUsecase.AddDetalle(r.Context(), id, &req)
	if err != nil {
		pecosaError(w, err, "Failed to add detalle")
		return
	}

	response.Success(w, http.StatusCreated, "Detalle added successfully", pecosa)
}

// Delete handles deleting a voucher and its lines
// @Summary Delete a pecosa
// @Tags Pecosas
// @Security BearerAuth
// @Param id path int true "Pecosa ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /pecosas/{id} [delete]
func (h *PecosaHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", "pecosa")
	if !ok {
		return
	}

	if err := h.pecosaUsecase.Delete(r.Context(), id); err != nil {
		pecosaError(w, err, "Failed to delete pecosa")
		return
	}

	response.Success(w, http.StatusOK, "Pecosa deleted successfully", nil)
}
