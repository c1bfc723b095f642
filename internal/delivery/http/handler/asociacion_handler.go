package handler

import (
	"errors"
	"net/http"

	"sistema-provale/internal/delivery/dto"
	"sistema-provale/internal/usecase"
	"sistema-provale/pkg/response"
	"sistema-provale/pkg/validator"
)

type AsociacionHandler struct {
	asociacionUsecase usecase.AsociacionUsecase
	validator         *validator.CustomValidator
}

func NewAsociacionHandler(asociacionUsecase usecase.AsociacionUsecase, validator *validator.CustomValidator) *AsociacionHandler {
	return &AsociacionHandler{
		asociacionUsecase: asociacionUsecase,
		validator:         validator,
	}
}

// GetAll handles listing associations
// @Summary List associations
// @Description Paginated list, optionally filtered by code/name and estado
// @Tags Asociaciones
// @Security BearerAuth
// @Produce json
// @Param search query string false "Code or name fragment"
// @Param cod_estado query int false "Estado ID"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} response.Response
// @Router /asociaciones [get]
func (h *AsociacionHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	query := dto.AsociacionListQuery{
		ListQuery: listQuery(r),
		Search:    r.URL.Query().Get("search"),
		CodEstado: queryInt(r, "cod_estado"),
	}

	asociaciones, total, err := h.asociacionUsecase.GetAll(r.Context(), &query)
	if err != nil {
		response.InternalServerError(w, "Failed to get asociaciones")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Asociaciones retrieved successfully", asociaciones, meta(query.ListQuery, total))
}

// GetByID handles getting one association
// @Summary Get association by ID
// @Tags Asociaciones
// @Security BearerAuth
// @Produce json
// @Param id path int true "Asociacion ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /asociaciones/{id} [get]
func (h *AsociacionHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", "asociacion")
	if !ok {
		return
	}

	asociacion, err := h.asociacionUsecase.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrAsociacionNotFound) {
			response.NotFound(w, "Asociacion not found")
			return
		}
		response.InternalServerError(w, "Failed to get asociacion")
		return
	}

	response.Success(w, http.StatusOK, "Asociacion retrieved successfully", asociacion)
}

// Create handles association creation
// @Summary Create an association
// @Tags Asociaciones
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateAsociacionRequest true "Create Asociacion Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /asociaciones [post]
func (h *AsociacionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAsociacionRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	asociacion, err := h.asociacionUsecase.Create(r.Context(), &req)
	if err != nil {
		writeError(w, err, "Failed to create asociacion")
		return
	}

	response.Success(w, http.StatusCreated, "Asociacion created successfully", asociacion)
}

// Delete handles association deletion
// @Summary Delete an association
// @Tags Asociaciones
// @Security BearerAuth
// @Param id path int true "Asociacion ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /asociaciones/{id} [delete]
func (h *AsociacionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", "asociacion")
	if !ok {
		return
	}

	if err := h.asociacionUsecase.Delete(r.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrAsociacionNotFound) {
			response.NotFound(w, "Asociacion not found")
			return
		}
		writeError(w, err, "Failed to delete asociacion")
		return
	}

	response.Success(w, http.StatusOK, "Asociacion deleted successfully", nil)
}

// GetReconocimientos handles listing the recognitions of an association
// @Summary List recognitions
// @Tags Asociaciones
// @Security BearerAuth
// @Produce json
// @Param id path int true "Asociacion ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /asociaciones/{id}/reconocimientos [get]
func (h *AsociacionHandler) GetReconocimientos(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", "asociacion")
	if !ok {
		return
	}

	items, err := h.asociacionUsecase.GetReconocimientos(r.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrAsociacionNotFound) {
			response.NotFound(w, "Asociacion not found")
			return
		}
		response.InternalServerError(w, "Failed to get reconocimientos")
		return
	}

	response.Success(w, http.StatusOK, "Reconocimientos retrieved successfully", items)
}

// CreateReconocimiento handles registering a recognition period
// @Summary Create a recognition
// @Tags Asociaciones
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Asociacion ID"
// @Param request body dto.CreateReconocimientoRequest true "Create Reconocimiento Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /asociaciones/{id}/reconocimientos [post]
func (h *AsociacionHandler) CreateReconocimiento(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", "asociacion")
	if !ok {
		return
	}

	var req dto.CreateReconocimientoRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	reconocimiento, err := h.asociacionUsecase.CreateReconocimiento(r.Context(), id, &req)
	if err != nil {
		if errors.Is(err, usecase.ErrAsociacionNotFound) {
			response.NotFound(w, "Asociacion not found")
			return
		}
		writeError(w, err, "Failed to create reconocimiento")
		return
	}

	response.Success(w, http.StatusCreated, "Reconocimiento created successfully", reconocimiento)
}

// GetDirectivas handles listing the board of a recognition period
// @Summary List board members
// @Tags Asociaciones
// @Security BearerAuth
// @Produce json
// @Param id path int true "Reconocimiento ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /reconocimientos/{id}/directivas [get]
func (h *AsociacionHandler) GetDirectivas(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", "reconocimiento")
	if !ok {
		return
	}

	items, err := h.asociacionUsecase.GetDirectivas(r.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrReconocimientoNotFound) {
			response.NotFound(w, "Reconocimiento not found")
			return
		}
		response.InternalServerError(w, "Failed to get directivas")
		return
	}

	response.Success(w, http.StatusOK, "Directivas retrieved successfully", items)
}

// CreateDirectiva handles assigning a cargo to a member for a recognition period
// @Summary Create a board member
// @Tags Asociaciones
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Reconocimiento ID"
// @Param request body dto.CreateDirectivaRequest true "Create Directiva Request"
// @Success 201 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /reconocimientos/{id}/directivas [post]
func (h *AsociacionHandler) CreateDirectiva(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", "reconocimiento")
	if !ok {
		return
	}

	var req dto.CreateDirectivaRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	directiva, err := h.asociacionUsecase.CreateDirectiva(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrReconocimientoNotFound):
			response.NotFound(w, "Reconocimiento not found")
		case errors.Is(err, usecase.ErrSocioNotFound), errors.Is(err, usecase.ErrSocioAjeno):
			response.UnprocessableEntity(w, err.Error())
		default:
			writeError(w, err, "Failed to create directiva")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Directiva created successfully", directiva)
}
