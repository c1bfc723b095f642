package handler

import (
	"errors"
	"net/http"

	"sistema-provale/internal/delivery/dto"
	"sistema-provale/internal/usecase"
	"sistema-provale/pkg/response"
	"sistema-provale/pkg/validator"
)

type UsuarioHandler struct {
	usuarioUsecase usecase.UsuarioUsecase
	validator      *validator.CustomValidator
}

func NewUsuarioHandler(usuarioUsecase usecase.UsuarioUsecase, validator *validator.CustomValidator) *UsuarioHandler {
	return &UsuarioHandler{
		usuarioUsecase: usuarioUsecase,
		validator:      validator,
	}
}

// Create handles account creation by an administrator
// @Summary Create a user account
// @Tags Usuarios
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateUsuarioRequest true "Create Usuario Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /usuarios [post]
func (h *UsuarioHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateUsuarioRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	usuario, err := h.usuarioUsecase.Create(r.Context(), &req)
	if err != nil {
		writeError(w, err, "Failed to create usuario")
		return
	}

	response.Success(w, http.StatusCreated, "Usuario created successfully", usuario)
}

// GetByID handles getting a user account
// @Summary Get user by ID
// @Tags Usuarios
// @Security BearerAuth
// @Produce json
// @Param id path int true "Usuario ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /usuarios/{id} [get]
func (h *UsuarioHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", "usuario")
	if !ok {
		return
	}

	usuario, err := h.usuarioUsecase.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			response.NotFound(w, "User not found")
			return
		}
		response.InternalServerError(w, "Failed to get usuario")
		return
	}

	response.Success(w, http.StatusOK, "Usuario retrieved successfully", usuario)
}
