package handler

import (
	"errors"
	"net/http"

	"sistema-provale/internal/delivery/dto"
	"sistema-provale/internal/usecase"
	"sistema-provale/pkg/response"
	"sistema-provale/pkg/validator"

	"github.com/gorilla/mux"
)

type PersonaHandler struct {
	personaUsecase usecase.PersonaUsecase
	validator      *validator.CustomValidator
}

func NewPersonaHandler(personaUsecase usecase.PersonaUsecase, validator *validator.CustomValidator) *PersonaHandler {
	return &PersonaHandler{
		personaUsecase: personaUsecase,
		validator:      validator,
	}
}

// GetAll handles listing people
// @Summary List personas
// @Tags Personas
// @Security BearerAuth
// @Produce json
// @Param search query string false "DNI prefix or name fragment"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} response.Response
// @Router /personas [get]
func (h *PersonaHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	query := dto.PersonaListQuery{
		ListQuery: listQuery(r),
		Search:    r.URL.Query().Get("search"),
	}

	personas, total, err := h.personaUsecase.GetAll(r.Context(), &query)
	if err != nil {
		response.InternalServerError(w, "Failed to get personas")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Personas retrieved successfully", personas, meta(query.ListQuery, total))
}

// GetByID handles getting one person with the derived age
// @Summary Get persona by ID
// @Tags Personas
// @Security BearerAuth
// @Produce json
// @Param id path int true "Persona ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /personas/{id} [get]
func (h *PersonaHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", "persona")
	if !ok {
		return
	}

	persona, err := h.personaUsecase.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrPersonaNotFound) {
			response.NotFound(w, "Persona not found")
			return
		}
		writeError(w, err, "Failed to get persona")
		return
	}

	response.Success(w, http.StatusOK, "Persona retrieved successfully", persona)
}

// GetByDNI handles looking a person up by national ID
// @Summary Get person by DNI
// @Tags Personas
// @Security BearerAuth
// @Produce json
// @Param dni path string true "DNI"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /personas/dni/{dni} [get]
func (h *PersonaHandler) GetByDNI(w http.ResponseWriter, r *http.Request) {
	persona, err := h.personaUsecase.GetByDNI(r.Context(), mux.Vars(r)["dni"])
	if err != nil {
		if errors.Is(err, usecase.ErrPersonaNotFound) {
			response.NotFound(w, "Persona not found")
			return
		}
		writeError(w, err, "Failed to get persona")
		return
	}

	response.Success(w, http.StatusOK, "Persona retrieved successfully", persona)
}

// Create handles person registration
// @Summary Create a persona
// @Tags Personas
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreatePersonaRequest true "Create Persona Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /personas [post]
func (h *PersonaHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePersonaRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	persona, err := h.personaUsecase.Create(r.Context(), &req)
	if err != nil {
		writeError(w, err, "Failed to create persona")
		return
	}

	response.Success(w, http.StatusCreated, "Persona created successfully", persona)
}

// GetSocios handles listing memberships
// @Summary List socios
// @Tags Personas
// @Security BearerAuth
// @Produce json
// @Param cod_asociacion query int false "Asociacion ID"
// @Success 200 {object} response.Response
// @Router /socios [get]
func (h *PersonaHandler) GetSocios(w http.ResponseWriter, r *http.Request) {
	socios, err := h.personaUsecase.GetSocios(r.Context(), queryInt(r, "cod_asociacion"))
	if err != nil {
		response.InternalServerError(w, "Failed to get socios")
		return
	}

	response.Success(w, http.StatusOK, "Socios retrieved successfully", socios)
}

// CreateSocio handles enrolling a person in an association
// @Summary Create a socio
// @Tags Personas
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateSocioRequest true "Create Socio Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /socios [post]
func (h *PersonaHandler) CreateSocio(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateSocioRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	socio, err := h.personaUsecase.CreateSocio(r.Context(), &req)
	if err != nil {
		writeError(w, err, "Failed to create socio")
		return
	}

	response.Success(w, http.StatusCreated, "Socio created successfully", socio)
}
