package handler

import (
	"errors"
	"net/http"

	"sistema-provale/internal/delivery/dto"
	"sistema-provale/internal/domain/entity"
	"sistema-provale/internal/usecase"
	"sistema-provale/pkg/response"
	"sistema-provale/pkg/validator"
)

type BeneficiarioHandler struct {
	beneficiarioUsecase usecase.BeneficiarioUsecase
	validator           *validator.CustomValidator
}

func NewBeneficiarioHandler(beneficiarioUsecase usecase.BeneficiarioUsecase, validator *validator.CustomValidator) *BeneficiarioHandler {
	return &BeneficiarioHandler{
		beneficiarioUsecase: beneficiarioUsecase,
		validator:           validator,
	}
}

// historicoError answers the failures shared by the benefit-period endpoints
func historicoError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, usecase.ErrBeneficiarioNotFound):
		response.NotFound(w, "Beneficiario not found")
	case errors.Is(err, usecase.ErrHistoricoNotFound):
		response.NotFound(w, "Historico not found")
	case errors.Is(err, usecase.ErrTipoBeneficioNotFound):
		response.UnprocessableEntity(w, err.Error())
	case errors.Is(err, usecase.ErrEdadNoAdmitida), errors.Is(err, usecase.ErrBeneficioNoObstetrico),
		errors.Is(err, entity.ErrPeriodoCerrado), errors.Is(err, usecase.ErrPeriodoAbierto):
		response.UnprocessableEntity(w, err.Error())
	default:
		writeError(w, err, fallback)
	}
}

// GetAll handles listing beneficiaries
// @Summary List beneficiaries
// @Tags Beneficiarios
// @Security BearerAuth
// @Produce json
// @Param cod_socio query int false "Socio ID"
// @Success 200 {object} response.Response
// @Router /beneficiarios [get]
func (h *BeneficiarioHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	beneficiarios, err := h.beneficiarioUsecase.GetAll(r.Context(), queryInt(r, "cod_socio"))
	if err != nil {
		response.InternalServerError(w, "Failed to get beneficiarios")
		return
	}

	response.Success(w, http.StatusOK, "Beneficiarios retrieved successfully", beneficiarios)
}

// Create handles registering a beneficiary under a member
// @Summary Create a beneficiary
// @Tags Beneficiarios
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateBeneficiarioRequest true "Create Beneficiario Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /beneficiarios [post]
func (h *BeneficiarioHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBeneficiarioRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	beneficiario, err := h.beneficiarioUsecase.Create(r.Context(), &req)
	if err != nil {
		writeError(w, err, "Failed to create beneficiario")
		return
	}

	response.Success(w, http.StatusCreated, "Beneficiario created successfully", beneficiario)
}

// GetHistoricos handles listing the benefit periods of a beneficiary
// @Summary List benefit periods
// @Tags Beneficiarios
// @Security BearerAuth
// @Produce json
// @Param id path int true "Beneficiario ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /beneficiarios/{id}/historicos [get]
func (h *BeneficiarioHandler) GetHistoricos(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", "beneficiario")
	if !ok {
		return
	}

	historicos, err := h.beneficiarioUsecase.GetHistoricos(r.Context(), id)
	if err != nil {
		historicoError(w, err, "Failed to get historicos")
		return
	}

	response.Success(w, http.StatusOK, "Historicos retrieved successfully", historicos)
}

// CreateHistorico handles opening a benefit period
// @Summary Open a benefit period
// @Tags Beneficiarios
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Beneficiario ID"
// @Param request body dto.CreateHistoricoRequest true "Create Historico Request"
// @Success 201 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /beneficiarios/{id}/historicos [post]
func (h *BeneficiarioHandler) CreateHistorico(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", "beneficiario")
	if !ok {
		return
	}

	var req dto.CreateHistoricoRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	historico, err := h.beneficiarioUsecase.CreateHistorico(r.Context(), id, &req)
	if err != nil {
		historicoError(w, err, "Failed to create historico")
		return
	}

	response.Success(w, http.StatusCreated, "Historico created successfully", historico)
}

// CerrarHistorico handles closing an open benefit period
// @Summary Close a benefit period
// @Tags Beneficiarios
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Historico ID"
// @Param request body dto.CerrarHistoricoRequest true "Close Historico Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /historicos/{id}/cierre [post]
func (h *BeneficiarioHandler) CerrarHistorico(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", "historico")
	if !ok {
		return
	}

	var req dto.CerrarHistoricoRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	historico, err := h.beneficiarioUsecase.CerrarHistorico(r.Context(), id, &req)
	if err != nil {
		historicoError(w, err, "Failed to close historico")
		return
	}

	response.Success(w, http.StatusOK, "Historico closed successfully", historico)
}

// DeleteHistorico handles deleting a benefit period with its obstetric data
// @Summary Delete a benefit period
// @Tags Beneficiarios
// @Security BearerAuth
// @Param id path int true "Historico ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /historicos/{id} [delete]
func (h *BeneficiarioHandler) DeleteHistorico(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", "historico")
	if !ok {
		return
	}

	if err := h.beneficiarioUsecase.DeleteHistorico(r.Context(), id); err != nil {
		historicoError(w, err, "Failed to delete historico")
		return
	}

	response.Success(w, http.StatusOK, "Historico deleted successfully", nil)
}

// GuardarDatosObstetricos handles creating or replacing obstetric follow-up data
// @Summary Upsert obstetric data
// @Tags Beneficiarios
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Historico ID"
// @Param request body dto.DatosObstetricosRequest true "Obstetric Data Request"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /historicos/{id}/datos-obstetricos [put]
func (h *BeneficiarioHandler) GuardarDatosObstetricos(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", "historico")
	if !ok {
		return
	}

	var req dto.DatosObstetricosRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	historico, err := h.beneficiarioUsecase.GuardarDatosObstetricos(r.Context(), id, &req)
	if err != nil {
		historicoError(w, err, "Failed to save datos obstetricos")
		return
	}

	response.Success(w, http.StatusOK, "Datos obstetricos saved successfully", historico)
}
