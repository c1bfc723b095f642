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

// CatalogoHandler serves Estados, TiposBeneficio, SectorZona and the description-only lookup tables
type CatalogoHandler struct {
	estadoUsecase        usecase.EstadoUsecase
	catalogoUsecase      usecase.CatalogoUsecase
	tipoBeneficioUsecase usecase.TipoBeneficioUsecase
	sectorZonaUsecase    usecase.SectorZonaUsecase
	validator            *validator.CustomValidator
}

func NewCatalogoHandler(
	estadoUsecase usecase.EstadoUsecase,
	catalogoUsecase usecase.CatalogoUsecase,
	tipoBeneficioUsecase usecase.TipoBeneficioUsecase,
	sectorZonaUsecase usecase.SectorZonaUsecase,
	validator *validator.CustomValidator,
) *CatalogoHandler {
	return &CatalogoHandler{
		estadoUsecase:        estadoUsecase,
		catalogoUsecase:      catalogoUsecase,
		tipoBeneficioUsecase: tipoBeneficioUsecase,
		sectorZonaUsecase:    sectorZonaUsecase,
		validator:            validator,
	}
}

// GetEstados handles listing record states
// @Summary List estados
// @Tags Catalogos
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /estados [get]
func (h *CatalogoHandler) GetEstados(w http.ResponseWriter, r *http.Request) {
	estados, err := h.estadoUsecase.GetAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get estados")
		return
	}

	response.Success(w, http.StatusOK, "Estados retrieved successfully", estados)
}

// CreateEstado handles estado creation
// @Summary Create an estado
// @Tags Catalogos
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateEstadoRequest true "Create Estado Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /estados [post]
func (h *CatalogoHandler) CreateEstado(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateEstadoRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	estado, err := h.estadoUsecase.Create(r.Context(), &req)
	if err != nil {
		writeError(w, err, "Failed to create estado")
		return
	}

	response.Success(w, http.StatusCreated, "Estado created successfully", estado)
}

// DeleteEstado handles estado deletion; estados still in use are protected
// @Summary Delete an estado
// @Tags Catalogos
// @Security BearerAuth
// @Param id path int true "Estado ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /estados/{id} [delete]
func (h *CatalogoHandler) DeleteEstado(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", "estado")
	if !ok {
		return
	}

	if err := h.estadoUsecase.Delete(r.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrEstadoNotFound) {
			response.NotFound(w, "Estado not found")
			return
		}
		writeError(w, err, "Failed to delete estado")
		return
	}

	response.Success(w, http.StatusOK, "Estado deleted successfully", nil)
}

// GetTipos handles listing the names of the generic catalogs
// @Summary List catalog names
// @Tags Catalogos
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /catalogos [get]
func (h *CatalogoHandler) GetTipos(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, "Catalogs retrieved successfully", h.catalogoUsecase.Tipos())
}

// GetCatalogo handles listing one catalog
// @Summary List catalog items
// @Tags Catalogos
// @Security BearerAuth
// @Produce json
// @Param tipo path string true "Catalog name"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /catalogos/{tipo} [get]
func (h *CatalogoHandler) GetCatalogo(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalogoUsecase.GetAll(r.Context(), mux.Vars(r)["tipo"])
	if err != nil {
		if errors.Is(err, usecase.ErrCatalogoDesconocido) {
			response.NotFound(w, "Catalog not found")
			return
		}
		response.InternalServerError(w, "Failed to get catalog")
		return
	}

	response.Success(w, http.StatusOK, "Catalog retrieved successfully", items)
}

// CreateCatalogoItem handles adding an item to a catalog
// @Summary Create a catalog item
// @Tags Catalogos
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param tipo path string true "Catalog name"
// @Param request body dto.CreateCatalogoRequest true "Create Catalog Item Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /catalogos/{tipo} [post]
func (h *CatalogoHandler) CreateCatalogoItem(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCatalogoRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	item, err := h.catalogoUsecase.Create(r.Context(), mux.Vars(r)["tipo"], &req)
	if err != nil {
		if errors.Is(err, usecase.ErrCatalogoDesconocido) {
			response.NotFound(w, "Catalog not found")
			return
		}
		writeError(w, err, "Failed to create catalog item")
		return
	}

	response.Success(w, http.StatusCreated, "Catalog item created successfully", item)
}

// DeleteCatalogoItem handles removing an unreferenced catalog item
// @Summary Delete a catalog item
// @Tags Catalogos
// @Security BearerAuth
// @Param tipo path string true "Catalog name"
// @Param id path int true "Item ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /catalogos/{tipo}/{id} [delete]
func (h *CatalogoHandler) DeleteCatalogoItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", "catalog item")
	if !ok {
		return
	}

	if err := h.catalogoUsecase.Delete(r.Context(), mux.Vars(r)["tipo"], id); err != nil {
		switch {
		case errors.Is(err, usecase.ErrCatalogoDesconocido):
			response.NotFound(w, "Catalog not found")
		case errors.Is(err, usecase.ErrCatalogoNotFound):
			response.NotFound(w, "Catalog item not found")
		default:
			writeError(w, err, "Failed to delete catalog item")
		}
		return
	}

	response.Success(w, http.StatusOK, "Catalog item deleted successfully", nil)
}

// GetTiposBeneficio handles listing benefit types
// @Summary List benefit types
// @Tags Catalogos
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /tipos-beneficio [get]
func (h *CatalogoHandler) GetTiposBeneficio(w http.ResponseWriter, r *http.Request) {
	tipos, err := h.tipoBeneficioUsecase.GetAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get benefit types")
		return
	}

	response.Success(w, http.StatusOK, "Benefit types retrieved successfully", tipos)
}

// CreateTipoBeneficio handles benefit type creation
// @Summary Create a benefit type
// @Tags Catalogos
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateTipoBeneficioRequest true "Create Benefit Type Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /tipos-beneficio [post]
func (h *CatalogoHandler) CreateTipoBeneficio(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTipoBeneficioRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	tipo, err := h.tipoBeneficioUsecase.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, usecase.ErrRangoEdadInvalido) {
			response.BadRequest(w, err.Error())
			return
		}
		writeError(w, err, "Failed to create benefit type")
		return
	}

	response.Success(w, http.StatusCreated, "Benefit type created successfully", tipo)
}

// GetSectoresZona handles listing zone/sector pairs
// @Summary List sector-zone pairs
// @Tags Catalogos
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /sectores-zona [get]
func (h *CatalogoHandler) GetSectoresZona(w http.ResponseWriter, r *http.Request) {
	items, err := h.sectorZonaUsecase.GetAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get sector-zone pairs")
		return
	}

	response.Success(w, http.StatusOK, "Sector-zone pairs retrieved successfully", items)
}

// CreateSectorZona handles pairing a zone with a sector
// @Summary Create a sector-zone pair
// @Tags Catalogos
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateSectorZonaRequest true "Create Sector-Zone Request"
// @Success 201 {object} response.Response
// @Failure 409 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /sectores-zona [post]
func (h *CatalogoHandler) CreateSectorZona(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateSectorZonaRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	item, err := h.sectorZonaUsecase.Create(r.Context(), &req)
	if err != nil {
		writeError(w, err, "Failed to create sector-zone pair")
		return
	}

	response.Success(w, http.StatusCreated, "Sector-zone pair created successfully", item)
}
