package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"sistema-provale/internal/delivery/dto"
	"sistema-provale/internal/domain/entity"
	"sistema-provale/internal/usecase"
	"sistema-provale/pkg/response"
	"sistema-provale/pkg/validator"

	"github.com/gorilla/mux"
)

// pathID reads a positive integer route variable, answering 400 when it is not one
func pathID(w http.ResponseWriter, r *http.Request, name, label string) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)[name])
	if err != nil || id <= 0 {
		response.BadRequest(w, "Invalid "+label+" ID")
		return 0, false
	}
	return id, true
}

// decodeAndValidate fills req from the JSON body and runs the struct validation rules
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v *validator.CustomValidator, req interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return false
	}
	if err := v.Validate(req); err != nil {
		response.ValidationError(w, v.FormatValidationErrors(err))
		return false
	}
	return true
}

func listQuery(r *http.Request) dto.ListQuery {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	q := dto.ListQuery{Page: page, Limit: limit}
	q.Normalize()
	return q
}

// queryInt returns nil for an absent or non-numeric parameter
func queryInt(r *http.Request, key string) *int {
	n, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil {
		return nil
	}
	return &n
}

func meta(q dto.ListQuery, total int64) *response.Meta {
	return response.NewMeta(q.Limit, q.Offset(), total)
}

// writeError answers the errors shared by every write path; anything else is a 500 with fallback
func writeError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, usecase.ErrDuplicado), errors.Is(err, usecase.ErrReferenciaProtegida):
		response.Conflict(w, err.Error())
	case errors.Is(err, usecase.ErrReferenciaInvalida):
		response.UnprocessableEntity(w, err.Error())
	case errors.Is(err, usecase.ErrFechaInvalida), errors.Is(err, entity.ErrRangoFechasInvalido),
		errors.Is(err, entity.ErrFechaNacimientoRequerida):
		response.BadRequest(w, err.Error())
	default:
		response.InternalServerError(w, fallback)
	}
}
