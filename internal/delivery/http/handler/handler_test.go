package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"sistema-provale/internal/domain/entity"
	"sistema-provale/internal/usecase"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"duplicate", fmt.Errorf("wrapped: %w", usecase.ErrDuplicado), http.StatusConflict},
		{"protected", usecase.ErrReferenciaProtegida, http.StatusConflict},
		{"missing parent", usecase.ErrReferenciaInvalida, http.StatusUnprocessableEntity},
		{"bad date", usecase.ErrFechaInvalida, http.StatusBadRequest},
		{"reversed window", entity.ErrRangoFechasInvalido, http.StatusBadRequest},
		{"no birth date", entity.ErrFechaNacimientoRequerida, http.StatusBadRequest},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			writeError(w, tt.err, "failed")
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestPecosaError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{usecase.ErrPecosaNotFound, http.StatusNotFound},
		{usecase.ErrPresidentaAjena, http.StatusUnprocessableEntity},
		{usecase.ErrPrecioNoDefinido, http.StatusUnprocessableEntity},
		{usecase.ErrDuplicado, http.StatusConflict},
	}

	for _, tt := range tests {
		w := httptest.NewRecorder()
		pecosaError(w, tt.err, "failed")
		assert.Equal(t, tt.want, w.Code, tt.err.Error())
	}
}

func TestHistoricoError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{usecase.ErrHistoricoNotFound, http.StatusNotFound},
		{usecase.ErrBeneficiarioNotFound, http.StatusNotFound},
		{usecase.ErrEdadNoAdmitida, http.StatusUnprocessableEntity},
		{entity.ErrPeriodoCerrado, http.StatusUnprocessableEntity},
		{usecase.ErrPeriodoAbierto, http.StatusUnprocessableEntity},
		{entity.ErrRangoFechasInvalido, http.StatusBadRequest},
	}

	for _, tt := range tests {
		w := httptest.NewRecorder()
		historicoError(w, tt.err, "failed")
		assert.Equal(t, tt.want, w.Code, tt.err.Error())
	}
}

func TestPathIDAndQuery(t *testing.T) {
	var gotID int
	var gotOK bool
	router := mux.NewRouter()
	router.HandleFunc("/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		gotID, gotOK = pathID(w, r, "id", "item")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/items/42", nil))
	assert.True(t, gotOK)
	assert.Equal(t, 42, gotID)

	for _, raw := range []string{"abc", "0", "-3"} {
		w = httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/items/"+raw, nil))
		assert.False(t, gotOK, raw)
		assert.Equal(t, http.StatusBadRequest, w.Code, raw)
	}

	r := httptest.NewRequest(http.MethodGet, "/x?page=3&limit=500&cod=7&bad=x", nil)
	q := listQuery(r)
	assert.Equal(t, 3, q.Page)
	assert.Equal(t, 100, q.Limit)
	assert.Equal(t, 7, *queryInt(r, "cod"))
	assert.Nil(t, queryInt(r, "bad"))
	assert.Nil(t, queryInt(r, "missing"))
}
