package middleware

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"sistema-provale/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
})

func serve(h http.Handler, ctx context.Context) int {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx))
	return w.Code
}

func TestRequireRole(t *testing.T) {
	gerente := &entity.Usuario{ID: 1, Rol: &entity.Rol{Descripcion: "gerente"}}
	usuario := &entity.Usuario{ID: 2, Rol: &entity.Rol{Descripcion: entity.RolUsuario}}
	sinRol := &entity.Usuario{ID: 3}
	superuser := &entity.Usuario{ID: 4, IsSuperuser: true}

	assert.Equal(t, http.StatusUnauthorized, serve(RequireGestion(okHandler), context.Background()))
	assert.Equal(t, http.StatusNoContent, serve(RequireGestion(okHandler), WithCurrentUser(context.Background(), gerente)))
	assert.Equal(t, http.StatusForbidden, serve(RequireGestion(okHandler), WithCurrentUser(context.Background(), usuario)))
	assert.Equal(t, http.StatusForbidden, serve(RequireAdmin(okHandler), WithCurrentUser(context.Background(), gerente)))
	assert.Equal(t, http.StatusForbidden, serve(RequireAdmin(okHandler), WithCurrentUser(context.Background(), sinRol)))
	assert.Equal(t, http.StatusNoContent, serve(RequireAdmin(okHandler), WithCurrentUser(context.Background(), superuser)))
}

func TestActorID(t *testing.T) {
	assert.Nil(t, ActorID(context.Background()))

	ctx := WithCurrentUser(context.Background(), &entity.Usuario{ID: 7})
	if assert.NotNil(t, ActorID(ctx)) {
		assert.Equal(t, 7, *ActorID(ctx))
	}
}

func TestCORSMiddleware(t *testing.T) {
	t.Run("allowlist", func(t *testing.T) {
		h := NewCORSMiddleware("https://provale.example").Handle(okHandler)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "https://provale.example")
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		assert.Equal(t, "https://provale.example", w.Header().Get("Access-Control-Allow-Origin"))

		req.Header.Set("Origin", "https://other.example")
		w = httptest.NewRecorder()
		h.ServeHTTP(w, req)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight", func(t *testing.T) {
		w := httptest.NewRecorder()
		NewCORSMiddleware().Handle(okHandler).ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestRequestLogger(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)

	var seen string
	h := NewRequestLogger(log).Handle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", seen)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
	assert.Equal(t, seen, w.Header().Get(RequestIDHeader))
}
