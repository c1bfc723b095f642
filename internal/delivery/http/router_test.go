package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sistema-provale/config"
	"sistema-provale/internal/delivery/dto"
	"sistema-provale/internal/delivery/http/handler"
	"sistema-provale/internal/delivery/http/middleware"
	"sistema-provale/internal/domain/entity"
	"sistema-provale/internal/repository"
	"sistema-provale/internal/service"
	"sistema-provale/internal/testutil"
	"sistema-provale/internal/usecase"
	"sistema-provale/pkg/jwt"
	"sistema-provale/pkg/password"
	"sistema-provale/pkg/response"
	"sistema-provale/pkg/validator"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type envelope struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Error   map[string]string `json:"error"`
	Meta    *response.Meta    `json:"meta"`
}

// testServer runs the full router over an in-memory database
type testServer struct {
	t      *testing.T
	db     *gorm.DB
	f      *testutil.Fixture
	router *mux.Router
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	db := testutil.NewSQLiteDB(t)
	f := testutil.SeedFixture(t, db)
	log := testutil.NewLogger()

	jwtService := jwt.NewJWTService(config.JWTConfig{
		Secret:        "router-test-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: time.Hour,
	})
	authCfg := config.AuthConfig{ActiveEstadoCodes: []string{"ACT"}, DefaultRole: "usuario"}
	v := validator.NewValidator()

	usuarioRepo := repository.NewUsuarioRepository()
	socioRepo := repository.NewSocioRepository()
	productoRepo := repository.NewProductoRepository()
	auditLogRepo := repository.NewAuditLogRepository()
	auditService := service.NewAuditService(log, auditLogRepo)
	tokens := testutil.NewMemoryTokenStore()

	catalogos := usecase.CatalogoRepositories{
		Roles:                 repository.NewCatalogoRepository[entity.Rol]("codRol"),
		TiposLocal:            repository.NewCatalogoRepository[entity.TipoLocal]("codTipoLocal"),
		Cargos:                repository.NewCatalogoRepository[entity.Cargo]("codCargo"),
		Parentescos:           repository.NewCatalogoRepository[entity.Parentesco]("codParentesco"),
		UnidadesMedida:        repository.NewCatalogoRepository[entity.UnidadMedida]("codUnidadMedida"),
		TiposMovimiento:       repository.NewCatalogoRepository[entity.TipoMovimiento]("codTipoMovimiento"),
		Zonas:                 repository.NewCatalogoRepository[entity.Zona]("codZona"),
		Sectores:              repository.NewCatalogoRepository[entity.Sector]("codSector"),
		MotivosInhabilitacion: repository.NewCatalogoRepository[entity.MotivoInhabilitacion]("codMotivoInhabilitacion"),
	}

	authUsecase := usecase.NewAuthUsecase(db, log, authCfg, usuarioRepo, jwtService, tokens, auditService)

	handlers := Handlers{
		Auth:      handler.NewAuthHandler(authUsecase, v),
		Usuario:   handler.NewUsuarioHandler(usecase.NewUsuarioUsecase(db, log, authCfg.DefaultRole, usuarioRepo, auditService), v),
		Dashboard: handler.NewDashboardHandler(usecase.NewDashboardUsecase(db, log, authCfg.DefaultRole, repository.NewBeneficiarioRepository(), socioRepo, repository.NewPecosaRepository(), productoRepo, repository.NewAsociacionRepository())),
		Catalogo: handler.NewCatalogoHandler(
			usecase.NewEstadoUsecase(db, log, repository.NewEstadoRepository(), auditService),
			usecase.NewCatalogoUsecase(db, log, catalogos, auditService),
			usecase.NewTipoBeneficioUsecase(db, log, repository.NewTipoBeneficioRepository()),
			usecase.NewSectorZonaUsecase(db, log, repository.NewSectorZonaRepository()),
			v,
		),
		Asociacion: handler.NewAsociacionHandler(usecase.NewAsociacionUsecase(db, log, repository.NewAsociacionRepository(), repository.NewReconocimientoRepository(), repository.NewDirectivaRepository(), socioRepo, auditService), v),
		Persona:    handler.NewPersonaHandler(usecase.NewPersonaUsecase(db, log, repository.NewPersonaRepository(), socioRepo), v),
		Beneficiario: handler.NewBeneficiarioHandler(usecase.NewBeneficiarioUsecase(db, log, repository.NewBeneficiarioRepository(), repository.NewHistoricoBeneficiarioRepository(),
			repository.NewDatosObstetricosRepository(), repository.NewTipoBeneficioRepository(), auditService), v),
		Inventario: handler.NewInventarioHandler(usecase.NewInventarioUsecase(db, log, productoRepo, repository.NewTipoMovimientoRepository(), repository.NewMovimientoRepository(), auditService), v),
		Pecosa:     handler.NewPecosaHandler(usecase.NewPecosaUsecase(db, log, repository.NewPecosaRepository(), repository.NewDetallePecosaRepository(), socioRepo, productoRepo, auditService), v),
		AuditLog:   handler.NewAuditLogHandler(usecase.NewAuditLogUsecase(db, log, auditLogRepo)),
	}

	router := NewRouter(
		handlers,
		middleware.NewAuthMiddleware(jwtService, tokens, authUsecase),
		middleware.NewCORSMiddleware(),
		middleware.NewRequestLogger(log),
	)

	return &testServer{t: t, db: db, f: f, router: router.Setup()}
}

func (ts *testServer) request(method, path, token string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	ts.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(ts.t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(ts.t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

// login creates an account with the given role and returns its token pair
func (ts *testServer) login(username, rol string) dto.TokenResponse {
	ts.t.Helper()

	r := entity.Rol{Descripcion: rol}
	require.NoError(ts.t, ts.db.Where(entity.Rol{Descripcion: rol}).FirstOrCreate(&r).Error)

	hash, err := password.Hash("clave-segura-1")
	require.NoError(ts.t, err)
	testutil.SeedUsuario(ts.t, ts.db, username, hash, &r, &ts.f.Estado)

	w, env := ts.request(http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{Username: username, Password: "clave-segura-1"})
	require.Equal(ts.t, http.StatusOK, w.Code, w.Body.String())

	var tokens dto.TokenResponse
	require.NoError(ts.t, json.Unmarshal(env.Data, &tokens))
	return tokens
}

func TestRouter_PublicAndAuth(t *testing.T) {
	ts := newTestServer(t)

	t.Run("health", func(t *testing.T) {
		w, env := ts.request(http.MethodGet, "/api/v1/health", "", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, env.Success)
		assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
	})

	t.Run("protected route without token", func(t *testing.T) {
		w, _ := ts.request(http.MethodGet, "/api/v1/productos", "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("bad credentials", func(t *testing.T) {
		w, _ := ts.request(http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{Username: "nadie", Password: "x"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("login validation", func(t *testing.T) {
		w, env := ts.request(http.MethodPost, "/api/v1/auth/login", "", map[string]string{"username": "solo"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, env.Error, "password")
	})

	tokens := ts.login("gerente1", entity.RolGerente)

	t.Run("me and dashboard", func(t *testing.T) {
		w, env := ts.request(http.MethodGet, "/api/v1/auth/me", tokens.AccessToken, nil)
		require.Equal(t, http.StatusOK, w.Code)
		var me dto.UsuarioResponse
		require.NoError(t, json.Unmarshal(env.Data, &me))
		assert.Equal(t, "gerente1", me.Username)
		assert.Equal(t, entity.RolGerente, me.Rol)

		w, env = ts.request(http.MethodGet, "/api/v1/dashboard", tokens.AccessToken, nil)
		require.Equal(t, http.StatusOK, w.Code)
		var summary dto.DashboardResponse
		require.NoError(t, json.Unmarshal(env.Data, &summary))
		assert.Equal(t, int64(1), summary.Totales.Productos)
		assert.Equal(t, int64(1), summary.Totales.SociosActivos)
	})

	t.Run("non admin cannot read audit logs", func(t *testing.T) {
		w, _ := ts.request(http.MethodGet, "/api/v1/audit-logs", tokens.AccessToken, nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("refresh is single use", func(t *testing.T) {
		w, _ := ts.request(http.MethodPost, "/api/v1/auth/refresh-token", "", dto.RefreshTokenRequest{RefreshToken: tokens.RefreshToken})
		require.Equal(t, http.StatusOK, w.Code)

		w, _ = ts.request(http.MethodPost, "/api/v1/auth/refresh-token", "", dto.RefreshTokenRequest{RefreshToken: tokens.RefreshToken})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("logout revokes the access token", func(t *testing.T) {
		w, _ := ts.request(http.MethodPost, "/api/v1/auth/logout", tokens.AccessToken, dto.LogoutRequest{})
		require.Equal(t, http.StatusOK, w.Code)

		w, _ = ts.request(http.MethodGet, "/api/v1/auth/me", tokens.AccessToken, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRouter_Inventario(t *testing.T) {
	ts := newTestServer(t)
	token := ts.login("almacen", entity.RolUsuario).AccessToken
	producto := ts.f.Producto.CodProducto

	w, env := ts.request(http.MethodPost, "/api/v1/movimientos", token, dto.CreateMovimientoRequest{
		CodProducto:       producto,
		CodTipoMovimiento: ts.f.Entrada.CodTipoMovimiento,
		Cantidad:          100,
		PrecioUnitario:    decimal.RequireFromString("3.25"),
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var movimiento dto.MovimientoResponse
	require.NoError(t, json.Unmarshal(env.Data, &movimiento))
	assert.True(t, decimal.RequireFromString("325").Equal(movimiento.PrecioTotal))

	w, _ = ts.request(http.MethodPost, "/api/v1/movimientos", token, dto.CreateMovimientoRequest{
		CodProducto:       producto,
		CodTipoMovimiento: ts.f.Salida.CodTipoMovimiento,
		Cantidad:          30,
		PrecioUnitario:    decimal.RequireFromString("3.25"),
	})
	require.Equal(t, http.StatusCreated, w.Code)

	t.Run("stock real", func(t *testing.T) {
		w, env := ts.request(http.MethodGet, fmt.Sprintf("/api/v1/productos/%d", producto), token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		var p dto.ProductoResponse
		require.NoError(t, json.Unmarshal(env.Data, &p))
		assert.Equal(t, 70, p.StockReal)
	})

	t.Run("movement list is paginated", func(t *testing.T) {
		w, env := ts.request(http.MethodGet, "/api/v1/movimientos?limit=1&page=2", token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, env.Meta)
		assert.Equal(t, int64(2), env.Meta.Total)
		assert.Equal(t, 2, env.Meta.Page)
		assert.Equal(t, 2, env.Meta.TotalPages)
	})

	t.Run("bad date filter", func(t *testing.T) {
		w, _ := ts.request(http.MethodGet, "/api/v1/movimientos?desde=01-01-2024", token, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown product", func(t *testing.T) {
		w, _ := ts.request(http.MethodGet, "/api/v1/productos/999", token, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)

		w, _ = ts.request(http.MethodPost, "/api/v1/movimientos", token, dto.CreateMovimientoRequest{
			CodProducto: 999, CodTipoMovimiento: ts.f.Entrada.CodTipoMovimiento, Cantidad: 1,
		})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("duplicate product", func(t *testing.T) {
		w, _ := ts.request(http.MethodPost, "/api/v1/productos", token, dto.CreateProductoRequest{
			CodUnidadMedida: ts.f.Unidad.CodUnidadMedida,
			Descripcion:     ts.f.Producto.Descripcion,
			CodEstado:       ts.f.Estado.CodEstado,
		})
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("invalid path id", func(t *testing.T) {
		w, _ := ts.request(http.MethodGet, "/api/v1/productos/abc", token, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestRouter_Pecosas(t *testing.T) {
	ts := newTestServer(t)
	token := ts.login("reparto", entity.RolUsuario).AccessToken

	req := dto.CreatePecosaRequest{
		CodAsociacion:      ts.f.Asociacion.CodAsociacion,
		NumeroPecosa:       testutil.StrPtr("00000123"),
		CodSocioPresidenta: ts.f.Socio.CodSocio,
		FechaReparto:       "2024-05-10",
		CodEstado:          ts.f.Estado.CodEstado,
		Detalles: []dto.CreateDetallePecosaRequest{
			{CodProducto: ts.f.Producto.CodProducto, Prioridad: 1, Cantidad: 10},
		},
	}

	w, env := ts.request(http.MethodPost, "/api/v1/pecosas", token, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var pecosa dto.PecosaResponse
	require.NoError(t, json.Unmarshal(env.Data, &pecosa))
	assert.True(t, decimal.RequireFromString("32").Equal(pecosa.Total))

	t.Run("add line", func(t *testing.T) {
		w, env := ts.request(http.MethodPost, fmt.Sprintf("/api/v1/pecosas/%d/detalles", pecosa.CodPecosa), token, dto.CreateDetallePecosaRequest{
			CodProducto:    ts.f.Producto.CodProducto,
			Prioridad:      2,
			Cantidad:       2,
			PrecioUnitario: decimal.NewNullDecimal(decimal.RequireFromString("4.50")),
		})
		require.Equal(t, http.StatusCreated, w.Code)
		var updated dto.PecosaResponse
		require.NoError(t, json.Unmarshal(env.Data, &updated))
		assert.True(t, decimal.RequireFromString("41").Equal(updated.Total))
		assert.Len(t, updated.Detalles, 2)
	})

	t.Run("reversed window", func(t *testing.T) {
		w, _ := ts.request(http.MethodPost, fmt.Sprintf("/api/v1/pecosas/%d/detalles", pecosa.CodPecosa), token, dto.CreateDetallePecosaRequest{
			CodProducto: ts.f.Producto.CodProducto,
			FechaDesde:  "2024-05-10",
			FechaHasta:  "2024-05-01",
			Cantidad:    1,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("list filters by number", func(t *testing.T) {
		w, env := ts.request(http.MethodGet, "/api/v1/pecosas?numero=000001", token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, int64(1), env.Meta.Total)

		w, env = ts.request(http.MethodGet, "/api/v1/pecosas?numero=999", token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, int64(0), env.Meta.Total)
	})

	t.Run("delete needs a manager", func(t *testing.T) {
		w, _ := ts.request(http.MethodDelete, fmt.Sprintf("/api/v1/pecosas/%d", pecosa.CodPecosa), token, nil)
		require.Equal(t, http.StatusForbidden, w.Code)

		gerente := ts.login("gerente", entity.RolGerente).AccessToken
		w, _ = ts.request(http.MethodDelete, fmt.Sprintf("/api/v1/pecosas/%d", pecosa.CodPecosa), gerente, nil)
		require.Equal(t, http.StatusOK, w.Code)

		w, _ = ts.request(http.MethodGet, fmt.Sprintf("/api/v1/pecosas/%d", pecosa.CodPecosa), token, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestRouter_AdminRoutes(t *testing.T) {
	ts := newTestServer(t)
	token := ts.login("jefe", entity.RolAdministrador).AccessToken

	t.Run("create user", func(t *testing.T) {
		w, env := ts.request(http.MethodPost, "/api/v1/usuarios", token, dto.CreateUsuarioRequest{
			Username:        "operador",
			Password:        "clave-operador",
			Nombres:         "Luis Alberto",
			ApellidoPaterno: "Huaman",
			ApellidoMaterno: "Rojas",
			DNI:             "45678912",
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var usuario dto.UsuarioResponse
		require.NoError(t, json.Unmarshal(env.Data, &usuario))
		assert.Equal(t, "usuario", usuario.Rol)

		w, _ = ts.request(http.MethodPost, "/api/v1/usuarios", token, dto.CreateUsuarioRequest{
			Username:        "operador",
			Password:        "clave-operador",
			Nombres:         "Otro",
			ApellidoPaterno: "Huaman",
			ApellidoMaterno: "Rojas",
			DNI:             "45678913",
		})
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("audit trail", func(t *testing.T) {
		w, env := ts.request(http.MethodGet, "/api/v1/audit-logs", token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, env.Meta)
		// login of jefe and creation of operador
		assert.GreaterOrEqual(t, env.Meta.Total, int64(2))

		w, _ = ts.request(http.MethodGet, "/api/v1/audit-logs/99999", token, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestRouter_Personas(t *testing.T) {
	ts := newTestServer(t)
	token := ts.login("registro", entity.RolUsuario).AccessToken

	w, env := ts.request(http.MethodGet, "/api/v1/personas/dni/"+ts.f.Persona.DNI, token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var persona dto.PersonaResponse
	require.NoError(t, json.Unmarshal(env.Data, &persona))
	assert.Equal(t, ts.f.Persona.CodPersona, persona.CodPersona)
	assert.NotNil(t, persona.Edad)

	w, _ = ts.request(http.MethodGet, "/api/v1/personas/dni/99999999", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
