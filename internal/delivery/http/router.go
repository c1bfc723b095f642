package http

import (
	"net/http"

	"sistema-provale/internal/delivery/http/handler"
	"sistema-provale/internal/delivery/http/middleware"
	"sistema-provale/pkg/response"

	"github.com/gorilla/mux"
)

type Handlers struct {
	Auth         *handler.AuthHandler
	Usuario      *handler.UsuarioHandler
	Dashboard    *handler.DashboardHandler
	Catalogo     *handler.CatalogoHandler
	Asociacion   *handler.AsociacionHandler
	Persona      *handler.PersonaHandler
	Beneficiario *handler.BeneficiarioHandler
	Inventario   *handler.InventarioHandler
	Pecosa       *handler.PecosaHandler
	AuditLog     *handler.AuditLogHandler
}

type Router struct {
	router         *mux.Router
	handlers       Handlers
	authMiddleware *middleware.AuthMiddleware
	corsMiddleware *middleware.CORSMiddleware
	requestLogger  *middleware.RequestLogger
}

func NewRouter(
	handlers Handlers,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	requestLogger *middleware.RequestLogger,
) *Router {
	return &Router{
		router:         mux.NewRouter(),
		handlers:       handlers,
		authMiddleware: authMiddleware,
		corsMiddleware: corsMiddleware,
		requestLogger:  requestLogger,
	}
}

func (r *Router) Setup() *mux.Router {
	h := r.handlers

	r.router.Use(r.requestLogger.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	api.HandleFunc("/auth/login", h.Auth.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/refresh-token", h.Auth.RefreshToken).Methods(http.MethodPost)

	// Everything below needs an active session
	protected := api.NewRoute().Subrouter()
	protected.Use(r.authMiddleware.Authenticate)

	protected.HandleFunc("/auth/logout", h.Auth.Logout).Methods(http.MethodPost)
	protected.HandleFunc("/auth/logout-all", h.Auth.LogoutAll).Methods(http.MethodPost)
	protected.HandleFunc("/auth/me", h.Auth.GetCurrentUser).Methods(http.MethodGet)
	protected.HandleFunc("/dashboard", h.Dashboard.Summary).Methods(http.MethodGet)

	// Catalogs
	protected.HandleFunc("/estados", h.Catalogo.GetEstados).Methods(http.MethodGet)
	protected.HandleFunc("/estados", h.Catalogo.CreateEstado).Methods(http.MethodPost)
	protected.HandleFunc("/catalogos", h.Catalogo.GetTipos).Methods(http.MethodGet)
	protected.HandleFunc("/catalogos/{tipo}", h.Catalogo.GetCatalogo).Methods(http.MethodGet)
	protected.HandleFunc("/catalogos/{tipo}", h.Catalogo.CreateCatalogoItem).Methods(http.MethodPost)
	protected.HandleFunc("/tipos-beneficio", h.Catalogo.GetTiposBeneficio).Methods(http.MethodGet)
	protected.HandleFunc("/tipos-beneficio", h.Catalogo.CreateTipoBeneficio).Methods(http.MethodPost)
	protected.HandleFunc("/sectores-zona", h.Catalogo.GetSectoresZona).Methods(http.MethodGet)
	protected.HandleFunc("/sectores-zona", h.Catalogo.CreateSectorZona).Methods(http.MethodPost)

	// Associations
	protected.HandleFunc("/asociaciones", h.Asociacion.GetAll).Methods(http.MethodGet)
	protected.HandleFunc("/asociaciones", h.Asociacion.Create).Methods(http.MethodPost)
	protected.HandleFunc("/asociaciones/{id}", h.Asociacion.GetByID).Methods(http.MethodGet)
	protected.HandleFunc("/asociaciones/{id}/reconocimientos", h.Asociacion.GetReconocimientos).Methods(http.MethodGet)
	protected.HandleFunc("/asociaciones/{id}/reconocimientos", h.Asociacion.CreateReconocimiento).Methods(http.MethodPost)
	protected.HandleFunc("/reconocimientos/{id}/directivas", h.Asociacion.GetDirectivas).Methods(http.MethodGet)
	protected.HandleFunc("/reconocimientos/{id}/directivas", h.Asociacion.CreateDirectiva).Methods(http.MethodPost)

	// People
	protected.HandleFunc("/personas", h.Persona.GetAll).Methods(http.MethodGet)
	protected.HandleFunc("/personas", h.Persona.Create).Methods(http.MethodPost)
	protected.HandleFunc("/personas/{id}", h.Persona.GetByID).Methods(http.MethodGet)
	protected.HandleFunc("/personas/dni/{dni}", h.Persona.GetByDNI).Methods(http.MethodGet)
	protected.HandleFunc("/socios", h.Persona.GetSocios).Methods(http.MethodGet)
	protected.HandleFunc("/socios", h.Persona.CreateSocio).Methods(http.MethodPost)

	// Beneficiaries
	protected.HandleFunc("/beneficiarios", h.Beneficiario.GetAll).Methods(http.MethodGet)
	protected.HandleFunc("/beneficiarios", h.Beneficiario.Create).Methods(http.MethodPost)
	protected.HandleFunc("/beneficiarios/{id}/historicos", h.Beneficiario.GetHistoricos).Methods(http.MethodGet)
	protected.HandleFunc("/beneficiarios/{id}/historicos", h.Beneficiario.CreateHistorico).Methods(http.MethodPost)
	protected.HandleFunc("/historicos/{id}/cierre", h.Beneficiario.CerrarHistorico).Methods(http.MethodPost)
	protected.HandleFunc("/historicos/{id}/datos-obstetricos", h.Beneficiario.GuardarDatosObstetricos).Methods(http.MethodPut)

	// Inventory
	protected.HandleFunc("/productos", h.Inventario.GetProductos).Methods(http.MethodGet)
	protected.HandleFunc("/productos", h.Inventario.CreateProducto).Methods(http.MethodPost)
	protected.HandleFunc("/productos/{id}", h.Inventario.GetProducto).Methods(http.MethodGet)
	protected.HandleFunc("/productos/{id}/movimientos", h.Inventario.GetMovimientosProducto).Methods(http.MethodGet)
	protected.HandleFunc("/movimientos", h.Inventario.GetMovimientos).Methods(http.MethodGet)
	protected.HandleFunc("/movimientos", h.Inventario.CreateMovimiento).Methods(http.MethodPost)

	// Distribution
	protected.HandleFunc("/pecosas", h.Pecosa.GetAll).Methods(http.MethodGet)
	protected.HandleFunc("/pecosas", h.Pecosa.Create).Methods(http.MethodPost)
	protected.HandleFunc("/pecosas/{id}", h.Pecosa.GetByID).Methods(http.MethodGet)
	protected.HandleFunc("/pecosas/{id}/detalles", h.Pecosa.AddDetalle).Methods(http.MethodPost)

	// Deletions are limited to administrators and managers
	gestion := protected.NewRoute().Subrouter()
	gestion.Use(middleware.RequireGestion)
	gestion.HandleFunc("/estados/{id}", h.Catalogo.DeleteEstado).Methods(http.MethodDelete)
	gestion.HandleFunc("/catalogos/{tipo}/{id}", h.Catalogo.DeleteCatalogoItem).Methods(http.MethodDelete)
	gestion.HandleFunc("/asociaciones/{id}", h.Asociacion.Delete).Methods(http.MethodDelete)
	gestion.HandleFunc("/historicos/{id}", h.Beneficiario.DeleteHistorico).Methods(http.MethodDelete)
	gestion.HandleFunc("/pecosas/{id}", h.Pecosa.Delete).Methods(http.MethodDelete)

	// Admin routes
	admin := protected.NewRoute().Subrouter()
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("/usuarios", h.Usuario.Create).Methods(http.MethodPost)
	admin.HandleFunc("/usuarios/{id}", h.Usuario.GetByID).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs", h.AuditLog.GetAllAuditLogs).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs/{id}", h.AuditLog.GetAuditLog).Methods(http.MethodGet)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	response.Success(w, http.StatusOK, "ok", map[string]string{"status": "ok"})
}
