package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sistema-provale/config"
	deliveryHttp "sistema-provale/internal/delivery/http"
	"sistema-provale/internal/delivery/http/handler"
	"sistema-provale/internal/delivery/http/middleware"
	"sistema-provale/internal/domain/entity"
	"sistema-provale/internal/infrastructure/cache"
	"sistema-provale/internal/infrastructure/database"
	"sistema-provale/internal/repository"
	"sistema-provale/internal/service"
	"sistema-provale/internal/usecase"
	"sistema-provale/migrations"
	"sistema-provale/pkg/jwt"
	"sistema-provale/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	Log         *logrus.Logger
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	log := setupLogger()
	app.Log = log

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	log.Info("Configuration loaded successfully")

	// Initialize database
	db, err := Database(cfg, log)
	if err != nil {
		return nil, err
	}
	app.DB = db

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(context.Background(), cfg.Redis, log)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	// Initialize all layers
	app.Server = initializeServer(cfg, log, db, redisClient)

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() *logrus.Logger {
	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)
	log.SetLevel(logrus.InfoLevel)
	return log
}

// Database connects to PostgreSQL and, when enabled, applies pending migrations
func Database(cfg *config.Config, log *logrus.Logger) (*gorm.DB, error) {
	if cfg.DB.RunMigrations {
		migrator, err := database.NewMigrator(database.DSN(cfg.DB), migrations.FS, log)
		if err != nil {
			return nil, err
		}
		defer migrator.Close()

		if err := migrator.Up(); err != nil {
			return nil, err
		}
	}

	db, err := database.NewPostgresConnection(cfg.DB, log, cfg.App.IsDevelopment())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// catalogoRepositories builds one generic repository per description-only lookup table
func catalogoRepositories() usecase.CatalogoRepositories {
	return usecase.CatalogoRepositories{
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
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, log *logrus.Logger, db *gorm.DB, redisClient *redis.Client) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	estadoRepo := repository.NewEstadoRepository()
	tipoBeneficioRepo := repository.NewTipoBeneficioRepository()
	sectorZonaRepo := repository.NewSectorZonaRepository()
	asociacionRepo := repository.NewAsociacionRepository()
	reconocimientoRepo := repository.NewReconocimientoRepository()
	directivaRepo := repository.NewDirectivaRepository()
	personaRepo := repository.NewPersonaRepository()
	socioRepo := repository.NewSocioRepository()
	beneficiarioRepo := repository.NewBeneficiarioRepository()
	historicoRepo := repository.NewHistoricoBeneficiarioRepository()
	datosObstetricosRepo := repository.NewDatosObstetricosRepository()
	productoRepo := repository.NewProductoRepository()
	tipoMovimientoRepo := repository.NewTipoMovimientoRepository()
	movimientoRepo := repository.NewMovimientoRepository()
	pecosaRepo := repository.NewPecosaRepository()
	detallePecosaRepo := repository.NewDetallePecosaRepository()
	usuarioRepo := repository.NewUsuarioRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize services
	auditService := service.NewAuditService(log, auditLogRepo)
	tokenStore := service.NewRedisTokenStore(redisClient, log)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, cfg.Auth, usuarioRepo, jwtService, tokenStore, auditService)
	usuarioUsecase := usecase.NewUsuarioUsecase(db, log, cfg.Auth.DefaultRole, usuarioRepo, auditService)
	estadoUsecase := usecase.NewEstadoUsecase(db, log, estadoRepo, auditService)
	catalogoUsecase := usecase.NewCatalogoUsecase(db, log, catalogoRepositories(), auditService)
	tipoBeneficioUsecase := usecase.NewTipoBeneficioUsecase(db, log, tipoBeneficioRepo)
	sectorZonaUsecase := usecase.NewSectorZonaUsecase(db, log, sectorZonaRepo)
	asociacionUsecase := usecase.NewAsociacionUsecase(db, log, asociacionRepo, reconocimientoRepo, directivaRepo, socioRepo, auditService)
	personaUsecase := usecase.NewPersonaUsecase(db, log, personaRepo, socioRepo)
	beneficiarioUsecase := usecase.NewBeneficiarioUsecase(db, log, beneficiarioRepo, historicoRepo, datosObstetricosRepo, tipoBeneficioRepo, auditService)
	inventarioUsecase := usecase.NewInventarioUsecase(db, log, productoRepo, tipoMovimientoRepo, movimientoRepo, auditService)
	pecosaUsecase := usecase.NewPecosaUsecase(db, log, pecosaRepo, detallePecosaRepo, socioRepo, productoRepo, auditService)
	dashboardUsecase := usecase.NewDashboardUsecase(db, log, cfg.Auth.DefaultRole, beneficiarioRepo, socioRepo, pecosaRepo, productoRepo, asociacionRepo)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)

	// Initialize handlers
	handlers := deliveryHttp.Handlers{
		Auth:         handler.NewAuthHandler(authUsecase, customValidator),
		Usuario:      handler.NewUsuarioHandler(usuarioUsecase, customValidator),
		Dashboard:    handler.NewDashboardHandler(dashboardUsecase),
		Catalogo:     handler.NewCatalogoHandler(estadoUsecase, catalogoUsecase, tipoBeneficioUsecase, sectorZonaUsecase, customValidator),
		Asociacion:   handler.NewAsociacionHandler(asociacionUsecase, customValidator),
		Persona:      handler.NewPersonaHandler(personaUsecase, customValidator),
		Beneficiario: handler.NewBeneficiarioHandler(beneficiarioUsecase, customValidator),
		Inventario:   handler.NewInventarioHandler(inventarioUsecase, customValidator),
		Pecosa:       handler.NewPecosaHandler(pecosaUsecase, customValidator),
		AuditLog:     handler.NewAuditLogHandler(auditLogUsecase),
	}

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, tokenStore, authUsecase)
	corsMiddleware := middleware.NewCORSMiddleware()
	requestLogger := middleware.NewRequestLogger(log)

	// Initialize router
	router := deliveryHttp.NewRouter(handlers, authMiddleware, corsMiddleware, requestLogger)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:              serverAddr,
		Handler:           httpRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			app.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	app.Log.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	app.Log.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
