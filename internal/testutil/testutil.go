// Package testutil provides database fixtures and fakes shared by the
// repository, usecase and handler tests.
package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"sync"
	"testing"
	"time"

	"sistema-provale/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// AllEntities lists every persisted entity in dependency order
func AllEntities() []interface{} {
	return []interface{}{
		&entity.Estado{}, &entity.Rol{},
		&entity.Zona{}, &entity.Sector{}, &entity.SectorZona{},
		&entity.TipoLocal{}, &entity.Asociacion{}, &entity.Reconocimiento{},
		&entity.Cargo{}, &entity.Persona{}, &entity.Socio{}, &entity.Directiva{},
		&entity.Parentesco{}, &entity.TipoBeneficio{}, &entity.MotivoInhabilitacion{},
		&entity.Beneficiario{}, &entity.HistoricoBeneficiario{}, &entity.DatosObstetricos{},
		&entity.UnidadMedida{}, &entity.Producto{}, &entity.TipoMovimiento{}, &entity.Movimiento{},
		&entity.Pecosa{}, &entity.DetallePecosa{},
		&entity.Usuario{}, &entity.AuditLog{},
	}
}

// NewSQLiteDB opens a private in-memory SQLite database with foreign keys enforced
// and constraint errors translated to gorm.ErrDuplicatedKey / gorm.ErrForeignKeyViolated.
func NewSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// One connection keeps every query on the same in-memory database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, db.AutoMigrate(AllEntities()...))

	return db
}

// MockDB wraps a GORM database with sqlmock behind the PostgreSQL dialector
type MockDB struct {
	DB    *gorm.DB
	Mock  sqlmock.Sqlmock
	SqlDB *sql.DB
}

func NewMockDB(t *testing.T) *MockDB {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err, "Failed to create sqlmock")
	t.Cleanup(func() { mockDB.Close() })

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "Failed to open GORM connection")

	return &MockDB{DB: gormDB, Mock: mock, SqlDB: mockDB}
}

// ExpectationsWereMet verifies that all expectations were met
func (m *MockDB) ExpectationsWereMet(t *testing.T) {
	t.Helper()
	require.NoError(t, m.Mock.ExpectationsWereMet(), "Unmet database expectations")
}

// NewLogger returns a logger that writes nowhere
func NewLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func StrPtr(s string) *string { return &s }

func IntPtr(i int) *int { return &i }

func Date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Fixture is the minimal graph most tests hang their rows from
type Fixture struct {
	Estado     entity.Estado
	Inactivo   entity.Estado
	SectorZona entity.SectorZona
	TipoLocal  entity.TipoLocal
	Asociacion entity.Asociacion
	Persona    entity.Persona
	Socio      entity.Socio
	Unidad     entity.UnidadMedida
	Producto   entity.Producto
	Entrada    entity.TipoMovimiento
	Salida     entity.TipoMovimiento
}

func SeedFixture(t *testing.T, db *gorm.DB) *Fixture {
	t.Helper()

	f := &Fixture{}

	f.Estado = entity.Estado{Abreviatura: entity.EstadoActivo, Descripcion: "Activo"}
	require.NoError(t, db.Create(&f.Estado).Error)
	f.Inactivo = entity.Estado{Abreviatura: entity.EstadoInactivo, Descripcion: "Inactivo"}
	require.NoError(t, db.Create(&f.Inactivo).Error)

	zona := entity.Zona{Descripcion: StrPtr("Cercado")}
	require.NoError(t, db.Create(&zona).Error)
	sector := entity.Sector{Descripcion: StrPtr("Sector 1")}
	require.NoError(t, db.Create(&sector).Error)
	f.SectorZona = entity.SectorZona{CodZona: zona.CodZona, CodSector: sector.CodSector}
	require.NoError(t, db.Create(&f.SectorZona).Error)

	f.TipoLocal = entity.TipoLocal{Descripcion: "Propio"}
	require.NoError(t, db.Create(&f.TipoLocal).Error)

	f.Asociacion = entity.Asociacion{
		CodigoAsociacion: "CM-001",
		NombreAsociacion: StrPtr("Club de Madres Santa Rosa"),
		CodSectorZona:    f.SectorZona.CodSectorZona,
		CodTipoLocal:     f.TipoLocal.CodTipoLocal,
		Direccion:        "Jr. Lima 123",
		CodEstado:        f.Estado.CodEstado,
	}
	require.NoError(t, db.Create(&f.Asociacion).Error)

	f.Persona = entity.Persona{
		Nombres:         "Rosa",
		ApellidoPaterno: "Quispe",
		ApellidoMaterno: "Mamani",
		DNI:             "40123456",
		Sexo:            entity.SexoFemenino,
		FechaNacimiento: Date(1985, time.March, 2),
		CodSectorZona:   f.SectorZona.CodSectorZona,
		Direccion:       "Jr. Lima 125",
	}
	require.NoError(t, db.Create(&f.Persona).Error)

	f.Socio = entity.Socio{
		CodPersona:    f.Persona.CodPersona,
		CodAsociacion: f.Asociacion.CodAsociacion,
		CodEstado:     f.Estado.CodEstado,
	}
	require.NoError(t, db.Create(&f.Socio).Error)

	f.Unidad = entity.UnidadMedida{Descripcion: "Kilogramo"}
	require.NoError(t, db.Create(&f.Unidad).Error)

	f.Producto = entity.Producto{
		CodUnidadMedida: f.Unidad.CodUnidadMedida,
		Descripcion:     "Leche evaporada",
		PrecioUnitario:  decimal.NewNullDecimal(decimal.RequireFromString("3.20")),
		CodEstado:       f.Estado.CodEstado,
	}
	require.NoError(t, db.Create(&f.Producto).Error)

	f.Entrada = entity.TipoMovimiento{Descripcion: entity.TipoMovimientoEntrada}
	require.NoError(t, db.Create(&f.Entrada).Error)
	f.Salida = entity.TipoMovimiento{Descripcion: entity.TipoMovimientoSalida}
	require.NoError(t, db.Create(&f.Salida).Error)

	return f
}

// SeedUsuario creates an account with the given role and estado. The password hash is stored as given.
func SeedUsuario(t *testing.T, db *gorm.DB, username, hash string, rol *entity.Rol, estado *entity.Estado) *entity.Usuario {
	t.Helper()

	usuario := &entity.Usuario{
		Username:        username,
		Password:        hash,
		IsActive:        true,
		Nombres:         "Ana Lucia",
		ApellidoPaterno: "Flores",
		ApellidoMaterno: "Ccama",
		Email:           username + "@provale.test",
		DNI:             "41234567",
	}
	if rol != nil {
		usuario.CodRol = &rol.CodRol
	}
	if estado != nil {
		usuario.CodEstado = &estado.CodEstado
	}
	require.NoError(t, db.Create(usuario).Error)
	return usuario
}

// MemoryTokenStore is an in-process token allow-list with the same contract as the Redis store
type MemoryTokenStore struct {
	mu     sync.Mutex
	tokens map[string]time.Time
}

func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{tokens: make(map[string]time.Time)}
}

func memKey(kind string, userID int, tokenID string) string {
	return fmt.Sprintf("%s:%d:%s", kind, userID, tokenID)
}

func (s *MemoryTokenStore) Store(ctx context.Context, userID int, accessID string, accessTTL time.Duration, refreshID string, refreshTTL time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	s.tokens[memKey("access", userID, accessID)] = now.Add(accessTTL)
	s.tokens[memKey("refresh", userID, refreshID)] = now.Add(refreshTTL)
	return nil
}

func (s *MemoryTokenStore) valid(key string) bool {
	exp, ok := s.tokens[key]
	return ok && time.Now().Before(exp)
}

func (s *MemoryTokenStore) AccessValid(ctx context.Context, userID int, accessID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.valid(memKey("access", userID, accessID)), nil
}

func (s *MemoryTokenStore) ConsumeRefresh(ctx context.Context, userID int, refreshID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := memKey("refresh", userID, refreshID)
	ok := s.valid(key)
	delete(s.tokens, key)
	return ok, nil
}

func (s *MemoryTokenStore) Revoke(ctx context.Context, userID int, accessID, refreshID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, memKey("access", userID, accessID))
	if refreshID != "" {
		delete(s.tokens, memKey("refresh", userID, refreshID))
	}
	return nil
}

func (s *MemoryTokenStore) RevokeAll(ctx context.Context, userID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, kind := range []string{"access", "refresh"} {
		prefix := fmt.Sprintf("%s:%d:", kind, userID)
		for key := range s.tokens {
			if len(key) >= len(prefix) && key[:len(prefix)] == prefix {
				delete(s.tokens, key)
			}
		}
	}
	return nil
}

// Len reports how many tokens are stored
func (s *MemoryTokenStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tokens)
}
