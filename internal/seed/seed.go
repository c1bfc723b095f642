// Package seed creates the reference rows a fresh database needs before the
// API is usable. Running it twice leaves the database unchanged.
package seed

import (
	"context"
	"errors"
	"fmt"

	"sistema-provale/internal/domain/entity"
	"sistema-provale/internal/domain/repository"
	"sistema-provale/pkg/password"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const AdminUsername = "admin"

var ErrAdminPasswordRequired = errors.New("admin password is required")

var estados = []entity.Estado{
	{Abreviatura: entity.EstadoActivo, Descripcion: "Activo"},
	{Abreviatura: entity.EstadoInactivo, Descripcion: "Inactivo"},
	{Abreviatura: entity.EstadoSuspendido, Descripcion: "Suspendido"},
}

var roles = []string{entity.RolAdministrador, entity.RolGerente, entity.RolUsuario, entity.RolConsultor}

var tiposMovimiento = []string{entity.TipoMovimientoEntrada, entity.TipoMovimientoSalida}

type Seeder struct {
	db                 *gorm.DB
	log                *logrus.Logger
	estadoRepo         repository.EstadoRepository
	rolRepo            repository.CatalogoRepository[entity.Rol]
	tipoMovimientoRepo repository.CatalogoRepository[entity.TipoMovimiento]
	usuarioRepo        repository.UsuarioRepository
}

func NewSeeder(
	db *gorm.DB,
	log *logrus.Logger,
	estadoRepo repository.EstadoRepository,
	rolRepo repository.CatalogoRepository[entity.Rol],
	tipoMovimientoRepo repository.CatalogoRepository[entity.TipoMovimiento],
	usuarioRepo repository.UsuarioRepository,
) *Seeder {
	return &Seeder{
		db:                 db,
		log:                log,
		estadoRepo:         estadoRepo,
		rolRepo:            rolRepo,
		tipoMovimientoRepo: tipoMovimientoRepo,
		usuarioRepo:        usuarioRepo,
	}
}

// Run creates the Estados, Roles, movement types and the admin account in one transaction
func (s *Seeder) Run(ctx context.Context, adminPassword string) error {
	if adminPassword == "" {
		return ErrAdminPasswordRequired
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var activo *entity.Estado
		for i := range estados {
			estado, err := s.estado(tx, estados[i])
			if err != nil {
				return err
			}
			if estado.Abreviatura == entity.EstadoActivo {
				activo = estado
			}
		}

		var admin *entity.Rol
		for _, descripcion := range roles {
			rol, err := findOrCreate(tx, s.rolRepo, descripcion, &entity.Rol{Descripcion: descripcion})
			if err != nil {
				return fmt.Errorf("failed to seed rol %s: %w", descripcion, err)
			}
			if descripcion == entity.RolAdministrador {
				admin = rol
			}
		}

		for _, descripcion := range tiposMovimiento {
			if _, err := findOrCreate(tx, s.tipoMovimientoRepo, descripcion, &entity.TipoMovimiento{Descripcion: descripcion}); err != nil {
				return fmt.Errorf("failed to seed tipo de movimiento %s: %w", descripcion, err)
			}
		}

		return s.admin(tx, adminPassword, admin, activo)
	})
}

func (s *Seeder) estado(tx *gorm.DB, want entity.Estado) (*entity.Estado, error) {
	estado, err := s.estadoRepo.FindByAbreviatura(tx, want.Abreviatura)
	if err != nil {
		return nil, err
	}
	if estado != nil {
		return estado, nil
	}

	if err := s.estadoRepo.Create(tx, &want); err != nil {
		return nil, fmt.Errorf("failed to seed estado %s: %w", want.Abreviatura, err)
	}
	return &want, nil
}

func findOrCreate[T any](tx *gorm.DB, repo repository.CatalogoRepository[T], descripcion string, item *T) (*T, error) {
	found, err := repo.FindByDescripcion(tx, descripcion)
	if err != nil {
		return nil, err
	}
	if found != nil {
		return found, nil
	}
	if err := repo.Create(tx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *Seeder) admin(tx *gorm.DB, adminPassword string, rol *entity.Rol, estado *entity.Estado) error {
	existing, err := s.usuarioRepo.FindByUsername(tx, AdminUsername)
	if err != nil {
		return err
	}
	if existing != nil {
		s.log.Info("Admin user already exists")
		return nil
	}

	hash, err := password.Hash(adminPassword)
	if err != nil {
		return err
	}

	usuario := &entity.Usuario{
		Username:        AdminUsername,
		Password:        hash,
		IsSuperuser:     true,
		IsStaff:         true,
		IsActive:        true,
		Nombres:         "Administrador",
		ApellidoPaterno: "Sistema",
		ApellidoMaterno: "Provale",
		DNI:             "00000000",
		CodRol:          &rol.CodRol,
		CodEstado:       &estado.CodEstado,
	}
	if err := s.usuarioRepo.Create(tx, usuario); err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	s.log.WithField("username", AdminUsername).Info("Admin user created")
	return nil
}
