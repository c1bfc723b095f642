package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"

	"sistema-provale/internal/converter"
	"sistema-provale/internal/delivery/dto"
	"sistema-provale/internal/delivery/http/middleware"
	"sistema-provale/internal/domain/entity"
	"sistema-provale/internal/domain/repository"
	"sistema-provale/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrCatalogoDesconocido = errors.New("unknown catalog")
	ErrCatalogoNotFound    = errors.New("catalog item not found")
)

// Catalog names as they appear in /catalogos/{tipo}
const (
	CatalogoRoles                 = "roles"
	CatalogoTiposLocal            = "tipos-local"
	CatalogoCargos                = "cargos"
	CatalogoParentescos           = "parentescos"
	CatalogoUnidadesMedida        = "unidades-medida"
	CatalogoTiposMovimiento       = "tipos-movimiento"
	CatalogoZonas                 = "zonas"
	CatalogoSectores              = "sectores"
	CatalogoMotivosInhabilitacion = "motivos-inhabilitacion"
)

// CatalogoRepositories groups the repositories of the description-only lookup tables
type CatalogoRepositories struct {
	Roles                 repository.CatalogoRepository[entity.Rol]
	TiposLocal            repository.CatalogoRepository[entity.TipoLocal]
	Cargos                repository.CatalogoRepository[entity.Cargo]
	Parentescos           repository.CatalogoRepository[entity.Parentesco]
	UnidadesMedida        repository.CatalogoRepository[entity.UnidadMedida]
	TiposMovimiento       repository.CatalogoRepository[entity.TipoMovimiento]
	Zonas                 repository.CatalogoRepository[entity.Zona]
	Sectores              repository.CatalogoRepository[entity.Sector]
	MotivosInhabilitacion repository.CatalogoRepository[entity.MotivoInhabilitacion]
}

type CatalogoUsecase interface {
	Tipos() []string
	GetAll(ctx context.Context, tipo string) ([]dto.CatalogoResponse, error)
	Create(ctx context.Context, tipo string, req *dto.CreateCatalogoRequest) (*dto.CatalogoResponse, error)
	Delete(ctx context.Context, tipo string, id int) error
}

// catalogo erases the entity type of one lookup table
type catalogo interface {
	list(db *gorm.DB) ([]dto.CatalogoResponse, error)
	create(db *gorm.DB, req *dto.CreateCatalogoRequest) (dto.CatalogoResponse, error)
	find(db *gorm.DB, id int) (*dto.CatalogoResponse, error)
	delete(db *gorm.DB, id int) (int64, error)
}

type catalogoTabla[T any] struct {
	repo    repository.CatalogoRepository[T]
	build   func(req *dto.CreateCatalogoRequest) *T
	convert func(item *T) dto.CatalogoResponse
}

func (c *catalogoTabla[T]) list(db *gorm.DB) ([]dto.CatalogoResponse, error) {
	items, err := c.repo.FindAll(db)
	if err != nil {
		return nil, err
	}
	responses := make([]dto.CatalogoResponse, len(items))
	for i := range items {
		responses[i] = c.convert(&items[i])
	}
	return responses, nil
}

func (c *catalogoTabla[T]) create(db *gorm.DB, req *dto.CreateCatalogoRequest) (dto.CatalogoResponse, error) {
	item := c.build(req)
	if err := c.repo.Create(db, item); err != nil {
		return dto.CatalogoResponse{}, err
	}
	return c.convert(item), nil
}

func (c *catalogoTabla[T]) find(db *gorm.DB, id int) (*dto.CatalogoResponse, error) {
	item, err := c.repo.FindByID(db, id)
	if err != nil || item == nil {
		return nil, err
	}
	response := c.convert(item)
	return &response, nil
}

func (c *catalogoTabla[T]) delete(db *gorm.DB, id int) (int64, error) {
	return c.repo.Delete(db, id)
}

func descripcion(req *dto.CreateCatalogoRequest) string {
	return strings.TrimSpace(req.Descripcion)
}

func descripcionPtr(req *dto.CreateCatalogoRequest) *string {
	d := descripcion(req)
	return &d
}

type catalogoUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	catalogos    map[string]catalogo
	auditService service.AuditService
}

func NewCatalogoUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	repos CatalogoRepositories,
	auditService service.AuditService,
) CatalogoUsecase {
	catalogos := map[string]catalogo{
		CatalogoRoles: &catalogoTabla[entity.Rol]{
			repo:    repos.Roles,
			build:   func(req *dto.CreateCatalogoRequest) *entity.Rol { return &entity.Rol{Descripcion: descripcion(req)} },
			convert: converter.RolToResponse,
		},
		CatalogoTiposLocal: &catalogoTabla[entity.TipoLocal]{
			repo:    repos.TiposLocal,
			build:   func(req *dto.CreateCatalogoRequest) *entity.TipoLocal { return &entity.TipoLocal{Descripcion: descripcion(req)} },
			convert: converter.TipoLocalToResponse,
		},
		CatalogoCargos: &catalogoTabla[entity.Cargo]{
			repo:    repos.Cargos,
			build:   func(req *dto.CreateCatalogoRequest) *entity.Cargo { return &entity.Cargo{Descripcion: descripcion(req)} },
			convert: converter.CargoToResponse,
		},
		CatalogoParentescos: &catalogoTabla[entity.Parentesco]{
			repo:    repos.Parentescos,
			build:   func(req *dto.CreateCatalogoRequest) *entity.Parentesco { return &entity.Parentesco{Descripcion: descripcion(req)} },
			convert: converter.ParentescoToResponse,
		},
		CatalogoUnidadesMedida: &catalogoTabla[entity.UnidadMedida]{
			repo:    repos.UnidadesMedida,
			build:   func(req *dto.CreateCatalogoRequest) *entity.UnidadMedida { return &entity.UnidadMedida{Descripcion: descripcion(req)} },
			convert: converter.UnidadMedidaToResponse,
		},
		CatalogoTiposMovimiento: &catalogoTabla[entity.TipoMovimiento]{
			repo: repos.TiposMovimiento,
			// ENTRADA is matched exactly when computing stock
			build: func(req *dto.CreateCatalogoRequest) *entity.TipoMovimiento {
				return &entity.TipoMovimiento{Descripcion: strings.ToUpper(descripcion(req))}
			},
			convert: converter.TipoMovimientoToResponse,
		},
		CatalogoZonas: &catalogoTabla[entity.Zona]{
			repo:    repos.Zonas,
			build:   func(req *dto.CreateCatalogoRequest) *entity.Zona { return &entity.Zona{Descripcion: descripcionPtr(req)} },
			convert: converter.ZonaToResponse,
		},
		CatalogoSectores: &catalogoTabla[entity.Sector]{
			repo:    repos.Sectores,
			build:   func(req *dto.CreateCatalogoRequest) *entity.Sector { return &entity.Sector{Descripcion: descripcionPtr(req)} },
			convert: converter.SectorToResponse,
		},
		CatalogoMotivosInhabilitacion: &catalogoTabla[entity.MotivoInhabilitacion]{
			repo: repos.MotivosInhabilitacion,
			build: func(req *dto.CreateCatalogoRequest) *entity.MotivoInhabilitacion {
				return &entity.MotivoInhabilitacion{Descripcion: descripcion(req), Observacion: req.Observacion}
			},
			convert: converter.MotivoInhabilitacionToResponse,
		},
	}

	return &catalogoUsecase{
		db:           db,
		log:          log,
		catalogos:    catalogos,
		auditService: auditService,
	}
}

func (u *catalogoUsecase) Tipos() []string {
	tipos := make([]string, 0, len(u.catalogos))
	for tipo := range u.catalogos {
		tipos = append(tipos, tipo)
	}
	sort.Strings(tipos)
	return tipos
}

func (u *catalogoUsecase) lookup(tipo string) (catalogo, error) {
	c, ok := u.catalogos[strings.ToLower(tipo)]
	if !ok {
		return nil, ErrCatalogoDesconocido
	}
	return c, nil
}

func (u *catalogoUsecase) GetAll(ctx context.Context, tipo string) ([]dto.CatalogoResponse, error) {
	c, err := u.lookup(tipo)
	if err != nil {
		return nil, err
	}

	items, err := c.list(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list catalog %s: %+v", tipo, err)
		return nil, err
	}
	return items, nil
}

func (u *catalogoUsecase) Create(ctx context.Context, tipo string, req *dto.CreateCatalogoRequest) (*dto.CatalogoResponse, error) {
	c, err := u.lookup(tipo)
	if err != nil {
		return nil, err
	}

	item, err := c.create(u.db.WithContext(ctx), req)
	if err != nil {
		u.log.Warnf("Failed to create %s item: %+v", tipo, err)
		return nil, classifyWriteError(err)
	}
	return &item, nil
}

func (u *catalogoUsecase) Delete(ctx context.Context, tipo string, id int) error {
	c, err := u.lookup(tipo)
	if err != nil {
		return err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	item, err := c.find(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find %s item: %+v", tipo, err)
		return err
	}
	if item == nil {
		return ErrCatalogoNotFound
	}

	if _, err := c.delete(tx, id); err != nil {
		u.log.Warnf("Failed to delete %s item: %+v", tipo, err)
		return classifyDeleteError(err)
	}

	if err := u.auditService.LogDelete(ctx, tx, middleware.ActorID(ctx), entity.AuditActionCatalogoDelete, tipo, id, item); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit transaction: %+v", err)
		return err
	}

	return nil
}
