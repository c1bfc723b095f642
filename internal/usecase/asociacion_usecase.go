package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

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
	ErrAsociacionNotFound     = errors.New("asociacion not found")
	ErrReconocimientoNotFound = errors.New("reconocimiento not found")
	ErrSocioNotFound          = errors.New("socio not found")
	ErrSocioAjeno             = errors.New("socio does not belong to the association of the reconocimiento")
)

type AsociacionUsecase interface {
	GetAll(ctx context.Context, query *dto.AsociacionListQuery) ([]dto.AsociacionResponse, int64, error)
	GetByID(ctx context.Context, id int) (*dto.AsociacionResponse, error)
	Create(ctx context.Context, req *dto.CreateAsociacionRequest) (*dto.AsociacionResponse, error)
	Delete(ctx context.Context, id int) error

	GetReconocimientos(ctx context.Context, asociacionID int) ([]dto.ReconocimientoResponse, error)
	CreateReconocimiento(ctx context.Context, asociacionID int, req *dto.CreateReconocimientoRequest) (*dto.ReconocimientoResponse, error)

	GetDirectivas(ctx context.Context, reconocimientoID int) ([]dto.DirectivaResponse, error)
	CreateDirectiva(ctx context.Context, reconocimientoID int, req *dto.CreateDirectivaRequest) (*dto.DirectivaResponse, error)
}

type asociacionUsecase struct {
	db                 *gorm.DB
	log                *logrus.Logger
	asociacionRepo     repository.AsociacionRepository
	reconocimientoRepo repository.ReconocimientoRepository
	directivaRepo      repository.DirectivaRepository
	socioRepo          repository.SocioRepository
	auditService       service.AuditService
}

func NewAsociacionUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	asociacionRepo repository.AsociacionRepository,
	reconocimientoRepo repository.ReconocimientoRepository,
	directivaRepo repository.DirectivaRepository,
	socioRepo repository.SocioRepository,
	auditService service.AuditService,
) AsociacionUsecase {
	return &asociacionUsecase{
		db:                 db,
		log:                log,
		asociacionRepo:     asociacionRepo,
		reconocimientoRepo: reconocimientoRepo,
		directivaRepo:      directivaRepo,
		socioRepo:          socioRepo,
		auditService:       auditService,
	}
}

func (u *asociacionUsecase) GetAll(ctx context.Context, query *dto.AsociacionListQuery) ([]dto.AsociacionResponse, int64, error) {
	query.Normalize()
	filter := &entity.AsociacionFilter{
		Search:    strings.TrimSpace(query.Search),
		CodEstado: query.CodEstado,
		Limit:     query.Limit,
		Offset:    query.Offset(),
	}

	asociaciones, total, err := u.asociacionRepo.FindAll(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to find asociaciones: %+v", err)
		return nil, 0, err
	}

	return converter.AsociacionesToResponses(asociaciones), total, nil
}

func (u *asociacionUsecase) GetByID(ctx context.Context, id int) (*dto.AsociacionResponse, error) {
	asociacion, err := u.asociacionRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find asociacion: %+v", err)
		return nil, err
	}
	if asociacion == nil {
		return nil, ErrAsociacionNotFound
	}
	return converter.AsociacionToResponse(asociacion), nil
}

func (u *asociacionUsecase) Create(ctx context.Context, req *dto.CreateAsociacionRequest) (*dto.AsociacionResponse, error) {
	db := u.db.WithContext(ctx)

	asociacion := &entity.Asociacion{
		CodigoAsociacion: strings.ToUpper(strings.TrimSpace(req.CodigoAsociacion)),
		NombreAsociacion: req.NombreAsociacion,
		CodSectorZona:    req.CodSectorZona,
		CodTipoLocal:     req.CodTipoLocal,
		Direccion:        strings.TrimSpace(req.Direccion),
		NumeroFinca:      req.NumeroFinca,
		Observaciones:    req.Observaciones,
		CodEstado:        req.CodEstado,
	}

	if err := u.asociacionRepo.Create(db, asociacion); err != nil {
		u.log.Warnf("Failed to create asociacion: %+v", err)
		return nil, classifyWriteError(err)
	}

	return u.GetByID(ctx, asociacion.CodAsociacion)
}

func (u *asociacionUsecase) Delete(ctx context.Context, id int) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	asociacion, err := u.asociacionRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find asociacion: %+v", err)
		return err
	}
	if asociacion == nil {
		return ErrAsociacionNotFound
	}

	if _, err := u.asociacionRepo.Delete(tx, id); err != nil {
		u.log.Warnf("Failed to delete asociacion: %+v", err)
		return classifyDeleteError(err)
	}

	if err := u.auditService.LogDelete(ctx, tx, middleware.ActorID(ctx), entity.AuditActionAsociacionDelete, "asociacion", id, converter.AsociacionToResponse(asociacion)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit transaction: %+v", err)
		return err
	}

	return nil
}

func (u *asociacionUsecase) GetReconocimientos(ctx context.Context, asociacionID int) ([]dto.ReconocimientoResponse, error) {
	db := u.db.WithContext(ctx)

	asociacion, err := u.asociacionRepo.FindByID(db, asociacionID)
	if err != nil {
		u.log.Warnf("Failed to find asociacion: %+v", err)
		return nil, err
	}
	if asociacion == nil {
		return nil, ErrAsociacionNotFound
	}

	reconocimientos, err := u.reconocimientoRepo.FindByAsociacionID(db, asociacionID)
	if err != nil {
		u.log.Warnf("Failed to find reconocimientos: %+v", err)
		return nil, err
	}

	return converter.ReconocimientosToResponses(reconocimientos, time.Now()), nil
}

func (u *asociacionUsecase) CreateReconocimiento(ctx context.Context, asociacionID int, req *dto.CreateReconocimientoRequest) (*dto.ReconocimientoResponse, error) {
	inicio, err := parseDate(req.FechaInicio)
	if err != nil {
		return nil, err
	}
	fin, err := parseDate(req.FechaFin)
	if err != nil {
		return nil, err
	}
	documento, err := parseDate(req.FechaDocumento)
	if err != nil {
		return nil, err
	}
	if inicio == nil || fin == nil {
		return nil, ErrFechaInvalida
	}

	reconocimiento := &entity.Reconocimiento{
		CodAsociacion: asociacionID,
		Documento:     strings.TrimSpace(req.Documento),
		FechaInicio:   *inicio,
		FechaFin:      *fin,
		CodEstado:     req.CodEstado,
	}
	if documento != nil {
		reconocimiento.FechaDocumento = *documento
	}

	if err := reconocimiento.ValidarVigencia(); err != nil {
		return nil, err
	}

	db := u.db.WithContext(ctx)

	asociacion, err := u.asociacionRepo.FindByID(db, asociacionID)
	if err != nil {
		u.log.Warnf("Failed to find asociacion: %+v", err)
		return nil, err
	}
	if asociacion == nil {
		return nil, ErrAsociacionNotFound
	}

	if err := u.reconocimientoRepo.Create(db, reconocimiento); err != nil {
		u.log.Warnf("Failed to create reconocimiento: %+v", err)
		return nil, classifyWriteError(err)
	}

	return converter.ReconocimientoToResponse(reconocimiento, time.Now()), nil
}

func (u *asociacionUsecase) GetDirectivas(ctx context.Context, reconocimientoID int) ([]dto.DirectivaResponse, error) {
	db := u.db.WithContext(ctx)

	reconocimiento, err := u.reconocimientoRepo.FindByID(db, reconocimientoID)
	if err != nil {
		u.log.Warnf("Failed to find reconocimiento: %+v", err)
		return nil, err
	}
	if reconocimiento == nil {
		return nil, ErrReconocimientoNotFound
	}

	directivas, err := u.directivaRepo.FindByReconocimientoID(db, reconocimientoID)
	if err != nil {
		u.log.Warnf("Failed to find directivas: %+v", err)
		return nil, err
	}

	return converter.DirectivasToResponses(directivas), nil
}

// CreateDirectiva assigns a cargo for one recognition period. The socio must be a member
// of the recognized association and holds at most one cargo per period.
func (u *asociacionUsecase) CreateDirectiva(ctx context.Context, reconocimientoID int, req *dto.CreateDirectivaRequest) (*dto.DirectivaResponse, error) {
	db := u.db.WithContext(ctx)

	reconocimiento, err := u.reconocimientoRepo.FindByID(db, reconocimientoID)
	if err != nil {
		u.log.Warnf("Failed to find reconocimiento: %+v", err)
		return nil, err
	}
	if reconocimiento == nil {
		return nil, ErrReconocimientoNotFound
	}

	socio, err := u.socioRepo.FindByID(db, req.CodSocio)
	if err != nil {
		u.log.Warnf("Failed to find socio: %+v", err)
		return nil, err
	}
	if socio == nil {
		return nil, ErrSocioNotFound
	}
	if socio.CodAsociacion != reconocimiento.CodAsociacion {
		return nil, ErrSocioAjeno
	}

	directiva := &entity.Directiva{
		CodReconocimiento: reconocimientoID,
		CodSocio:          req.CodSocio,
		CodCargo:          req.CodCargo,
		CodEstado:         req.CodEstado,
	}
	if err := u.directivaRepo.Create(db, directiva); err != nil {
		u.log.Warnf("Failed to create directiva: %+v", err)
		return nil, classifyWriteError(err)
	}

	directiva.Socio = socio
	return converter.DirectivaToResponse(directiva), nil
}
