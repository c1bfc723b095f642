package usecase

import (
	"context"
	"errors"
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
	ErrEstadoNotFound = errors.New("estado not found")
)

type EstadoUsecase interface {
	GetAll(ctx context.Context) ([]dto.EstadoResponse, error)
	Create(ctx context.Context, req *dto.CreateEstadoRequest) (*dto.EstadoResponse, error)
	Delete(ctx context.Context, id int) error
}

type estadoUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	estadoRepo   repository.EstadoRepository
	auditService service.AuditService
}

func NewEstadoUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	estadoRepo repository.EstadoRepository,
	auditService service.AuditService,
) EstadoUsecase {
	return &estadoUsecase{
		db:           db,
		log:          log,
		estadoRepo:   estadoRepo,
		auditService: auditService,
	}
}

func (u *estadoUsecase) GetAll(ctx context.Context) ([]dto.EstadoResponse, error) {
	estados, err := u.estadoRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find estados: %+v", err)
		return nil, err
	}
	return converter.EstadosToResponses(estados), nil
}

func (u *estadoUsecase) Create(ctx context.Context, req *dto.CreateEstadoRequest) (*dto.EstadoResponse, error) {
	estado := &entity.Estado{
		Abreviatura: strings.ToUpper(strings.TrimSpace(req.Abreviatura)),
		Descripcion: strings.TrimSpace(req.Descripcion),
	}

	if err := u.estadoRepo.Create(u.db.WithContext(ctx), estado); err != nil {
		u.log.Warnf("Failed to create estado: %+v", err)
		return nil, classifyWriteError(err)
	}

	return converter.EstadoToResponse(estado), nil
}

func (u *estadoUsecase) Delete(ctx context.Context, id int) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	estado, err := u.estadoRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find estado: %+v", err)
		return err
	}
	if estado == nil {
		return ErrEstadoNotFound
	}

	if _, err := u.estadoRepo.Delete(tx, id); err != nil {
		u.log.Warnf("Failed to delete estado: %+v", err)
		return classifyDeleteError(err)
	}

	// Audit failures never block the delete
	if err := u.auditService.LogDelete(ctx, tx, middleware.ActorID(ctx), entity.AuditActionEstadoDelete, "estado", id, converter.EstadoToResponse(estado)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit transaction: %+v", err)
		return err
	}

	return nil
}
