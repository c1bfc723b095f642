package usecase

import (
	"context"
	"errors"
	"strings"

	"sistema-provale/internal/converter"
	"sistema-provale/internal/delivery/dto"
	"sistema-provale/internal/domain/entity"
	"sistema-provale/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrTipoBeneficioNotFound = errors.New("tipo de beneficio not found")
	ErrRangoEdadInvalido     = errors.New("edad_maxima must not be lower than edad_minima")
)

type TipoBeneficioUsecase interface {
	GetAll(ctx context.Context) ([]dto.TipoBeneficioResponse, error)
	Create(ctx context.Context, req *dto.CreateTipoBeneficioRequest) (*dto.TipoBeneficioResponse, error)
}

type tipoBeneficioUsecase struct {
	db       *gorm.DB
	log      *logrus.Logger
	tipoRepo repository.TipoBeneficioRepository
}

func NewTipoBeneficioUsecase(db *gorm.DB, log *logrus.Logger, tipoRepo repository.TipoBeneficioRepository) TipoBeneficioUsecase {
	return &tipoBeneficioUsecase{db: db, log: log, tipoRepo: tipoRepo}
}

func (u *tipoBeneficioUsecase) GetAll(ctx context.Context) ([]dto.TipoBeneficioResponse, error) {
	tipos, err := u.tipoRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find tipos de beneficio: %+v", err)
		return nil, err
	}
	return converter.TiposBeneficioToResponses(tipos), nil
}

func (u *tipoBeneficioUsecase) Create(ctx context.Context, req *dto.CreateTipoBeneficioRequest) (*dto.TipoBeneficioResponse, error) {
	if req.EdadMinima != nil && req.EdadMaxima != nil && *req.EdadMaxima < *req.EdadMinima {
		return nil, ErrRangoEdadInvalido
	}

	tipo := &entity.TipoBeneficio{
		Descripcion:   strings.TrimSpace(req.Descripcion),
		EdadMinima:    req.EdadMinima,
		EdadMaxima:    req.EdadMaxima,
		Prioridad:     req.Prioridad,
		Observaciones: req.Observaciones,
	}

	if err := u.tipoRepo.Create(u.db.WithContext(ctx), tipo); err != nil {
		u.log.Warnf("Failed to create tipo de beneficio: %+v", err)
		return nil, classifyWriteError(err)
	}

	return converter.TipoBeneficioToResponse(tipo), nil
}
