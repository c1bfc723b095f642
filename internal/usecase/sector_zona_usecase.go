package usecase

import (
	"context"
	"errors"

	"sistema-provale/internal/converter"
	"sistema-provale/internal/delivery/dto"
	"sistema-provale/internal/domain/entity"
	"sistema-provale/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrSectorZonaNotFound = errors.New("sector-zona not found")
)

type SectorZonaUsecase interface {
	GetAll(ctx context.Context) ([]dto.SectorZonaResponse, error)
	Create(ctx context.Context, req *dto.CreateSectorZonaRequest) (*dto.SectorZonaResponse, error)
}

type sectorZonaUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	sectorZonaRepo repository.SectorZonaRepository
}

func NewSectorZonaUsecase(db *gorm.DB, log *logrus.Logger, sectorZonaRepo repository.SectorZonaRepository) SectorZonaUsecase {
	return &sectorZonaUsecase{db: db, log: log, sectorZonaRepo: sectorZonaRepo}
}

func (u *sectorZonaUsecase) GetAll(ctx context.Context) ([]dto.SectorZonaResponse, error) {
	items, err := u.sectorZonaRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find sectores-zona: %+v", err)
		return nil, err
	}
	return converter.SectoresZonaToResponses(items), nil
}

// Create rejects a (zona, sector) pair that already exists with ErrDuplicado
func (u *sectorZonaUsecase) Create(ctx context.Context, req *dto.CreateSectorZonaRequest) (*dto.SectorZonaResponse, error) {
	db := u.db.WithContext(ctx)

	sz := &entity.SectorZona{CodZona: req.CodZona, CodSector: req.CodSector}
	if err := u.sectorZonaRepo.Create(db, sz); err != nil {
		u.log.Warnf("Failed to create sector-zona: %+v", err)
		return nil, classifyWriteError(err)
	}

	created, err := u.sectorZonaRepo.FindByID(db, sz.CodSectorZona)
	if err != nil {
		u.log.Warnf("Failed to reload sector-zona: %+v", err)
		return nil, err
	}
	if created == nil {
		return nil, ErrSectorZonaNotFound
	}

	return converter.SectorZonaToResponse(created), nil
}
