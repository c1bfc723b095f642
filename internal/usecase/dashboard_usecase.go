package usecase

import (
	"context"
	"time"

	"sistema-provale/internal/converter"
	"sistema-provale/internal/delivery/dto"
	"sistema-provale/internal/delivery/http/middleware"
	"sistema-provale/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type DashboardUsecase interface {
	// Summary reads the current user from ctx and counts the main registers concurrently
	Summary(ctx context.Context) (*dto.DashboardResponse, error)
}

type dashboardUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	defaultRole      string
	beneficiarioRepo repository.BeneficiarioRepository
	socioRepo        repository.SocioRepository
	pecosaRepo       repository.PecosaRepository
	productoRepo     repository.ProductoRepository
	asociacionRepo   repository.AsociacionRepository
}

func NewDashboardUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	defaultRole string,
	beneficiarioRepo repository.BeneficiarioRepository,
	socioRepo repository.SocioRepository,
	pecosaRepo repository.PecosaRepository,
	productoRepo repository.ProductoRepository,
	asociacionRepo repository.AsociacionRepository,
) DashboardUsecase {
	return &dashboardUsecase{
		db:               db,
		log:              log,
		defaultRole:      defaultRole,
		beneficiarioRepo: beneficiarioRepo,
		socioRepo:        socioRepo,
		pecosaRepo:       pecosaRepo,
		productoRepo:     productoRepo,
		asociacionRepo:   asociacionRepo,
	}
}

func (u *dashboardUsecase) Summary(ctx context.Context) (*dto.DashboardResponse, error) {
	usuario, ok := middleware.GetCurrentUserFromContext(ctx)
	if !ok {
		return nil, ErrUserNotFound
	}

	var totales dto.DashboardTotales
	g, gctx := errgroup.WithContext(ctx)

	count := func(dst *int64, fn func(db *gorm.DB) (int64, error)) {
		g.Go(func() error {
			n, err := fn(u.db.WithContext(gctx))
			if err != nil {
				return err
			}
			*dst = n
			return nil
		})
	}

	count(&totales.Beneficiarios, u.beneficiarioRepo.Count)
	count(&totales.SociosActivos, func(db *gorm.DB) (int64, error) {
		return u.socioRepo.CountVigentes(db, time.Now())
	})
	count(&totales.Pecosas, u.pecosaRepo.Count)
	count(&totales.Productos, u.productoRepo.Count)
	count(&totales.Asociaciones, u.asociacionRepo.Count)

	if err := g.Wait(); err != nil {
		u.log.Warnf("Failed to compute dashboard totals: %+v", err)
		return nil, err
	}

	return &dto.DashboardResponse{
		Usuario: *converter.UsuarioToResponse(usuario, u.defaultRole),
		Totales: totales,
	}, nil
}
