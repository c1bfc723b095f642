package usecase

import (
	"context"
	"errors"

	"sistema-provale/internal/converter"
	"sistema-provale/internal/delivery/dto"
	"sistema-provale/internal/delivery/http/middleware"
	"sistema-provale/internal/domain/entity"
	"sistema-provale/internal/domain/repository"
	"sistema-provale/internal/service"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrPecosaNotFound   = errors.New("pecosa not found")
	ErrPresidentaAjena  = errors.New("presiding member does not belong to the association of the pecosa")
	ErrPrecioNoDefinido = errors.New("line has no unit price and the product has none to default to")
)

type PecosaUsecase interface {
	GetAll(ctx context.Context, query *dto.PecosaListQuery) ([]dto.PecosaResponse, int64, error)
	GetByID(ctx context.Context, id int) (*dto.PecosaResponse, error)
	// Create stores the voucher and its lines in one transaction
	Create(ctx context.Context, req *dto.CreatePecosaRequest) (*dto.PecosaResponse, error)
	AddDetalle(ctx context.Context, pecosaID int, req *dto.CreateDetallePecosaRequest) (*dto.PecosaResponse, error)
	// Delete removes the voucher; its lines go with it
	Delete(ctx context.Context, id int) error
}

type pecosaUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	pecosaRepo   repository.PecosaRepository
	detalleRepo  repository.DetallePecosaRepository
	socioRepo    repository.SocioRepository
	productoRepo repository.ProductoRepository
	auditService service.AuditService
}

func NewPecosaUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	pecosaRepo repository.PecosaRepository,
	detalleRepo repository.DetallePecosaRepository,
	socioRepo repository.SocioRepository,
	productoRepo repository.ProductoRepository,
	auditService service.AuditService,
) PecosaUsecase {
	return &pecosaUsecase{
		db:           db,
		log:          log,
		pecosaRepo:   pecosaRepo,
		detalleRepo:  detalleRepo,
		socioRepo:    socioRepo,
		productoRepo: productoRepo,
		auditService: auditService,
	}
}

func (u *pecosaUsecase) GetAll(ctx context.Context, query *dto.PecosaListQuery) ([]dto.PecosaResponse, int64, error) {
	db := u.db.WithContext(ctx)

	query.Normalize()
	filter := &entity.PecosaFilter{
		CodAsociacion: query.CodAsociacion,
		CodEstado:     query.CodEstado,
		Numero:        query.Numero,
		Limit:         query.Limit,
		Offset:        query.Offset(),
	}

	pecosas, total, err := u.pecosaRepo.FindAll(db, filter)
	if err != nil {
		u.log.Warnf("Failed to find pecosas: %+v", err)
		return nil, 0, err
	}

	ids := make([]int, len(pecosas))
	for i := range pecosas {
		ids[i] = pecosas[i].CodPecosa
	}

	totales, err := u.pecosaRepo.Totales(db, ids)
	if err != nil {
		u.log.Warnf("Failed to aggregate pecosa totals: %+v", err)
		return nil, 0, err
	}

	return converter.PecosasToResponses(pecosas, totales), total, nil
}

func (u *pecosaUsecase) GetByID(ctx context.Context, id int) (*dto.PecosaResponse, error) {
	return u.conDetalles(u.db.WithContext(ctx), id)
}

func (u *pecosaUsecase) conDetalles(db *gorm.DB, id int) (*dto.PecosaResponse, error) {
	pecosa, err := u.pecosaRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find pecosa: %+v", err)
		return nil, err
	}
	if pecosa == nil {
		return nil, ErrPecosaNotFound
	}

	detalles, err := u.detalleRepo.FindByPecosaID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find detalles of pecosa %d: %+v", id, err)
		return nil, err
	}

	return converter.PecosaToResponse(pecosa, detalles), nil
}

func (u *pecosaUsecase) Create(ctx context.Context, req *dto.CreatePecosaRequest) (*dto.PecosaResponse, error) {
	fechaReparto, err := parseDate(req.FechaReparto)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	socio, err := u.socioRepo.FindByID(tx, req.CodSocioPresidenta)
	if err != nil {
		u.log.Warnf("Failed to find socio: %+v", err)
		return nil, err
	}
	if socio == nil {
		return nil, ErrSocioNotFound
	}
	if socio.CodAsociacion != req.CodAsociacion {
		return nil, ErrPresidentaAjena
	}

	pecosa := &entity.Pecosa{
		CodAsociacion:      req.CodAsociacion,
		NumeroPecosa:       req.NumeroPecosa,
		CodSocioPresidenta: req.CodSocioPresidenta,
		FechaReparto:       fechaReparto,
		Observacion:        req.Observacion,
		CodEstado:          req.CodEstado,
	}

	if err := u.pecosaRepo.Create(tx, pecosa); err != nil {
		u.log.Warnf("Failed to create pecosa: %+v", err)
		return nil, classifyWriteError(err)
	}

	for i := range req.Detalles {
		if err := u.crearDetalle(tx, pecosa.CodPecosa, &req.Detalles[i]); err != nil {
			return nil, err
		}
	}

	response, err := u.conDetalles(tx, pecosa.CodPecosa)
	if err != nil {
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, middleware.ActorID(ctx), entity.AuditActionPecosaCreate, "pecosa", pecosa.CodPecosa, response); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit transaction: %+v", err)
		return nil, err
	}

	u.log.Infof("Pecosa %d created for asociacion %d with %d lines, total %s", pecosa.CodPecosa, pecosa.CodAsociacion, len(req.Detalles), response.Total.StringFixed(2))
	return response, nil
}

func (u *pecosaUsecase) AddDetalle(ctx context.Context, pecosaID int, req *dto.CreateDetallePecosaRequest) (*dto.PecosaResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	pecosa, err := u.pecosaRepo.FindByID(tx, pecosaID)
	if err != nil {
		u.log.Warnf("Failed to find pecosa: %+v", err)
		return nil, err
	}
	if pecosa == nil {
		return nil, ErrPecosaNotFound
	}

	if err := u.crearDetalle(tx, pecosaID, req); err != nil {
		return nil, err
	}

	response, err := u.conDetalles(tx, pecosaID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit transaction: %+v", err)
		return nil, err
	}

	return response, nil
}

// crearDetalle fills a missing unit price from the product's current price
func (u *pecosaUsecase) crearDetalle(tx *gorm.DB, pecosaID int, req *dto.CreateDetallePecosaRequest) error {
	desde, err := parseDate(req.FechaDesde)
	if err != nil {
		return err
	}
	hasta, err := parseDate(req.FechaHasta)
	if err != nil {
		return err
	}

	detalle := &entity.DetallePecosa{
		CodProducto: req.CodProducto,
		CodPecosa:   pecosaID,
		Prioridad:   req.Prioridad,
		FechaDesde:  desde,
		FechaHasta:  hasta,
		Cantidad:    req.Cantidad,
	}
	if err := detalle.ValidarVigencia(); err != nil {
		return err
	}

	producto, err := u.productoRepo.FindByID(tx, req.CodProducto)
	if err != nil {
		u.log.Warnf("Failed to find producto: %+v", err)
		return err
	}
	if producto == nil {
		return ErrProductoNotFound
	}

	switch {
	case req.PrecioUnitario.Valid:
		detalle.PrecioUnitario = req.PrecioUnitario.Decimal
	case producto.PrecioUnitario.Valid:
		detalle.PrecioUnitario = producto.PrecioUnitario.Decimal
	default:
		return ErrPrecioNoDefinido
	}
	if detalle.PrecioUnitario.LessThan(decimal.Zero) {
		return ErrPrecioNoDefinido
	}

	if err := u.detalleRepo.Create(tx, detalle); err != nil {
		u.log.Warnf("Failed to create detalle pecosa: %+v", err)
		return classifyWriteError(err)
	}

	return nil
}

func (u *pecosaUsecase) Delete(ctx context.Context, id int) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	pecosa, err := u.pecosaRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find pecosa: %+v", err)
		return err
	}
	if pecosa == nil {
		return ErrPecosaNotFound
	}

	if _, err := u.pecosaRepo.Delete(tx, id); err != nil {
		u.log.Warnf("Failed to delete pecosa: %+v", err)
		return classifyDeleteError(err)
	}

	if err := u.auditService.LogDelete(ctx, tx, middleware.ActorID(ctx), entity.AuditActionPecosaDelete, "pecosa", id, converter.PecosaToResponse(pecosa, nil)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit transaction: %+v", err)
		return err
	}

	return nil
}
