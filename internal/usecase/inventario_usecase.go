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
	ErrProductoNotFound       = errors.New("producto not found")
	ErrTipoMovimientoNotFound = errors.New("tipo de movimiento not found")
)

type InventarioUsecase interface {
	GetProductos(ctx context.Context) ([]dto.ProductoResponse, error)
	// GetProducto includes stock_real, derived from the product's movements
	GetProducto(ctx context.Context, id int) (*dto.ProductoResponse, error)
	CreateProducto(ctx context.Context, req *dto.CreateProductoRequest) (*dto.ProductoResponse, error)

	GetMovimientosProducto(ctx context.Context, productoID int) ([]dto.MovimientoResponse, error)
	GetMovimientos(ctx context.Context, query *dto.MovimientoListQuery) ([]dto.MovimientoResponse, int64, error)
	// CreateMovimiento ignores any caller total: it is always cantidad * precio_unitario
	CreateMovimiento(ctx context.Context, req *dto.CreateMovimientoRequest) (*dto.MovimientoResponse, error)
}

type inventarioUsecase struct {
	db                 *gorm.DB
	log                *logrus.Logger
	productoRepo       repository.ProductoRepository
	tipoMovimientoRepo repository.TipoMovimientoRepository
	movimientoRepo     repository.MovimientoRepository
	auditService       service.AuditService
}

func NewInventarioUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	productoRepo repository.ProductoRepository,
	tipoMovimientoRepo repository.TipoMovimientoRepository,
	movimientoRepo repository.MovimientoRepository,
	auditService service.AuditService,
) InventarioUsecase {
	return &inventarioUsecase{
		db:                 db,
		log:                log,
		productoRepo:       productoRepo,
		tipoMovimientoRepo: tipoMovimientoRepo,
		movimientoRepo:     movimientoRepo,
		auditService:       auditService,
	}
}

func (u *inventarioUsecase) GetProductos(ctx context.Context) ([]dto.ProductoResponse, error) {
	db := u.db.WithContext(ctx)

	productos, err := u.productoRepo.FindAll(db)
	if err != nil {
		u.log.Warnf("Failed to find productos: %+v", err)
		return nil, err
	}

	ids := make([]int, len(productos))
	for i := range productos {
		ids[i] = productos[i].CodProducto
	}

	stocks, err := u.productoRepo.StocksReales(db, ids)
	if err != nil {
		u.log.Warnf("Failed to aggregate stock: %+v", err)
		return nil, err
	}

	return converter.ProductosToResponses(productos, stocks), nil
}

func (u *inventarioUsecase) GetProducto(ctx context.Context, id int) (*dto.ProductoResponse, error) {
	db := u.db.WithContext(ctx)

	producto, err := u.productoRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find producto: %+v", err)
		return nil, err
	}
	if producto == nil {
		return nil, ErrProductoNotFound
	}

	stock, err := u.productoRepo.StockReal(db, id)
	if err != nil {
		u.log.Warnf("Failed to aggregate stock of producto %d: %+v", id, err)
		return nil, err
	}

	return converter.ProductoToResponse(producto, stock), nil
}

func (u *inventarioUsecase) CreateProducto(ctx context.Context, req *dto.CreateProductoRequest) (*dto.ProductoResponse, error) {
	producto := &entity.Producto{
		CodUnidadMedida: req.CodUnidadMedida,
		Descripcion:     strings.TrimSpace(req.Descripcion),
		Abreviatura:     req.Abreviatura,
		Stock:           req.Stock,
		PrecioUnitario:  req.PrecioUnitario,
		CodEstado:       req.CodEstado,
	}

	if err := u.productoRepo.Create(u.db.WithContext(ctx), producto); err != nil {
		u.log.Warnf("Failed to create producto: %+v", err)
		return nil, classifyWriteError(err)
	}

	return u.GetProducto(ctx, producto.CodProducto)
}

func (u *inventarioUsecase) GetMovimientosProducto(ctx context.Context, productoID int) ([]dto.MovimientoResponse, error) {
	db := u.db.WithContext(ctx)

	producto, err := u.productoRepo.FindByID(db, productoID)
	if err != nil {
		u.log.Warnf("Failed to find producto: %+v", err)
		return nil, err
	}
	if producto == nil {
		return nil, ErrProductoNotFound
	}

	movimientos, err := u.movimientoRepo.FindByProductoID(db, productoID)
	if err != nil {
		u.log.Warnf("Failed to find movimientos: %+v", err)
		return nil, err
	}

	return converter.MovimientosToResponses(movimientos), nil
}

func (u *inventarioUsecase) GetMovimientos(ctx context.Context, query *dto.MovimientoListQuery) ([]dto.MovimientoResponse, int64, error) {
	desde, err := parseDate(query.Desde)
	if err != nil {
		return nil, 0, err
	}
	hasta, err := parseDate(query.Hasta)
	if err != nil {
		return nil, 0, err
	}
	if hasta != nil {
		// Inclusive upper bound: everything before the next day
		fin := hasta.AddDate(0, 0, 1).Add(-time.Nanosecond)
		hasta = &fin
	}

	query.Normalize()
	filter := &entity.MovimientoFilter{
		CodProducto:       query.CodProducto,
		CodTipoMovimiento: query.CodTipoMovimiento,
		Desde:             desde,
		Hasta:             hasta,
		Limit:             query.Limit,
		Offset:            query.Offset(),
	}

	movimientos, total, err := u.movimientoRepo.FindAll(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to find movimientos: %+v", err)
		return nil, 0, err
	}

	return converter.MovimientosToResponses(movimientos), total, nil
}

func (u *inventarioUsecase) CreateMovimiento(ctx context.Context, req *dto.CreateMovimientoRequest) (*dto.MovimientoResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	producto, err := u.productoRepo.FindByID(tx, req.CodProducto)
	if err != nil {
		u.log.Warnf("Failed to find producto: %+v", err)
		return nil, err
	}
	if producto == nil {
		return nil, ErrProductoNotFound
	}

	tipo, err := u.tipoMovimientoRepo.FindByID(tx, req.CodTipoMovimiento)
	if err != nil {
		u.log.Warnf("Failed to find tipo de movimiento: %+v", err)
		return nil, err
	}
	if tipo == nil {
		return nil, ErrTipoMovimientoNotFound
	}

	movimiento := &entity.Movimiento{
		CodProducto:       req.CodProducto,
		CodTipoMovimiento: req.CodTipoMovimiento,
		Cantidad:          req.Cantidad,
		PrecioUnitario:    req.PrecioUnitario,
		TipoMovimiento:    tipo,
	}

	if err := u.movimientoRepo.Create(tx, movimiento); err != nil {
		u.log.Warnf("Failed to create movimiento: %+v", err)
		return nil, classifyWriteError(err)
	}

	movimiento.Producto = producto
	response := converter.MovimientoToResponse(movimiento)

	if err := u.auditService.LogCreate(ctx, tx, middleware.ActorID(ctx), entity.AuditActionMovimientoCreate, "movimiento", movimiento.CodMovimiento, response); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit transaction: %+v", err)
		return nil, err
	}

	u.log.Infof("Movimiento %d recorded: %s %d of producto %d", movimiento.CodMovimiento, tipo.Descripcion, movimiento.Cantidad, movimiento.CodProducto)
	return response, nil
}
