package usecase

import (
	"context"
	"errors"
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
	ErrBeneficiarioNotFound  = errors.New("beneficiario not found")
	ErrHistoricoNotFound     = errors.New("historico de beneficiario not found")
	ErrEdadNoAdmitida        = errors.New("beneficiary age is outside the range of the benefit type")
	ErrBeneficioNoObstetrico = errors.New("benefit type does not track obstetric data")
	ErrPeriodoAbierto        = errors.New("beneficiario already has an open benefit period")
)

type BeneficiarioUsecase interface {
	GetAll(ctx context.Context, socioID *int) ([]dto.BeneficiarioResponse, error)
	Create(ctx context.Context, req *dto.CreateBeneficiarioRequest) (*dto.BeneficiarioResponse, error)

	GetHistoricos(ctx context.Context, beneficiarioID int) ([]dto.HistoricoResponse, error)
	CreateHistorico(ctx context.Context, beneficiarioID int, req *dto.CreateHistoricoRequest) (*dto.HistoricoResponse, error)
	CerrarHistorico(ctx context.Context, historicoID int, req *dto.CerrarHistoricoRequest) (*dto.HistoricoResponse, error)
	// DeleteHistorico also removes the obstetric data of the period
	DeleteHistorico(ctx context.Context, historicoID int) error
	GuardarDatosObstetricos(ctx context.Context, historicoID int, req *dto.DatosObstetricosRequest) (*dto.HistoricoResponse, error)
}

type beneficiarioUsecase struct {
	db                *gorm.DB
	log               *logrus.Logger
	beneficiarioRepo  repository.BeneficiarioRepository
	historicoRepo     repository.HistoricoBeneficiarioRepository
	datosRepo         repository.DatosObstetricosRepository
	tipoBeneficioRepo repository.TipoBeneficioRepository
	auditService      service.AuditService
}

func NewBeneficiarioUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	beneficiarioRepo repository.BeneficiarioRepository,
	historicoRepo repository.HistoricoBeneficiarioRepository,
	datosRepo repository.DatosObstetricosRepository,
	tipoBeneficioRepo repository.TipoBeneficioRepository,
	auditService service.AuditService,
) BeneficiarioUsecase {
	return &beneficiarioUsecase{
		db:                db,
		log:               log,
		beneficiarioRepo:  beneficiarioRepo,
		historicoRepo:     historicoRepo,
		datosRepo:         datosRepo,
		tipoBeneficioRepo: tipoBeneficioRepo,
		auditService:      auditService,
	}
}

func (u *beneficiarioUsecase) GetAll(ctx context.Context, socioID *int) ([]dto.BeneficiarioResponse, error) {
	beneficiarios, err := u.beneficiarioRepo.FindAll(u.db.WithContext(ctx), socioID)
	if err != nil {
		u.log.Warnf("Failed to find beneficiarios: %+v", err)
		return nil, err
	}
	return converter.BeneficiariosToResponses(beneficiarios), nil
}

func (u *beneficiarioUsecase) Create(ctx context.Context, req *dto.CreateBeneficiarioRequest) (*dto.BeneficiarioResponse, error) {
	db := u.db.WithContext(ctx)

	beneficiario := &entity.Beneficiario{
		CodPersona:    req.CodPersona,
		CodSocio:      req.CodSocio,
		CodParentesco: req.CodParentesco,
	}
	if err := u.beneficiarioRepo.Create(db, beneficiario); err != nil {
		u.log.Warnf("Failed to create beneficiario: %+v", err)
		return nil, classifyWriteError(err)
	}

	created, err := u.beneficiarioRepo.FindByID(db, beneficiario.CodBeneficiario)
	if err != nil {
		u.log.Warnf("Failed to reload beneficiario: %+v", err)
		return nil, err
	}
	if created == nil {
		return nil, ErrBeneficiarioNotFound
	}

	return converter.BeneficiarioToResponse(created), nil
}

func (u *beneficiarioUsecase) GetHistoricos(ctx context.Context, beneficiarioID int) ([]dto.HistoricoResponse, error) {
	db := u.db.WithContext(ctx)

	beneficiario, err := u.beneficiarioRepo.FindByID(db, beneficiarioID)
	if err != nil {
		u.log.Warnf("Failed to find beneficiario: %+v", err)
		return nil, err
	}
	if beneficiario == nil {
		return nil, ErrBeneficiarioNotFound
	}

	historicos, err := u.historicoRepo.FindByBeneficiarioID(db, beneficiarioID)
	if err != nil {
		u.log.Warnf("Failed to find historicos: %+v", err)
		return nil, err
	}

	return converter.HistoricosToResponses(historicos), nil
}

// CreateHistorico opens a benefit period. The beneficiary's age in years at the start
// date must fall within the benefit type's bounds, and any previous period must be closed.
func (u *beneficiarioUsecase) CreateHistorico(ctx context.Context, beneficiarioID int, req *dto.CreateHistoricoRequest) (*dto.HistoricoResponse, error) {
	inicio, err := parseDateOr(req.FechaInicio, time.Now())
	if err != nil {
		return nil, err
	}

	db := u.db.WithContext(ctx)

	beneficiario, err := u.beneficiarioRepo.FindByID(db, beneficiarioID)
	if err != nil {
		u.log.Warnf("Failed to find beneficiario: %+v", err)
		return nil, err
	}
	if beneficiario == nil {
		return nil, ErrBeneficiarioNotFound
	}

	tipo, err := u.tipoBeneficioRepo.FindByID(db, req.CodTipoBeneficio)
	if err != nil {
		u.log.Warnf("Failed to find tipo de beneficio: %+v", err)
		return nil, err
	}
	if tipo == nil {
		return nil, ErrTipoBeneficioNotFound
	}

	if beneficiario.Persona != nil {
		edad, err := beneficiario.Persona.Edad(inicio)
		if err != nil {
			return nil, err
		}
		if !tipo.AdmiteEdad(edad.Anios) {
			return nil, ErrEdadNoAdmitida
		}
	}

	previos, err := u.historicoRepo.FindByBeneficiarioID(db, beneficiarioID)
	if err != nil {
		u.log.Warnf("Failed to find historicos: %+v", err)
		return nil, err
	}
	for i := range previos {
		if previos[i].Abierto() {
			return nil, ErrPeriodoAbierto
		}
	}

	historico := &entity.HistoricoBeneficiario{
		CodTipoBeneficio: req.CodTipoBeneficio,
		CodBeneficiario:  beneficiarioID,
		Peso:             req.Peso,
		Talla:            req.Talla,
		Hmg:              req.Hmg,
		FechaInicio:      inicio,
		CodEstado:        req.CodEstado,
	}
	if err := u.historicoRepo.Create(db, historico); err != nil {
		u.log.Warnf("Failed to create historico: %+v", err)
		return nil, classifyWriteError(err)
	}

	historico.TipoBeneficio = tipo
	return converter.HistoricoToResponse(historico, nil), nil
}

func (u *beneficiarioUsecase) CerrarHistorico(ctx context.Context, historicoID int, req *dto.CerrarHistoricoRequest) (*dto.HistoricoResponse, error) {
	fin, err := parseDate(req.FechaTermino)
	if err != nil {
		return nil, err
	}
	if fin == nil {
		return nil, ErrFechaInvalida
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	historico, err := u.historicoRepo.FindByID(tx, historicoID)
	if err != nil {
		u.log.Warnf("Failed to find historico: %+v", err)
		return nil, err
	}
	if historico == nil {
		return nil, ErrHistoricoNotFound
	}

	anterior := converter.HistoricoToResponse(historico, nil)
	if err := historico.Cerrar(*fin, req.CodMotivoInhabilitacion); err != nil {
		return nil, err
	}
	// Let the motivo relation reload instead of saving a stale one
	historico.MotivoInhabilitacion = nil

	if err := u.historicoRepo.Update(tx, historico); err != nil {
		u.log.Warnf("Failed to close historico: %+v", err)
		return nil, classifyWriteError(err)
	}

	if err := u.auditService.LogUpdate(ctx, tx, middleware.ActorID(ctx), entity.AuditActionHistoricoClose, "historico_beneficiario", historicoID, anterior, converter.HistoricoToResponse(historico, nil)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit transaction: %+v", err)
		return nil, err
	}

	u.log.Infof("Historico %d closed at %s", historicoID, fin.Format(dto.DateLayout))
	return u.historicoConDatos(ctx, historicoID)
}

func (u *beneficiarioUsecase) DeleteHistorico(ctx context.Context, historicoID int) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	historico, err := u.historicoRepo.FindByID(tx, historicoID)
	if err != nil {
		u.log.Warnf("Failed to find historico: %+v", err)
		return err
	}
	if historico == nil {
		return ErrHistoricoNotFound
	}

	datos, err := u.datosRepo.FindByHistoricoID(tx, historicoID)
	if err != nil {
		u.log.Warnf("Failed to find datos obstetricos: %+v", err)
		return err
	}

	if _, err := u.historicoRepo.Delete(tx, historicoID); err != nil {
		u.log.Warnf("Failed to delete historico: %+v", err)
		return classifyDeleteError(err)
	}

	if err := u.auditService.LogDelete(ctx, tx, middleware.ActorID(ctx), entity.AuditActionHistoricoDelete, "historico_beneficiario", historicoID, converter.HistoricoToResponse(historico, datos)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit transaction: %+v", err)
		return err
	}

	return nil
}

// GuardarDatosObstetricos creates or replaces the obstetric data of a pregnancy or nursing period
func (u *beneficiarioUsecase) GuardarDatosObstetricos(ctx context.Context, historicoID int, req *dto.DatosObstetricosRequest) (*dto.HistoricoResponse, error) {
	fum, err := parseDate(req.FechaUltimaMenstruacion)
	if err != nil {
		return nil, err
	}
	fpp, err := parseDate(req.FechaProbableParto)
	if err != nil {
		return nil, err
	}
	parto, err := parseDate(req.FechaDeParto)
	if err != nil {
		return nil, err
	}
	finLactancia, err := parseDate(req.FechaFinLactancia)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	historico, err := u.historicoRepo.FindByID(tx, historicoID)
	if err != nil {
		u.log.Warnf("Failed to find historico: %+v", err)
		return nil, err
	}
	if historico == nil {
		return nil, ErrHistoricoNotFound
	}
	if historico.TipoBeneficio == nil || !historico.TipoBeneficio.EsObstetrico() {
		return nil, ErrBeneficioNoObstetrico
	}

	datos, err := u.datosRepo.FindByHistoricoID(tx, historicoID)
	if err != nil {
		u.log.Warnf("Failed to find datos obstetricos: %+v", err)
		return nil, err
	}
	anterior := converter.DatosObstetricosToResponse(datos)
	if datos == nil {
		datos = &entity.DatosObstetricos{CodHistoricoBeneficiario: historicoID}
	}
	datos.FechaUltimaMenstruacion = fum
	datos.FechaProbableParto = fpp
	datos.FechaDeParto = parto
	datos.FechaFinLactancia = finLactancia

	if err := u.datosRepo.Save(tx, datos); err != nil {
		u.log.Warnf("Failed to save datos obstetricos: %+v", err)
		return nil, classifyWriteError(err)
	}

	if err := u.auditService.LogUpdate(ctx, tx, middleware.ActorID(ctx), entity.AuditActionObstetricoUpsert, "datos_obstetricos", datos.CodDatoObstetrico, anterior, converter.DatosObstetricosToResponse(datos)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit transaction: %+v", err)
		return nil, err
	}

	return converter.HistoricoToResponse(historico, datos), nil
}

func (u *beneficiarioUsecase) historicoConDatos(ctx context.Context, historicoID int) (*dto.HistoricoResponse, error) {
	db := u.db.WithContext(ctx)

	historico, err := u.historicoRepo.FindByID(db, historicoID)
	if err != nil {
		u.log.Warnf("Failed to find historico: %+v", err)
		return nil, err
	}
	if historico == nil {
		return nil, ErrHistoricoNotFound
	}

	datos, err := u.datosRepo.FindByHistoricoID(db, historicoID)
	if err != nil {
		u.log.Warnf("Failed to find datos obstetricos: %+v", err)
		return nil, err
	}

	return converter.HistoricoToResponse(historico, datos), nil
}
