package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"sistema-provale/internal/converter"
	"sistema-provale/internal/delivery/dto"
	"sistema-provale/internal/domain/entity"
	"sistema-provale/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrPersonaNotFound = errors.New("persona not found")
)

type PersonaUsecase interface {
	GetAll(ctx context.Context, query *dto.PersonaListQuery) ([]dto.PersonaResponse, int64, error)
	// GetByID includes the age derived at the current date
	GetByID(ctx context.Context, id int) (*dto.PersonaResponse, error)
	GetByDNI(ctx context.Context, dni string) (*dto.PersonaResponse, error)
	Create(ctx context.Context, req *dto.CreatePersonaRequest) (*dto.PersonaResponse, error)

	GetSocios(ctx context.Context, asociacionID *int) ([]dto.SocioResponse, error)
	CreateSocio(ctx context.Context, req *dto.CreateSocioRequest) (*dto.SocioResponse, error)
}

type personaUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	personaRepo repository.PersonaRepository
	socioRepo   repository.SocioRepository
}

func NewPersonaUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	personaRepo repository.PersonaRepository,
	socioRepo repository.SocioRepository,
) PersonaUsecase {
	return &personaUsecase{
		db:          db,
		log:         log,
		personaRepo: personaRepo,
		socioRepo:   socioRepo,
	}
}

func (u *personaUsecase) GetAll(ctx context.Context, query *dto.PersonaListQuery) ([]dto.PersonaResponse, int64, error) {
	query.Normalize()
	filter := &entity.PersonaFilter{
		Search: strings.TrimSpace(query.Search),
		Limit:  query.Limit,
		Offset: query.Offset(),
	}

	personas, total, err := u.personaRepo.FindAll(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to find personas: %+v", err)
		return nil, 0, err
	}

	return converter.PersonasToResponses(personas), total, nil
}

func (u *personaUsecase) GetByID(ctx context.Context, id int) (*dto.PersonaResponse, error) {
	persona, err := u.personaRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find persona: %+v", err)
		return nil, err
	}
	if persona == nil {
		return nil, ErrPersonaNotFound
	}

	response, err := converter.PersonaToResponse(persona, time.Now(), true)
	if err != nil {
		u.log.Warnf("Failed to derive age of persona %d: %+v", id, err)
		return nil, err
	}
	return response, nil
}

func (u *personaUsecase) GetByDNI(ctx context.Context, dni string) (*dto.PersonaResponse, error) {
	persona, err := u.personaRepo.FindByDNI(u.db.WithContext(ctx), strings.TrimSpace(dni))
	if err != nil {
		u.log.Warnf("Failed to find persona by DNI: %+v", err)
		return nil, err
	}
	if persona == nil {
		return nil, ErrPersonaNotFound
	}

	return u.GetByID(ctx, persona.CodPersona)
}

func (u *personaUsecase) Create(ctx context.Context, req *dto.CreatePersonaRequest) (*dto.PersonaResponse, error) {
	nacimiento, err := parseDate(req.FechaNacimiento)
	if err != nil {
		return nil, err
	}
	if nacimiento == nil {
		return nil, entity.ErrFechaNacimientoRequerida
	}

	persona := &entity.Persona{
		Nombres:         strings.TrimSpace(req.Nombres),
		ApellidoPaterno: strings.TrimSpace(req.ApellidoPaterno),
		ApellidoMaterno: strings.TrimSpace(req.ApellidoMaterno),
		DNI:             req.DNI,
		Sexo:            req.Sexo,
		Telefono:        req.Telefono,
		Celular:         req.Celular,
		FechaNacimiento: *nacimiento,
		CodSectorZona:   req.CodSectorZona,
		Direccion:       strings.TrimSpace(req.Direccion),
		NumeroFinca:     req.NumeroFinca,
	}

	if err := u.personaRepo.Create(u.db.WithContext(ctx), persona); err != nil {
		u.log.Warnf("Failed to create persona: %+v", err)
		return nil, classifyWriteError(err)
	}

	return u.GetByID(ctx, persona.CodPersona)
}

func (u *personaUsecase) GetSocios(ctx context.Context, asociacionID *int) ([]dto.SocioResponse, error) {
	socios, err := u.socioRepo.FindAll(u.db.WithContext(ctx), asociacionID)
	if err != nil {
		u.log.Warnf("Failed to find socios: %+v", err)
		return nil, err
	}
	return converter.SociosToResponses(socios), nil
}

func (u *personaUsecase) CreateSocio(ctx context.Context, req *dto.CreateSocioRequest) (*dto.SocioResponse, error) {
	inicio, err := parseDateOr(req.FechaInicio, time.Now())
	if err != nil {
		return nil, err
	}
	fin, err := parseDate(req.FechaFin)
	if err != nil {
		return nil, err
	}

	socio := &entity.Socio{
		CodPersona:    req.CodPersona,
		CodAsociacion: req.CodAsociacion,
		FechaInicio:   inicio,
		FechaFin:      fin,
		Observaciones: req.Observaciones,
		CodEstado:     req.CodEstado,
	}
	if err := socio.ValidarPeriodo(); err != nil {
		return nil, err
	}

	db := u.db.WithContext(ctx)
	if err := u.socioRepo.Create(db, socio); err != nil {
		u.log.Warnf("Failed to create socio: %+v", err)
		return nil, classifyWriteError(err)
	}

	created, err := u.socioRepo.FindByID(db, socio.CodSocio)
	if err != nil {
		u.log.Warnf("Failed to reload socio: %+v", err)
		return nil, err
	}
	if created == nil {
		return nil, ErrSocioNotFound
	}

	return converter.SocioToResponse(created), nil
}
