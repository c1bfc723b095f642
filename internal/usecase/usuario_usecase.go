package usecase

import (
	"context"
	"strings"

	"sistema-provale/internal/converter"
	"sistema-provale/internal/delivery/dto"
	"sistema-provale/internal/delivery/http/middleware"
	"sistema-provale/internal/domain/entity"
	"sistema-provale/internal/domain/repository"
	"sistema-provale/internal/service"
	"sistema-provale/pkg/password"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type UsuarioUsecase interface {
	// Create registers an account with a bcrypt password; administrators only
	Create(ctx context.Context, req *dto.CreateUsuarioRequest) (*dto.UsuarioResponse, error)
	GetByID(ctx context.Context, id int) (*dto.UsuarioResponse, error)
}

type usuarioUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	defaultRole  string
	usuarioRepo  repository.UsuarioRepository
	auditService service.AuditService
}

func NewUsuarioUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	defaultRole string,
	usuarioRepo repository.UsuarioRepository,
	auditService service.AuditService,
) UsuarioUsecase {
	return &usuarioUsecase{
		db:           db,
		log:          log,
		defaultRole:  defaultRole,
		usuarioRepo:  usuarioRepo,
		auditService: auditService,
	}
}

func (u *usuarioUsecase) Create(ctx context.Context, req *dto.CreateUsuarioRequest) (*dto.UsuarioResponse, error) {
	hashed, err := password.Hash(req.Password)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	usuario := &entity.Usuario{
		Username:        strings.TrimSpace(req.Username),
		Password:        hashed,
		Email:           req.Email,
		Nombres:         req.Nombres,
		ApellidoPaterno: req.ApellidoPaterno,
		ApellidoMaterno: req.ApellidoMaterno,
		DNI:             req.DNI,
		CUI:             req.CUI,
		CodRol:          req.CodRol,
		CodEstado:       req.CodEstado,
		IsStaff:         req.IsStaff,
		IsActive:        true,
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.usuarioRepo.Create(tx, usuario); err != nil {
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, classifyWriteError(err)
	}

	created, err := u.usuarioRepo.FindByID(tx, usuario.ID)
	if err != nil {
		u.log.Warnf("Failed to reload user: %+v", err)
		return nil, err
	}
	response := converter.UsuarioToResponse(created, u.defaultRole)

	if err := u.auditService.LogCreate(ctx, tx, middleware.ActorID(ctx), entity.AuditActionUsuarioCreate, "usuario", usuario.ID, response); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit transaction: %+v", err)
		return nil, err
	}

	return response, nil
}

func (u *usuarioUsecase) GetByID(ctx context.Context, id int) (*dto.UsuarioResponse, error) {
	usuario, err := u.usuarioRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if usuario == nil {
		return nil, ErrUserNotFound
	}

	return converter.UsuarioToResponse(usuario, u.defaultRole), nil
}
