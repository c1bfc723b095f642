package usecase

import (
	"context"
	"errors"
	"time"

	"sistema-provale/config"
	"sistema-provale/internal/converter"
	"sistema-provale/internal/delivery/dto"
	"sistema-provale/internal/domain/entity"
	"sistema-provale/internal/domain/repository"
	"sistema-provale/internal/service"
	"sistema-provale/pkg/jwt"
	"sistema-provale/pkg/password"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsuarioInactivo    = errors.New("user is not active in the system")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrTokenRevoked       = errors.New("token has been revoked")
	ErrUserNotFound       = errors.New("user not found")
)

type AuthUsecase interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context, userID int, accessTokenID, refreshToken string) error
	// LogoutAll revokes every session of the user
	LogoutAll(ctx context.Context, userID int) error
	RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
	GetCurrentUser(ctx context.Context, userID int) (*dto.UsuarioResponse, error)
	// ResolveActiveUser returns nil, nil for accounts that are missing or no longer active
	ResolveActiveUser(ctx context.Context, userID int) (*entity.Usuario, error)
}

type authUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	cfg          config.AuthConfig
	usuarioRepo  repository.UsuarioRepository
	jwtService   *jwt.JWTService
	tokens       service.TokenStore
	auditService service.AuditService
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	cfg config.AuthConfig,
	usuarioRepo repository.UsuarioRepository,
	jwtService *jwt.JWTService,
	tokens service.TokenStore,
	auditService service.AuditService,
) AuthUsecase {
	return &authUsecase{
		db:           db,
		log:          log,
		cfg:          cfg,
		usuarioRepo:  usuarioRepo,
		jwtService:   jwtService,
		tokens:       tokens,
		auditService: auditService,
	}
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	db := u.db.WithContext(ctx)

	usuario, err := u.usuarioRepo.FindByUsername(db, req.Username)
	if err != nil {
		u.log.Warnf("Failed to find user by username: %+v", err)
		return nil, err
	}
	if usuario == nil {
		return nil, ErrInvalidCredentials
	}

	ok, err := password.Verify(usuario.Password, req.Password)
	if err != nil {
		u.log.Warnf("Failed to verify password of user %d: %+v", usuario.ID, err)
		return nil, ErrInvalidCredentials
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}

	if !usuario.EstaActivoEnSistema(u.cfg.ActiveEstadoCodes) {
		return nil, ErrUsuarioInactivo
	}

	tx := db.Begin()
	defer tx.Rollback()

	if password.NeedsRehash(usuario.Password) {
		hashed, err := password.Hash(req.Password)
		if err != nil {
			u.log.Warnf("Failed to hash password: %+v", err)
			return nil, err
		}
		if err := u.usuarioRepo.UpdatePassword(tx, usuario.ID, hashed); err != nil {
			u.log.Warnf("Failed to upgrade password hash of user %d: %+v", usuario.ID, err)
			return nil, err
		}
		u.log.Infof("Upgraded legacy password hash of user %d", usuario.ID)
	}

	if err := u.usuarioRepo.UpdateLastLogin(tx, usuario.ID, time.Now()); err != nil {
		u.log.Warnf("Failed to update last login: %+v", err)
		return nil, err
	}

	response, err := u.issueTokens(ctx, usuario)
	if err != nil {
		return nil, err
	}

	if err := u.auditService.LogEvent(ctx, tx, &usuario.ID, entity.AuditActionUsuarioLogin, entity.JSON{"username": usuario.Username}); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit transaction: %+v", err)
		return nil, err
	}

	return response, nil
}

func (u *authUsecase) issueTokens(ctx context.Context, usuario *entity.Usuario) (*dto.TokenResponse, error) {
	sub := jwt.Subject{
		UserID:    usuario.ID,
		Username:  usuario.Username,
		Rol:       usuario.NombreRol(u.cfg.DefaultRole),
		Superuser: usuario.IsSuperuser,
	}

	accessToken, accessTokenID, err := u.jwtService.GenerateAccessToken(sub)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	refreshToken, refreshTokenID, err := u.jwtService.GenerateRefreshToken(sub)
	if err != nil {
		u.log.Warnf("Failed to generate refresh token: %+v", err)
		return nil, err
	}

	if err := u.tokens.Store(ctx, usuario.ID, accessTokenID, u.jwtService.GetAccessExpiry(), refreshTokenID, u.jwtService.GetRefreshExpiry()); err != nil {
		u.log.Warnf("Failed to store tokens: %+v", err)
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(u.jwtService.GetAccessExpiry().Seconds()),
	}, nil
}

// Logout revokes the access token and, when it parses and belongs to the same user, the refresh token
func (u *authUsecase) Logout(ctx context.Context, userID int, accessTokenID, refreshToken string) error {
	refreshTokenID := ""
	if refreshToken != "" {
		claims, err := u.jwtService.ValidateToken(refreshToken)
		if err == nil && claims.TokenType == jwt.RefreshToken && claims.UserID == userID {
			refreshTokenID = claims.TokenID
		}
	}

	if err := u.tokens.Revoke(ctx, userID, accessTokenID, refreshTokenID); err != nil {
		u.log.Warnf("Failed to revoke tokens: %+v", err)
		return err
	}

	if err := u.auditService.LogEvent(ctx, u.db.WithContext(ctx), &userID, entity.AuditActionUsuarioLogout, entity.JSON{"token_id": accessTokenID}); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return nil
}

func (u *authUsecase) LogoutAll(ctx context.Context, userID int) error {
	if err := u.tokens.RevokeAll(ctx, userID); err != nil {
		u.log.Warnf("Failed to revoke sessions: %+v", err)
		return err
	}

	if err := u.auditService.LogEvent(ctx, u.db.WithContext(ctx), &userID, entity.AuditActionUsuarioLogout, entity.JSON{"all_sessions": true}); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return nil
}

func (u *authUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	claims, err := u.jwtService.ValidateToken(req.RefreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if claims.TokenType != jwt.RefreshToken {
		return nil, ErrInvalidToken
	}

	consumed, err := u.tokens.ConsumeRefresh(ctx, claims.UserID, claims.TokenID)
	if err != nil {
		u.log.Warnf("Failed to consume refresh token: %+v", err)
		return nil, err
	}
	if !consumed {
		return nil, ErrTokenRevoked
	}

	usuario, err := u.ResolveActiveUser(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, ErrUsuarioInactivo
	}

	return u.issueTokens(ctx, usuario)
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, userID int) (*dto.UsuarioResponse, error) {
	usuario, err := u.usuarioRepo.FindByID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if usuario == nil {
		return nil, ErrUserNotFound
	}

	return converter.UsuarioToResponse(usuario, u.cfg.DefaultRole), nil
}

func (u *authUsecase) ResolveActiveUser(ctx context.Context, userID int) (*entity.Usuario, error) {
	usuario, err := u.usuarioRepo.FindByID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if usuario == nil || !usuario.EstaActivoEnSistema(u.cfg.ActiveEstadoCodes) {
		return nil, nil
	}
	return usuario, nil
}
