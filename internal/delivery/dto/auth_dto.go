package dto

import "time"

// Request DTOs

type LoginRequest struct {
	Username string `json:"username" validate:"required,max=150"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type CreateUsuarioRequest struct {
	Username        string `json:"username" validate:"required,max=150"`
	Password        string `json:"password" validate:"required,min=8"`
	Email           string `json:"email" validate:"omitempty,email,max=254"`
	Nombres         string `json:"nombres" validate:"required,max=100"`
	ApellidoPaterno string `json:"apellido_paterno" validate:"required,max=100"`
	ApellidoMaterno string `json:"apellido_materno" validate:"required,max=100"`
	DNI             string `json:"dni" validate:"required,len=8,numeric"`
	CUI             string `json:"cui" validate:"omitempty,max=13"`
	CodRol          *int   `json:"cod_rol" validate:"omitempty,gt=0"`
	CodEstado       *int   `json:"cod_estado" validate:"omitempty,gt=0"`
	IsStaff         bool   `json:"is_staff"`
}

// Response DTOs

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

type UsuarioResponse struct {
	ID              int        `json:"id"`
	Username        string     `json:"username"`
	Email           string     `json:"email"`
	Nombres         string     `json:"nombres"`
	ApellidoPaterno string     `json:"apellido_paterno"`
	ApellidoMaterno string     `json:"apellido_materno"`
	NombreCompleto  string     `json:"nombre_completo"`
	NombreCorto     string     `json:"nombre_corto"`
	Rol             string     `json:"rol"`
	Estado          string     `json:"estado,omitempty"`
	IsSuperuser     bool       `json:"is_superuser"`
	IsStaff         bool       `json:"is_staff"`
	LastLogin       *time.Time `json:"last_login,omitempty"`
	DateJoined      time.Time  `json:"date_joined"`
}
