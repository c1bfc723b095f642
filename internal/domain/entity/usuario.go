package entity

import (
	"strings"
	"time"
)

// Usuario is a system login account. It is independent of Persona and keeps the
// column layout of the original auth table so existing rows stay readable.
type Usuario struct {
	ID              int        `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Password        string     `gorm:"column:password;type:varchar(128);not null" json:"-"`
	LastLogin       *time.Time `gorm:"column:last_login" json:"last_login,omitempty"`
	IsSuperuser     bool       `gorm:"column:is_superuser;not null" json:"is_superuser"`
	Username        string     `gorm:"column:username;type:varchar(150);uniqueIndex;not null" json:"username"`
	FirstName       string     `gorm:"column:first_name;type:varchar(150);not null" json:"first_name"`
	LastName        string     `gorm:"column:last_name;type:varchar(150);not null" json:"last_name"`
	Email           string     `gorm:"column:email;type:varchar(254);not null" json:"email"`
	IsStaff         bool       `gorm:"column:is_staff;not null" json:"is_staff"`
	IsActive        bool       `gorm:"column:is_active;not null" json:"is_active"`
	DateJoined      time.Time  `gorm:"column:date_joined;autoCreateTime" json:"date_joined"`
	Nombres         string     `gorm:"column:nombres;type:varchar(100);not null" json:"nombres"`
	ApellidoPaterno string     `gorm:"column:apellidoPaterno;type:varchar(100);not null" json:"apellido_paterno"`
	ApellidoMaterno string     `gorm:"column:apellidoMaterno;type:varchar(100);not null" json:"apellido_materno"`
	DNI             string     `gorm:"column:dni;type:varchar(8);not null" json:"dni"`
	CUI             string     `gorm:"column:cui;type:varchar(13);not null" json:"cui"`
	CodRol          *int       `gorm:"column:codRol;index" json:"cod_rol,omitempty"`
	CodEstado       *int       `gorm:"column:codEstado;index" json:"cod_estado,omitempty"`

	// Relationships
	Rol    *Rol    `gorm:"foreignKey:CodRol;references:CodRol;belongsTo;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"rol,omitempty"`
	Estado *Estado `gorm:"foreignKey:CodEstado;references:CodEstado;belongsTo;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"estado,omitempty"`
}

func (Usuario) TableName() string {
	return "Usuarios"
}

// EstaActivoEnSistema is true when the account is enabled and its Estado abbreviation,
// upper-cased, is one of activeCodes. An account without a loaded Estado is never active.
func (u *Usuario) EstaActivoEnSistema(activeCodes []string) bool {
	if !u.IsActive || u.Estado == nil {
		return false
	}
	abreviatura := strings.ToUpper(u.Estado.Abreviatura)
	for _, code := range activeCodes {
		if abreviatura == strings.ToUpper(code) {
			return true
		}
	}
	return false
}

func (u *Usuario) NombreCompleto() string {
	return strings.Join([]string{u.Nombres, u.ApellidoPaterno, u.ApellidoMaterno}, " ")
}

// NombreCorto is the first given name, or the username when no names are set
func (u *Usuario) NombreCorto() string {
	if fields := strings.Fields(u.Nombres); len(fields) > 0 {
		return fields[0]
	}
	return u.Username
}

// NombreRol resolves the role shown to views, falling back to defaultRole when no Rol is loaded
func (u *Usuario) NombreRol(defaultRole string) string {
	if u.Rol == nil || u.Rol.Descripcion == "" {
		return defaultRole
	}
	return u.Rol.Descripcion
}
