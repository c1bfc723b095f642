package entity

import "time"

// Estado is the generic status catalog reused by most tables (active, inactive, suspended...)
type Estado struct {
	CodEstado   int    `gorm:"column:codEstado;primaryKey;autoIncrement" json:"cod_estado"`
	Abreviatura string `gorm:"column:abreviatura;type:varchar(3);uniqueIndex;not null" json:"abreviatura"`
	Descripcion string `gorm:"column:descripcion;type:varchar(100);uniqueIndex;not null" json:"descripcion"`
}

func (Estado) TableName() string {
	return "Estados"
}

// Estado abbreviations created by the seed command
const (
	EstadoActivo     = "ACT"
	EstadoInactivo   = "INA"
	EstadoSuspendido = "SUS"
)

// Rol represents an access role for system users
type Rol struct {
	CodRol        int       `gorm:"column:codRol;primaryKey;autoIncrement" json:"cod_rol"`
	Descripcion   string    `gorm:"column:descripcion;type:varchar(100);uniqueIndex;not null" json:"descripcion"`
	FechaRegistro time.Time `gorm:"column:fechaRegistro;autoCreateTime" json:"fecha_registro"`
}

func (Rol) TableName() string {
	return "Roles"
}

// Role names created by the seed command
const (
	RolAdministrador = "Administrador"
	RolGerente       = "Gerente"
	RolUsuario       = "Usuario"
	RolConsultor     = "Consultor"
)
