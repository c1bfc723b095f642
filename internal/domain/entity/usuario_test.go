package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUsuario_EstaActivoEnSistema(t *testing.T) {
	activos := []string{"ACT", "A"}

	tests := []struct {
		name    string
		usuario Usuario
		want    bool
	}{
		{
			name:    "enabled with active estado",
			usuario: Usuario{IsActive: true, Estado: &Estado{Abreviatura: "ACT"}},
			want:    true,
		},
		{
			name:    "abbreviation compared case-insensitively",
			usuario: Usuario{IsActive: true, Estado: &Estado{Abreviatura: "a"}},
			want:    true,
		},
		{
			name:    "disabled account",
			usuario: Usuario{IsActive: false, Estado: &Estado{Abreviatura: "ACT"}},
			want:    false,
		},
		{
			name:    "inactive estado",
			usuario: Usuario{IsActive: true, Estado: &Estado{Abreviatura: "INA"}},
			want:    false,
		},
		{
			name:    "no estado",
			usuario: Usuario{IsActive: true},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.usuario.EstaActivoEnSistema(activos))
		})
	}
}

func TestUsuario_Nombres(t *testing.T) {
	u := &Usuario{Username: "rquispe", Nombres: "Rosa Elvira", ApellidoPaterno: "Quispe", ApellidoMaterno: "Huamán"}

	assert.Equal(t, "Rosa Elvira Quispe Huamán", u.NombreCompleto())
	assert.Equal(t, "Rosa", u.NombreCorto())

	u.Nombres = ""
	assert.Equal(t, "rquispe", u.NombreCorto())
}

func TestUsuario_NombreRol(t *testing.T) {
	u := &Usuario{}
	assert.Equal(t, "usuario", u.NombreRol("usuario"))

	u.Rol = &Rol{Descripcion: RolGerente}
	assert.Equal(t, RolGerente, u.NombreRol("usuario"))
}
