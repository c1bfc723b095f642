package usecase

import (
	"context"
	"testing"

	"sistema-provale/internal/delivery/http/middleware"
	"sistema-provale/internal/domain/entity"
	"sistema-provale/internal/repository"
	"sistema-provale/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardUsecase_Summary(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	f := testutil.SeedFixture(t, db)

	fin := testutil.Date(2020, 1, 1)
	ex := entity.Socio{
		CodPersona:    f.Persona.CodPersona,
		CodAsociacion: f.Asociacion.CodAsociacion,
		FechaInicio:   testutil.Date(2015, 1, 1),
		FechaFin:      &fin,
		CodEstado:     f.Inactivo.CodEstado,
	}
	require.NoError(t, db.Create(&ex).Error)

	uc := NewDashboardUsecase(
		db,
		testutil.NewLogger(),
		"usuario",
		repository.NewBeneficiarioRepository(),
		repository.NewSocioRepository(),
		repository.NewPecosaRepository(),
		repository.NewProductoRepository(),
		repository.NewAsociacionRepository(),
	)

	t.Run("requires a current user", func(t *testing.T) {
		_, err := uc.Summary(context.Background())
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("counts registers", func(t *testing.T) {
		usuario := testutil.SeedUsuario(t, db, "alucia", "x", nil, &f.Estado)
		ctx := middleware.WithCurrentUser(context.Background(), usuario)

		summary, err := uc.Summary(ctx)
		require.NoError(t, err)
		assert.Equal(t, "alucia", summary.Usuario.Username)
		assert.Equal(t, "usuario", summary.Usuario.Rol)
		assert.Equal(t, int64(1), summary.Totales.SociosActivos)
		assert.Equal(t, int64(1), summary.Totales.Productos)
		assert.Equal(t, int64(1), summary.Totales.Asociaciones)
		assert.Zero(t, summary.Totales.Pecosas)
		assert.Zero(t, summary.Totales.Beneficiarios)
	})
}
