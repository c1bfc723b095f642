package usecase

import (
	"context"
	"testing"

	"sistema-provale/internal/delivery/dto"
	"sistema-provale/internal/domain/entity"
	"sistema-provale/internal/repository"
	"sistema-provale/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogoRepositories() CatalogoRepositories {
	return CatalogoRepositories{
		Roles:                 repository.NewCatalogoRepository[entity.Rol]("codRol"),
		TiposLocal:            repository.NewCatalogoRepository[entity.TipoLocal]("codTipoLocal"),
		Cargos:                repository.NewCatalogoRepository[entity.Cargo]("codCargo"),
		Parentescos:           repository.NewCatalogoRepository[entity.Parentesco]("codParentesco"),
		UnidadesMedida:        repository.NewCatalogoRepository[entity.UnidadMedida]("codUnidadMedida"),
		TiposMovimiento:       repository.NewCatalogoRepository[entity.TipoMovimiento]("codTipoMovimiento"),
		Zonas:                 repository.NewCatalogoRepository[entity.Zona]("codZona"),
		Sectores:              repository.NewCatalogoRepository[entity.Sector]("codSector"),
		MotivosInhabilitacion: repository.NewCatalogoRepository[entity.MotivoInhabilitacion]("codMotivoInhabilitacion"),
	}
}

func TestCatalogoUsecase(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	f := testutil.SeedFixture(t, db)
	uc := NewCatalogoUsecase(db, testutil.NewLogger(), catalogoRepositories(), newAuditService())
	ctx := context.Background()

	t.Run("lists every catalog name", func(t *testing.T) {
		tipos := uc.Tipos()
		assert.Len(t, tipos, 9)
		assert.Contains(t, tipos, CatalogoParentescos)
		assert.IsIncreasing(t, tipos)
	})

	t.Run("unknown catalog", func(t *testing.T) {
		_, err := uc.GetAll(ctx, "planetas")
		assert.ErrorIs(t, err, ErrCatalogoDesconocido)
	})

	t.Run("creates and lists ordered by description", func(t *testing.T) {
		for _, d := range []string{"Tesorera", "Presidenta", "Secretaria"} {
			_, err := uc.Create(ctx, CatalogoCargos, &dto.CreateCatalogoRequest{Descripcion: d})
			require.NoError(t, err)
		}

		items, err := uc.GetAll(ctx, "CARGOS")
		require.NoError(t, err)
		require.Len(t, items, 3)
		assert.Equal(t, "Presidenta", items[0].Descripcion)
		assert.Equal(t, "Tesorera", items[2].Descripcion)
	})

	t.Run("movement types are upper-cased", func(t *testing.T) {
		item, err := uc.Create(ctx, CatalogoTiposMovimiento, &dto.CreateCatalogoRequest{Descripcion: "ajuste"})
		require.NoError(t, err)
		assert.Equal(t, "AJUSTE", item.Descripcion)
	})

	t.Run("duplicate description", func(t *testing.T) {
		_, err := uc.Create(ctx, CatalogoParentescos, &dto.CreateCatalogoRequest{Descripcion: "Esposo"})
		require.NoError(t, err)

		_, err = uc.Create(ctx, CatalogoParentescos, &dto.CreateCatalogoRequest{Descripcion: "Esposo"})
		assert.ErrorIs(t, err, ErrDuplicado)
	})

	t.Run("referenced row cannot be deleted", func(t *testing.T) {
		err := uc.Delete(ctx, CatalogoUnidadesMedida, f.Unidad.CodUnidadMedida)
		assert.ErrorIs(t, err, ErrReferenciaProtegida)
	})

	t.Run("unreferenced row is deleted and audited", func(t *testing.T) {
		item, err := uc.Create(ctx, CatalogoParentescos, &dto.CreateCatalogoRequest{Descripcion: "Hija"})
		require.NoError(t, err)

		require.NoError(t, uc.Delete(ctx, CatalogoParentescos, item.ID))
		assert.Equal(t, int64(1), auditCount(t, db, entity.AuditActionCatalogoDelete))

		assert.ErrorIs(t, uc.Delete(ctx, CatalogoParentescos, item.ID), ErrCatalogoNotFound)
	})
}

func TestEstadoUsecase(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	f := testutil.SeedFixture(t, db)
	uc := NewEstadoUsecase(db, testutil.NewLogger(), repository.NewEstadoRepository(), newAuditService())
	ctx := context.Background()

	t.Run("abbreviation is upper-cased", func(t *testing.T) {
		estado, err := uc.Create(ctx, &dto.CreateEstadoRequest{Abreviatura: " sus ", Descripcion: "Suspendido"})
		require.NoError(t, err)
		assert.Equal(t, entity.EstadoSuspendido, estado.Abreviatura)
	})

	t.Run("estado in use is protected", func(t *testing.T) {
		assert.ErrorIs(t, uc.Delete(ctx, f.Estado.CodEstado), ErrReferenciaProtegida)

		estados, err := uc.GetAll(ctx)
		require.NoError(t, err)
		assert.Len(t, estados, 3)
	})

	t.Run("missing estado", func(t *testing.T) {
		assert.ErrorIs(t, uc.Delete(ctx, 999), ErrEstadoNotFound)
	})
}
