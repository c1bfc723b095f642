package seed

import (
	"context"
	"testing"

	"sistema-provale/internal/domain/entity"
	"sistema-provale/internal/repository"
	"sistema-provale/internal/testutil"
	"sistema-provale/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeeder_Run(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	seeder := NewSeeder(
		db,
		testutil.NewLogger(),
		repository.NewEstadoRepository(),
		repository.NewCatalogoRepository[entity.Rol]("codRol"),
		repository.NewCatalogoRepository[entity.TipoMovimiento]("codTipoMovimiento"),
		repository.NewUsuarioRepository(),
	)
	ctx := context.Background()

	t.Run("requires admin password", func(t *testing.T) {
		assert.ErrorIs(t, seeder.Run(ctx, ""), ErrAdminPasswordRequired)
	})

	t.Run("creates reference rows and admin", func(t *testing.T) {
		require.NoError(t, seeder.Run(ctx, "s3cret-pass"))

		var estados []entity.Estado
		require.NoError(t, db.Order("abreviatura").Find(&estados).Error)
		require.Len(t, estados, 3)
		assert.Equal(t, "ACT", estados[0].Abreviatura)

		var admin entity.Usuario
		require.NoError(t, db.Preload("Rol").Preload("Estado").Where("username = ?", AdminUsername).First(&admin).Error)
		assert.True(t, admin.IsSuperuser)
		assert.Equal(t, entity.RolAdministrador, admin.Rol.Descripcion)
		assert.True(t, admin.EstaActivoEnSistema([]string{"ACT"}))

		ok, err := password.Verify(admin.Password, "s3cret-pass")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("is idempotent", func(t *testing.T) {
		require.NoError(t, seeder.Run(ctx, "another-pass"))

		var roles, tipos, usuarios int64
		db.Model(&entity.Rol{}).Count(&roles)
		db.Model(&entity.TipoMovimiento{}).Count(&tipos)
		db.Model(&entity.Usuario{}).Count(&usuarios)
		assert.Equal(t, int64(4), roles)
		assert.Equal(t, int64(2), tipos)
		assert.Equal(t, int64(1), usuarios)

		var admin entity.Usuario
		require.NoError(t, db.Where("username = ?", AdminUsername).First(&admin).Error)
		ok, _ := password.Verify(admin.Password, "s3cret-pass")
		assert.True(t, ok)
	})
}
