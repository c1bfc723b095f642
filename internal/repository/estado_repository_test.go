package repository

import (
	"errors"
	"regexp"
	"testing"

	"sistema-provale/internal/domain/entity"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstadoRepository_DeleteReferencedIsRejected(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixture(t, db)
	repo := NewEstadoRepository()

	_, err := repo.Delete(db, f.Estado.CodEstado)
	require.Error(t, err)

	var asociacion entity.Asociacion
	require.NoError(t, db.First(&asociacion, f.Asociacion.CodAsociacion).Error)
	assert.Equal(t, f.Estado.CodEstado, asociacion.CodEstado)

	estado, err := repo.FindByID(db, f.Estado.CodEstado)
	require.NoError(t, err)
	assert.NotNil(t, estado)
}

func TestEstadoRepository_DeleteSurfacesForeignKeyViolation(t *testing.T) {
	db, mock, _ := setupMockDB(t)
	repo := NewEstadoRepository()

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "Estados" WHERE "codEstado" = $1`)).
		WithArgs(1).
		WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "Asociaciones_codEstado_fkey"})

	_, err := repo.Delete(db, 1)
	require.Error(t, err)

	var pgErr *pgconn.PgError
	require.True(t, errors.As(err, &pgErr))
	assert.Equal(t, "23503", pgErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEstadoRepository_FindByAbreviaturaIgnoresCase(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEstadoRepository()

	require.NoError(t, repo.Create(db, &entity.Estado{Abreviatura: "ACT", Descripcion: "Activo"}))

	estado, err := repo.FindByAbreviatura(db, "act")
	require.NoError(t, err)
	require.NotNil(t, estado)
	assert.Equal(t, "Activo", estado.Descripcion)

	missing, err := repo.FindByAbreviatura(db, "XYZ")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestEstadoRepository_UniqueAbreviatura(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEstadoRepository()

	require.NoError(t, repo.Create(db, &entity.Estado{Abreviatura: "ACT", Descripcion: "Activo"}))
	assert.Error(t, repo.Create(db, &entity.Estado{Abreviatura: "ACT", Descripcion: "Activa"}))
}

func TestCatalogoRepository_CRUD(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCatalogoRepository[entity.Parentesco]("codParentesco")

	for _, d := range []string{"Hijo(a)", "Esposo(a)", "Nieto(a)"} {
		require.NoError(t, repo.Create(db, &entity.Parentesco{Descripcion: d}))
	}

	items, err := repo.FindAll(db)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "Esposo(a)", items[0].Descripcion)

	found, err := repo.FindByDescripcion(db, "Nieto(a)")
	require.NoError(t, err)
	require.NotNil(t, found)

	byID, err := repo.FindByID(db, found.CodParentesco)
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, "Nieto(a)", byID.Descripcion)

	affected, err := repo.Delete(db, found.CodParentesco)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	gone, err := repo.FindByID(db, found.CodParentesco)
	require.NoError(t, err)
	assert.Nil(t, gone)
}
