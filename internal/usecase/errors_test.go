package usecase

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestClassifyWriteError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"nil", nil, nil},
		{"postgres unique", &pgconn.PgError{Code: "23505", ConstraintName: "Personas_dni_key"}, ErrDuplicado},
		{"wrapped postgres unique", fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"}), ErrDuplicado},
		{"postgres foreign key", &pgconn.PgError{Code: "23503"}, ErrReferenciaInvalida},
		{"gorm duplicated", gorm.ErrDuplicatedKey, ErrDuplicado},
		{"gorm foreign key", gorm.ErrForeignKeyViolated, ErrReferenciaInvalida},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyWriteError(tt.err)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}

	other := errors.New("connection reset")
	assert.Same(t, other, classifyWriteError(other))

	// untranslated driver text is not classified
	raw := errors.New("UNIQUE constraint failed: Estados.abreviatura")
	assert.Same(t, raw, classifyWriteError(raw))
}

func TestClassifyDeleteError(t *testing.T) {
	assert.ErrorIs(t, classifyDeleteError(&pgconn.PgError{Code: "23503"}), ErrReferenciaProtegida)
	assert.ErrorIs(t, classifyDeleteError(gorm.ErrForeignKeyViolated), ErrReferenciaProtegida)
	assert.NoError(t, classifyDeleteError(nil))
}

func TestIsDuplicateKeyError_ConstraintName(t *testing.T) {
	err := &pgconn.PgError{Code: "23505", ConstraintName: "Personas_dni_key"}

	assert.True(t, isDuplicateKeyError(err, "dni"))
	assert.False(t, isDuplicateKeyError(err, "codigoAsociacion"))
}
