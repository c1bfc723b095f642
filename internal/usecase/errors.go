package usecase

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Write rejections shared by every usecase
var (
	ErrDuplicado           = errors.New("a record with the same unique value already exists")
	ErrReferenciaProtegida = errors.New("record is still referenced by other records")
	ErrReferenciaInvalida  = errors.New("referenced record does not exist")
	ErrFechaInvalida       = errors.New("invalid date format, use YYYY-MM-DD")
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// isDuplicateKeyError checks if the error is a unique violation. An empty
// constraintName matches any constraint.
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation && constraintMatches(pgErr.ConstraintName, constraintName)
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// isForeignKeyError checks if the error is a foreign key violation. An empty
// constraintName matches any constraint.
func isForeignKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgForeignKeyViolation && constraintMatches(pgErr.ConstraintName, constraintName)
	}
	return errors.Is(err, gorm.ErrForeignKeyViolated)
}

func constraintMatches(actual, wanted string) bool {
	return wanted == "" || strings.Contains(strings.ToLower(actual), strings.ToLower(wanted))
}

// classifyWriteError maps constraint failures of an insert or update to the taxonomy errors
func classifyWriteError(err error) error {
	switch {
	case err == nil:
		return nil
	case isDuplicateKeyError(err, ""):
		return ErrDuplicado
	case isForeignKeyError(err, ""):
		return ErrReferenciaInvalida
	default:
		return err
	}
}

// classifyDeleteError maps a restrictive foreign key failure on delete to ErrReferenciaProtegida
func classifyDeleteError(err error) error {
	if isForeignKeyError(err, "") {
		return ErrReferenciaProtegida
	}
	return err
}
