package repository

import (
	"database/sql"
	"testing"

	"sistema-provale/internal/testutil"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/gorm"
)

// setupTestDB opens a private in-memory SQLite database with foreign keys enforced
func setupTestDB(t *testing.T) *gorm.DB {
	return testutil.NewSQLiteDB(t)
}

// setupMockDB wires go-sqlmock behind the PostgreSQL dialector
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	m := testutil.NewMockDB(t)
	return m.DB, m.Mock, m.SqlDB
}

type fixture = testutil.Fixture

func strPtr(s string) *string { return testutil.StrPtr(s) }

func seedFixture(t *testing.T, db *gorm.DB) *fixture {
	return testutil.SeedFixture(t, db)
}
