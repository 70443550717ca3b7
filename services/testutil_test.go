package services

import (
	"testing"

	"fitnessapi/logger"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newTestDB returns a gorm DB backed by sqlmock. The default transaction is
// skipped so expectations map one to one onto the statements the services
// issue. sqlmock's default matcher treats expected queries as regular
// expressions, so tests match on table names rather than full statements.
func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return db, mock
}

func testLogger() *logger.Logger {
	return logger.NewNop()
}
