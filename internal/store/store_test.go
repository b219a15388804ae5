package store

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-habit-tracker/internal/config"
	"github.com/MKhiriev/go-habit-tracker/internal/logger"
)

func ptr[T any](v T) *T { return &v }

// newMockDB returns a *DB over sqlmock using the placeholders of dialect.
func newMockDB(t *testing.T, dialect string) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		conn.Close()
	})
	return newDB(conn, dialect, logger.Nop()), mock
}

func newPostgresMock(t *testing.T) (*DB, sqlmock.Sqlmock) {
	return newMockDB(t, config.DriverPostgres)
}

