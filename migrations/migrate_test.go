// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"io/fs"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_DBError(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// goose queries the version table; sqlmock has no expectations and fails
	err = Migrate(db, DialectPostgres)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "migration error"), err.Error())
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db, DialectPostgres)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db is nil")
}

func TestMigrate_UnknownDialect(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	err = Migrate(db, "oracle")
	assert.ErrorIs(t, err, ErrUnknownDialect)
}

// TestEmbeddedMigrations_SameVersions verifies that every dialect ships the
// same migration versions.
func TestEmbeddedMigrations_SameVersions(t *testing.T) {
	pg, err := fs.Glob(embedMigrations, "postgres/*.sql")
	require.NoError(t, err)
	lite, err := fs.Glob(embedMigrations, "sqlite/*.sql")
	require.NoError(t, err)

	strip := func(paths []string, prefix string) []string {
		out := make([]string, 0, len(paths))
		for _, p := range paths {
			out = append(out, strings.TrimPrefix(p, prefix))
		}
		return out
	}

	require.NotEmpty(t, pg)
	assert.Equal(t, strip(pg, "postgres/"), strip(lite, "sqlite/"))
}
