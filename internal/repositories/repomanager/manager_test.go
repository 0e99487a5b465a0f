package repomanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryManager(t *testing.T) {
	m := NewMemoryRepositoryManager()

	require.NoError(t, m.RunMigrations(context.Background()))
	assert.NotNil(t, m.Users())
	assert.NotNil(t, m.Uploads())
	assert.NotNil(t, m.AccessLogs())
	assert.NoError(t, m.Close())
}

func TestPostgresManagerRunMigrations(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	m := &PostgresRepositoryManager{db: db}

	orig := gooseUpContext
	t.Cleanup(func() { gooseUpContext = orig })

	var calledDir string
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		calledDir = dir
		return nil
	}

	require.NoError(t, m.RunMigrations(context.Background()))
	assert.Equal(t, ".", calledDir)

	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return errors.New("migrate-fail")
	}
	err = m.RunMigrations(context.Background())
	require.Error(t, err)

	mock.ExpectClose()
	assert.NoError(t, m.Close())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresManagerVendsRepos(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	m := &PostgresRepositoryManager{db: db}
	assert.NotNil(t, m.Users())
	assert.NotNil(t, m.Uploads())
	assert.NotNil(t, m.AccessLogs())
}
