package database

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := New(Config{Path: filepath.Join(t.TempDir(), "nested", "reference.db"), Name: "reference"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func countRows(t *testing.T, db *DB, table string) int {
	t.Helper()
	var n int
	require.NoError(t, db.Conn().QueryRow("SELECT COUNT(*) FROM "+table).Scan(&n))
	return n
}

func TestBuildConnectionString(t *testing.T) {
	assert.Equal(t,
		"/tmp/a.db?_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)",
		buildConnectionString("/tmp/a.db"))

	dsn := buildConnectionString("file:x?mode=memory")
	assert.Contains(t, dsn, "file:x?mode=memory&_pragma=journal_mode(WAL)")
}

func TestMigrate_CreatesTablesAndIsIdempotent(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, db.Migrate())
	require.NoError(t, db.Migrate())

	for _, table := range []string{
		"markets", "asset_classes", "sectors", "industries", "currencies",
		"regions", "countries", "instruments", "prices", "holdings",
	} {
		assert.Equal(t, 0, countRows(t, db, table), table)
	}
}

func TestMigrate_UnknownNameIsNoop(t *testing.T) {
	db, err := New(Config{Path: filepath.Join(t.TempDir(), "other.db"), Name: "other"})
	require.NoError(t, err)
	defer db.Close()

	assert.NoError(t, db.Migrate())
}

func TestWithTransaction(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Migrate())
	ctx := context.Background()

	err := WithTransaction(ctx, db.Conn(), func(tx *sql.Tx) error {
		_, err := tx.Exec("INSERT INTO regions (id, name) VALUES (1, 'Europe')")
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, 1, countRows(t, db, "regions"))

	boom := errors.New("boom")
	err = WithTransaction(ctx, db.Conn(), func(tx *sql.Tx) error {
		_, _ = tx.Exec("INSERT INTO regions (id, name) VALUES (2, 'Asia')")
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, countRows(t, db, "regions"), "failed transaction rolls back")

	err = WithTransaction(ctx, db.Conn(), func(tx *sql.Tx) error {
		_, _ = tx.Exec("INSERT INTO regions (id, name) VALUES (3, 'Oceania')")
		panic("unexpected")
	})
	assert.ErrorContains(t, err, "panic in transaction")
	assert.Equal(t, 1, countRows(t, db, "regions"))

	assert.Error(t, WithTransaction(ctx, nil, func(tx *sql.Tx) error { return nil }))
}

func TestQuickCheck(t *testing.T) {
	db := newTestDB(t)
	assert.NoError(t, db.QuickCheck(context.Background()))
	assert.Equal(t, "reference", db.Name())
	assert.True(t, filepath.IsAbs(db.Path()))
}
