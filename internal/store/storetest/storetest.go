// Package storetest opens throwaway SQLite-backed stores for tests.
package storetest

import (
	"context"
	"path/filepath"
	"testing"

	"geomate/backend/internal/database"
	"geomate/backend/internal/models"
	"geomate/backend/internal/store"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Open returns a migrated SQLite database in a temporary directory.
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := database.Open(sqlite.Open(filepath.Join(t.TempDir(), "geomate.db")))
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// One connection serialises transactions the way row locks do on PostgreSQL.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

// New returns a GormStore over a fresh database.
func New(t testing.TB) *store.GormStore {
	t.Helper()
	return store.NewGormStore(Open(t))
}

// SeedUsers creates a bare user for each name.
func SeedUsers(t testing.TB, s store.Store, names ...string) {
	t.Helper()
	for _, name := range names {
		user := &models.User{UserName: name, Password: "x", Name: name, Age: 30}
		require.NoError(t, s.Reader(context.Background()).CreateUser(user))
	}
}

// conflictStore runs every transaction to completion and then rolls it back
// as if the commit had lost a race.
type conflictStore struct {
	store.Store
}

// WriteConflicts wraps s so that every Atomically call rolls back and fails
// with store.ErrWriteConflict. Reader is passed through.
func WriteConflicts(s store.Store) store.Store {
	return conflictStore{Store: s}
}

func (s conflictStore) Atomically(ctx context.Context, fn func(tx store.Tx) error) error {
	return s.Store.Atomically(ctx, func(tx store.Tx) error {
		if err := fn(tx); err != nil {
			return err
		}
		return store.ErrWriteConflict
	})
}
