package assetdb

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vmunix/substance/internal/migrations"
	_ "modernc.org/sqlite"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:?_foreign_keys=on")
	require.NoError(t, err, "open db")
	t.Cleanup(func() { _ = db.Close() })

	// One connection keeps every query on the same in-memory database.
	db.SetMaxOpenConns(1)

	_, err = db.Exec(migrations.InitialSQL)
	require.NoError(t, err, "apply schema")
	return db
}

// newTestAssetDB returns an asset database over a fresh project directory.
func newTestAssetDB(t *testing.T) (*DB, string) {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "Assets"), 0755))
	return New(root, setupTestDB(t), nil, nil), root
}

// writeAsset writes content at a virtual path under root.
func writeAsset(t *testing.T, root, virtual, content string) {
	t.Helper()
	abs := filepath.Join(root, filepath.FromSlash(virtual))
	require.NoError(t, os.MkdirAll(filepath.Dir(abs), 0755))
	require.NoError(t, os.WriteFile(abs, []byte(content), 0644))
}
