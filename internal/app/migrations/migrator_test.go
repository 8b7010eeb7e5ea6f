package migrations

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("SELECT 1;"), 0o600))
}

func TestListMigrations(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "002_app_state.sql")
	touch(t, dir, "001_identity.sql")
	touch(t, dir, "README.md")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "003_dir.sql"), 0o700))

	got, err := ListMigrations(dir)
	require.NoError(t, err)
	require.Equal(t, []Migration{
		{Version: "001", Path: filepath.Join(dir, "001_identity.sql")},
		{Version: "002", Path: filepath.Join(dir, "002_app_state.sql")},
	}, got)
}

func TestListMigrationsRejectsDuplicateVersion(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "001_a.sql")
	touch(t, dir, "001_b.sql")

	_, err := ListMigrations(dir)
	require.ErrorContains(t, err, "share version 001")
}

func TestShippedMigrationsAreOrdered(t *testing.T) {
	got, err := ListMigrations(filepath.Join("..", "..", "..", "migrations"))
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "001", got[0].Version)
	require.Equal(t, "002", got[1].Version)
}
