package migrations

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/yigit/campushub/internal/db"
)

const createVersionTable = `
CREATE TABLE IF NOT EXISTS schema_migrations (
	version VARCHAR(255) PRIMARY KEY,
	applied_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);`

// Migration is one SQL file; Version is the name prefix before the first
// underscore ("001" for 001_identity.sql).
type Migration struct {
	Version string
	Path    string
}

// Migrator applies the SQL files of the identity schema in order
type Migrator struct {
	db     *db.PostgresDB
	logger zerolog.Logger
}

// NewMigrator creates a new migrator
func NewMigrator(database *db.PostgresDB, lgr zerolog.Logger) *Migrator {
	return &Migrator{
		db:     database,
		logger: lgr.With().Str("component", "migrator").Logger(),
	}
}

// ListMigrations returns the .sql files of dir sorted by name. Two files
// sharing a version are rejected.
func ListMigrations(dir string) ([]Migration, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read migration directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".sql") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	seen := make(map[string]string, len(names))
	out := make([]Migration, 0, len(names))
	for _, name := range names {
		version, _, _ := strings.Cut(name, "_")
		if prev, dup := seen[version]; dup {
			return nil, fmt.Errorf("migrations %s and %s share version %s", prev, name, version)
		}
		seen[version] = name
		out = append(out, Migration{Version: version, Path: filepath.Join(dir, name)})
	}
	return out, nil
}

func (m *Migrator) appliedVersions(ctx context.Context) (map[string]bool, error) {
	if _, err := m.db.Pool.Exec(ctx, createVersionTable); err != nil {
		return nil, fmt.Errorf("failed to create migration tracking table: %w", err)
	}

	rows, err := m.db.Pool.Query(ctx, `SELECT version FROM schema_migrations`)
	if err != nil {
		return nil, fmt.Errorf("failed to read applied migrations: %w", err)
	}
	versions, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("failed to read applied migrations: %w", err)
	}

	applied := make(map[string]bool, len(versions))
	for _, v := range versions {
		applied[v] = true
	}
	return applied, nil
}

func (m *Migrator) apply(ctx context.Context, mig Migration) error {
	content, err := os.ReadFile(mig.Path)
	if err != nil {
		return fmt.Errorf("failed to read migration file: %w", err)
	}

	return m.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, string(content)); err != nil {
			return fmt.Errorf("migration %s failed: %w", filepath.Base(mig.Path), err)
		}
		if _, err := tx.Exec(ctx, `INSERT INTO schema_migrations (version) VALUES ($1)`, mig.Version); err != nil {
			return fmt.Errorf("failed to record migration %s: %w", mig.Version, err)
		}
		return nil
	})
}

// MigrateFromDirectory applies every migration in dir that has not been
// recorded yet. Each file runs in its own transaction.
func (m *Migrator) MigrateFromDirectory(ctx context.Context, dir string) error {
	migrations, err := ListMigrations(dir)
	if err != nil {
		return err
	}
	applied, err := m.appliedVersions(ctx)
	if err != nil {
		return err
	}

	for _, mig := range migrations {
		if applied[mig.Version] {
			m.logger.Debug().Str("version", mig.Version).Msg("Migration already applied, skipping")
			continue
		}
		if err := m.apply(ctx, mig); err != nil {
			return err
		}
		m.logger.Info().Str("file", filepath.Base(mig.Path)).Msg("Migration applied")
	}
	return nil
}
