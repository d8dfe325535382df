package migrations

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// Migrator applies versioned SQL files and records them in schema_migrations
type Migrator struct {
	db     *pgxpool.Pool
	logger zerolog.Logger
}

// NewMigrator creates a new migrator
func NewMigrator(db *pgxpool.Pool, lgr zerolog.Logger) *Migrator {
	return &Migrator{
		db:     db,
		logger: lgr,
	}
}

func (m *Migrator) ensureMigrationTableExists(ctx context.Context) error {
	createTableSQL := `
	CREATE TABLE IF NOT EXISTS schema_migrations (
		version VARCHAR(255) PRIMARY KEY,
		applied_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);`

	if _, err := m.db.Exec(ctx, createTableSQL); err != nil {
		return fmt.Errorf("failed to create migration tracking table: %w", err)
	}
	return nil
}

func (m *Migrator) isMigrationApplied(ctx context.Context, version string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1);`
	if err := m.db.QueryRow(ctx, query, version).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check migration status: %w", err)
	}
	return exists, nil
}

// VersionOf extracts the version prefix of a migration file name,
// e.g. "001_teacher_performance.sql" => "001"
func VersionOf(filePath string) string {
	return strings.Split(filepath.Base(filePath), "_")[0]
}

// MigrateFromFile applies one SQL file inside a transaction unless its version
// is already recorded
func (m *Migrator) MigrateFromFile(ctx context.Context, filePath string) error {
	if err := m.ensureMigrationTableExists(ctx); err != nil {
		return err
	}

	version := VersionOf(filePath)

	applied, err := m.isMigrationApplied(ctx, version)
	if err != nil {
		return err
	}
	if applied {
		m.logger.Debug().Str("file", filepath.Base(filePath)).Msg("Migration already applied, skipping")
		return nil
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read migration file: %w", err)
	}

	tx, err := m.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, string(content)); err != nil {
		return fmt.Errorf("error occurred during SQL migration execution: %w", err)
	}

	if _, err := tx.Exec(ctx, `INSERT INTO schema_migrations (version, applied_at) VALUES ($1, $2)`,
		version, time.Now()); err != nil {
		return fmt.Errorf("failed to record migration: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	m.logger.Info().Str("file", filePath).Msg("Migration applied")
	return nil
}

// PendingFiles lists the .sql files of dirPath in application order
func PendingFiles(dirPath string) ([]string, error) {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read migration directory: %w", err)
	}

	var sqlFiles []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".sql") {
			sqlFiles = append(sqlFiles, filepath.Join(dirPath, e.Name()))
		}
	}
	sort.Strings(sqlFiles)
	return sqlFiles, nil
}

// MigrateFromDirectory applies every SQL file in dirPath in name order
func (m *Migrator) MigrateFromDirectory(ctx context.Context, dirPath string) error {
	files, err := PendingFiles(dirPath)
	if err != nil {
		return err
	}

	for _, file := range files {
		if err := m.MigrateFromFile(ctx, file); err != nil {
			return err
		}
	}
	return nil
}
