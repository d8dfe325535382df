package source

import (
	"context"

	"github.com/yigit/passboard/internal/app/models"
	"github.com/yigit/passboard/internal/app/repositories"
	"github.com/yigit/passboard/internal/config"
	"github.com/yigit/passboard/internal/db"
	"github.com/yigit/passboard/internal/pkg/apperrors"
)

// RecordLister lists stored records in insertion order
type RecordLister interface {
	ListAll(ctx context.Context) ([]models.Record, error)
}

// PostgresSource reads records through an existing repository
type PostgresSource struct {
	repo RecordLister
}

// NewPostgresSource creates a PostgresSource over repo
func NewPostgresSource(repo RecordLister) *PostgresSource {
	return &PostgresSource{repo: repo}
}

// Load implements Source.
func (s *PostgresSource) Load(ctx context.Context) ([]models.Record, error) {
	records, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, apperrors.NewSourceError(err, "failed to read records from database")
	}
	return records, nil
}

// PostgresDialer opens a connection pool for each Load and closes it
// afterwards. It suits one-shot clients that read the dataset once.
type PostgresDialer struct {
	cfg *config.Config
}

// NewPostgresDialer creates a PostgresDialer for the configured database
func NewPostgresDialer(cfg *config.Config) *PostgresDialer {
	return &PostgresDialer{cfg: cfg}
}

// Load implements Source.
func (d *PostgresDialer) Load(ctx context.Context) ([]models.Record, error) {
	database, err := db.NewPostgresDB(ctx, d.cfg)
	if err != nil {
		return nil, apperrors.NewSourceError(err, "failed to connect to database")
	}
	defer database.Close()

	return NewPostgresSource(repositories.NewRecordRepository(database.Pool)).Load(ctx)
}
