package seed

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/yigit/passboard/internal/app/models"
	"github.com/yigit/passboard/internal/source"
)

// RecordStore is the storage the seeder writes to
type RecordStore interface {
	Count(ctx context.Context) (int64, error)
	InsertAll(ctx context.Context, records []models.Record) (int64, error)
}

// ImportIfEmpty copies the records of src into store when store holds none.
// It returns the number of records written.
func ImportIfEmpty(ctx context.Context, store RecordStore, src source.Source, lgr zerolog.Logger) (int64, error) {
	count, err := store.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count stored records: %w", err)
	}
	if count > 0 {
		lgr.Info().Int64("count", count).Msg("Records already present, skipping seed")
		return 0, nil
	}

	records, err := src.Load(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load seed records: %w", err)
	}
	if len(records) == 0 {
		lgr.Warn().Msg("Seed source is empty, nothing imported")
		return 0, nil
	}

	written, err := store.InsertAll(ctx, records)
	if err != nil {
		return 0, fmt.Errorf("failed to import seed records: %w", err)
	}

	lgr.Info().Int64("count", written).Msg("Seed records imported")
	return written, nil
}
