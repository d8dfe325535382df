package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/yigit/passboard/internal/app/models"
	"github.com/yigit/passboard/internal/source"
)

// RecordService publishes the record collection. It never filters: clients
// load the full collection and narrow it themselves.
type RecordService interface {
	GetAllRecords(ctx context.Context) ([]models.Record, error)
}

type recordService struct {
	src    source.Source
	logger zerolog.Logger
}

// NewRecordService creates a RecordService reading from src
func NewRecordService(src source.Source, lgr zerolog.Logger) RecordService {
	return &recordService{
		src:    src,
		logger: lgr,
	}
}

// GetAllRecords returns the full collection in published order
func (s *recordService) GetAllRecords(ctx context.Context) ([]models.Record, error) {
	records, err := s.src.Load(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to load records")
		return nil, fmt.Errorf("error retrieving records: %w", err)
	}
	if records == nil {
		records = []models.Record{}
	}
	return records, nil
}
