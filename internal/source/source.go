// Package source loads the record collection from the configured data source.
package source

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"

	"github.com/yigit/passboard/internal/app/models"
	"github.com/yigit/passboard/internal/config"
	"github.com/yigit/passboard/internal/pkg/apperrors"
)

// Source returns the full record collection in its published order
type Source interface {
	Load(ctx context.Context) ([]models.Record, error)
}

// Kinds of data source selectable in configuration
const (
	KindFile     = "file"
	KindHTTP     = "http"
	KindPostgres = "postgres"
)

// New returns the Source selected by cfg.Source.Kind.
func New(cfg *config.Config) (Source, error) {
	switch strings.ToLower(cfg.Source.Kind) {
	case KindFile:
		return NewFileSource(cfg.Source.Path), nil
	case KindHTTP:
		return NewHTTPSource(cfg.Source.URL, cfg.Source.Timeout), nil
	case KindPostgres:
		return NewPostgresDialer(cfg), nil
	default:
		return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidSourceKind, cfg.Source.Kind)
	}
}

// decodeRecords reads a JSON array of records
func decodeRecords(r io.Reader) ([]models.Record, error) {
	var records []models.Record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, apperrors.NewMalformedDatasetError(err, "failed to decode records")
	}
	if records == nil {
		records = []models.Record{}
	}
	return records, nil
}
