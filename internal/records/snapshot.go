// Package records holds the read-only record collection loaded at startup.
package records

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/yigit/passboard/internal/app/models"
	"github.com/yigit/passboard/internal/filter"
	"github.com/yigit/passboard/internal/normalize"
	"github.com/yigit/passboard/internal/source"
)

// Snapshot is the record collection for one session. It is built once and
// never modified; share it by pointer.
type Snapshot struct {
	records []models.Record
}

// NewSnapshot derives a Snapshot from published records. Each derived record
// carries the normalized section in Section and the published label in
// RawSection. The input slice is not modified.
func NewSnapshot(published []models.Record, normalizer *normalize.Normalizer) *Snapshot {
	if normalizer == nil {
		normalizer = normalize.Default()
	}

	derived := make([]models.Record, len(published))
	for i, r := range published {
		r.RawSection = r.Section
		r.Section = normalizer.Normalize(r.Section)
		derived[i] = r
	}
	return &Snapshot{records: derived}
}

// Load fetches the collection from src. A failed fetch is logged and yields
// an empty Snapshot, so callers can always filter.
func Load(ctx context.Context, src source.Source, normalizer *normalize.Normalizer, lgr zerolog.Logger) *Snapshot {
	published, err := src.Load(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Error fetching teacher data")
		return NewSnapshot(nil, normalizer)
	}

	lgr.Debug().Int("count", len(published)).Msg("Data loaded")
	return NewSnapshot(published, normalizer)
}

// Records returns the records in published order. Callers must not modify
// the returned slice.
func (s *Snapshot) Records() []models.Record {
	return s.records
}

// Len returns the number of records
func (s *Snapshot) Len() int {
	return len(s.records)
}

// Options lists the selectable values for each filter control
type Options struct {
	AcademicYears []string `json:"academicYears"`
	RecentYears   []string `json:"recentYears"`
	Semesters     []string `json:"semesters"`
	Sections      []string `json:"sections"`
}

// Options returns the distinct non-empty academic years, semesters and
// sections in first-seen order.
func (s *Snapshot) Options() Options {
	opts := Options{
		AcademicYears: []string{},
		RecentYears:   append([]string(nil), filter.Sentinels...),
		Semesters:     []string{},
		Sections:      []string{},
	}

	years := make(map[string]struct{})
	semesters := make(map[string]struct{})
	sections := make(map[string]struct{})

	for _, r := range s.records {
		opts.AcademicYears = appendDistinct(opts.AcademicYears, years, r.AcademicYear)
		opts.Semesters = appendDistinct(opts.Semesters, semesters, r.Semester.String())
		opts.Sections = appendDistinct(opts.Sections, sections, r.Section)
	}

	return opts
}

func appendDistinct(list []string, seen map[string]struct{}, v string) []string {
	if v == "" {
		return list
	}
	if _, ok := seen[v]; ok {
		return list
	}
	seen[v] = struct{}{}
	return append(list, v)
}
