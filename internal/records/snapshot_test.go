package records

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/passboard/internal/app/models"
	"github.com/yigit/passboard/internal/filter"
	"github.com/yigit/passboard/internal/normalize"
)

type stubSource struct {
	records []models.Record
	err     error
}

func (s stubSource) Load(ctx context.Context) ([]models.Record, error) {
	return s.records, s.err
}

func published() []models.Record {
	return []models.Record{
		{Section: "cse - 1", AcademicYear: "2024-2025", Semester: models.Text("1")},
		{Section: "AI&ML", AcademicYear: "2023-2024", Semester: models.Text("2")},
		{Section: "CSE-1", AcademicYear: "2024-2025", Semester: models.Text("1")},
		{Section: "", AcademicYear: "", Semester: models.Field{}},
		{Section: "ce", AcademicYear: "2022-2023", Semester: models.Text("2")},
	}
}

func TestNewSnapshotNormalizesSections(t *testing.T) {
	input := published()

	snap := NewSnapshot(input, normalize.Default())

	require.Equal(t, len(input), snap.Len())
	got := snap.Records()
	assert.Equal(t, "CSE-1", got[0].Section)
	assert.Equal(t, "cse - 1", got[0].RawSection)
	assert.Equal(t, "AIML", got[1].Section)
	assert.Equal(t, "CIVIL", got[4].Section)
	assert.Equal(t, "ce", got[4].RawSection)

	// the published records are left as they were
	assert.Equal(t, published(), input)
}

func TestLoadFailureYieldsEmptySnapshot(t *testing.T) {
	src := stubSource{err: errors.New("connection refused")}

	snap := Load(context.Background(), src, nil, zerolog.Nop())

	require.NotNil(t, snap)
	assert.Equal(t, 0, snap.Len())
	assert.Empty(t, filter.NewEngine(nil).Apply(snap.Records(), filter.Criteria{}))
}

func TestLoad(t *testing.T) {
	snap := Load(context.Background(), stubSource{records: published()}, nil, zerolog.Nop())
	assert.Equal(t, 5, snap.Len())
}

func TestOptions(t *testing.T) {
	opts := NewSnapshot(published(), nil).Options()

	assert.Equal(t, []string{"2024-2025", "2023-2024", "2022-2023"}, opts.AcademicYears)
	assert.Equal(t, []string{"1", "2"}, opts.Semesters)
	assert.Equal(t, []string{"CSE-1", "AIML", "CIVIL"}, opts.Sections)
	assert.Equal(t, []string{"3", "5"}, opts.RecentYears)
}

func TestOptionsEmpty(t *testing.T) {
	opts := NewSnapshot(nil, nil).Options()

	assert.Empty(t, opts.AcademicYears)
	assert.NotNil(t, opts.Sections)
	assert.Equal(t, []string{"3", "5"}, opts.RecentYears)
}
