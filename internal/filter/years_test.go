package filter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/yigit/passboard/internal/app/models"
)

func yearRecords(years ...string) []models.Record {
	records := make([]models.Record, len(years))
	for i, y := range years {
		records[i] = models.Record{AcademicYear: y}
	}
	return records
}

func TestLastNYears(t *testing.T) {
	now := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	records := yearRecords(
		"2019-2020",
		"2021-2022",
		"2022-2023",
		"2022-2023",
		"2024-2025",
		"202A-2025",
		"2023",
		"",
	)

	got := LastNYears(records, 3, now)

	assert.Equal(t, map[string]struct{}{
		"2022-2023": {},
		"2024-2025": {},
	}, got)
}

func TestLastNYearsFive(t *testing.T) {
	now := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	records := yearRecords("2019-2020", "2020-2021", "2021-2022")

	got := LastNYears(records, 5, now)

	assert.Len(t, got, 2)
	assert.Contains(t, got, "2020-2021")
	assert.Contains(t, got, "2021-2022")
	assert.NotContains(t, got, "2019-2020")
}

func TestLastNYearsEmpty(t *testing.T) {
	got := LastNYears(nil, 3, time.Now())
	assert.Empty(t, got)
}

func TestStartYear(t *testing.T) {
	tests := []struct {
		input  string
		want   int
		wantOK bool
	}{
		{"2023-2024", 2023, true},
		{" 2023 -2024", 2023, true},
		{"2023-", 2023, true},
		{"202A-2025", 0, false},
		{"2023", 0, false},
		{"-2024", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		got, ok := StartYear(tt.input)
		assert.Equal(t, tt.wantOK, ok, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}
