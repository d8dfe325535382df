package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/passboard/internal/app/models"
	"github.com/yigit/passboard/internal/filter"
	"github.com/yigit/passboard/internal/normalize"
	"github.com/yigit/passboard/internal/records"
	"github.com/yigit/passboard/internal/render"
)

func testSnapshot() (*records.Snapshot, *normalize.Normalizer) {
	n := normalize.Default()
	published := []models.Record{
		{TeacherName: models.Text("Dr. Rao"), Section: "ECE - 1", SubjectName: models.Text("Signals"), AcademicYear: "2024-2025", BTechYear: models.Text("2"), Semester: models.Text("1"), PassPercentage: models.Text("91.5")},
		{TeacherName: models.Text("Ms. Devi"), Section: "CSE", SubjectName: models.Text("Compilers"), AcademicYear: "2022-2023", BTechYear: models.Text("3"), Semester: models.Text("2"), PassPercentage: models.Text("64")},
	}
	return records.NewSnapshot(published, n), n
}

func testEngine(n *normalize.Normalizer) *filter.Engine {
	fixed := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	return filter.NewEngine(n, filter.WithClock(func() time.Time { return fixed }))
}

func TestRunFilterText(t *testing.T) {
	lgr = zerolog.Nop()
	snapshot, n := testSnapshot()
	var out bytes.Buffer

	err := runFilter(&out, snapshot, testEngine(n), filterFlags{department: "ECE", format: "text"})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Dr. Rao")
	assert.Contains(t, out.String(), "91.50%")
	assert.NotContains(t, out.String(), "Ms. Devi")
}

func TestRunFilterJSON(t *testing.T) {
	lgr = zerolog.Nop()
	snapshot, n := testSnapshot()
	var out bytes.Buffer

	err := runFilter(&out, snapshot, testEngine(n), filterFlags{passComparison: "lessEqual", passPercentage: "70", format: "json"})
	require.NoError(t, err)

	var result struct {
		Rows []render.Row `json:"rows"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	require.Len(t, result.Rows, 1)
	assert.Equal(t, 1, result.Rows[0].Index)
	assert.Equal(t, "Ms. Devi", result.Rows[0].TeacherName)
}

func TestRunFilterNoResults(t *testing.T) {
	lgr = zerolog.Nop()
	snapshot, n := testSnapshot()
	var out bytes.Buffer

	err := runFilter(&out, snapshot, testEngine(n), filterFlags{academicYear: "1999-2000", format: "text"})

	require.NoError(t, err)
	assert.Contains(t, out.String(), render.NoResults)
}

func TestRunOptions(t *testing.T) {
	snapshot, _ := testSnapshot()

	var text bytes.Buffer
	require.NoError(t, runOptions(&text, snapshot.Options(), "text"))
	assert.Contains(t, text.String(), "Academic years: 2024-2025, 2022-2023")
	assert.Contains(t, text.String(), "Last N years:   3, 5")

	var out bytes.Buffer
	require.NoError(t, runOptions(&out, snapshot.Options(), "json"))
	var opts records.Options
	require.NoError(t, json.Unmarshal(out.Bytes(), &opts))
	assert.Equal(t, []string{"1", "2"}, opts.Semesters)
}

func TestWithSourceTimeout(t *testing.T) {
	ctx, cancel := withSourceTimeout(context.Background(), 250*time.Millisecond)
	defer cancel()
	deadline, ok := ctx.Deadline()
	require.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(250*time.Millisecond), deadline, 200*time.Millisecond)

	ctx, cancel = withSourceTimeout(context.Background(), 0)
	defer cancel()
	_, ok = ctx.Deadline()
	assert.False(t, ok)
}
