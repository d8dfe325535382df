package source

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/passboard/internal/app/models"
	"github.com/yigit/passboard/internal/config"
	"github.com/yigit/passboard/internal/pkg/apperrors"
)

const dataset = `[
	{"Name of the teacher": "A", "Section": "CSE-1", "Academic Year": "2024-2025", "B. Tech. Year": 2, "Sem": 1, "% of Pass": 90},
	{"Name of the teacher": "B", "Section": "ECE", "Academic Year": "2023-2024", "B. Tech. Year": "3", "Sem": "2", "% of Pass": "72.5"}
]`

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "teacherData.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestFileSourceLoad(t *testing.T) {
	records, err := NewFileSource(writeFile(t, dataset)).Load(context.Background())

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "A", records[0].TeacherName.String())
	assert.Equal(t, "2", records[0].BTechYear.String())
	assert.Equal(t, "72.5", records[1].PassPercentage.String())
}

func TestFileSourceMissingFile(t *testing.T) {
	_, err := NewFileSource(filepath.Join(t.TempDir(), "missing.json")).Load(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrSourceUnavailable)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFileSourceMalformed(t *testing.T) {
	_, err := NewFileSource(writeFile(t, `{"not": "an array"}`)).Load(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrMalformedDataset)
}

func TestFileSourceKeepsRecordsWithNonNumericPercentage(t *testing.T) {
	content := `[
		{"Name of the teacher": "A", "Section": "CSE", "Academic Year": "2024-2025", "% of Pass": 90},
		{"Name of the teacher": "B", "Section": "ECE", "Academic Year": "2024-2025", "% of Pass": true}
	]`

	records, err := NewFileSource(writeFile(t, content)).Load(context.Background())

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "B", records[1].TeacherName.String())
	_, ok := records[1].PassPercent()
	assert.False(t, ok)
}

func TestFileSourceEmptyArray(t *testing.T) {
	records, err := NewFileSource(writeFile(t, `[]`)).Load(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestHTTPSourceLoad(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/teacherData.json", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(dataset))
	}))
	defer srv.Close()

	records, err := NewHTTPSource(srv.URL+"/teacherData.json", time.Second).Load(context.Background())

	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestHTTPSourceBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewHTTPSource(srv.URL, time.Second).Load(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrSourceUnavailable)
}

func TestHTTPSourceUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewHTTPSource(url, time.Second).Load(context.Background())

	assert.ErrorIs(t, err, apperrors.ErrSourceUnavailable)
}

type stubLister struct {
	records []models.Record
	err     error
}

func (s stubLister) ListAll(ctx context.Context) ([]models.Record, error) {
	return s.records, s.err
}

func TestPostgresSource(t *testing.T) {
	want := []models.Record{{AcademicYear: "2024-2025"}}
	got, err := NewPostgresSource(stubLister{records: want}).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = NewPostgresSource(stubLister{err: errors.New("boom")}).Load(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrSourceUnavailable)
}

func TestNew(t *testing.T) {
	cfg := &config.Config{}

	cfg.Source.Kind = "file"
	src, err := New(cfg)
	require.NoError(t, err)
	assert.IsType(t, &FileSource{}, src)

	cfg.Source.Kind = "HTTP"
	src, err = New(cfg)
	require.NoError(t, err)
	assert.IsType(t, &HTTPSource{}, src)

	cfg.Source.Kind = "postgres"
	src, err = New(cfg)
	require.NoError(t, err)
	assert.IsType(t, &PostgresDialer{}, src)

	cfg.Source.Kind = "ftp"
	_, err = New(cfg)
	assert.ErrorIs(t, err, apperrors.ErrInvalidSourceKind)
}
