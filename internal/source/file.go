package source

import (
	"context"
	"os"

	"github.com/yigit/passboard/internal/app/models"
	"github.com/yigit/passboard/internal/pkg/apperrors"
)

// FileSource reads records from a JSON file
type FileSource struct {
	path string
}

// NewFileSource creates a FileSource for path
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Load implements Source.
func (s *FileSource) Load(ctx context.Context) ([]models.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, apperrors.NewSourceError(err, "failed to open "+s.path)
	}
	defer f.Close()

	return decodeRecords(f)
}
