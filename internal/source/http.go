package source

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/yigit/passboard/internal/app/models"
	"github.com/yigit/passboard/internal/pkg/apperrors"
)

// HTTPSource fetches records from a URL serving a JSON array
type HTTPSource struct {
	url    string
	client *http.Client
}

// NewHTTPSource creates an HTTPSource. A zero timeout means no client timeout.
func NewHTTPSource(url string, timeout time.Duration) *HTTPSource {
	return &HTTPSource{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

// Load implements Source.
func (s *HTTPSource) Load(ctx context.Context) ([]models.Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, apperrors.NewSourceError(err, "invalid source URL")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, apperrors.NewSourceError(err, "failed to fetch "+s.url)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, apperrors.NewSourceError(
			fmt.Errorf("unexpected status %d", resp.StatusCode),
			"failed to fetch "+s.url,
		)
	}

	return decodeRecords(resp.Body)
}
