package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(buf *bytes.Buffer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestLogger(zerolog.New(buf)))
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("requestID"))
	})
	return r
}

func TestRequestLoggerGeneratesID(t *testing.T) {
	var buf bytes.Buffer
	w := httptest.NewRecorder()
	newTestRouter(&buf).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	id := w.Header().Get(RequestIDHeader)
	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, id, w.Body.String())
	assert.Contains(t, buf.String(), id)
	assert.Contains(t, buf.String(), `"path":"/ping"`)
}

func TestRequestLoggerKeepsIncomingID(t *testing.T) {
	var buf bytes.Buffer
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()

	newTestRouter(&buf).ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
	assert.Equal(t, "abc-123", w.Body.String())
}
