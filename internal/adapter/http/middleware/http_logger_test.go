package middleware_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Radithya02/Catering-Food/internal/adapter/http/middleware"
)

func testRouter(logBuf *bytes.Buffer, handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	l := slog.New(slog.NewJSONHandler(logBuf, nil))
	r := gin.New()
	r.Use(middleware.Logging(l))
	r.POST("/echo", handler)
	return r
}

func TestLoggingRedactsCredentials(t *testing.T) {
	var logBuf bytes.Buffer
	r := testRouter(&logBuf, func(c *gin.Context) { c.Status(http.StatusNoContent) })

	body := `{"username":"alice","password":"pw1"}`
	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	logged := logBuf.String()
	assert.Contains(t, logged, "alice")
	assert.Contains(t, logged, "***redacted***")
	assert.NotContains(t, logged, "pw1")
}

func TestLoggingRestoresFullBody(t *testing.T) {
	var seen []byte
	var logBuf bytes.Buffer
	r := testRouter(&logBuf, func(c *gin.Context) {
		b, err := io.ReadAll(c.Request.Body)
		require.NoError(t, err)
		seen = b
		c.Status(http.StatusNoContent)
	})

	t.Run("small body arrives intact", func(t *testing.T) {
		body := `{"note":"short"}`
		req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(httptest.NewRecorder(), req)

		assert.Equal(t, body, string(seen))
	})

	t.Run("body over the capture cap arrives intact", func(t *testing.T) {
		// well past the 8KB capture cap
		payload := map[string]string{"note": strings.Repeat("x", 32*1024), "password": "pw1"}
		body, err := json.Marshal(payload)
		require.NoError(t, err)

		logBuf.Reset()
		req := httptest.NewRequest(http.MethodPost, "/echo", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(httptest.NewRecorder(), req)

		assert.Equal(t, body, seen, "handler must receive every byte")
		assert.Contains(t, logBuf.String(), "req_body_truncated")
		assert.NotContains(t, logBuf.String(), "pw1", "partial bodies stay out of the log")
	})
}
