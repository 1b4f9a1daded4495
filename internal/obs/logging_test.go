package obs_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"deliverycost/internal/obs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	t.Run("json output honours the level", func(t *testing.T) {
		var buf bytes.Buffer
		logger := obs.NewLogger("json", "warn", &buf)

		logger.Info().Msg("hidden")
		logger.Warn().Str("k", "v").Msg("shown")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "warn", entry["level"])
		assert.Equal(t, "shown", entry["message"])
		assert.Equal(t, "v", entry["k"])
		assert.NotContains(t, buf.String(), "hidden")
	})

	t.Run("unknown level falls back to info", func(t *testing.T) {
		var buf bytes.Buffer
		logger := obs.NewLogger("json", "loud", &buf)

		logger.Debug().Msg("hidden")
		logger.Info().Msg("shown")

		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "shown")
	})

	t.Run("console output is not JSON", func(t *testing.T) {
		var buf bytes.Buffer
		logger := obs.NewLogger("console", "info", &buf)

		logger.Info().Msg("hello")

		assert.Contains(t, buf.String(), "hello")
		assert.False(t, json.Valid(buf.Bytes()))
	})
}

func TestRequestLogger(t *testing.T) {
	// Given
	var buf bytes.Buffer
	e := echo.New()
	e.Use(obs.RequestLogger(obs.NewLogger("json", "info", &buf)))
	e.GET("/items/:id", func(c echo.Context) error {
		return c.String(http.StatusTeapot, "short and stout")
	})

	req := httptest.NewRequest(http.MethodGet, "/items/7", nil)
	req.Header.Set(echo.HeaderXRequestID, "req-1")
	rec := httptest.NewRecorder()

	// When
	e.ServeHTTP(rec, req)

	// Then
	assert.Equal(t, http.StatusTeapot, rec.Code)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "http_request", entry["message"])
	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "/items/:id", entry["route"])
	assert.Equal(t, "/items/7", entry["path"])
	assert.EqualValues(t, http.StatusTeapot, entry["status"])
	assert.Equal(t, "req-1", entry["request_id"])
}

func TestRequestLogger_HandlerError(t *testing.T) {
	var buf bytes.Buffer
	e := echo.New()
	e.Use(obs.RequestLogger(obs.NewLogger("json", "info", &buf)))
	e.GET("/fail", func(echo.Context) error {
		return echo.NewHTTPError(http.StatusInternalServerError, "boom")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fail", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.EqualValues(t, http.StatusInternalServerError, entry["status"])
}
