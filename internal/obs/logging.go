// Package obs wires structured logging and Prometheus metrics around the pricing
// service.
package obs

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// NewLogger configures a zerolog logger using the provided format and level.
// Format "console" or "text" selects human readable output; anything else is JSON.
// Unknown levels fall back to info. A nil writer means stdout.
func NewLogger(format, level string, w io.Writer) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	if w == nil {
		w = os.Stdout
	}
	out := w
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "console", "text":
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}

// RequestLogger records one structured log line per HTTP request handled by echo.
func RequestLogger(logger zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()
			route := c.Path()
			if route == "" {
				route = req.URL.Path
			}
			reqID := res.Header().Get(echo.HeaderXRequestID)
			if reqID == "" {
				reqID = req.Header.Get(echo.HeaderXRequestID)
			}

			evt := logger.Info()
			if res.Status >= 500 {
				evt = logger.Error()
			}
			evt = evt.
				Str("method", req.Method).
				Str("route", route).
				Str("path", req.URL.Path).
				Int("status", res.Status).
				Int64("duration_ms", time.Since(start).Milliseconds()).
				Int64("bytes", res.Size).
				Str("request_id", reqID)
			if ip := strings.TrimSpace(c.RealIP()); ip != "" {
				evt = evt.Str("remote_addr", ip)
			}
			if ua := strings.TrimSpace(req.UserAgent()); ua != "" {
				evt = evt.Str("user_agent", ua)
			}
			evt.Msg("http_request")

			return nil
		}
	}
}
