package http

import (
	"errors"
	"net/http"
	"strings"

	"deliverycost/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusFor maps a use case error onto an HTTP status code.
func statusFor(err error) int {
	switch {
	case errs.IsInvalidInput(err):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrCurrencyMismatch):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func errorJSON(c echo.Context, status int, message string) error {
	return c.JSON(status, Error{Code: status, Message: message})
}

// ErrorHandler renders every unhandled error as an Error body.
// Internal failures never expose their message.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := http.StatusText(status)

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		status = httpErr.Code
		if m, ok := httpErr.Message.(string); ok {
			message = m
		} else {
			message = http.StatusText(status)
		}
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(status)
		return
	}
	_ = errorJSON(c, status, message)
}

// oneLine joins multi-line validation messages.
func oneLine(message string) string {
	return strings.Join(strings.Fields(message), " ")
}
