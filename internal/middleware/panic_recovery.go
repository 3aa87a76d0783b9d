package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"bankoffice/internal/errors"

	"github.com/labstack/echo/v4"
)

// PanicRecovery converts a panic anywhere in the handler chain into the
// standard error envelope. A transfer that panics mid-request must still
// answer the client with a trace ID they can report.
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					respondToPanic(c, r)
				}
			}()

			return next(c)
		}
	}
}

func respondToPanic(c echo.Context, r interface{}) {
	traceID := GetTraceID(c)
	if traceID == "" {
		traceID = "unknown"
	}

	slog.Error("Panic recovered",
		"trace_id", traceID,
		"panic", fmt.Sprintf("%v", r),
		"stack_trace", string(debug.Stack()),
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
	)

	errorResponse := errors.NewErrorResponse(errors.SystemInternalError, traceID)

	if err := c.JSON(http.StatusInternalServerError, errorResponse); err != nil {
		slog.Error("Failed to send panic recovery response",
			"trace_id", traceID,
			"error", err.Error(),
		)
	}
}
