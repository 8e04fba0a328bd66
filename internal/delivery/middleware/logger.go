package middleware

import (
	"context"
	"log/slog"
	"time"

	"moa/config"
	deliverycontext "moa/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// LoggerMiddleware logs one line per handled request on the worker
// surface, where slog-echo is not installed. In debug mode it also
// includes the raw query string.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  config.Env.Debug,
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		status := c.Response().Status
		attrs := []slog.Attr{
			slog.String("request_id", deliverycontext.GetRequestID(c)),
			slog.String("method", c.Request().Method),
			slog.String("path", c.Request().URL.Path),
			slog.Int("status", status),
			slog.Duration("latency", time.Since(start)),
		}
		if m.debug && c.Request().URL.RawQuery != "" {
			attrs = append(attrs, slog.String("query", c.Request().URL.RawQuery))
		}
		if err != nil {
			attrs = append(attrs, slog.Any("error", err))
		}

		m.logger.LogAttrs(context.Background(), levelForStatus(status), "HTTP Request", attrs...)

		return err
	}
}

func levelForStatus(status int) slog.Level {
	switch {
	case status >= 500:
		return slog.LevelError
	case status >= 400:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
