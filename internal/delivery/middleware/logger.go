package middleware

import (
	"context"
	"log/slog"
	"time"

	"familytree/config"
	deliverycontext "familytree/internal/delivery/context"
	"familytree/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// LoggerMiddleware logs served requests and reports them to the metrics backend.
// Successful requests are only logged in debug mode.
type LoggerMiddleware struct {
	logger  *slog.Logger
	metrics service.GraphMetrics
	debug   bool
	now     func() time.Time
}

// NewLoggerMiddleware creates a new logger middleware. metrics may be nil.
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config, metrics service.GraphMetrics) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger:  logger,
		metrics: metrics,
		debug:   config.Env.Debug,
		now:     time.Now,
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := m.now()
		err := next(c)
		if err != nil {
			// Let the error handler write the response so the status is final.
			c.Error(err)
		}

		latency := m.now().Sub(start)
		status := c.Response().Status
		if m.metrics != nil {
			m.metrics.ObserveHTTPRequest(c.Request().Method, c.Path(), status, latency)
		}
		if m.debug || status >= 400 {
			m.logRequest(c, start, latency, err)
		}

		return nil
	}
}

func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, latency time.Duration, err error) {
	req := c.Request()
	res := c.Response()

	fields := []slog.Attr{
		slog.String("request_id", deliverycontext.GetRequestID(c)),
		slog.String("method", req.Method),
		slog.String("uri", req.URL.Path),
		slog.String("route", c.Path()),
		slog.Int("status", res.Status),
		slog.Duration("latency", latency),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
		slog.String("time", start.Format(time.RFC3339)),
	}
	if len(req.URL.RawQuery) > 0 {
		fields = append(fields, slog.String("query", req.URL.RawQuery))
	}
	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	logLevel := slog.LevelInfo
	if res.Status >= 400 {
		logLevel = slog.LevelWarn
	}
	if res.Status >= 500 {
		logLevel = slog.LevelError
	}

	m.logger.LogAttrs(context.Background(), logLevel, "HTTP Request", fields...)
}
