package monitoring

import (
	"log/slog"
	"os"
	"time"
)

// Logger provides enhanced structured logging with context.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new enhanced logger.
func NewLogger() *Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Add timestamp in RFC3339 format
			if a.Key == slog.TimeKey {
				return slog.Attr{
					Key:   "timestamp",
					Value: slog.StringValue(a.Value.Time().Format(time.RFC3339)),
				}
			}
			return a
		},
	})

	return &Logger{
		Logger: slog.New(handler),
	}
}

// RequestLogger logs HTTP request details.
func (l *Logger) RequestLogger(method, path, ip, userAgent string, statusCode int, duration time.Duration) {
	l.Info("HTTP Request",
		"method", method,
		"path", path,
		"ip", ip,
		"user_agent", userAgent,
		"status_code", statusCode,
		"duration_ms", duration.Milliseconds(),
	)
}

// PipelineLogger logs one recommendation pipeline run.
func (l *Logger) PipelineLogger(genre string, catalogSize, recommended int, precision float64, duration time.Duration, cacheHit bool) {
	l.Info("Pipeline Completed",
		"genre", genre,
		"catalog_size", catalogSize,
		"recommended", recommended,
		"precision", precision,
		"duration_ms", duration.Milliseconds(),
		"cache_hit", cacheHit,
	)
}

// CatalogLogger logs catalog loading details.
func (l *Logger) CatalogLogger(path string, records int, duration time.Duration) {
	l.Info("Catalog Loaded",
		"path", path,
		"records", records,
		"duration_ms", duration.Milliseconds(),
	)
}

// APIErrorLogger logs API errors with context.
func (l *Logger) APIErrorLogger(err error, method, path, ip string, statusCode int) {
	l.Error("API Error",
		"error", err.Error(),
		"method", method,
		"path", path,
		"ip", ip,
		"status_code", statusCode,
	)
}

// PerformanceLogger logs performance measurements.
func (l *Logger) PerformanceLogger(metric string, value float64, unit string) {
	l.Warn("Performance Metric",
		"metric", metric,
		"value", value,
		"unit", unit,
	)
}

// SystemLogger logs notable system events.
func (l *Logger) SystemLogger(event, details string) {
	l.Warn("System Event",
		"event", event,
		"details", details,
	)
}
