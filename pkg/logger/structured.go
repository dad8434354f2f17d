package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var zlog zerolog.Logger

// InitStructured configures the process logger. Development environments
// get a human-readable console writer at debug level; everything else
// emits JSON at info level for log shipping.
func InitStructured(env string) {
	zerolog.TimeFieldFormat = time.RFC3339

	level := zerolog.InfoLevel
	var out io.Writer = os.Stdout
	switch env {
	case "local", "dev", "development":
		level = zerolog.DebugLevel
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}

	zlog = zerolog.New(out).Level(level).With().
		Timestamp().
		Str("service", "dealflow-backend").
		Logger()
}

// GetLogger returns the global zerolog logger
func GetLogger() *zerolog.Logger {
	return &zlog
}

// WithRequestID returns a logger with request_id field
func WithRequestID(requestID string) zerolog.Logger {
	return zlog.With().Str("request_id", requestID).Logger()
}

// WithUserID returns a logger with user_id field
func WithUserID(userID uint) zerolog.Logger {
	return zlog.With().Uint("user_id", userID).Logger()
}
