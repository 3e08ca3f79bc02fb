// Package logger is the process-wide structured logger used by every
// other package instead of the standard library's log package.
package logger

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

type requestIDKey struct{}
type correlationIDKey struct{}

var logger zerolog.Logger

// Init configures the global logger. LOG_LEVEL=debug switches to debug
// level; anything else defaults to info. LOG_FORMAT=json switches to a
// JSON writer for production; otherwise a human-readable console writer
// is used.
func Init() {
	level := zerolog.InfoLevel
	if os.Getenv("LOG_LEVEL") == "debug" {
		level = zerolog.DebugLevel
	}

	var writer io.Writer = zerolog.ConsoleWriter{Out: os.Stdout}
	if os.Getenv("LOG_FORMAT") == "json" {
		writer = os.Stdout
	}

	logger = zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

// WithRequestID attaches a per-request identifier to ctx.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// GetRequestID retrieves the request identifier previously attached to ctx.
func GetRequestID(ctx context.Context) string {
	if v, ok := ctx.Value(requestIDKey{}).(string); ok {
		return v
	}
	return ""
}

// WithCorrelationID attaches a cross-process correlation identifier to ctx,
// used to tie together every lifecycle event and log line for one pipeline
// run.
func WithCorrelationID(ctx context.Context, correlationID string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, correlationID)
}

// GetCorrelationID retrieves the correlation identifier previously attached
// to ctx.
func GetCorrelationID(ctx context.Context) string {
	if v, ok := ctx.Value(correlationIDKey{}).(string); ok {
		return v
	}
	return ""
}

func Info(msg string) { logger.Info().Msg(msg) }

func Infof(format string, v ...interface{}) { logger.Info().Msg(fmt.Sprintf(format, v...)) }

func Error(msg string) { logger.Error().Msg(msg) }

func Errorf(format string, v ...interface{}) { logger.Error().Msg(fmt.Sprintf(format, v...)) }

// ErrorWithErr logs msg with err attached, or as a plain error if err is nil.
func ErrorWithErr(err error, msg string) {
	if err != nil {
		logger.Error().Err(err).Msg(msg)
	} else {
		logger.Error().Msg(msg)
	}
}

func Debug(msg string) { logger.Debug().Msg(msg) }

func Debugf(format string, v ...interface{}) { logger.Debug().Msg(fmt.Sprintf(format, v...)) }

func Warn(msg string) { logger.Warn().Msg(msg) }

func Warnf(format string, v ...interface{}) { logger.Warn().Msg(fmt.Sprintf(format, v...)) }

func Fatal(msg string) { logger.Fatal().Msg(msg) }

// FatalWithErr logs msg with err attached and exits the process.
func FatalWithErr(err error, msg string) {
	if err != nil {
		logger.Fatal().Err(err).Msg(msg)
	} else {
		logger.Fatal().Msg(msg)
	}
}

// WithCtx returns a logger carrying whatever request/correlation IDs ctx holds.
func WithCtx(ctx context.Context) zerolog.Logger {
	l := logger
	if id := GetRequestID(ctx); id != "" {
		l = l.With().Str("request_id", id).Logger()
	}
	if id := GetCorrelationID(ctx); id != "" {
		l = l.With().Str("correlation_id", id).Logger()
	}
	return l
}
