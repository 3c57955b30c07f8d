// Package logging configures logrus and carries request-scoped loggers
// through context.
package logging

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

type ctxKeyLog struct{}

// New builds a logger writing to out. format is "text" or "json".
func New(out io.Writer, level string, format string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}

	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(lvl)
	switch strings.ToLower(format) {
	case "", "text":
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("logging: unknown format %q", format)
	}
	return logger, nil
}

// WithLogger returns a context carrying log.
func WithLogger(ctx context.Context, log logrus.FieldLogger) context.Context {
	return context.WithValue(ctx, ctxKeyLog{}, log)
}

// FromContext returns the logger stored in ctx, or the standard logger.
func FromContext(ctx context.Context) logrus.FieldLogger {
	if ctx != nil {
		if log, ok := ctx.Value(ctxKeyLog{}).(logrus.FieldLogger); ok && log != nil {
			return log
		}
	}
	return logrus.StandardLogger()
}

// Discard returns a logger that drops everything. Handy in tests.
func Discard() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
