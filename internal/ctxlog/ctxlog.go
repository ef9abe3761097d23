// Package ctxlog provides context-aware structured logging utilities.
package ctxlog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

type Config struct {
	Dir    string `yaml:"dir"`
	Level  string `yaml:"level"`
	Stderr bool   `yaml:"stderr"`
}

// Setup installs the default logger described by config and stores it in ctx.
// Logs never go to stdout, which belongs to the interactive session. With no
// Dir and no Stderr, everything is discarded.
// The returned closer flushes and closes the log file, if any.
func Setup(ctx context.Context, name string, config Config) (context.Context, io.Closer, error) {
	level, err := ParseLevel(config.Level)
	if err != nil {
		return nil, nil, err
	}

	var writers []io.Writer
	closer := io.Closer(nopCloser{})

	if config.Dir != "" {
		err := os.MkdirAll(config.Dir, 0755)
		if err != nil {
			return nil, nil, fmt.Errorf("ctxlog: create log dir: %w", err)
		}

		logFile, err := os.Create(filepath.Join(config.Dir, time.Now().Format("2006-01-02-15-04-05.log")))
		if err != nil {
			return nil, nil, fmt.Errorf("ctxlog: create log file: %w", err)
		}
		writers = append(writers, logFile)
		closer = logFile
	}
	if config.Stderr {
		writers = append(writers, os.Stderr)
	}

	w := io.Discard
	if len(writers) > 0 {
		w = io.MultiWriter(writers...)
	}

	logger := New(w, level).With("app", name)
	slog.SetDefault(logger)

	return Store(ctx, logger), closer, nil
}

// ParseLevel accepts slog level names such as "debug" or "warn+2".
// An empty string is info.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if s == "" {
		return level, nil
	}
	err := level.UnmarshalText([]byte(s))
	if err != nil {
		return 0, fmt.Errorf("ctxlog: log level: %w", err)
	}
	return level, nil
}

// New returns a JSON logger writing to w.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

type ctxKey struct{}

var key ctxKey

func Store(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, key, log)
}

func Get(ctx context.Context) *slog.Logger {
	log, ok := ctx.Value(key).(*slog.Logger)
	if !ok {
		return slog.Default()
	}
	return log
}

func Close(ctx context.Context, name string, closer io.Closer) error {
	logger := Get(ctx)
	err := closer.Close()
	if err != nil {
		logger.Error("failed to close", "closer", name, "error", err)
		return err
	}
	return nil
}

func With(ctx context.Context, kv ...any) context.Context {
	return Store(ctx, Get(ctx).With(kv...))
}
