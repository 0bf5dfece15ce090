package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

type loggerCtxKey struct{}

// createLogger builds the diagnostics logger. Both configurations write to
// stderr; without debug only errors are emitted.
func createLogger(debug bool) (*zap.Logger, error) {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	return logger.Named(appName), nil
}

func withLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerCtxKey{}, logger)
}

func tryLogger(ctx context.Context) *zap.Logger {
	logger, ok := ctx.Value(loggerCtxKey{}).(*zap.Logger)
	if !ok {
		return nil
	}
	return logger
}

// getLogger returns the context logger, or a no-op logger when none is set.
func getLogger(ctx context.Context) *zap.Logger {
	if logger := tryLogger(ctx); logger != nil {
		return logger
	}
	return zap.NewNop()
}
