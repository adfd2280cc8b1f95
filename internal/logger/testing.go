package logger

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// TestLogger creates a logger that captures logs for assertions
func TestLogger() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zap.DebugLevel)
	return zap.New(core), logs
}

// TestContext creates a context carrying a test logger
func TestContext() (context.Context, *observer.ObservedLogs) {
	l, logs := TestLogger()
	return ContextWithLogger(context.Background(), l), logs
}

// Observe installs an observed logger as the global package logger and
// returns the captured entries. The previous logger is restored by the
// returned function.
func Observe() (*observer.ObservedLogs, func()) {
	l, logs := TestLogger()

	mu.Lock()
	prev := logger
	logger = l.Sugar()
	mu.Unlock()

	return logs, func() {
		mu.Lock()
		logger = prev
		mu.Unlock()
	}
}
