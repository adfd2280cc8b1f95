package domain

import (
	"context"
	"time"
)

//go:generate go tool counterfeiter -generate

// RateLimiter limits how often commands are accepted
//
//counterfeiter:generate -o ../../tests/mocks/domain/fake_rate_limiter.go . RateLimiter
type RateLimiter interface {
	CheckAndRecord(action string) error
	GetCurrentCount() int
	Reset()
}

// Focuser makes sure the target application window is ready for input.
// Failures are reported in the result, never as a panic or error.
//
//counterfeiter:generate -o ../../tests/mocks/domain/fake_focuser.go . Focuser
type Focuser interface {
	Focus(ctx context.Context) FocusResult
}

// Interpreter turns a prompt into drawing actions and returns a status line
//
//counterfeiter:generate -o ../../tests/mocks/domain/fake_interpreter.go . Interpreter
type Interpreter interface {
	Execute(ctx context.Context, sessionID, prompt string) (string, error)
}

// Launcher starts the target application
//
//counterfeiter:generate -o ../../tests/mocks/domain/fake_launcher.go . Launcher
type Launcher interface {
	Launch(ctx context.Context, argv []string) error
}

// Sleeper pauses between logical drawing elements
//
//counterfeiter:generate -o ../../tests/mocks/domain/fake_sleeper.go . Sleeper
type Sleeper interface {
	Sleep(d time.Duration)
}

// RealSleeper sleeps on the wall clock
type RealSleeper struct{}

// Sleep blocks for d
func (RealSleeper) Sleep(d time.Duration) {
	if d > 0 {
		time.Sleep(d)
	}
}

// NopSleeper never blocks
type NopSleeper struct{}

// Sleep returns immediately
func (NopSleeper) Sleep(time.Duration) {}
