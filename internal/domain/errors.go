package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrWindowNotFound is returned when no window matches the target titles
	ErrWindowNotFound = errors.New("window not found")

	// ErrQueueClosed is returned when a command is submitted after shutdown
	ErrQueueClosed = errors.New("command queue is closed")

	// ErrQueueFull is returned when the command backlog is at capacity
	ErrQueueFull = errors.New("command queue is full")

	// ErrEmptyPrompt is returned when a prompt has no content
	ErrEmptyPrompt = errors.New("no prompt provided")
)

// FocusFailure distinguishes why the target window could not be focused
type FocusFailure int

const (
	FocusWindowNotFound FocusFailure = iota
	FocusLaunchFailed
	FocusCancelled
)

// FocusError reports a failed attempt to find or launch the target window
type FocusError struct {
	Kind  FocusFailure
	App   string
	Cause error
}

// Error implements the error interface
func (e *FocusError) Error() string {
	switch e.Kind {
	case FocusLaunchFailed:
		return fmt.Sprintf("failed to launch %s: %v", e.App, e.Cause)
	case FocusCancelled:
		return fmt.Sprintf("focusing %s was cancelled: %v", e.App, e.Cause)
	default:
		return fmt.Sprintf("could not find a %s window", e.App)
	}
}

// Unwrap returns the underlying cause
func (e *FocusError) Unwrap() error {
	if e.Cause == nil && e.Kind == FocusWindowNotFound {
		return ErrWindowNotFound
	}
	return e.Cause
}
