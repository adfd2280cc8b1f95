package display

import (
	"context"
)

//go:generate go tool counterfeiter -generate

// DisplayController abstracts the synthetic input devices of a display
// server (X11, macOS/Windows through robotgo, or an in-memory recorder)
//
//counterfeiter:generate -o ../../tests/mocks/display/fake_display_controller.go . DisplayController
type DisplayController interface {
	// Screen operations
	GetScreenDimensions(ctx context.Context) (width, height int, err error)

	// Mouse operations
	GetCursorPosition(ctx context.Context) (x, y int, err error)
	MoveMouse(ctx context.Context, x, y int) error
	MouseDown(ctx context.Context, button MouseButton) error
	MouseUp(ctx context.Context, button MouseButton) error
	ClickMouse(ctx context.Context, button MouseButton, clicks int) error

	// Keyboard operations
	SendKeyCombo(ctx context.Context, combo string) error

	// Lifecycle
	Close() error
}

// WindowManager is implemented by controllers that can find and arrange
// top-level application windows
type WindowManager interface {
	FindWindow(ctx context.Context, titles []string) (*Window, error)
	IsMinimized(ctx context.Context, w *Window) (bool, error)
	Restore(ctx context.Context, w *Window) error
	Activate(ctx context.Context, w *Window) error
	IsActive(ctx context.Context, w *Window) (bool, error)
	IsMaximized(ctx context.Context, w *Window) (bool, error)
	Maximize(ctx context.Context, w *Window) error
	Geometry(ctx context.Context, w *Window) (Region, error)
}

// Window identifies a top-level window of the target application
type Window struct {
	ID    uint64
	Title string
}

// Region represents a rectangular area on the screen
type Region struct {
	X      int
	Y      int
	Width  int
	Height int
}

// MouseButton represents a mouse button
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonMiddle
	MouseButtonRight
)

// String returns the string representation of a mouse button
func (b MouseButton) String() string {
	switch b {
	case MouseButtonLeft:
		return "left"
	case MouseButtonMiddle:
		return "middle"
	case MouseButtonRight:
		return "right"
	default:
		return "unknown"
	}
}

// Provider creates DisplayController instances for a specific display server
type Provider interface {
	// GetController creates a new DisplayController
	GetController() (DisplayController, error)

	// GetDisplayInfo returns information about the display server
	GetDisplayInfo() DisplayInfo

	// IsAvailable returns true if this display server is available on the current system
	IsAvailable() bool
}

// DisplayInfo contains metadata about a display server
type DisplayInfo struct {
	Name            string // "x11", "robot", "recorder"
	SupportsWindows bool
	SupportsMouse   bool
	SupportsKeys    bool
}
