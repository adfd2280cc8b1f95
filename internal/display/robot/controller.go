//go:build darwin || windows

package robot

import (
	"context"
	"fmt"
	"strings"

	robotgo "github.com/go-vgo/robotgo"

	display "github.com/inference-gateway/drawbot/internal/display"
	domain "github.com/inference-gateway/drawbot/internal/domain"
)

var modifierNames = map[string]string{
	"ctrl":    "ctrl",
	"control": "ctrl",
	"alt":     "alt",
	"option":  "alt",
	"shift":   "shift",
	"cmd":     "cmd",
	"command": "cmd",
	"super":   "cmd",
	"win":     "cmd",
}

// Controller drives the native input devices through robotgo
type Controller struct{}

var (
	_ display.DisplayController = (*Controller)(nil)
	_ display.WindowManager     = (*Controller)(nil)
)

// GetScreenDimensions returns the main screen size
func (c *Controller) GetScreenDimensions(ctx context.Context) (int, int, error) {
	w, h := robotgo.GetScreenSize()
	return w, h, nil
}

// GetCursorPosition returns the current cursor position
func (c *Controller) GetCursorPosition(ctx context.Context) (int, int, error) {
	x, y := robotgo.Location()
	return x, y, nil
}

// MoveMouse moves the cursor to the absolute coordinates
func (c *Controller) MoveMouse(ctx context.Context, x, y int) error {
	robotgo.Move(x, y)
	return nil
}

// MouseDown presses the button
func (c *Controller) MouseDown(ctx context.Context, button display.MouseButton) error {
	if err := robotgo.Toggle(button.String()); err != nil {
		return fmt.Errorf("failed to press %s button: %w", button, err)
	}
	return nil
}

// MouseUp releases the button
func (c *Controller) MouseUp(ctx context.Context, button display.MouseButton) error {
	if err := robotgo.Toggle(button.String(), "up"); err != nil {
		return fmt.Errorf("failed to release %s button: %w", button, err)
	}
	return nil
}

// ClickMouse clicks the button
func (c *Controller) ClickMouse(ctx context.Context, button display.MouseButton, clicks int) error {
	robotgo.Click(button.String(), clicks > 1)
	return nil
}

// SendKeyCombo taps a key combination such as "ctrl+a"
func (c *Controller) SendKeyCombo(ctx context.Context, combo string) error {
	parts := strings.Split(strings.ReplaceAll(combo, "-", "+"), "+")
	key := strings.ToLower(strings.TrimSpace(parts[len(parts)-1]))
	if key == "" {
		return fmt.Errorf("invalid key combination: %q", combo)
	}

	var mods []interface{}
	for _, p := range parts[:len(parts)-1] {
		name := strings.ToLower(strings.TrimSpace(p))
		if m, ok := modifierNames[name]; ok {
			name = m
		}
		mods = append(mods, name)
	}

	if err := robotgo.KeyTap(key, mods...); err != nil {
		return fmt.Errorf("failed to send %q: %w", combo, err)
	}
	return nil
}

// Close is a no-op
func (c *Controller) Close() error {
	return nil
}

// FindWindow resolves title variants to the first matching process
func (c *Controller) FindWindow(ctx context.Context, titles []string) (*display.Window, error) {
	for _, t := range titles {
		if t == "" {
			continue
		}
		pids, err := robotgo.FindIds(t)
		if err != nil || len(pids) == 0 {
			continue
		}
		title := robotgo.GetTitle(pids[0])
		if title == "" {
			title = t
		}
		return &display.Window{ID: uint64(pids[0]), Title: title}, nil
	}
	return nil, domain.ErrWindowNotFound
}

// IsMinimized is not observable through robotgo
func (c *Controller) IsMinimized(ctx context.Context, w *display.Window) (bool, error) {
	return false, nil
}

// Restore brings the process window to the front
func (c *Controller) Restore(ctx context.Context, w *display.Window) error {
	return robotgo.ActivePid(int(w.ID))
}

// Activate brings the process window to the front
func (c *Controller) Activate(ctx context.Context, w *display.Window) error {
	return robotgo.ActivePid(int(w.ID))
}

// IsActive reports whether the frontmost window belongs to the process
func (c *Controller) IsActive(ctx context.Context, w *display.Window) (bool, error) {
	return robotgo.GetPid() == int(w.ID), nil
}

// IsMaximized is not observable through robotgo
func (c *Controller) IsMaximized(ctx context.Context, w *display.Window) (bool, error) {
	return false, nil
}

// Maximize maximizes the process window
func (c *Controller) Maximize(ctx context.Context, w *display.Window) error {
	robotgo.MaxWindow(int(w.ID))
	return nil
}

// Geometry returns the process window bounds
func (c *Controller) Geometry(ctx context.Context, w *display.Window) (display.Region, error) {
	x, y, width, height := robotgo.GetBounds(int(w.ID))
	if width == 0 || height == 0 {
		return display.Region{}, fmt.Errorf("no bounds for window %d", w.ID)
	}
	return display.Region{X: x, Y: y, Width: width, Height: height}, nil
}

// IsAvailable returns true on platforms robotgo drives natively
func (p *Provider) IsAvailable() bool {
	return true
}

// GetController returns a robotgo controller
func (p *Provider) GetController() (display.DisplayController, error) {
	return &Controller{}, nil
}
