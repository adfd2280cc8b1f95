package x11

import (
	"context"
	"os"

	xproto "github.com/BurntSushi/xgb/xproto"

	display "github.com/inference-gateway/drawbot/internal/display"
)

// Controller adapts Client to display.DisplayController and display.WindowManager
type Controller struct {
	client *Client
}

var (
	_ display.DisplayController = (*Controller)(nil)
	_ display.WindowManager     = (*Controller)(nil)
)

// GetScreenDimensions returns the screen width and height
func (c *Controller) GetScreenDimensions(ctx context.Context) (int, int, error) {
	w, h := c.client.ScreenSize()
	return w, h, nil
}

// GetCursorPosition returns the current cursor position
func (c *Controller) GetCursorPosition(ctx context.Context) (int, int, error) {
	return c.client.CursorPosition()
}

// MoveMouse moves the cursor to the absolute coordinates
func (c *Controller) MoveMouse(ctx context.Context, x, y int) error {
	return c.client.Motion(x, y)
}

// MouseDown presses the button
func (c *Controller) MouseDown(ctx context.Context, button display.MouseButton) error {
	return c.client.Button(button.String(), true)
}

// MouseUp releases the button
func (c *Controller) MouseUp(ctx context.Context, button display.MouseButton) error {
	return c.client.Button(button.String(), false)
}

// ClickMouse clicks the button
func (c *Controller) ClickMouse(ctx context.Context, button display.MouseButton, clicks int) error {
	return c.client.Click(button.String(), clicks)
}

// SendKeyCombo sends a key combination
func (c *Controller) SendKeyCombo(ctx context.Context, combo string) error {
	return c.client.KeyCombo(combo)
}

// Close closes the X11 connection
func (c *Controller) Close() error {
	c.client.Close()
	return nil
}

func xwin(w *display.Window) xproto.Window {
	return xproto.Window(w.ID)
}

// FindWindow searches the managed windows by title
func (c *Controller) FindWindow(ctx context.Context, titles []string) (*display.Window, error) {
	win, title, err := c.client.FindByTitle(titles)
	if err != nil {
		return nil, err
	}
	return &display.Window{ID: uint64(win), Title: title}, nil
}

// IsMinimized reports whether the window is hidden
func (c *Controller) IsMinimized(ctx context.Context, w *display.Window) (bool, error) {
	return c.client.Hidden(xwin(w))
}

// Restore un-minimizes the window
func (c *Controller) Restore(ctx context.Context, w *display.Window) error {
	return c.client.Unhide(xwin(w))
}

// Activate requests focus for the window
func (c *Controller) Activate(ctx context.Context, w *display.Window) error {
	return c.client.Focus(xwin(w))
}

// IsActive reports whether the window manager considers the window active
func (c *Controller) IsActive(ctx context.Context, w *display.Window) (bool, error) {
	active, err := c.client.Active()
	if err != nil {
		return false, err
	}
	return active == xwin(w), nil
}

// IsMaximized reports whether the window is maximized
func (c *Controller) IsMaximized(ctx context.Context, w *display.Window) (bool, error) {
	return c.client.Maximized(xwin(w))
}

// Maximize requests the maximized state
func (c *Controller) Maximize(ctx context.Context, w *display.Window) error {
	return c.client.Maximize(xwin(w))
}

// Geometry returns the window region in screen coordinates
func (c *Controller) Geometry(ctx context.Context, w *display.Window) (display.Region, error) {
	x, y, width, height, err := c.client.Geometry(xwin(w))
	if err != nil {
		return display.Region{}, err
	}
	return display.Region{X: x, Y: y, Width: width, Height: height}, nil
}

// Provider creates X11 controllers
type Provider struct {
	display string
}

var _ display.Provider = (*Provider)(nil)

// NewProvider creates a provider for the named display; empty means $DISPLAY
func NewProvider(name string) *Provider {
	return &Provider{display: name}
}

// GetController opens a new X11 connection
func (p *Provider) GetController() (display.DisplayController, error) {
	client, err := NewClient(p.display)
	if err != nil {
		return nil, err
	}
	return &Controller{client: client}, nil
}

// GetDisplayInfo describes the X11 backend
func (p *Provider) GetDisplayInfo() display.DisplayInfo {
	return display.DisplayInfo{
		Name:            "x11",
		SupportsWindows: true,
		SupportsMouse:   true,
		SupportsKeys:    true,
	}
}

// IsAvailable returns true when DISPLAY is set and no Wayland session is running
func (p *Provider) IsAvailable() bool {
	return os.Getenv("DISPLAY") != "" && os.Getenv("WAYLAND_DISPLAY") == ""
}

func init() {
	display.Register(NewProvider(""))
}
