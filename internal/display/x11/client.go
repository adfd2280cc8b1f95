package x11

import (
	"fmt"
	"os"
	"strings"
	"time"

	xgb "github.com/BurntSushi/xgb"
	xproto "github.com/BurntSushi/xgb/xproto"
	xtest "github.com/BurntSushi/xgb/xtest"
	xgbutil "github.com/BurntSushi/xgbutil"
	keybind "github.com/BurntSushi/xgbutil/keybind"

	logger "github.com/inference-gateway/drawbot/internal/logger"
)

// Client holds an X11 connection with the XTEST extension initialized
type Client struct {
	xu      *xgbutil.XUtil
	conn    *xgb.Conn
	screen  *xproto.ScreenInfo
	display string
}

var modifierKeysyms = map[string]string{
	"ctrl":    "Control_L",
	"control": "Control_L",
	"alt":     "Alt_L",
	"shift":   "Shift_L",
	"super":   "Super_L",
	"meta":    "Meta_L",
	"win":     "Super_L",
	"cmd":     "Super_L",
}

var keyAliases = map[string]string{
	"delete":    "Delete",
	"del":       "Delete",
	"backspace": "BackSpace",
	"enter":     "Return",
	"return":    "Return",
	"tab":       "Tab",
	"esc":       "Escape",
	"escape":    "Escape",
	"space":     "space",
}

// NewClient connects to the named display, or $DISPLAY when empty
func NewClient(display string) (*Client, error) {
	// xgb prints connection noise on stderr
	oldStderr := os.Stderr
	devNull, devErr := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	if devErr == nil {
		os.Stderr = devNull
	}

	xu, err := xgbutil.NewConnDisplay(display)

	if devErr == nil {
		os.Stderr = oldStderr
		_ = devNull.Close()
	}

	if err != nil {
		logger.Error("Failed to connect to X11 display", "display", display, "error", err)
		return nil, fmt.Errorf("failed to connect to X11 display %q: %w", display, err)
	}

	if err := xtest.Init(xu.Conn()); err != nil {
		xu.Conn().Close()
		return nil, fmt.Errorf("failed to initialize XTEST extension: %w", err)
	}

	keybind.Initialize(xu)

	return &Client{
		xu:      xu,
		conn:    xu.Conn(),
		screen:  xproto.Setup(xu.Conn()).DefaultScreen(xu.Conn()),
		display: display,
	}, nil
}

// Close closes the X11 connection
func (c *Client) Close() {
	if c.conn != nil {
		c.conn.Close()
	}
}

func (c *Client) root() xproto.Window {
	return c.screen.Root
}

// ScreenSize returns the default screen size in pixels
func (c *Client) ScreenSize() (int, int) {
	return int(c.screen.WidthInPixels), int(c.screen.HeightInPixels)
}

// CursorPosition queries the pointer position on the root window
func (c *Client) CursorPosition() (int, int, error) {
	pointer, err := xproto.QueryPointer(c.conn, c.root()).Reply()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to query pointer: %w", err)
	}
	return int(pointer.RootX), int(pointer.RootY), nil
}

// Motion moves the pointer with a fake motion event so applications see
// the move as a drag while a button is pressed
func (c *Client) Motion(x, y int) error {
	err := xtest.FakeInputChecked(c.conn, xproto.MotionNotify, 0, 0, c.root(), int16(x), int16(y), 0).Check()
	if err != nil {
		logger.Debug("XTEST motion failed, warping pointer", "error", err)
		err = xproto.WarpPointerChecked(c.conn, xproto.WindowNone, c.root(), 0, 0, 0, 0, int16(x), int16(y)).Check()
	}
	if err != nil {
		return fmt.Errorf("failed to move pointer to (%d,%d): %w", x, y, err)
	}
	c.conn.Sync()
	return nil
}

func buttonCode(button string) (byte, error) {
	switch button {
	case "left":
		return 1, nil
	case "middle":
		return 2, nil
	case "right":
		return 3, nil
	default:
		return 0, fmt.Errorf("invalid button: %s (must be 'left', 'middle', or 'right')", button)
	}
}

// Button sends a single press or release of the given button
func (c *Client) Button(button string, press bool) error {
	code, err := buttonCode(button)
	if err != nil {
		return err
	}

	event := byte(xproto.ButtonRelease)
	if press {
		event = xproto.ButtonPress
	}

	if err := xtest.FakeInputChecked(c.conn, event, code, 0, c.root(), 0, 0, 0).Check(); err != nil {
		return fmt.Errorf("failed to send %s button event: %w", button, err)
	}
	c.conn.Sync()
	return nil
}

// Click presses and releases a button clicks times
func (c *Client) Click(button string, clicks int) error {
	for i := 0; i < clicks; i++ {
		if err := c.Button(button, true); err != nil {
			return err
		}
		time.Sleep(50 * time.Millisecond)
		if err := c.Button(button, false); err != nil {
			return err
		}
		if i < clicks-1 {
			time.Sleep(100 * time.Millisecond)
		}
	}
	return nil
}

func (c *Client) keycode(name string) (xproto.Keycode, error) {
	codes := keybind.StrToKeycodes(c.xu, name)
	if len(codes) == 0 {
		return 0, fmt.Errorf("no keycode found for key: %s", name)
	}
	return codes[0], nil
}

// KeyCombo sends a key combination such as "ctrl+a", "alt+tab" or "delete"
func (c *Client) KeyCombo(combo string) error {
	parts := strings.Split(strings.ReplaceAll(combo, "-", "+"), "+")
	if len(parts) == 0 || strings.TrimSpace(parts[len(parts)-1]) == "" {
		return fmt.Errorf("invalid key combination: %q", combo)
	}

	var mods []xproto.Keycode
	for _, mod := range parts[:len(parts)-1] {
		name := strings.ToLower(strings.TrimSpace(mod))
		if sym, ok := modifierKeysyms[name]; ok {
			name = sym
		}
		code, err := c.keycode(name)
		if err != nil {
			return fmt.Errorf("modifier %q: %w", mod, err)
		}
		mods = append(mods, code)
	}

	key := strings.TrimSpace(parts[len(parts)-1])
	if alias, ok := keyAliases[strings.ToLower(key)]; ok {
		key = alias
	}
	mainCode, err := c.keycode(key)
	if err != nil {
		return err
	}

	root := c.root()
	for _, code := range mods {
		_ = xtest.FakeInput(c.conn, xproto.KeyPress, byte(code), 0, root, 0, 0, 0)
		time.Sleep(10 * time.Millisecond)
	}

	_ = xtest.FakeInput(c.conn, xproto.KeyPress, byte(mainCode), 0, root, 0, 0, 0)
	time.Sleep(50 * time.Millisecond)
	_ = xtest.FakeInput(c.conn, xproto.KeyRelease, byte(mainCode), 0, root, 0, 0, 0)
	time.Sleep(10 * time.Millisecond)

	for i := len(mods) - 1; i >= 0; i-- {
		_ = xtest.FakeInput(c.conn, xproto.KeyRelease, byte(mods[i]), 0, root, 0, 0, 0)
		time.Sleep(10 * time.Millisecond)
	}

	c.conn.Sync()
	return nil
}
