package x11

import (
	"fmt"
	"strings"

	xproto "github.com/BurntSushi/xgb/xproto"
	ewmh "github.com/BurntSushi/xgbutil/ewmh"
	icccm "github.com/BurntSushi/xgbutil/icccm"

	domain "github.com/inference-gateway/drawbot/internal/domain"
)

const (
	stateHidden         = "_NET_WM_STATE_HIDDEN"
	stateMaximizedHorz  = "_NET_WM_STATE_MAXIMIZED_HORZ"
	stateMaximizedVert  = "_NET_WM_STATE_MAXIMIZED_VERT"
	activeWindowAtom    = "_NET_ACTIVE_WINDOW"
	sourceIndicationApp = 2

	wmStateRemove = 0
	wmStateAdd    = 1
)

// title reads _NET_WM_NAME, falling back to the ICCCM WM_NAME
func (c *Client) title(win xproto.Window) string {
	if name, err := ewmh.WmNameGet(c.xu, win); err == nil && name != "" {
		return name
	}
	if name, err := icccm.WmNameGet(c.xu, win); err == nil {
		return name
	}
	return ""
}

// FindByTitle returns the first managed window whose title contains one of
// the variants, trying variants in order
func (c *Client) FindByTitle(variants []string) (xproto.Window, string, error) {
	clients, err := ewmh.ClientListGet(c.xu)
	if err != nil {
		return 0, "", fmt.Errorf("failed to get client list: %w", err)
	}

	titles := make([]string, len(clients))
	for i, win := range clients {
		titles[i] = c.title(win)
	}

	for _, v := range variants {
		if v == "" {
			continue
		}
		for i, win := range clients {
			if strings.Contains(titles[i], v) {
				return win, titles[i], nil
			}
		}
	}
	return 0, "", domain.ErrWindowNotFound
}

func (c *Client) states(win xproto.Window) (map[string]bool, error) {
	states, err := ewmh.WmStateGet(c.xu, win)
	if err != nil {
		return nil, fmt.Errorf("failed to get window state: %w", err)
	}
	set := make(map[string]bool, len(states))
	for _, s := range states {
		set[s] = true
	}
	return set, nil
}

// Hidden reports whether the window is minimized
func (c *Client) Hidden(win xproto.Window) (bool, error) {
	set, err := c.states(win)
	if err != nil {
		return false, err
	}
	return set[stateHidden], nil
}

// Maximized reports whether the window is maximized in both directions
func (c *Client) Maximized(win xproto.Window) (bool, error) {
	set, err := c.states(win)
	if err != nil {
		return false, err
	}
	return set[stateMaximizedHorz] && set[stateMaximizedVert], nil
}

// Unhide maps the window and drops the hidden state
func (c *Client) Unhide(win xproto.Window) error {
	if err := xproto.MapWindowChecked(c.conn, win).Check(); err != nil {
		return fmt.Errorf("failed to map window: %w", err)
	}
	if err := ewmh.WmStateReq(c.xu, win, wmStateRemove, stateHidden); err != nil {
		return fmt.Errorf("failed to clear hidden state: %w", err)
	}
	return nil
}

// Focus asks the window manager to activate and raise the window through a
// _NET_ACTIVE_WINDOW client message on the root window
func (c *Client) Focus(win xproto.Window) error {
	atom, err := xproto.InternAtom(c.conn, false, uint16(len(activeWindowAtom)), activeWindowAtom).Reply()
	if err != nil {
		return fmt.Errorf("failed to intern %s: %w", activeWindowAtom, err)
	}

	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: win,
		Type:   atom.Atom,
		Data:   xproto.ClientMessageDataUnionData32New([]uint32{sourceIndicationApp, 0, 0, 0, 0}),
	}

	return xproto.SendEventChecked(
		c.conn,
		false,
		c.root(),
		xproto.EventMaskSubstructureRedirect|xproto.EventMaskSubstructureNotify,
		string(ev.Bytes()),
	).Check()
}

// Active returns the window the window manager reports as active
func (c *Client) Active() (xproto.Window, error) {
	return ewmh.ActiveWindowGet(c.xu)
}

// Maximize adds both maximized states
func (c *Client) Maximize(win xproto.Window) error {
	if err := ewmh.WmStateReq(c.xu, win, wmStateAdd, stateMaximizedHorz); err != nil {
		return fmt.Errorf("failed to maximize horizontally: %w", err)
	}
	if err := ewmh.WmStateReq(c.xu, win, wmStateAdd, stateMaximizedVert); err != nil {
		return fmt.Errorf("failed to maximize vertically: %w", err)
	}
	return nil
}

// Geometry returns the window's position in root coordinates and its size
func (c *Client) Geometry(win xproto.Window) (x, y, width, height int, err error) {
	geom, err := xproto.GetGeometry(c.conn, xproto.Drawable(win)).Reply()
	if err != nil {
		return 0, 0, 0, 0, fmt.Errorf("failed to get geometry: %w", err)
	}

	translate, err := xproto.TranslateCoordinates(c.conn, win, c.root(), 0, 0).Reply()
	if err != nil {
		return 0, 0, 0, 0, fmt.Errorf("failed to translate coordinates: %w", err)
	}

	return int(translate.DstX), int(translate.DstY), int(geom.Width), int(geom.Height), nil
}
