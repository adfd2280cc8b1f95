package recorder

import (
	"context"
	"fmt"
	"strings"
	"sync"

	display "github.com/inference-gateway/drawbot/internal/display"
	domain "github.com/inference-gateway/drawbot/internal/domain"
)

// ActionType names a recorded input event
type ActionType string

const (
	ActionMove  ActionType = "move"
	ActionDown  ActionType = "down"
	ActionUp    ActionType = "up"
	ActionClick ActionType = "click"
	ActionKey   ActionType = "key"
)

// Action is one synthetic input event
type Action struct {
	Type   ActionType
	X      int
	Y      int
	Button display.MouseButton
	Combo  string
}

// Stroke is a continuous pressed-button path
type Stroke struct {
	Points []domain.Point
}

type windowState struct {
	window    display.Window
	region    display.Region
	minimized bool
	maximized bool
}

// Recorder is an in-memory display controller and window manager. It keeps
// every input event and the strokes they produce, which makes it usable as a
// dry-run backend and as the actuator in tests.
type Recorder struct {
	mu sync.Mutex

	width, height int
	x, y          int
	pressed       bool

	actions []Action
	strokes []Stroke
	calls   []string

	windows      []*windowState
	active       uint64
	nextID       uint64
	failures     map[string]error
	ignoreActive bool
}

var (
	_ display.DisplayController = (*Recorder)(nil)
	_ display.WindowManager     = (*Recorder)(nil)
)

// Option configures a Recorder
type Option func(*Recorder)

// WithScreen sets the reported screen dimensions
func WithScreen(width, height int) Option {
	return func(r *Recorder) {
		r.width, r.height = width, height
	}
}

// WithWindow adds an existing top-level window
func WithWindow(title string, region display.Region) Option {
	return func(r *Recorder) {
		r.addWindow(title, region, false)
	}
}

// WithMinimizedWindow adds an existing window in the minimized state
func WithMinimizedWindow(title string, region display.Region) Option {
	return func(r *Recorder) {
		r.addWindow(title, region, true)
	}
}

// WithFailure makes the named operation (e.g. "activate", "down", "key")
// return err
func WithFailure(op string, err error) Option {
	return func(r *Recorder) {
		r.failures[op] = err
	}
}

// WithUnconfirmedActivation makes Activate succeed without the window
// becoming active, like a window manager that refuses focus stealing
func WithUnconfirmedActivation() Option {
	return func(r *Recorder) {
		r.ignoreActive = true
	}
}

// New creates a Recorder with a 1920x1080 screen and no windows
func New(opts ...Option) *Recorder {
	r := &Recorder{
		width:    1920,
		height:   1080,
		nextID:   1,
		failures: make(map[string]error),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// AddWindow makes a new window appear, as a launched application would
func (r *Recorder) AddWindow(title string, region display.Region) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.addWindow(title, region, false)
}

func (r *Recorder) addWindow(title string, region display.Region, minimized bool) {
	r.windows = append(r.windows, &windowState{
		window:    display.Window{ID: r.nextID, Title: title},
		region:    region,
		minimized: minimized,
	})
	r.nextID++
}

func (r *Recorder) fail(op string) error {
	r.calls = append(r.calls, op)
	if err, ok := r.failures[op]; ok {
		return err
	}
	return nil
}

func (r *Recorder) lookup(w *display.Window) (*windowState, error) {
	if w == nil {
		return nil, fmt.Errorf("nil window")
	}
	for _, ws := range r.windows {
		if ws.window.ID == w.ID {
			return ws, nil
		}
	}
	return nil, fmt.Errorf("window %d: %w", w.ID, domain.ErrWindowNotFound)
}

// GetScreenDimensions returns the configured screen size
func (r *Recorder) GetScreenDimensions(ctx context.Context) (int, int, error) {
	return r.width, r.height, nil
}

// GetCursorPosition returns the last position the cursor was moved to
func (r *Recorder) GetCursorPosition(ctx context.Context) (int, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.x, r.y, nil
}

// MoveMouse records a move and extends the current stroke if a button is held
func (r *Recorder) MoveMouse(ctx context.Context, x, y int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.fail("move"); err != nil {
		return err
	}

	r.x, r.y = x, y
	r.actions = append(r.actions, Action{Type: ActionMove, X: x, Y: y})
	if r.pressed && len(r.strokes) > 0 {
		last := &r.strokes[len(r.strokes)-1]
		last.Points = append(last.Points, domain.Point{X: x, Y: y})
	}
	return nil
}

// MouseDown records a button press and starts a stroke
func (r *Recorder) MouseDown(ctx context.Context, button display.MouseButton) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.fail("down"); err != nil {
		return err
	}

	r.pressed = true
	r.actions = append(r.actions, Action{Type: ActionDown, X: r.x, Y: r.y, Button: button})
	r.strokes = append(r.strokes, Stroke{Points: []domain.Point{{X: r.x, Y: r.y}}})
	return nil
}

// MouseUp records a button release and closes the stroke
func (r *Recorder) MouseUp(ctx context.Context, button display.MouseButton) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.fail("up"); err != nil {
		return err
	}

	r.pressed = false
	r.actions = append(r.actions, Action{Type: ActionUp, X: r.x, Y: r.y, Button: button})
	return nil
}

// ClickMouse records clicks at the current position
func (r *Recorder) ClickMouse(ctx context.Context, button display.MouseButton, clicks int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.fail("click"); err != nil {
		return err
	}

	for i := 0; i < clicks; i++ {
		r.actions = append(r.actions, Action{Type: ActionClick, X: r.x, Y: r.y, Button: button})
	}
	return nil
}

// SendKeyCombo records a key combination
func (r *Recorder) SendKeyCombo(ctx context.Context, combo string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.fail("key"); err != nil {
		return err
	}

	r.actions = append(r.actions, Action{Type: ActionKey, Combo: combo})
	return nil
}

// Close is a no-op
func (r *Recorder) Close() error {
	return nil
}

// FindWindow returns the first window whose title contains a variant,
// trying variants in order
func (r *Recorder) FindWindow(ctx context.Context, titles []string) (*display.Window, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.fail("find"); err != nil {
		return nil, err
	}

	for _, t := range titles {
		for _, ws := range r.windows {
			if t != "" && strings.Contains(ws.window.Title, t) {
				w := ws.window
				return &w, nil
			}
		}
	}
	return nil, domain.ErrWindowNotFound
}

// IsMinimized reports the window's minimized state
func (r *Recorder) IsMinimized(ctx context.Context, w *display.Window) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ws, err := r.lookup(w)
	if err != nil {
		return false, err
	}
	return ws.minimized, nil
}

// Restore un-minimizes the window
func (r *Recorder) Restore(ctx context.Context, w *display.Window) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.fail("restore"); err != nil {
		return err
	}
	ws, err := r.lookup(w)
	if err != nil {
		return err
	}
	ws.minimized = false
	return nil
}

// Activate makes the window the active one
func (r *Recorder) Activate(ctx context.Context, w *display.Window) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.fail("activate"); err != nil {
		return err
	}
	ws, err := r.lookup(w)
	if err != nil {
		return err
	}
	if !r.ignoreActive {
		r.active = ws.window.ID
	}
	return nil
}

// IsActive reports whether the window is the active one
func (r *Recorder) IsActive(ctx context.Context, w *display.Window) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if w == nil {
		return false, nil
	}
	return r.active == w.ID, nil
}

// IsMaximized reports the window's maximized state
func (r *Recorder) IsMaximized(ctx context.Context, w *display.Window) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ws, err := r.lookup(w)
	if err != nil {
		return false, err
	}
	return ws.maximized, nil
}

// Maximize grows the window to the full screen
func (r *Recorder) Maximize(ctx context.Context, w *display.Window) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.fail("maximize"); err != nil {
		return err
	}
	ws, err := r.lookup(w)
	if err != nil {
		return err
	}
	ws.maximized = true
	ws.region = display.Region{X: 0, Y: 0, Width: r.width, Height: r.height}
	return nil
}

// Geometry returns the window's screen region
func (r *Recorder) Geometry(ctx context.Context, w *display.Window) (display.Region, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.fail("geometry"); err != nil {
		return display.Region{}, err
	}
	ws, err := r.lookup(w)
	if err != nil {
		return display.Region{}, err
	}
	return ws.region, nil
}

// Actions returns a copy of the recorded input events
func (r *Recorder) Actions() []Action {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Action, len(r.actions))
	copy(out, r.actions)
	return out
}

// Count returns how many events of a type were recorded
func (r *Recorder) Count(t ActionType) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for _, a := range r.actions {
		if a.Type == t {
			n++
		}
	}
	return n
}

// Strokes returns a copy of the recorded strokes
func (r *Recorder) Strokes() []Stroke {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Stroke, len(r.strokes))
	for i, s := range r.strokes {
		pts := make([]domain.Point, len(s.Points))
		copy(pts, s.Points)
		out[i] = Stroke{Points: pts}
	}
	return out
}

// KeyCombos returns the key combinations sent, in order
func (r *Recorder) KeyCombos() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	var combos []string
	for _, a := range r.actions {
		if a.Type == ActionKey {
			combos = append(combos, a.Combo)
		}
	}
	return combos
}

// WindowCalls returns the window-management operations invoked, in order
func (r *Recorder) WindowCalls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	var calls []string
	for _, c := range r.calls {
		switch c {
		case "move", "down", "up", "click", "key":
			continue
		}
		calls = append(calls, c)
	}
	return calls
}

// Reset forgets recorded events and strokes but keeps windows
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.actions = nil
	r.strokes = nil
	r.calls = nil
}
