package draw

import (
	"context"
	"fmt"
	"math"
	"time"

	display "github.com/inference-gateway/drawbot/internal/display"
	domain "github.com/inference-gateway/drawbot/internal/domain"
)

const (
	// DefaultGlideStep is the interval between interpolated moves of a drag
	DefaultGlideStep = 10 * time.Millisecond

	// DefaultEllipseSteps is the number of segments used to approximate an ellipse
	DefaultEllipseSteps = 36

	// EllipseSegmentDuration is the drag duration of one ellipse segment
	EllipseSegmentDuration = 20 * time.Millisecond
)

// Pen draws freehand shapes by dragging the pointer with the left button
// held. It keeps its own idea of the cursor position so relative drags do not
// need to query the display.
type Pen struct {
	ctrl    display.DisplayController
	sleeper domain.Sleeper

	glideStep    time.Duration
	actionPause  time.Duration
	ellipseSteps int

	x, y int
	ops  int
}

// Option configures a Pen
type Option func(*Pen)

// WithSleeper replaces the sleeper used for glide and action pauses
func WithSleeper(s domain.Sleeper) Option {
	return func(p *Pen) {
		p.sleeper = s
	}
}

// WithGlideStep sets the interval between interpolated moves; zero makes
// every drag a single move
func WithGlideStep(d time.Duration) Option {
	return func(p *Pen) {
		p.glideStep = d
	}
}

// WithActionPause sets a pause after every primitive
func WithActionPause(d time.Duration) Option {
	return func(p *Pen) {
		p.actionPause = d
	}
}

// WithEllipseSteps sets the segment count used by Ellipse and Circle
func WithEllipseSteps(n int) Option {
	return func(p *Pen) {
		if n >= 3 {
			p.ellipseSteps = n
		}
	}
}

// NewPen creates a Pen driving ctrl
func NewPen(ctrl display.DisplayController, opts ...Option) *Pen {
	p := &Pen{
		ctrl:         ctrl,
		sleeper:      domain.RealSleeper{},
		glideStep:    DefaultGlideStep,
		ellipseSteps: DefaultEllipseSteps,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Ops returns the number of primitives invoked so far
func (p *Pen) Ops() int {
	return p.ops
}

// Position returns where the pen believes the cursor is
func (p *Pen) Position() domain.Point {
	return domain.Point{X: p.x, Y: p.y}
}

// Sync adopts the display's cursor position, which focusing the target
// window moves behind the pen's back
func (p *Pen) Sync(ctx context.Context) error {
	x, y, err := p.ctrl.GetCursorPosition(ctx)
	if err != nil {
		return fmt.Errorf("read cursor position: %w", err)
	}
	p.x, p.y = x, y
	return nil
}

// Sleep pauses through the pen's sleeper
func (p *Pen) Sleep(d time.Duration) {
	if d > 0 {
		p.sleeper.Sleep(d)
	}
}

func (p *Pen) done() {
	p.ops++
	p.Sleep(p.actionPause)
}

// MoveTo moves the cursor without drawing
func (p *Pen) MoveTo(ctx context.Context, x, y int) error {
	defer p.done()
	return p.moveTo(ctx, x, y)
}

// DragTo draws a straight segment from the current position to (x, y)
func (p *Pen) DragTo(ctx context.Context, x, y int, d time.Duration) error {
	defer p.done()
	return p.dragTo(ctx, x, y, d)
}

// DragRel draws a straight segment by (dx, dy) from the current position
func (p *Pen) DragRel(ctx context.Context, dx, dy int, d time.Duration) error {
	defer p.done()
	return p.dragTo(ctx, p.x+dx, p.y+dy, d)
}

// Keys sends a key combination such as "ctrl+a" to the focused window
func (p *Pen) Keys(ctx context.Context, combo string) error {
	defer p.done()
	return p.ctrl.SendKeyCombo(ctx, combo)
}

// Line moves to (x, y) and drags by (dx, dy)
func (p *Pen) Line(ctx context.Context, x, y, dx, dy int, d time.Duration) error {
	defer p.done()
	if err := p.moveTo(ctx, x, y); err != nil {
		return err
	}
	return p.dragTo(ctx, x+dx, y+dy, d)
}

// Rect draws the outline of a w x h rectangle with its top-left corner at
// (x, y), one edge at a time, each taking d
func (p *Pen) Rect(ctx context.Context, x, y, w, h int, d time.Duration) error {
	defer p.done()
	if err := p.moveTo(ctx, x, y); err != nil {
		return err
	}
	edges := [4][2]int{{w, 0}, {0, h}, {-w, 0}, {0, -h}}
	for _, e := range edges {
		if err := p.dragTo(ctx, p.x+e[0], p.y+e[1], d); err != nil {
			return err
		}
	}
	return nil
}

// Ellipse approximates an ellipse centered at (cx, cy) with a closed polygon
// starting at angle zero
func (p *Pen) Ellipse(ctx context.Context, cx, cy, rx, ry int) error {
	defer p.done()
	return p.ellipse(ctx, cx, cy, rx, ry, p.ellipseSteps)
}

// Circle is an Ellipse with equal radii
func (p *Pen) Circle(ctx context.Context, cx, cy, r int) error {
	defer p.done()
	return p.ellipse(ctx, cx, cy, r, r, p.ellipseSteps)
}

func (p *Pen) ellipse(ctx context.Context, cx, cy, rx, ry, steps int) error {
	if err := p.moveTo(ctx, cx+rx, cy); err != nil {
		return err
	}
	for i := 0; i < steps; i++ {
		theta := 2 * math.Pi * float64(i+1) / float64(steps)
		x := cx + int(float64(rx)*math.Cos(theta))
		y := cy + int(float64(ry)*math.Sin(theta))
		if err := p.dragTo(ctx, x, y, EllipseSegmentDuration); err != nil {
			return err
		}
	}
	return nil
}

func (p *Pen) moveTo(ctx context.Context, x, y int) error {
	if err := p.ctrl.MoveMouse(ctx, x, y); err != nil {
		return fmt.Errorf("move to (%d,%d): %w", x, y, err)
	}
	p.x, p.y = x, y
	return nil
}

func (p *Pen) glideMoves(d time.Duration) int {
	if p.glideStep <= 0 || d <= p.glideStep {
		return 1
	}
	return int((d + p.glideStep - 1) / p.glideStep)
}

func (p *Pen) dragTo(ctx context.Context, x, y int, d time.Duration) error {
	if err := p.ctrl.MouseDown(ctx, display.MouseButtonLeft); err != nil {
		return fmt.Errorf("press at (%d,%d): %w", p.x, p.y, err)
	}

	x0, y0 := p.x, p.y
	n := p.glideMoves(d)
	var moveErr error
	for i := 1; i <= n; i++ {
		ix := x0 + (x-x0)*i/n
		iy := y0 + (y-y0)*i/n
		if err := p.ctrl.MoveMouse(ctx, ix, iy); err != nil {
			moveErr = fmt.Errorf("drag to (%d,%d): %w", ix, iy, err)
			break
		}
		p.x, p.y = ix, iy
		if n > 1 {
			p.Sleep(p.glideStep)
		}
	}

	if err := p.ctrl.MouseUp(ctx, display.MouseButtonLeft); err != nil && moveErr == nil {
		return fmt.Errorf("release at (%d,%d): %w", p.x, p.y, err)
	}
	return moveErr
}
