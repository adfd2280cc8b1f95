package scene

import (
	"context"
	"fmt"
	"math"
	"time"

	draw "github.com/inference-gateway/drawbot/internal/draw"
	domain "github.com/inference-gateway/drawbot/internal/domain"
	logger "github.com/inference-gateway/drawbot/internal/logger"
)

// Side places an element left or right of the house
type Side int

const (
	SideRight Side = iota
	SideLeft
)

const (
	trunkWidth = 24
	headRadius = 10
	sunRays    = 12
)

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}

// Composer draws the scene elements with fixed proportions. It does not
// validate sizes; negative or tiny boxes produce odd drawings.
type Composer struct {
	pen    *draw.Pen
	layout Layout
}

// New creates a Composer drawing with pen
func New(pen *draw.Pen, layout Layout) *Composer {
	return &Composer{pen: pen, layout: layout}
}

// Pen returns the pen the composer draws with
func (c *Composer) Pen() *draw.Pen {
	return c.pen
}

// Layout returns the placement the composer uses
func (c *Composer) Layout() Layout {
	return c.layout
}

// House draws walls, roof, door with handle and two mullioned windows and
// returns the wall box
func (c *Composer) House(ctx context.Context, b domain.Box) (domain.Box, error) {
	logger.Sugar(ctx).Infow("Drawing house", "box", b.String())

	x, y, w, h := b.X, b.Y, b.Width, b.Height
	p := c.pen

	if err := p.Rect(ctx, x, y, w, h, ms(400)); err != nil {
		return b, fmt.Errorf("house walls: %w", err)
	}

	roofH := int(float64(h) * 0.5)
	if err := p.MoveTo(ctx, x, y); err != nil {
		return b, fmt.Errorf("house roof: %w", err)
	}
	if err := p.DragRel(ctx, floorDiv(w, 2), -roofH, ms(350)); err != nil {
		return b, fmt.Errorf("house roof: %w", err)
	}
	if err := p.DragRel(ctx, floorDiv(w, 2), roofH, ms(350)); err != nil {
		return b, fmt.Errorf("house roof: %w", err)
	}

	doorW := floorDiv(w, 6)
	doorH := int(float64(h) * 0.55)
	doorX := x + floorDiv(w, 2) - floorDiv(doorW, 2)
	doorY := y + h
	if err := p.Rect(ctx, doorX, doorY-doorH, doorW, doorH, ms(250)); err != nil {
		return b, fmt.Errorf("house door: %w", err)
	}
	if err := p.Line(ctx, doorX+doorW-10, doorY-floorDiv(doorH, 2), 6, 0, ms(80)); err != nil {
		return b, fmt.Errorf("house door handle: %w", err)
	}

	winW := floorDiv(w, 6)
	winH := int(float64(h) * 0.28)
	winY := y + int(float64(h)*0.18)
	for _, wx := range []int{x + floorDiv(w, 8), x + w - floorDiv(w, 8) - winW} {
		if err := p.Rect(ctx, wx, winY, winW, winH, ms(180)); err != nil {
			return b, fmt.Errorf("house window: %w", err)
		}
		if err := p.Line(ctx, wx+floorDiv(winW, 2), winY, 0, winH, ms(80)); err != nil {
			return b, fmt.Errorf("house window mullion: %w", err)
		}
		if err := p.Line(ctx, wx, winY+floorDiv(winH, 2), winW, 0, ms(80)); err != nil {
			return b, fmt.Errorf("house window mullion: %w", err)
		}
	}

	return b, nil
}

// Tree draws a trunk and a three-ellipse canopy beside the house, or at the
// fallback anchor when house is nil
func (c *Composer) Tree(ctx context.Context, house *domain.Box, side Side) error {
	logger.Sugar(ctx).Infow("Drawing tree", "side", side.String(), "anchored", house != nil)

	b := orFallback(house, c.layout.FallbackTree)
	trunkH := int(float64(b.Height) * 0.45)

	tx := b.X + b.Width + 100
	if side == SideLeft {
		tx = b.X - 60 - trunkWidth
	}
	ty := b.Y + b.Height

	if err := c.pen.Rect(ctx, tx, ty-trunkH, trunkWidth, trunkH, ms(120)); err != nil {
		return fmt.Errorf("tree trunk: %w", err)
	}

	cx := tx + trunkWidth/2
	cy := ty - trunkH - 30
	canopy := [][4]int{
		{cx, cy, 60, 40},
		{cx - 30, cy + 10, 45, 30},
		{cx + 30, cy + 10, 45, 30},
	}
	for _, e := range canopy {
		if err := c.pen.Ellipse(ctx, e[0], e[1], e[2], e[3]); err != nil {
			return fmt.Errorf("tree canopy: %w", err)
		}
	}
	return nil
}

// Sun draws a circle centered at (x, y) with evenly spaced rays
func (c *Composer) Sun(ctx context.Context, x, y int) error {
	logger.Sugar(ctx).Infow("Drawing sun", "x", x, "y", y)

	r := c.layout.SunRadius
	if err := c.pen.Circle(ctx, x, y, r); err != nil {
		return fmt.Errorf("sun disc: %w", err)
	}

	for i := 0; i < sunRays; i++ {
		theta := 2 * math.Pi * float64(i) / sunRays
		cos, sin := math.Cos(theta), math.Sin(theta)
		sx := x + int(float64(r+6)*cos)
		sy := y + int(float64(r+6)*sin)
		ex := x + int(float64(r+26)*cos)
		ey := y + int(float64(r+26)*sin)
		if err := c.pen.MoveTo(ctx, sx, sy); err != nil {
			return fmt.Errorf("sun ray: %w", err)
		}
		if err := c.pen.DragTo(ctx, ex, ey, ms(60)); err != nil {
			return fmt.Errorf("sun ray: %w", err)
		}
	}
	return nil
}

// SunNear draws the sun above and to the right of the house, or at the
// fallback position
func (c *Composer) SunNear(ctx context.Context, house *domain.Box) error {
	at := c.layout.SunAnchor(house)
	return c.Sun(ctx, at.X, at.Y)
}

// Person draws a stick figure in front of the house
func (c *Composer) Person(ctx context.Context, house *domain.Box) error {
	logger.Sugar(ctx).Infow("Drawing person", "anchored", house != nil)

	b := orFallback(house, c.layout.FallbackPerson)
	px := b.X + floorDiv(b.Width, 2) + 20
	py := b.Y + b.Height + 40
	p := c.pen

	if err := p.Circle(ctx, px, py-10, headRadius); err != nil {
		return fmt.Errorf("person head: %w", err)
	}

	limbs := []struct {
		x, y, dx, dy int
		d            time.Duration
	}{
		{px, py + headRadius - 6, 0, 40, ms(150)},
		{px - 18, py + 18, 36, 0, ms(120)},
		{px, py + 40, -12, 28, ms(120)},
		{px, py + 40, 12, 28, ms(120)},
	}
	for _, l := range limbs {
		if err := p.Line(ctx, l.x, l.y, l.dx, l.dy, l.d); err != nil {
			return fmt.Errorf("person body: %w", err)
		}
	}
	return nil
}

// Car draws a box body with two wheels front-left of the house
func (c *Composer) Car(ctx context.Context, house *domain.Box) error {
	logger.Sugar(ctx).Infow("Drawing car", "anchored", house != nil)

	b := orFallback(house, c.layout.FallbackCar)
	cx := b.X - 150
	cy := b.Y + b.Height - 80

	if err := c.pen.Rect(ctx, cx, cy, 120, 60, ms(300)); err != nil {
		return fmt.Errorf("car body: %w", err)
	}
	for _, wx := range []int{cx + 25, cx + 95} {
		if err := c.pen.Circle(ctx, wx, cy+60, 15); err != nil {
			return fmt.Errorf("car wheel: %w", err)
		}
	}
	return nil
}

// Grass draws a strip of crossed blades along the ground line
func (c *Composer) Grass(ctx context.Context, house *domain.Box) error {
	logger.Sugar(ctx).Infow("Drawing grass", "count", c.layout.GrassCount)

	b := orFallback(house, c.layout.FallbackGrass)
	baseY := b.Y + b.Height + 5

	for i := 0; i < c.layout.GrassCount; i++ {
		gx := b.X - 50 + i*40
		if err := c.pen.Line(ctx, gx, baseY, 0, 20, ms(50)); err != nil {
			return fmt.Errorf("grass blade: %w", err)
		}
		if err := c.pen.Line(ctx, gx-5, baseY+10, 10, 0, ms(50)); err != nil {
			return fmt.Errorf("grass blade: %w", err)
		}
	}
	return nil
}

func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// floorDiv divides rounding toward negative infinity
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
