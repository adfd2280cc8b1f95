package scene

import (
	config "github.com/inference-gateway/drawbot/config"
	domain "github.com/inference-gateway/drawbot/internal/domain"
)

// Layout holds the default house placement and the anchors used when no
// house has been drawn yet. The fallbacks are fixed screen positions, not
// derived from the canvas.
type Layout struct {
	House          domain.Box
	FallbackTree   domain.Box
	FallbackCar    domain.Box
	FallbackPerson domain.Box
	FallbackGrass  domain.Box
	FallbackSun    domain.Point
	SunOffset      domain.Point
	SunRadius      int
	GrassCount     int
}

// DefaultLayout returns the built-in placement
func DefaultLayout() Layout {
	return LayoutFromConfig(config.DefaultConfig().Drawing)
}

// LayoutFromConfig builds a Layout from the drawing configuration
func LayoutFromConfig(cfg config.DrawingConfig) Layout {
	return Layout{
		House:          box(cfg.House),
		FallbackTree:   box(cfg.FallbackTree),
		FallbackCar:    box(cfg.FallbackCar),
		FallbackPerson: box(cfg.FallbackPerson),
		FallbackGrass:  box(cfg.FallbackGrass),
		FallbackSun:    domain.Point{X: cfg.FallbackSun.X, Y: cfg.FallbackSun.Y},
		SunOffset:      domain.Point{X: cfg.SunOffsetX, Y: cfg.SunOffsetY},
		SunRadius:      cfg.SunRadius,
		GrassCount:     cfg.GrassCount,
	}
}

func box(a config.AnchorConfig) domain.Box {
	return domain.Box{X: a.X, Y: a.Y, Width: a.Width, Height: a.Height}
}

// SunAnchor returns the sun center for the given house, or the fallback
func (l Layout) SunAnchor(house *domain.Box) domain.Point {
	if house == nil {
		return l.FallbackSun
	}
	return domain.Point{X: house.Right() + l.SunOffset.X, Y: house.Y + l.SunOffset.Y}
}

func orFallback(house *domain.Box, fallback domain.Box) domain.Box {
	if house == nil {
		return fallback
	}
	return *house
}

// OutOfBounds names the anchors that do not fit on a width x height screen.
// The sun is checked at its house-relative position and its fallback, with
// its radius.
func (l Layout) OutOfBounds(width, height int) []string {
	var out []string
	fits := func(b domain.Box) bool {
		return b.X >= 0 && b.Y >= 0 && b.Right() <= width && b.Bottom() <= height
	}
	sun := func(p domain.Point) domain.Box {
		return domain.Box{X: p.X - l.SunRadius, Y: p.Y - l.SunRadius, Width: 2 * l.SunRadius, Height: 2 * l.SunRadius}
	}

	anchors := []struct {
		name string
		box  domain.Box
	}{
		{"house", l.House},
		{"fallback_tree", l.FallbackTree},
		{"fallback_car", l.FallbackCar},
		{"fallback_person", l.FallbackPerson},
		{"fallback_grass", l.FallbackGrass},
		{"sun", sun(l.SunAnchor(&l.House))},
		{"fallback_sun", sun(l.FallbackSun)},
	}
	for _, a := range anchors {
		if !fits(a.box) {
			out = append(out, a.name)
		}
	}
	return out
}
