package preview

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/svg"

	config "github.com/inference-gateway/drawbot/config"
	recorder "github.com/inference-gateway/drawbot/internal/display/recorder"
)

// Renderer draws recorded strokes onto a screen-sized SVG
type Renderer struct {
	cfg config.PreviewConfig
}

// New creates a Renderer
func New(cfg config.PreviewConfig) *Renderer {
	return &Renderer{cfg: cfg}
}

// Render writes the strokes as SVG. Screen coordinates grow downwards while
// canvas coordinates grow upwards, so every y is flipped.
func (r *Renderer) Render(w io.Writer, strokes []recorder.Stroke) error {
	width, height := float64(r.cfg.Width), float64(r.cfg.Height)
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid preview size %dx%d", r.cfg.Width, r.cfg.Height)
	}

	c := canvas.New(width, height)
	ctx := canvas.NewContext(c)

	if r.cfg.Background != "" {
		ctx.SetFillColor(canvas.Hex(r.cfg.Background))
		ctx.SetStrokeColor(canvas.Transparent)
		ctx.DrawPath(0, 0, canvas.Rectangle(width, height))
	}

	ctx.SetFillColor(canvas.Transparent)
	ctx.SetStrokeColor(canvas.Hex(r.cfg.StrokeColor))
	ctx.SetStrokeWidth(r.cfg.StrokeWidth)
	ctx.SetStrokeCapper(canvas.RoundCap)
	ctx.SetStrokeJoiner(canvas.RoundJoin)

	for _, s := range strokes {
		if len(s.Points) < 2 {
			continue
		}
		p := &canvas.Path{}
		p.MoveTo(float64(s.Points[0].X), height-float64(s.Points[0].Y))
		for _, pt := range s.Points[1:] {
			p.LineTo(float64(pt.X), height-float64(pt.Y))
		}
		ctx.DrawPath(0, 0, p)
	}

	var buf bytes.Buffer
	renderer := svg.New(&buf, c.W, c.H, nil)
	c.RenderTo(renderer)
	renderer.Close()

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write preview: %w", err)
	}
	return nil
}

// WriteFile renders the strokes to path, creating parent directories
func (r *Renderer) WriteFile(path string, strokes []recorder.Stroke) error {
	var buf bytes.Buffer
	if err := r.Render(&buf, strokes); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write preview %s: %w", path, err)
	}
	return nil
}
