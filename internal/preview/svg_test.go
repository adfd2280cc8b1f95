package preview

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	config "github.com/inference-gateway/drawbot/config"
	recorder "github.com/inference-gateway/drawbot/internal/display/recorder"
	domain "github.com/inference-gateway/drawbot/internal/domain"
)

func testStrokes() []recorder.Stroke {
	return []recorder.Stroke{
		{Points: []domain.Point{{X: 10, Y: 10}, {X: 110, Y: 10}, {X: 110, Y: 60}}},
		{Points: []domain.Point{{X: 5, Y: 5}}},
		{Points: []domain.Point{{X: 200, Y: 200}, {X: 220, Y: 240}}},
	}
}

func TestRender(t *testing.T) {
	r := New(config.DefaultConfig().Preview)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, testStrokes()))

	out := buf.String()
	assert.True(t, strings.HasPrefix(strings.TrimSpace(out), "<svg"), out)
	assert.Contains(t, out, "</svg>")
	assert.Contains(t, out, "<path")
}

func TestRenderWithoutStrokes(t *testing.T) {
	cfg := config.DefaultConfig().Preview
	cfg.Background = ""

	var buf bytes.Buffer
	require.NoError(t, New(cfg).Render(&buf, nil))
	assert.Contains(t, buf.String(), "<svg")
}

func TestRenderInvalidSize(t *testing.T) {
	cfg := config.DefaultConfig().Preview
	cfg.Width = 0

	err := New(cfg).Render(&bytes.Buffer{}, testStrokes())
	assert.ErrorContains(t, err, "invalid preview size")
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "scene.svg")

	require.NoError(t, New(config.DefaultConfig().Preview).WriteFile(path, testStrokes()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
}
