package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	config "github.com/inference-gateway/drawbot/config"
	domain "github.com/inference-gateway/drawbot/internal/domain"
)

func TestRunDrawDryRun(t *testing.T) {
	var out bytes.Buffer
	err := runDraw(context.Background(), &out, config.DefaultConfig(), "house", drawOptions{dryRun: true, sessionID: "test"})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "[house] -> OK: House drawn.")
}

func TestRunDrawPreview(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.svg")

	var out bytes.Buffer
	err := runDraw(context.Background(), &out, config.DefaultConfig(), "draw scene", drawOptions{preview: path, sessionID: "test"})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "OK: Full professional scene drawn.")
	assert.Contains(t, out.String(), "preview written to")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
}

func TestRunDrawUnknownPrompt(t *testing.T) {
	var out bytes.Buffer
	err := runDraw(context.Background(), &out, config.DefaultConfig(), "dance", drawOptions{dryRun: true, verbose: true})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Unknown command")
	assert.Contains(t, out.String(), "primitives: 0")
}

func TestRunDrawEmptyPrompt(t *testing.T) {
	err := runDraw(context.Background(), &bytes.Buffer{}, config.DefaultConfig(), "  ", drawOptions{dryRun: true})
	assert.ErrorIs(t, err, domain.ErrEmptyPrompt)
}
