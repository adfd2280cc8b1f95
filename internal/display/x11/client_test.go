package x11

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestButtonCode(t *testing.T) {
	tests := []struct {
		button  string
		want    byte
		wantErr bool
	}{
		{button: "left", want: 1},
		{button: "middle", want: 2},
		{button: "right", want: 3},
		{button: "thumb", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.button, func(t *testing.T) {
			got, err := buttonCode(tt.button)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProviderInfo(t *testing.T) {
	p := NewProvider(":0")
	info := p.GetDisplayInfo()
	assert.Equal(t, "x11", info.Name)
	assert.True(t, info.SupportsWindows)

	t.Setenv("DISPLAY", ":0")
	t.Setenv("WAYLAND_DISPLAY", "")
	assert.True(t, p.IsAvailable())

	t.Setenv("WAYLAND_DISPLAY", "wayland-0")
	assert.False(t, p.IsAvailable())
}
