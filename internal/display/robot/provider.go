package robot

import (
	display "github.com/inference-gateway/drawbot/internal/display"
)

// Provider creates robotgo controllers on macOS and Windows
type Provider struct{}

var _ display.Provider = (*Provider)(nil)

// NewProvider creates a new robot provider
func NewProvider() *Provider {
	return &Provider{}
}

// GetDisplayInfo describes the robotgo backend
func (p *Provider) GetDisplayInfo() display.DisplayInfo {
	return display.DisplayInfo{
		Name:            "robot",
		SupportsWindows: true,
		SupportsMouse:   true,
		SupportsKeys:    true,
	}
}

func init() {
	display.Register(NewProvider())
}
