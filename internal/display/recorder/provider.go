package recorder

import (
	display "github.com/inference-gateway/drawbot/internal/display"
)

// Provider hands out one shared Recorder so callers can inspect what every
// controller produced
type Provider struct {
	rec *Recorder
}

var _ display.Provider = (*Provider)(nil)

// NewProvider creates a provider around rec, or a fresh Recorder when nil
func NewProvider(rec *Recorder) *Provider {
	if rec == nil {
		rec = New()
	}
	return &Provider{rec: rec}
}

// Recorder returns the shared recorder
func (p *Provider) Recorder() *Recorder {
	return p.rec
}

// GetController returns the shared recorder
func (p *Provider) GetController() (display.DisplayController, error) {
	return p.rec, nil
}

// GetDisplayInfo describes the recorder
func (p *Provider) GetDisplayInfo() display.DisplayInfo {
	return display.DisplayInfo{
		Name:            "recorder",
		SupportsWindows: true,
		SupportsMouse:   true,
		SupportsKeys:    true,
	}
}

// IsAvailable always returns true
func (p *Provider) IsAvailable() bool {
	return true
}
