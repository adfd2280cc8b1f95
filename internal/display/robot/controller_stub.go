//go:build !darwin && !windows

package robot

import (
	"fmt"

	display "github.com/inference-gateway/drawbot/internal/display"
)

// IsAvailable returns false; X11 covers this platform
func (p *Provider) IsAvailable() bool {
	return false
}

// GetController always fails on this platform
func (p *Provider) GetController() (display.DisplayController, error) {
	return nil, fmt.Errorf("robot display provider not available on this system")
}
