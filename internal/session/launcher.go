package session

import (
	"context"
	"fmt"
	"os/exec"

	domain "github.com/inference-gateway/drawbot/internal/domain"
	logger "github.com/inference-gateway/drawbot/internal/logger"
)

// ExecLauncher starts a detached process. The process is not tied to ctx so
// the application outlives the request that started it.
type ExecLauncher struct{}

var _ domain.Launcher = ExecLauncher{}

// Launch starts argv[0] with the remaining arguments and reaps it in the
// background
func (ExecLauncher) Launch(ctx context.Context, argv []string) error {
	if len(argv) == 0 {
		return fmt.Errorf("no launch command configured")
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", argv[0], err)
	}

	go func() {
		if err := cmd.Wait(); err != nil {
			logger.Debug("Launched process exited", "command", argv[0], "error", err)
		}
	}()
	return nil
}
