package session

import (
	"context"
	"errors"
	"fmt"

	config "github.com/inference-gateway/drawbot/config"
	display "github.com/inference-gateway/drawbot/internal/display"
	domain "github.com/inference-gateway/drawbot/internal/domain"
	logger "github.com/inference-gateway/drawbot/internal/logger"
)

// Focuser finds or launches the target paint application and brings its
// window to the foreground, maximized, with keyboard focus on the canvas
type Focuser struct {
	cfg      config.TargetConfig
	ctrl     display.DisplayController
	wm       display.WindowManager
	launcher domain.Launcher
	sleeper  domain.Sleeper
}

var _ domain.Focuser = (*Focuser)(nil)

// Option configures a Focuser
type Option func(*Focuser)

// WithLauncher replaces the process launcher
func WithLauncher(l domain.Launcher) Option {
	return func(f *Focuser) {
		f.launcher = l
	}
}

// WithSleeper replaces the sleeper used for polling and settle delays
func WithSleeper(s domain.Sleeper) Option {
	return func(f *Focuser) {
		f.sleeper = s
	}
}

// NewFocuser creates a Focuser. Window management is used when ctrl
// implements display.WindowManager.
func NewFocuser(cfg config.TargetConfig, ctrl display.DisplayController, opts ...Option) *Focuser {
	f := &Focuser{
		cfg:      cfg,
		ctrl:     ctrl,
		launcher: ExecLauncher{},
		sleeper:  domain.RealSleeper{},
	}
	if wm, ok := ctrl.(display.WindowManager); ok {
		f.wm = wm
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// AppName returns the display name of the target application
func (f *Focuser) AppName() string {
	return f.cfg.AppName
}

func (f *Focuser) fail(kind domain.FocusFailure, cause error) domain.FocusResult {
	err := &domain.FocusError{Kind: kind, App: f.cfg.AppName, Cause: cause}
	return domain.FocusResult{OK: false, Reason: err.Error(), Err: err}
}

// Focus runs the find-or-launch, restore, activate, maximize and click
// sequence. Only the window search after a launch is bounded by the focus
// timeout; every failure is reported in the result.
func (f *Focuser) Focus(ctx context.Context) domain.FocusResult {
	log := logger.Sugar(ctx)

	if f.wm == nil {
		log.Warnw("Display controller cannot manage windows, assuming target is focused", "app", f.cfg.AppName)
		return domain.FocusResult{OK: true, Reason: "window management unsupported"}
	}

	win := f.find(ctx)
	launched := false
	if win != nil {
		log.Infow("Found existing window", "title", win.Title)
	} else {
		if err := f.launch(ctx); err != nil {
			log.Errorw("Failed to launch target application", "app", f.cfg.AppName, "error", err)
			return f.fail(domain.FocusLaunchFailed, err)
		}
		launched = true

		var res *domain.FocusResult
		win, res = f.waitForWindow(ctx)
		if res != nil {
			return *res
		}
		log.Infow("Window appeared", "title", win.Title)
	}

	f.bringToFront(ctx, win)
	f.maximize(ctx, win)
	f.clickCanvas(ctx, win)

	log.Infow("Window ready", "title", win.Title)
	return domain.FocusResult{OK: true, Title: win.Title, Launched: launched}
}

func (f *Focuser) find(ctx context.Context) *display.Window {
	win, err := f.wm.FindWindow(ctx, f.cfg.Titles)
	if err != nil {
		if !errors.Is(err, domain.ErrWindowNotFound) {
			logger.Sugar(ctx).Debugw("Window search failed", "error", err)
		}
		return nil
	}
	return win
}

func (f *Focuser) launch(ctx context.Context) error {
	log := logger.Sugar(ctx)

	log.Infow("Launching target application", "app", f.cfg.AppName, "command", f.cfg.LaunchCommand)
	primaryErr := f.launcher.Launch(ctx, f.cfg.LaunchCommand)
	if primaryErr == nil {
		return nil
	}
	log.Warnw("Primary launch failed, trying fallback", "error", primaryErr, "command", f.cfg.FallbackLaunchCommand)

	if err := f.launcher.Launch(ctx, f.cfg.FallbackLaunchCommand); err != nil {
		return fmt.Errorf("%v; fallback: %w", primaryErr, err)
	}
	return nil
}

func (f *Focuser) pollAttempts() int {
	timeout, poll := f.cfg.FocusTimeout(), f.cfg.PollInterval()
	if poll <= 0 {
		return 1
	}
	n := int((timeout + poll - 1) / poll)
	if n < 1 {
		n = 1
	}
	return n
}

func (f *Focuser) waitForWindow(ctx context.Context) (*display.Window, *domain.FocusResult) {
	for i := 0; i < f.pollAttempts(); i++ {
		if err := ctx.Err(); err != nil {
			res := f.fail(domain.FocusCancelled, err)
			return nil, &res
		}
		if win := f.find(ctx); win != nil {
			return win, nil
		}
		f.sleeper.Sleep(f.cfg.PollInterval())
	}

	logger.Sugar(ctx).Errorw("Target window did not appear", "app", f.cfg.AppName, "timeout", f.cfg.FocusTimeout())
	res := f.fail(domain.FocusWindowNotFound, nil)
	return nil, &res
}

func (f *Focuser) bringToFront(ctx context.Context, win *display.Window) {
	if err := f.activate(ctx, win); err != nil {
		logger.Sugar(ctx).Warnw("Window activation failed, switching applications", "error", err, "combo", f.cfg.SwitchCombo)
		if err := f.ctrl.SendKeyCombo(ctx, f.cfg.SwitchCombo); err != nil {
			logger.Sugar(ctx).Warnw("Application switch failed", "error", err)
		}
		f.sleeper.Sleep(config.Ms(f.cfg.ActivateDelayMs))
	}
}

func (f *Focuser) activate(ctx context.Context, win *display.Window) error {
	minimized, err := f.wm.IsMinimized(ctx, win)
	if err != nil {
		return fmt.Errorf("read window state: %w", err)
	}
	if minimized {
		if err := f.wm.Restore(ctx, win); err != nil {
			return fmt.Errorf("restore: %w", err)
		}
		f.sleeper.Sleep(config.Ms(f.cfg.RestoreDelayMs))
	}

	if err := f.wm.Activate(ctx, win); err != nil {
		return fmt.Errorf("activate: %w", err)
	}
	f.sleeper.Sleep(config.Ms(f.cfg.ActivateDelayMs))

	active, err := f.wm.IsActive(ctx, win)
	if err != nil {
		return fmt.Errorf("confirm activation: %w", err)
	}
	if !active {
		return fmt.Errorf("window did not activate")
	}
	return nil
}

func (f *Focuser) maximize(ctx context.Context, win *display.Window) {
	maximized, err := f.wm.IsMaximized(ctx, win)
	if err == nil && maximized {
		return
	}
	if err := f.wm.Maximize(ctx, win); err != nil {
		logger.Sugar(ctx).Debugw("Maximize failed", "error", err)
		return
	}
	f.sleeper.Sleep(config.Ms(f.cfg.MaximizeDelayMs))
}

// clickCanvas clicks inside the drawing area so keystrokes reach the
// canvas; failures are warnings
func (f *Focuser) clickCanvas(ctx context.Context, win *display.Window) {
	region, err := f.wm.Geometry(ctx, win)
	if err != nil {
		logger.Sugar(ctx).Warnw("Click focus failed", "error", err)
		return
	}

	x, y := CanvasPoint(region, f.cfg.CanvasClickX, f.cfg.CanvasClickY)
	if err := f.ctrl.MoveMouse(ctx, x, y); err != nil {
		logger.Sugar(ctx).Warnw("Click focus failed", "error", err)
		return
	}
	if err := f.ctrl.ClickMouse(ctx, display.MouseButtonLeft, 1); err != nil {
		logger.Sugar(ctx).Warnw("Click focus failed", "error", err)
		return
	}
	f.sleeper.Sleep(config.Ms(f.cfg.FocusClickDelayMs))
}

// CanvasPoint returns the point at the given fractions of the region
func CanvasPoint(r display.Region, fx, fy float64) (int, int) {
	return r.X + int(float64(r.Width)*fx), r.Y + int(float64(r.Height)*fy)
}
