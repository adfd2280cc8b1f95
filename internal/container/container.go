package container

import (
	"context"
	"fmt"

	config "github.com/inference-gateway/drawbot/config"
	display "github.com/inference-gateway/drawbot/internal/display"
	recorder "github.com/inference-gateway/drawbot/internal/display/recorder"
	_ "github.com/inference-gateway/drawbot/internal/display/robot"
	x11 "github.com/inference-gateway/drawbot/internal/display/x11"
	draw "github.com/inference-gateway/drawbot/internal/draw"
	domain "github.com/inference-gateway/drawbot/internal/domain"
	storage "github.com/inference-gateway/drawbot/internal/infra/storage"
	interpreter "github.com/inference-gateway/drawbot/internal/interpreter"
	logger "github.com/inference-gateway/drawbot/internal/logger"
	scene "github.com/inference-gateway/drawbot/internal/scene"
	session "github.com/inference-gateway/drawbot/internal/session"
	utils "github.com/inference-gateway/drawbot/internal/utils"
	worker "github.com/inference-gateway/drawbot/internal/worker"
)

// ServiceContainer manages all application dependencies
type ServiceContainer struct {
	config *config.Config

	// Input devices
	provider   display.Provider
	controller display.DisplayController
	recorder   *recorder.Recorder

	// Drawing
	pen      *draw.Pen
	composer *scene.Composer
	focuser  *session.Focuser

	// Services
	store       storage.StateStore
	limiter     *utils.SlidingWindowRateLimiter
	queue       *worker.Queue
	interpreter *interpreter.Interpreter
}

// Option configures a ServiceContainer
type Option func(*ServiceContainer)

// WithProvider uses p instead of the configured display provider
func WithProvider(p display.Provider) Option {
	return func(c *ServiceContainer) {
		c.provider = p
	}
}

// NewServiceContainer creates a new service container with all dependencies
func NewServiceContainer(cfg *config.Config, opts ...Option) (*ServiceContainer, error) {
	c := &ServiceContainer{config: cfg}
	for _, opt := range opts {
		opt(c)
	}

	if err := c.initializeDisplay(); err != nil {
		return nil, err
	}
	if err := c.initializeStorage(); err != nil {
		_ = c.controller.Close()
		return nil, err
	}
	c.initializeDrawing()
	c.initializeServices()
	c.checkScreen(context.Background())

	return c, nil
}

// NewDryRunProvider returns a recorder provider with a screen of the preview
// size and a maximized target window, so focusing always succeeds
func NewDryRunProvider(cfg *config.Config) *recorder.Provider {
	w, h := cfg.Preview.Width, cfg.Preview.Height
	opts := []recorder.Option{recorder.WithScreen(w, h)}
	if len(cfg.Target.Titles) > 0 {
		opts = append(opts, recorder.WithWindow(cfg.Target.Titles[0], display.Region{Width: w, Height: h}))
	}
	return recorder.NewProvider(recorder.New(opts...))
}

func (c *ServiceContainer) selectProvider() (display.Provider, error) {
	switch c.config.Display.Provider {
	case "recorder":
		return NewDryRunProvider(c.config), nil
	case "x11":
		return x11.NewProvider(c.config.Display.Name), nil
	case "":
		return display.DetectDisplay()
	default:
		return display.Select(c.config.Display.Provider)
	}
}

// initializeDisplay resolves the provider and opens its controller
func (c *ServiceContainer) initializeDisplay() error {
	if c.provider == nil {
		p, err := c.selectProvider()
		if err != nil {
			return fmt.Errorf("failed to select display provider: %w", err)
		}
		c.provider = p
	}

	ctrl, err := c.provider.GetController()
	if err != nil {
		return fmt.Errorf("failed to open %s display: %w", c.provider.GetDisplayInfo().Name, err)
	}
	c.controller = ctrl

	if rp, ok := c.provider.(*recorder.Provider); ok {
		c.recorder = rp.Recorder()
	}

	logger.Debug("Display provider selected", "provider", c.provider.GetDisplayInfo().Name)
	return nil
}

func (c *ServiceContainer) initializeStorage() error {
	store, err := storage.NewStateStore(c.config.Storage, c.config.Server.HistoryLimit)
	if err != nil {
		return fmt.Errorf("failed to create %s state store: %w", c.config.Storage.Type, err)
	}
	c.store = store
	return nil
}

func (c *ServiceContainer) initializeDrawing() {
	var sleeper domain.Sleeper = domain.RealSleeper{}
	if c.recorder != nil {
		sleeper = domain.NopSleeper{}
	}

	d := c.config.Drawing
	c.pen = draw.NewPen(c.controller,
		draw.WithSleeper(sleeper),
		draw.WithGlideStep(config.Ms(d.GlideStepMs)),
		draw.WithActionPause(config.Ms(d.ActionPauseMs)),
		draw.WithEllipseSteps(d.EllipseSteps),
	)
	c.composer = scene.New(c.pen, scene.LayoutFromConfig(d))
	c.focuser = session.NewFocuser(c.config.Target, c.controller, session.WithSleeper(sleeper))
}

// checkScreen warns about anchors that would draw off screen. Drawing still
// proceeds since the target canvas may be panned.
func (c *ServiceContainer) checkScreen(ctx context.Context) {
	w, h, err := c.controller.GetScreenDimensions(ctx)
	if err != nil {
		logger.Warn("Could not read screen dimensions", "error", err)
		return
	}
	for _, name := range c.composer.Layout().OutOfBounds(w, h) {
		logger.Warn("Drawing anchor lies outside the screen", "anchor", name, "screen_width", w, "screen_height", h)
	}
}

func (c *ServiceContainer) initializeServices() {
	c.limiter = utils.NewRateLimiter(c.config.RateLimit)
	c.queue = worker.New(c.config.Server.QueueSize)
	c.interpreter = interpreter.New(c.config, c.focuser, c.composer, c.store)
}

// Close drains the command queue and releases the store and display
func (c *ServiceContainer) Close() error {
	c.queue.Close()

	var firstErr error
	if err := c.store.Close(); err != nil {
		firstErr = fmt.Errorf("failed to close state store: %w", err)
	}
	if err := c.controller.Close(); err != nil && firstErr == nil {
		firstErr = fmt.Errorf("failed to close display: %w", err)
	}
	return firstErr
}

func (c *ServiceContainer) GetConfig() *config.Config {
	return c.config
}

// GetDisplayName returns the name of the active display provider
func (c *ServiceContainer) GetDisplayName() string {
	return c.provider.GetDisplayInfo().Name
}

// GetRecorder returns the recorder when drawing is only being recorded
func (c *ServiceContainer) GetRecorder() *recorder.Recorder {
	return c.recorder
}

func (c *ServiceContainer) GetInterpreter() *interpreter.Interpreter {
	return c.interpreter
}

func (c *ServiceContainer) GetQueue() *worker.Queue {
	return c.queue
}

func (c *ServiceContainer) GetRateLimiter() domain.RateLimiter {
	return c.limiter
}

func (c *ServiceContainer) GetStateStore() storage.StateStore {
	return c.store
}
