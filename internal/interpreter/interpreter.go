package interpreter

import (
	"context"
	"fmt"
	"time"

	config "github.com/inference-gateway/drawbot/config"
	commands "github.com/inference-gateway/drawbot/internal/commands"
	domain "github.com/inference-gateway/drawbot/internal/domain"
	storage "github.com/inference-gateway/drawbot/internal/infra/storage"
	logger "github.com/inference-gateway/drawbot/internal/logger"
	scene "github.com/inference-gateway/drawbot/internal/scene"
)

const (
	StatusScene          = "OK: Full professional scene drawn."
	StatusHouse          = "OK: House drawn."
	StatusTreeAnchored   = "OK: Tree drawn to the right of last house."
	StatusTree           = "OK: Tree drawn (no house found earlier)."
	StatusCarAnchored    = "OK: Car drawn front-left of last house."
	StatusCar            = "OK: Car drawn (no house found earlier)."
	StatusPersonAnchored = "OK: Person drawn near last house."
	StatusPerson         = "OK: Person drawn (no house found earlier)."
	StatusSun            = "OK: Sun drawn."
	StatusGrass          = "OK: Grass drawn."
	StatusCleared        = "OK: Canvas cleared."
)

// Result describes what one prompt did
type Result struct {
	Command domain.Command
	Status  string
	Focus   domain.FocusResult
	// Ops is the number of drawing primitives issued for this prompt
	Ops     int
}

// Interpreter classifies prompts and drives the composers. Calls must be
// serialized by the caller since the pen tracks a single cursor.
type Interpreter struct {
	appName  string
	drawing  config.DrawingConfig
	focuser  domain.Focuser
	composer *scene.Composer
	store    storage.StateStore
	now      func() time.Time
}

// New creates an Interpreter
func New(cfg *config.Config, focuser domain.Focuser, composer *scene.Composer, store storage.StateStore) *Interpreter {
	return &Interpreter{
		appName:  cfg.Target.AppName,
		drawing:  cfg.Drawing,
		focuser:  focuser,
		composer: composer,
		store:    store,
		now:      time.Now,
	}
}

// Execute runs a prompt and returns the status line shown to the user
func (i *Interpreter) Execute(ctx context.Context, sessionID, prompt string) (string, error) {
	res, err := i.Run(ctx, sessionID, prompt)
	if err != nil {
		return "", err
	}
	return res.Status, nil
}

// Run classifies prompt, focuses the target and draws. Unknown prompts and
// focus failures are reported in the status, not as errors.
func (i *Interpreter) Run(ctx context.Context, sessionID, prompt string) (Result, error) {
	ctx = logger.WithSession(ctx, sessionID, prompt)
	log := logger.Sugar(ctx)

	res := Result{Command: commands.Parse(prompt)}
	if res.Command.Ambiguous() {
		log.Debugw("Prompt names several elements", "matched", res.Command.Matched, "kind", res.Command.Kind.String())
	}

	if res.Command.Kind == domain.KindUnknown {
		res.Status = commands.HelpMessage
		i.record(ctx, sessionID, res, true)
		return res, nil
	}

	res.Focus = i.focuser.Focus(ctx)
	if !res.Focus.OK {
		log.Warnw("Could not focus target application", "app", i.appName, "reason", res.Focus.Reason, "error", res.Focus.Err)
		res.Status = fmt.Sprintf("ERROR: Could not open/focus %s.", i.appName)
		i.record(ctx, sessionID, res, false)
		return res, nil
	}

	pen := i.composer.Pen()
	if err := pen.Sync(ctx); err != nil {
		log.Debugw("Keeping tracked cursor position", "error", err)
	}

	state, err := i.store.LoadState(ctx, sessionID)
	if err != nil {
		return res, fmt.Errorf("failed to load session state: %w", err)
	}

	before := pen.Ops()
	status, err := i.dispatch(ctx, res.Command.Kind, state)
	res.Ops = pen.Ops() - before
	if err != nil {
		res.Status = err.Error()
		i.record(ctx, sessionID, res, false)
		return res, fmt.Errorf("failed to draw %s: %w", res.Command.Kind, err)
	}
	res.Status = status

	log.Infow("Command completed", "kind", res.Command.Kind.String(), "ops", res.Ops)
	i.record(ctx, sessionID, res, true)
	return res, nil
}

func (i *Interpreter) dispatch(ctx context.Context, kind domain.CommandKind, state *domain.SessionState) (string, error) {
	c := i.composer
	last := state.LastHouse

	switch kind {
	case domain.KindScene:
		return StatusScene, i.drawScene(ctx, state)

	case domain.KindHouse:
		house, err := c.House(ctx, c.Layout().House)
		if err != nil {
			return "", err
		}
		return StatusHouse, i.saveHouse(ctx, state, house)

	case domain.KindTree:
		if err := c.Tree(ctx, last, scene.SideRight); err != nil {
			return "", err
		}
		return anchored(last, StatusTreeAnchored, StatusTree), nil

	case domain.KindCar:
		if err := c.Car(ctx, last); err != nil {
			return "", err
		}
		return anchored(last, StatusCarAnchored, StatusCar), nil

	case domain.KindPerson:
		if err := c.Person(ctx, last); err != nil {
			return "", err
		}
		return anchored(last, StatusPersonAnchored, StatusPerson), nil

	case domain.KindSun:
		return StatusSun, c.SunNear(ctx, last)

	case domain.KindGrass:
		return StatusGrass, c.Grass(ctx, last)

	case domain.KindClear:
		return StatusCleared, i.clear(ctx, state.ID)
	}

	return "", fmt.Errorf("unsupported command kind %s", kind)
}

// drawScene draws house, tree, person and sun, all placed from the one house
// box drawn here
func (i *Interpreter) drawScene(ctx context.Context, state *domain.SessionState) error {
	c := i.composer
	pen := c.Pen()

	house, err := c.House(ctx, c.Layout().House)
	if err != nil {
		return err
	}
	if err := i.saveHouse(ctx, state, house); err != nil {
		return err
	}

	pen.Sleep(config.Ms(i.drawing.ScenePauseMs))
	if err := c.Tree(ctx, &house, scene.SideRight); err != nil {
		return err
	}

	pen.Sleep(config.Ms(i.drawing.ElementPauseMs))
	if err := c.Person(ctx, &house); err != nil {
		return err
	}

	pen.Sleep(config.Ms(i.drawing.ElementPauseMs))
	return c.SunNear(ctx, &house)
}

func (i *Interpreter) saveHouse(ctx context.Context, state *domain.SessionState, house domain.Box) error {
	state.LastHouse = &house
	state.UpdatedAt = i.now()
	if err := i.store.SaveState(ctx, state); err != nil {
		return fmt.Errorf("failed to save session state: %w", err)
	}
	return nil
}

func (i *Interpreter) clear(ctx context.Context, sessionID string) error {
	logger.Sugar(ctx).Infow("Clearing canvas")
	pen := i.composer.Pen()

	if err := pen.Keys(ctx, i.drawing.SelectAllCombo); err != nil {
		return fmt.Errorf("select all: %w", err)
	}
	pen.Sleep(config.Ms(i.drawing.ClearKeyDelayMs))
	if err := pen.Keys(ctx, i.drawing.DeleteKey); err != nil {
		return fmt.Errorf("delete: %w", err)
	}

	if err := i.store.ResetState(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to reset session state: %w", err)
	}
	return nil
}

// record appends the outcome to the session history. A failing history
// write never fails the command.
func (i *Interpreter) record(ctx context.Context, sessionID string, res Result, success bool) {
	entry := domain.HistoryEntry{
		SessionID: sessionID,
		Prompt:    res.Command.Prompt,
		Kind:      res.Command.Kind.String(),
		Status:    res.Status,
		Success:   success,
		CreatedAt: i.now(),
	}
	if err := i.store.AppendHistory(ctx, entry); err != nil {
		logger.Sugar(ctx).Warnw("Failed to append history", "error", err)
	}
}

func anchored(house *domain.Box, withHouse, without string) string {
	if house != nil {
		return withHouse
	}
	return without
}
