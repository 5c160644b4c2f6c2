// Package desktop runs the game in an ebiten window: the same simulation
// and run recording as the terminal frontend, drawn with vector shapes.
package desktop

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/neon-abyss/internal/core"
	"github.com/vovakirdan/neon-abyss/internal/games/abyss"
	"github.com/vovakirdan/neon-abyss/internal/storage"
)

// DefaultScale fits the 400x800 field on a 1080p display.
const DefaultScale = 0.9

// Options configures a window.
type Options struct {
	Game    *abyss.Game
	Runtime core.RuntimeConfig
	Store   *storage.Store // Optional
	Logger  *log.Logger    // Optional
	Scale   float64        // Window pixels per field unit
}

// Window implements ebiten.Game around an abyss.Game.
type Window struct {
	game    *abyss.Game
	runtime core.RuntimeConfig
	store   *storage.Store
	logger  *log.Logger
	keys    keyboard
	frame   core.InputFrame
	state   core.GameState

	overSeen bool
	pending  bool
	quit     bool
}

// New creates a window and starts the first run.
func New(opts Options) (*Window, error) {
	if opts.Game == nil {
		return nil, errors.New("desktop: no game")
	}
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = 60
	}
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	w := &Window{
		game:    opts.Game,
		runtime: opts.Runtime,
		store:   opts.Store,
		logger:  opts.Logger,
		keys:    ebitenKeyboard{},
		frame:   core.NewInputFrame(),
	}
	w.game.Reset(w.runtime)
	w.state = w.game.State()
	return w, nil
}

// Update advances one tick.
func (w *Window) Update() error {
	readInput(w.keys, &w.frame)
	return w.step()
}

func (w *Window) step() error {
	if w.frame.Has(core.ActionQuit) {
		w.settle()
		w.quit = true
		return ebiten.Termination
	}

	if w.frame.Has(core.ActionRestart) && w.state.GameOver {
		w.settle()
		w.runtime.Seed = time.Now().UnixNano()
		w.game.Reset(w.runtime)
		w.state = w.game.State()
		w.overSeen = false
		return nil
	}

	w.state = w.game.Step(w.frame).State

	switch {
	case w.state.GameOver && !w.overSeen:
		w.overSeen = true
		if w.game.CanRevive() {
			w.pending = true
		} else {
			w.record()
		}
	case !w.state.GameOver && w.overSeen:
		w.overSeen = false
		w.pending = false
		w.logger.Debug("revived", "revives", w.game.Revives())
	}
	return nil
}

// settle records a run still waiting for a revive.
func (w *Window) settle() {
	if w.pending {
		w.record()
	}
}

func (w *Window) record() {
	w.pending = false
	if w.state.Score <= 0 {
		return
	}

	run := storage.Run{
		Mode:    w.game.ID(),
		Depth:   w.state.Score,
		Reason:  w.game.Outcome().String(),
		Victory: w.state.Victory,
		Revives: w.game.Revives(),
		Skin:    string(w.game.Skin()),
	}
	if w.store != nil {
		if _, err := w.store.SaveRun(run); err != nil {
			w.logger.Error("save run", "err", err)
			return
		}
	}
	w.logger.Info("run recorded", "mode", run.Mode, "depth", run.Depth, "reason", run.Reason)
}

// Layout keeps the logical screen at field size; ebiten scales it.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := w.game.Snapshot()
	return int(s.FieldW), int(s.FieldH)
}

// Run opens a window and blocks until it is closed or the player quits.
func Run(opts Options) error {
	w, err := New(opts)
	if err != nil {
		return err
	}
	if opts.Scale <= 0 {
		opts.Scale = DefaultScale
	}

	s := w.game.Snapshot()
	ebiten.SetWindowSize(int(s.FieldW*opts.Scale), int(s.FieldH*opts.Scale))
	ebiten.SetWindowTitle(fmt.Sprintf("Neon Abyss - %s", w.game.Title()))
	ebiten.SetTPS(w.runtime.TickRate)
	w.logger.Info("window open", "mode", w.game.ID(), "tps", w.runtime.TickRate, "seed", w.runtime.Seed)

	err = ebiten.RunGame(w)
	// Closing the window skips Update's quit path
	w.settle()
	if err != nil {
		return fmt.Errorf("desktop: %w", err)
	}
	return nil
}
