// Package abyss implements Neon Abyss, a vertical charge-jump platformer:
// the player falls through a procedurally generated shaft, scores one floor
// per newly visited platform and is pushed along by a forced-scroll ceiling.
//
// World is the simulation; Driver adds the pause gate; Game adapts both to
// the registry so every frontend can run the three modes.
package abyss

import (
	"time"

	"github.com/vovakirdan/neon-abyss/internal/config"
	"github.com/vovakirdan/neon-abyss/internal/core"
	"github.com/vovakirdan/neon-abyss/internal/registry"
)

func init() {
	for _, mode := range Modes {
		registry.Register(mode.String(), func() registry.Game {
			return NewGame(mode)
		})
	}
}

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset = config.DifficultyNormal

// Defaults picked up by games created through the registry.
var (
	defaultSkin    Skin
	defaultShield  bool
	defaultEffects Effects
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names select normal.
func SetDifficultyPreset(preset string) {
	p, ok := config.ParsePreset(preset)
	if !ok {
		p = config.DifficultyNormal
	}
	difficultyPreset = p
}

// SetSkin sets the skin for new games.
func SetSkin(s Skin) {
	defaultSkin = s
}

// SetShield sets whether new games start with the shield item.
func SetShield(on bool) {
	defaultShield = on
}

// SetEffects sets the effects port for new games. nil restores the no-op.
func SetEffects(fx Effects) {
	defaultEffects = fx
}

// GameOption customizes a single Game.
type GameOption func(*Game)

// WithEffects overrides the effects port.
func WithEffects(fx Effects) GameOption {
	return func(g *Game) { g.effects = fx }
}

// WithSkin overrides the skin.
func WithSkin(s Skin) GameOption {
	return func(g *Game) { g.skin = s }
}

// WithShield overrides the shield item.
func WithShield(on bool) GameOption {
	return func(g *Game) { g.shield = on }
}

// WithClock overrides the wall clock used for invincibility.
func WithClock(c Clock) GameOption {
	return func(g *Game) { g.clock = c }
}

// WithConfig uses cfg instead of loading the tuning file.
func WithConfig(cfg config.AbyssConfig) GameOption {
	return func(g *Game) { g.fixedCfg = &cfg }
}

// WithScoreSink registers a callback for every new floor.
func WithScoreSink(fn ScoreSink) GameOption {
	return func(g *Game) { g.onScore = fn }
}

// WithGameOverSink registers a callback for the end of a run.
func WithGameOverSink(fn GameOverSink) GameOption {
	return func(g *Game) { g.onGameOver = fn }
}

// Game adapts a World to the registry.
type Game struct {
	mode       Mode
	runtime    core.RuntimeConfig
	fixedCfg   *config.AbyssConfig
	effects    Effects
	skin       Skin
	shield     bool
	clock      Clock
	onScore    ScoreSink
	onGameOver GameOverSink

	world  *World
	driver *Driver
	snap   Snapshot
}

// NewGame creates a game for the mode with the package defaults.
func NewGame(mode Mode, opts ...GameOption) *Game {
	g := &Game{
		mode:    mode,
		effects: defaultEffects,
		skin:    defaultSkin,
		shield:  defaultShield,
		clock:   time.Now,
	}
	if g.effects == nil {
		g.effects = NopEffects{}
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID returns the mode identifier.
func (g *Game) ID() string {
	return g.mode.String()
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.mode.Title()
}

// Mode returns the game's mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// Reset starts a fresh run.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg := g.loadConfig()
	opts := Options{
		Mode:       g.mode,
		Config:     cfg,
		Difficulty: config.NewDifficultyManager(difficultyPreset),
		Seed:       runtime.Seed,
		Effects:    g.effects,
		Clock:      g.clock,
		Skin:       g.skin,
		Shield:     g.shield,
		OnScore:    g.onScore,
		OnGameOver: g.onGameOver,
	}
	w, err := NewWorld(opts)
	if err != nil {
		// Tuning that loaded but cannot run falls back to the defaults
		opts.Config = config.DefaultAbyssConfig()
		w, _ = NewWorld(opts) //nolint:errcheck // defaults always validate
	}
	g.world = w
	g.driver = NewDriver(w)
	g.snap = w.Snapshot()
}

func (g *Game) loadConfig() config.AbyssConfig {
	if g.fixedCfg != nil {
		return *g.fixedCfg
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.DefaultAbyssConfig()
	}
	return cfg
}

// Step advances the run by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) && !g.world.Over() {
		g.driver.TogglePause()
	}
	if in.Has(core.ActionRevive) && g.world.CanRevive() {
		//nolint:errcheck // CanRevive was checked
		g.world.Revive()
	}

	g.driver.Tick(InputFromFrame(in))
	g.snap = g.world.Snapshot()

	return core.StepResult{State: g.State()}
}

// InputFromFrame maps frontend actions to simulation input.
func InputFromFrame(in core.InputFrame) Input {
	return Input{
		Left:        in.Has(core.ActionLeft),
		Right:       in.Has(core.ActionRight),
		Drop:        in.Has(core.ActionDrop),
		JumpPress:   in.Has(core.ActionJumpPress),
		JumpRelease: in.Has(core.ActionJumpRelease),
	}
}

// State returns depth, pause and outcome.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.world.Score(),
		GameOver: g.world.Over(),
		Paused:   g.driver.Paused(),
		Reason:   g.world.Reason().Message(),
		Victory:  g.world.Reason().Victory(),
	}
}

// Snapshot returns the state captured after the last step.
func (g *Game) Snapshot() Snapshot {
	return g.snap
}

// Outcome returns the terminal reason, or ReasonNone while running.
func (g *Game) Outcome() Reason {
	if g.world == nil {
		return ReasonNone
	}
	return g.world.Reason()
}

// CanRevive reports whether the finished run may be continued.
func (g *Game) CanRevive() bool {
	return g.world != nil && g.world.CanRevive()
}

// Revive continues the finished run.
func (g *Game) Revive() error {
	if g.world == nil {
		return ErrNotRevivable
	}
	err := g.world.Revive()
	g.snap = g.world.Snapshot()
	return err
}

// SetPaused opens or closes the pause gate.
func (g *Game) SetPaused(paused bool) {
	if paused {
		g.driver.Pause()
	} else {
		g.driver.Resume()
	}
}

// Revives returns how many revives the current run has used.
func (g *Game) Revives() int {
	if g.world == nil {
		return 0
	}
	return g.world.Revives()
}

// Skin returns the skin new runs use.
func (g *Game) Skin() Skin {
	if g.skin == "" {
		return SkinClassic
	}
	return g.skin
}

// Background returns the backdrop color for the current depth.
func (g *Game) Background() core.Color {
	return Background(g.mode, g.snap.Score)
}

// Charging reports whether the player was charging after the last step.
func (g *Game) Charging() bool {
	return g.snap.Player.Charging
}
