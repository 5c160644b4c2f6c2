package abyss

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/neon-abyss/internal/config"
)

// ErrNotRevivable is returned by Revive when the run cannot be continued.
var ErrNotRevivable = errors.New("abyss: run cannot be revived")

// Options configures a World.
type Options struct {
	Mode       Mode
	Config     config.AbyssConfig
	Difficulty *config.DifficultyManager
	Rand       Rand // Level generation; defaults to a source seeded with Seed
	FXRand     Rand // Particles; defaults to a source seeded with Seed+1
	Seed       int64
	Effects    Effects
	Clock      Clock
	Skin       Skin
	Shield     bool // Negates spike contact
	OnScore    ScoreSink
	OnGameOver GameOverSink
}

// World is the simulation context: it owns every piece of mutable run
// state and advances it one display frame per Step.
type World struct {
	mode       Mode
	cfg        config.AbyssConfig
	difficulty *config.DifficultyManager
	gen        *Generator
	fx         *ParticleLedger
	effects    Effects
	clock      Clock
	skin       Skin
	shield     bool
	onScore    ScoreSink
	onGameOver GameOverSink

	player      Player
	platforms   []Platform
	projectiles []Projectile
	boss        Boss
	camera      float64
	score       int
	frame       uint64

	invincibleUntil time.Time
	wasGrounded     bool
	prevVY          float64

	over    bool
	reason  Reason
	revives int
}

// NewWorld validates the options and lays out a fresh run.
func NewWorld(opts Options) (*World, error) {
	if !opts.Mode.Playable() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMode, opts.Mode)
	}
	if err := opts.Config.Validate(); err != nil {
		return nil, fmt.Errorf("abyss: %w", err)
	}
	if opts.Difficulty == nil {
		opts.Difficulty = config.NewDifficultyManager(config.DifficultyNormal)
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(opts.Seed))
	}
	if opts.FXRand == nil {
		opts.FXRand = rand.New(rand.NewSource(opts.Seed + 1))
	}
	if opts.Effects == nil {
		opts.Effects = NopEffects{}
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Skin == "" {
		opts.Skin = SkinClassic
	}

	w := &World{
		mode:       opts.Mode,
		cfg:        opts.Config,
		difficulty: opts.Difficulty,
		effects:    opts.Effects,
		clock:      opts.Clock,
		skin:       opts.Skin,
		shield:     opts.Shield,
		onScore:    opts.OnScore,
		onGameOver: opts.OnGameOver,
	}
	w.gen = NewGenerator(opts.Rand, &w.cfg, w.difficulty, w.mode.HasBoss())
	w.fx = NewParticleLedger(opts.FXRand, w.cfg.Particles)
	w.layout()
	return w, nil
}

// layout places the player, the start platform and the first platforms.
func (w *World) layout() {
	pc := w.cfg.Platforms
	w.player = newPlayer(w.cfg)
	w.boss = newBoss(w.cfg)

	w.platforms = make([]Platform, 0, pc.InitialCount+16)
	w.platforms = append(w.platforms, w.gen.Start())
	for i := 1; i <= pc.InitialCount; i++ {
		last := &w.platforms[len(w.platforms)-1]
		w.platforms = append(w.platforms, w.gen.Next(last, pc.StartY+float64(i)*pc.InitialSpacing, 0))
	}
}

// Mode returns the run's mode.
func (w *World) Mode() Mode { return w.mode }

// Score returns the current depth.
func (w *World) Score() int { return w.score }

// Camera returns the top of the visible window.
func (w *World) Camera() float64 { return w.camera }

// Over reports whether the run has ended.
func (w *World) Over() bool { return w.over }

// Reason returns why the run ended, or ReasonNone.
func (w *World) Reason() Reason { return w.reason }

// Frame returns the number of simulated frames.
func (w *World) Frame() uint64 { return w.frame }

// Revives returns how many revives this run has used.
func (w *World) Revives() int { return w.revives }

// Player returns a copy of the player state.
func (w *World) Player() Player { return w.player }

// Boss returns a copy of the boss state.
func (w *World) Boss() Boss { return w.boss }

// SetShield toggles the shield item. It is consulted at spike contact.
func (w *World) SetShield(on bool) { w.shield = on }

// Step advances the run by one frame. It does nothing once the run is over.
func (w *World) Step(in Input) {
	if w.over {
		return
	}
	w.frame++

	w.expireInvincibility()
	w.handleJump(in)

	phys := w.cfg.Physics
	w.player.steer(in, phys)
	w.player.accelerate(phys)
	w.whoosh()
	w.player.integrate(w.cfg.Field.Width)

	if w.mode.HasBoss() {
		if w.updateBoss() {
			return
		}
	}
	if w.resolvePlatforms() {
		return
	}
	w.advancePlatforms()
	w.advanceCamera()
	if w.checkCeiling() {
		return
	}
	w.generate()
	w.evict()
	w.fx.Update()
}

func (w *World) expireInvincibility() {
	if w.player.Invincible && w.clock().After(w.invincibleUntil) {
		w.player.Invincible = false
	}
}

func (w *World) handleJump(in Input) {
	if in.JumpPress {
		w.player.StartCharge()
	}
	if in.JumpRelease && w.player.ReleaseCharge(in.Direction(), w.cfg.Physics) {
		w.effects.PlayJump()
	}
}

// whoosh fires when airborne vertical speed crosses the threshold downward.
func (w *World) whoosh() {
	threshold := w.cfg.Physics.WhooshSpeed
	if !w.player.Grounded && w.player.VY > threshold && w.prevVY <= threshold {
		w.effects.PlayWhoosh()
	}
	w.prevVY = w.player.VY
}

// end finishes the run once and notifies the sinks.
func (w *World) end(r Reason) {
	if w.over {
		return
	}
	w.over = true
	w.reason = r
	if r.Victory() {
		w.effects.PlayWin()
	} else {
		w.effects.PlayFail()
	}
	if w.onGameOver != nil {
		w.onGameOver(w.score, r)
	}
}

// CanRevive reports whether Revive would succeed.
func (w *World) CanRevive() bool {
	return w.over &&
		!w.reason.Victory() &&
		w.mode.Revivable() &&
		w.revives < w.cfg.Revive.MaxPerRun
}

// Revive continues a finished run: the player respawns just below the
// ceiling with a wall-clock invincibility window. Depth, camera and
// platforms are kept.
func (w *World) Revive() error {
	if !w.CanRevive() {
		return ErrNotRevivable
	}
	rc := w.cfg.Revive
	p := &w.player
	p.X = w.cfg.Field.Width/2 - p.Size/2
	p.Y = w.camera + rc.SpawnOffset
	p.VX, p.VY = 0, 0
	p.Grounded = false
	p.Charging = false
	p.Charge = 0
	p.Invincible = true

	w.invincibleUntil = w.clock().Add(time.Duration(rc.InvincibleMillis) * time.Millisecond)
	w.wasGrounded = false
	w.prevVY = 0
	w.projectiles = w.projectiles[:0]
	w.over = false
	w.reason = ReasonNone
	w.revives++
	return nil
}
