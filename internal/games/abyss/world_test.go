package abyss

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/neon-abyss/internal/config"
)

func normalAt(x, y, w float64) Platform {
	return Platform{X: x, Y: y, W: w, Variant: VariantNormal}
}

func spikeAt(x, y, w float64) Platform {
	return Platform{X: x, Y: y, W: w, Variant: VariantSpike}
}

func TestInitialLayout(t *testing.T) {
	h := newHarness(t, ModeClassic)
	w := h.w

	if len(w.platforms) != 10 {
		t.Fatalf("expected 10 platforms, got %d", len(w.platforms))
	}
	start := w.platforms[0]
	if !start.Visited || start.Y != 200 || start.W != 200 {
		t.Errorf("start platform = %+v", start)
	}
	for i := 1; i < len(w.platforms); i++ {
		if want := 200 + 150*float64(i); w.platforms[i].Y != want {
			t.Errorf("platform %d at y=%v, expected %v", i, w.platforms[i].Y, want)
		}
	}
	if w.player.X != 200 || w.player.Y != 100 {
		t.Errorf("player spawned at (%v, %v), expected (200, 100)", w.player.X, w.player.Y)
	}
	if w.boss.Y != -200 || w.boss.Health != 100 || w.boss.Phase != 1 {
		t.Errorf("boss = %+v", w.boss)
	}
	if w.Score() != 0 || w.Camera() != 0 {
		t.Error("a fresh run starts at depth 0 with the camera at 0")
	}
}

func TestNewWorldValidation(t *testing.T) {
	_, err := NewWorld(Options{Mode: ModePVP, Config: config.DefaultAbyssConfig()})
	if !errors.Is(err, ErrUnknownMode) {
		t.Errorf("PVP mode: err = %v, expected ErrUnknownMode", err)
	}

	if _, err := NewWorld(Options{Mode: ModeClassic}); err == nil {
		t.Error("zero config should be rejected")
	}
}

func TestLandingScoresOnce(t *testing.T) {
	h := newHarness(t, ModeClassic)
	h.stage(120, 367, 2, normalAt(100, 400, 100))

	h.w.Step(Input{})
	if h.w.Score() != 1 {
		t.Fatalf("Score = %d after first landing, expected 1", h.w.Score())
	}
	if !h.w.platforms[0].Visited || !h.w.player.Grounded {
		t.Fatal("landing should mark the platform visited and ground the player")
	}
	if h.w.player.Y != 368 {
		t.Errorf("player Y = %v, expected snapped to 368", h.w.player.Y)
	}

	h.steps(30, Input{})
	if h.w.Score() != 1 {
		t.Errorf("re-landing on a visited platform scored: depth %d", h.w.Score())
	}
	if len(h.scores) != 1 || h.scores[0] != 1 {
		t.Errorf("score sink calls = %v, expected [1]", h.scores)
	}
	if h.fx.lands != 1 {
		t.Errorf("land cue played %d times, expected once", h.fx.lands)
	}
}

func TestFirstMatchWins(t *testing.T) {
	h := newHarness(t, ModeClassic)
	// Both platforms catch the player's feet; the earlier one wins.
	h.stage(120, 367, 2, normalAt(100, 395, 100), normalAt(100, 400, 100))

	h.w.Step(Input{})
	if !h.w.platforms[0].Visited || h.w.platforms[1].Visited {
		t.Error("only the first catching platform should be visited")
	}
	if h.w.player.Y != 395-32 {
		t.Errorf("player Y = %v, expected snap to the first platform", h.w.player.Y)
	}
}

func TestSpikeEndsClassicRun(t *testing.T) {
	for _, mode := range []Mode{ModeClassic, ModeBoss} {
		t.Run(mode.String(), func(t *testing.T) {
			h := newHarness(t, mode)
			h.stage(120, 367, 2, spikeAt(100, 400, 100))

			h.w.Step(Input{})
			if !h.w.Over() || h.w.Reason() != ReasonSpiked {
				t.Fatalf("Over = %v Reason = %v, expected spiked", h.w.Over(), h.w.Reason())
			}
			if len(h.gameOvers) != 1 || h.gameOvers[0] != (gameOverCall{0, ReasonSpiked}) {
				t.Errorf("game over sink calls = %v", h.gameOvers)
			}
			if h.fx.fails != 1 || h.fx.wins != 0 {
				t.Errorf("fail cue = %d win cue = %d", h.fx.fails, h.fx.wins)
			}
			if h.w.fx.Len() != 20 {
				t.Errorf("particles = %d, expected 20", h.w.fx.Len())
			}

			before := h.w.Snapshot()
			h.steps(10, Input{Left: true, JumpPress: true})
			after := h.w.Snapshot()
			if before.Hash() != after.Hash() || after.Frame != before.Frame {
				t.Error("a finished run must not advance")
			}
			if len(h.gameOvers) != 1 {
				t.Errorf("game over sink fired %d times", len(h.gameOvers))
			}
		})
	}
}

func TestSpikeBouncesInInfinite(t *testing.T) {
	h := newHarness(t, ModeInfinite)
	h.stage(120, 367, 2, spikeAt(100, 400, 100))

	h.w.Step(Input{})
	if h.w.Over() {
		t.Fatal("spikes must not end an infinite run")
	}
	if h.w.player.VY != -5 || h.w.player.Grounded {
		t.Errorf("VY = %v grounded = %v, expected bounce at -5", h.w.player.VY, h.w.player.Grounded)
	}
	if h.w.Score() != 0 || h.w.platforms[0].Visited {
		t.Error("a spike bounce must not score")
	}
	if h.w.fx.Len() != 5 {
		t.Errorf("particles = %d, expected 5", h.w.fx.Len())
	}

	h.steps(600, Input{})
	if len(h.gameOvers) != 0 {
		t.Errorf("infinite run ended: %v", h.gameOvers)
	}
}

func TestSpikeProtection(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Options)
		setup  func(*harness)
	}{
		{
			name:   "shield",
			mutate: func(o *Options) { o.Shield = true },
			setup:  func(*harness) {},
		},
		{
			name:   "invincible",
			mutate: func(*Options) {},
			setup: func(h *harness) {
				h.w.player.Invincible = true
				h.w.invincibleUntil = h.clock.now.Add(time.Second)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := newHarness(t, ModeClassic, tc.mutate)
			h.stage(120, 367, 2, spikeAt(100, 400, 100))
			tc.setup(h)

			h.w.Step(Input{})
			if h.w.Over() {
				t.Fatal("protected player died on spikes")
			}
			if !h.w.player.Grounded || h.w.Score() != 1 {
				t.Errorf("grounded = %v score = %d, expected a normal scoring landing", h.w.player.Grounded, h.w.Score())
			}
		})
	}
}

func TestCeiling(t *testing.T) {
	tests := []struct {
		name       string
		mode       Mode
		invincible bool
		wantOver   bool
	}{
		{"classic crushes", ModeClassic, false, true},
		{"boss crushes", ModeBoss, false, true},
		{"invincible survives", ModeClassic, true, false},
		{"infinite clamps", ModeInfinite, false, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := newHarness(t, tc.mode)
			h.stage(184, 400, 0, normalAt(0, 3000, 100))
			h.w.camera = 500
			h.w.boss.Y = 580 // keep the boss parked
			if tc.invincible {
				h.w.player.Invincible = true
				h.w.invincibleUntil = h.clock.now.Add(time.Second)
			}

			h.w.Step(Input{})
			if h.w.Over() != tc.wantOver {
				t.Fatalf("Over = %v, expected %v", h.w.Over(), tc.wantOver)
			}
			if tc.wantOver && h.w.Reason() != ReasonCrushed {
				t.Errorf("Reason = %v, expected crushed", h.w.Reason())
			}
			if tc.mode == ModeInfinite {
				if want := h.w.Camera() + 10; !approx(h.w.player.Y, want) {
					t.Errorf("player Y = %v, expected clamp to %v", h.w.player.Y, want)
				}
				if h.w.player.VY < 0 {
					t.Errorf("VY = %v, expected non-negative after the bump", h.w.player.VY)
				}
			}
		})
	}
}

func TestInvincibilityExpiresOnWallClock(t *testing.T) {
	h := newHarness(t, ModeClassic)
	h.w.player.Invincible = true
	h.w.invincibleUntil = h.clock.now.Add(2 * time.Second)

	h.steps(500, Input{}) // far more than 2s of frames, no wall time passes
	if !h.w.player.Invincible || h.w.Over() {
		t.Fatal("invincibility must not expire by frame count")
	}

	h.clock.Advance(2001 * time.Millisecond)
	h.w.Step(Input{})
	if h.w.player.Invincible {
		t.Error("invincibility should expire once the wall clock passes the deadline")
	}
}

func TestRevive(t *testing.T) {
	h := newHarness(t, ModeClassic)
	h.stage(184, 400, 0, normalAt(0, 3000, 100))
	h.w.camera = 500
	h.w.Step(Input{})
	if !h.w.Over() {
		t.Fatal("setup: expected a crushed run")
	}

	if !h.w.CanRevive() {
		t.Fatal("classic run should be revivable")
	}
	if err := h.w.Revive(); err != nil {
		t.Fatalf("Revive() error = %v", err)
	}

	p := h.w.player
	if p.X != 184 || !approx(p.Y, h.w.Camera()+50) {
		t.Errorf("revived at (%v, %v), expected (184, camera+50)", p.X, p.Y)
	}
	if !p.Invincible || p.VX != 0 || p.VY != 0 || p.Charging {
		t.Errorf("revived player = %+v", p)
	}
	if h.w.Over() || h.w.Reason() != ReasonNone || h.w.Revives() != 1 {
		t.Error("revive should reopen the run")
	}

	h.w.revives = 3
	h.w.over = true
	if h.w.CanRevive() {
		t.Error("revives are capped per run")
	}
}

func TestReviveRefused(t *testing.T) {
	h := newHarness(t, ModeBoss)
	if err := h.w.Revive(); !errors.Is(err, ErrNotRevivable) {
		t.Errorf("revive of a live run: err = %v", err)
	}

	h.w.end(ReasonCrushed)
	if h.w.CanRevive() {
		t.Error("boss runs cannot be revived")
	}

	c := newHarness(t, ModeClassic)
	c.w.end(ReasonBossDefeated)
	if c.w.CanRevive() {
		t.Error("victories cannot be revived")
	}
}

func TestChargeJumpThroughStep(t *testing.T) {
	h := newHarness(t, ModeClassic)
	for i := 0; i < 60 && !h.w.player.Grounded; i++ {
		h.w.Step(Input{})
	}
	if !h.w.player.Grounded {
		t.Fatal("player never landed on the start platform")
	}
	if h.w.Score() != 0 {
		t.Error("the start platform is pre-visited")
	}

	h.w.Step(Input{JumpPress: true})
	if !h.w.player.Charging {
		t.Fatal("jump press on the ground should start charging")
	}

	prev := h.w.player.Charge
	for i := 0; i < 60; i++ {
		h.w.Step(Input{})
		p := h.w.player
		if p.VY != 0 || !p.Grounded {
			t.Fatalf("frame %d: charging player VY = %v grounded = %v", i, p.VY, p.Grounded)
		}
		if p.Charge < prev || p.Charge > 25 {
			t.Fatalf("frame %d: charge %v after %v", i, p.Charge, prev)
		}
		prev = p.Charge
	}

	h.w.Step(Input{JumpRelease: true})
	p := h.w.player
	if h.fx.jumps != 1 {
		t.Errorf("jump cue played %d times", h.fx.jumps)
	}
	// Launch at -20 / +11.5, then one frame of gravity and friction.
	if !approx(p.VY, -19.5) || !approx(p.VX, 11.5*0.85) {
		t.Errorf("after release VX = %v VY = %v", p.VX, p.VY)
	}
}

func TestAudioCues(t *testing.T) {
	h := newHarness(t, ModeClassic)

	h.steps(3, Input{})
	if h.fx.whooshes != 1 {
		t.Errorf("whoosh played %d times after crossing fall speed 1, expected 1", h.fx.whooshes)
	}

	h.steps(40, Input{})
	if h.fx.lands != 1 {
		t.Errorf("land cue played %d times, expected 1", h.fx.lands)
	}
}

func TestGenerationAndEviction(t *testing.T) {
	h := newHarness(t, ModeClassic)
	h.w.camera = 5000
	h.w.generate()
	h.w.evict()

	ps := h.w.platforms
	if ps[0].Y < 5000-200 {
		t.Errorf("shallowest platform y=%v should be evicted", ps[0].Y)
	}
	if last := ps[len(ps)-1]; last.Y < 5000+800+200 {
		t.Errorf("deepest platform y=%v should reach past the buffer", last.Y)
	}
	for i := 1; i < len(ps); i++ {
		gap := ps[i].Y - ps[i-1].Y
		if gap < 80 || gap >= 200 {
			t.Errorf("gap %v between platforms %d and %d out of range", gap, i-1, i)
		}
	}
}

func TestInfiniteRunInvariants(t *testing.T) {
	h := newHarness(t, ModeInfinite, func(o *Options) { o.Seed = 7 })
	inputs := rand.New(rand.NewSource(99))

	camera := h.w.Camera()
	score := h.w.Score()
	charging := false
	for frame := 0; frame < 5000; frame++ {
		in := Input{
			Left:  inputs.Intn(4) == 0,
			Right: inputs.Intn(4) == 0,
			Drop:  inputs.Intn(10) == 0,
		}
		if inputs.Intn(20) == 0 {
			if charging {
				in.JumpRelease = true
			} else {
				in.JumpPress = true
			}
			charging = !charging
		}
		h.w.Step(in)

		if h.w.Camera() < camera {
			t.Fatalf("frame %d: camera moved back from %v to %v", frame, camera, h.w.Camera())
		}
		if h.w.Score() < score {
			t.Fatalf("frame %d: score decreased", frame)
		}
		camera, score = h.w.Camera(), h.w.Score()

		if n := len(h.w.platforms); n > 40 {
			t.Fatalf("frame %d: working set grew to %d platforms", frame, n)
		}
	}

	if h.w.Over() || len(h.gameOvers) != 0 {
		t.Errorf("infinite run ended: %v", h.gameOvers)
	}
	for i, s := range h.scores {
		if s != i+1 {
			t.Fatalf("score sink sequence %v is not 1, 2, 3...", h.scores)
		}
	}
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		h := newHarness(t, ModeBoss, func(o *Options) { o.Seed = 2024 })
		inputs := rand.New(rand.NewSource(5))
		for i := 0; i < 1500 && !h.w.Over(); i++ {
			h.w.Step(Input{
				Left:        inputs.Intn(3) == 0,
				Right:       inputs.Intn(3) == 0,
				JumpPress:   inputs.Intn(15) == 0,
				JumpRelease: inputs.Intn(15) == 0,
			})
		}
		return h.w.Snapshot()
	}

	a, b := run(), run()
	if a.Hash() != b.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", a.Hash(), b.Hash())
	}
	if a.Score != b.Score || a.Frame != b.Frame || a.Reason != b.Reason {
		t.Errorf("Determinism failed: (%d, %d, %v) vs (%d, %d, %v)",
			a.Score, a.Frame, a.Reason, b.Score, b.Frame, b.Reason)
	}
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	h := newHarness(t, ModeClassic)
	snap := h.w.Snapshot()
	snap.Platforms[0].X = -999
	snap.Player.X = -999

	if h.w.platforms[0].X == -999 || h.w.player.X == -999 {
		t.Error("mutating a snapshot changed the world")
	}
}
