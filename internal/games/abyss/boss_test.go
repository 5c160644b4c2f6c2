package abyss

import (
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/neon-abyss/internal/config"
)

func TestBossPhases(t *testing.T) {
	bc := config.DefaultAbyssConfig().Boss
	b := newBoss(config.DefaultAbyssConfig())

	hits := 0
	for !b.Defeated() {
		prev := b.Health
		fatal := b.Damage(bc.Damage, bc.PhaseThreshold)
		hits++
		if b.Health > prev {
			t.Fatalf("health rose from %d to %d", prev, b.Health)
		}
		wantPhase := 1
		if b.Health <= 50 {
			wantPhase = 2
		}
		if b.Phase != wantPhase {
			t.Fatalf("health %d: phase %d, expected %d", b.Health, b.Phase, wantPhase)
		}
		if fatal != (b.Health <= 0) {
			t.Fatalf("Damage reported fatal=%v at health %d", fatal, b.Health)
		}
	}
	if hits != 50 {
		t.Errorf("boss fell after %d floors, expected 50", hits)
	}
}

func TestBossSalvo(t *testing.T) {
	cfg := config.DefaultAbyssConfig()
	b := newBoss(cfg)

	for i := 0; i < 120; i++ {
		if salvo := b.attack(200, 400, cfg.Boss); salvo != nil {
			t.Fatalf("phase 1 fired early on frame %d", i+1)
		}
	}
	salvo := b.attack(200, 400, cfg.Boss)
	if len(salvo) != 1 {
		t.Fatalf("phase 1 salvo = %d projectiles, expected 1", len(salvo))
	}
	if speed := math.Hypot(salvo[0].VX, salvo[0].VY); !approx(speed, 6) {
		t.Errorf("phase 1 speed = %v, expected 6", speed)
	}

	b.Phase = 2
	for i := 0; i < 60; i++ {
		if b.attack(200, 400, cfg.Boss) != nil {
			t.Fatalf("phase 2 fired early on frame %d", i+1)
		}
	}
	salvo = b.attack(200, 400, cfg.Boss)
	if len(salvo) != 3 {
		t.Fatalf("phase 2 salvo = %d projectiles, expected 3", len(salvo))
	}
	for _, p := range salvo {
		if speed := math.Hypot(p.VX, p.VY); !approx(speed, 8) {
			t.Errorf("phase 2 speed = %v, expected 8", speed)
		}
		if p.Radius != 8 {
			t.Errorf("radius = %v, expected 8", p.Radius)
		}
	}
	if !(salvo[1].VX < salvo[0].VX && salvo[0].VX < salvo[2].VX) {
		t.Error("side shots should flank the center shot")
	}
}

func TestAim(t *testing.T) {
	p := aim(0, 0, 3, 4, 5, 8)
	if !approx(p.VX, 3) || !approx(p.VY, 4) {
		t.Errorf("aim = (%v, %v), expected (3, 4)", p.VX, p.VY)
	}

	p = aim(10, 10, 10, 10, 6, 8)
	if p.VX != 0 || p.VY != 6 {
		t.Errorf("zero-distance aim = (%v, %v), expected straight down (0, 6)", p.VX, p.VY)
	}
	if math.IsNaN(p.X) || math.IsNaN(p.VY) {
		t.Error("aim produced NaN")
	}
}

func TestBossPursuit(t *testing.T) {
	cfg := config.DefaultAbyssConfig()
	b := newBoss(cfg)

	b.pursue(0, 210, cfg.Boss)
	if !approx(b.Y, -186) {
		t.Errorf("Y = %v, expected -200 + 280*0.05 = -186", b.Y)
	}
	if b.X != 200 {
		t.Errorf("X = %v, expected no chase inside the dead zone", b.X)
	}

	b.pursue(0, 300, cfg.Boss)
	if !approx(b.X, 202) {
		t.Errorf("X = %v, expected 200 + 100*0.02 = 202", b.X)
	}
}

func TestBossDefeatedByLastFloor(t *testing.T) {
	h := newHarness(t, ModeBoss)
	h.w.boss.Health = 2
	h.stage(120, 367, 2, normalAt(100, 400, 100))

	h.w.Step(Input{})
	if !h.w.Over() || h.w.Reason() != ReasonBossDefeated {
		t.Fatalf("Over = %v Reason = %v, expected boss defeated", h.w.Over(), h.w.Reason())
	}
	if !h.w.Reason().Victory() {
		t.Error("boss defeat is a victory")
	}
	if len(h.gameOvers) != 1 || h.gameOvers[0] != (gameOverCall{1, ReasonBossDefeated}) {
		t.Errorf("game over sink calls = %v", h.gameOvers)
	}
	if h.fx.wins != 1 || h.fx.fails != 0 {
		t.Errorf("win cue = %d fail cue = %d", h.fx.wins, h.fx.fails)
	}
}

func TestBossDamagedPerNewFloor(t *testing.T) {
	h := newHarness(t, ModeBoss)
	h.w.boss.Health = 52
	h.stage(120, 367, 2, normalAt(100, 400, 100))

	h.w.Step(Input{})
	if h.w.boss.Health != 50 || h.w.boss.Phase != 2 {
		t.Errorf("boss = %+v, expected health 50 in phase 2", h.w.boss)
	}
	if h.w.Over() {
		t.Error("boss at 50 health is still alive")
	}

	h.steps(5, Input{})
	if h.w.boss.Health != 50 {
		t.Errorf("standing on a visited floor damaged the boss: %d", h.w.boss.Health)
	}
}

func TestProjectileHit(t *testing.T) {
	tests := []struct {
		name       string
		invincible bool
		wantOver   bool
	}{
		{"hit ends run", false, true},
		{"invincible ignores hit", true, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := newHarness(t, ModeBoss)
			h.stage(184, 400, 0, normalAt(0, 3000, 100))
			h.w.camera = 100
			if tc.invincible {
				h.w.player.Invincible = true
				h.w.invincibleUntil = h.clock.now.Add(time.Second)
			}
			h.w.projectiles = []Projectile{{X: 200, Y: 416, Radius: 8}}

			h.w.Step(Input{})
			if h.w.Over() != tc.wantOver {
				t.Fatalf("Over = %v, expected %v", h.w.Over(), tc.wantOver)
			}
			if tc.wantOver {
				if h.w.Reason() != ReasonBossHit {
					t.Errorf("Reason = %v, expected boss hit", h.w.Reason())
				}
				if h.gameOvers[0].depth != 0 {
					t.Errorf("depth = %d, expected 0", h.gameOvers[0].depth)
				}
			}
		})
	}
}

func TestProjectileEviction(t *testing.T) {
	h := newHarness(t, ModeBoss)
	h.stage(0, 400, 0, normalAt(300, 3000, 100))
	h.w.camera = 100
	h.w.projectiles = []Projectile{
		{X: 380, Y: 1100, VY: 6, Radius: 8}, // leaves the bottom margin
		{X: 380, Y: -1, VY: -6, Radius: 8},  // leaves the top margin
		{X: 380, Y: 600, Radius: 8},         // stays
	}

	h.w.Step(Input{})
	if len(h.w.projectiles) != 1 || h.w.projectiles[0].Y != 600 {
		t.Errorf("projectiles = %+v, expected only the on-screen one", h.w.projectiles)
	}
}
