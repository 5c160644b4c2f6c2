package abyss

import (
	"math"

	"github.com/vovakirdan/neon-abyss/internal/config"
	"github.com/vovakirdan/neon-abyss/internal/core"
)

// Boss is the abyss lord chasing the player in boss mode.
type Boss struct {
	Health    int
	MaxHealth int
	X, Y      float64
	Cooldown  int // Frames since the last salvo
	Phase     int // 1 or 2; 2 is irreversible
}

// Projectile is a ballistic shot aimed when fired.
type Projectile struct {
	X, Y   float64
	VX, VY float64
	Radius float64
}

func newBoss(cfg config.AbyssConfig) Boss {
	return Boss{
		Health:    cfg.Boss.Health,
		MaxHealth: cfg.Boss.Health,
		X:         cfg.Field.Width / 2,
		Y:         cfg.Boss.SpawnY,
		Phase:     1,
	}
}

// HealthRatio returns remaining health in [0, 1].
func (b Boss) HealthRatio() float64 {
	if b.MaxHealth <= 0 {
		return 0
	}
	return core.ClampF(float64(b.Health)/float64(b.MaxHealth), 0, 1)
}

// Defeated reports whether the boss has no health left.
func (b Boss) Defeated() bool {
	return b.Health <= 0
}

// Damage removes health and enters phase 2 at the threshold.
// It reports whether the hit was fatal.
func (b *Boss) Damage(amount, phaseThreshold int) bool {
	if amount < 0 {
		amount = 0
	}
	b.Health -= amount
	if b.Health < 0 {
		b.Health = 0
	}
	if b.Health <= phaseThreshold {
		b.Phase = 2
	}
	return b.Defeated()
}

// pursue eases the boss toward its hover point and the player's x.
func (b *Boss) pursue(camera, playerX float64, bc config.BossConfig) {
	b.Y = core.Lerp(b.Y, camera+bc.HoverOffset, bc.VerticalEasing)
	if math.Abs(b.X-playerX) > bc.ChaseDeadZone {
		b.X = core.Lerp(b.X, playerX, bc.ChaseEasing)
	}
}

// attack advances the cooldown and returns the salvo fired this frame, if
// any. Phase 1 fires one shot; phase 2 adds two shots aimed beside the
// target.
func (b *Boss) attack(tx, ty float64, bc config.BossConfig) []Projectile {
	b.Cooldown++
	interval := bc.Cooldown
	if b.Phase >= 2 {
		interval = bc.EnragedCooldown
	}
	if b.Cooldown <= interval {
		return nil
	}
	b.Cooldown = 0

	speed := bc.ProjectileSpeed + bc.PhaseSpeedBonus*float64(b.Phase)
	salvo := []Projectile{aim(b.X, b.Y, tx, ty, speed, bc.ProjectileSize)}
	if b.Phase >= 2 {
		salvo = append(salvo,
			aim(b.X, b.Y, tx-bc.SpreadOffset, ty, speed, bc.ProjectileSize),
			aim(b.X, b.Y, tx+bc.SpreadOffset, ty, speed, bc.ProjectileSize),
		)
	}
	return salvo
}

// aim creates a projectile at (x, y) heading for (tx, ty). A zero-length
// aim fires straight down.
func aim(x, y, tx, ty, speed, radius float64) Projectile {
	dx, dy := tx-x, ty-y
	dist := math.Hypot(dx, dy)
	if dist == 0 || math.IsNaN(dist) || math.IsInf(dist, 0) {
		dx, dy, dist = 0, 1, 1
	}
	return Projectile{
		X:      x,
		Y:      y,
		VX:     dx / dist * speed,
		VY:     dy / dist * speed,
		Radius: radius,
	}
}
