package abyss

import "math"

// Snapshot is a deep copy of the world taken between steps. Renderers read
// snapshots only, never the live world.
type Snapshot struct {
	Mode        Mode
	Frame       uint64
	FieldW      float64
	FieldH      float64
	MaxCharge   float64
	Camera      float64
	Score       int
	Over        bool
	Reason      Reason
	Revives     int
	CanRevive   bool
	Skin        Skin
	Player      Player
	Platforms   []Platform
	Projectiles []Projectile
	Particles   []Particle
	Boss        Boss
	HasBoss     bool
}

// Snapshot returns a consistent copy of the current state.
func (w *World) Snapshot() Snapshot {
	platforms := make([]Platform, len(w.platforms))
	copy(platforms, w.platforms)
	projectiles := make([]Projectile, len(w.projectiles))
	copy(projectiles, w.projectiles)

	return Snapshot{
		Mode:        w.mode,
		Frame:       w.frame,
		FieldW:      w.cfg.Field.Width,
		FieldH:      w.cfg.Field.Height,
		MaxCharge:   w.cfg.Physics.MaxCharge,
		Camera:      w.camera,
		Score:       w.score,
		Over:        w.over,
		Reason:      w.reason,
		Revives:     w.revives,
		CanRevive:   w.CanRevive(),
		Skin:        w.skin,
		Player:      w.player,
		Platforms:   platforms,
		Projectiles: projectiles,
		Particles:   w.fx.Particles(),
		Boss:        w.boss,
		HasBoss:     w.mode.HasBoss(),
	}
}

// Hash returns a simple hash of the gameplay state for determinism testing.
// Particles are cosmetic and excluded.
func (s *Snapshot) Hash() uint64 {
	h := s.Frame
	mix := func(v float64) {
		h = h*31 + math.Float64bits(v)
	}
	mixInt := func(v int) {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	mixInt(int(s.Mode))
	mixInt(s.Score)
	mixInt(int(s.Reason))
	mix(s.Camera)
	mix(s.Player.X)
	mix(s.Player.Y)
	mix(s.Player.VX)
	mix(s.Player.VY)
	mix(s.Player.Charge)

	for _, p := range s.Platforms {
		mixInt(p.ID)
		mixInt(int(p.Variant))
		mix(p.X)
		mix(p.Y)
		mix(p.W)
		mix(p.Speed)
		if p.Visited {
			mixInt(1)
		}
	}

	for _, pr := range s.Projectiles {
		mix(pr.X)
		mix(pr.Y)
	}

	if s.HasBoss {
		mixInt(s.Boss.Health)
		mixInt(s.Boss.Phase)
		mixInt(s.Boss.Cooldown)
		mix(s.Boss.X)
		mix(s.Boss.Y)
	}

	return h
}
