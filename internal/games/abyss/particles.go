package abyss

import (
	"github.com/vovakirdan/neon-abyss/internal/config"
	"github.com/vovakirdan/neon-abyss/internal/core"
)

// Particle is a cosmetic spark. Life runs from 1 down to 0.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   float64
	Size   float64
	Color  core.Color
}

// ParticleLedger owns the live particles. It draws from its own random
// source so cosmetic bursts never shift level generation.
type ParticleLedger struct {
	rng       Rand
	cfg       config.ParticleConfig
	particles []Particle
}

// NewParticleLedger creates an empty ledger.
func NewParticleLedger(rng Rand, cfg config.ParticleConfig) *ParticleLedger {
	return &ParticleLedger{
		rng:       rng,
		cfg:       cfg,
		particles: make([]Particle, 0, 64),
	}
}

// Burst spawns count particles at (x, y).
func (l *ParticleLedger) Burst(x, y float64, c core.Color, count int) {
	for i := 0; i < count; i++ {
		l.particles = append(l.particles, Particle{
			X:     x,
			Y:     y,
			VX:    (l.rng.Float64() - 0.5) * 2 * l.cfg.Spread,
			VY:    (l.rng.Float64() - 0.5) * 2 * l.cfg.Spread,
			Life:  1,
			Size:  l.rng.Float64()*l.cfg.SizeRange + l.cfg.MinSize,
			Color: c,
		})
	}
}

// Update moves and decays every particle, dropping the expired ones.
func (l *ParticleLedger) Update() {
	alive := l.particles[:0]
	for _, p := range l.particles {
		p.X += p.VX
		p.Y += p.VY
		p.Life -= l.cfg.Decay
		if p.Life > 0 {
			alive = append(alive, p)
		}
	}
	l.particles = alive
}

// Len returns the number of live particles.
func (l *ParticleLedger) Len() int {
	return len(l.particles)
}

// Clear drops all particles.
func (l *ParticleLedger) Clear() {
	l.particles = l.particles[:0]
}

// Particles returns a copy of the live particles.
func (l *ParticleLedger) Particles() []Particle {
	out := make([]Particle, len(l.particles))
	copy(out, l.particles)
	return out
}
