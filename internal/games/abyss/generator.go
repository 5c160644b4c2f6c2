package abyss

import (
	"github.com/vovakirdan/neon-abyss/internal/config"
)

// Rand is the random source for level generation and particles.
// *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// Generator produces platforms below the deepest one.
//
// Each platform draws from the source in a fixed order: x offset, the
// Moving roll (score above its gate only), the Spike and Breakable rolls
// (only when allowed), then the Moving direction (Moving only). The gap to
// the previous platform is drawn separately by Gap, before Next.
type Generator struct {
	rng        Rand
	cfg        *config.AbyssConfig
	difficulty *config.DifficultyManager
	boss       bool
	nextID     int
}

// NewGenerator creates a generator. boss selects the boss-mode width curve.
func NewGenerator(rng Rand, cfg *config.AbyssConfig, diff *config.DifficultyManager, boss bool) *Generator {
	return &Generator{
		rng:        rng,
		cfg:        cfg,
		difficulty: diff,
		boss:       boss,
	}
}

// Start returns the pre-visited start platform centered in the field.
func (g *Generator) Start() Platform {
	pc := g.cfg.Platforms
	return g.make(Platform{
		X:       g.cfg.Field.Width/2 - pc.StartWidth/2,
		Y:       pc.StartY,
		W:       pc.StartWidth,
		Visited: true,
	})
}

// Gap draws the vertical distance to the next platform.
func (g *Generator) Gap() float64 {
	return g.cfg.Platforms.GapMin + g.rng.Float64()*g.cfg.Platforms.GapRange
}

// Width returns the platform width for the given score.
func (g *Generator) Width(score int) float64 {
	curve := g.cfg.Generator.Width
	if g.boss {
		curve = g.cfg.Generator.BossWidth
	}
	w := g.difficulty.PlatformWidth(curve, score)
	if w > g.cfg.Field.Width {
		w = g.cfg.Field.Width
	}
	return w
}

// Next creates a platform at depth y. last is the current deepest platform
// (nil when there is none, which counts as unsafe for hazards).
func (g *Generator) Next(last *Platform, y float64, score int) Platform {
	gc := g.cfg.Generator
	width := g.Width(score)
	x := g.rng.Float64() * (g.cfg.Field.Width - width)

	variant := VariantNormal
	if score > gc.Moving.MinScore && g.roll(gc.Moving) {
		variant = VariantMoving
	}
	lastSafe := last != nil && !last.Variant.Hazard()
	if lastSafe {
		if score > gc.Spike.MinScore && g.roll(gc.Spike) {
			variant = VariantSpike
		}
		if score > gc.Breakable.MinScore && g.roll(gc.Breakable) {
			variant = VariantBreakable
		}
	}

	var speed float64
	if variant.Moves() {
		speed = g.cfg.Platforms.MovingSpeed
		if g.rng.Float64() <= 0.5 {
			speed = -speed
		}
	}

	return g.make(Platform{
		X:       x,
		Y:       y,
		W:       width,
		Variant: variant,
		Speed:   speed,
	})
}

// roll draws once and reports whether the gate's chance was hit.
func (g *Generator) roll(gate config.VariantGate) bool {
	return g.rng.Float64() > 1-gate.Chance
}

func (g *Generator) make(p Platform) Platform {
	p.ID = g.nextID
	p.H = g.cfg.Platforms.Height
	g.nextID++
	return p
}
