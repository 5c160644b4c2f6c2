package abyss

import "github.com/vovakirdan/neon-abyss/internal/core"

// Variant is the platform kind.
type Variant int

const (
	VariantNormal Variant = iota
	VariantSpike
	VariantMoving
	VariantBreakable
	VariantConveyor // Reserved, behaves as Normal
)

// variantTraits is the per-variant behavior consulted by the generator,
// the resolver and the renderers.
type variantTraits struct {
	name   string
	hazard bool // Blocks a hazard from being generated directly after it
	lethal bool // Contact can end the run
	moves  bool // Slides horizontally every frame
	glyph  rune
	color  core.Color // Unvisited color; ColorDefault uses the visited/unvisited pair
}

var variants = map[Variant]variantTraits{
	VariantNormal:    {name: "normal", glyph: '▀'},
	VariantSpike:     {name: "spike", hazard: true, lethal: true, glyph: '▲', color: core.ColorSpikeRed},
	VariantMoving:    {name: "moving", moves: true, glyph: '≡'},
	VariantBreakable: {name: "breakable", hazard: true, glyph: '▒'},
	VariantConveyor:  {name: "conveyor", glyph: '▀'},
}

func (v Variant) traits() variantTraits {
	if t, ok := variants[v]; ok {
		return t
	}
	return variants[VariantNormal]
}

// String returns the variant name.
func (v Variant) String() string { return v.traits().name }

// Hazard reports whether the variant counts against the back-to-back gate.
func (v Variant) Hazard() bool { return v.traits().hazard }

// Lethal reports whether landing on the variant can end the run.
func (v Variant) Lethal() bool { return v.traits().lethal }

// Moves reports whether the variant slides horizontally.
func (v Variant) Moves() bool { return v.traits().moves }

// Glyph returns the terminal rune for the variant.
func (v Variant) Glyph() rune { return v.traits().glyph }

// Platform is a landing surface. Y is the top edge.
type Platform struct {
	ID      int
	X, Y    float64
	W, H    float64
	Variant Variant
	Visited bool
	Speed   float64 // Signed horizontal speed, Moving only
}

// Box returns the platform's bounding box.
func (p Platform) Box() core.Box {
	return core.Box{X: p.X, Y: p.Y, W: p.W, H: p.H}
}

// Color returns the render color for the platform.
func (p Platform) Color() core.Color {
	if c := p.Variant.traits().color; c != core.ColorDefault {
		return c
	}
	if p.Visited {
		return core.ColorNeonPink
	}
	return core.ColorNeonCyan
}

// advance slides a moving platform and reverses it at the field edges.
func (p *Platform) advance(fieldW float64) {
	if !p.Variant.Moves() {
		return
	}
	p.X += p.Speed
	if p.X <= 0 || p.X+p.W >= fieldW {
		p.Speed = -p.Speed
	}
}

// catches reports whether a falling player box is caught by the platform:
// the player's feet lie within the top band widened by margin and the
// horizontal extents overlap.
func (p Platform) catches(player core.Box, margin float64) bool {
	feet := player.Bottom()
	return feet >= p.Y &&
		feet <= p.Y+p.H+margin &&
		player.OverlapsX(p.Box())
}
