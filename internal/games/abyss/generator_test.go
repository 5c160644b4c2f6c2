package abyss

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/neon-abyss/internal/config"
)

func newTestGenerator(rng Rand, boss bool) *Generator {
	cfg := config.DefaultAbyssConfig()
	return NewGenerator(rng, &cfg, config.NewDifficultyManager(config.DifficultyNormal), boss)
}

// Every roll hits: x=0.5, then 0.99 for each gate and the direction.
func TestVariantGating(t *testing.T) {
	safe := &Platform{Variant: VariantNormal}
	spike := &Platform{Variant: VariantSpike}
	breakable := &Platform{Variant: VariantBreakable}

	tests := []struct {
		name  string
		last  *Platform
		score int
		want  Variant
		draws int
	}{
		{"score 20 no gates", safe, 20, VariantNormal, 1},
		{"score 21 moving", safe, 21, VariantMoving, 3},
		{"score 29 moving only", safe, 29, VariantMoving, 3},
		{"score 30 spike gate closed", safe, 30, VariantMoving, 3},
		{"score 31 spike overrides moving", safe, 31, VariantSpike, 3},
		{"score 49 spike", safe, 49, VariantSpike, 3},
		{"score 50 breakable gate closed", safe, 50, VariantSpike, 3},
		{"score 51 breakable overrides spike", safe, 51, VariantBreakable, 4},
		{"after spike no hazard", spike, 55, VariantMoving, 3},
		{"after breakable no hazard", breakable, 55, VariantMoving, 3},
		{"no previous platform is unsafe", nil, 55, VariantMoving, 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rng := &scriptedRand{vals: []float64{0.5, 0.99, 0.99, 0.99, 0.99}}
			g := newTestGenerator(rng, false)
			p := g.Next(tc.last, 1000, tc.score)
			if p.Variant != tc.want {
				t.Errorf("Variant = %v, expected %v", p.Variant, tc.want)
			}
			if rng.drawn != tc.draws {
				t.Errorf("drew %d values, expected %d", rng.drawn, tc.draws)
			}
		})
	}
}

func TestVariantChanceBoundaries(t *testing.T) {
	safe := &Platform{Variant: VariantNormal}

	tests := []struct {
		name string
		vals []float64 // x, moving, spike, breakable
		want Variant
	}{
		{"moving roll just under 60%", []float64{0.5, 0.59, 0.1, 0.1}, VariantNormal},
		{"moving roll above 60%", []float64{0.5, 0.61, 0.1, 0.1, 0.9}, VariantMoving},
		{"spike roll under 70%", []float64{0.5, 0.1, 0.69, 0.1}, VariantNormal},
		{"spike roll above 70%", []float64{0.5, 0.1, 0.71, 0.1}, VariantSpike},
		{"breakable roll under 80%", []float64{0.5, 0.1, 0.1, 0.79}, VariantNormal},
		{"breakable roll above 80%", []float64{0.5, 0.1, 0.1, 0.81}, VariantBreakable},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGenerator(&scriptedRand{vals: tc.vals}, false)
			if p := g.Next(safe, 1000, 60); p.Variant != tc.want {
				t.Errorf("Variant = %v, expected %v", p.Variant, tc.want)
			}
		})
	}
}

func TestMovingDirection(t *testing.T) {
	safe := &Platform{}

	g := newTestGenerator(&scriptedRand{vals: []float64{0.5, 0.9, 0.9}}, false)
	if p := g.Next(safe, 0, 25); p.Speed != 3 {
		t.Errorf("Speed = %v, expected +3", p.Speed)
	}

	g = newTestGenerator(&scriptedRand{vals: []float64{0.5, 0.9, 0.2}}, false)
	if p := g.Next(safe, 0, 25); p.Speed != -3 {
		t.Errorf("Speed = %v, expected -3", p.Speed)
	}

	g = newTestGenerator(&scriptedRand{vals: []float64{0.5}}, false)
	if p := g.Next(safe, 0, 0); p.Speed != 0 {
		t.Errorf("non-moving platform Speed = %v, expected 0", p.Speed)
	}
}

func TestPlatformGeometry(t *testing.T) {
	g := newTestGenerator(&scriptedRand{vals: []float64{0.5}}, false)
	p := g.Next(&Platform{}, 640, 0)

	if p.W != 150 || p.H != 16 {
		t.Errorf("size = %vx%v, expected 150x16", p.W, p.H)
	}
	if p.X != 125 {
		t.Errorf("X = %v, expected 0.5 * (400 - 150) = 125", p.X)
	}
	if p.Y != 640 || p.Visited {
		t.Errorf("Y = %v visited = %v, expected 640 unvisited", p.Y, p.Visited)
	}

	boss := newTestGenerator(&scriptedRand{vals: []float64{0}}, true)
	if w := boss.Next(&Platform{}, 0, 100).W; w != 45 {
		t.Errorf("boss width at depth 100 = %v, expected floor 45", w)
	}
}

func TestGap(t *testing.T) {
	g := newTestGenerator(&scriptedRand{vals: []float64{0, 0.5, 0.999}}, false)
	for _, want := range []float64{80, 140, 199.88} {
		if got := g.Gap(); !approx(got, want) {
			t.Errorf("Gap() = %v, expected %v", got, want)
		}
	}
}

func TestStartPlatform(t *testing.T) {
	g := newTestGenerator(rand.New(rand.NewSource(1)), false)
	p := g.Start()
	if p.X != 100 || p.Y != 200 || p.W != 200 || !p.Visited {
		t.Errorf("Start() = %+v, expected visited 200-wide platform at (100, 200)", p)
	}

	q := g.Next(&p, 350, 0)
	if q.ID <= p.ID {
		t.Errorf("IDs should increase, got %d after %d", q.ID, p.ID)
	}
}

func TestVariantTraits(t *testing.T) {
	tests := []struct {
		v              Variant
		hazard, lethal bool
		moves          bool
	}{
		{VariantNormal, false, false, false},
		{VariantSpike, true, true, false},
		{VariantMoving, false, false, true},
		{VariantBreakable, true, false, false},
		{VariantConveyor, false, false, false},
	}

	for _, tc := range tests {
		if tc.v.Hazard() != tc.hazard || tc.v.Lethal() != tc.lethal || tc.v.Moves() != tc.moves {
			t.Errorf("%v traits = (%v, %v, %v), expected (%v, %v, %v)",
				tc.v, tc.v.Hazard(), tc.v.Lethal(), tc.v.Moves(), tc.hazard, tc.lethal, tc.moves)
		}
	}
}

func TestMovingPlatformReverses(t *testing.T) {
	p := Platform{X: 398 - 60, W: 60, Variant: VariantMoving, Speed: 3}
	p.advance(400)
	if p.Speed != -3 {
		t.Errorf("Speed = %v, expected reversal at the right edge", p.Speed)
	}

	still := Platform{X: 10, W: 60, Variant: VariantNormal}
	still.advance(400)
	if still.X != 10 {
		t.Error("normal platforms must not move")
	}
}
