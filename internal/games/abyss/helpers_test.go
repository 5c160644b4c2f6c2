package abyss

import (
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/neon-abyss/internal/config"
)

// scriptedRand replays fixed values, then returns 0.
type scriptedRand struct {
	vals  []float64
	drawn int
}

func (s *scriptedRand) Float64() float64 {
	if s.drawn >= len(s.vals) {
		s.drawn++
		return 0
	}
	v := s.vals[s.drawn]
	s.drawn++
	return v
}

type recordingEffects struct {
	jumps, lands, whooshes, fails, wins int
}

func (r *recordingEffects) PlayJump()   { r.jumps++ }
func (r *recordingEffects) PlayLand()   { r.lands++ }
func (r *recordingEffects) PlayWhoosh() { r.whooshes++ }
func (r *recordingEffects) PlayFail()   { r.fails++ }
func (r *recordingEffects) PlayWin()    { r.wins++ }

// fakeClock is a settable wall clock.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type gameOverCall struct {
	depth  int
	reason Reason
}

// harness is a world plus everything it reported.
type harness struct {
	w         *World
	fx        *recordingEffects
	clock     *fakeClock
	scores    []int
	gameOvers []gameOverCall
}

func newHarness(t *testing.T, mode Mode, mutate ...func(*Options)) *harness {
	t.Helper()
	h := &harness{
		fx:    &recordingEffects{},
		clock: &fakeClock{now: time.Unix(1_700_000_000, 0)},
	}
	opts := Options{
		Mode:    mode,
		Config:  config.DefaultAbyssConfig(),
		Seed:    42,
		Effects: h.fx,
		Clock:   h.clock.Now,
		OnScore: func(depth int) {
			h.scores = append(h.scores, depth)
		},
		OnGameOver: func(depth int, r Reason) {
			h.gameOvers = append(h.gameOvers, gameOverCall{depth, r})
		},
	}
	for _, m := range mutate {
		m(&opts)
	}
	w, err := NewWorld(opts)
	if err != nil {
		t.Fatalf("NewWorld() error = %v", err)
	}
	h.w = w
	return h
}

// stage replaces the level with the given platforms and places a falling
// player at (x, y).
func (h *harness) stage(x, y, vy float64, platforms ...Platform) {
	for i := range platforms {
		platforms[i].ID = 1000 + i
		if platforms[i].H == 0 {
			platforms[i].H = h.w.cfg.Platforms.Height
		}
	}
	h.w.platforms = platforms
	h.w.player.X = x
	h.w.player.Y = y
	h.w.player.VX = 0
	h.w.player.VY = vy
	h.w.player.Grounded = false
	h.w.wasGrounded = false
}

func (h *harness) steps(n int, in Input) {
	for i := 0; i < n; i++ {
		h.w.Step(in)
	}
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
