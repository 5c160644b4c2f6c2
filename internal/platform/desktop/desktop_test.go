package desktop

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/neon-abyss/internal/config"
	"github.com/vovakirdan/neon-abyss/internal/core"
	"github.com/vovakirdan/neon-abyss/internal/games/abyss"
)

// fakeKeyboard reports scripted key states.
type fakeKeyboard struct {
	pressed  map[ebiten.Key]bool
	down     map[ebiten.Key]bool
	released map[ebiten.Key]bool
}

func (k fakeKeyboard) Pressed(key ebiten.Key) bool      { return k.pressed[key] }
func (k fakeKeyboard) JustPressed(key ebiten.Key) bool  { return k.down[key] }
func (k fakeKeyboard) JustReleased(key ebiten.Key) bool { return k.released[key] }

func newTestWindow(t *testing.T, mode abyss.Mode) *Window {
	t.Helper()
	game := abyss.NewGame(mode, abyss.WithConfig(config.DefaultAbyssConfig()))
	w, err := New(Options{Game: game, Runtime: core.RuntimeConfig{TickRate: 60, Seed: 3}})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return w
}

func TestReadInput(t *testing.T) {
	tests := []struct {
		name string
		kb   fakeKeyboard
		want []core.Action
	}{
		{"idle", fakeKeyboard{}, nil},
		{"held left", fakeKeyboard{pressed: map[ebiten.Key]bool{ebiten.KeyA: true}}, []core.Action{core.ActionLeft}},
		{"held right and drop", fakeKeyboard{pressed: map[ebiten.Key]bool{ebiten.KeyArrowRight: true, ebiten.KeyS: true}}, []core.Action{core.ActionRight, core.ActionDrop}},
		{"jump press", fakeKeyboard{down: map[ebiten.Key]bool{ebiten.KeySpace: true}}, []core.Action{core.ActionJumpPress}},
		{"jump release", fakeKeyboard{released: map[ebiten.Key]bool{ebiten.KeyW: true}}, []core.Action{core.ActionJumpRelease}},
		{"pause", fakeKeyboard{down: map[ebiten.Key]bool{ebiten.KeyEscape: true}}, []core.Action{core.ActionPause}},
		{"revive", fakeKeyboard{down: map[ebiten.Key]bool{ebiten.KeyV: true}}, []core.Action{core.ActionRevive}},
		{"held jump is not an edge", fakeKeyboard{pressed: map[ebiten.Key]bool{ebiten.KeySpace: true}}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame := core.NewInputFrame()
			frame.Set(core.ActionQuit) // Cleared by readInput
			readInput(tt.kb, &frame)

			count := 0
			for _, on := range frame.Actions {
				if on {
					count++
				}
			}
			if count != len(tt.want) {
				t.Errorf("got %d actions, want %d (%v)", count, len(tt.want), frame.Actions)
			}
			for _, a := range tt.want {
				if !frame.Has(a) {
					t.Errorf("missing %v", a)
				}
			}
		})
	}
}

func TestNewRequiresGame(t *testing.T) {
	if _, err := New(Options{}); err == nil {
		t.Error("New() without a game should fail")
	}
}

func TestLayoutIsFieldSize(t *testing.T) {
	w := newTestWindow(t, abyss.ModeClassic)
	cfg := config.DefaultAbyssConfig()

	gotW, gotH := w.Layout(1920, 1080)
	if gotW != int(cfg.Field.Width) || gotH != int(cfg.Field.Height) {
		t.Errorf("Layout() = %dx%d, want %vx%v", gotW, gotH, cfg.Field.Width, cfg.Field.Height)
	}
}

func TestQuitTerminates(t *testing.T) {
	w := newTestWindow(t, abyss.ModeClassic)
	w.keys = fakeKeyboard{down: map[ebiten.Key]bool{ebiten.KeyQ: true}}

	if err := w.Update(); !errors.Is(err, ebiten.Termination) {
		t.Errorf("Update() error = %v, want ebiten.Termination", err)
	}
	if !w.quit {
		t.Error("window not marked as quit")
	}
}

func TestPauseKeyGatesSimulation(t *testing.T) {
	w := newTestWindow(t, abyss.ModeClassic)

	w.keys = fakeKeyboard{down: map[ebiten.Key]bool{ebiten.KeyP: true}}
	if err := w.Update(); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if !w.state.Paused {
		t.Fatal("P should pause")
	}

	frame := w.game.Snapshot().Frame
	w.keys = fakeKeyboard{}
	for i := 0; i < 30; i++ {
		//nolint:errcheck // no quit key held
		w.Update()
	}
	if got := w.game.Snapshot().Frame; got != frame {
		t.Errorf("paused world advanced from frame %d to %d", frame, got)
	}
}

func TestRestartIgnoredWhileRunning(t *testing.T) {
	w := newTestWindow(t, abyss.ModeClassic)
	w.keys = fakeKeyboard{}
	//nolint:errcheck // no quit key held
	w.Update()
	before := w.game.Snapshot().Frame

	w.keys = fakeKeyboard{down: map[ebiten.Key]bool{ebiten.KeyR: true}}
	//nolint:errcheck // no quit key held
	w.Update()
	if got := w.game.Snapshot().Frame; got != before+1 {
		t.Errorf("restart during play reset the run: frame %d -> %d", before, got)
	}
}

func TestColors(t *testing.T) {
	if c := rgba("#ff00de"); c.R != 0xff || c.G != 0 || c.B != 0xde || c.A != 0xff {
		t.Errorf("rgba() = %v", c)
	}
	if c := fade(core.ColorWhite, 0.5); c.A != 127 {
		t.Errorf("fade(0.5).A = %d, want 127", c.A)
	}
	if c := fade(core.ColorWhite, 2); c.A != 0xff {
		t.Errorf("fade clamps life, got alpha %d", c.A)
	}
}

func TestReasonLabel(t *testing.T) {
	tests := map[abyss.Reason]string{
		abyss.ReasonSpiked:       "SPIKED",
		abyss.ReasonBossHit:      "BOSS HIT",
		abyss.ReasonBossDefeated: "BOSS DEFEATED",
	}
	for r, want := range tests {
		if got := reasonLabel(r); got != want {
			t.Errorf("reasonLabel(%v) = %q, want %q", r, got, want)
		}
	}
}
