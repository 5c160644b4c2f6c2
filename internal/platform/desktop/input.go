package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/neon-abyss/internal/core"
)

// keyboard is the key state the window polls once per tick.
type keyboard interface {
	Pressed(k ebiten.Key) bool
	JustPressed(k ebiten.Key) bool
	JustReleased(k ebiten.Key) bool
}

type ebitenKeyboard struct{}

func (ebitenKeyboard) Pressed(k ebiten.Key) bool      { return ebiten.IsKeyPressed(k) }
func (ebitenKeyboard) JustPressed(k ebiten.Key) bool  { return inpututil.IsKeyJustPressed(k) }
func (ebitenKeyboard) JustReleased(k ebiten.Key) bool { return inpututil.IsKeyJustReleased(k) }

// Key bindings
var (
	jumpKeys    = []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW}
	leftKeys    = []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}
	rightKeys   = []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}
	dropKeys    = []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}
	pauseKeys   = []ebiten.Key{ebiten.KeyP, ebiten.KeyEscape}
	restartKeys = []ebiten.Key{ebiten.KeyR}
	reviveKeys  = []ebiten.Key{ebiten.KeyV}
	quitKeys    = []ebiten.Key{ebiten.KeyQ}
)

func anyKey(keys []ebiten.Key, test func(ebiten.Key) bool) bool {
	for _, k := range keys {
		if test(k) {
			return true
		}
	}
	return false
}

// readInput fills frame from the keyboard. Movement keys are levels, jump
// keys are press and release edges, the rest fire on press.
func readInput(kb keyboard, frame *core.InputFrame) {
	frame.Clear()

	if anyKey(leftKeys, kb.Pressed) {
		frame.Set(core.ActionLeft)
	}
	if anyKey(rightKeys, kb.Pressed) {
		frame.Set(core.ActionRight)
	}
	if anyKey(dropKeys, kb.Pressed) {
		frame.Set(core.ActionDrop)
	}
	if anyKey(jumpKeys, kb.JustPressed) {
		frame.Set(core.ActionJumpPress)
	}
	if anyKey(jumpKeys, kb.JustReleased) {
		frame.Set(core.ActionJumpRelease)
	}
	if anyKey(pauseKeys, kb.JustPressed) {
		frame.Set(core.ActionPause)
	}
	if anyKey(restartKeys, kb.JustPressed) {
		frame.Set(core.ActionRestart)
	}
	if anyKey(reviveKeys, kb.JustPressed) {
		frame.Set(core.ActionRevive)
	}
	if anyKey(quitKeys, kb.JustPressed) {
		frame.Set(core.ActionQuit)
	}
}
