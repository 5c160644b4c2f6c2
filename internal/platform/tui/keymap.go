package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/neon-abyss/internal/core"
)

// Terminals deliver key presses but never key releases, so held keys are
// latched for holdFrames ticks and refreshed by the keyboard's auto-repeat.
const holdFrames = 8

// KeyMapper translates Bubble Tea key messages to game actions.
//
// Movement keys decay: each key event holds the action for a few ticks.
// The jump key toggles: the first press starts charging and the next one
// launches.
type KeyMapper struct {
	held     map[core.Action]int
	edges    []core.Action
	charging bool
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{held: make(map[core.Action]int)}
}

// MapKey translates a key message to a one-shot action.
// Returns the action (may be ActionNone) and whether it's a quit request.
// Held and jump keys are reported as ActionNone; use HandleKey for them.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "p", "esc":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	case "v":
		return core.ActionRevive, false
	case "b":
		return core.ActionBack, false
	}
	return core.ActionNone, false
}

// HandleKey records a key event. It returns the one-shot action the key
// maps to, if any, and whether it was a quit request.
func (km *KeyMapper) HandleKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case " ", "w", "up", "k":
		km.charging = !km.charging
		if km.charging {
			km.edges = append(km.edges, core.ActionJumpPress)
		} else {
			km.edges = append(km.edges, core.ActionJumpRelease)
		}
		return core.ActionNone, false
	case "a", "left", "h":
		delete(km.held, core.ActionRight)
		km.held[core.ActionLeft] = holdFrames
		return core.ActionNone, false
	case "d", "right", "l":
		delete(km.held, core.ActionLeft)
		km.held[core.ActionRight] = holdFrames
		return core.ActionNone, false
	case "s", "down", "j":
		km.held[core.ActionDrop] = holdFrames
		return core.ActionNone, false
	}
	return km.MapKey(msg)
}

// Fill writes the held actions and at most one queued jump edge into
// frame, then ages the latches by one tick.
func (km *KeyMapper) Fill(frame *core.InputFrame) {
	for a, n := range km.held {
		frame.Set(a)
		if n <= 1 {
			delete(km.held, a)
		} else {
			km.held[a] = n - 1
		}
	}
	if len(km.edges) > 0 {
		frame.Set(km.edges[0])
		km.edges = km.edges[1:]
	}
}

// Charging reports whether the jump latch is down.
func (km *KeyMapper) Charging() bool {
	return km.charging
}

// Sync realigns the jump latch with the simulation once every queued edge
// has been delivered, so a press the player could not act on (airborne,
// paused) does not turn the next press into a release.
func (km *KeyMapper) Sync(charging bool) {
	if len(km.edges) == 0 {
		km.charging = charging
	}
}

// Reset drops every latch, e.g. after a restart or a revive.
func (km *KeyMapper) Reset() {
	clear(km.held)
	km.edges = km.edges[:0]
	km.charging = false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionScoreboard
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "tab":
		return MenuActionScoreboard
	case "b", "esc":
		return MenuActionBack
	}

	return MenuActionNone
}
