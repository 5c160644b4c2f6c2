// Package registry provides a global registry for playable run modes.
// Modes register themselves in init() functions, so frontends (terminal,
// SSH, desktop window) discover them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sync"

	"github.com/vovakirdan/neon-abyss/internal/core"
)

// Game is the interface every playable mode implements.
// Implementations contain pure simulation logic and never touch a terminal,
// window or audio device; the frontend maps input, paces ticks and draws.
type Game interface {
	// ID returns the mode identifier ("classic", "infinite", "boss").
	// Used for CLI flags and run history.
	ID() string

	// Title returns a human-readable name for menus.
	Title() string

	// Reset starts a fresh run. Score returns to zero.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one display frame.
	Step(in core.InputFrame) core.StepResult

	// Render draws the latest snapshot into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns depth, pause and outcome.
	State() core.GameState
}

// Reviver is implemented by modes that can continue a finished run.
type Reviver interface {
	// CanRevive reports whether the finished run may be continued.
	CanRevive() bool
	// Revive continues the run after a non-victory game over.
	Revive() error
}

// GameInfo contains metadata about a registered mode.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a mode.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	order     []string
	mu        sync.RWMutex
)

// Register adds a mode factory to the registry.
// Panics if a mode with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: mode %q already registered", id))
	}

	factories[id] = f
	order = append(order, id)

	// Get title by creating a temporary instance
	titles[id] = f().Title()
}

// List returns all registered modes in registration order.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(order))
	for _, id := range order {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}
	return result
}

// Create instantiates a new mode by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown mode %q", id)
	}
	return f(), nil
}

// Exists checks if a mode with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
