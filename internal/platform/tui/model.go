package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/neon-abyss/internal/core"
	"github.com/vovakirdan/neon-abyss/internal/games/abyss"
	"github.com/vovakirdan/neon-abyss/internal/registry"
	"github.com/vovakirdan/neon-abyss/internal/storage"
)

// runInfo is the run detail a mode exposes beyond registry.Game.
type runInfo interface {
	Outcome() abyss.Reason
	Revives() int
	Skin() abyss.Skin
	Background() core.Color
	Charging() bool
}

// GameModel runs one mode: ticks, input, revive and run recording.
// It is used directly by Run and embedded in SSH sessions.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       *KeyMapper
	onRun      func(storage.Run)
	quitting   bool
	backToMenu bool
	overSeen   bool // The current game over has been handled
	pending    bool // A revivable run waits to be recorded
}

// NewGameModel creates a model for game. onRun, if set, is called after a
// run is recorded.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, onRun func(storage.Run)) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       NewKeyMapper(),
		onRun:      onRun,
	}
}

// Init starts the game and the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The renderer scales the field to the screen; no reset needed
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.HandleKey(msg)
	switch {
	case isQuit:
		m.settle()
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionBack:
		if m.gameState.GameOver || m.gameState.Paused {
			m.settle()
			m.backToMenu = true
			return m, tea.Quit
		}
	case action == core.ActionRestart:
		if m.gameState.GameOver {
			m.inputFrame.Set(action)
		}
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}

	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.settle()
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.overSeen = false
		m.keys.Reset()
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	m.keys.Fill(&m.inputFrame)
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	if info, ok := m.game.(runInfo); ok {
		m.keys.Sync(info.Charging())
	}

	switch {
	case m.gameState.GameOver && !m.overSeen:
		m.overSeen = true
		m.keys.Reset()
		if rv, ok := m.game.(registry.Reviver); ok && rv.CanRevive() {
			m.pending = true
		} else {
			m.record()
		}
	case !m.gameState.GameOver && m.overSeen:
		// Revived
		m.overSeen = false
		m.pending = false
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// settle records a finished run that was left waiting for a revive.
func (m *GameModel) settle() {
	if m.pending {
		m.record()
	}
}

// record writes the current run to the store.
func (m *GameModel) record() {
	m.pending = false
	if m.gameState.Score <= 0 {
		return
	}

	run := storage.Run{
		Mode:    m.game.ID(),
		Depth:   m.gameState.Score,
		Victory: m.gameState.Victory,
	}
	if info, ok := m.game.(runInfo); ok {
		run.Reason = info.Outcome().String()
		run.Revives = info.Revives()
		run.Skin = string(info.Skin())
	}
	if m.store != nil {
		//nolint:errcheck // Best-effort save, game continues regardless
		m.store.SaveRun(run)
	}
	if m.onRun != nil {
		m.onRun(run)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".abyss", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	bg := core.ColorDefault
	if info, ok := m.game.(runInfo); ok {
		bg = info.Background()
	}
	return RenderScreen(m.screen, bg)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// State returns the state after the last tick.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// Run plays game in the terminal until the player quits or goes back.
// It reports whether the player asked for the menu.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, onRun func(storage.Run)) (backToMenu bool, err error) {
	model := NewGameModel(game, store, cfg, onRun)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(GameModel)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
