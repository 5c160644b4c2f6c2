package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-abyss/internal/config"
	"github.com/vovakirdan/neon-abyss/internal/games/abyss"
	"github.com/vovakirdan/neon-abyss/internal/platform/desktop"
	"github.com/vovakirdan/neon-abyss/internal/platform/tui"
	"github.com/vovakirdan/neon-abyss/internal/registry"
	"github.com/vovakirdan/neon-abyss/internal/settings"
)

var (
	flagConfig     string
	flagDifficulty string
	flagSkin       string
	flagShield     bool
	flagWindow     bool
	flagMute       bool
	flagScale      float64
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start a run in the given mode (default: classic).

Modes:
  classic   - Spikes and crushing ceiling, revivable
  infinite  - Spikes only bounce you, revivable
  boss      - Fight the Abyss Lord: each new floor hurts it

Controls:
  Space/Up/W      - Hold to charge, release to jump
  A/D, Left/Right - Move
  S/Down          - Drop faster
  P/Esc           - Pause
  V               - Revive (after game over)
  R               - Restart (after game over)
  B               - Back to menu (paused or game over)
  Q/Ctrl+C        - Quit

In a terminal the jump key toggles: press once to start charging and
again to launch. Use --window for a real hold-and-release jump.

Difficulty options:
  easy   - Slower scroll
  normal - Default tuning
  hard   - Faster scroll
  fixed  - No progression, stays at base width and speed

Examples:
  abyss play
  abyss play boss --skin superman
  abyss play infinite --difficulty hard
  abyss play --window --scale 0.75
  abyss play classic --config ./my-abyss.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagSkin, "skin", "", "Player skin (see 'abyss skins')")
	playCmd.Flags().BoolVar(&flagShield, "shield", false, "Start with the spike shield")
	playCmd.Flags().BoolVar(&flagWindow, "window", false, "Play in a desktop window")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	playCmd.Flags().Float64Var(&flagScale, "scale", desktop.DefaultScale, "Window scale (with --window)")
}

// applyGameFlags sets the package defaults every new game picks up.
func applyGameFlags(p settings.Preferences, skin abyss.Skin) {
	difficulty := flagDifficulty
	if difficulty == "" {
		difficulty = string(p.Difficulty)
	}
	abyss.SetConfigPath(flagConfig)
	abyss.SetDifficultyPreset(difficulty)
	abyss.SetSkin(skin)
	abyss.SetShield(flagShield)
}

func runPlay(_ *cobra.Command, args []string) {
	name := abyss.ModeClassic.String()
	if len(args) > 0 {
		name = args[0]
	}
	mode, err := abyss.ParseMode(name)
	if err != nil {
		fail("%v\nRun 'abyss list' to see available modes.", err)
	}
	if flagDifficulty != "" {
		if _, ok := config.ParsePreset(flagDifficulty); !ok {
			fail("unknown difficulty %q", flagDifficulty)
		}
	}

	logger := newLogger()
	prefs := openSettings(logger).Get()

	skin := prefs.Skin
	if flagSkin != "" {
		if skin, err = abyss.ParseSkin(flagSkin); err != nil {
			fail("%v\nRun 'abyss skins' to see available skins.", err)
		}
	}
	applyGameFlags(prefs, skin)

	synth := startAudio(prefs, flagMute, logger)
	if synth != nil {
		abyss.SetEffects(synth)
		defer synth.Close()
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	game, err := registry.Create(mode.String())
	if err != nil {
		fail("creating game: %v", err)
	}
	cfg := runtimeConfig()

	if flagWindow {
		ag, ok := game.(*abyss.Game)
		if !ok {
			fail("mode %s cannot run in a window", mode)
		}
		err = desktop.Run(desktop.Options{
			Game:    ag,
			Runtime: cfg,
			Store:   store,
			Logger:  logger,
			Scale:   flagScale,
		})
	} else {
		_, err = tui.Run(game, store, cfg, nil)
	}
	if err != nil {
		fail("running game: %v", err)
	}
}
