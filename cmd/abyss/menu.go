package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-abyss/internal/games/abyss"
	"github.com/vovakirdan/neon-abyss/internal/platform/tui"
	"github.com/vovakirdan/neon-abyss/internal/registry"
	"github.com/vovakirdan/neon-abyss/internal/settings"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a mode and skin picker",
	Long: `Start Neon Abyss in interactive menu mode.

Use arrow keys or j/k to pick a mode, Left/Right to change skin and
Enter to start. After a run you return to the menu.

Controls:
  Up/Down/j/k  - Navigate modes
  Left/Right   - Change skin
  Enter/Space  - Start
  Tab          - Scoreboard
  Q            - Quit

Examples:
  abyss menu
  abyss menu --fps 30
  abyss menu --db ./runs.db`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	menuCmd.Flags().BoolVar(&flagShield, "shield", false, "Start with the spike shield")
	menuCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runMenu(_ *cobra.Command, _ []string) {
	logger := newLogger()
	prefsStore := openSettings(logger)
	prefs := prefsStore.Get()

	synth := startAudio(prefs, flagMute, logger)
	if synth != nil {
		abyss.SetEffects(synth)
		defer synth.Close()
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	skin := prefs.Skin

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg, skin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Skin != skin {
			skin = menuResult.Skin
			saveSkin(prefsStore, skin, logger)
		}

		if menuResult.Quit {
			return
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			return
		}

		if menuResult.GameID == "" {
			return
		}

		applyGameFlags(prefs, skin)
		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// Fresh seed for each run unless one was given
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		back, err := tui.Run(game, store, cfg, nil)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
		if !back {
			return
		}
	}
}

func saveSkin(prefs *settings.Store, skin abyss.Skin, logger *log.Logger) {
	err := prefs.Update(func(p *settings.Preferences) {
		p.Skin = skin
	})
	if err != nil {
		logger.Warn("could not save skin", "err", err)
	}
}
