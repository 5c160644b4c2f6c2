package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/neon-abyss/internal/audio"
	"github.com/vovakirdan/neon-abyss/internal/core"
	"github.com/vovakirdan/neon-abyss/internal/settings"
	"github.com/vovakirdan/neon-abyss/internal/storage"
)

func newLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "abyss",
	})
}

// fail prints err and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// runtimeConfig sizes the screen from the terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the run history. The game still works without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

// openSettings loads the player's preferences, falling back to memory.
func openSettings(logger *log.Logger) *settings.Store {
	prefs, err := settings.Open(settings.AppName)
	if err != nil {
		logger.Warn("preferences will not be saved", "err", err)
	}
	return prefs
}

// startAudio opens the speaker with the saved sound preferences. It returns
// nil when sound is off or no device is available.
func startAudio(p settings.Preferences, mute bool, logger *log.Logger) *audio.Synth {
	if mute || (!p.SFX && !p.Music) {
		return nil
	}
	synth := audio.NewSynth()
	synth.SetSFX(p.SFX)
	synth.SetVolume(p.Volume)
	synth.SetMusic(p.Music)
	if err := synth.Init(); err != nil {
		logger.Warn("audio unavailable", "err", err)
		return nil
	}
	return synth
}
