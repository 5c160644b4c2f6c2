package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the tuning file name looked up in the config directories.
const FileName = "abyss.yaml"

// Load loads the simulation tuning.
// Search order: customPath -> ~/.abyss/configs/abyss.yaml -> ./configs/abyss.yaml -> embedded default
//
// Only an explicit customPath can fail: unreadable or invalid files found in
// the implicit locations are skipped.
func Load(customPath string) (AbyssConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return AbyssConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return AbyssConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", FileName)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultAbyssYAML)
	if err != nil {
		return DefaultAbyssConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the built-in defaults, so partial files only
// override the keys they name, and validates the result.
func Parse(data []byte) (AbyssConfig, error) {
	cfg := DefaultAbyssConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AbyssConfig{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return AbyssConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".abyss", "configs", filename)
}

// Validate rejects tuning the simulation cannot run with.
func (c AbyssConfig) Validate() error {
	var errs []error
	check := func(ok bool, msg string) {
		if !ok {
			errs = append(errs, errors.New(msg))
		}
	}

	check(c.Field.Width > 0 && c.Field.Height > 0, "field dimensions must be positive")
	check(c.Player.Size > 0 && c.Player.Size < c.Field.Width, "player size must fit the field")
	check(c.Physics.MaxCharge > 0, "physics.max_charge must be positive")
	check(c.Physics.ChargeRate > 0, "physics.charge_rate must be positive")
	check(c.Physics.Friction >= 0 && c.Physics.Friction <= 1, "physics.friction must be within [0, 1]")
	check(c.Platforms.Height > 0, "platforms.height must be positive")
	check(c.Platforms.GapMin > 0 && c.Platforms.GapRange >= 0, "platform gap must be positive")
	check(c.Platforms.InitialCount >= 0, "platforms.initial_count must not be negative")
	check(c.Platforms.StartWidth > 0 && c.Platforms.StartWidth <= c.Field.Width, "platforms.start_width must fit the field")
	check(c.Generator.Width.Floor > 0 && c.Generator.Width.Floor <= c.Field.Width, "generator.width.floor must fit the field")
	check(c.Generator.BossWidth.Floor > 0 && c.Generator.BossWidth.Floor <= c.Field.Width, "generator.boss_width.floor must fit the field")
	check(c.Scroll.Easing > 0 && c.Scroll.Easing <= 1, "scroll.easing must be within (0, 1]")
	check(c.Scroll.Speed.Cap >= 0 && c.Scroll.BossSpeed.Cap >= 0, "scroll caps must not be negative")
	check(c.Boss.Health > 0, "boss.health must be positive")
	check(c.Boss.Cooldown > 0 && c.Boss.EnragedCooldown > 0, "boss cooldowns must be positive")
	check(c.Particles.Decay > 0, "particles.decay must be positive")
	check(c.Revive.MaxPerRun >= 0, "revive.max_per_run must not be negative")

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
