package config

import "math"

// Scroll speed multipliers applied by presets.
const (
	easyScrollScale = 0.8
	hardScrollScale = 1.2
)

// DifficultyManager calculates score-driven parameters (platform width,
// forced scroll speed) for the active preset.
type DifficultyManager struct {
	preset DifficultyPreset
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(preset DifficultyPreset) *DifficultyManager {
	if preset == "" {
		preset = DifficultyNormal
	}
	return &DifficultyManager{preset: preset}
}

// Preset returns the active preset.
func (d *DifficultyManager) Preset() DifficultyPreset {
	return d.preset
}

// IsEnabled returns whether score drives difficulty at all.
func (d *DifficultyManager) IsEnabled() bool {
	return d.preset != DifficultyFixed
}

// effectiveScore is the score the curves see.
func (d *DifficultyManager) effectiveScore(score int) float64 {
	if !d.IsEnabled() || score < 0 {
		return 0
	}
	return float64(score)
}

// PlatformWidth returns the width of the next platform. The result is never
// below the curve's floor, and never below 1 even for a degenerate curve.
func (d *DifficultyManager) PlatformWidth(curve WidthCurve, score int) float64 {
	w := curve.Base - d.effectiveScore(score)*curve.Shrink
	w = math.Max(curve.Floor, w)
	if math.IsNaN(w) || w < 1 {
		w = 1
	}
	return w
}

// ScrollSpeed returns the forced camera advance per frame.
func (d *DifficultyManager) ScrollSpeed(curve ScrollCurve, score int) float64 {
	speed := math.Min(curve.Base+d.effectiveScore(score)*curve.Growth, curve.Cap)
	switch d.preset {
	case DifficultyEasy:
		speed *= easyScrollScale
	case DifficultyHard:
		speed *= hardScrollScale
	}
	return math.Max(0, speed)
}
