// Package settings persists player preferences across runs with gdata.
// Without a data directory the store degrades to in-memory defaults.
package settings

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/neon-abyss/internal/config"
	"github.com/vovakirdan/neon-abyss/internal/games/abyss"
)

// AppName is the gdata application directory.
const AppName = "neon_abyss"

const (
	prefsObject   = "settings"
	prefsProperty = "player"
)

// Preferences are the player's persisted choices.
type Preferences struct {
	Skin       abyss.Skin              `yaml:"skin"`
	SFX        bool                    `yaml:"sfx"`
	Music      bool                    `yaml:"music"`
	Volume     float64                 `yaml:"volume"` // 0..1
	Difficulty config.DifficultyPreset `yaml:"difficulty"`
}

// Defaults returns the first-launch preferences.
func Defaults() Preferences {
	return Preferences{
		Skin:       abyss.SkinClassic,
		SFX:        true,
		Music:      false,
		Volume:     0.8,
		Difficulty: config.DifficultyNormal,
	}
}

// normalize repairs values a hand-edited file may carry.
func (p *Preferences) normalize() {
	if _, err := abyss.ParseSkin(string(p.Skin)); err != nil || p.Skin == "" {
		p.Skin = abyss.SkinClassic
	}
	if preset, ok := config.ParsePreset(string(p.Difficulty)); ok {
		p.Difficulty = preset
	} else {
		p.Difficulty = config.DifficultyNormal
	}
	switch {
	case p.Volume < 0:
		p.Volume = 0
	case p.Volume > 1:
		p.Volume = 1
	}
}

// Store loads and saves Preferences. A nil manager keeps everything in
// memory.
type Store struct {
	manager *gdata.Manager
	prefs   Preferences
}

// Open opens the gdata store for appName. If the data directory cannot be
// opened the returned store is memory-only and the error says why.
func Open(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return New(nil), fmt.Errorf("settings: cannot open data directory: %w", err)
	}
	s := New(m)
	if err := s.Load(); err != nil {
		return s, err
	}
	return s, nil
}

// New wraps a manager, which may be nil, with default preferences.
func New(m *gdata.Manager) *Store {
	return &Store{manager: m, prefs: Defaults()}
}

// Persistent reports whether Save reaches disk.
func (s *Store) Persistent() bool {
	return s.manager != nil
}

// Load reads the saved preferences. A missing file keeps the defaults.
func (s *Store) Load() error {
	s.prefs = Defaults()
	if s.manager == nil || !s.manager.ObjectPropExists(prefsObject, prefsProperty) {
		return nil
	}

	data, err := s.manager.LoadObjectProp(prefsObject, prefsProperty)
	if err != nil {
		return fmt.Errorf("settings: cannot load preferences: %w", err)
	}

	prefs := Defaults()
	if err := yaml.Unmarshal(data, &prefs); err != nil {
		return fmt.Errorf("settings: cannot parse preferences: %w", err)
	}
	prefs.normalize()
	s.prefs = prefs
	return nil
}

// Save writes the current preferences.
func (s *Store) Save() error {
	if s.manager == nil {
		return nil
	}

	data, err := yaml.Marshal(s.prefs)
	if err != nil {
		return fmt.Errorf("settings: cannot encode preferences: %w", err)
	}
	if err := s.manager.SaveObjectProp(prefsObject, prefsProperty, data); err != nil {
		return fmt.Errorf("settings: cannot save preferences: %w", err)
	}
	return nil
}

// Get returns a copy of the current preferences.
func (s *Store) Get() Preferences {
	return s.prefs
}

// Update applies fn to the preferences and saves them.
func (s *Store) Update(fn func(*Preferences)) error {
	fn(&s.prefs)
	s.prefs.normalize()
	return s.Save()
}
