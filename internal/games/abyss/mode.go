package abyss

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMode is returned when a mode name does not match a playable mode.
var ErrUnknownMode = errors.New("abyss: unknown mode")

// Mode selects the rule set of a run.
type Mode int

const (
	ModeClassic Mode = iota
	ModeInfinite
	ModePVP // Reserved, never playable
	ModeBoss
)

// Modes lists the playable modes in menu order.
var Modes = []Mode{ModeClassic, ModeInfinite, ModeBoss}

// String returns the identifier used on the command line and in run history.
func (m Mode) String() string {
	switch m {
	case ModeClassic:
		return "classic"
	case ModeInfinite:
		return "infinite"
	case ModePVP:
		return "pvp"
	case ModeBoss:
		return "boss"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Title returns the display name.
func (m Mode) Title() string {
	switch m {
	case ModeClassic:
		return "Neon Abyss: Classic"
	case ModeInfinite:
		return "Neon Abyss: Infinite"
	case ModeBoss:
		return "Neon Abyss: Abyss Lord"
	default:
		return "Neon Abyss"
	}
}

// Playable reports whether a run can be started in this mode.
func (m Mode) Playable() bool {
	return m == ModeClassic || m == ModeInfinite || m == ModeBoss
}

// HasBoss reports whether the boss encounter is active.
func (m Mode) HasBoss() bool {
	return m == ModeBoss
}

// LethalHazards reports whether spikes and the ceiling end the run.
func (m Mode) LethalHazards() bool {
	return m != ModeInfinite
}

// Revivable reports whether a finished run may be continued.
func (m Mode) Revivable() bool {
	return m == ModeClassic || m == ModeInfinite
}

// ParseMode converts a mode name to a playable Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "classic", "":
		return ModeClassic, nil
	case "infinite", "endless":
		return ModeInfinite, nil
	case "boss":
		return ModeBoss, nil
	default:
		return 0, fmt.Errorf("%w %q (want classic, infinite or boss)", ErrUnknownMode, s)
	}
}
