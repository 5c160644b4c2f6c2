package abyss

// Reason is the terminal event that ended a run.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonSpiked
	ReasonCrushed
	ReasonBossHit
	ReasonBossDefeated
)

var reasonMessages = map[Reason]string{
	ReasonSpiked:       "惨遭穿刺!",
	ReasonCrushed:      "被天花板压碎了!",
	ReasonBossHit:      "被BOSS击中!",
	ReasonBossDefeated: "奇迹！击败了深渊领主！",
}

// String returns a stable identifier for storage.
func (r Reason) String() string {
	switch r {
	case ReasonSpiked:
		return "spiked"
	case ReasonCrushed:
		return "crushed"
	case ReasonBossHit:
		return "boss_hit"
	case ReasonBossDefeated:
		return "boss_defeated"
	default:
		return "none"
	}
}

// Message returns the in-game message shown on the game over screen.
func (r Reason) Message() string {
	return reasonMessages[r]
}

// Victory reports whether the run ended in a win.
func (r Reason) Victory() bool {
	return r == ReasonBossDefeated
}

// ParseReason is the inverse of String. Unknown input maps to ReasonNone.
func ParseReason(s string) Reason {
	for r := ReasonSpiked; r <= ReasonBossDefeated; r++ {
		if r.String() == s {
			return r
		}
	}
	return ReasonNone
}
