package abyss

import "time"

// Effects is the audio/haptic port the simulation notifies. Implementations
// must not block; the simulation never waits for a cue to finish.
type Effects interface {
	PlayJump()
	PlayLand()
	PlayWhoosh()
	PlayFail()
	PlayWin()
}

// NopEffects discards every cue.
type NopEffects struct{}

func (NopEffects) PlayJump()   {}
func (NopEffects) PlayLand()   {}
func (NopEffects) PlayWhoosh() {}
func (NopEffects) PlayFail()   {}
func (NopEffects) PlayWin()    {}

// ScoreSink receives the new depth each time a platform is visited.
type ScoreSink func(depth int)

// GameOverSink receives the final depth and the terminal reason.
type GameOverSink func(depth int, reason Reason)

// Clock returns the current wall-clock time. Only invincibility expiry
// reads it; everything else is counted in frames.
type Clock func() time.Time
