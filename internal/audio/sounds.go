package audio

import (
	"math/rand"
	"time"

	"github.com/gopxl/beep"
)

// Voices for the game cues.
var (
	jumpVoice = Voice{
		Wave: WaveSquare, FromHz: 150, ToHz: 600, Sweep: RampExponential,
		Gain: 0.05, EndGain: 0.001, Fade: RampExponential,
		Duration: 150 * time.Millisecond,
	}
	landVoice = Voice{
		Wave: WaveTriangle, FromHz: 500, ToHz: 100, Sweep: RampExponential,
		Gain: 0.15, EndGain: 0.001, Fade: RampExponential,
		Duration: 80 * time.Millisecond,
	}
	whooshVoice = Voice{
		Wave: WaveNoise, Gain: 0.05, EndGain: 0.001, Fade: RampLinear,
		Duration:  200 * time.Millisecond,
		LowpassHz: [2]float64{400, 100},
	}
	failVoice = Voice{
		Wave: WaveSaw, FromHz: 200, ToHz: 50, Sweep: RampExponential,
		Gain: 0.1, EndGain: 0.001, Fade: RampLinear,
		Duration: time.Second,
	}
)

// C major arpeggio, one note every 100ms.
var winNotes = []float64{523.25, 659.25, 783.99, 1046.50}

const (
	winNoteGap  = 100 * time.Millisecond
	winNoteTime = 300 * time.Millisecond
)

// JumpSound is a rising square chirp.
func JumpSound(rate beep.SampleRate) beep.Streamer {
	return NewVoice(jumpVoice, rate, nil)
}

// LandSound is a short falling triangle tick.
func LandSound(rate beep.SampleRate) beep.Streamer {
	return NewVoice(landVoice, rate, nil)
}

// WhooshSound is filtered noise with a closing cutoff.
func WhooshSound(rate beep.SampleRate, rng *rand.Rand) beep.Streamer {
	return NewVoice(whooshVoice, rate, rng)
}

// FailSound is a one second falling saw.
func FailSound(rate beep.SampleRate) beep.Streamer {
	return NewVoice(failVoice, rate, nil)
}

// WinSound is an overlapping arpeggio.
func WinSound(rate beep.SampleRate) beep.Streamer {
	notes := make([]beep.Streamer, len(winNotes))
	for i, hz := range winNotes {
		note := NewVoice(Voice{
			Wave: WaveSquare, FromHz: hz, ToHz: hz,
			Gain: 0.05, EndGain: 0.001, Fade: RampExponential,
			Duration: winNoteTime,
		}, rate, nil)
		notes[i] = beep.Seq(beep.Silence(rate.N(time.Duration(i)*winNoteGap)), note)
	}
	return beep.Mix(notes...)
}
