package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSquare Wave = iota
	WaveTriangle
	WaveSaw
	WaveSine
	WaveNoise
)

// Ramp selects how a value travels from its start to its end.
type Ramp int

const (
	RampExponential Ramp = iota
	RampLinear
)

// ramp interpolates from a to b at progress p in [0, 1].
func (r Ramp) at(a, b, p float64) float64 {
	if r == RampLinear || a <= 0 || b <= 0 {
		return a + (b-a)*p
	}
	return a * math.Pow(b/a, p)
}

// Voice describes one synthesised tone: a frequency sweep under a gain
// envelope.
type Voice struct {
	Wave      Wave
	FromHz    float64
	ToHz      float64
	Sweep     Ramp
	Gain      float64
	EndGain   float64
	Fade      Ramp
	Duration  time.Duration
	LowpassHz [2]float64 // Start and end cutoff; zero disables the filter
}

// voiceStreamer renders a Voice sample by sample.
type voiceStreamer struct {
	v     Voice
	rate  beep.SampleRate
	rng   *rand.Rand
	total int
	pos   int
	phase float64
	lp    float64 // One-pole low-pass state
}

// NewVoice returns a finite streamer for v. rng feeds the noise wave and may
// be nil for tonal voices.
func NewVoice(v Voice, rate beep.SampleRate, rng *rand.Rand) beep.Streamer {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &voiceStreamer{
		v:     v,
		rate:  rate,
		rng:   rng,
		total: rate.N(v.Duration),
	}
}

func (s *voiceStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.pos >= s.total {
			return i, i > 0
		}
		p := float64(s.pos) / float64(s.total)

		val := s.oscillate()
		if cut := s.v.LowpassHz; cut[0] > 0 {
			hz := RampLinear.at(cut[0], cut[1], p)
			alpha := 1 - math.Exp(-2*math.Pi*hz/float64(s.rate))
			s.lp += alpha * (val - s.lp)
			val = s.lp
		}
		val *= s.v.Fade.at(s.v.Gain, s.v.EndGain, p)

		samples[i][0] = val
		samples[i][1] = val

		s.phase += s.v.Sweep.at(s.v.FromHz, s.v.ToHz, p) / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *voiceStreamer) oscillate() float64 {
	switch s.v.Wave {
	case WaveSquare:
		if s.phase < 0.5 {
			return 1
		}
		return -1
	case WaveTriangle:
		return 4*math.Abs(s.phase-0.5) - 1
	case WaveSaw:
		return 2 * (s.phase - 0.5)
	case WaveNoise:
		return s.rng.Float64()*2 - 1
	default:
		return math.Sin(2 * math.Pi * s.phase)
	}
}

func (s *voiceStreamer) Err() error { return nil }
