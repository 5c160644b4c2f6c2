package audio

import (
	"math"

	"github.com/gopxl/beep"
)

const (
	musicTempo = 145.0
	musicSteps = 16 // Sixteenth notes per bar
)

// bassline maps bar steps to bass notes (E2, G2, A2) and their length in
// sixteenths.
var bassline = map[int]struct {
	hz    float64
	steps float64
}{
	2:  {82.41, 2},
	6:  {82.41, 2},
	10: {82.41, 2},
	14: {82.41, 2},
	3:  {98.00, 1},
	11: {98.00, 1},
	15: {110.00, 1},
}

// musicStreamer is an endless four-on-the-floor loop: a pitched kick on
// every beat and a plucked saw bass on the off-beats.
type musicStreamer struct {
	rate    beep.SampleRate
	step    int // Samples per sixteenth
	pos     int
	kickPh  float64
	bassPh  float64
	bassHz  float64
	bassLen int
	bassPos int
}

// NewMusic returns the background loop. It never drains.
func NewMusic(rate beep.SampleRate) beep.Streamer {
	return &musicStreamer{
		rate: rate,
		step: int(float64(rate) * 60 / musicTempo / 4),
	}
}

func (m *musicStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	sr := float64(m.rate)
	for i := range samples {
		inStep := m.pos % m.step
		bar := (m.pos / m.step) % musicSteps
		if inStep == 0 {
			if note, hit := bassline[bar]; hit {
				m.bassHz = note.hz
				m.bassLen = int(note.steps * float64(m.step) * 2)
				m.bassPos = 0
			}
		}

		val := 0.0

		// Kick on 0, 4, 8, 12; 150Hz falling over half a second
		beatPos := m.pos % (m.step * 4)
		if kt := float64(beatPos) / sr; kt < 0.5 {
			p := kt / 0.5
			m.kickPh += 150 * math.Pow(0.01/150, p) / sr
			m.kickPh -= math.Floor(m.kickPh)
			val += RampExponential.at(0.2, 0.001, p) * math.Sin(2*math.Pi*m.kickPh)
		}

		if m.bassPos < m.bassLen {
			p := float64(m.bassPos) / float64(m.bassLen)
			m.bassPh += m.bassHz / sr
			m.bassPh -= math.Floor(m.bassPh)
			val += RampExponential.at(0.08, 0.001, p) * 2 * (m.bassPh - 0.5)
			m.bassPos++
		}

		samples[i][0] = val
		samples[i][1] = val
		m.pos++
	}
	return len(samples), true
}

func (m *musicStreamer) Err() error { return nil }
