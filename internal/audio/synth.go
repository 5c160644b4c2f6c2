// Package audio synthesises the game's sound cues with beep. Synth is the
// speaker-backed effects port handed to the simulation.
package audio

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	bufferTime = 100 * time.Millisecond
)

// Synth plays cues through the system speaker. Until Init succeeds every
// Play call is a no-op, so a machine without an audio device still runs.
type Synth struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	master      *effects.Volume
	music       *beep.Ctrl
	rng         *rand.Rand
	rate        beep.SampleRate
	sfx         bool
	musicOn     bool
	initialized bool
}

// NewSynth creates a silent synth with sound effects enabled.
func NewSynth() *Synth {
	mixer := &beep.Mixer{}
	return &Synth{
		mixer:  mixer,
		master: &effects.Volume{Streamer: mixer, Base: 2},
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		rate:   sampleRate,
		sfx:    true,
	}
}

// Init opens the speaker.
func (s *Synth) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := speaker.Init(s.rate, s.rate.N(bufferTime)); err != nil {
		return err
	}
	speaker.Play(s.master)
	s.initialized = true
	if s.musicOn {
		s.applyMusic()
	}
	return nil
}

// Close stops all sounds and releases the speaker.
func (s *Synth) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	s.mixer.Clear()
	s.music = nil
	s.initialized = false
}

// SetSFX enables or disables the sound effects.
func (s *Synth) SetSFX(on bool) {
	s.mu.Lock()
	s.sfx = on
	s.mu.Unlock()
}

// SetVolume scales everything by v (1 is unity). Zero or less mutes.
func (s *Synth) SetVolume(v float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	s.master.Silent = v <= 0
	if v > 0 {
		s.master.Volume = math.Log2(v)
	}
}

// SetMusic starts or stops the background loop.
func (s *Synth) SetMusic(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.musicOn = on
	if s.initialized {
		s.applyMusic()
	}
}

// applyMusic syncs the loop with musicOn. Callers hold s.mu.
func (s *Synth) applyMusic() {
	speaker.Lock()
	defer speaker.Unlock()
	if s.music == nil {
		s.music = &beep.Ctrl{Streamer: NewMusic(s.rate)}
		s.mixer.Add(s.music)
	}
	s.music.Paused = !s.musicOn
}

func (s *Synth) play(sound func(beep.SampleRate) beep.Streamer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized || !s.sfx {
		return
	}
	speaker.Lock()
	s.mixer.Add(sound(s.rate))
	speaker.Unlock()
}

// PlayJump plays the launch chirp.
func (s *Synth) PlayJump() { s.play(JumpSound) }

// PlayLand plays the landing tick.
func (s *Synth) PlayLand() { s.play(LandSound) }

// PlayWhoosh plays the falling wind.
func (s *Synth) PlayWhoosh() {
	s.play(func(rate beep.SampleRate) beep.Streamer {
		return WhooshSound(rate, s.rng)
	})
}

// PlayFail plays the game over slide.
func (s *Synth) PlayFail() { s.play(FailSound) }

// PlayWin plays the victory arpeggio.
func (s *Synth) PlayWin() { s.play(WinSound) }
