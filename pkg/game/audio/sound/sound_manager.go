// Package sound plays audio cues through the system speaker with beep.
package sound

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"puzzlerooms/pkg/game/audio"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// tone describes one synthesized cue: a short chirp from Start to End Hz
type tone struct {
	Start    float64
	End      float64
	Duration time.Duration
	Volume   float64
}

var cueTones = map[audio.Cue][]tone{
	audio.CueTurn:   {{Start: 660, End: 880, Duration: 60 * time.Millisecond, Volume: 0.15}},
	audio.CuePickup: {{Start: 880, End: 1320, Duration: 90 * time.Millisecond, Volume: 0.2}},
	audio.CueDoors: {
		{Start: 220, End: 330, Duration: 120 * time.Millisecond, Volume: 0.25},
		{Start: 330, End: 440, Duration: 160 * time.Millisecond, Volume: 0.25},
	},
	audio.CueUI: {{Start: 440, End: 440, Duration: 40 * time.Millisecond, Volume: 0.1}},
}

// SoundManager plays cues through the system speaker
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// Play queues the cue. Unknown cues and an uninitialized speaker are ignored.
func (sm *SoundManager) Play(cue audio.Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	s := CueStreamer(sampleRate, cue)
	if s == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// CueStreamer builds the finite streamer for a cue, or nil for an unknown cue
func CueStreamer(sr beep.SampleRate, cue audio.Cue) beep.Streamer {
	tones, ok := cueTones[cue]
	if !ok {
		return nil
	}
	parts := make([]beep.Streamer, 0, len(tones))
	for _, t := range tones {
		parts = append(parts, beep.Take(sr.N(t.Duration), NewChirpGenerator(sr, t)))
	}
	return beep.Seq(parts...)
}

// ChirpGenerator generates a sine sweep with a short attack and linear release
type ChirpGenerator struct {
	sr    beep.SampleRate
	tone  tone
	total int
	pos   int
	phase float64
}

// NewChirpGenerator creates a chirp generator for one tone
func NewChirpGenerator(sr beep.SampleRate, t tone) *ChirpGenerator {
	total := sr.N(t.Duration)
	if total < 1 {
		total = 1
	}
	return &ChirpGenerator{sr: sr, tone: t, total: total}
}

func (g *ChirpGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	attack := float64(g.sr.N(5 * time.Millisecond))
	for i := range samples {
		progress := math.Min(float64(g.pos)/float64(g.total), 1)
		freq := g.tone.Start + (g.tone.End-g.tone.Start)*progress

		envelope := 1 - progress
		if attack > 0 && float64(g.pos) < attack {
			envelope *= float64(g.pos) / attack
		}

		g.phase += 2 * math.Pi * freq / float64(g.sr)
		sample := g.tone.Volume * envelope * math.Sin(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChirpGenerator) Err() error {
	return nil
}
