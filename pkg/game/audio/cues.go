// Package audio plays the short cues the simulation emits.
package audio

import "sync"

// Cue names a sound the simulation asks for
type Cue string

const (
	CueTurn   Cue = "turn"
	CueDoors  Cue = "doors"
	CuePickup Cue = "pickup"
	CueUI     Cue = "ui"
)

// Player receives cues. Implementations must not block.
type Player interface {
	Play(cue Cue)
}

// Silent drops every cue
type Silent struct{}

// Play does nothing
func (Silent) Play(Cue) {}

// Recorder keeps every cue it is given, in order
type Recorder struct {
	mu   sync.Mutex
	cues []Cue
}

// Play records the cue
func (r *Recorder) Play(cue Cue) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cues = append(r.cues, cue)
}

// Cues returns a copy of the recorded cues
func (r *Recorder) Cues() []Cue {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Cue(nil), r.cues...)
}

// Count returns how many times cue was played
func (r *Recorder) Count(cue Cue) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, c := range r.cues {
		if c == cue {
			n++
		}
	}
	return n
}

// Reset forgets every recorded cue
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cues = nil
}
