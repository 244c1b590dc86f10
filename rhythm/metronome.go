package rhythm

import (
	"math"
	"time"
)

// Metronome ticks at the beat rate of a tempered interval, so the beats heard while tuning by ear
// can be counted against it.
type Metronome struct {
	tempo float64
}

// NewMetronome creates a Metronome from a beat rate in beats per minute. The sign of a beat rate
// only tells which harmonic is higher, so it is dropped.
func NewMetronome(bpm float64) *Metronome {
	return &Metronome{tempo: math.Abs(bpm)}
}

func (m *Metronome) GetTempo() float64 {
	return m.tempo
}

// SetTempo sets a new tempo for the Metronome.
func (m *Metronome) SetTempo(bpm float64) {
	m.tempo = math.Abs(bpm)
}

// GetBeatInterval returns the number of milliseconds a beat lasts. A pure interval does not beat
// and gives +Inf.
func (m *Metronome) GetBeatInterval() float64 {
	return beatsToMilliseconds(1, m.tempo)
}

// BeatsIn returns the number of beats heard during d.
func (m *Metronome) BeatsIn(d time.Duration) float64 {
	return m.tempo * d.Minutes()
}

// beatsToMilliseconds calculates milliseconds for given beats and tempo
func beatsToMilliseconds(beats int, tempo float64) float64 {
	return (60000.0 / tempo) * float64(beats)
}
