package temperament

import (
	"github.com/gruntwork-io/go-commons/errors"
	"github.com/robmorgan/kbtune/theory"
	"github.com/robmorgan/kbtune/utils"
	"k8s.io/utils/ptr"
)

const positions = 12

// KeyboardNotes are the twelve notes of an octave on a keyboard, indexed by position.
var KeyboardNotes = [positions]theory.Note{
	{Key: theory.KeyC},
	{Key: theory.KeyC, Accidental: 1},
	{Key: theory.KeyD},
	{Key: theory.KeyE, Accidental: -1},
	{Key: theory.KeyE},
	{Key: theory.KeyF},
	{Key: theory.KeyF, Accidental: 1},
	{Key: theory.KeyG},
	{Key: theory.KeyG, Accidental: 1},
	{Key: theory.KeyA},
	{Key: theory.KeyB, Accidental: -1},
	{Key: theory.KeyB},
}

// Temperament is a single octave tunable keyboard instrument. Each of the twelve positions holds a
// frequency once it has been tuned. Notes with the same position, such as G# and Ab, share a slot.
//
// A Temperament is not safe for concurrent use.
type Temperament struct {
	frequencies [positions]*float64
}

// New returns a temperament with no tuned notes.
func New() *Temperament {
	return &Temperament{}
}

// IsTuned reports whether the note at the given position has a frequency.
func (t *Temperament) IsTuned(position int) bool {
	return t.frequencies[utils.Mod(position, positions)] != nil
}

// SetFrequency tunes a note to a frequency in Hz.
func (t *Temperament) SetFrequency(n theory.Note, hz float64) {
	t.frequencies[n.Position()] = ptr.To(hz)
}

// Frequency returns the frequency of a note, and false if the note is not tuned yet.
func (t *Temperament) Frequency(n theory.Note) (float64, bool) {
	slot := t.frequencies[n.Position()]
	return ptr.Deref(slot, 0), slot != nil
}

func (t *Temperament) mustBeTuned(n theory.Note) (float64, error) {
	hz, ok := t.Frequency(n)
	if !ok {
		return 0, errors.WithStackTrace(UntunedError{Note: n})
	}
	return hz, nil
}

// Cents returns the signed size in cents of the interval from n1 to n2 as tuned.
func (t *Temperament) Cents(n1, n2 theory.Note) (float64, error) {
	hz1, err := t.mustBeTuned(n1)
	if err != nil {
		return 0, err
	}
	hz2, err := t.mustBeTuned(n2)
	if err != nil {
		return 0, err
	}
	return theory.RatioToCents(hz2 / hz1), nil
}

// DeviationCents returns how far, in cents, the tuned interval from n1 to n2 is from just intonation.
func (t *Temperament) DeviationCents(n1, n2 theory.Note) (float64, error) {
	tuned, err := t.Cents(n1, n2)
	if err != nil {
		return 0, err
	}
	pure, err := theory.NewInterval(n1, n2).Cents()
	if err != nil {
		return 0, err
	}
	return tuned - pure, nil
}

// DeviationBeatsPerSecond returns the difference in Hz between the first pair of harmonics of n1
// and n2 that coincide when the interval is pure. This is the beat rate heard when tuning by ear.
// A descending interval gives the negated rate of its ascending counterpart.
func (t *Temperament) DeviationBeatsPerSecond(n1, n2 theory.Note) (float64, error) {
	sign := 1.0
	iv := theory.NewInterval(n1, n2)
	if !iv.Up {
		n1, n2 = n2, n1
		iv = theory.NewInterval(n1, n2)
		sign = -1.0
	}

	upper, lower, err := iv.Harmonics()
	if err != nil {
		return 0, err
	}
	hz1, err := t.mustBeTuned(n1)
	if err != nil {
		return 0, err
	}
	hz2, err := t.mustBeTuned(n2)
	if err != nil {
		return 0, err
	}

	return sign * (float64(upper)*hz2 - float64(lower)*hz1), nil
}

// DeviationBeatsPerMinute is DeviationBeatsPerSecond in beats per minute.
func (t *Temperament) DeviationBeatsPerMinute(n1, n2 theory.Note) (float64, error) {
	bps, err := t.DeviationBeatsPerSecond(n1, n2)
	if err != nil {
		return 0, err
	}
	return 60 * bps, nil
}
