package temperament

import (
	"github.com/gruntwork-io/go-commons/errors"
	"github.com/robmorgan/kbtune/logger"
	"github.com/robmorgan/kbtune/theory"
	"github.com/sirupsen/logrus"
)

// TuneFifthUp tunes the note a perfect fifth above n, deviating the given cents from pure, and
// returns that note. When the fifth would leave the octave, the note is tuned a fourth down
// instead, at the reciprocal of the deviated fourth, which keeps every frequency inside the same
// octave. Seen as a fifth, such a wrapping step deviates by -cents.
func (t *Temperament) TuneFifthUp(n theory.Note, cents float64) (theory.Note, error) {
	return t.tuneFifthUp(n, cents, false)
}

// TuneTemperedFifthUp is like TuneFifthUp, except that a wrapping step is tuned so that the fifth,
// reduced into the octave, also deviates by exactly the given cents.
func (t *Temperament) TuneTemperedFifthUp(n theory.Note, cents float64) (theory.Note, error) {
	return t.tuneFifthUp(n, cents, true)
}

func (t *Temperament) tuneFifthUp(n theory.Note, cents float64, tempered bool) (theory.Note, error) {
	hz, err := t.mustBeTuned(n)
	if err != nil {
		return theory.Note{}, err
	}

	ratio := theory.CentsToRatio(cents)
	next := n.Add(theory.PerfectFifth)
	switch {
	case next.RawPosition() > n.RawPosition():
		hz *= ratio * 3 / 2
	case tempered:
		hz *= ratio * 3 / 4
	default:
		hz /= ratio * 4 / 3
	}
	t.SetFrequency(next, hz)

	logger.GetProjectLogger().
		WithFields(logrus.Fields{"from": n.String(), "to": next.String(), "hz": hz, "cents": cents, "tempered": tempered}).
		Debug("Tuned fifth")

	return next, nil
}

// TuneFifthsUp applies TuneFifthUp from n1 until n2 is reached, each step with the given cents.
// The notes are matched by spelling: walking up from Eb reaches G#, never Ab. If n2 is not
// reached within a full circle nothing is tuned and an UnreachableNoteError is returned.
func (t *Temperament) TuneFifthsUp(n1, n2 theory.Note, cents float64) error {
	return t.tuneFifthsUp(n1, n2, cents, false)
}

// TuneTemperedFifthsUp is like TuneFifthsUp but walks with TuneTemperedFifthUp, so every tuned
// fifth deviates by the given cents.
func (t *Temperament) TuneTemperedFifthsUp(n1, n2 theory.Note, cents float64) error {
	return t.tuneFifthsUp(n1, n2, cents, true)
}

func (t *Temperament) tuneFifthsUp(n1, n2 theory.Note, cents float64, tempered bool) error {
	steps, err := fifthsBetween(n1, n2)
	if err != nil {
		return err
	}

	n := n1
	for i := 0; i < steps; i++ {
		n, err = t.tuneFifthUp(n, cents, tempered)
		if err != nil {
			return err
		}
	}
	return nil
}

// fifthsBetween counts the fifths up from n1 to n2, at most a full circle.
func fifthsBetween(n1, n2 theory.Note) (int, error) {
	n := n1
	for steps := 0; steps <= positions; steps++ {
		if n.Equal(n2) {
			return steps, nil
		}
		n = n.Add(theory.PerfectFifth)
	}
	return 0, errors.WithStackTrace(UnreachableNoteError{From: n1, To: n2, Steps: positions})
}

// TuneMajorThird tunes the four fifths spanning the major third from n1 to n2, all with the same
// deviation, such that the resulting third deviates from pure by the given cents. Four pure
// fifths overshoot a pure third by the syntonic comma, so a pure third needs fifths narrowed by a
// quarter comma each (meantone).
func (t *Temperament) TuneMajorThird(n1, n2 theory.Note, cents float64) error {
	if steps, err := fifthsBetween(n1, n2); err != nil || steps != 4 {
		return errors.WithStackTrace(NotMajorThirdError{From: n1, To: n2})
	}

	return t.tuneFifthsUp(n1, n2, (cents-theory.SyntonicComma)/4, true)
}

// TuneEqual tunes the whole octave in equal temperament, starting from n at the given frequency:
// eleven fifths are tuned, each narrowed by a twelfth of the Pythagorean comma, so the closing
// fifth comes out narrowed by the same amount.
func (t *Temperament) TuneEqual(n theory.Note, hz float64) error {
	n = KeyboardNotes[n.Position()]
	t.SetFrequency(n, hz)

	for i := 0; i < positions-1; i++ {
		next, err := t.tuneFifthUp(n, -theory.PythagoreanComma/positions, true)
		if err != nil {
			return err
		}
		n = KeyboardNotes[next.Position()]
	}
	return nil
}
