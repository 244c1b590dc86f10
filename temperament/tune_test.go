package temperament

import (
	"testing"

	"github.com/gruntwork-io/go-commons/errors"
	"github.com/robmorgan/kbtune/theory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Eb tuned such that pure fifths up to G# put A at 415/2 Hz.
const pythagoreanEb = (415.0 / 2) / (3.0 / 2) * (4.0 / 3) / (3.0 / 2) * (4.0 / 3) * (4.0 / 3) / (3.0 / 2)

func TestTuneFifthUp(t *testing.T) {
	t.Parallel()

	temp := New()
	temp.SetFrequency(note("C#"), 300)

	next, err := temp.TuneFifthUp(note("C#"), 0)
	require.NoError(t, err)
	require.Equal(t, note("G#"), next)
	hz, _ := temp.Frequency(next)
	assert.InDelta(t, 450.0, hz, 1e-9)

	// wraps past the octave, so D# is tuned a fourth below G#
	next, err = temp.TuneFifthUp(note("G#"), 0)
	require.NoError(t, err)
	require.Equal(t, note("D#"), next)
	hz, _ = temp.Frequency(next)
	assert.InDelta(t, 337.5, hz, 1e-9)

	next, err = temp.TuneFifthUp(note("G#"), -20)
	require.NoError(t, err)
	hz, _ = temp.Frequency(next)
	assert.InDelta(t, 341.42, hz, 0.005)
	assert.InDelta(t, 450/(theory.CentsToRatio(-20)*4/3), hz, 1e-9)

	// the fourth down is narrowed, so the wrapped fifth comes out wide
	deviation, err := temp.DeviationCents(note("G#"), note("D#"))
	require.NoError(t, err)
	assert.InDelta(t, 20.0, deviation, 1e-9)
}

func TestTuneTemperedFifthUp(t *testing.T) {
	t.Parallel()

	temp := New()
	temp.SetFrequency(note("C#"), 300)

	next, err := temp.TuneTemperedFifthUp(note("C#"), -20)
	require.NoError(t, err)
	hz, _ := temp.Frequency(next)
	assert.InDelta(t, 450*theory.CentsToRatio(-20), hz, 1e-9)

	next, err = temp.TuneTemperedFifthUp(note("G#"), -20)
	require.NoError(t, err)
	require.Equal(t, note("D#"), next)

	deviation, err := temp.DeviationCents(note("G#"), note("D#"))
	require.NoError(t, err)
	assert.InDelta(t, -20.0, deviation, 1e-9)
}

func TestTuneFifthsUpMixedSigns(t *testing.T) {
	t.Parallel()

	temp := New()
	temp.SetFrequency(note("C"), 130)
	require.NoError(t, temp.TuneFifthsUp(note("C"), note("D"), -5))

	// C-G goes up, G-D wraps to a fourth down
	deviation, err := temp.DeviationCents(note("C"), note("G"))
	require.NoError(t, err)
	assert.InDelta(t, -5.0, deviation, 1e-9)

	deviation, err = temp.DeviationCents(note("G"), note("D"))
	require.NoError(t, err)
	assert.InDelta(t, 5.0, deviation, 1e-9)
}

func TestTuneTemperedFifthsUp(t *testing.T) {
	t.Parallel()

	temp := New()
	temp.SetFrequency(note("Eb"), 150)
	require.NoError(t, temp.TuneTemperedFifthsUp(note("Eb"), note("G#"), -2))

	rows, err := temp.Fifths()
	require.NoError(t, err)
	for _, row := range rows {
		if row.From.Equal(note("G#")) {
			continue
		}
		assert.InDelta(t, -2.0, row.DeviationCents, 1e-9, "%s-%s", row.From, row.To)
	}
}

func TestTuneFifthUpUntuned(t *testing.T) {
	t.Parallel()

	_, err := New().TuneFifthUp(note("C"), 0)
	require.Equal(t, UntunedError{Note: note("C")}, errors.Unwrap(err))
}

func TestTuneFifthsUpPythagorean(t *testing.T) {
	t.Parallel()

	temp := New()
	temp.SetFrequency(note("Eb"), pythagoreanEb)
	require.NoError(t, temp.TuneFifthsUp(note("Eb"), note("G#"), 0))

	for position := 0; position < 12; position++ {
		require.True(t, temp.IsTuned(position))
	}

	hz, _ := temp.Frequency(note("A"))
	assert.InDelta(t, 415.0, 2*hz, 1e-9)
}

func TestTuneFifthsUpSameNote(t *testing.T) {
	t.Parallel()

	temp := New()
	require.NoError(t, temp.TuneFifthsUp(note("C"), note("C"), 0))
	require.False(t, temp.IsTuned(0))
}

func TestTuneFifthsUpUnreachable(t *testing.T) {
	t.Parallel()

	temp := New()
	temp.SetFrequency(note("Eb"), 150)

	// walking up from Eb spells G#, never Ab
	err := temp.TuneFifthsUp(note("Eb"), note("Ab"), 0)
	require.Error(t, err)
	require.Equal(t, UnreachableNoteError{From: note("Eb"), To: note("Ab"), Steps: 12}, errors.Unwrap(err))

	// nothing is tuned, the start keeps its frequency
	hz, ok := temp.Frequency(note("Eb"))
	require.True(t, ok)
	assert.Equal(t, 150.0, hz)
	for position := 0; position < 12; position++ {
		require.Equal(t, position == 3, temp.IsTuned(position), "position %d", position)
	}

	err = temp.TuneTemperedFifthsUp(note("Eb"), note("Ab"), -2)
	require.IsType(t, UnreachableNoteError{}, errors.Unwrap(err))
	hz, _ = temp.Frequency(note("Eb"))
	assert.Equal(t, 150.0, hz)
}

func TestTuneMajorThird(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		from, to string
		cents    float64
	}{
		{"C", "E", 0},
		{"C", "E", -10},
		{"G", "B", 5},
		{"A", "C#", 0},
		{"Eb", "G", 13.7},
	}

	for _, testCase := range testCases {
		temp := New()
		temp.SetFrequency(note(testCase.from), 200)
		require.NoError(t, temp.TuneMajorThird(note(testCase.from), note(testCase.to), testCase.cents))

		deviation, err := temp.DeviationCents(note(testCase.from), note(testCase.to))
		require.NoError(t, err)
		assert.InDelta(t, testCase.cents, deviation, 1e-9, "%s-%s", testCase.from, testCase.to)
	}
}

func TestTuneMajorThirdQuarterComma(t *testing.T) {
	t.Parallel()

	temp := New()
	temp.SetFrequency(note("C"), 130)
	require.NoError(t, temp.TuneMajorThird(note("C"), note("E"), 0))

	deviation, err := temp.DeviationCents(note("C"), note("G"))
	require.NoError(t, err)
	assert.InDelta(t, -theory.SyntonicComma/4, deviation, 1e-9)
}

func TestTuneMajorThirdWrongNotes(t *testing.T) {
	t.Parallel()

	temp := New()
	temp.SetFrequency(note("C"), 130)

	err := temp.TuneMajorThird(note("C"), note("Fb"), 0)
	require.Equal(t, NotMajorThirdError{From: note("C"), To: note("Fb")}, errors.Unwrap(err))
	require.False(t, temp.IsTuned(7))
}

func TestTuneEqual(t *testing.T) {
	t.Parallel()

	temp := New()
	require.NoError(t, temp.TuneEqual(note("A"), 220))

	for _, n := range KeyboardNotes {
		hz, ok := temp.Frequency(n)
		require.True(t, ok)

		// every note sits a whole number of semitones from A, within one octave from C
		cents, err := temp.Cents(note("A"), n)
		require.NoError(t, err)
		expected := float64(n.Position()-9) * 100
		assert.InDelta(t, expected, cents, 1e-9, n.String())
		assert.True(t, hz > 130 && hz < 247, n.String())
	}
}
