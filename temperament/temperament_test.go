package temperament

import (
	"testing"

	"github.com/gruntwork-io/go-commons/errors"
	"github.com/robmorgan/kbtune/theory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func note(name string) theory.Note {
	return theory.MustParseNote(name)
}

func TestNewIsUntuned(t *testing.T) {
	t.Parallel()

	temp := New()
	for position := 0; position < 12; position++ {
		require.False(t, temp.IsTuned(position))
	}

	hz, ok := temp.Frequency(note("C"))
	require.False(t, ok)
	require.Equal(t, 0.0, hz)
}

func TestSetFrequency(t *testing.T) {
	t.Parallel()

	temp := New()
	temp.SetFrequency(note("A"), 415)

	for position := 0; position < 12; position++ {
		require.Equal(t, position == 9, temp.IsTuned(position), "position %d", position)
	}

	hz, ok := temp.Frequency(note("A"))
	require.True(t, ok)
	require.Equal(t, 415.0, hz)
}

func TestEnharmonicNotesShareFrequency(t *testing.T) {
	t.Parallel()

	temp := New()
	temp.SetFrequency(note("G#"), 400)

	hz, ok := temp.Frequency(note("Ab"))
	require.True(t, ok)
	require.Equal(t, 400.0, hz)
}

func TestKeyboardNotes(t *testing.T) {
	t.Parallel()

	names := make([]string, 0, len(KeyboardNotes))
	for position, n := range KeyboardNotes {
		require.Equal(t, position, n.Position())
		names = append(names, n.String())
	}
	require.Equal(t, []string{"C", "C#", "D", "Eb", "E", "F", "F#", "G", "G#", "A", "Bb", "B"}, names)
}

func TestCentsRequireTunedNotes(t *testing.T) {
	t.Parallel()

	temp := New()
	temp.SetFrequency(note("G"), 196)

	_, err := temp.Cents(note("C"), note("G"))
	require.Error(t, err)
	require.Equal(t, UntunedError{Note: note("C")}, errors.Unwrap(err))

	_, err = temp.DeviationCents(note("G"), note("D"))
	require.Equal(t, UntunedError{Note: note("D")}, errors.Unwrap(err))

	_, err = temp.DeviationBeatsPerMinute(note("C"), note("G"))
	require.IsType(t, UntunedError{}, errors.Unwrap(err))
}

func TestCentsAndDeviation(t *testing.T) {
	t.Parallel()

	temp := New()
	temp.SetFrequency(note("C"), 100)
	temp.SetFrequency(note("G"), 151)
	temp.SetFrequency(note("E"), 125)

	cents, err := temp.Cents(note("C"), note("G"))
	require.NoError(t, err)
	assert.InDelta(t, theory.RatioToCents(1.51), cents, 1e-9)

	cents, err = temp.Cents(note("G"), note("C"))
	require.NoError(t, err)
	assert.InDelta(t, -theory.RatioToCents(1.51), cents, 1e-9)

	deviation, err := temp.DeviationCents(note("C"), note("G"))
	require.NoError(t, err)
	assert.InDelta(t, theory.RatioToCents(1.51/1.5), deviation, 1e-9)

	deviation, err = temp.DeviationCents(note("C"), note("E"))
	require.NoError(t, err)
	assert.InDelta(t, 0, deviation, 1e-9)
}

func TestDeviationBeats(t *testing.T) {
	t.Parallel()

	temp := New()
	temp.SetFrequency(note("C"), 100)
	temp.SetFrequency(note("G"), 151)
	temp.SetFrequency(note("E"), 126)
	temp.SetFrequency(note("B"), 190)

	// the second harmonic of G beats against the third harmonic of C
	bps, err := temp.DeviationBeatsPerSecond(note("C"), note("G"))
	require.NoError(t, err)
	assert.InDelta(t, 2.0, bps, 1e-9)

	bps, err = temp.DeviationBeatsPerSecond(note("G"), note("C"))
	require.NoError(t, err)
	assert.InDelta(t, -2.0, bps, 1e-9)

	bpm, err := temp.DeviationBeatsPerMinute(note("C"), note("E"))
	require.NoError(t, err)
	assert.InDelta(t, 60*(4*126.0-5*100.0), bpm, 1e-9)

	bps, err = temp.DeviationBeatsPerSecond(note("C"), note("C"))
	require.NoError(t, err)
	assert.Equal(t, 0.0, bps)

	_, err = temp.DeviationBeatsPerSecond(note("C"), note("B"))
	require.IsType(t, theory.NotNaturalIntervalError{}, errors.Unwrap(err))
}
