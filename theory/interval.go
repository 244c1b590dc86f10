package theory

import (
	"fmt"

	"github.com/gruntwork-io/go-commons/errors"
	"github.com/robmorgan/kbtune/utils"
)

// distance is the unsigned size of an interval, used as the key of the lookup tables below.
type distance struct {
	key      int
	position int
}

var intervalNames = map[distance]string{
	{0, 0}:  "P1",   // perfect unison
	{0, 1}:  "aug1", // augmented unison
	{1, 0}:  "dim2", // diminished second
	{1, 1}:  "m2",   // minor second
	{1, 2}:  "M2",   // major second
	{1, 3}:  "aug2", // augmented second
	{2, 2}:  "dim3", // diminished third
	{2, 3}:  "m3",   // minor third
	{2, 4}:  "M3",   // major third
	{2, 5}:  "aug3", // augmented third
	{3, 4}:  "dim4", // diminished fourth
	{3, 5}:  "P4",   // perfect fourth
	{3, 6}:  "aug4", // augmented fourth
	{4, 6}:  "dim5", // diminished fifth
	{4, 7}:  "P5",   // perfect fifth
	{4, 8}:  "aug5", // augmented fifth
	{5, 7}:  "dim6", // diminished sixth
	{5, 8}:  "m6",   // minor sixth
	{5, 9}:  "M6",   // major sixth
	{5, 10}: "aug6", // augmented sixth
	{6, 9}:  "dim7", // diminished seventh
	{6, 10}: "m7",   // minor seventh
	{6, 11}: "M7",   // major seventh
	{6, 12}: "aug7", // augmented seventh
}

// natural holds the just intonation ratio num/den of an interval, and the harmonics of the upper
// and lower note that coincide when the interval is pure.
type natural struct {
	num, den     int
	upper, lower int
}

var naturalIntervals = map[distance]natural{
	{0, 0}:  {1, 1, 1, 1},   // perfect unison
	{1, 2}:  {8, 7, 7, 8},   // major second
	{2, 3}:  {6, 5, 5, 6},   // minor third
	{2, 4}:  {5, 4, 4, 5},   // major third
	{3, 5}:  {4, 3, 3, 4},   // perfect fourth
	{3, 6}:  {10, 7, 7, 10}, // augmented fourth
	{4, 6}:  {7, 5, 5, 7},   // diminished fifth, smaller than the augmented fourth
	{4, 7}:  {3, 2, 2, 3},   // perfect fifth
	{5, 8}:  {8, 5, 5, 8},   // minor sixth
	{5, 9}:  {5, 3, 6, 10},  // major sixth
	{6, 10}: {7, 4, 4, 7},   // minor seventh
}

var (
	// PerfectFifth is the ascending interval from C to G.
	PerfectFifth = NewInterval(Note{Key: KeyC}, Note{Key: KeyG})

	// MajorThird is the ascending interval from C to E.
	MajorThird = NewInterval(Note{Key: KeyC}, Note{Key: KeyE})
)

// Interval is the distance between two notes, counted both in keys and in keyboard positions.
type Interval struct {
	KeyDistance      int
	PositionDistance int

	// Up is true if the second note is reached by going up from the first.
	Up bool
}

// NewInterval returns the interval going from n1 to n2. The direction follows the keys; when both
// notes share a key it follows the raw semitone difference, and a unison counts as ascending.
func NewInterval(n1, n2 Note) Interval {
	keyDistance := n2.Key - n1.Key
	positionDistance := n2.RawPosition() - n1.RawPosition()

	var iv Interval
	switch {
	case keyDistance > 0:
		iv = Interval{KeyDistance: keyDistance, PositionDistance: positionDistance, Up: true}
	case keyDistance < 0:
		iv = Interval{KeyDistance: -keyDistance, PositionDistance: -positionDistance, Up: false}
	default:
		iv = Interval{PositionDistance: utils.Abs(positionDistance), Up: positionDistance >= 0}
	}

	// spellings such as Cx to Dbb move the key up but the pitch down
	if iv.PositionDistance < 0 {
		iv.PositionDistance = utils.Mod(iv.PositionDistance, positionsPerOctave)
	}
	return iv
}

func (iv Interval) distance() distance {
	return distance{key: iv.KeyDistance, position: iv.PositionDistance}
}

// Name returns the short name of the interval, such as "P5" or "m3", without direction.
func (iv Interval) Name() (string, error) {
	name, ok := intervalNames[iv.distance()]
	if !ok {
		return "", errors.WithStackTrace(UnrecognizedIntervalError{KeyDistance: iv.KeyDistance, PositionDistance: iv.PositionDistance})
	}
	return name, nil
}

// IsNatural reports whether the interval has a just intonation ratio.
func (iv Interval) IsNatural() bool {
	_, ok := naturalIntervals[iv.distance()]
	return ok
}

func (iv Interval) natural() (natural, error) {
	nat, ok := naturalIntervals[iv.distance()]
	if !ok {
		return natural{}, errors.WithStackTrace(NotNaturalIntervalError{KeyDistance: iv.KeyDistance, PositionDistance: iv.PositionDistance})
	}
	return nat, nil
}

// Ratio returns the frequency ratio of the interval in just intonation. Descending intervals
// give the reciprocal, so A down to E is 0.75.
func (iv Interval) Ratio() (float64, error) {
	nat, err := iv.natural()
	if err != nil {
		return 0, err
	}
	if iv.Up {
		return float64(nat.num) / float64(nat.den), nil
	}
	return float64(nat.den) / float64(nat.num), nil
}

// Cents returns the signed size of the just interval in cents.
func (iv Interval) Cents() (float64, error) {
	ratio, err := iv.Ratio()
	if err != nil {
		return 0, err
	}
	return RatioToCents(ratio), nil
}

// Harmonics returns the multipliers of the upper and lower frequency of the first pair of
// harmonics that coincide for the pure interval. For a fifth that is 2 and 3: the second harmonic
// of the upper note meets the third harmonic of the lower note.
func (iv Interval) Harmonics() (upper int, lower int, err error) {
	nat, err := iv.natural()
	if err != nil {
		return 0, 0, err
	}
	return nat.upper, nat.lower, nil
}

// Reverse returns the same interval in the opposite direction.
func (iv Interval) Reverse() Interval {
	iv.Up = !iv.Up
	return iv
}

// String renders the direction and the name of the interval, e.g. "+P5" or "-m3".
func (iv Interval) String() string {
	sign := "+"
	if !iv.Up {
		sign = "-"
	}

	name, err := iv.Name()
	if err != nil {
		return fmt.Sprintf("%s?(%d,%d)", sign, iv.KeyDistance, iv.PositionDistance)
	}
	return sign + name
}
