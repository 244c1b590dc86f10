package theory

import "fmt"

// InvalidAccidentalError is returned when a note name carries an unknown accidental marker.
type InvalidAccidentalError struct {
	Accidental rune
}

func (err InvalidAccidentalError) Error() string {
	return fmt.Sprintf("unknown accidental '%c'", err.Accidental)
}

// UnknownKeyError is returned when a note name does not start with one of the letters C to B.
type UnknownKeyError struct {
	Name string
}

func (err UnknownKeyError) Error() string {
	return fmt.Sprintf("unknown key in note name %q", err.Name)
}

// UnrecognizedIntervalError is returned when an interval has no name.
type UnrecognizedIntervalError struct {
	KeyDistance      int
	PositionDistance int
}

func (err UnrecognizedIntervalError) Error() string {
	return fmt.Sprintf("unrecognized interval (key distance %d, position distance %d)", err.KeyDistance, err.PositionDistance)
}

// NotNaturalIntervalError is returned when an interval has no just intonation ratio.
type NotNaturalIntervalError struct {
	KeyDistance      int
	PositionDistance int
}

func (err NotNaturalIntervalError) Error() string {
	return fmt.Sprintf("not a natural interval (key distance %d, position distance %d)", err.KeyDistance, err.PositionDistance)
}
