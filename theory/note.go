package theory

import (
	"fmt"
	"strings"

	"github.com/gruntwork-io/go-commons/errors"
	"github.com/robmorgan/kbtune/utils"
)

const (
	KeyC = iota
	KeyD
	KeyE
	KeyF
	KeyG
	KeyA
	KeyB

	keysPerOctave      = 7
	positionsPerOctave = 12
)

var (
	keyNames = [keysPerOctave]byte{'C', 'D', 'E', 'F', 'G', 'A', 'B'}

	// semitone position of each natural key
	basePositions = [keysPerOctave]int{0, 2, 4, 5, 7, 9, 11}
)

// Note is a diatonic key with an accidental. Two spellings of the same pitch, such as G# and Ab,
// are different notes.
type Note struct {
	// Key is 0 for C, 1 for D and so on up to 6 for B.
	Key int

	// Accidental is the semitone offset: -1 is a flat, -2 a double flat, +1 a sharp, +2 a double sharp.
	Accidental int
}

// NewNote creates a note, reducing the key modulo 7.
func NewNote(key, accidental int) Note {
	return Note{Key: utils.Mod(key, keysPerOctave), Accidental: accidental}
}

// ParseNote parses a key letter followed by any number of accidental markers: b (flat), # (sharp)
// or x (double sharp). For example "Gbb" is G with an accidental of -2.
func ParseNote(name string) (Note, error) {
	if name == "" {
		return Note{}, errors.WithStackTrace(UnknownKeyError{Name: name})
	}

	key := strings.IndexByte(string(keyNames[:]), name[0])
	if key < 0 {
		return Note{}, errors.WithStackTrace(UnknownKeyError{Name: name})
	}

	accidental := 0
	for _, marker := range name[1:] {
		switch marker {
		case 'b':
			accidental--
		case '#':
			accidental++
		case 'x':
			accidental += 2
		default:
			return Note{}, errors.WithStackTrace(InvalidAccidentalError{Accidental: marker})
		}
	}

	return Note{Key: key, Accidental: accidental}, nil
}

// MustParseNote is like ParseNote but panics on an invalid name.
func MustParseNote(name string) Note {
	n, err := ParseNote(name)
	if err != nil {
		panic(err)
	}
	return n
}

// Position returns the position (0 to 11) of the note on the keyboard, counting from C.
func (n Note) Position() int {
	return utils.Mod(n.RawPosition(), positionsPerOctave)
}

// RawPosition is the position of the note before octave reduction, so B# is 12 and Cb is -1.
func (n Note) RawPosition() int {
	return basePositions[utils.Mod(n.Key, keysPerOctave)] + n.Accidental
}

// Add returns the note reached from n by the interval. The key moves by the key distance of the
// interval and the accidental is picked so that the position moves by its position distance,
// which keeps the spelling musically correct: C plus a perfect fifth is G, never Abb.
func (n Note) Add(iv Interval) Note {
	direction := 1
	if !iv.Up {
		direction = -1
	}

	next := NewNote(n.Key+iv.KeyDistance*direction, 0)
	target := utils.Mod(n.Position()+iv.PositionDistance*direction, positionsPerOctave)
	next.Accidental = utils.Mod(target-next.Position()+6, positionsPerOctave) - 6
	return next
}

// Compare orders notes by key, then by accidental. It returns -1, 0 or +1.
func (n Note) Compare(other Note) int {
	switch {
	case n.Key < other.Key:
		return -1
	case n.Key > other.Key:
		return 1
	case n.Accidental < other.Accidental:
		return -1
	case n.Accidental > other.Accidental:
		return 1
	}
	return 0
}

func (n Note) Less(other Note) bool {
	return n.Compare(other) < 0
}

func (n Note) Equal(other Note) bool {
	return n.Compare(other) == 0
}

// String renders the note name, e.g. "C", "Bb", "Gbb", "F#" or "Dx".
func (n Note) String() string {
	return string(keyNames[utils.Mod(n.Key, keysPerOctave)]) + accidentalGlyphs(n.Accidental)
}

func (n Note) GoString() string {
	if n.Accidental != 0 {
		return fmt.Sprintf("Note(key=%d, accidental=%d)", n.Key, n.Accidental)
	}
	return fmt.Sprintf("Note(key=%d)", n.Key)
}

// Flats repeat ("bbb"). Sharps are written as double sharps, led by a single sharp when the count
// is odd ("#x"), so the result always parses back to the same accidental.
func accidentalGlyphs(accidental int) string {
	if accidental < 0 {
		return strings.Repeat("b", -accidental)
	}

	glyphs := strings.Repeat("x", accidental/2)
	if accidental%2 == 1 {
		glyphs = "#" + glyphs
	}
	return glyphs
}
