package temperament

import (
	"fmt"

	"github.com/robmorgan/kbtune/theory"
)

// UntunedError is returned when a calculation needs the frequency of a note that has not been tuned.
type UntunedError struct {
	Note theory.Note
}

func (err UntunedError) Error() string {
	return fmt.Sprintf("note %s is not tuned", err.Note)
}

// UnreachableNoteError is returned when walking up the circle of fifths never reaches the target note.
type UnreachableNoteError struct {
	From  theory.Note
	To    theory.Note
	Steps int
}

func (err UnreachableNoteError) Error() string {
	return fmt.Sprintf("note %s is not reached after %d fifths up from %s", err.To, err.Steps, err.From)
}

// NotMajorThirdError is returned when two notes are not four fifths apart.
type NotMajorThirdError struct {
	From theory.Note
	To   theory.Note
}

func (err NotMajorThirdError) Error() string {
	return fmt.Sprintf("%s to %s is not a major third spanned by four fifths", err.From, err.To)
}
