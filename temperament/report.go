package temperament

import (
	"fmt"
	"io"
	"strings"

	"github.com/robmorgan/kbtune/theory"
	"github.com/robmorgan/kbtune/utils"
)

// printing 0.00 instead of -0.00
const negativeZeroOffset = 1e-8

// FifthRow describes one fifth of the circle as tuned.
type FifthRow struct {
	From theory.Note
	To   theory.Note

	// Cents is the size of the fifth, reduced into a single octave.
	Cents float64

	DeviationCents float64
	DeviationBPM   float64
}

// Highlighter decorates the deviation cell of a report row, e.g. with a terminal colour.
type Highlighter func(deviationCents float64, cell string) string

// Fifths measures the twelve fifths of the circle, starting at A-E and ending at D-A. Every note
// must be tuned.
func (t *Temperament) Fifths() ([]FifthRow, error) {
	start := theory.Note{Key: theory.KeyA}
	rows := make([]FifthRow, 0, positions)

	n := start
	for i := 0; i < positions; i++ {
		next := n.Add(theory.PerfectFifth)

		cents, err := t.Cents(n, next)
		if err != nil {
			return nil, err
		}
		deviation, err := t.DeviationCents(n, next)
		if err != nil {
			return nil, err
		}
		bpm, err := t.DeviationBeatsPerMinute(n, next)
		if err != nil {
			return nil, err
		}

		rows = append(rows, FifthRow{
			From:           n,
			To:             next,
			Cents:          utils.ModFloat(cents, 1200),
			DeviationCents: deviation,
			DeviationBPM:   bpm,
		})

		n = KeyboardNotes[next.Position()]
		if n.Equal(start) {
			break
		}
	}

	return rows, nil
}

// WriteReport writes the rows as a fixed width table. The highlighter may be nil.
func WriteReport(w io.Writer, rows []FifthRow, hl Highlighter) error {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("      %10s %10s %10s\n", "INT/c", "DEV/c", "DEV/bpm"))
	b.WriteString(fmt.Sprintf("      %10s %10s %10s\n", "% 1200", "", ""))
	b.WriteString("------" + strings.Repeat("-", 10) + "-" + strings.Repeat("-", 10) + "-" + strings.Repeat("-", 10) + "\n")

	for _, row := range rows {
		deviation := fmt.Sprintf("%10.2f", row.DeviationCents+negativeZeroOffset)
		if hl != nil {
			deviation = hl(row.DeviationCents, deviation)
		}

		b.WriteString(fmt.Sprintf("%-2s-%-2s %10.2f %s %10.2f\n",
			row.From, row.To,
			row.Cents+negativeZeroOffset,
			deviation,
			row.DeviationBPM+negativeZeroOffset,
		))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// Report returns the table of the twelve fifths as plain text.
func (t *Temperament) Report() (string, error) {
	rows, err := t.Fifths()
	if err != nil {
		return "", err
	}

	var b strings.Builder
	if err := WriteReport(&b, rows, nil); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (t *Temperament) String() string {
	report, err := t.Report()
	if err != nil {
		return err.Error()
	}
	return report
}
