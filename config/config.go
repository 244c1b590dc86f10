package config

import (
	"github.com/robmorgan/kbtune/logger"
	"github.com/robmorgan/kbtune/theory"
	"github.com/sirupsen/logrus"
)

// KbtuneConfig represents options that configure the global behavior of the program
type KbtuneConfig struct {
	// Project logger
	Logger *logrus.Entry

	// LogLevel is one of the logrus level names
	LogLevel string

	// ReferenceNote and ReferenceFrequency anchor a tuning when no frequency is given. The
	// frequency is inside the tuning octave, which runs from C to B.
	ReferenceNote      theory.Note
	ReferenceFrequency float64

	// StartNote and EndNote bound the walk up the circle of fifths.
	StartNote theory.Note
	EndNote   theory.Note

	// Color enables highlighting of deviations in reports
	Color bool

	// HighlightCents is the deviation shown in the strongest colour
	HighlightCents float64
}

// Create a new KbtuneConfig object with reasonable defaults for real usage
func NewKbtuneConfig() (KbtuneConfig, error) {
	// TODO - support passing in a config file one day

	return KbtuneConfig{
		Logger:   logger.GetProjectLogger(),
		LogLevel: logrus.InfoLevel.String(),

		// baroque pitch, A at 415 Hz, an octave down
		ReferenceNote:      theory.Note{Key: theory.KeyA},
		ReferenceFrequency: 415.0 / 2,

		// the wolf fifth ends up between G# and Eb
		StartNote: theory.Note{Key: theory.KeyE, Accidental: -1},
		EndNote:   theory.Note{Key: theory.KeyG, Accidental: 1},

		Color:          false,
		HighlightCents: 25,
	}, nil
}
