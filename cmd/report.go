package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/gruntwork-io/go-commons/errors"
	"github.com/robmorgan/kbtune/config"
	"github.com/robmorgan/kbtune/render"
	"github.com/robmorgan/kbtune/rhythm"
	"github.com/robmorgan/kbtune/temperament"
	"github.com/robmorgan/kbtune/theory"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type reportOptions struct {
	from        string
	to          string
	hz          float64
	cents       float64
	equal       bool
	tempered    bool
	frequencies bool
	beats       bool
}

func newReportCmd(cfg *config.KbtuneConfig) *cobra.Command {
	opts := reportOptions{
		from: cfg.StartNote.String(),
		to:   cfg.EndNote.String(),
	}

	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Tunes fifths and reports the temperament",
		Long: `Tunes fifths up from --from to --to, each deviating --cents from pure, and prints the size and
deviation of all twelve fifths. Without --hz the start frequency is chosen so that the reference
note lands on the reference frequency.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return report(cmd.OutOrStdout(), cfg, opts)
		},
	}

	reportCmd.Flags().StringVar(&opts.from, "from", opts.from, "note to start tuning fifths from")
	reportCmd.Flags().StringVar(&opts.to, "to", opts.to, "last note to tune")
	reportCmd.Flags().Float64Var(&opts.hz, "hz", 0, "frequency of the start note (default: derived from the reference pitch)")
	reportCmd.Flags().Float64Var(&opts.cents, "cents", 0, "deviation of each tuned fifth from pure, in cents")
	reportCmd.Flags().BoolVar(&opts.equal, "equal", false, "tune equal temperament from the start note instead")
	reportCmd.Flags().BoolVar(&opts.tempered, "tempered", false, "narrow wrapped fifths like the others instead of the fourth below")
	reportCmd.Flags().BoolVar(&opts.frequencies, "frequencies", false, "also list the frequency of every note")
	reportCmd.Flags().BoolVar(&opts.beats, "beats", false, "also list how often every fifth beats")

	return reportCmd
}

func report(w io.Writer, cfg *config.KbtuneConfig, opts reportOptions) error {
	if opts.hz < 0 {
		return errors.WithStackTrace(fmt.Errorf("--hz must not be negative, got %g", opts.hz))
	}

	from, err := theory.ParseNote(opts.from)
	if err != nil {
		return err
	}
	to, err := theory.ParseNote(opts.to)
	if err != nil {
		return err
	}

	hz := opts.hz
	if hz == 0 {
		hz, err = anchorFrequency(cfg, from, to, opts)
		if err != nil {
			return err
		}
	}

	cfg.Logger.WithFields(logrus.Fields{
		"from":     from.String(),
		"to":       to.String(),
		"hz":       hz,
		"cents":    opts.cents,
		"equal":    opts.equal,
		"tempered": opts.tempered,
	}).Info("Tuning temperament")

	temp, err := tune(from, to, hz, opts)
	if err != nil {
		return err
	}

	rows, err := temp.Fifths()
	if err != nil {
		return err
	}

	var hl temperament.Highlighter
	if cfg.Color {
		hl = render.Highlighter(cfg.HighlightCents)
	}
	if err := temperament.WriteReport(w, rows, hl); err != nil {
		return err
	}

	if opts.frequencies {
		fmt.Fprintln(w)
		for _, n := range temperament.KeyboardNotes {
			f, _ := temp.Frequency(n)
			fmt.Fprintf(w, "%-2s %10.3f\n", n, f)
		}
	}

	if opts.beats {
		fmt.Fprintln(w)
		for _, row := range rows {
			writeBeats(w, row)
		}
	}
	return nil
}

func writeBeats(w io.Writer, row temperament.FifthRow) {
	m := rhythm.NewMetronome(row.DeviationBPM)
	if m.GetTempo() < 0.005 {
		fmt.Fprintf(w, "%-2s-%-2s pure\n", row.From, row.To)
		return
	}
	fmt.Fprintf(w, "%-2s-%-2s every %8.1f ms, %6.1f beats in 10s\n", row.From, row.To, m.GetBeatInterval(), m.BeatsIn(10*time.Second))
}

func tune(from, to theory.Note, hz float64, opts reportOptions) (*temperament.Temperament, error) {
	temp := temperament.New()
	if opts.equal {
		return temp, temp.TuneEqual(from, hz)
	}

	temp.SetFrequency(from, hz)
	if opts.tempered {
		return temp, temp.TuneTemperedFifthsUp(from, to, opts.cents)
	}
	return temp, temp.TuneFifthsUp(from, to, opts.cents)
}

// anchorFrequency tunes a scratch temperament with the start note at 1 Hz and scales the result so
// that the reference note sounds at the reference frequency.
func anchorFrequency(cfg *config.KbtuneConfig, from, to theory.Note, opts reportOptions) (float64, error) {
	scratch, err := tune(from, to, 1, opts)
	if err != nil {
		return 0, err
	}

	reference, ok := scratch.Frequency(cfg.ReferenceNote)
	if !ok {
		cfg.Logger.Warnf("Reference note %s is not tuned, starting %s at %.3f Hz", cfg.ReferenceNote, from, cfg.ReferenceFrequency)
		return cfg.ReferenceFrequency, nil
	}
	return cfg.ReferenceFrequency / reference, nil
}
