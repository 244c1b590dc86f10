package cmd

import (
	"fmt"

	"github.com/robmorgan/kbtune/config"
	"github.com/robmorgan/kbtune/theory"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newIntervalCmd(cfg *config.KbtuneConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "interval FROM TO",
		Short: "Names the interval between two notes",
		Long:  `Names the interval between two notes and, for natural intervals, shows its just ratio and size in cents.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := theory.ParseNote(args[0])
			if err != nil {
				return err
			}
			to, err := theory.ParseNote(args[1])
			if err != nil {
				return err
			}

			iv := theory.NewInterval(from, to)
			cfg.Logger.WithFields(logrus.Fields{
				"key_distance":      iv.KeyDistance,
				"position_distance": iv.PositionDistance,
				"up":                iv.Up,
			}).Debug("Interval")

			if !iv.IsNatural() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s-%s %s not a natural interval\n", from, to, iv)
				return nil
			}

			ratio, err := iv.Ratio()
			if err != nil {
				return err
			}
			cents, err := iv.Cents()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s-%s %s ratio=%.4f cents=%.2f\n", from, to, iv, ratio, cents)
			return nil
		},
	}
}
