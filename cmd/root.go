package cmd

import (
	"github.com/robmorgan/kbtune/config"
	"github.com/robmorgan/kbtune/logger"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the kbtune command tree around the given config. Flags write into cfg.
func NewRootCmd(cfg *config.KbtuneConfig) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "kbtune",
		Short: "Keyboard temperament calculator",
		Long: `kbtune tunes a twelve note keyboard octave around the circle of fifths and reports,
for every fifth, its size and how far it is from pure in cents and in beats per minute.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := logger.ParseAndSetLevel(cfg.LogLevel); err != nil {
				return err
			}
			cfg.Logger = logger.GetProjectLogger()
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&cfg.Color, "color", cfg.Color, "highlight deviations in colour")

	rootCmd.AddCommand(newNoteCmd(cfg))
	rootCmd.AddCommand(newIntervalCmd(cfg))
	rootCmd.AddCommand(newReportCmd(cfg))

	return rootCmd
}

func Execute() {
	cfg, err := config.NewKbtuneConfig()
	cobra.CheckErr(err)
	cobra.CheckErr(NewRootCmd(&cfg).Execute())
}
