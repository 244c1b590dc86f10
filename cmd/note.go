package cmd

import (
	"fmt"

	"github.com/robmorgan/kbtune/config"
	"github.com/robmorgan/kbtune/theory"
	"github.com/spf13/cobra"
)

func newNoteCmd(cfg *config.KbtuneConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "note NAME...",
		Short: "Shows the key, accidental and keyboard position of notes",
		Long:  `Shows the key, accidental and keyboard position of notes such as C, Gbb, F# or Dx.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range args {
				n, err := theory.ParseNote(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-4s key=%d accidental=%d position=%d\n", n, n.Key, n.Accidental, n.Position())
			}
			return nil
		},
	}
}
