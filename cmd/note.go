package cmd

import (
	"fmt"
	"strconv"

	"github.com/jsphweid/fretdex/freq"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(noteCmd)
}

var noteCmd = &cobra.Command{
	Use:   "note <hz>",
	Short: "Prints the note nearest a frequency",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hz, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return errors.Wrapf(err, "bad frequency %q", args[0])
		}
		n, ok := freq.FrequencyToNote(hz)
		if !ok {
			return errors.Errorf("no note for %v Hz", hz)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s%d %+d cents\n", n.Note, n.Octave, n.Cents)
		return nil
	},
}
