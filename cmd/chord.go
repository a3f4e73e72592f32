package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/fretdex/chord"
	"github.com/jsphweid/fretdex/selection"
	"github.com/spf13/cobra"
)

var (
	listChords bool
	triads     bool
)

func init() {
	rootCmd.AddCommand(chordCmd)
	chordCmd.Flags().BoolVar(&listChords, "list", false, "list chord types")
	chordCmd.Flags().BoolVar(&triads, "triads", false, "only show chord positions")
	addDisplayFlags(chordCmd)
}

var chordCmd = &cobra.Command{
	Use:   "chord [name]",
	Short: "Shows a chord on the fretboard",
	Long: `Shows a chord, e.g. "G Major dominant seventh", with the role of each tone,
a first position shape and every chord tone on the fretboard.`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		if listChords {
			fmt.Fprintln(w, strings.Join(chordTypeNames(), "\n"))
			return nil
		}
		if len(args) == 0 {
			return cmd.Help()
		}

		c, err := resolveChord(strings.Join(args, " "))
		if err != nil {
			return err
		}
		t, err := resolveTuning(tuningFlag)
		if err != nil {
			return err
		}
		opts, err := displayOptions()
		if err != nil {
			return err
		}
		opts.ShowTriads = triads

		tones := make([]string, len(c.Spelled))
		for i, n := range c.Spelled {
			tones[i] = fmt.Sprintf("%s %s", n, chord.RoleOf(i, c.Type))
		}
		fmt.Fprintf(w, "%s (%s)\n", strings.Join(tones, ", "), c.Quality())
		fmt.Fprintf(w, "shape: %s\n\n", formatVoicing(chord.Voicing(c.Name, t)))

		sel, _ := selection.Chord(c.Display)
		printOverlay(w, sel, t, opts)
		return nil
	},
}
