package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/fretdex/pitch"
	"github.com/jsphweid/fretdex/scale"
	"github.com/jsphweid/fretdex/selection"
	"github.com/spf13/cobra"
)

var (
	listScales    bool
	scaleRoot     string
	hideRoot      bool
	transposeRoot string
)

func init() {
	rootCmd.AddCommand(scaleCmd)
	scaleCmd.Flags().BoolVar(&listScales, "list", false, "list scales by category")
	scaleCmd.Flags().StringVar(&scaleRoot, "root", "", "with --list, only scales on this root")
	scaleCmd.Flags().BoolVar(&hideRoot, "hide-root", false, "hide the root away from the open strings")
	scaleCmd.Flags().StringVar(&transposeRoot, "transpose", "", "move the scale to another root")
	addDisplayFlags(scaleCmd)
}

var scaleCmd = &cobra.Command{
	Use:   "scale [name]",
	Short: "Shows a scale on the fretboard",
	Long: `Shows a scale, e.g. "A Harmonic Minor" or "eb dorian", with its degrees
and every position on the fretboard.`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		if listScales {
			if scaleRoot != "" {
				root, err := resolveNote(scaleRoot)
				if err != nil {
					return err
				}
				fmt.Fprintln(w, strings.Join(scale.FilterByRoot(scale.Names(), root), "\n"))
				return nil
			}
			for _, c := range scale.Categories() {
				fmt.Fprintf(w, "%s: %s\n", c.Name, strings.Join(c.Types, ", "))
			}
			return nil
		}
		if len(args) == 0 {
			return cmd.Help()
		}

		s, err := resolveScale(strings.Join(args, " "))
		if err != nil {
			return err
		}
		if transposeRoot != "" {
			to, err := resolveNote(transposeRoot)
			if err != nil {
				return err
			}
			moved := scale.Transpose(s.Notes, s.Root, to)
			fmt.Fprintf(w, "%s -> %s: %s\n", s.Display, to, strings.Join(moved, " "))
			s, err = resolveScale(to + " " + s.Type)
			if err != nil {
				return err
			}
		}
		t, err := resolveTuning(tuningFlag)
		if err != nil {
			return err
		}
		opts, err := displayOptions()
		if err != nil {
			return err
		}
		opts.ShowRoot = !hideRoot

		degrees := make([]string, len(s.Notes))
		for i, n := range s.Notes {
			degrees[i] = pitch.Degree(n, s.Root)
		}
		fmt.Fprintf(w, "%s\n", strings.Join(s.Spelled, " "))
		fmt.Fprintf(w, "%s\n\n", strings.Join(degrees, " "))

		sel, _ := selection.Scale(s.Display)
		printOverlay(w, sel, t, opts)
		return nil
	},
}
