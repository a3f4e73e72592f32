package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/fretdex/tuning"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(gridCmd)
}

var gridCmd = &cobra.Command{
	Use:   "grid",
	Short: "Prints the note at every fret",
	Long:  `Prints the note at every fret of every string, highest string first.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := resolveTuning(tuningFlag)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), formatGrid(tuning.Grid(t, tuning.ClampFrets(numFretsArg))))
		return nil
	},
}

func formatGrid(grid [][]string) string {
	if len(grid) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("   ")
	for fret := range grid[0] {
		fmt.Fprintf(&b, "%-4d", fret)
	}
	b.WriteString("\n")
	for i := len(grid) - 1; i >= 0; i-- {
		fmt.Fprintf(&b, "%-3s", grid[i][0])
		for _, note := range grid[i] {
			fmt.Fprintf(&b, "%-4s", note)
		}
		b.WriteString("\n")
	}
	return b.String()
}
