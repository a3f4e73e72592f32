package cmd

import (
	"github.com/jsphweid/fretdex/constants"
	"github.com/jsphweid/fretdex/logging"
	"github.com/spf13/cobra"
)

var (
	debug       bool
	tuningFlag  string
	numFretsArg int
)

var rootCmd = &cobra.Command{
	Use:   "fretdex",
	Short: "Fretboard scales, chords and tuning",
	Long: `fretdex maps scales and chords onto a fretted instrument, converts
between notes and frequencies, tunes strings and keeps time.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init(debug)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "debug logging with source locations")
	rootCmd.PersistentFlags().StringVarP(&tuningFlag, "tuning", "t", "Standard", `preset name or open strings low to high, e.g. "D,A,D,G,B,E"`)
	rootCmd.PersistentFlags().IntVarP(&numFretsArg, "frets", "f", constants.GetFrets(), "number of frets")
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
