package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/fretdex/freq"
	"github.com/jsphweid/fretdex/midi"
	"github.com/spf13/cobra"
)

var inspectLimit int

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().IntVar(&inspectLimit, "limit", 0, "only read this many note events per track")
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.mid>",
	Short: "Names the chords and scales a MIDI file fits",
	Long: `Reads a MIDI file and prints its pitch range, the pitch classes it uses, the
chords made of exactly those pitch classes and the scales that contain them.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := midi.ReadFile(args[0])
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()

		var keys []uint8
		for _, n := range midi.Notes(s, inspectLimit) {
			if n.On {
				keys = append(keys, n.Key)
			}
		}
		if len(keys) == 0 {
			fmt.Fprintln(w, "no notes")
			return nil
		}
		low, high := keys[0], keys[0]
		for _, k := range keys {
			low, high = min(low, k), max(high, k)
		}
		fmt.Fprintf(w, "%d notes, %s to %s\n", len(keys), keyName(low), keyName(high))

		classes := midi.PitchClasses(keys)
		fmt.Fprintf(w, "pitch classes: %s\n", strings.Join(classes, " "))
		fmt.Fprintf(w, "chords: %s\n", listOrNone(midi.Chords(classes)))
		fmt.Fprintf(w, "scales: %s\n", listOrNone(midi.Scales(classes)))
		return nil
	},
}

func keyName(key uint8) string {
	hz := freq.KeyToFrequency(key)
	n, _ := freq.FrequencyToNote(hz)
	return fmt.Sprintf("%s%d (%.2f Hz)", n.Note, n.Octave, hz)
}

func listOrNone(names []string) string {
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ", ")
}
