package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/jsphweid/fretdex/constants"
	"github.com/jsphweid/fretdex/freq"
	"github.com/jsphweid/fretdex/logging"
	"github.com/jsphweid/fretdex/synth"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var wavPath string

func init() {
	rootCmd.AddCommand(freqCmd)
	freqCmd.Flags().StringVar(&wavPath, "wav", "", "also write the plucked note to this wav file")
}

var freqCmd = &cobra.Command{
	Use:   "freq <note> [octave]",
	Short: "Prints the frequency of a note",
	Long:  `Prints the equal-tempered frequency (A4 = 440 Hz) and MIDI key of a note. The octave defaults to 4.`,
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		note, err := resolveNote(args[0])
		if err != nil {
			return err
		}
		octave := freq.A4Octave
		if len(args) == 2 {
			octave, err = strconv.Atoi(args[1])
			if err != nil {
				return errors.Wrapf(err, "bad octave %q", args[1])
			}
		}
		if !freq.ValidOctave(octave) {
			return errors.Errorf("octave must be %d..%d", freq.MinOctave, freq.MaxOctave)
		}

		hz := freq.NoteToFrequency(note, octave)
		fmt.Fprintf(cmd.OutOrStdout(), "%s%d = %.2f Hz (MIDI %d)\n", note, octave, hz, freq.MIDIKey(note, octave))

		if wavPath == "" {
			return nil
		}
		f, err := os.Create(wavPath)
		if err != nil {
			return errors.Wrap(err, "could not create wav file")
		}
		defer f.Close()
		samples := synth.Render(synth.Triangle, hz, constants.SampleRate, synth.StringRing)
		if err := synth.WriteWAV(f, samples, constants.SampleRate); err != nil {
			return err
		}
		logging.Logger.Info("wrote wav", "path", wavPath, "samples", len(samples))
		return nil
	},
}
