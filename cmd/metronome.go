package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/hako/durafmt"
	"github.com/jsphweid/fretdex/constants"
	"github.com/jsphweid/fretdex/metronome"
	"github.com/jsphweid/fretdex/synth"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	bpm          int
	beats        int
	runFor       time.Duration
	clickWavPath string
)

func init() {
	rootCmd.AddCommand(metronomeCmd)
	metronomeCmd.Flags().IntVar(&bpm, "bpm", metronome.DefaultBPM, "beats per minute (30-250)")
	metronomeCmd.Flags().IntVar(&beats, "beats", metronome.DefaultBeats, "beats per measure (2-8)")
	metronomeCmd.Flags().DurationVar(&runFor, "for", 0, "stop after this long, 0 runs until interrupted")
	metronomeCmd.Flags().StringVar(&clickWavPath, "wav", "", "write one measure of clicks to this wav file instead")
}

var metronomeCmd = &cobra.Command{
	Use:   "metronome",
	Short: "Counts beats",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s := metronome.Settings{BPM: bpm, Beats: beats}.Clamp()
		w := cmd.OutOrStdout()
		if clickWavPath != "" {
			return writeMeasure(clickWavPath, s)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if runFor > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, runFor)
			defer cancel()
		}

		fmt.Fprintf(w, "%d bpm, %d beats per measure\n", s.BPM, s.Beats)
		start := time.Now()
		err := metronome.Run(ctx, s, func(b metronome.Beat) {
			mark := "tick"
			if b.Accent {
				mark = "TOCK"
			}
			fmt.Fprintf(w, "%s measure, beat %d %s\n", humanize.Ordinal(b.Measure+1), b.Index+1, mark)
		})
		fmt.Fprintf(w, "stopped after %s\n", durafmt.Parse(time.Since(start).Round(time.Millisecond)).LimitFirstN(2))
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil
		}
		return err
	},
}

// writeMeasure renders one measure, clicks followed by silence up to the
// next beat.
func writeMeasure(path string, s metronome.Settings) error {
	per := int(s.Interval().Seconds() * constants.SampleRate)
	samples := make([]float32, 0, per*s.Beats)
	b := metronome.Beat{Accent: true}
	for i := 0; i < s.Beats; i++ {
		click := metronome.Click(b, constants.SampleRate)
		frame := make([]float32, per)
		copy(frame, click)
		samples = append(samples, frame...)
		b = b.Next(s.Beats)
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "could not create wav file")
	}
	defer f.Close()
	return synth.WriteWAV(f, samples, constants.SampleRate)
}
