package cmd

import (
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jsphweid/fretdex/constants"
	"github.com/jsphweid/fretdex/logging"
	"github.com/jsphweid/fretdex/synth"
	"github.com/jsphweid/fretdex/tuner"
	"github.com/jsphweid/fretdex/tuning"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	rawPath     string
	rawRate     int
	settleDelay time.Duration
	publishRate time.Duration
)

func init() {
	rootCmd.AddCommand(tuneCmd)
	tuneCmd.Flags().StringVar(&rawPath, "raw", "", `wav file, or mono float32 little-endian samples ("-" for stdin), to listen to`)
	tuneCmd.Flags().IntVar(&rawRate, "rate", constants.SampleRate, "sample rate of --raw")
	tuneCmd.Flags().DurationVar(&settleDelay, "settle", 300*time.Millisecond, "quiet time before a reading counts as settled")
	tuneCmd.Flags().DurationVar(&publishRate, "every", 0, "minimum time between printed readings")
}

var tuneCmd = &cobra.Command{
	Use:   "tune [hz...]",
	Short: "Tells how far a pitch is from the nearest note and string",
	Long: `Reads frequencies given as arguments, or detects them in raw samples with
--raw, and reports the nearest note, whether it is flat or sharp and which
open string it is closest to.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := resolveTuning(tuningFlag)
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		if rawPath != "" {
			return listen(cmd.Context(), w, t)
		}
		if len(args) == 0 {
			return cmd.Help()
		}
		for _, arg := range args {
			hz, err := strconv.ParseFloat(arg, 64)
			if err != nil {
				return errors.Wrapf(err, "bad frequency %q", arg)
			}
			r, ok := tuner.Read(hz, t)
			if !ok {
				fmt.Fprintf(w, "%s: silence\n", arg)
				continue
			}
			fmt.Fprintln(w, formatReading(r))
		}
		return nil
	},
}

func formatReading(r tuner.Reading) string {
	s := fmt.Sprintf("%.2f Hz %s%d %+d cents %s", r.Frequency, r.Note.Note, r.Note.Octave, r.Note.Cents, r.Status)
	if r.Target != nil {
		s += fmt.Sprintf(", %s string (%s%d) %+d cents",
			humanize.Ordinal(r.Target.String+1), r.Target.Note, r.Target.Octave, r.Target.Cents)
	}
	return s
}

func readSamples(path string) ([]float32, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrap(err, "could not open samples")
		}
		defer f.Close()
		r = f
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "could not read samples")
	}
	samples := make([]float32, len(data)/4)
	for i := range samples {
		samples[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[4*i:]))
	}
	return samples, nil
}

func readWAV(path string) ([]float32, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, errors.Wrap(err, "could not open wav file")
	}
	defer f.Close()
	return synth.ReadWAV(f)
}

func listen(ctx context.Context, w io.Writer, t tuning.Tuning) error {
	if ctx == nil {
		ctx = context.Background()
	}
	rate := rawRate
	var (
		samples []float32
		err     error
	)
	if strings.EqualFold(filepath.Ext(rawPath), ".wav") {
		samples, rate, err = readWAV(rawPath)
	} else {
		samples, err = readSamples(rawPath)
	}
	if err != nil {
		return err
	}
	if !tuner.ValidSampleRate(rate) {
		return errors.Errorf("sample rate must be %d..%d", tuner.MinSampleRate, tuner.MaxSampleRate)
	}
	logging.Logger.Debug("listening", "samples", len(samples), "rate", rate)

	settled := make(chan tuner.Reading, 1)
	m := tuner.NewMonitor(rate, t,
		tuner.WithRate(publishRate),
		tuner.WithSettled(settleDelay, func(r tuner.Reading) {
			select {
			case settled <- r:
			default:
			}
		}),
	)

	frames := make(chan []float32)
	go func() {
		defer close(frames)
		for start := 0; start+tuner.BufferSize <= len(samples); start += tuner.BufferSize {
			select {
			case frames <- samples[start : start+tuner.BufferSize]:
			case <-ctx.Done():
				return
			}
		}
	}()

	var n int
	for r := range m.Run(ctx, frames) {
		fmt.Fprintln(w, formatReading(r))
		n++
	}
	if n == 0 {
		fmt.Fprintln(w, "no pitch detected")
		return nil
	}
	select {
	case r := <-settled:
		fmt.Fprintf(w, "settled: %s\n", formatReading(r))
	case <-time.After(2*settleDelay + 100*time.Millisecond):
	}
	return nil
}
