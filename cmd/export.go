package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/jsphweid/fretdex/constants"
	"github.com/jsphweid/fretdex/logging"
	"github.com/jsphweid/fretdex/midi"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	exportDir     string
	exportWorkers int
	exportBPM     float64
	exportOctave  int
)

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportDir, "dir", "o", ".", "output directory")
	exportCmd.Flags().IntVar(&exportWorkers, "workers", constants.ExportWorkers, "files written at once")
	exportCmd.Flags().Float64Var(&exportBPM, "bpm", midi.DefaultOptions().BPM, "tempo")
	exportCmd.Flags().IntVar(&exportOctave, "octave", midi.DefaultOptions().Octave, "octave scale runs start in")
}

var exportCmd = &cobra.Command{
	Use:   "export <name>...",
	Short: "Writes chords and scales as MIDI files",
	Long: `Writes each named chord (as a strummed first position shape) or scale (as
an ascending run) to its own MIDI file. Separate names with commas, e.g.
fretdex export "C Major, A Minor Pentatonic".`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := resolveTuning(tuningFlag)
		if err != nil {
			return err
		}
		names := exportNames(strings.Join(args, " "))
		if err := os.MkdirAll(exportDir, 0755); err != nil {
			return errors.Wrap(err, "could not create output directory")
		}

		opts := midi.DefaultOptions()
		opts.BPM = exportBPM
		opts.Octave = exportOctave
		results, err := midi.ExportAll(exportDir, names, t, opts, exportWorkers)

		w := cmd.OutOrStdout()
		var total uint64
		for _, r := range results {
			if r.Err != nil {
				logging.Logger.Error("export failed", "name", r.Name, "err", r.Err)
				continue
			}
			if info, statErr := os.Stat(r.Path); statErr == nil {
				total += uint64(info.Size())
			}
			fmt.Fprintf(w, "%s -> %s\n", r.Name, r.Path)
		}
		fmt.Fprintf(w, "wrote %s\n", humanize.Bytes(total))
		return err
	},
}

// exportNames splits the comma separated list and fixes the case of each
// name, preferring chords over scales like midi.Build does.
func exportNames(arg string) []string {
	var names []string
	for _, part := range strings.Split(arg, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if c, err := resolveChord(part); err == nil {
			names = append(names, c.Display)
		} else if s, err := resolveScale(part); err == nil {
			names = append(names, s.Display)
		} else {
			names = append(names, part)
		}
	}
	return names
}
