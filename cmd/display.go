package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/jsphweid/fretdex/chord"
	"github.com/jsphweid/fretdex/overlay"
	"github.com/jsphweid/fretdex/render"
	"github.com/jsphweid/fretdex/selection"
	"github.com/jsphweid/fretdex/tuning"
	"github.com/spf13/cobra"
)

var (
	markersFlag string
	multiFlag   bool
	colorFlag   string
	flippedFlag bool
)

// addDisplayFlags registers the overlay options shared by scale and chord.
func addDisplayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&markersFlag, "markers", string(selection.MarkersNotes), "fret labels: notes, degrees, intervals or none")
	cmd.Flags().BoolVar(&multiFlag, "multi", false, "color each tone separately")
	cmd.Flags().StringVar(&colorFlag, "color", selection.DefaultNoteColor, "marker color in single color mode")
	cmd.Flags().BoolVar(&flippedFlag, "flipped", false, "lowest string on top")
}

func displayOptions() (selection.Options, error) {
	opts := selection.DefaultOptions()
	opts.FretMarkers = selection.FretMarkers(markersFlag)
	opts.NoteColor = colorFlag
	if multiFlag {
		opts.NoteColorMode = selection.ColorMulti
	}
	if flippedFlag {
		opts.Orientation = selection.OrientationFlipped
	}
	return opts, opts.Validate()
}

func printOverlay(w io.Writer, sel selection.Selection, t tuning.Tuning, opts selection.Options) {
	o := overlay.Compute(sel, t, tuning.ClampFrets(numFretsArg), opts)
	fmt.Fprintln(w, render.Legend(o))
	fmt.Fprint(w, render.Fretboard(o, opts.Orientation))
}

// formatVoicing lists frets lowest string first, "x" for muted strings.
func formatVoicing(voicing []int) string {
	parts := make([]string, len(voicing))
	for i := range voicing {
		fret := voicing[len(voicing)-1-i]
		if fret == chord.Muted {
			parts[i] = "x"
		} else {
			parts[i] = fmt.Sprint(fret)
		}
	}
	return strings.Join(parts, " ")
}
