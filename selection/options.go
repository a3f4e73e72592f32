package selection

import (
	"strings"

	"github.com/jsphweid/fretdex/util"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

type FretMarkers string

const (
	MarkersNotes     FretMarkers = "notes"
	MarkersDegrees   FretMarkers = "degrees"
	MarkersIntervals FretMarkers = "intervals"
	MarkersNone      FretMarkers = "none"
)

type ColorMode string

const (
	ColorSingle ColorMode = "single"
	ColorMulti  ColorMode = "multi"
)

// ScaleSystem is stored and echoed back but nothing is computed from it.
type ScaleSystem string

const (
	System3NPS    ScaleSystem = "3nps"
	SystemCAGED   ScaleSystem = "caged"
	SystemNone    ScaleSystem = "none"
	SystemDegrees ScaleSystem = "degrees"
)

type Orientation string

const (
	OrientationStandard Orientation = "standard"
	OrientationFlipped  Orientation = "flipped"
)

const DefaultNoteColor = "#4CAF50"

// ValidColor accepts "#rgb" and "#rrggbb". colorful.Hex stops at the first
// non-hex digit, so the parsed color is written back out and compared.
func ValidColor(s string) bool {
	c, err := colorful.Hex(s)
	if err != nil {
		return false
	}
	s = strings.ToLower(s)
	switch len(s) {
	case 4:
		return c.Hex() == string([]byte{'#', s[1], s[1], s[2], s[2], s[3], s[3]})
	case 7:
		return c.Hex() == s
	}
	return false
}

type Options struct {
	ShowTriads    bool        `json:"showTriads"`
	ShowAllNotes  bool        `json:"showAllNotes"`
	ShowRoot      bool        `json:"showRoot"`
	FretMarkers   FretMarkers `json:"fretMarkers"`
	NoteColorMode ColorMode   `json:"noteColorMode"`
	NoteColor     string      `json:"noteColor"`
	ScaleSystem   ScaleSystem `json:"scaleSystem"`
	Orientation   Orientation `json:"orientation"`
}

func DefaultOptions() Options {
	return Options{
		ShowTriads:    false,
		ShowAllNotes:  true,
		ShowRoot:      true,
		FretMarkers:   MarkersNotes,
		NoteColorMode: ColorSingle,
		NoteColor:     DefaultNoteColor,
		ScaleSystem:   SystemNone,
		Orientation:   OrientationStandard,
	}
}

// Validate rejects enum values outside their sets and colors that are not
// "#rgb" or "#rrggbb". Empty fields are fine; WithDefaults fills them.
func (o Options) Validate() error {
	if o.FretMarkers != "" && !util.Contains([]FretMarkers{MarkersNotes, MarkersDegrees, MarkersIntervals, MarkersNone}, o.FretMarkers) {
		return errors.Errorf("invalid fret markers %q", o.FretMarkers)
	}
	if o.NoteColorMode != "" && !util.Contains([]ColorMode{ColorSingle, ColorMulti}, o.NoteColorMode) {
		return errors.Errorf("invalid note color mode %q", o.NoteColorMode)
	}
	if o.ScaleSystem != "" && !util.Contains([]ScaleSystem{System3NPS, SystemCAGED, SystemNone, SystemDegrees}, o.ScaleSystem) {
		return errors.Errorf("invalid scale system %q", o.ScaleSystem)
	}
	if o.Orientation != "" && !util.Contains([]Orientation{OrientationStandard, OrientationFlipped}, o.Orientation) {
		return errors.Errorf("invalid orientation %q", o.Orientation)
	}
	if o.NoteColor != "" && !ValidColor(o.NoteColor) {
		return errors.Errorf("invalid note color %q", o.NoteColor)
	}
	return nil
}

func (o Options) WithDefaults() Options {
	d := DefaultOptions()
	if o.FretMarkers == "" {
		o.FretMarkers = d.FretMarkers
	}
	if o.NoteColorMode == "" {
		o.NoteColorMode = d.NoteColorMode
	}
	if o.NoteColor == "" {
		o.NoteColor = d.NoteColor
	}
	if o.ScaleSystem == "" {
		o.ScaleSystem = d.ScaleSystem
	}
	if o.Orientation == "" {
		o.Orientation = d.Orientation
	}
	return o
}
