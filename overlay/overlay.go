// Package overlay decides, for every cell of a fretboard, whether it is shown
// for the current selection and how it is styled and labelled.
package overlay

import (
	"github.com/jsphweid/fretdex/chord"
	"github.com/jsphweid/fretdex/pitch"
	"github.com/jsphweid/fretdex/scale"
	"github.com/jsphweid/fretdex/selection"
	"github.com/jsphweid/fretdex/tuning"
	"github.com/jsphweid/fretdex/util"
)

const (
	White = "#FFFFFF"
	Black = "#000000"
	Red   = "#FF0000"

	ThirdColor   = "#4CAF50"
	FifthColor   = "#2196F3"
	SeventhColor = "#9C27B0"
	OtherColor   = "#FF9800"
)

// Palette colors each pitch class in multi color mode, indexed like pitch.Names.
var Palette = [12]string{
	"#F44336", "#E91E63", "#9C27B0", "#673AB7", "#3F51B5", "#2196F3",
	"#03A9F4", "#009688", "#4CAF50", "#8BC34A", "#FF9800", "#795548",
}

// Style is a marker's look. Empty Border or Glow means none.
type Style struct {
	Background string `json:"background"`
	Foreground string `json:"foreground"`
	Border     string `json:"border,omitempty"`
	Glow       string `json:"glow,omitempty"`
}

var (
	RootStyle    = Style{Background: White, Foreground: Black, Border: Red, Glow: Red}
	NeutralStyle = Style{Background: White, Foreground: Black}
)

func toneStyle(color string) Style {
	return Style{Background: color, Foreground: White}
}

type Cell struct {
	String  int        `json:"string"`
	Fret    int        `json:"fret"`
	Note    string     `json:"note"`
	Visible bool       `json:"visible"`
	Role    chord.Role `json:"role,omitempty"`
	Style   Style      `json:"style"`
	Label   string     `json:"label"`
}

// Inlay is a fret position marker on the neck, two dots when Double.
type Inlay struct {
	Fret   int  `json:"fret"`
	Double bool `json:"double"`
}

var inlayFrets = []int{3, 5, 7, 9, 12, 15, 17, 19, 21, 24}

// Inlays lists the marked frets up to numFrets.
func Inlays(numFrets int) []Inlay {
	var res []Inlay
	for _, f := range inlayFrets {
		if f > numFrets {
			break
		}
		res = append(res, Inlay{Fret: f, Double: f%12 == 0})
	}
	return res
}

// Overlay is one computed fretboard. Cells is indexed [string][fret].
type Overlay struct {
	Selection selection.Selection `json:"selection"`
	Root      string              `json:"root"`
	Notes     []string            `json:"notes"`
	Tuning    tuning.Tuning       `json:"tuning"`
	NumFrets  int                 `json:"numFrets"`
	Cells     [][]Cell            `json:"cells"`
	Inlays    []Inlay             `json:"inlays"`
}

func (o Overlay) Cell(str, fret int) (Cell, bool) {
	if str < 0 || str >= len(o.Cells) || fret < 0 || fret >= len(o.Cells[str]) {
		return Cell{}, false
	}
	return o.Cells[str][fret], true
}

// VisibleCells flattens the overlay to the shown cells, string by string.
func (o Overlay) VisibleCells() []Cell {
	var res []Cell
	for _, row := range o.Cells {
		for _, c := range row {
			if c.Visible {
				res = append(res, c)
			}
		}
	}
	return res
}

// Compute builds the overlay. Nothing is visible for a None selection.
func Compute(sel selection.Selection, t tuning.Tuning, numFrets int, opts selection.Options) Overlay {
	numFrets = util.Max(numFrets, 0)
	opts = opts.WithDefaults()
	grid := tuning.Grid(t, numFrets)

	o := Overlay{
		Selection: sel,
		Root:      sel.Root(),
		Tuning:    t,
		NumFrets:  numFrets,
		Cells:     make([][]Cell, len(t)),
		Inlays:    Inlays(numFrets),
	}

	var shade func(str, fret int, note string) (bool, chord.Role, Style)
	switch sel.Kind() {
	case selection.KindChord:
		c, _ := chord.Lookup(sel.Value())
		o.Notes = c.Notes
		shade = chordShader(c, t, numFrets, opts)
	case selection.KindScale:
		s, _ := scale.Resolve(sel.Value())
		o.Notes = s.Notes
		shade = scaleShader(s, opts)
	case selection.KindNote:
		o.Notes = []string{o.Root}
		shade = noteShader(o.Root, opts)
	default:
		shade = func(int, int, string) (bool, chord.Role, Style) {
			return false, "", NeutralStyle
		}
	}

	for str, row := range grid {
		cells := make([]Cell, len(row))
		for fret, note := range row {
			visible, role, style := shade(str, fret, note)
			cells[fret] = Cell{
				String:  str,
				Fret:    fret,
				Note:    note,
				Visible: visible,
				Role:    role,
				Style:   style,
				Label:   Label(note, o.Root, opts.FretMarkers),
			}
		}
		o.Cells[str] = cells
	}
	return o
}

func chordShader(c chord.Chord, t tuning.Tuning, numFrets int, opts selection.Options) func(int, int, string) (bool, chord.Role, Style) {
	type key struct{ str, fret int }
	positions := make(map[key]bool)
	if opts.ShowTriads {
		for _, p := range c.Positions(t, numFrets) {
			positions[key{p.String, p.Fret}] = true
		}
	}
	return func(str, fret int, note string) (bool, chord.Role, Style) {
		role, ok := c.RoleOf(note)
		if !ok {
			return false, "", NeutralStyle
		}
		visible := !opts.ShowTriads || positions[key{str, fret}]
		if role == chord.RoleRoot {
			return visible, role, RootStyle
		}
		if opts.NoteColorMode == selection.ColorSingle {
			return visible, role, toneStyle(opts.NoteColor)
		}
		return visible, role, toneStyle(RoleColor(role))
	}
}

// Open strings in a scale stay visible even when ShowRoot hides the root
// elsewhere on the neck.
func scaleShader(s scale.Scale, opts selection.Options) func(int, int, string) (bool, chord.Role, Style) {
	return func(str, fret int, note string) (bool, chord.Role, Style) {
		if !s.Contains(note) {
			return false, "", NeutralStyle
		}
		if note == s.Root {
			return opts.ShowRoot || fret == 0, chord.RoleRoot, RootStyle
		}
		if opts.NoteColorMode == selection.ColorMulti {
			return true, "", toneStyle(Palette[pitch.IndexOf(note)])
		}
		return true, "", toneStyle(opts.NoteColor)
	}
}

func noteShader(root string, opts selection.Options) func(int, int, string) (bool, chord.Role, Style) {
	return func(str, fret int, note string) (bool, chord.Role, Style) {
		if note == root {
			return true, chord.RoleRoot, RootStyle
		}
		return opts.ShowAllNotes, "", NeutralStyle
	}
}

// RoleColor is the multi color mode fill for a chord tone.
func RoleColor(role chord.Role) string {
	switch role {
	case chord.RoleThird:
		return ThirdColor
	case chord.RoleFifth:
		return FifthColor
	case chord.RoleSeventh:
		return SeventhColor
	}
	return OtherColor
}

// Label is the text drawn on a marker. Without a root there is nothing to
// measure degrees or intervals from, so the note name is used.
func Label(note, root string, markers selection.FretMarkers) string {
	if root == "" {
		return pitch.Display(note)
	}
	switch markers {
	case selection.MarkersNone:
		return ""
	case selection.MarkersDegrees:
		return pitch.Degree(note, root)
	case selection.MarkersIntervals:
		return pitch.Interval(note, root)
	}
	return pitch.Display(note)
}
