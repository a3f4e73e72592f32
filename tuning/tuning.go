// Package tuning maps open-string pitch classes and a fret count onto a grid of
// notes. A Tuning is an opaque, ordered list of strings; nothing here assumes
// six strings or a particular low-to-high order.
package tuning

import (
	"strings"

	"github.com/jsphweid/fretdex/pitch"
)

const DefaultFrets = 24

// MaxFrets bounds grids built from untrusted input (flags, HTTP queries).
const MaxFrets = 36

type Tuning []string

type Preset struct {
	Name   string `json:"name"`
	Tuning Tuning `json:"tuning"`
}

var Standard = Tuning{"E", "A", "D", "G", "B", "E"}

var Presets = []Preset{
	{Name: "Standard", Tuning: Standard},
	{Name: "Drop D", Tuning: Tuning{"D", "A", "D", "G", "B", "E"}},
	{Name: "Half Step Down", Tuning: Tuning{"D#", "G#", "C#", "F#", "A#", "D#"}},
	{Name: "DADGAD", Tuning: Tuning{"D", "A", "D", "G", "A", "D"}},
	{Name: "Open G", Tuning: Tuning{"D", "G", "D", "G", "B", "D"}},
	{Name: "Open D", Tuning: Tuning{"D", "A", "D", "F#", "A", "D"}},
	{Name: "Seven String", Tuning: Tuning{"B", "E", "A", "D", "G", "B", "E"}},
}

// Lookup finds a preset by its exact name.
func Lookup(name string) (Tuning, bool) {
	for _, p := range Presets {
		if p.Name == name {
			return p.Tuning, true
		}
	}
	return nil, false
}

// Parse reads "E,A,D,G,B,E" (commas and/or spaces). Every string has to be a
// recognizable pitch; the result uses canonical sharp names.
func Parse(s string) (Tuning, bool) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' '
	})
	if len(fields) == 0 {
		return nil, false
	}
	res := make(Tuning, len(fields))
	for i, f := range fields {
		if !pitch.Valid(f) {
			return nil, false
		}
		res[i] = pitch.Normalize(f)
	}
	return res, true
}

func (t Tuning) String() string {
	return strings.Join(t, ",")
}

// Open returns the open note of string i. Out-of-range indexes report false.
func (t Tuning) Open(i int) (string, bool) {
	if i < 0 || i >= len(t) {
		return "", false
	}
	return t[i], true
}

// NoteAtFret is the note sounding at fret on a string tuned to open. An
// unrecognized open note degrades to "C".
func NoteAtFret(open string, fret int) string {
	return pitch.NoteAt(open, fret)
}

// Grid builds the dense [string][fret] table for frets 0..numFrets inclusive.
// Negative fret counts are treated as 0.
func Grid(t Tuning, numFrets int) [][]string {
	if numFrets < 0 {
		numFrets = 0
	}
	grid := make([][]string, len(t))
	for s, open := range t {
		row := make([]string, numFrets+1)
		for fret := 0; fret <= numFrets; fret++ {
			row[fret] = NoteAtFret(open, fret)
		}
		grid[s] = row
	}
	return grid
}

// ClampFrets keeps a requested fret count within [0, MaxFrets].
func ClampFrets(n int) int {
	if n < 0 {
		return 0
	}
	if n > MaxFrets {
		return MaxFrets
	}
	return n
}
