// Package scale holds the scale dictionary, transposition and the fretboard
// membership pattern for a named scale.
//
// The dictionary stores one interval template per scale type. Any root spelling
// resolves to the same canonical entry ("Db Major" and "C# Major" share notes);
// the requested spelling only changes Spelled.
package scale

import (
	"strings"

	"github.com/jsphweid/fretdex/pitch"
	"github.com/jsphweid/fretdex/tuning"
)

type Type struct {
	Name     string
	Category string
	Steps    []pitch.Step
}

type Scale struct {
	Name    string   `json:"name"`
	Display string   `json:"display"`
	Root    string   `json:"root"`
	Type    string   `json:"type"`
	Notes   []string `json:"notes"`
	Spelled []string `json:"spelled"`
}

type Category struct {
	Name  string   `json:"name"`
	Types []string `json:"types"`
}

const (
	CategoryMajor      = "Major Scales (Ionian)"
	CategoryMinor      = "Minor Scales (Aeolian)"
	CategoryModes      = "Additional Modes"
	CategoryHarmonic   = "Harmonic & Melodic Minor"
	CategoryPentatonic = "Pentatonic Scales"
	CategoryBlues      = "Blues Scales"
)

var categoryOrder = []string{
	CategoryMajor, CategoryMinor, CategoryModes,
	CategoryHarmonic, CategoryPentatonic, CategoryBlues,
}

func heptatonic(semitones ...int) []pitch.Step {
	steps := make([]pitch.Step, len(semitones))
	for i, s := range semitones {
		steps[i] = pitch.Step{Semitones: s, Letters: i}
	}
	return steps
}

func steps(pairs ...int) []pitch.Step {
	res := make([]pitch.Step, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		res = append(res, pitch.Step{Semitones: pairs[i], Letters: pairs[i+1]})
	}
	return res
}

// Types is in dictionary order; template fallback picks the first match.
var Types = []Type{
	{Name: "Major", Category: CategoryMajor, Steps: heptatonic(0, 2, 4, 5, 7, 9, 11)},
	{Name: "Minor", Category: CategoryMinor, Steps: heptatonic(0, 2, 3, 5, 7, 8, 10)},
	{Name: "Dorian", Category: CategoryModes, Steps: heptatonic(0, 2, 3, 5, 7, 9, 10)},
	{Name: "Phrygian", Category: CategoryModes, Steps: heptatonic(0, 1, 3, 5, 7, 8, 10)},
	{Name: "Lydian", Category: CategoryModes, Steps: heptatonic(0, 2, 4, 6, 7, 9, 11)},
	{Name: "Mixolydian", Category: CategoryModes, Steps: heptatonic(0, 2, 4, 5, 7, 9, 10)},
	{Name: "Locrian", Category: CategoryModes, Steps: heptatonic(0, 1, 3, 5, 6, 8, 10)},
	{Name: "Harmonic Minor", Category: CategoryHarmonic, Steps: heptatonic(0, 2, 3, 5, 7, 8, 11)},
	{Name: "Melodic Minor", Category: CategoryHarmonic, Steps: heptatonic(0, 2, 3, 5, 7, 9, 11)},
	{Name: "Major Pentatonic", Category: CategoryPentatonic, Steps: steps(0, 0, 2, 1, 4, 2, 7, 4, 9, 5)},
	{Name: "Minor Pentatonic", Category: CategoryPentatonic, Steps: steps(0, 0, 3, 2, 5, 3, 7, 4, 10, 6)},
	{Name: "Blues", Category: CategoryBlues, Steps: steps(0, 0, 3, 2, 5, 3, 6, 4, 7, 4, 10, 6)},
}

func findType(name string) (Type, bool) {
	for _, t := range Types {
		if t.Name == name {
			return t, true
		}
	}
	return Type{}, false
}

// Lookup resolves "<Root> <Type>". The type is matched exactly (case and
// spelling sensitive); the root may be any enharmonic spelling.
func Lookup(name string) (Scale, bool) {
	root, typ, ok := pitch.SplitName(name)
	if !ok {
		return Scale{}, false
	}
	t, ok := findType(typ)
	if !ok {
		return Scale{}, false
	}
	notes, spelled, ok := pitch.Build(root, t.Steps)
	if !ok {
		return Scale{}, false
	}
	return Scale{
		Name:    notes[0] + " " + t.Name,
		Display: strings.TrimSpace(root) + " " + t.Name,
		Root:    notes[0],
		Type:    t.Name,
		Notes:   notes,
		Spelled: spelled,
	}, true
}

// Notes returns the canonical notes of a dictionary scale, nil if absent.
func Notes(name string) []string {
	s, ok := Lookup(name)
	if !ok {
		return nil
	}
	return s.Notes
}

// Transpose shifts every note by the interval between fromRoot and toRoot.
// Both roots are normalized first (an unrecognized root counts as C); notes
// that cannot be read are passed through untouched. Output uses sharp names.
func Transpose(notes []string, fromRoot, toRoot string) []string {
	from := pitch.IndexOf(pitch.Normalize(fromRoot))
	to := pitch.IndexOf(pitch.Normalize(toRoot))
	interval := (to - from + 12) % 12

	res := make([]string, len(notes))
	for i, n := range notes {
		if !pitch.Valid(n) {
			res[i] = n
			continue
		}
		res[i] = pitch.NoteAt(n, interval)
	}
	return res
}

// Resolve looks a scale up, and when the exact name is missing falls back to
// the first dictionary scale whose name ends with the same type, transposed to
// the requested root. The root itself has to be readable.
func Resolve(name string) (Scale, bool) {
	if s, ok := Lookup(name); ok {
		return s, true
	}
	root, typ, ok := pitch.SplitName(name)
	if !ok || !pitch.Valid(root) {
		return Scale{}, false
	}
	for _, template := range All() {
		if !strings.HasSuffix(template.Name, typ) {
			continue
		}
		notes := Transpose(template.Notes, template.Root, root)
		return Scale{
			Name:    notes[0] + " " + template.Type,
			Display: strings.TrimSpace(root) + " " + template.Type,
			Root:    notes[0],
			Type:    template.Type,
			Notes:   notes,
			Spelled: notes,
		}, true
	}
	return Scale{}, false
}

// Contains reports whether a note (any spelling) is a member of the scale.
func (s Scale) Contains(note string) bool {
	idx, ok := pitch.Parse(note)
	if !ok {
		return false
	}
	for _, n := range s.Notes {
		if pitch.IndexOf(n) == idx {
			return true
		}
	}
	return false
}

// Pattern marks every fretboard cell whose note belongs to the named scale.
// An unknown scale gives an all-false grid of the same shape.
func Pattern(name string, t tuning.Tuning, frets int) [][]bool {
	if frets < 0 {
		frets = 0
	}
	pattern := make([][]bool, len(t))
	s, ok := Resolve(name)
	for i, open := range t {
		row := make([]bool, frets+1)
		if ok {
			for fret := range row {
				row[fret] = s.Contains(tuning.NoteAtFret(open, fret))
			}
		}
		pattern[i] = row
	}
	return pattern
}

// All lists every dictionary scale: each type, in order, on all 12 roots.
func All() []Scale {
	res := make([]Scale, 0, len(Types)*12)
	for _, t := range Types {
		for _, root := range pitch.Names {
			s, _ := Lookup(root + " " + t.Name)
			res = append(res, s)
		}
	}
	return res
}

func Names() []string {
	all := All()
	res := make([]string, len(all))
	for i, s := range all {
		res[i] = s.Name
	}
	return res
}

func Categories() []Category {
	res := make([]Category, 0, len(categoryOrder))
	for _, c := range categoryOrder {
		cat := Category{Name: c}
		for _, t := range Types {
			if t.Category == c {
				cat.Types = append(cat.Types, t.Name)
			}
		}
		res = append(res, cat)
	}
	return res
}

// FilterByRoot keeps the names whose root reads as the same pitch as root.
func FilterByRoot(names []string, root string) []string {
	want, ok := pitch.Parse(root)
	if !ok {
		return names
	}
	var res []string
	for _, n := range names {
		r, _, ok := pitch.SplitName(n)
		if !ok {
			continue
		}
		if idx, ok := pitch.Parse(r); ok && idx == want {
			res = append(res, n)
		}
	}
	return res
}
