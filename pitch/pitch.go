// Package pitch is the 12-tone chromatic vocabulary and the note arithmetic the
// rest of the engine is built on. Every function here is total: unrecognized
// symbols degrade to a documented default instead of failing.
package pitch

import (
	"strings"

	"github.com/jsphweid/fretdex/util"
)

// NoIndex is returned by IndexOf for names outside the canonical table.
const NoIndex = -1

var Names = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

var Degrees = [12]string{"1", "♭2", "2", "♭3", "3", "4", "♯4/♭5", "5", "♭6", "6", "♭7", "7"}

var Intervals = [12]string{"R", "m2", "M2", "m3", "M3", "P4", "TT", "P5", "m6", "M6", "m7", "M7"}

var enharmonics = map[string]string{
	"C#": "Db",
	"D#": "Eb",
	"F#": "Gb",
	"G#": "Ab",
	"A#": "Bb",
	"Db": "C#",
	"Eb": "D#",
	"Gb": "F#",
	"Ab": "G#",
	"Bb": "A#",
}

var naturals = map[byte]int{'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11}

// Letters in ascending order, used when spelling a scale one letter per degree.
const Letters = "CDEFGAB"

// IndexOf looks a name up in the canonical sharp table only.
func IndexOf(name string) int {
	for i, n := range Names {
		if n == name {
			return i
		}
	}
	return NoIndex
}

// Parse resolves any single-letter spelling with sharps or flats (ASCII or
// unicode accidentals) to its pitch-class index. "Db" and "C#" both give 1.
func Parse(name string) (int, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return NoIndex, false
	}
	idx, ok := naturals[name[0]]
	if !ok {
		return NoIndex, false
	}
	for _, r := range name[1:] {
		switch r {
		case '#', '♯':
			idx++
		case 'b', '♭':
			idx--
		default:
			return NoIndex, false
		}
	}
	return util.Mod(idx, 12), true
}

// Valid reports whether Parse accepts the name.
func Valid(name string) bool {
	_, ok := Parse(name)
	return ok
}

// NoteAt returns the pitch class offset semitones above root. Any integer
// offset is accepted; an unrecognized root yields "C".
func NoteAt(root string, offset int) string {
	idx, ok := Parse(root)
	if !ok {
		return Names[0]
	}
	return Names[util.Mod(idx+offset, 12)]
}

// Distance is the upward semitone distance from root to note, in [0, 11].
func Distance(note, root string) (int, bool) {
	n, ok := Parse(note)
	if !ok {
		return 0, false
	}
	r, ok := Parse(root)
	if !ok {
		return 0, false
	}
	return util.Mod(n-r, 12), true
}

// Degree labels note relative to root ("1", "♭3", ...). If either side is
// unrecognized the note is returned as given.
func Degree(note, root string) string {
	d, ok := Distance(note, root)
	if !ok {
		return note
	}
	return Degrees[d]
}

// Interval labels note relative to root ("R", "m3", ...), with the same
// fallback as Degree.
func Interval(note, root string) string {
	d, ok := Distance(note, root)
	if !ok {
		return note
	}
	return Intervals[d]
}

// Normalize maps any spelling to the canonical sharp name. Flats resolve to
// their true enharmonic (Db -> C#, Cb -> B). Unrecognized input gives "C".
func Normalize(note string) string {
	idx, ok := Parse(note)
	if !ok {
		return Names[0]
	}
	return Names[idx]
}

// Enharmonic returns the other spelling of one of the five black keys.
func Enharmonic(name string) (string, bool) {
	alt, ok := enharmonics[name]
	return alt, ok
}

// Spell names pitch class idx using the given letter, adding as many sharps or
// flats as needed (at most two either way). Returns the sharp name if the letter
// is not A-G.
func Spell(idx int, letter byte) string {
	natural, ok := naturals[letter]
	if !ok {
		return Names[util.Mod(idx, 12)]
	}
	diff := util.Mod(idx-natural+6, 12) - 6
	switch {
	case diff > 2 || diff < -2:
		return Names[util.Mod(idx, 12)]
	case diff > 0:
		return string(letter) + strings.Repeat("#", diff)
	case diff < 0:
		return string(letter) + strings.Repeat("b", -diff)
	}
	return string(letter)
}

// LetterAt steps through the letter names, LetterAt('G', 2) == 'B'.
func LetterAt(letter byte, steps int) byte {
	i := strings.IndexByte(Letters, letter)
	if i < 0 {
		return letter
	}
	return Letters[util.Mod(i+steps, 7)]
}

// UsesFlats reports whether a spelling is written with flats.
func UsesFlats(name string) bool {
	return strings.ContainsAny(name, "b♭")
}

// Display renders a canonical name with a unicode accidental and, for the black
// keys, its enharmonic partner, e.g. "C♯/D♭".
func Display(name string) string {
	pretty := strings.NewReplacer("#", "♯", "b", "♭").Replace(name)
	if alt, ok := Enharmonic(name); ok {
		return pretty + "/" + strings.NewReplacer("#", "♯", "b", "♭").Replace(alt)
	}
	return pretty
}

// SplitName splits "<Root> <Type>" at the first space, e.g. "A Harmonic Minor"
// gives ("A", "Harmonic Minor").
func SplitName(name string) (root, typ string, ok bool) {
	root, typ, ok = strings.Cut(strings.TrimSpace(name), " ")
	if !ok || root == "" || typ == "" {
		return "", "", false
	}
	return root, typ, true
}

// Step is one member of a scale or chord template: its distance from the root
// in semitones and in letter names (used only for display spelling).
type Step struct {
	Semitones int
	Letters   int
}

// Build realises a template on a root. notes are canonical sharp names,
// spelled follow the letter of the requested root spelling.
func Build(root string, steps []Step) (notes []string, spelled []string, ok bool) {
	idx, ok := Parse(root)
	if !ok {
		return nil, nil, false
	}
	letter := strings.TrimSpace(root)[0]
	notes = make([]string, len(steps))
	spelled = make([]string, len(steps))
	for i, s := range steps {
		n := util.Mod(idx+s.Semitones, 12)
		notes[i] = Names[n]
		spelled[i] = Spell(n, LetterAt(letter, s.Letters))
	}
	return notes, spelled, true
}
