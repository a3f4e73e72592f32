package pitch

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndexOfCanonicalOnly(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(0, IndexOf("C"))
	assert.Equal(10, IndexOf("A#"))
	assert.Equal(NoIndex, IndexOf("Bb"))
	assert.Equal(NoIndex, IndexOf("H"))
	assert.Equal(NoIndex, IndexOf(""))
}

func TestParseSpellings(t *testing.T) {
	cases := map[string]int{
		"C": 0, "C#": 1, "Db": 1, "D♭": 1, "C♯": 1,
		"Cb": 11, "B#": 0, "E#": 5, "Fb": 4, "Ebb": 2, "F##": 7,
	}
	for name, want := range cases {
		t.Run(name, func(t *testing.T) {
			got, ok := Parse(name)
			assert.True(t, ok)
			assert.Equal(t, want, got)
		})
	}

	for _, bad := range []string{"", "H", "c", "C$", "b"} {
		_, ok := Parse(bad)
		assert.False(t, ok, bad)
	}
}

func TestOctaveEquivalence(t *testing.T) {
	for _, p := range Names {
		assert.Equal(t, p, NoteAt(p, 12))
		assert.Equal(t, p, NoteAt(p, 0))
		assert.Equal(t, p, NoteAt(p, -12))
		assert.Equal(t, p, NoteAt(p, 120))
	}
}

func TestNoteAtIsTotal(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("B", NoteAt("C", -1))
	assert.Equal("G", NoteAt("C", 7))
	assert.Equal("E", NoteAt("E", 24))
	assert.Equal("C", NoteAt("nope", 5))
}

func TestDegreeAndIntervalLabels(t *testing.T) {
	for _, root := range Names {
		assert.Equal(t, "1", Degree(root, root))
		assert.Equal(t, "R", Interval(root, root))
		for _, note := range Names {
			assert.Contains(t, Degrees[:], Degree(note, root), fmt.Sprintf("%s over %s", note, root))
			assert.Contains(t, Intervals[:], Interval(note, root), fmt.Sprintf("%s over %s", note, root))
		}
	}

	assert := assert.New(t)
	assert.Equal("5", Degree("G", "C"))
	assert.Equal("♭3", Degree("C", "A"))
	assert.Equal("TT", Interval("F#", "C"))
	assert.Equal("M7", Interval("B", "C"))
}

func TestDegreeFallsBackToNote(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("X", Degree("X", "C"))
	assert.Equal("E", Degree("E", "Q"))
	assert.Equal("E", Interval("E", ""))
}

func TestNormalize(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("C#", Normalize("Db"))
	assert.Equal("B", Normalize("Cb"))
	assert.Equal("A#", Normalize("Bb"))
	assert.Equal("F#", Normalize("F#"))
	assert.Equal("C", Normalize("garbage"))
}

func TestEnharmonicIsBidirectional(t *testing.T) {
	for _, sharp := range []string{"C#", "D#", "F#", "G#", "A#"} {
		flat, ok := Enharmonic(sharp)
		assert.True(t, ok)
		back, ok := Enharmonic(flat)
		assert.True(t, ok)
		assert.Equal(t, sharp, back)
	}
	_, ok := Enharmonic("E")
	assert.False(t, ok)
}

func TestSpell(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("Bb", Spell(10, 'B'))
	assert.Equal("A#", Spell(10, 'A'))
	assert.Equal("Cb", Spell(11, 'C'))
	assert.Equal("E#", Spell(5, 'E'))
	assert.Equal("F##", Spell(7, 'F'))
	assert.Equal("G", Spell(7, 'G'))
	assert.Equal("C#", Spell(1, 'Z'))
}

func TestLetterAt(t *testing.T) {
	assert.Equal(t, byte('B'), LetterAt('G', 2))
	assert.Equal(t, byte('C'), LetterAt('B', 1))
	assert.Equal(t, byte('A'), LetterAt('C', -2))
}

func TestDisplay(t *testing.T) {
	assert.Equal(t, "C♯/D♭", Display("C#"))
	assert.Equal(t, "B♭/A♯", Display("Bb"))
	assert.Equal(t, "E", Display("E"))
}

func TestSplitName(t *testing.T) {
	root, typ, ok := SplitName("A Harmonic Minor")
	assert.True(t, ok)
	assert.Equal(t, "A", root)
	assert.Equal(t, "Harmonic Minor", typ)

	_, _, ok = SplitName("Major")
	assert.False(t, ok)
	_, _, ok = SplitName("")
	assert.False(t, ok)
}

func TestBuildSpellsFromRootLetter(t *testing.T) {
	major := []Step{{0, 0}, {2, 1}, {4, 2}, {5, 3}, {7, 4}, {9, 5}, {11, 6}}

	notes, spelled, ok := Build("Db", major)
	assert.True(t, ok)
	assert.Equal(t, []string{"C#", "D#", "F", "F#", "G#", "A#", "C"}, notes)
	assert.Equal(t, []string{"Db", "Eb", "F", "Gb", "Ab", "Bb", "C"}, spelled)

	_, spelled, _ = Build("F", major)
	assert.Equal(t, []string{"F", "G", "A", "Bb", "C", "D", "E"}, spelled)

	_, _, ok = Build("?", major)
	assert.False(t, ok)
}
