package scale

import (
	"testing"

	"github.com/jsphweid/fretdex/tuning"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupMajor(t *testing.T) {
	s, ok := Lookup("C Major")
	require.True(t, ok)

	assert := assert.New(t)
	assert.Equal("C Major", s.Name)
	assert.Equal([]string{"C", "D", "E", "F", "G", "A", "B"}, s.Notes)
	assert.Equal(s.Root, s.Notes[0])
}

func TestLookupSpelling(t *testing.T) {
	cases := []struct {
		name    string
		spelled []string
	}{
		{"F Major", []string{"F", "G", "A", "Bb", "C", "D", "E"}},
		{"Cb Major", []string{"Cb", "Db", "Eb", "Fb", "Gb", "Ab", "Bb"}},
		{"Eb Minor", []string{"Eb", "F", "Gb", "Ab", "Bb", "Cb", "Db"}},
		{"A Blues", []string{"A", "C", "D", "Eb", "E", "G"}},
		{"E Minor Pentatonic", []string{"E", "G", "A", "B", "D"}},
		{"D Harmonic Minor", []string{"D", "E", "F", "G", "A", "Bb", "C#"}},
		{"B Lydian", []string{"B", "C#", "D#", "E#", "F#", "G#", "A#"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s, ok := Lookup(c.name)
			require.True(t, ok)
			assert.Equal(t, c.spelled, s.Spelled)
		})
	}
}

func TestEnharmonicRootsShareCanonicalEntry(t *testing.T) {
	sharp, ok := Lookup("C# Major")
	require.True(t, ok)
	flat, ok := Lookup("Db Major")
	require.True(t, ok)

	assert := assert.New(t)
	assert.Equal(sharp.Name, flat.Name)
	assert.Equal(sharp.Notes, flat.Notes)
	assert.Equal("Db Major", flat.Display)
	assert.NotEqual(sharp.Spelled, flat.Spelled)
}

func TestLookupTypeIsCaseSensitive(t *testing.T) {
	_, ok := Lookup("C major")
	assert.False(t, ok)
	_, ok = Lookup("H Major")
	assert.False(t, ok)
	_, ok = Lookup("C")
	assert.False(t, ok)
}

func TestTransposeCToGMatchesDictionary(t *testing.T) {
	got := Transpose(Notes("C Major"), "C", "G")
	assert.Equal(t, Notes("G Major"), got)
}

func TestTranspose(t *testing.T) {
	assert := assert.New(t)
	assert.Equal([]string{"C#", "D#", "F"}, Transpose([]string{"C", "D", "E"}, "C", "Db"))
	assert.Equal([]string{"A#", "C"}, Transpose([]string{"Bb", "C"}, "C", "C"))
	assert.Equal([]string{"D", "??"}, Transpose([]string{"C", "??"}, "A", "B"))
	assert.Equal([]string{"C", "D"}, Transpose([]string{"E", "F#"}, "E", "unknown"))
}

func TestResolveFallsBackToTemplateBySuffix(t *testing.T) {
	s, ok := Resolve("A Pentatonic")
	require.True(t, ok)
	assert.Equal(t, "Major Pentatonic", s.Type)
	assert.Equal(t, []string{"A", "B", "C#", "E", "F#"}, s.Notes)

	_, ok = Resolve("A Bebop")
	assert.False(t, ok)
	_, ok = Resolve("X Major")
	assert.False(t, ok)
}

func TestPatternMarksScaleMembers(t *testing.T) {
	p := Pattern("C Major", tuning.Standard, 24)
	require.Len(t, p, 6)
	require.Len(t, p[0], 25)

	assert := assert.New(t)
	assert.True(p[0][0])   // E
	assert.False(p[0][2])  // F#
	assert.True(p[0][1])   // F
	assert.False(p[1][1])  // A#
	assert.True(p[5][12])  // E
}

func TestPatternUnknownScaleIsAllFalse(t *testing.T) {
	p := Pattern("Q Nothing", tuning.Standard, 12)
	require.Len(t, p, 6)
	for _, row := range p {
		assert.Len(t, row, 13)
		for _, v := range row {
			assert.False(t, v)
		}
	}
	assert.Len(t, Pattern("", tuning.Standard, 3), 6)
}

func TestAllAndCategories(t *testing.T) {
	assert.Len(t, All(), len(Types)*12)
	assert.Contains(t, Names(), "A# Melodic Minor")

	cats := Categories()
	require.Len(t, cats, 6)
	assert.Equal(t, CategoryModes, cats[2].Name)
	assert.Equal(t, []string{"Dorian", "Phrygian", "Lydian", "Mixolydian", "Locrian"}, cats[2].Types)
}

func TestFilterByRoot(t *testing.T) {
	names := []string{"C# Major", "Db Minor", "D Major", "bad"}
	assert.Equal(t, []string{"C# Major", "Db Minor"}, FilterByRoot(names, "Db"))
	assert.Equal(t, names, FilterByRoot(names, ""))
}

func TestEveryScaleStartsOnItsRoot(t *testing.T) {
	for _, s := range All() {
		assert.Equal(t, s.Root, s.Notes[0], s.Name)
		assert.Contains(t, []int{5, 6, 7}, len(s.Notes), s.Name)
	}
}
