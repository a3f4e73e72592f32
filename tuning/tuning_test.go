package tuning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardGridOctaveAtTwelfth(t *testing.T) {
	grid := Grid(Tuning{"E", "A", "D", "G", "B", "E"}, 24)

	assert := assert.New(t)
	assert.Len(grid, 6)
	assert.Len(grid[0], 25)
	assert.Equal("E", grid[0][0])
	assert.Equal("E", grid[0][12])
	assert.Equal("E", grid[0][24])
	assert.Equal("A", grid[0][5])
	assert.Equal("C", grid[4][1])
}

func TestGridIsIdempotent(t *testing.T) {
	assert.Equal(t, Grid(Standard, 24), Grid(Standard, 24))
}

func TestGridDoesNotAssumeSixStrings(t *testing.T) {
	seven, ok := Lookup("Seven String")
	require.True(t, ok)
	grid := Grid(seven, 12)
	assert.Len(t, grid, 7)
	assert.Equal(t, "B", grid[0][0])

	bass := Grid(Tuning{"E", "A", "D", "G"}, 5)
	assert.Len(t, bass, 4)
	assert.Equal(t, "C", bass[3][5])
}

func TestGridDegradesOnBadInput(t *testing.T) {
	grid := Grid(Tuning{"E", "??"}, -3)
	assert.Equal(t, [][]string{{"E"}, {"C"}}, grid)
}

func TestNoteAtFret(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("F", NoteAtFret("E", 1))
	assert.Equal("C#", NoteAtFret("Db", 0))
	assert.Equal("C", NoteAtFret("X", 7))
}

func TestParse(t *testing.T) {
	tn, ok := Parse("D, A, D, G, B, E")
	require.True(t, ok)
	assert.Equal(t, Tuning{"D", "A", "D", "G", "B", "E"}, tn)

	tn, ok = Parse("Eb Ab Db Gb Bb Eb")
	require.True(t, ok)
	assert.Equal(t, "D#,G#,C#,F#,A#,D#", tn.String())

	_, ok = Parse("E,A,H")
	assert.False(t, ok)
	_, ok = Parse("")
	assert.False(t, ok)
}

func TestOpen(t *testing.T) {
	n, ok := Standard.Open(1)
	assert.True(t, ok)
	assert.Equal(t, "A", n)
	_, ok = Standard.Open(6)
	assert.False(t, ok)
	_, ok = Standard.Open(-1)
	assert.False(t, ok)
}

func TestClampFrets(t *testing.T) {
	assert.Equal(t, 0, ClampFrets(-1))
	assert.Equal(t, MaxFrets, ClampFrets(100))
	assert.Equal(t, 22, ClampFrets(22))
}
