package freq

import (
	"math"
	"testing"

	"github.com/jsphweid/fretdex/pitch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestA4IsExactly440(t *testing.T) {
	assert.Equal(t, 440.0, NoteToFrequency("A", 4))
}

func TestKnownFrequencies(t *testing.T) {
	assert := assert.New(t)
	assert.InDelta(261.63, NoteToFrequency("C", 4), 0.01)
	assert.InDelta(82.41, NoteToFrequency("E", 2), 0.01)
	assert.InDelta(880.0, NoteToFrequency("A", 5), 1e-9)
	assert.InDelta(NoteToFrequency("C#", 3), NoteToFrequency("Db", 3), 1e-9)
	assert.InDelta(NoteToFrequency("C", 4), NoteToFrequency("bogus", 4), 1e-9)
}

func TestRoundTripAtOctaveFour(t *testing.T) {
	for _, note := range pitch.Names {
		t.Run(note, func(t *testing.T) {
			got, ok := FrequencyToNote(NoteToFrequency(note, 4))
			require.True(t, ok)
			assert.Equal(t, TunedNote{Note: note, Octave: 4, Cents: 0}, got)
		})
	}
}

func TestRoundTripAcrossOctaves(t *testing.T) {
	for octave := 0; octave <= 8; octave++ {
		got, ok := FrequencyToNote(NoteToFrequency("E", octave))
		require.True(t, ok)
		assert.Equal(t, "E", got.Note)
		assert.Equal(t, octave, got.Octave)
		assert.Equal(t, 0, got.Cents)
	}
}

func TestFrequencyToNote(t *testing.T) {
	got, ok := FrequencyToNote(440)
	require.True(t, ok)
	assert.Equal(t, TunedNote{Note: "A", Octave: 4, Cents: 0}, got)

	got, ok = FrequencyToNote(466.16)
	require.True(t, ok)
	assert.Equal(t, "A#", got.Note)
	assert.Equal(t, 4, got.Octave)
	assert.InDelta(t, 0, got.Cents, 1)

	got, ok = FrequencyToNote(445)
	require.True(t, ok)
	assert.Equal(t, "A", got.Note)
	assert.Equal(t, 20, got.Cents)

	got, ok = FrequencyToNote(110)
	require.True(t, ok)
	assert.Equal(t, TunedNote{Note: "A", Octave: 2, Cents: 0}, got)

	got, ok = FrequencyToNote(16.35)
	require.True(t, ok)
	assert.Equal(t, "C", got.Note)
	assert.Equal(t, 0, got.Octave)
}

func TestFrequencyToNoteSilence(t *testing.T) {
	for _, hz := range []float64{0, -10, math.NaN(), math.Inf(1)} {
		_, ok := FrequencyToNote(hz)
		assert.False(t, ok)
	}
}

func TestMIDIKey(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(uint8(60), MIDIKey("C", 4))
	assert.Equal(uint8(69), MIDIKey("A", 4))
	assert.Equal(uint8(40), MIDIKey("E", 2))
	assert.Equal(uint8(127), MIDIKey("B", 20))
	assert.InDelta(440.0, KeyToFrequency(69), 1e-9)
}

func TestValidOctave(t *testing.T) {
	assert.True(t, ValidOctave(-1))
	assert.True(t, ValidOctave(10))
	assert.False(t, ValidOctave(11))
	assert.False(t, ValidOctave(-2))
	assert.False(t, math.IsInf(NoteToFrequency("B", MaxOctave), 0))
}
