// Package freq converts between equal-tempered notes and frequencies, with A4
// tuned to 440 Hz.
package freq

import (
	"math"

	"github.com/jsphweid/fretdex/pitch"
	"github.com/jsphweid/fretdex/util"
)

const (
	A4         = 440.0
	A4Octave   = 4
	aIndex     = 9
	a4Absolute = aIndex + A4Octave*12

	// MinOctave and MaxOctave cover the MIDI key range with an octave spare.
	MinOctave = -1
	MaxOctave = 10
)

func ValidOctave(octave int) bool {
	return octave >= MinOctave && octave <= MaxOctave
}

// TunedNote is the nearest note to a measured frequency and how far off it is.
// Cents is not clamped; beyond ±50 means the detector is more than half a
// semitone away, which is a reading and not an error.
type TunedNote struct {
	Note   string `json:"note"`
	Octave int    `json:"octave"`
	Cents  int    `json:"cents"`
}

// NoteToFrequency gives the frequency of note in octave. Any spelling is
// accepted; an unrecognized note is treated as C.
func NoteToFrequency(note string, octave int) float64 {
	idx, ok := pitch.Parse(note)
	if !ok {
		idx = 0
	}
	halfSteps := idx + octave*12 - a4Absolute
	return A4 * math.Pow(2, float64(halfSteps)/12)
}

// FrequencyToNote finds the nearest note. Zero, negative, NaN and infinite
// frequencies (a silent sample) report false.
func FrequencyToNote(hz float64) (TunedNote, bool) {
	if hz <= 0 || math.IsNaN(hz) || math.IsInf(hz, 0) {
		return TunedNote{}, false
	}
	halfSteps := int(math.Round(12 * math.Log2(hz/A4)))
	expected := A4 * math.Pow(2, float64(halfSteps)/12)
	cents := int(math.Round(1200 * math.Log2(hz/expected)))

	fromC := aIndex + halfSteps
	return TunedNote{
		Note:   pitch.Names[util.Mod(fromC, 12)],
		Octave: A4Octave + int(math.Floor(float64(fromC)/12)),
		Cents:  cents,
	}, true
}

// MIDIKey is the MIDI note number, C4 = 60, clamped to 0..127.
func MIDIKey(note string, octave int) uint8 {
	idx, ok := pitch.Parse(note)
	if !ok {
		idx = 0
	}
	return uint8(util.Clamp(idx+(octave+1)*12, 0, 127))
}

func KeyToFrequency(key uint8) float64 {
	return A4 * math.Pow(2, (float64(key)-69)/12)
}
