package tuner

import (
	"math"

	"github.com/jsphweid/fretdex/freq"
	"github.com/jsphweid/fretdex/synth"
	"github.com/jsphweid/fretdex/tuning"
)

type Status string

const (
	InTune Status = "in tune"
	Flat   Status = "flat"
	Sharp  Status = "sharp"
)

// InTuneCents is the half width of the in tune band.
const InTuneCents = 5

// StatusOf classifies a cents offset. The band edges themselves count as out
// of tune.
func StatusOf(cents int) Status {
	switch {
	case cents <= -InTuneCents:
		return Flat
	case cents >= InTuneCents:
		return Sharp
	}
	return InTune
}

// Target is the open string a reading is closest to.
type Target struct {
	String    int     `json:"string"`
	Note      string  `json:"note"`
	Octave    int     `json:"octave"`
	Frequency float64 `json:"frequency"`
	Cents     int     `json:"cents"`
}

type Reading struct {
	Frequency float64        `json:"frequency"`
	Note      freq.TunedNote `json:"note"`
	Status    Status         `json:"status"`
	Target    *Target        `json:"target,omitempty"`
}

// Read turns a detected frequency into a reading. The target string is only
// filled in when t has strings.
func Read(hz float64, t tuning.Tuning) (Reading, bool) {
	note, ok := freq.FrequencyToNote(hz)
	if !ok {
		return Reading{}, false
	}
	r := Reading{Frequency: hz, Note: note, Status: StatusOf(note.Cents)}
	if target, ok := Nearest(hz, t); ok {
		r.Target = &target
	}
	return r, true
}

// Nearest finds the open string whose pitch is closest to hz.
func Nearest(hz float64, t tuning.Tuning) (Target, bool) {
	if hz <= 0 || len(t) == 0 {
		return Target{}, false
	}
	octaves := synth.OpenOctaves(t)
	var best Target
	bestDist := math.Inf(1)
	for i := range t {
		open, _ := synth.StringFrequency(t, i, 0)
		cents := 1200 * math.Log2(hz/open)
		if math.Abs(cents) < bestDist {
			bestDist = math.Abs(cents)
			note, _ := freq.FrequencyToNote(open)
			best = Target{
				String:    i,
				Note:      note.Note,
				Octave:    octaves[i],
				Frequency: open,
				Cents:     int(math.Round(cents)),
			}
		}
	}
	return best, true
}
