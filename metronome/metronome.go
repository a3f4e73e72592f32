// Package metronome keeps time: it clamps tempo settings, produces beats on a
// ticker and renders the accent and regular clicks.
package metronome

import (
	"context"
	"time"

	"github.com/jsphweid/fretdex/synth"
	"github.com/jsphweid/fretdex/util"
)

const (
	MinBPM     = 30
	MaxBPM     = 250
	DefaultBPM = 80

	MinBeats     = 2
	MaxBeats     = 8
	DefaultBeats = 4

	AccentFrequency = 1000.0
	ClickFrequency  = 800.0
	ClickLength     = 100 * time.Millisecond
)

type Settings struct {
	BPM   int `json:"bpm"`
	Beats int `json:"beats"`
}

func DefaultSettings() Settings {
	return Settings{BPM: DefaultBPM, Beats: DefaultBeats}
}

// Clamp pulls both fields into their allowed ranges.
func (s Settings) Clamp() Settings {
	return Settings{
		BPM:   util.Clamp(s.BPM, MinBPM, MaxBPM),
		Beats: util.Clamp(s.Beats, MinBeats, MaxBeats),
	}
}

// Interval is the time between beats, 60000/bpm milliseconds.
func (s Settings) Interval() time.Duration {
	bpm := s.Clamp().BPM
	return time.Duration(float64(time.Minute) / float64(bpm))
}

type Beat struct {
	// Index is the position in the measure, 0 is the downbeat.
	Index   int  `json:"index"`
	Measure int  `json:"measure"`
	Accent  bool `json:"accent"`
}

func (b Beat) Frequency() float64 {
	if b.Accent {
		return AccentFrequency
	}
	return ClickFrequency
}

// Next is the beat after b in a measure of beats.
func (b Beat) Next(beats int) Beat {
	beats = util.Clamp(beats, MinBeats, MaxBeats)
	i := (b.Index + 1) % beats
	m := b.Measure
	if i == 0 {
		m++
	}
	return Beat{Index: i, Measure: m, Accent: i == 0}
}

// Click renders the sound of one beat.
func Click(b Beat, sampleRate int) []float32 {
	return synth.Render(synth.Sine, b.Frequency(), sampleRate, ClickLength)
}

// Run calls fn on every beat, starting with an accented downbeat, until ctx is
// done. It returns ctx.Err().
func Run(ctx context.Context, s Settings, fn func(Beat)) error {
	s = s.Clamp()
	ticker := time.NewTicker(s.Interval())
	defer ticker.Stop()

	beat := Beat{Accent: true}
	fn(beat)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if ctx.Err() != nil {
				return ctx.Err()
			}
			beat = beat.Next(s.Beats)
			fn(beat)
		}
	}
}
