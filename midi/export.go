package midi

import (
	"github.com/jsphweid/fretdex/chord"
	"github.com/jsphweid/fretdex/freq"
	"github.com/jsphweid/fretdex/scale"
	"github.com/jsphweid/fretdex/synth"
	"github.com/jsphweid/fretdex/tuning"
	"github.com/jsphweid/fretdex/util"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const (
	Resolution = smf.MetricTicks(480)
	Channel    = 0
)

type Options struct {
	BPM      float64
	Velocity uint8
	// Octave the scale run starts in.
	Octave int
	// Strum is the delay between strings of a chord, in ticks.
	Strum uint32
}

func DefaultOptions() Options {
	return Options{BPM: 100, Velocity: 100, Octave: 4, Strum: Resolution.Ticks32th()}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.BPM <= 0 {
		o.BPM = d.BPM
	}
	if o.Velocity == 0 {
		o.Velocity = d.Velocity
	}
	o.Velocity = util.Min(o.Velocity, 127)
	return o
}

func newTrack(o Options) smf.Track {
	var tr smf.Track
	tr.Add(0, smf.MetaMeter(4, 4))
	tr.Add(0, smf.MetaTempo(o.BPM))
	return tr
}

func finish(tr smf.Track) *smf.SMF {
	tr.Close(0)
	s := smf.New()
	s.TimeFormat = Resolution
	s.Add(tr)
	return s
}

// ScaleKeys are the MIDI keys of an ascending run through s from octave,
// closed by the root an octave up.
func ScaleKeys(s scale.Scale, octave int) []uint8 {
	if len(s.Notes) == 0 {
		return nil
	}
	keys := make([]uint8, 0, len(s.Notes)+1)
	for i, n := range s.Notes {
		k := freq.MIDIKey(n, octave)
		for i > 0 && k <= keys[i-1] && k <= 115 {
			k += 12
		}
		keys = append(keys, k)
	}
	return append(keys, util.Min(keys[0], 115)+12)
}

// Scale renders s as quarter notes.
func Scale(s scale.Scale, o Options) *smf.SMF {
	o = o.withDefaults()
	tr := newTrack(o)
	for _, k := range ScaleKeys(s, o.Octave) {
		tr.Add(0, midi.NoteOn(Channel, k, o.Velocity))
		tr.Add(Resolution.Ticks4th(), midi.NoteOff(Channel, k))
	}
	return finish(tr)
}

// ChordKeys are the sounding MIDI keys of the chord's first-position voicing
// on t, lowest string first. Muted strings are left out.
func ChordKeys(c chord.Chord, t tuning.Tuning) []uint8 {
	voicing := chord.Voicing(c.Name, t)
	octaves := synth.OpenOctaves(t)
	var keys []uint8
	for i := range t {
		// the voicing lists the highest string first
		fret := voicing[len(t)-1-i]
		if fret == chord.Muted {
			continue
		}
		keys = append(keys, util.Min(freq.MIDIKey(t[i], octaves[i])+uint8(fret), 127))
	}
	return keys
}

// Chord renders c as one strummed whole note.
func Chord(c chord.Chord, t tuning.Tuning, o Options) *smf.SMF {
	o = o.withDefaults()
	tr := newTrack(o)
	keys := ChordKeys(c, t)
	var held uint32
	for i, k := range keys {
		delta := o.Strum
		if i == 0 {
			delta = 0
		}
		tr.Add(delta, midi.NoteOn(Channel, k, o.Velocity))
		held += delta
	}
	whole := Resolution.Ticks4th() * 4
	for i, k := range keys {
		delta := uint32(0)
		if i == 0 && held < whole {
			delta = whole - held
		}
		tr.Add(delta, midi.NoteOff(Channel, k))
	}
	return finish(tr)
}
