// Package synth renders the plucked-string and metronome tones as raw samples.
package synth

import (
	"io"
	"math"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jsphweid/fretdex/freq"
	"github.com/jsphweid/fretdex/pitch"
	"github.com/jsphweid/fretdex/tuning"
	"github.com/pkg/errors"
)

const (
	DefaultSampleRate = 44100
	BaseOctave        = 2

	Peak  = 0.5
	Floor = 0.00001

	Attack     = 10 * time.Millisecond
	StringRing = 2 * time.Second
)

// OpenOctaves assigns each open string the octave that keeps the strings
// ascending from BaseOctave, so standard tuning is E2 A2 D3 G3 B3 E4.
// Unreadable strings count as C.
func OpenOctaves(t tuning.Tuning) []int {
	res := make([]int, len(t))
	octave, prev := BaseOctave, -1
	for i, open := range t {
		idx, ok := pitch.Parse(open)
		if !ok {
			idx = 0
		}
		if prev >= 0 && idx <= prev {
			octave++
		}
		res[i] = octave
		prev = idx
	}
	return res
}

// StringFrequency is the pitch of string str held at fret.
func StringFrequency(t tuning.Tuning, str, fret int) (float64, bool) {
	if str < 0 || str >= len(t) || fret < 0 {
		return 0, false
	}
	base := freq.NoteToFrequency(t[str], OpenOctaves(t)[str])
	return base * math.Pow(2, float64(fret)/12), true
}

// Envelope is the gain at offset at: an exponential rise from Floor to Peak
// over Attack, then an exponential fall back to Floor at length. Silent after.
func Envelope(at, length time.Duration) float64 {
	switch {
	case at < 0 || at >= length:
		return 0
	case at < Attack:
		return Floor * math.Pow(Peak/Floor, float64(at)/float64(Attack))
	}
	return Peak * math.Pow(Floor/Peak, float64(at-Attack)/float64(length-Attack))
}

// Triangle is a unit triangle wave at phase (in cycles), 0 at phase 0 and
// rising.
func Triangle(phase float64) float64 {
	v := phase + 0.25
	v -= math.Floor(v)
	return 1 - 4*math.Abs(v-0.5)
}

func Sine(phase float64) float64 {
	return math.Sin(2 * math.Pi * phase)
}

// Render synthesizes d of wave at hz under the envelope.
func Render(wave func(float64) float64, hz float64, sampleRate int, d time.Duration) []float32 {
	if sampleRate <= 0 || d <= 0 {
		return nil
	}
	n := int(d.Seconds() * float64(sampleRate))
	res := make([]float32, n)
	for i := range res {
		at := time.Duration(float64(i) / float64(sampleRate) * float64(time.Second))
		res[i] = float32(wave(hz*float64(i)/float64(sampleRate)) * Envelope(at, d))
	}
	return res
}

// Pluck renders one string being played, as the fretboard does on click.
func Pluck(t tuning.Tuning, str, fret, sampleRate int) ([]float32, bool) {
	hz, ok := StringFrequency(t, str, fret)
	if !ok {
		return nil, false
	}
	return Render(Triangle, hz, sampleRate, StringRing), true
}

// PCM16 converts samples in [-1, 1] to signed 16-bit values.
func PCM16(samples []float32) []int {
	pcm := make([]int, len(samples))
	for i, s := range samples {
		v := math.Round(float64(s) * math.MaxInt16)
		pcm[i] = int(math.Max(math.MinInt16, math.Min(math.MaxInt16, v)))
	}
	return pcm
}

// WriteWAV writes mono 16-bit PCM in a RIFF/WAVE container. The encoder
// seeks back to fill in chunk sizes, so w has to be seekable.
func WriteWAV(w io.WriteSeeker, samples []float32, sampleRate int) error {
	enc := wav.NewEncoder(w, sampleRate, 16, 1, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           PCM16(samples),
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		return errors.Wrap(err, "could not write wav data")
	}
	if err := enc.Close(); err != nil {
		return errors.Wrap(err, "could not finish wav file")
	}
	return nil
}

// ReadWAV decodes a PCM wav file into samples in [-1, 1]. Only the first
// channel of multichannel files is kept.
func ReadWAV(r io.ReadSeeker) ([]float32, int, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, 0, errors.New("not a valid wav file")
	}
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, errors.Wrap(err, "could not decode wav data")
	}
	channels := buf.Format.NumChannels
	if channels < 1 {
		channels = 1
	}
	scale := float32(int(1) << (dec.BitDepth - 1))
	samples := make([]float32, 0, len(buf.Data)/channels)
	for i := 0; i < len(buf.Data); i += channels {
		samples = append(samples, float32(buf.Data[i])/scale)
	}
	return samples, buf.Format.SampleRate, nil
}
