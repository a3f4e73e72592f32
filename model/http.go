package model

import (
	"github.com/jsphweid/fretdex/chord"
	"github.com/jsphweid/fretdex/db"
	"github.com/jsphweid/fretdex/metronome"
	"github.com/jsphweid/fretdex/scale"
	"github.com/jsphweid/fretdex/selection"
	"github.com/jsphweid/fretdex/tuning"
)

type ErrorResponse struct {
	Error string `json:"detail"`
}

type CatalogueResponse struct {
	Notes           []string           `json:"notes"`
	Scales          []string           `json:"scales"`
	ScaleCategories []scale.Category   `json:"scaleCategories"`
	Chords          []string           `json:"chords"`
	Tunings         []tuning.Preset    `json:"tunings"`
	Metronome       metronome.Settings `json:"metronome"`
}

type GridResponse struct {
	Tuning   tuning.Tuning `json:"tuning"`
	NumFrets int           `json:"numFrets"`
	Grid     [][]string    `json:"grid"`
}

type ScaleResponse struct {
	Scale   scale.Scale `json:"scale"`
	Degrees []string    `json:"degrees"`
	Pattern [][]bool    `json:"pattern"`
}

type ChordResponse struct {
	Chord     chord.Chord      `json:"chord"`
	Quality   chord.Quality    `json:"quality"`
	Roles     []chord.Role     `json:"roles"`
	Positions []chord.Position `json:"positions"`
	Voicing   []int            `json:"voicing"`
}

type FrequencyResponse struct {
	Note      string  `json:"note"`
	Octave    int     `json:"octave"`
	Frequency float64 `json:"frequency"`
	MIDIKey   uint8   `json:"midiKey"`
}

type DetectRequest struct {
	SampleRate int       `json:"sampleRate"`
	Samples    []float32 `json:"samples"`
}

type OverlayRequest struct {
	Selection selection.Selection `json:"selection"`
	Options   *selection.Options  `json:"options"`
	Tuning    string              `json:"tuning"`
	NumFrets  *int                `json:"numFrets"`
}

type SelectRequest struct {
	Kind  selection.Kind `json:"kind"`
	Value string         `json:"value"`
}

type TuningRequest struct {
	Tuning   string `json:"tuning"`
	NumFrets *int   `json:"numFrets"`
}

type SessionResponse struct {
	ID    string          `json:"id"`
	State selection.State `json:"state"`
}

type PrefsResponse struct {
	ID    string   `json:"id"`
	Prefs db.Prefs `json:"prefs"`
}
