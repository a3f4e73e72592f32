// Package chord holds the chord dictionary, chord-tone roles and the full-grid
// chord position scan used by the overlay.
package chord

import (
	"strings"

	"github.com/jsphweid/fretdex/pitch"
	"github.com/jsphweid/fretdex/tuning"
)

type Role string

const (
	RoleRoot       Role = "root"
	RoleThird      Role = "third"
	RoleFifth      Role = "fifth"
	RoleSeventh    Role = "seventh"
	RoleNinth      Role = "ninth"
	RoleEleventh   Role = "eleventh"
	RoleThirteenth Role = "thirteenth"
	RoleSixth      Role = "sixth"
	RoleChord      Role = "chord"
)

// Quality is the coarse label shown next to a chord name.
type Quality string

const (
	QualityMajor Quality = "Major"
	QualityMinor Quality = "Minor"
	QualityOther Quality = "Chord"
)

// Muted marks a string left out of a Voicing.
const Muted = -1

// VoicingMaxFret is how far up the neck Voicing searches.
const VoicingMaxFret = 12

type Type struct {
	Name  string
	Steps []pitch.Step
}

type Chord struct {
	Name    string   `json:"name"`
	Display string   `json:"display"`
	Root    string   `json:"root"`
	Type    string   `json:"type"`
	Notes   []string `json:"notes"`
	Spelled []string `json:"spelled"`
}

type Position struct {
	String int    `json:"string"`
	Fret   int    `json:"fret"`
	Note   string `json:"note"`
	Role   Role   `json:"role"`
}

var (
	root       = pitch.Step{Semitones: 0, Letters: 0}
	minor3     = pitch.Step{Semitones: 3, Letters: 2}
	major3     = pitch.Step{Semitones: 4, Letters: 2}
	fifth      = pitch.Step{Semitones: 7, Letters: 4}
	sixth      = pitch.Step{Semitones: 9, Letters: 5}
	flat7      = pitch.Step{Semitones: 10, Letters: 6}
	major7     = pitch.Step{Semitones: 11, Letters: 6}
	ninth      = pitch.Step{Semitones: 2, Letters: 1}
	eleventh   = pitch.Step{Semitones: 5, Letters: 3}
	thirteenth = pitch.Step{Semitones: 9, Letters: 5}
)

func tones(s ...pitch.Step) []pitch.Step { return s }

// Types is in dictionary order.
var Types = []Type{
	{Name: "Major", Steps: tones(root, major3, fifth)},
	{Name: "Major sixth", Steps: tones(root, major3, fifth, sixth)},
	{Name: "Major dominant seventh", Steps: tones(root, major3, fifth, flat7)},
	{Name: "Major seventh", Steps: tones(root, major3, fifth, major7)},
	{Name: "Major ninth", Steps: tones(root, major3, fifth, major7, ninth)},
	{Name: "Major dominant ninth", Steps: tones(root, major3, fifth, flat7, ninth)},
	{Name: "Major eleventh", Steps: tones(root, major3, fifth, major7, ninth, eleventh)},
	{Name: "Major dominant eleventh", Steps: tones(root, major3, fifth, flat7, ninth, eleventh)},
	{Name: "Major thirteenth", Steps: tones(root, major3, fifth, major7, ninth, eleventh, thirteenth)},
	{Name: "Major dominant 13", Steps: tones(root, major3, fifth, flat7, ninth, eleventh, thirteenth)},
	{Name: "Suspended second", Steps: tones(root, ninth, fifth)},
	{Name: "Suspended Fourth", Steps: tones(root, eleventh, fifth)},
	{Name: "Major dominant 7 sus4", Steps: tones(root, eleventh, fifth, flat7)},
	{Name: "Major dominant 9 sus4", Steps: tones(root, eleventh, fifth, flat7, ninth)},
	{Name: "Major dominant 13 sus4", Steps: tones(root, eleventh, fifth, flat7, ninth, thirteenth)},
	{Name: "Power chord", Steps: tones(root, fifth)},
	{Name: "Minor", Steps: tones(root, minor3, fifth)},
	{Name: "Minor 6th", Steps: tones(root, minor3, fifth, sixth)},
	{Name: "Minor Seventh", Steps: tones(root, minor3, fifth, flat7)},
	{Name: "Minor ninth", Steps: tones(root, minor3, fifth, flat7, ninth)},
	{Name: "Minor eleventh", Steps: tones(root, minor3, fifth, flat7, ninth, eleventh)},
	{Name: "Minor 13th", Steps: tones(root, minor3, fifth, flat7, ninth, eleventh, thirteenth)},
}

func findType(name string) (Type, bool) {
	for _, t := range Types {
		if t.Name == name {
			return t, true
		}
	}
	return Type{}, false
}

// Lookup resolves "<Root> <Type>" with the same rules as scale.Lookup: exact
// type, any root spelling.
func Lookup(name string) (Chord, bool) {
	r, typ, ok := pitch.SplitName(name)
	if !ok {
		return Chord{}, false
	}
	t, ok := findType(typ)
	if !ok {
		return Chord{}, false
	}
	notes, spelled, ok := pitch.Build(r, t.Steps)
	if !ok {
		return Chord{}, false
	}
	return Chord{
		Name:    notes[0] + " " + t.Name,
		Display: strings.TrimSpace(r) + " " + t.Name,
		Root:    notes[0],
		Type:    t.Name,
		Notes:   notes,
		Spelled: spelled,
	}, true
}

// IndexOf is the first position of note (any spelling) in the chord, -1 if the
// note is not a chord tone.
func (c Chord) IndexOf(note string) int {
	idx, ok := pitch.Parse(note)
	if !ok {
		return -1
	}
	for i, n := range c.Notes {
		if pitch.IndexOf(n) == idx {
			return i
		}
	}
	return -1
}

func (c Chord) Contains(note string) bool {
	return c.IndexOf(note) >= 0
}

// RoleOf labels a note by its index in the chord. Extensions (index 3 and up)
// take their label from the chord type; first match wins.
func (c Chord) RoleOf(note string) (Role, bool) {
	i := c.IndexOf(note)
	if i < 0 {
		return "", false
	}
	return RoleOf(i, c.Type), true
}

func (c Chord) Quality() Quality {
	switch {
	case strings.Contains(c.Type, "Major"):
		return QualityMajor
	case strings.Contains(c.Type, "Minor"):
		return QualityMinor
	}
	return QualityOther
}

var extensions = []struct {
	role    Role
	needles []string
}{
	{RoleSeventh, []string{"seventh", "7"}},
	{RoleNinth, []string{"ninth", "9"}},
	{RoleEleventh, []string{"eleventh", "11"}},
	{RoleThirteenth, []string{"thirteenth", "13"}},
	{RoleSixth, []string{"sixth", "6"}},
}

// RoleOf maps a chord-tone index to its role. Type matching is case
// insensitive, so "Minor Seventh" labels its fourth tone a seventh.
func RoleOf(index int, chordType string) Role {
	switch index {
	case 0:
		return RoleRoot
	case 1:
		return RoleThird
	case 2:
		return RoleFifth
	}
	if index < 0 {
		return RoleChord
	}
	typ := strings.ToLower(chordType)
	for _, ext := range extensions {
		for _, needle := range ext.needles {
			if strings.Contains(typ, needle) {
				return ext.role
			}
		}
	}
	return RoleChord
}

// AllPositions lists every cell on frets 0..frets whose note is a chord tone.
// This is a full scan, not a single voicing. Unknown chords give nil.
func AllPositions(name string, t tuning.Tuning, frets int) []Position {
	c, ok := Lookup(name)
	if !ok {
		return nil
	}
	return c.Positions(t, frets)
}

func (c Chord) Positions(t tuning.Tuning, frets int) []Position {
	var res []Position
	for s, open := range t {
		for fret := 0; fret <= frets; fret++ {
			note := tuning.NoteAtFret(open, fret)
			role, ok := c.RoleOf(note)
			if !ok {
				continue
			}
			res = append(res, Position{String: s, Fret: fret, Note: note, Role: role})
		}
	}
	return res
}

// Voicing picks, per string, the lowest fret (0..12) sounding a chord tone,
// then reverses the result for display from the highest string down. The
// first string is muted above fret 5, and so is the last one on minor chords.
// Unknown chords give all strings muted.
func Voicing(name string, t tuning.Tuning) []int {
	res := make([]int, len(t))
	c, ok := Lookup(name)
	last := len(t) - 1
	for s, open := range t {
		res[last-s] = Muted
		if !ok {
			continue
		}
	FretLoop:
		for fret := 0; fret <= VoicingMaxFret; fret++ {
			if !c.Contains(tuning.NoteAtFret(open, fret)) {
				continue
			}
			switch {
			case s == 0 && fret > 5:
			case s == last && fret > 5 && strings.Contains(name, "Minor"):
			default:
				res[last-s] = fret
			}
			break FretLoop
		}
	}
	return res
}

// All lists every dictionary chord: each type, in order, on all 12 roots.
func All() []Chord {
	res := make([]Chord, 0, len(Types)*12)
	for _, t := range Types {
		for _, r := range pitch.Names {
			c, _ := Lookup(r + " " + t.Name)
			res = append(res, c)
		}
	}
	return res
}

func Names() []string {
	all := All()
	res := make([]string, len(all))
	for i, c := range all {
		res[i] = c.Name
	}
	return res
}
