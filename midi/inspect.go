package midi

import (
	"github.com/jsphweid/fretdex/chord"
	"github.com/jsphweid/fretdex/pitch"
	"github.com/jsphweid/fretdex/scale"
	"github.com/jsphweid/fretdex/util"
)

// PitchClasses lists the distinct pitch classes of keys, from C up.
func PitchClasses(keys []uint8) []string {
	seen := make(map[int]bool)
	for _, k := range keys {
		seen[int(k)%12] = true
	}
	idx := util.GetKeys(seen)
	res := make([]string, len(idx))
	for i, n := range idx {
		res[i] = pitch.Names[n]
	}
	return res
}

// Chords names the dictionary chords made of exactly these pitch classes.
func Chords(classes []string) []string {
	var res []string
	for _, c := range chord.All() {
		if len(c.Notes) != len(classes) {
			continue
		}
		if containsAll(c.Contains, classes) {
			res = append(res, c.Name)
		}
	}
	return res
}

// Scales names the dictionary scales that hold every one of these pitch
// classes.
func Scales(classes []string) []string {
	if len(classes) == 0 {
		return nil
	}
	var res []string
	for _, s := range scale.All() {
		if containsAll(s.Contains, classes) {
			res = append(res, s.Name)
		}
	}
	return res
}

func containsAll(contains func(string) bool, notes []string) bool {
	for _, n := range notes {
		if !contains(n) {
			return false
		}
	}
	return true
}
