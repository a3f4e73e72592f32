package cmd

import (
	"strings"

	"github.com/jsphweid/fretdex/chord"
	"github.com/jsphweid/fretdex/pitch"
	"github.com/jsphweid/fretdex/scale"
	"github.com/jsphweid/fretdex/tuning"
	"github.com/pkg/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Casers keep state, so each call gets its own.
func fold(s string) string  { return cases.Fold().String(s) }
func title(s string) string { return cases.Title(language.Und).String(s) }

// resolveTuning accepts a preset name in any case or a list of open strings.
func resolveTuning(s string) (tuning.Tuning, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return tuning.Standard, nil
	}
	for _, p := range tuning.Presets {
		if fold(p.Name) == fold(s) {
			return p.Tuning, nil
		}
	}
	t, ok := tuning.Parse(title(s))
	if !ok {
		return nil, errors.Errorf("unknown tuning %q", s)
	}
	return t, nil
}

// canonicalName fixes the case of "<root> <type>" typed by hand, e.g.
// "bb minor seventh" becomes "Bb Minor Seventh". Types are matched
// case-insensitively against types; the root keeps its spelling.
func canonicalName(input string, types []string) (string, bool) {
	root, typ, ok := pitch.SplitName(strings.Join(strings.Fields(input), " "))
	if !ok {
		return "", false
	}
	root = title(root)
	if !pitch.Valid(root) {
		return "", false
	}
	for _, t := range types {
		if fold(t) == fold(typ) {
			return root + " " + t, true
		}
	}
	return "", false
}

func scaleTypeNames() []string {
	res := make([]string, len(scale.Types))
	for i, t := range scale.Types {
		res[i] = t.Name
	}
	return res
}

func chordTypeNames() []string {
	res := make([]string, len(chord.Types))
	for i, t := range chord.Types {
		res[i] = t.Name
	}
	return res
}

func resolveScale(input string) (scale.Scale, error) {
	if name, ok := canonicalName(input, scaleTypeNames()); ok {
		if s, ok := scale.Resolve(name); ok {
			return s, nil
		}
	}
	return scale.Scale{}, errors.Errorf("unknown scale %q", input)
}

func resolveChord(input string) (chord.Chord, error) {
	if name, ok := canonicalName(input, chordTypeNames()); ok {
		if c, ok := chord.Lookup(name); ok {
			return c, nil
		}
	}
	return chord.Chord{}, errors.Errorf("unknown chord %q", input)
}

func resolveNote(input string) (string, error) {
	n := title(strings.TrimSpace(input))
	if !pitch.Valid(n) {
		return "", errors.Errorf("unknown note %q", input)
	}
	return n, nil
}
