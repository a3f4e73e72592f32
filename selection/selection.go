// Package selection holds what the fretboard is currently showing: at most one
// note, scale or chord, plus the display options.
package selection

import (
	"encoding/json"
	"strings"

	"github.com/jsphweid/fretdex/chord"
	"github.com/jsphweid/fretdex/pitch"
	"github.com/jsphweid/fretdex/scale"
	"github.com/pkg/errors"
)

type Kind string

const (
	KindNone  Kind = "none"
	KindNote  Kind = "note"
	KindScale Kind = "scale"
	KindChord Kind = "chord"
)

// Selection is a closed union. The zero value is None and the other variants
// can only be made through the constructors below, which validate the value.
type Selection struct {
	kind  Kind
	value string
}

func None() Selection {
	return Selection{}
}

// Note selects a single pitch class. Any spelling is accepted and kept.
func Note(name string) (Selection, bool) {
	name = strings.TrimSpace(name)
	if !pitch.Valid(name) {
		return None(), false
	}
	return Selection{kind: KindNote, value: name}, true
}

func Scale(name string) (Selection, bool) {
	name = strings.TrimSpace(name)
	if _, ok := scale.Resolve(name); !ok {
		return None(), false
	}
	return Selection{kind: KindScale, value: name}, true
}

func Chord(name string) (Selection, bool) {
	name = strings.TrimSpace(name)
	if _, ok := chord.Lookup(name); !ok {
		return None(), false
	}
	return Selection{kind: KindChord, value: name}, true
}

// Parse builds a selection from its kind and value as they arrive over the
// wire. An empty kind, or an empty value, is None.
func Parse(kind Kind, value string) (Selection, error) {
	if kind == "" || kind == KindNone || strings.TrimSpace(value) == "" {
		return None(), nil
	}
	var (
		sel Selection
		ok  bool
	)
	switch kind {
	case KindNote:
		sel, ok = Note(value)
	case KindScale:
		sel, ok = Scale(value)
	case KindChord:
		sel, ok = Chord(value)
	default:
		return None(), errors.Errorf("unknown selection kind %q", kind)
	}
	if !ok {
		return None(), errors.Errorf("unknown %s %q", kind, value)
	}
	return sel, nil
}

func (s Selection) Kind() Kind {
	if s.kind == "" {
		return KindNone
	}
	return s.kind
}

// Value is the name as it was selected, e.g. "Db Major".
func (s Selection) Value() string {
	return s.value
}

func (s Selection) IsNone() bool {
	return s.Kind() == KindNone
}

// Root is the canonical root pitch class, "" for None.
func (s Selection) Root() string {
	switch s.kind {
	case KindNote:
		return pitch.Normalize(s.value)
	case KindScale:
		sc, _ := scale.Resolve(s.value)
		return sc.Root
	case KindChord:
		c, _ := chord.Lookup(s.value)
		return c.Root
	}
	return ""
}

func (s Selection) String() string {
	if s.IsNone() {
		return string(KindNone)
	}
	return string(s.kind) + " " + s.value
}

type wire struct {
	Kind  Kind   `json:"kind"`
	Value string `json:"value,omitempty"`
}

func (s Selection) MarshalJSON() ([]byte, error) {
	return json.Marshal(wire{Kind: s.Kind(), Value: s.value})
}

func (s *Selection) UnmarshalJSON(data []byte) error {
	var w wire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	sel, err := Parse(w.Kind, w.Value)
	if err != nil {
		return err
	}
	*s = sel
	return nil
}
