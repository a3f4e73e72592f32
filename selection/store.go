package selection

import (
	"sync"

	"github.com/jsphweid/fretdex/tuning"
)

// State is everything needed to draw one fretboard.
type State struct {
	Selection Selection     `json:"selection"`
	Options   Options       `json:"options"`
	Tuning    tuning.Tuning `json:"tuning"`
	NumFrets  int           `json:"numFrets"`
}

// Store owns a State. Select is the only way to change what is selected, so
// a note, a scale and a chord can never be active at the same time.
type Store struct {
	mu    sync.RWMutex
	state State
}

func NewStore() *Store {
	return &Store{state: State{
		Selection: None(),
		Options:   DefaultOptions(),
		Tuning:    append(tuning.Tuning(nil), tuning.Standard...),
		NumFrets:  tuning.DefaultFrets,
	}}
}

func (s *Store) Select(sel Selection) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Selection = sel
}

func (s *Store) Clear() {
	s.Select(None())
}

func (s *Store) SetOptions(o Options) error {
	if err := o.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Options = o.WithDefaults()
	return nil
}

func (s *Store) SetTuning(t tuning.Tuning) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Tuning = append(tuning.Tuning(nil), t...)
}

// SetNumFrets clamps n into range and returns what was stored.
func (s *Store) SetNumFrets(n int) int {
	n = tuning.ClampFrets(n)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.NumFrets = n
	return n
}

// State returns a copy safe to use after the lock is released.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st := s.state
	st.Tuning = append(tuning.Tuning(nil), s.state.Tuning...)
	return st
}
