package cmd

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/fretdex/chord"
	"github.com/jsphweid/fretdex/db"
	"github.com/jsphweid/fretdex/freq"
	"github.com/jsphweid/fretdex/logging"
	"github.com/jsphweid/fretdex/metronome"
	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/overlay"
	"github.com/jsphweid/fretdex/pitch"
	"github.com/jsphweid/fretdex/scale"
	"github.com/jsphweid/fretdex/selection"
	"github.com/jsphweid/fretdex/tuner"
	"github.com/jsphweid/fretdex/tuning"
	"github.com/pkg/errors"
	"github.com/rs/cors"
)

const maxBodyBytes = 4 << 20

type Server struct {
	sessions *selection.Sessions
	prefs    db.Store
	router   *mux.Router
}

// NewServer keeps at most maxSessions sessions, see selection.NewSessions.
func NewServer(prefs db.Store, maxSessions int) *Server {
	s := &Server{
		sessions: selection.NewSessions(maxSessions),
		prefs:    prefs,
		router:   mux.NewRouter().StrictSlash(true),
	}
	r := s.router
	r.Use(logRequests)
	r.HandleFunc("/catalogue", s.HandleCatalogue).Methods("GET")
	r.HandleFunc("/grid", s.HandleGrid).Methods("GET")
	r.HandleFunc("/scales/{name}", s.HandleScale).Methods("GET")
	r.HandleFunc("/chords/{name}", s.HandleChord).Methods("GET")
	r.HandleFunc("/frequency", s.HandleFrequency).Methods("GET")
	r.HandleFunc("/note", s.HandleNote).Methods("GET")
	r.HandleFunc("/metronome", s.HandleMetronome).Methods("GET")
	r.HandleFunc("/tuner/detect", s.HandleDetect).Methods("POST")
	r.HandleFunc("/overlay", s.HandleOverlay).Methods("POST")

	r.HandleFunc("/sessions", s.HandleCreateSession).Methods("POST")
	r.HandleFunc("/sessions/{id}", s.HandleGetSession).Methods("GET")
	r.HandleFunc("/sessions/{id}", s.HandleDeleteSession).Methods("DELETE")
	r.HandleFunc("/sessions/{id}/selection", s.HandleSelect).Methods("PUT")
	r.HandleFunc("/sessions/{id}/selection", s.HandleClearSelection).Methods("DELETE")
	r.HandleFunc("/sessions/{id}/options", s.HandleOptions).Methods("PUT")
	r.HandleFunc("/sessions/{id}/tuning", s.HandleTuning).Methods("PUT")
	r.HandleFunc("/sessions/{id}/overlay", s.HandleSessionOverlay).Methods("GET")
	r.HandleFunc("/sessions/{id}/prefs", s.HandleGetPrefs).Methods("GET")
	r.HandleFunc("/sessions/{id}/prefs", s.HandlePutPrefs).Methods("PUT")
	return s
}

// Handler is the router wrapped for cross-origin browser clients.
func (s *Server) Handler() http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(s.router)
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logging.Logger.Debug("request", "method", r.Method, "path", r.URL.Path, "took", time.Since(start))
	})
}

// writeJSON encodes before writing the header so an unencodable value turns
// into a 500 instead of an empty 200.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		logging.Logger.Error("could not encode response", "err", err)
		data, _ = json.Marshal(model.ErrorResponse{Error: "could not encode response"})
		status = http.StatusInternalServerError
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(append(data, '\n')); err != nil {
		logging.Logger.Debug("could not write response", "err", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, model.ErrorResponse{Error: err.Error()})
}

func decodeBody(r *http.Request, v interface{}) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return errors.Wrap(err, "could not read request body")
	}
	if err := json.Unmarshal(body, v); err != nil {
		return errors.Wrap(err, "could not unmarshal request body")
	}
	return nil
}

// tuningFromQuery reads the "tuning" and "frets" parameters, both optional.
func tuningFromQuery(r *http.Request) (tuning.Tuning, int, error) {
	q := r.URL.Query()
	t, err := resolveTuning(q.Get("tuning"))
	if err != nil {
		return nil, 0, err
	}
	frets := tuning.DefaultFrets
	if v := q.Get("frets"); v != "" {
		frets, err = strconv.Atoi(v)
		if err != nil {
			return nil, 0, errors.Errorf("bad frets %q", v)
		}
	}
	return t, tuning.ClampFrets(frets), nil
}

func (s *Server) HandleCatalogue(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, model.CatalogueResponse{
		Notes:           pitch.Names[:],
		Scales:          scale.Names(),
		ScaleCategories: scale.Categories(),
		Chords:          chord.Names(),
		Tunings:         tuning.Presets,
		Metronome:       metronome.DefaultSettings(),
	})
}

func (s *Server) HandleGrid(w http.ResponseWriter, r *http.Request) {
	t, frets, err := tuningFromQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, model.GridResponse{Tuning: t, NumFrets: frets, Grid: tuning.Grid(t, frets)})
}

func (s *Server) HandleScale(w http.ResponseWriter, r *http.Request) {
	t, frets, err := tuningFromQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	sc, err := resolveScale(mux.Vars(r)["name"])
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	if to := r.URL.Query().Get("transpose"); to != "" {
		root, err := resolveNote(to)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		if sc, err = resolveScale(root + " " + sc.Type); err != nil {
			writeError(w, http.StatusNotFound, err)
			return
		}
	}
	degrees := make([]string, len(sc.Notes))
	for i, n := range sc.Notes {
		degrees[i] = pitch.Degree(n, sc.Root)
	}
	writeJSON(w, http.StatusOK, model.ScaleResponse{
		Scale:   sc,
		Degrees: degrees,
		Pattern: scale.Pattern(sc.Name, t, frets),
	})
}

func (s *Server) HandleChord(w http.ResponseWriter, r *http.Request) {
	t, frets, err := tuningFromQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	c, err := resolveChord(mux.Vars(r)["name"])
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	roles := make([]chord.Role, len(c.Notes))
	for i := range c.Notes {
		roles[i] = chord.RoleOf(i, c.Type)
	}
	writeJSON(w, http.StatusOK, model.ChordResponse{
		Chord:     c,
		Quality:   c.Quality(),
		Roles:     roles,
		Positions: c.Positions(t, frets),
		Voicing:   chord.Voicing(c.Name, t),
	})
}

func (s *Server) HandleFrequency(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	note, err := resolveNote(q.Get("note"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	octave := freq.A4Octave
	if v := q.Get("octave"); v != "" {
		if octave, err = strconv.Atoi(v); err != nil {
			writeError(w, http.StatusBadRequest, errors.Errorf("bad octave %q", v))
			return
		}
	}
	if !freq.ValidOctave(octave) {
		writeError(w, http.StatusBadRequest, errors.Errorf("octave must be %d..%d", freq.MinOctave, freq.MaxOctave))
		return
	}
	writeJSON(w, http.StatusOK, model.FrequencyResponse{
		Note:      pitch.Normalize(note),
		Octave:    octave,
		Frequency: freq.NoteToFrequency(note, octave),
		MIDIKey:   freq.MIDIKey(note, octave),
	})
}

func (s *Server) HandleNote(w http.ResponseWriter, r *http.Request) {
	v := r.URL.Query().Get("hz")
	hz, err := strconv.ParseFloat(v, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.Errorf("bad frequency %q", v))
		return
	}
	n, ok := freq.FrequencyToNote(hz)
	if !ok {
		writeError(w, http.StatusUnprocessableEntity, errors.Errorf("no note for %v Hz", hz))
		return
	}
	writeJSON(w, http.StatusOK, n)
}

func (s *Server) HandleMetronome(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	settings := metronome.DefaultSettings()
	if v, err := strconv.Atoi(q.Get("bpm")); err == nil {
		settings.BPM = v
	}
	if v, err := strconv.Atoi(q.Get("beats")); err == nil {
		settings.Beats = v
	}
	settings = settings.Clamp()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"settings":   settings,
		"intervalMs": settings.Interval().Milliseconds(),
	})
}

func (s *Server) HandleDetect(w http.ResponseWriter, r *http.Request) {
	var input model.DetectRequest
	if err := decodeBody(r, &input); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if !tuner.ValidSampleRate(input.SampleRate) {
		writeError(w, http.StatusBadRequest, errors.Errorf("sample rate must be %d..%d", tuner.MinSampleRate, tuner.MaxSampleRate))
		return
	}
	if len(input.Samples) > tuner.MaxSamples {
		writeError(w, http.StatusRequestEntityTooLarge, errors.Errorf("at most %d samples", tuner.MaxSamples))
		return
	}
	t, _, err := tuningFromQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	hz, ok := tuner.Detect(input.Samples, input.SampleRate)
	if !ok {
		writeError(w, http.StatusUnprocessableEntity, errors.New("no pitch detected"))
		return
	}
	reading, _ := tuner.Read(hz, t)
	writeJSON(w, http.StatusOK, reading)
}

// HandleOverlay computes an overlay without a session.
func (s *Server) HandleOverlay(w http.ResponseWriter, r *http.Request) {
	var input model.OverlayRequest
	if err := decodeBody(r, &input); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	t, err := resolveTuning(input.Tuning)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	opts := selection.DefaultOptions()
	if input.Options != nil {
		if err := input.Options.Validate(); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		opts = input.Options.WithDefaults()
	}
	frets := tuning.DefaultFrets
	if input.NumFrets != nil {
		frets = tuning.ClampFrets(*input.NumFrets)
	}
	writeJSON(w, http.StatusOK, overlay.Compute(input.Selection, t, frets, opts))
}

func (s *Server) session(w http.ResponseWriter, r *http.Request) (uuid.UUID, *selection.Store, bool) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.New("bad session id"))
		return uuid.Nil, nil, false
	}
	store, ok := s.sessions.Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, errors.New("no such session"))
		return uuid.Nil, nil, false
	}
	return id, store, true
}

func sessionResponse(id uuid.UUID, store *selection.Store) model.SessionResponse {
	return model.SessionResponse{ID: id.String(), State: store.State()}
}

func (s *Server) HandleCreateSession(w http.ResponseWriter, r *http.Request) {
	id, store, evicted := s.sessions.Create()
	if evicted != uuid.Nil {
		logging.Logger.Info("session evicted", "id", evicted)
		if err := s.prefs.Delete(r.Context(), evicted.String()); err != nil {
			logging.Logger.Warn("could not delete preferences", "id", evicted, "err", err)
		}
	}
	logging.Logger.Debug("session created", "id", id, "sessions", s.sessions.Len())
	writeJSON(w, http.StatusCreated, sessionResponse(id, store))
}

func (s *Server) HandleGetSession(w http.ResponseWriter, r *http.Request) {
	id, store, ok := s.session(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse(id, store))
}

func (s *Server) HandleDeleteSession(w http.ResponseWriter, r *http.Request) {
	id, _, ok := s.session(w, r)
	if !ok {
		return
	}
	s.sessions.Delete(id)
	if err := s.prefs.Delete(r.Context(), id.String()); err != nil {
		logging.Logger.Warn("could not delete preferences", "id", id, "err", err)
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) HandleSelect(w http.ResponseWriter, r *http.Request) {
	id, store, ok := s.session(w, r)
	if !ok {
		return
	}
	var input model.SelectRequest
	if err := decodeBody(r, &input); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	sel, err := selection.Parse(input.Kind, input.Value)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	store.Select(sel)
	writeJSON(w, http.StatusOK, sessionResponse(id, store))
}

func (s *Server) HandleClearSelection(w http.ResponseWriter, r *http.Request) {
	id, store, ok := s.session(w, r)
	if !ok {
		return
	}
	store.Clear()
	writeJSON(w, http.StatusOK, sessionResponse(id, store))
}

func (s *Server) HandleOptions(w http.ResponseWriter, r *http.Request) {
	id, store, ok := s.session(w, r)
	if !ok {
		return
	}
	var input selection.Options
	if err := decodeBody(r, &input); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := store.SetOptions(input); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse(id, store))
}

func (s *Server) HandleTuning(w http.ResponseWriter, r *http.Request) {
	id, store, ok := s.session(w, r)
	if !ok {
		return
	}
	var input model.TuningRequest
	if err := decodeBody(r, &input); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if input.Tuning != "" {
		t, err := resolveTuning(input.Tuning)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		store.SetTuning(t)
	}
	if input.NumFrets != nil {
		store.SetNumFrets(*input.NumFrets)
	}
	writeJSON(w, http.StatusOK, sessionResponse(id, store))
}

func (s *Server) HandleSessionOverlay(w http.ResponseWriter, r *http.Request) {
	_, store, ok := s.session(w, r)
	if !ok {
		return
	}
	st := store.State()
	writeJSON(w, http.StatusOK, overlay.Compute(st.Selection, st.Tuning, st.NumFrets, st.Options))
}

func (s *Server) HandleGetPrefs(w http.ResponseWriter, r *http.Request) {
	id, _, ok := s.session(w, r)
	if !ok {
		return
	}
	p, err := s.prefs.Get(r.Context(), id.String())
	if errors.Is(err, db.ErrNotFound) {
		p = db.Prefs{}
	} else if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, model.PrefsResponse{ID: id.String(), Prefs: p})
}

func (s *Server) HandlePutPrefs(w http.ResponseWriter, r *http.Request) {
	id, _, ok := s.session(w, r)
	if !ok {
		return
	}
	var p db.Prefs
	if err := decodeBody(r, &p); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := s.prefs.Put(r.Context(), id.String(), p); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, model.PrefsResponse{ID: id.String(), Prefs: p})
}
