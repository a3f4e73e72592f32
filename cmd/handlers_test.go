package cmd_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jsphweid/fretdex/cmd"
	"github.com/jsphweid/fretdex/db"
	"github.com/jsphweid/fretdex/freq"
	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/overlay"
	"github.com/jsphweid/fretdex/selection"
	"github.com/jsphweid/fretdex/tuner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func do(t *testing.T, h http.Handler, method, target string, body interface{}) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, target, r)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w.Result()
}

func decode(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func newHandler() http.Handler {
	return cmd.NewServer(db.NewMemoryStore(), 0).Handler()
}

func visible(o overlay.Overlay) int {
	n := 0
	for _, row := range o.Cells {
		for _, c := range row {
			if c.Visible {
				n++
			}
		}
	}
	return n
}

func TestCatalogue(t *testing.T) {
	resp := do(t, newHandler(), http.MethodGet, "/catalogue", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var cat model.CatalogueResponse
	decode(t, resp, &cat)
	assert.Len(t, cat.Notes, 12)
	assert.Contains(t, cat.Scales, "C Major")
	assert.Contains(t, cat.Chords, "A Minor Seventh")
	assert.NotEmpty(t, cat.ScaleCategories)
	assert.Equal(t, "Standard", cat.Tunings[0].Name)
}

func TestGrid(t *testing.T) {
	resp := do(t, newHandler(), http.MethodGet, "/grid?frets=12", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var grid model.GridResponse
	decode(t, resp, &grid)
	assert.Equal(t, 12, grid.NumFrets)
	require.Len(t, grid.Grid, 6)
	assert.Len(t, grid.Grid[0], 13)
	assert.Equal(t, "E", grid.Grid[0][0])
	assert.Equal(t, "E", grid.Grid[0][12])
	assert.Equal(t, "F", grid.Grid[0][1])
}

func TestGridDropD(t *testing.T) {
	resp := do(t, newHandler(), http.MethodGet, "/grid?tuning=drop+d", nil)
	var grid model.GridResponse
	decode(t, resp, &grid)
	assert.Equal(t, "D", grid.Grid[0][0])
	assert.Equal(t, 24, grid.NumFrets)
}

func TestGridBadInput(t *testing.T) {
	h := newHandler()
	for _, target := range []string{"/grid?frets=many", "/grid?tuning=Q,R"} {
		resp := do(t, h, http.MethodGet, target, nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, target)
		var e model.ErrorResponse
		decode(t, resp, &e)
		assert.NotEmpty(t, e.Error)
	}
}

func TestScale(t *testing.T) {
	resp := do(t, newHandler(), http.MethodGet, "/scales/C%20Major", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var s model.ScaleResponse
	decode(t, resp, &s)
	assert.Equal(t, []string{"C", "D", "E", "F", "G", "A", "B"}, s.Scale.Notes)
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6", "7"}, s.Degrees)
	require.Len(t, s.Pattern, 6)
	assert.True(t, s.Pattern[0][0])
	assert.False(t, s.Pattern[0][2])
}

func TestScaleTranspose(t *testing.T) {
	resp := do(t, newHandler(), http.MethodGet, "/scales/c%20major?transpose=G", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var s model.ScaleResponse
	decode(t, resp, &s)
	assert.Equal(t, "G Major", s.Scale.Name)
	assert.Equal(t, []string{"G", "A", "B", "C", "D", "E", "F#"}, s.Scale.Notes)
}

func TestScaleUnknown(t *testing.T) {
	resp := do(t, newHandler(), http.MethodGet, "/scales/C%20Bebop", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestChord(t *testing.T) {
	resp := do(t, newHandler(), http.MethodGet, "/chords/C%20Major", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var c model.ChordResponse
	decode(t, resp, &c)
	assert.Equal(t, []string{"C", "E", "G"}, c.Chord.Notes)
	assert.Len(t, c.Positions, 39)
	assert.Equal(t, 0, c.Positions[0].String)
	assert.Equal(t, 0, c.Positions[0].Fret)
	assert.Equal(t, "E", c.Positions[0].Note)
	assert.Len(t, c.Voicing, 6)
	require.Len(t, c.Roles, 3)
	assert.Equal(t, "root", string(c.Roles[0]))
}

func TestChordUnknown(t *testing.T) {
	resp := do(t, newHandler(), http.MethodGet, "/chords/H%20Major", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestFrequency(t *testing.T) {
	resp := do(t, newHandler(), http.MethodGet, "/frequency?note=a&octave=4", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var f model.FrequencyResponse
	decode(t, resp, &f)
	assert.Equal(t, "A", f.Note)
	assert.Equal(t, 440.0, f.Frequency)
	assert.Equal(t, uint8(69), f.MIDIKey)

	resp = do(t, newHandler(), http.MethodGet, "/frequency?note=C", nil)
	decode(t, resp, &f)
	assert.Equal(t, 4, f.Octave)
	assert.InDelta(t, 261.63, f.Frequency, 0.01)
}

func TestFrequencyOctaveRange(t *testing.T) {
	h := newHandler()
	for _, octave := range []string{"1200", "-5", "11"} {
		resp := do(t, h, http.MethodGet, "/frequency?note=A&octave="+octave, nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, octave)
		var e model.ErrorResponse
		decode(t, resp, &e)
		assert.Contains(t, e.Error, "octave", octave)
	}
}

func TestNote(t *testing.T) {
	h := newHandler()
	resp := do(t, h, http.MethodGet, "/note?hz=466.16", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var n freq.TunedNote
	decode(t, resp, &n)
	assert.Equal(t, freq.TunedNote{Note: "A#", Octave: 4, Cents: 0}, n)

	resp = do(t, h, http.MethodGet, "/note?hz=0", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	resp = do(t, h, http.MethodGet, "/note?hz=loud", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestMetronome(t *testing.T) {
	resp := do(t, newHandler(), http.MethodGet, "/metronome?bpm=500&beats=3", nil)
	var body struct {
		Settings struct {
			BPM   int `json:"bpm"`
			Beats int `json:"beats"`
		} `json:"settings"`
		IntervalMs int64 `json:"intervalMs"`
	}
	decode(t, resp, &body)
	assert.Equal(t, 250, body.Settings.BPM)
	assert.Equal(t, 3, body.Settings.Beats)
	assert.Equal(t, int64(240), body.IntervalMs)
}

func TestDetect(t *testing.T) {
	const rate = 44100
	samples := make([]float32, tuner.BufferSize)
	for i := range samples {
		samples[i] = float32(0.5 * math.Sin(2*math.Pi*110*float64(i)/rate))
	}
	h := newHandler()
	resp := do(t, h, http.MethodPost, "/tuner/detect", model.DetectRequest{SampleRate: rate, Samples: samples})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var r tuner.Reading
	decode(t, resp, &r)
	assert.InDelta(t, 110, r.Frequency, 1)
	assert.Equal(t, "A", r.Note.Note)
	assert.Equal(t, 2, r.Note.Octave)
	require.NotNil(t, r.Target)
	assert.Equal(t, 1, r.Target.String)

	resp = do(t, h, http.MethodPost, "/tuner/detect", model.DetectRequest{SampleRate: rate, Samples: make([]float32, tuner.BufferSize)})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestDetectLimits(t *testing.T) {
	h := newHandler()
	samples := make([]float32, tuner.MaxSamples+1)
	for i := range samples {
		samples[i] = float32(0.5 * math.Sin(2*math.Pi*110*float64(i)/44100))
	}
	resp := do(t, h, http.MethodPost, "/tuner/detect", model.DetectRequest{SampleRate: 44100, Samples: samples})
	assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)

	resp = do(t, h, http.MethodPost, "/tuner/detect", model.DetectRequest{SampleRate: len(samples) * 60, Samples: samples[:tuner.BufferSize]})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var e model.ErrorResponse
	decode(t, resp, &e)
	assert.Contains(t, e.Error, "sample rate")
}

func TestOverlay(t *testing.T) {
	sel, ok := selection.Chord("C Major")
	require.True(t, ok)
	resp := do(t, newHandler(), http.MethodPost, "/overlay", model.OverlayRequest{Selection: sel})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var o overlay.Overlay
	decode(t, resp, &o)
	assert.Equal(t, "C", o.Root)
	assert.Equal(t, 39, visible(o))
	assert.Equal(t, "E", o.Cells[0][0].Note)
	assert.Equal(t, "third", string(o.Cells[0][0].Role))
}

func TestOverlayBadOptions(t *testing.T) {
	opts := selection.DefaultOptions()
	opts.NoteColor = "green"
	resp := do(t, newHandler(), http.MethodPost, "/overlay", model.OverlayRequest{Selection: selection.None(), Options: &opts})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSessions(t *testing.T) {
	h := newHandler()
	assert := assert.New(t)

	resp := do(t, h, http.MethodPost, "/sessions", nil)
	assert.Equal(http.StatusCreated, resp.StatusCode)
	var s model.SessionResponse
	decode(t, resp, &s)
	assert.True(s.State.Selection.IsNone())
	base := "/sessions/" + s.ID

	resp = do(t, h, http.MethodPut, base+"/selection", model.SelectRequest{Kind: selection.KindScale, Value: "A Minor"})
	assert.Equal(http.StatusOK, resp.StatusCode)
	decode(t, resp, &s)
	assert.Equal(selection.KindScale, s.State.Selection.Kind())
	assert.Equal("A Minor", s.State.Selection.Value())

	resp = do(t, h, http.MethodPut, base+"/selection", model.SelectRequest{Kind: selection.KindChord, Value: "A Nothing"})
	assert.Equal(http.StatusBadRequest, resp.StatusCode)

	opts := selection.DefaultOptions()
	opts.FretMarkers = selection.MarkersDegrees
	resp = do(t, h, http.MethodPut, base+"/options", opts)
	assert.Equal(http.StatusOK, resp.StatusCode)
	opts.NoteColorMode = "rainbow"
	resp = do(t, h, http.MethodPut, base+"/options", opts)
	assert.Equal(http.StatusBadRequest, resp.StatusCode)

	frets := 12
	resp = do(t, h, http.MethodPut, base+"/tuning", model.TuningRequest{Tuning: "Drop D", NumFrets: &frets})
	assert.Equal(http.StatusOK, resp.StatusCode)
	decode(t, resp, &s)
	assert.Equal("D", s.State.Tuning[0])
	assert.Equal(12, s.State.NumFrets)

	resp = do(t, h, http.MethodGet, base+"/overlay", nil)
	assert.Equal(http.StatusOK, resp.StatusCode)
	var o overlay.Overlay
	decode(t, resp, &o)
	assert.Equal("A", o.Root)
	assert.Equal(12, o.NumFrets)
	assert.Equal("1", o.Cells[1][0].Label)

	resp = do(t, h, http.MethodDelete, base+"/selection", nil)
	assert.Equal(http.StatusOK, resp.StatusCode)
	decode(t, resp, &s)
	assert.True(s.State.Selection.IsNone())
	assert.Equal(12, s.State.NumFrets)

	resp = do(t, h, http.MethodDelete, base, nil)
	assert.Equal(http.StatusNoContent, resp.StatusCode)
	resp = do(t, h, http.MethodGet, base, nil)
	assert.Equal(http.StatusNotFound, resp.StatusCode)
}

func TestSessionEviction(t *testing.T) {
	prefs := db.NewMemoryStore()
	h := cmd.NewServer(prefs, 1).Handler()

	var first, second model.SessionResponse
	decode(t, do(t, h, http.MethodPost, "/sessions", nil), &first)
	resp := do(t, h, http.MethodPut, "/sessions/"+first.ID+"/prefs", db.Prefs{"theme": "dark"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	decode(t, do(t, h, http.MethodPost, "/sessions", nil), &second)
	resp = do(t, h, http.MethodGet, "/sessions/"+first.ID, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp = do(t, h, http.MethodGet, "/sessions/"+second.ID, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	_, err := prefs.Get(context.Background(), first.ID)
	assert.ErrorIs(t, err, db.ErrNotFound)
}

func TestSessionBadID(t *testing.T) {
	resp := do(t, newHandler(), http.MethodGet, "/sessions/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestPrefs(t *testing.T) {
	h := newHandler()
	resp := do(t, h, http.MethodPost, "/sessions", nil)
	var s model.SessionResponse
	decode(t, resp, &s)
	base := "/sessions/" + s.ID + "/prefs"

	var p model.PrefsResponse
	resp = do(t, h, http.MethodGet, base, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &p)
	assert.Empty(t, p.Prefs)

	resp = do(t, h, http.MethodPut, base, db.Prefs{"theme": "dark"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = do(t, h, http.MethodGet, base, nil)
	decode(t, resp, &p)
	assert.Equal(t, db.Prefs{"theme": "dark"}, p.Prefs)
	assert.Equal(t, s.ID, p.ID)
}

func TestCORS(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/catalogue", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	newHandler().ServeHTTP(w, req)
	assert.Equal(t, "*", w.Result().Header.Get("Access-Control-Allow-Origin"))
}
