package midi

import (
	"path/filepath"
	"strings"

	"github.com/jsphweid/fretdex/chord"
	"github.com/jsphweid/fretdex/scale"
	"github.com/jsphweid/fretdex/tuning"
	"github.com/pkg/errors"
	"github.com/remeh/sizedwaitgroup"
	"gitlab.com/gomidi/midi/v2/smf"
)

type Result struct {
	Name string
	Path string
	Err  error
}

var fileNamer = strings.NewReplacer("#", "sharp", "♯", "sharp", "♭", "flat", " ", "_", "/", "_")

// FileName is where a chord or scale named name is exported to.
func FileName(name string) string {
	return fileNamer.Replace(strings.TrimSpace(name)) + ".mid"
}

// Build resolves name as a chord first and then as a scale.
func Build(name string, t tuning.Tuning, o Options) (*smf.SMF, error) {
	if c, ok := chord.Lookup(name); ok {
		return Chord(c, t, o), nil
	}
	if s, ok := scale.Resolve(name); ok {
		return Scale(s, o), nil
	}
	return nil, errors.Errorf("no chord or scale named %q", name)
}

// ExportAll writes one file per name into dir using at most workers
// goroutines. Results keep the order of names; the error reports how many
// failed.
func ExportAll(dir string, names []string, t tuning.Tuning, o Options, workers int) ([]Result, error) {
	if workers < 1 {
		workers = 1
	}
	results := make([]Result, len(names))
	swg := sizedwaitgroup.New(workers)
	for i, name := range names {
		swg.Add()
		go func(i int, name string) {
			defer swg.Done()
			res := Result{Name: name, Path: filepath.Join(dir, FileName(name))}
			s, err := Build(name, t, o)
			if err == nil {
				err = WriteFile(res.Path, s)
			}
			res.Err = err
			results[i] = res
		}(i, name)
	}
	swg.Wait()

	var failed int
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	if failed > 0 {
		return results, errors.Errorf("%d of %d exports failed", failed, len(names))
	}
	return results, nil
}
