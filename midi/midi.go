// Package midi writes scales and chords as Standard MIDI Files and reads them
// back.
package midi

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2/smf"
)

// ReadFile parses a MIDI file. The smf reader can panic on malformed input,
// so panics are turned into errors.
func ReadFile(path string) (s *smf.SMF, e error) {
	defer func() {
		if r := recover(); r != nil {
			s, e = nil, errors.Errorf("could not parse midi file %s: %v", path, r)
		}
	}()

	dat, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "could not read midi file")
	}
	return Read(bytes.NewReader(dat))
}

func Read(r io.Reader) (*smf.SMF, error) {
	res, err := smf.ReadFrom(r)
	if err != nil {
		return nil, errors.Wrap(err, "could not parse midi")
	}
	return res, nil
}

func Write(w io.Writer, s *smf.SMF) error {
	if _, err := s.WriteTo(w); err != nil {
		return errors.Wrap(err, "could not write midi")
	}
	return nil
}

func WriteFile(path string, s *smf.SMF) error {
	var buf bytes.Buffer
	if err := Write(&buf, s); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return errors.Wrapf(err, "could not write %s", path)
	}
	return nil
}
