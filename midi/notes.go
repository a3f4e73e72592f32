package midi

import (
	"sort"

	"gitlab.com/gomidi/midi/v2/smf"
)

// Note is one note on or off event with its absolute tick.
type Note struct {
	Tick     uint64
	Key      uint8
	Velocity uint8
	On       bool
}

// Notes collects the note events of every track in time order. A positive
// limit stops each track after that many events.
func Notes(s *smf.SMF, limit int) []Note {
	var res []Note
	for _, track := range s.Tracks {
		var absTicks uint64
		var n int
	TrackEventLoop:
		for _, evt := range track {
			absTicks += uint64(evt.Delta)
			var channel, key, velocity uint8
			switch {
			case evt.Message.GetNoteOn(&channel, &key, &velocity):
				res = append(res, Note{Tick: absTicks, Key: key, Velocity: velocity, On: velocity > 0})
			case evt.Message.GetNoteOff(&channel, &key, &velocity):
				res = append(res, Note{Tick: absTicks, Key: key})
			default:
				continue
			}
			n++
			if limit > 0 && n >= limit {
				break TrackEventLoop
			}
		}
	}
	sort.SliceStable(res, func(i, j int) bool { return res[i].Tick < res[j].Tick })
	return res
}

// Keys lists the keys of the note on events in order.
func Keys(s *smf.SMF) []uint8 {
	var res []uint8
	for _, n := range Notes(s, 0) {
		if n.On {
			res = append(res, n.Key)
		}
	}
	return res
}
