package model

import "github.com/AryanGodara/Koji/fixed"

// Notes is a set of MIDI note numbers (0-127).
type Notes = []uint8

// Event is one MIDI-style occurrence in a Performance. The variant set is
// closed: every transformation switches exhaustively over all eight variants,
// so adding a variant is a visible obligation everywhere.
type Event interface {
	event()
}

// NoteOn starts a note sounding on a channel.
type NoteOn struct {
	Channel  uint8
	Note     uint8
	Velocity uint8
	Time     fixed.Num
}

// NoteOff ends a note sounding on a channel.
type NoteOff struct {
	Channel  uint8
	Note     uint8
	Velocity uint8
	Time     fixed.Num
}

// ControlChange adjusts a controller value on a channel.
type ControlChange struct {
	Channel uint8
	Control uint8
	Value   uint8
	Time    fixed.Num
}

// PitchWheel bends the pitch of a whole channel.
type PitchWheel struct {
	Channel uint8
	Pitch   int16
	Time    fixed.Num
}

// AfterTouch applies channel-wide pressure.
type AfterTouch struct {
	Channel uint8
	Value   uint8
	Time    fixed.Num
}

// PolyTouch applies pressure to a single held note.
type PolyTouch struct {
	Channel uint8
	Note    uint8
	Value   uint8
	Time    fixed.Num
}

// SetTempo is a global tempo change in microseconds per quarter note.
// Time is optional: nil means the event has no explicit placement on the
// timeline, and time transforms must leave it nil.
type SetTempo struct {
	Tempo uint32
	Time  *fixed.Num
}

// TimeSignature is a global meter change. Time is optional, as for SetTempo.
type TimeSignature struct {
	Numerator      uint8
	Denominator    uint8
	ClocksPerClick uint8
	Time           *fixed.Num
}

func (NoteOn) event()        {}
func (NoteOff) event()       {}
func (ControlChange) event() {}
func (PitchWheel) event()    {}
func (AfterTouch) event()    {}
func (PolyTouch) event()     {}
func (SetTempo) event()      {}
func (TimeSignature) event() {}

// EventTime returns an event's timestamp and whether it has one.
func EventTime(e Event) (fixed.Num, bool) {
	switch v := e.(type) {
	case NoteOn:
		return v.Time, true
	case NoteOff:
		return v.Time, true
	case ControlChange:
		return v.Time, true
	case PitchWheel:
		return v.Time, true
	case AfterTouch:
		return v.Time, true
	case PolyTouch:
		return v.Time, true
	case SetTempo:
		if v.Time != nil {
			return *v.Time, true
		}
	case TimeSignature:
		if v.Time != nil {
			return *v.Time, true
		}
	}
	return fixed.Num{}, false
}
