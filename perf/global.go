package perf

import (
	"github.com/AryanGodara/Koji/instrument"
	"github.com/AryanGodara/Koji/model"
)

// ChangeTempo rewrites the tempo of every SetTempo event to newTempo,
// leaving its placement untouched. All other events pass through. When no
// SetTempo event exists the performance comes back unchanged; the operation
// never inserts one.
func ChangeTempo(p model.Performance, newTempo uint32) model.Performance {
	out := make(model.Performance, 0, len(p))
	for _, e := range p {
		if v, ok := e.(model.SetTempo); ok {
			v.Tempo = newTempo
			if v.Time != nil {
				t := *v.Time
				v.Time = &t
			}
			out = append(out, v)
			continue
		}
		out = append(out, clone(e))
	}
	return out
}

// RemapInstruments replaces the value of every ControlChange on the given
// channel with the next program inside the same General MIDI family, wrapping
// from a family's last member back to its first. Control changes on other
// channels and all other variants pass through unmodified.
func RemapInstruments(p model.Performance, channel uint8) model.Performance {
	out := make(model.Performance, 0, len(p))
	for _, e := range p {
		if v, ok := e.(model.ControlChange); ok && v.Channel == channel {
			v.Value = instrument.NextInFamily(v.Value)
			out = append(out, v)
			continue
		}
		out = append(out, clone(e))
	}
	return out
}

// SetMessage inserts msg into the performance, keeping ascending time order
// among timed events. An existing event with matching identity at the same
// timeline slot is replaced in place instead. A timeless message replaces
// its identity match or else is appended after everything.
func SetMessage(p model.Performance, msg model.Event) model.Performance {
	replaceAt := -1
	for i, e := range p {
		if sameIdentity(e, msg) {
			replaceAt = i
			break
		}
	}

	insertAt := len(p)
	if replaceAt < 0 {
		if msgTime, ok := model.EventTime(msg); ok {
			for i, e := range p {
				if t, ok := model.EventTime(e); ok && msgTime.Less(t) {
					insertAt = i
					break
				}
			}
		}
	}

	out := make(model.Performance, 0, len(p)+1)
	for i, e := range p {
		if i == replaceAt {
			out = append(out, clone(msg))
			continue
		}
		if i == insertAt {
			out = append(out, clone(msg))
		}
		out = append(out, clone(e))
	}
	if replaceAt < 0 && insertAt == len(p) {
		out = append(out, clone(msg))
	}
	return out
}

// sameIdentity reports whether two events occupy the same timeline slot:
// same variant, same channel and key fields, and an equal timestamp.
func sameIdentity(a, b model.Event) bool {
	at, aok := model.EventTime(a)
	bt, bok := model.EventTime(b)
	if aok != bok || (aok && at.Cmp(bt) != 0) {
		return false
	}
	switch av := a.(type) {
	case model.NoteOn:
		bv, ok := b.(model.NoteOn)
		return ok && av.Channel == bv.Channel && av.Note == bv.Note
	case model.NoteOff:
		bv, ok := b.(model.NoteOff)
		return ok && av.Channel == bv.Channel && av.Note == bv.Note
	case model.ControlChange:
		bv, ok := b.(model.ControlChange)
		return ok && av.Channel == bv.Channel && av.Control == bv.Control
	case model.PitchWheel:
		bv, ok := b.(model.PitchWheel)
		return ok && av.Channel == bv.Channel
	case model.AfterTouch:
		bv, ok := b.(model.AfterTouch)
		return ok && av.Channel == bv.Channel
	case model.PolyTouch:
		bv, ok := b.(model.PolyTouch)
		return ok && av.Channel == bv.Channel && av.Note == bv.Note
	case model.SetTempo:
		_, ok := b.(model.SetTempo)
		return ok
	case model.TimeSignature:
		_, ok := b.(model.TimeSignature)
		return ok
	}
	return false
}
