package perf

import (
	"fmt"

	"github.com/AryanGodara/Koji/fixed"
	"github.com/AryanGodara/Koji/model"
	"github.com/AryanGodara/Koji/util"
)

// Transpose shifts every NoteOn/NoteOff by semitones (down when negative).
// A result outside the 0-127 note domain clamps to the nearest boundary so
// one extreme note never discards the rest of the performance. All other
// events pass through unchanged, in their original positions.
func Transpose(p model.Performance, semitones int) model.Performance {
	out := make(model.Performance, 0, len(p))
	for _, e := range p {
		switch v := e.(type) {
		case model.NoteOn:
			v.Note = transposeNote(v.Note, semitones)
			out = append(out, v)
		case model.NoteOff:
			v.Note = transposeNote(v.Note, semitones)
			out = append(out, v)
		default:
			out = append(out, clone(e))
		}
	}
	return out
}

func transposeNote(note uint8, semitones int) uint8 {
	return uint8(util.Clamp(int(note)+semitones, minNote, maxNote))
}

// Reverse mirrors every note's sounding interval about the total performance
// length. A matched NoteOn/NoteOff pair (same channel and note, most recent
// unmatched on) swaps roles: the on takes the mirrored off time and vice
// versa, so the note still sounds for the same span, now measured from the
// end. Unmatched note events are simply mirrored; non-note events keep their
// original times. Sequence positions never change.
func Reverse(p model.Performance) model.Performance {
	total := length(p)

	type noteKey struct {
		channel uint8
		note    uint8
	}

	// mirrored time for every note event, paired where possible
	mirrored := make(map[int]fixed.Num, len(p))
	open := make(map[noteKey][]int)
	for i, e := range p {
		switch v := e.(type) {
		case model.NoteOn:
			k := noteKey{v.Channel, v.Note}
			open[k] = append(open[k], i)
			mirrored[i] = total.Sub(v.Time)
		case model.NoteOff:
			k := noteKey{v.Channel, v.Note}
			if stack := open[k]; len(stack) > 0 {
				onIdx := stack[len(stack)-1]
				open[k] = stack[:len(stack)-1]
				on := p[onIdx].(model.NoteOn)
				mirrored[onIdx] = total.Sub(v.Time)
				mirrored[i] = total.Sub(on.Time)
			} else {
				mirrored[i] = total.Sub(v.Time)
			}
		}
	}

	out := make(model.Performance, 0, len(p))
	for i, e := range p {
		switch v := e.(type) {
		case model.NoteOn:
			v.Time = mirrored[i]
			out = append(out, v)
		case model.NoteOff:
			v.Time = mirrored[i]
			out = append(out, v)
		default:
			out = append(out, clone(e))
		}
	}
	return out
}

// Quantize snaps every NoteOn/NoteOff time to the nearest multiple of grid
// ticks. Exact halves round toward the later grid line. Non-note events pass
// through unchanged. A zero grid is rejected.
func Quantize(p model.Performance, grid uint32) (model.Performance, error) {
	if grid == 0 {
		return nil, fmt.Errorf("quantize: grid size must be positive: %w", ErrInvalidArgument)
	}
	step := uint64(grid)

	out := make(model.Performance, 0, len(p))
	for _, e := range p {
		switch v := e.(type) {
		case model.NoteOn:
			v.Time = v.Time.RoundToMultiple(step)
			out = append(out, v)
		case model.NoteOff:
			v.Time = v.Time.RoundToMultiple(step)
			out = append(out, v)
		default:
			out = append(out, clone(e))
		}
	}
	return out, nil
}

// ExtractNotes keeps only NoteOn/NoteOff events whose note lies strictly
// between middle C minus noteRange and middle C plus noteRange, with the
// bounds clamped to the 0-127 domain. Every non-note event is dropped: the
// result is a pure note-band filter.
func ExtractNotes(p model.Performance, noteRange uint8) model.Performance {
	lower := util.Clamp(middleC-int(noteRange), minNote, maxNote)
	upper := util.Clamp(middleC+int(noteRange), minNote, maxNote)

	out := make(model.Performance, 0, len(p))
	for _, e := range p {
		switch v := e.(type) {
		case model.NoteOn:
			if int(v.Note) > lower && int(v.Note) < upper {
				out = append(out, v)
			}
		case model.NoteOff:
			if int(v.Note) > lower && int(v.Note) < upper {
				out = append(out, v)
			}
		}
	}
	return out
}

// ChangeNoteDuration multiplies the time of every event by factor, uniformly
// stretching or compressing the whole performance. The optional time of a
// tempo or time-signature event scales when present and stays absent when
// absent. A negative factor is rejected rather than silently reversing time.
func ChangeNoteDuration(p model.Performance, factor fixed.Num) (model.Performance, error) {
	if factor.Neg {
		return nil, fmt.Errorf("change duration: factor must not be negative: %w", ErrInvalidArgument)
	}

	out := make(model.Performance, 0, len(p))
	for _, e := range p {
		switch v := e.(type) {
		case model.NoteOn:
			v.Time = v.Time.Mul(factor)
			out = append(out, v)
		case model.NoteOff:
			v.Time = v.Time.Mul(factor)
			out = append(out, v)
		case model.ControlChange:
			v.Time = v.Time.Mul(factor)
			out = append(out, v)
		case model.PitchWheel:
			v.Time = v.Time.Mul(factor)
			out = append(out, v)
		case model.AfterTouch:
			v.Time = v.Time.Mul(factor)
			out = append(out, v)
		case model.PolyTouch:
			v.Time = v.Time.Mul(factor)
			out = append(out, v)
		case model.SetTempo:
			if v.Time != nil {
				t := v.Time.Mul(factor)
				v.Time = &t
			}
			out = append(out, v)
		case model.TimeSignature:
			if v.Time != nil {
				t := v.Time.Mul(factor)
				v.Time = &t
			}
			out = append(out, v)
		}
	}
	return out, nil
}
