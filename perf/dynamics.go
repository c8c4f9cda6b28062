package perf

import (
	"github.com/AryanGodara/Koji/fixed"
	"github.com/AryanGodara/Koji/model"
	"github.com/AryanGodara/Koji/util"
)

// Curve maps a NoteOn to a new velocity. index counts NoteOn events in
// sequence order, total is how many the performance holds, and time is the
// event's timestamp. Results are clamped to the 0-127 velocity domain.
type Curve func(index, total int, time fixed.Num) uint8

// Flat returns a curve that sets every NoteOn to the same velocity.
func Flat(velocity uint8) Curve {
	return func(int, int, fixed.Num) uint8 {
		return velocity
	}
}

// Crescendo returns a linear ramp from the first NoteOn at `from` to the
// last at `to`. It also works as a decrescendo when to < from.
func Crescendo(from, to uint8) Curve {
	return func(index, total int, _ fixed.Num) uint8 {
		if total <= 1 {
			return from
		}
		span := int(to) - int(from)
		return uint8(int(from) + span*index/(total-1))
	}
}

// EditDynamics rewrites the velocity of every NoteOn according to curve.
// NoteOff velocities, all other fields and all other variants are untouched.
// A nil curve returns the performance unchanged.
func EditDynamics(p model.Performance, curve Curve) model.Performance {
	out := make(model.Performance, 0, len(p))
	if curve == nil {
		for _, e := range p {
			out = append(out, clone(e))
		}
		return out
	}

	total := 0
	for _, e := range p {
		if _, ok := e.(model.NoteOn); ok {
			total++
		}
	}

	index := 0
	for _, e := range p {
		if v, ok := e.(model.NoteOn); ok {
			v.Velocity = util.Clamp(curve(index, total, v.Time), minVelocity, maxVelocity)
			index++
			out = append(out, v)
			continue
		}
		out = append(out, clone(e))
	}
	return out
}
