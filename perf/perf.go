// Package perf implements the transformation and analysis operations of the
// engine. Every operation reads a Performance and builds a brand-new event
// sequence for its result; inputs are never mutated and never alias outputs,
// so chaining operations and calling them from concurrent goroutines is safe
// without locking.
package perf

import (
	"errors"

	"github.com/AryanGodara/Koji/fixed"
	"github.com/AryanGodara/Koji/model"
)

var (
	// ErrNotSupported marks an operation that is not implemented.
	ErrNotSupported = errors.New("operation not supported")

	// ErrOutOfRange marks a value that would leave its numeric domain.
	ErrOutOfRange = errors.New("value out of range")

	// ErrInvalidArgument marks a structurally invalid caller parameter.
	ErrInvalidArgument = errors.New("invalid argument")
)

const (
	minNote = 0
	maxNote = 127

	minVelocity = 0
	maxVelocity = 127

	middleC = 60
)

// clone deep-copies an event so that an output sequence never shares the
// optional time pointer of a meta event with its input.
func clone(e model.Event) model.Event {
	switch v := e.(type) {
	case model.SetTempo:
		if v.Time != nil {
			t := *v.Time
			v.Time = &t
		}
		return v
	case model.TimeSignature:
		if v.Time != nil {
			t := *v.Time
			v.Time = &t
		}
		return v
	default:
		// all other variants are plain values
		return e
	}
}

// length returns the largest timestamp carried by any event in p.
func length(p model.Performance) fixed.Num {
	var max fixed.Num
	for _, e := range p {
		if t, ok := model.EventTime(e); ok && max.Less(t) {
			max = t
		}
	}
	return max
}
