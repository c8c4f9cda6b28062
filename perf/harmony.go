package perf

import (
	"github.com/AryanGodara/Koji/model"
	"github.com/AryanGodara/Koji/util"
)

// ScaleType selects the interval pattern a Mode harmonizes within.
type ScaleType int

const (
	ScaleMajor ScaleType = iota
	ScaleMinor
	ScaleDorian
	ScalePhrygian
	ScaleLydian
	ScaleMixolydian
	ScaleLocrian
	ScaleHarmonicMinor
	ScaleMelodicMinor
	ScaleChromatic
)

// pitch classes relative to the tonic
var scaleSteps = map[ScaleType][]int{
	ScaleMajor:         {0, 2, 4, 5, 7, 9, 11},
	ScaleMinor:         {0, 2, 3, 5, 7, 8, 10},
	ScaleDorian:        {0, 2, 3, 5, 7, 9, 10},
	ScalePhrygian:      {0, 1, 3, 5, 7, 8, 10},
	ScaleLydian:        {0, 2, 4, 6, 7, 9, 11},
	ScaleMixolydian:    {0, 2, 4, 5, 7, 9, 10},
	ScaleLocrian:       {0, 1, 3, 5, 6, 8, 10},
	ScaleHarmonicMinor: {0, 2, 3, 5, 7, 8, 11},
	ScaleMelodicMinor:  {0, 2, 3, 5, 7, 9, 11},
	ScaleChromatic:     {0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
}

// Mode describes a harmony: a tonic, a scale, and the ordered scale-degree
// offsets to stack above each melody note. Degrees of {2} add a diatonic
// third, {2, 4} a full triad.
type Mode struct {
	Tonic   uint8
	Scale   ScaleType
	Degrees []int
}

// GenerateHarmony adds harmony voices to every NoteOn/NoteOff: one extra
// note event per configured degree, at the scale-degree interval above the
// original pitch, sharing the original's channel, velocity and timing. The
// originals are kept; harmony copies are inserted right after them. An empty
// or unknown mode returns the performance unchanged.
func GenerateHarmony(p model.Performance, m Mode) model.Performance {
	steps, ok := scaleSteps[m.Scale]
	if !ok || len(m.Degrees) == 0 {
		out := make(model.Performance, 0, len(p))
		for _, e := range p {
			out = append(out, clone(e))
		}
		return out
	}

	out := make(model.Performance, 0, len(p)*(1+len(m.Degrees)))
	for _, e := range p {
		switch v := e.(type) {
		case model.NoteOn:
			out = append(out, v)
			for _, d := range m.Degrees {
				h := v
				h.Note = harmonyNote(v.Note, m.Tonic, steps, d)
				out = append(out, h)
			}
		case model.NoteOff:
			out = append(out, v)
			for _, d := range m.Degrees {
				h := v
				h.Note = harmonyNote(v.Note, m.Tonic, steps, d)
				out = append(out, h)
			}
		default:
			out = append(out, clone(e))
		}
	}
	return out
}

// harmonyNote moves note up by `degree` steps of the scale rooted at tonic.
// The melody note snaps to the nearest scale degree at or below its pitch
// class before stepping, so out-of-scale melody notes still harmonize.
func harmonyNote(note uint8, tonic uint8, steps []int, degree int) uint8 {
	if degree <= 0 {
		return note
	}

	rel := int(note) - int(tonic)
	pc := ((rel % 12) + 12) % 12

	base := 0
	for i, s := range steps {
		if s <= pc {
			base = i
		}
	}

	target := base + degree
	interval := steps[target%len(steps)] + 12*(target/len(steps)) - steps[base]

	return uint8(util.Clamp(int(note)+interval, minNote, maxNote))
}
