package perf

import "github.com/AryanGodara/Koji/model"

// BPM returns the tempo of the last SetTempo event in sequence order, i.e.
// the effective tempo after all tempo changes have applied, or 0 when the
// performance carries no tempo event at all.
func BPM(p model.Performance) uint32 {
	var tempo uint32
	for _, e := range p {
		if v, ok := e.(model.SetTempo); ok {
			tempo = v.Tempo
		}
	}
	return tempo
}
