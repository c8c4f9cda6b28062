package perf

import (
	"sort"

	"github.com/AryanGodara/Koji/fixed"
	"github.com/AryanGodara/Koji/model"
)

// ArpPattern selects the order in which a chord's notes are staggered.
type ArpPattern int

const (
	// ArpUp plays the chord from its lowest note to its highest.
	ArpUp ArpPattern = iota
	// ArpDown plays the chord from its highest note to its lowest.
	ArpDown
	// ArpPendulum alternates from the outside in: lowest, highest,
	// second-lowest, second-highest and so on.
	ArpPendulum
)

// chordKey identifies a chord: NoteOns sharing an onset time and channel.
type chordKey struct {
	channel uint8
	onset   fixed.Num
}

// Arpeggiate detects chords (two or more NoteOns with an identical onset
// time on the same channel) and staggers their notes according to pattern:
// each chord note gets an equal subdivision of the chord's original span,
// sounding one after another instead of simultaneously. Times are reassigned
// in place; sequence positions and all other events are untouched. A chord
// with no matching NoteOff events is left alone. Chords are processed in
// onset order and every NoteOff pairs with at most one chord note, so
// overlapping chords sharing a note still transform deterministically.
func Arpeggiate(p model.Performance, pattern ArpPattern) model.Performance {
	groups := make(map[chordKey][]int)
	var chords []chordKey
	for i, e := range p {
		if v, ok := e.(model.NoteOn); ok {
			k := chordKey{v.Channel, v.Time}
			if _, seen := groups[k]; !seen {
				chords = append(chords, k)
			}
			groups[k] = append(groups[k], i)
		}
	}
	sort.Slice(chords, func(i, j int) bool {
		if c := chords[i].onset.Cmp(chords[j].onset); c != 0 {
			return c < 0
		}
		return chords[i].channel < chords[j].channel
	})

	// new time per rewritten event index
	retimed := make(map[int]fixed.Num)
	claimed := make(map[int]bool)

	for _, key := range chords {
		onIdxs := groups[key]
		if len(onIdxs) < 2 {
			continue
		}

		// pair each chord note with its first unclaimed NoteOff after
		// the onset
		offIdxs := make(map[int]int, len(onIdxs)) // on index -> off index
		end := key.onset
		for _, onIdx := range onIdxs {
			on := p[onIdx].(model.NoteOn)
			for j := onIdx + 1; j < len(p); j++ {
				off, ok := p[j].(model.NoteOff)
				if !ok || claimed[j] || off.Channel != on.Channel || off.Note != on.Note {
					continue
				}
				if !off.Time.Less(key.onset) {
					offIdxs[onIdx] = j
					claimed[j] = true
					if end.Less(off.Time) {
						end = off.Time
					}
				}
				break
			}
		}
		if len(offIdxs) == 0 || !key.onset.Less(end) {
			continue
		}

		ordered := orderChord(p, onIdxs, pattern)
		sub := end.Sub(key.onset).DivUint(uint64(len(ordered)))
		for slot, onIdx := range ordered {
			start := key.onset.Add(sub.MulUint(uint64(slot)))
			retimed[onIdx] = start
			if offIdx, ok := offIdxs[onIdx]; ok {
				retimed[offIdx] = start.Add(sub)
			}
		}
	}

	out := make(model.Performance, 0, len(p))
	for i, e := range p {
		if t, ok := retimed[i]; ok {
			switch v := e.(type) {
			case model.NoteOn:
				v.Time = t
				out = append(out, v)
			case model.NoteOff:
				v.Time = t
				out = append(out, v)
			}
			continue
		}
		out = append(out, clone(e))
	}
	return out
}

// orderChord returns the chord's NoteOn indices in pattern order.
func orderChord(p model.Performance, onIdxs []int, pattern ArpPattern) []int {
	asc := make([]int, len(onIdxs))
	copy(asc, onIdxs)
	sort.Slice(asc, func(i, j int) bool {
		return p[asc[i]].(model.NoteOn).Note < p[asc[j]].(model.NoteOn).Note
	})

	switch pattern {
	case ArpDown:
		for i, j := 0, len(asc)-1; i < j; i, j = i+1, j-1 {
			asc[i], asc[j] = asc[j], asc[i]
		}
		return asc
	case ArpPendulum:
		out := make([]int, 0, len(asc))
		for i, j := 0, len(asc)-1; i <= j; i, j = i+1, j-1 {
			out = append(out, asc[i])
			if i != j {
				out = append(out, asc[j])
			}
		}
		return out
	default:
		return asc
	}
}
