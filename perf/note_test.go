package perf

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AryanGodara/Koji/fixed"
	"github.com/AryanGodara/Koji/model"
)

func on(channel, note, velocity uint8, ticks int64) model.NoteOn {
	return model.NoteOn{Channel: channel, Note: note, Velocity: velocity, Time: fixed.FromInt(ticks)}
}

func off(channel, note uint8, ticks int64) model.NoteOff {
	return model.NoteOff{Channel: channel, Note: note, Velocity: 64, Time: fixed.FromInt(ticks)}
}

func tempoAt(tempo uint32, ticks int64) model.SetTempo {
	t := fixed.FromInt(ticks)
	return model.SetTempo{Tempo: tempo, Time: &t}
}

func TestTransposeShiftsNotesOnly(t *testing.T) {
	p := model.Performance{
		on(0, 60, 100, 0),
		model.ControlChange{Channel: 0, Control: 7, Value: 100, Time: fixed.FromInt(10)},
		off(0, 60, 480),
	}
	got := Transpose(p, 12)

	assert := assert.New(t)
	assert.Equal(on(0, 72, 100, 0), got[0])
	assert.Equal(p[1], got[1])
	assert.Equal(off(0, 72, 480), got[2])
	// input untouched
	assert.Equal(on(0, 60, 100, 0), p[0])
}

func TestTransposeComposes(t *testing.T) {
	p := model.Performance{on(0, 50, 90, 0), off(0, 50, 100), on(1, 72, 80, 50)}
	assert.Equal(t, Transpose(p, 5+7), Transpose(Transpose(p, 5), 7))
}

func TestTransposeClampsAtDomainEdges(t *testing.T) {
	p := model.Performance{on(0, 120, 90, 0), on(0, 5, 90, 0)}

	up := Transpose(p, 20)
	assert.Equal(t, uint8(127), up[0].(model.NoteOn).Note)

	down := Transpose(p, -20)
	assert.Equal(t, uint8(0), down[1].(model.NoteOn).Note)
}

func TestReverseMirrorsNotePairs(t *testing.T) {
	p := model.Performance{
		on(0, 60, 100, 0),
		off(0, 60, 100),
		on(0, 64, 100, 300),
		off(0, 64, 400),
	}
	got := Reverse(p)

	assert := assert.New(t)
	// total length is 400; the first note sounded [0,100] so it now
	// sounds [300,400], still at sequence positions 0 and 1
	assert.Equal(fixed.FromInt(300), got[0].(model.NoteOn).Time)
	assert.Equal(fixed.FromInt(400), got[1].(model.NoteOff).Time)
	assert.Equal(fixed.FromInt(0), got[2].(model.NoteOn).Time)
	assert.Equal(fixed.FromInt(100), got[3].(model.NoteOff).Time)
}

func TestReverseMirrorsUnmatchedNoteEvents(t *testing.T) {
	// a NoteOn with no NoteOff, and a dangling NoteOff, each mirror
	// their own time about the total length
	p := model.Performance{
		on(0, 60, 100, 100),
		off(0, 72, 300),
		on(0, 64, 100, 400),
	}
	got := Reverse(p)

	assert := assert.New(t)
	assert.Equal(fixed.FromInt(300), got[0].(model.NoteOn).Time)
	assert.Equal(fixed.FromInt(100), got[1].(model.NoteOff).Time)
	assert.Equal(fixed.FromInt(0), got[2].(model.NoteOn).Time)
}

func TestReverseKeepsNonNoteEventsInPlace(t *testing.T) {
	cc := model.ControlChange{Channel: 0, Control: 1, Value: 2, Time: fixed.FromInt(50)}
	p := model.Performance{on(0, 60, 100, 0), cc, off(0, 60, 200)}
	got := Reverse(p)
	assert.Equal(t, cc, got[1])
}

func TestQuantizeSnapsNoteTimes(t *testing.T) {
	p := model.Performance{
		on(0, 60, 100, 14),
		off(0, 60, 475),
		model.PitchWheel{Channel: 0, Pitch: 100, Time: fixed.FromInt(13)},
	}
	got, err := Quantize(p, 10)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(fixed.FromInt(10), got[0].(model.NoteOn).Time)
	assert.Equal(fixed.FromInt(480), got[1].(model.NoteOff).Time)
	assert.Equal(fixed.FromInt(13), got[2].(model.PitchWheel).Time)
}

func TestQuantizeHalfTiesRoundLater(t *testing.T) {
	got, err := Quantize(model.Performance{on(0, 60, 100, 15)}, 10)
	assert.NoError(t, err)
	assert.Equal(t, fixed.FromInt(20), got[0].(model.NoteOn).Time)
}

func TestQuantizeRejectsZeroGrid(t *testing.T) {
	_, err := Quantize(model.Performance{on(0, 60, 100, 0)}, 0)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestExtractNotesIsStrictBand(t *testing.T) {
	p := model.Performance{
		on(0, 55, 100, 0),
		on(0, 60, 100, 0),
		on(0, 64, 100, 0),
		tempoAt(500000, 0),
		off(0, 64, 480),
	}
	got := ExtractNotes(p, 5)

	assert := assert.New(t)
	// 55 and 60 sit on the open bounds (55, 65) boundary checks:
	// 55 is excluded, 60 and 64 are inside, 65 would be excluded
	assert.Equal(model.Performance{on(0, 60, 100, 0), on(0, 64, 100, 0), off(0, 64, 480)}, got)
}

func TestExtractNotesZeroRangeIsEmpty(t *testing.T) {
	p := model.Performance{on(0, 60, 100, 0), tempoAt(500000, 0), off(0, 60, 480)}
	assert.Empty(t, ExtractNotes(p, 0))
}

func TestExtractNotesDropsEveryNonNoteEvent(t *testing.T) {
	p := model.Performance{
		model.ControlChange{Channel: 0, Control: 7, Value: 1},
		model.PitchWheel{Channel: 0, Pitch: 5},
		model.AfterTouch{Channel: 0, Value: 9},
		model.PolyTouch{Channel: 0, Note: 61, Value: 9},
		model.SetTempo{Tempo: 500000},
		model.TimeSignature{Numerator: 4, Denominator: 4},
		on(0, 61, 100, 0),
	}
	got := ExtractNotes(p, 4)
	assert.Equal(t, model.Performance{on(0, 61, 100, 0)}, got)
}

func TestChangeNoteDurationIdentity(t *testing.T) {
	p := model.Performance{on(0, 60, 100, 123), off(0, 60, 456), tempoAt(500000, 7)}
	got, err := ChangeNoteDuration(p, fixed.FromInt(1))
	assert.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestChangeNoteDurationScalesEveryTimestamp(t *testing.T) {
	p := model.Performance{
		on(0, 60, 100, 100),
		model.ControlChange{Channel: 0, Control: 7, Value: 1, Time: fixed.FromInt(50)},
		tempoAt(500000, 200),
		off(0, 60, 300),
	}
	got, err := ChangeNoteDuration(p, fixed.FromInt(2))

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(fixed.FromInt(200), got[0].(model.NoteOn).Time)
	assert.Equal(fixed.FromInt(100), got[1].(model.ControlChange).Time)
	assert.Equal(fixed.FromInt(400), *got[2].(model.SetTempo).Time)
	assert.Equal(fixed.FromInt(600), got[3].(model.NoteOff).Time)
}

func TestChangeNoteDurationLeavesAbsentTimesAbsent(t *testing.T) {
	p := model.Performance{model.SetTempo{Tempo: 500000}, model.TimeSignature{Numerator: 3, Denominator: 4}}
	got, err := ChangeNoteDuration(p, fixed.FromInt(4))

	assert := assert.New(t)
	assert.NoError(err)
	assert.Nil(got[0].(model.SetTempo).Time)
	assert.Nil(got[1].(model.TimeSignature).Time)
}

func TestChangeNoteDurationRejectsNegativeFactor(t *testing.T) {
	_, err := ChangeNoteDuration(model.Performance{on(0, 60, 100, 0)}, fixed.FromInt(-1))
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
