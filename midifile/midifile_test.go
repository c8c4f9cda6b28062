package midifile

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AryanGodara/Koji/fixed"
	"github.com/AryanGodara/Koji/model"
	"github.com/AryanGodara/Koji/perf"
)

func timedTempo(tempo uint32, ticks int64) model.SetTempo {
	t := fixed.FromInt(ticks)
	return model.SetTempo{Tempo: tempo, Time: &t}
}

func TestRoundTripKeepsEngineOutput(t *testing.T) {
	p := model.Performance{
		timedTempo(500000, 0),
		model.NoteOn{Channel: 0, Note: 60, Velocity: 100, Time: fixed.FromInt(0)},
		model.ControlChange{Channel: 0, Control: 7, Value: 90, Time: fixed.FromInt(120)},
		model.NoteOff{Channel: 0, Note: 60, Velocity: 64, Time: fixed.FromInt(480)},
		model.NoteOn{Channel: 1, Note: 64, Velocity: 80, Time: fixed.FromInt(480)},
		model.NoteOff{Channel: 1, Note: 64, Velocity: 64, Time: fixed.FromInt(960)},
	}

	var buf bytes.Buffer
	err := Write(p, &buf)
	assert.NoError(t, err)

	got, err := Read(&buf)
	assert.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestRoundTripPitchAndTouch(t *testing.T) {
	p := model.Performance{
		model.PitchWheel{Channel: 2, Pitch: -4096, Time: fixed.FromInt(0)},
		model.AfterTouch{Channel: 2, Value: 55, Time: fixed.FromInt(10)},
		model.PolyTouch{Channel: 2, Note: 71, Value: 99, Time: fixed.FromInt(20)},
	}

	var buf bytes.Buffer
	err := Write(p, &buf)
	assert.NoError(t, err)

	got, err := Read(&buf)
	assert.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestEncodeRejectsNegativeTimes(t *testing.T) {
	p := model.Performance{
		model.NoteOn{Channel: 0, Note: 60, Velocity: 100, Time: fixed.FromInt(-10)},
	}
	_, err := Encode(p)
	assert.ErrorIs(t, err, perf.ErrOutOfRange)
}

func TestEncodeOrdersByTime(t *testing.T) {
	// stream order differs from time order; the file lays out by time
	p := model.Performance{
		model.NoteOn{Channel: 0, Note: 64, Velocity: 100, Time: fixed.FromInt(480)},
		model.NoteOff{Channel: 0, Note: 64, Velocity: 64, Time: fixed.FromInt(960)},
		model.NoteOn{Channel: 0, Note: 60, Velocity: 100, Time: fixed.FromInt(0)},
		model.NoteOff{Channel: 0, Note: 60, Velocity: 64, Time: fixed.FromInt(480)},
	}

	var buf bytes.Buffer
	err := Write(p, &buf)
	assert.NoError(t, err)

	got, err := Read(&buf)
	assert.NoError(t, err)

	assert.Equal(t, model.Performance{p[2], p[0], p[3], p[1]}, got)
}

func TestTempoConversionIsStableForCommonTempos(t *testing.T) {
	for _, micros := range []uint32{500000, 600000, 400000, 250000} {
		assert.Equal(t, micros, microsPerBeat(bpmFromMicros(micros)), "tempo %d", micros)
	}
}
