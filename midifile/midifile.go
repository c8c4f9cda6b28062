// Package midifile converts between standard MIDI files and the in-memory
// Performance model. Decoding merges all tracks into one event sequence with
// absolute fixed-point tick times; encoding is its inverse for performances
// produced by the engine.
package midifile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sort"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/AryanGodara/Koji/fixed"
	"github.com/AryanGodara/Koji/model"
	"github.com/AryanGodara/Koji/perf"
)

// TicksPerQuarter is the metric resolution used when encoding.
const TicksPerQuarter = 960

const microsPerMinute = 60_000_000

// ReadFile decodes a MIDI file into a Performance.
func ReadFile(path string) (p model.Performance, e error) {
	// the smf parser panics on some malformed files
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	dat, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading midi file: %w", err)
	}
	s, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return nil, fmt.Errorf("parsing midi file: %w", err)
	}
	return Decode(s), nil
}

// Decode flattens an SMF into a Performance. Tracks are walked in order,
// each with its own absolute tick accumulator; every supported message maps
// onto its event variant and everything else is skipped. Decoded tempo and
// time-signature events always carry an explicit time.
func Decode(s *smf.SMF) model.Performance {
	var p model.Performance

	for _, track := range s.Tracks {
		var absTicks int64
		for _, ev := range track {
			absTicks += int64(ev.Delta)
			t := fixed.FromInt(absTicks)

			var channel, key, velocity, value uint8
			var num, denom, cpc, dsq uint8
			var rel int16
			var abs uint16
			var bpm float64

			switch {
			case ev.Message.GetNoteOn(&channel, &key, &velocity):
				p = append(p, model.NoteOn{Channel: channel, Note: key, Velocity: velocity, Time: t})
			case ev.Message.GetNoteOff(&channel, &key, &velocity):
				p = append(p, model.NoteOff{Channel: channel, Note: key, Velocity: velocity, Time: t})
			case ev.Message.GetControlChange(&channel, &key, &value):
				p = append(p, model.ControlChange{Channel: channel, Control: key, Value: value, Time: t})
			case ev.Message.GetPitchBend(&channel, &rel, &abs):
				p = append(p, model.PitchWheel{Channel: channel, Pitch: rel, Time: t})
			case ev.Message.GetAfterTouch(&channel, &value):
				p = append(p, model.AfterTouch{Channel: channel, Value: value, Time: t})
			case ev.Message.GetPolyAfterTouch(&channel, &key, &value):
				p = append(p, model.PolyTouch{Channel: channel, Note: key, Value: value, Time: t})
			case ev.Message.GetMetaTempo(&bpm):
				tc := t
				p = append(p, model.SetTempo{Tempo: microsPerBeat(bpm), Time: &tc})
			case ev.Message.GetMetaTimeSig(&num, &denom, &cpc, &dsq):
				tc := t
				p = append(p, model.TimeSignature{Numerator: num, Denominator: denom, ClocksPerClick: cpc, Time: &tc})
			}
		}
	}
	return p
}

// Encode renders a Performance as a single-track SMF at TicksPerQuarter
// resolution. Events are laid out in time order; meta events without an
// explicit placement are emitted at tick zero before everything else. A
// negative timestamp cannot be expressed in a MIDI file and is rejected.
func Encode(p model.Performance) (*smf.SMF, error) {
	type timed struct {
		tick int64
		msg  midi.Message
	}

	var events []timed
	for _, e := range p {
		tick := int64(0)
		if t, ok := model.EventTime(e); ok {
			if t.Neg && !t.IsZero() {
				return nil, fmt.Errorf("encode: negative event time: %w", perf.ErrOutOfRange)
			}
			tick = t.RoundInt()
		}

		var msg midi.Message
		switch v := e.(type) {
		case model.NoteOn:
			msg = midi.NoteOn(v.Channel, v.Note, v.Velocity)
		case model.NoteOff:
			msg = midi.NoteOffVelocity(v.Channel, v.Note, v.Velocity)
		case model.ControlChange:
			msg = midi.ControlChange(v.Channel, v.Control, v.Value)
		case model.PitchWheel:
			msg = midi.Pitchbend(v.Channel, v.Pitch)
		case model.AfterTouch:
			msg = midi.AfterTouch(v.Channel, v.Value)
		case model.PolyTouch:
			msg = midi.PolyAfterTouch(v.Channel, v.Note, v.Value)
		case model.SetTempo:
			msg = midi.Message(smf.MetaTempo(bpmFromMicros(v.Tempo)))
		case model.TimeSignature:
			msg = midi.Message(smf.MetaTimeSig(v.Numerator, v.Denominator, v.ClocksPerClick, 8))
		}
		events = append(events, timed{tick: tick, msg: msg})
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].tick < events[j].tick
	})

	s := smf.New()
	s.TimeFormat = smf.MetricTicks(TicksPerQuarter)

	var tr smf.Track
	var prev int64
	for _, ev := range events {
		tr.Add(uint32(ev.tick-prev), ev.msg)
		prev = ev.tick
	}
	tr.Close(0)
	if err := s.Add(tr); err != nil {
		return nil, fmt.Errorf("encode: adding track: %w", err)
	}
	return s, nil
}

// WriteFile encodes a Performance and writes it to path.
func WriteFile(p model.Performance, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating midi file: %w", err)
	}
	defer f.Close()
	return Write(p, f)
}

// Write encodes a Performance to a writer.
func Write(p model.Performance, w io.Writer) error {
	s, err := Encode(p)
	if err != nil {
		return err
	}
	if _, err := s.WriteTo(w); err != nil {
		return fmt.Errorf("writing midi stream: %w", err)
	}
	return nil
}

// Read decodes a Performance from a reader.
func Read(r io.Reader) (p model.Performance, e error) {
	defer func() {
		if rec, ok := recover().(string); ok {
			e = errors.New(rec)
		}
	}()

	s, err := smf.ReadFrom(r)
	if err != nil {
		return nil, fmt.Errorf("parsing midi stream: %w", err)
	}
	return Decode(s), nil
}

func microsPerBeat(bpm float64) uint32 {
	if bpm <= 0 {
		return 0
	}
	return uint32(math.Round(microsPerMinute / bpm))
}

func bpmFromMicros(micros uint32) float64 {
	if micros == 0 {
		return 0
	}
	return microsPerMinute / float64(micros)
}
