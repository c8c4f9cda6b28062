package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AryanGodara/Koji/midifile"
	"github.com/AryanGodara/Koji/model"
	"github.com/AryanGodara/Koji/perf"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Prints the events of a MIDI file",
	Long:  `Prints the events of a MIDI file`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		inspect(args[0])
	},
}

func inspect(path string) {
	p, err := midifile.ReadFile(path)
	if err != nil {
		panic("Could not read midi file: " + err.Error())
	}

	for i, e := range p {
		fmt.Printf("%5d: %s\n", i, describe(e))
	}
	fmt.Printf("events: %v\n", len(p))
	fmt.Printf("effective tempo: %v us/beat\n", perf.BPM(p))
}

func describe(e model.Event) string {
	switch v := e.(type) {
	case model.NoteOn:
		return fmt.Sprintf("note on  ch=%d note=%d vel=%d t=%d", v.Channel, v.Note, v.Velocity, v.Time.Int())
	case model.NoteOff:
		return fmt.Sprintf("note off ch=%d note=%d vel=%d t=%d", v.Channel, v.Note, v.Velocity, v.Time.Int())
	case model.ControlChange:
		return fmt.Sprintf("control  ch=%d cc=%d val=%d t=%d", v.Channel, v.Control, v.Value, v.Time.Int())
	case model.PitchWheel:
		return fmt.Sprintf("pitch    ch=%d bend=%d t=%d", v.Channel, v.Pitch, v.Time.Int())
	case model.AfterTouch:
		return fmt.Sprintf("touch    ch=%d val=%d t=%d", v.Channel, v.Value, v.Time.Int())
	case model.PolyTouch:
		return fmt.Sprintf("polytch  ch=%d note=%d val=%d t=%d", v.Channel, v.Note, v.Value, v.Time.Int())
	case model.SetTempo:
		if v.Time != nil {
			return fmt.Sprintf("tempo    %d us/beat t=%d", v.Tempo, v.Time.Int())
		}
		return fmt.Sprintf("tempo    %d us/beat", v.Tempo)
	case model.TimeSignature:
		if v.Time != nil {
			return fmt.Sprintf("meter    %d/%d t=%d", v.Numerator, v.Denominator, v.Time.Int())
		}
		return fmt.Sprintf("meter    %d/%d", v.Numerator, v.Denominator)
	}
	return "unknown"
}
