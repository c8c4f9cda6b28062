package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AryanGodara/Koji/midifile"
	"github.com/AryanGodara/Koji/perf"
)

var flagPattern string

var arpPatterns = map[string]perf.ArpPattern{
	"up":       perf.ArpUp,
	"down":     perf.ArpDown,
	"pendulum": perf.ArpPendulum,
}

func init() {
	arpeggiateCmd.Flags().StringVar(&flagPattern, "pattern", "up", "arpeggio order: up, down or pendulum")
	rootCmd.AddCommand(arpeggiateCmd)
}

var arpeggiateCmd = &cobra.Command{
	Use:   "arpeggiate <in> <out>",
	Short: "Breaks chords into arpeggios",
	Long:  `Breaks chords into arpeggios`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			panic("Need 2 args...")
		}
		arpeggiate(args[0], args[1])
	},
}

func arpeggiate(in, out string) {
	pattern, ok := arpPatterns[flagPattern]
	if !ok {
		panic("Unknown pattern: " + flagPattern)
	}

	p, err := midifile.ReadFile(in)
	if err != nil {
		panic("Could not read midi file: " + err.Error())
	}

	p = perf.Arpeggiate(p, pattern)

	if err := midifile.WriteFile(p, out); err != nil {
		panic("Could not write midi file: " + err.Error())
	}
	fmt.Printf("Wrote %v events to %v\n", len(p), out)
}
