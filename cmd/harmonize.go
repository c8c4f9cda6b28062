package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AryanGodara/Koji/midifile"
	"github.com/AryanGodara/Koji/perf"
)

var (
	flagScale   string
	flagTonic   uint8
	flagDegrees []int
)

var scaleTypes = map[string]perf.ScaleType{
	"major":          perf.ScaleMajor,
	"minor":          perf.ScaleMinor,
	"dorian":         perf.ScaleDorian,
	"phrygian":       perf.ScalePhrygian,
	"lydian":         perf.ScaleLydian,
	"mixolydian":     perf.ScaleMixolydian,
	"locrian":        perf.ScaleLocrian,
	"harmonic-minor": perf.ScaleHarmonicMinor,
	"melodic-minor":  perf.ScaleMelodicMinor,
	"chromatic":      perf.ScaleChromatic,
}

func init() {
	harmonizeCmd.Flags().StringVar(&flagScale, "scale", "major", "scale to harmonize within")
	harmonizeCmd.Flags().Uint8Var(&flagTonic, "tonic", 60, "tonic note of the scale")
	harmonizeCmd.Flags().IntSliceVar(&flagDegrees, "degrees", []int{2}, "scale degrees to stack above each note")
	rootCmd.AddCommand(harmonizeCmd)
}

var harmonizeCmd = &cobra.Command{
	Use:   "harmonize <in> <out>",
	Short: "Adds harmony voices to a MIDI file",
	Long:  `Adds harmony voices to a MIDI file`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			panic("Need 2 args...")
		}
		harmonize(args[0], args[1])
	},
}

func harmonize(in, out string) {
	scale, ok := scaleTypes[flagScale]
	if !ok {
		panic("Unknown scale: " + flagScale)
	}

	p, err := midifile.ReadFile(in)
	if err != nil {
		panic("Could not read midi file: " + err.Error())
	}

	p = perf.GenerateHarmony(p, perf.Mode{Tonic: flagTonic, Scale: scale, Degrees: flagDegrees})

	if err := midifile.WriteFile(p, out); err != nil {
		panic("Could not write midi file: " + err.Error())
	}
	fmt.Printf("Wrote %v events to %v\n", len(p), out)
}
