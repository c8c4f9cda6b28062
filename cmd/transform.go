package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AryanGodara/Koji/fixed"
	"github.com/AryanGodara/Koji/midifile"
	"github.com/AryanGodara/Koji/model"
	"github.com/AryanGodara/Koji/perf"
)

var (
	flagTranspose int
	flagQuantize  uint32
	flagStretch   string
	flagTempo     uint32
	flagReverse   bool
	flagExtract   int
	flagRemap     int
)

func init() {
	transformCmd.Flags().IntVar(&flagTranspose, "transpose", 0, "shift notes by this many semitones")
	transformCmd.Flags().Uint32Var(&flagQuantize, "quantize", 0, "snap note times to this grid in ticks")
	transformCmd.Flags().StringVar(&flagStretch, "stretch", "", "scale all times by this factor, e.g. 2 or 3/2")
	transformCmd.Flags().Uint32Var(&flagTempo, "tempo", 0, "rewrite all tempo events to this value (us per beat)")
	transformCmd.Flags().BoolVar(&flagReverse, "reverse", false, "mirror the performance in time")
	transformCmd.Flags().IntVar(&flagExtract, "extract", -1, "keep only notes within this range of middle C")
	transformCmd.Flags().IntVar(&flagRemap, "remap", -1, "remap control-change programs on this channel")
	rootCmd.AddCommand(transformCmd)
}

var transformCmd = &cobra.Command{
	Use:   "transform <in> <out>",
	Short: "Applies transformations to a MIDI file",
	Long:  `Applies transformations to a MIDI file. The selected operations run in a fixed order: extract, transpose, remap, stretch, quantize, reverse, tempo.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			panic("Need 2 args...")
		}
		transform(args[0], args[1])
	},
}

func transform(in, out string) {
	p, err := midifile.ReadFile(in)
	if err != nil {
		panic("Could not read midi file: " + err.Error())
	}

	p = applyFlags(p)

	if err := midifile.WriteFile(p, out); err != nil {
		panic("Could not write midi file: " + err.Error())
	}
	fmt.Printf("Wrote %v events to %v\n", len(p), out)
}

func applyFlags(p model.Performance) model.Performance {
	var err error

	if flagExtract >= 0 {
		p = perf.ExtractNotes(p, uint8(flagExtract))
	}
	if flagTranspose != 0 {
		p = perf.Transpose(p, flagTranspose)
	}
	if flagRemap >= 0 {
		p = perf.RemapInstruments(p, uint8(flagRemap))
	}
	if flagStretch != "" {
		factor, ferr := parseFactor(flagStretch)
		if ferr != nil {
			panic("Bad stretch factor: " + ferr.Error())
		}
		p, err = perf.ChangeNoteDuration(p, factor)
		if err != nil {
			panic("Could not stretch: " + err.Error())
		}
	}
	if flagQuantize > 0 {
		p, err = perf.Quantize(p, flagQuantize)
		if err != nil {
			panic("Could not quantize: " + err.Error())
		}
	}
	if flagReverse {
		p = perf.Reverse(p)
	}
	if flagTempo > 0 {
		p = perf.ChangeTempo(p, flagTempo)
	}
	return p
}

// parseFactor reads an exact scale factor written as an integer or a
// rational like 3/2, so CLI input never passes through floating point.
func parseFactor(s string) (fixed.Num, error) {
	num, den, found := strings.Cut(s, "/")
	n, err := strconv.ParseInt(num, 10, 32)
	if err != nil {
		return fixed.Num{}, fmt.Errorf("parsing factor %q: %w", s, err)
	}
	if !found {
		return fixed.FromInt(n), nil
	}
	d, err := strconv.ParseUint(den, 10, 32)
	if err != nil || d == 0 {
		return fixed.Num{}, fmt.Errorf("parsing factor denominator %q", s)
	}
	return fixed.FromInt(n).DivUint(d), nil
}
