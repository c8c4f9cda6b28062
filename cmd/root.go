package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "koji",
	Short: "Koji transforms MIDI performances",
	Long:  `Koji reads standard MIDI files and applies pure, non-destructive transformations: transpose, quantize, reverse, time-stretch, harmonize, arpeggiate and more.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
