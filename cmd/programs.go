package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AryanGodara/Koji/instrument"
)

func init() {
	rootCmd.AddCommand(programsCmd)
}

var programsCmd = &cobra.Command{
	Use:   "programs",
	Short: "Lists the General MIDI instrument table",
	Long:  `Lists the General MIDI instrument table`,
	Run: func(cmd *cobra.Command, args []string) {
		for p := 0; p < instrument.NumPrograms; p++ {
			_, family := instrument.Family(uint8(p))
			fmt.Printf("%3d  %-24s %s\n", p, instrument.Name(uint8(p)), family)
		}
	},
}
