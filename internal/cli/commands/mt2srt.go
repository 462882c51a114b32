package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aldekeijzer/subalign/internal/core"
)

var mt2srtCmd = &cobra.Command{
	Use:   "mt2srt <template>",
	Short: "Project a timed template's frames onto a translation read from stdin",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		opts := core.DefaultOptions()

		format := core.FormatSRT
		if in, _ := cmd.Flags().GetString("i"); in == "xml" {
			format = core.FormatXML
		}
		if l, _ := cmd.Flags().GetFloat64("l"); cmd.Flags().Changed("l") {
			opts.LengthPenalty = l
		}
		if s, _ := cmd.Flags().GetFloat64("s"); cmd.Flags().Changed("s") {
			opts.NotEosPenalty = s
		}

		out, err := core.RunProjector(args[0], format, os.Stdin, opts)
		if err != nil {
			exitOnError(err)
			return
		}
		fmt.Print(out)
	},
}

func init() {
	mt2srtCmd.Flags().String("i", "srt", "input template format: srt or xml")
	mt2srtCmd.Flags().String("o", "srt", "output format (srt only)")
	mt2srtCmd.Flags().Float64("l", 0.5, "length-limit penalty")
	mt2srtCmd.Flags().Float64("s", 0.5, "non-sentence-end penalty")
}
