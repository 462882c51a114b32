package commands

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/aldekeijzer/subalign/internal/config"
	"github.com/aldekeijzer/subalign/internal/core"
)

var srtalignCmd = &cobra.Command{
	Use:   "srtalign <source.xml> <target.xml>",
	Short: "Align two timed subtitle documents by temporal overlap",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		opts := core.DefaultOptions()
		settings, _ := config.LoadSettings()

		srcLang, _ := cmd.Flags().GetString("S")
		trgLang, _ := cmd.Flags().GetString("T")
		if threshold, _ := cmd.Flags().GetFloat64("c"); cmd.Flags().Changed("c") {
			opts.CognateThreshold = threshold
		}
		if crange, _ := cmd.Flags().GetFloat64("r"); cmd.Flags().Changed("r") {
			opts.CognateRange = crange
		} else if settings.CognateRange > 0 {
			opts.CognateRange = settings.CognateRange
		}
		if minlen, _ := cmd.Flags().GetInt("l"); cmd.Flags().Changed("l") {
			opts.MinMatchLength = minlen
		}
		if tokLen, _ := cmd.Flags().GetInt("i"); cmd.Flags().Changed("i") {
			opts.MinTokenLength = tokLen
		}
		if window, _ := cmd.Flags().GetInt("w"); cmd.Flags().Changed("w") {
			opts.Window = window
		} else if settings.Window > 0 {
			opts.Window = settings.Window
		}
		dicFile, _ := cmd.Flags().GetString("d")
		opts.UpperCaseOnly, _ = cmd.Flags().GetBool("u")
		opts.CharSetRegex, _ = cmd.Flags().GetString("s")
		opts.UseWordFreq, _ = cmd.Flags().GetBool("q")
		opts.BestAlign, _ = cmd.Flags().GetBool("b")
		if cap, _ := cmd.Flags().GetInt("p"); cmd.Flags().Changed("p") {
			opts.MaxMatches = cap
		} else if settings.MaxMatches > 0 {
			opts.MaxMatches = settings.MaxMatches
		}
		if max, _ := cmd.Flags().GetInt("m"); cmd.Flags().Changed("m") {
			opts.MaxMatches = max
		}
		opts.Fallback, _ = cmd.Flags().GetString("f")
		if opts.Fallback == "" {
			opts.Fallback = settings.Fallback
		}
		opts.Proportion, _ = cmd.Flags().GetBool("P")
		opts.Verbose, _ = cmd.Flags().GetBool("v")

		dicDir := dicFile
		if dicDir == "" && srcLang != "" && trgLang != "" {
			shareDir := settings.DictionaryDir
			if path, _, ok := core.DictionaryPath(shareDir, srcLang, trgLang); ok {
				dicDir = path
			}
		}
		opts.UseDictionary = dicDir != ""
		if opts.UseDictionary {
			dict, err := core.LoadDictionary(dicDir)
			if err != nil {
				exitOnError(err)
				return
			}
			opts.Dictionary = dict
		}
		opts.UseIdentical = true
		opts.UseCognates = true

		out, err := core.RunOverlapAlign(args[0], args[1], core.FormatXML, opts, runtime.NumCPU())
		if err != nil {
			exitOnError(err)
			return
		}
		fmt.Print(out)
	},
}

func init() {
	srtalignCmd.Flags().String("S", "", "source language code")
	srtalignCmd.Flags().String("T", "", "target language code")
	srtalignCmd.Flags().Float64("c", 0.7, "cognate threshold")
	srtalignCmd.Flags().Float64("r", 0.7, "cognate range, lower sweep bound")
	srtalignCmd.Flags().Int("l", 5, "identical-run minimum match length")
	srtalignCmd.Flags().Int("i", 1, "minimum token length")
	srtalignCmd.Flags().Int("w", 25, "anchor discovery window")
	srtalignCmd.Flags().String("d", "", "dictionary file path")
	srtalignCmd.Flags().Bool("u", false, "match uppercase tokens only")
	srtalignCmd.Flags().String("s", "", "character-class regex filter")
	srtalignCmd.Flags().Bool("q", false, "weight matches by word frequency")
	srtalignCmd.Flags().Bool("b", false, "enable best-anchor search")
	srtalignCmd.Flags().Int("p", 10, "candidate cap (alias of max matches)")
	srtalignCmd.Flags().Int("m", 10, "max anchor matches per pool")
	srtalignCmd.Flags().String("f", "", "fallback aligner executable name")
	srtalignCmd.Flags().Bool("P", false, "proportion scoring flavor")
	srtalignCmd.Flags().Bool("v", false, "verbose progress reporting")
}
