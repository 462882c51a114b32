package commands

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aldekeijzer/subalign/internal/config"
	"github.com/aldekeijzer/subalign/internal/core"
)

// RootCmd is the base command; mt2srt and srtalign hang off it as
// subcommands of a single binary.
var RootCmd = &cobra.Command{
	Use:   "subalign <command>",
	Short: "Align movie subtitles across languages",
	Long: `subalign aligns movie subtitles across languages, either by
maximizing temporal overlap between two timed documents (srtalign) or by
projecting a timed template's frames onto a flat translation using a
Gale-Church-style length model (mt2srt).`,
}

var logger zerolog.Logger

func init() {
	if err := config.InitConfig(""); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not initialize config: %v\n", err)
	}

	logger = core.NewLogger(os.Stderr, core.Info)
	core.SetLogger(logger)

	RootCmd.AddCommand(mt2srtCmd)
	RootCmd.AddCommand(srtalignCmd)

	cobra.OnInitialize(func() {
		viper.SetEnvPrefix("SUBALIGN")
		viper.AutomaticEnv()
	})
}

// exitOnError logs err at error level, prints it to stderr and exits with
// status 1; every error kind is treated the same way.
func exitOnError(err error) {
	if err == nil {
		return
	}
	logger.Error().Err(err).Msg("subalign failed")
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
