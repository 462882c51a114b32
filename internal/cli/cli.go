package cli

import (
	"fmt"
	"os"

	"github.com/aldekeijzer/subalign/internal/cli/commands"
)

// Run executes the root command and maps any error to a non-zero exit
// code.
func Run() {
	if err := commands.RootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "subalign: %v\n", err)
		os.Exit(1)
	}
}
