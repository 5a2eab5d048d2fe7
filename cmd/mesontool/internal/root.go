package internal

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/iortcw/mesontool/internal/sourcelist"
)

var rootCmd = &cobra.Command{
	Use:   "mesontool",
	Short: "mesontool keeps the Meson build aligned with the legacy game Makefiles",
	Long: `mesontool reads the legacy SP/MP Makefiles to reconstruct Meson
source lists and installs the SDL runtime after a build.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). Failures map to the exit codes the
// Meson wrappers expect: 2 for an unresolvable object, 1 otherwise.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		var rerr *sourcelist.ResolutionError
		if errors.As(err, &rerr) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
