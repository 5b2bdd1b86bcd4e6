// Package cli implements the ink-intro command line: the default command
// opens the intro window, and export renders it to a PNG sequence.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var version = "dev"

// SetVersion sets the string printed by --version.
func SetVersion(v string) {
	version = v
}

// Execute runs the command tree with os.Args.
func Execute(ctx context.Context) error {
	return newRootCmd(os.Stderr).ExecuteContext(ctx)
}

func newRootCmd(logOut io.Writer) *cobra.Command {
	var verbose bool
	var opts runOptions

	root := &cobra.Command{
		Use:          "ink-intro",
		Short:        "Play the ink brush intro animation",
		Version:      version,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(logOut, level)))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWindow(cmd.Context(), opts)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("ink-intro %s\n", version))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().Int64Var(&opts.seed, "seed", 0, "seed for the scribble jitter (0 = random)")
	root.Flags().BoolVar(&opts.sound, "sound", false, "play the brush soundtrack")
	root.Flags().BoolVar(&opts.fullscreen, "fullscreen", false, "open fullscreen")

	root.AddCommand(newExportCmd(&opts.seed))
	return root
}
