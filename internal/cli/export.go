package cli

import (
	"github.com/spf13/cobra"

	"github.com/iburimskiy/ink-intro/internal/export"
)

func newExportCmd(seed *int64) *cobra.Command {
	var opts export.Options

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render the intro to a PNG sequence with a YAML manifest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Seed = *seed
			opts.Logger = loggerFromContext(cmd.Context())
			_, err := export.Run(cmd.Context(), opts)
			return err
		},
	}

	cmd.Flags().StringVarP(&opts.Dir, "out", "o", "frames", "output directory")
	cmd.Flags().IntVar(&opts.FPS, "fps", 60, "frames per second (1-1000)")
	cmd.Flags().IntVar(&opts.Width, "width", 0, "viewport width in logical pixels")
	cmd.Flags().IntVar(&opts.Height, "height", 0, "viewport height in logical pixels")
	cmd.Flags().Float64Var(&opts.Density, "density", 1, "device pixel ratio, clamped to [1, 2]")
	return cmd
}
