package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ledgrid/panelmap/pkg/wiring"
)

// newWiringCmd emits a Graphviz diagram of the panel chains.
func newWiringCmd() *cobra.Command {
	flags := &displayFlags{}
	var (
		svg    bool
		output string
	)

	cmd := &cobra.Command{
		Use:   "wiring",
		Short: "Emit a Graphviz wiring diagram of the panel chains",
		Long: `Emit a Graphviz wiring diagram of the panel chains.

Prints DOT to stdout by default; pipe it into any Graphviz tool, or pass
--svg to render in-process.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.resolve(cmd)
			if err != nil {
				return err
			}

			dot := wiring.ToDOT(wiring.Layout{
				Chain:     cfg.Matrix.Chain,
				Parallel:  cfg.Matrix.Parallel,
				PanelCols: cfg.Matrix.Cols,
				PanelRows: cfg.Matrix.Rows,
			})

			if !svg {
				fmt.Fprint(cmd.OutOrStdout(), dot)
				return nil
			}

			rendered, err := wiring.RenderSVG(dot)
			if err != nil {
				return err
			}
			if output == "" {
				_, err = cmd.OutOrStdout().Write(rendered)
				return err
			}
			if err := os.WriteFile(output, rendered, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			loggerFromContext(cmd.Context()).Info("wrote wiring diagram", "path", output)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&svg, "svg", false, "render SVG instead of DOT")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	return cmd
}
