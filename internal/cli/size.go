package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newSizeCmd reports the visible canvas size for a topology and mapper
// sequence.
func newSizeCmd() *cobra.Command {
	flags := &displayFlags{}

	cmd := &cobra.Command{
		Use:   "size",
		Short: "Compute the visible canvas size for a display",
		Long: `Compute the visible canvas size for a display.

The physical matrix is cols*chain wide and rows*parallel high. Mappers fold
or rotate that area; size reports the canvas an application should draw
into after the whole mapper sequence is applied.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.resolve(cmd)
			if err != nil {
				return err
			}
			disp, err := newDisplay(cfg, loggerFromContext(cmd.Context()))
			if err != nil {
				return err
			}
			w, h, err := disp.VisibleSize()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n", styleDim.Render("matrix:"),
				styleNumber.Render(fmt.Sprintf("%dx%d", cfg.Width(), cfg.Height())))
			fmt.Fprintf(out, "%s %s\n", styleDim.Render("mapper:"),
				styleName.Render(disp.MapperSpec()))
			fmt.Fprintf(out, "%s %s\n", styleDim.Render("visible:"),
				styleNumber.Render(fmt.Sprintf("%dx%d", w, h)))
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
