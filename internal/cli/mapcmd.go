package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ledgrid/panelmap/pkg/errors"
)

// newMapCmd maps visible coordinates onto the physical matrix.
func newMapCmd() *cobra.Command {
	flags := &displayFlags{}
	var all bool

	cmd := &cobra.Command{
		Use:   "map [x y]",
		Short: "Map visible coordinates to physical matrix coordinates",
		Long: `Map visible coordinates to physical matrix coordinates.

Given a visible coordinate, map prints the physical matrix coordinate the
mapper sequence routes it to. With --all, the full visible canvas is dumped
one coordinate per line, which is handy for diffing two mapper setups.`,
		Args: cobra.RangeArgs(0, 2),
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
			if all {
				if len(args) != 0 {
					return errors.New(errors.ErrCodeInvalidInput, "cannot combine --all with explicit coordinates")
				}
				for y := 0; y < h; y++ {
					for x := 0; x < w; x++ {
						mx, my := disp.Map(x, y)
						fmt.Fprintf(out, "%d,%d -> %d,%d\n", x, y, mx, my)
					}
				}
				return nil
			}

			if len(args) != 2 {
				return errors.New(errors.ErrCodeInvalidInput, "expected x and y arguments (or --all)")
			}
			x, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.New(errors.ErrCodeInvalidInput, "invalid x coordinate %q", args[0])
			}
			y, err := strconv.Atoi(args[1])
			if err != nil {
				return errors.New(errors.ErrCodeInvalidInput, "invalid y coordinate %q", args[1])
			}
			if x < 0 || x >= w || y < 0 || y >= h {
				return errors.New(errors.ErrCodeInvalidInput,
					"coordinate %d,%d outside visible canvas %dx%d", x, y, w, h)
			}

			mx, my := disp.Map(x, y)
			fmt.Fprintf(out, "%s %s\n", styleDim.Render("visible:"),
				styleNumber.Render(fmt.Sprintf("%d,%d", x, y)))
			fmt.Fprintf(out, "%s %s\n", styleDim.Render("matrix:"),
				styleNumber.Render(fmt.Sprintf("%d,%d", mx, my)))
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&all, "all", false, "dump the mapping for every visible coordinate")
	return cmd
}
