package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ledgrid/panelmap/pkg/mapper"
)

// mapperHelp documents parameter syntax per mapper for the list command.
// Keyed by display name as returned by Registry.Names.
var mapperHelp = map[string]struct {
	syntax string
	desc   string
}{
	"Mirror":       {"H or V", "flip the canvas horizontally (default) or vertically"},
	"Reorder":      {"from|to,from|to,...", "swap physical panel positions along the chain"},
	"Rotate":       {"angle", "rotate the whole canvas by a multiple of 90 degrees"},
	"Rotate-panel": {"panel|angle,...", "rotate individual panels in place"},
	"Row-mapper":   {"H or V", "unroll parallel chains into one wide row, H/V for cube side bands"},
	"U-mapper":     {"", "fold each chain in half into a U shape"},
	"V-mapper":     {"Z", "stack chains vertically, Z for zigzag wiring"},
}

// newListCmd lists every registered pixel mapper with its parameter syntax.
func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available pixel mappers",
		Long: `List the available pixel mappers.

Each mapper is shown with its parameter syntax. Mappers are combined into a
sequence with semicolons, and parameters follow the name after a colon:

    panelmap size --chain 4 --mapper "U-mapper;Rotate:90"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := mapper.NewRegistry(loggerFromContext(cmd.Context()))
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, styleTitle.Render("Available pixel mappers"))
			for _, name := range reg.Names() {
				help := mapperHelp[name]
				line := "  " + styleName.Render(name)
				if help.syntax != "" {
					line += styleDim.Render(":" + help.syntax)
				}
				fmt.Fprintln(out, line)
				if help.desc != "" {
					fmt.Fprintln(out, styleDim.Render("      "+help.desc))
				}
			}
			return nil
		},
	}
}
