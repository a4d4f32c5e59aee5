package cli

import (
	"github.com/spf13/cobra"

	"github.com/ledgrid/panelmap/pkg/config"
)

// displayFlags carries the topology flags shared by every command that needs
// a configured display. Values resolve in three layers: built-in defaults,
// then the --config file, then explicitly set flags.
type displayFlags struct {
	configPath string
	rows       int
	cols       int
	chain      int
	parallel   int
	mapper     string
}

// register attaches the shared display flags to cmd.
func (f *displayFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.configPath, "config", "", "display configuration file (TOML)")
	cmd.Flags().IntVar(&f.rows, "rows", 32, "panel height in pixels")
	cmd.Flags().IntVar(&f.cols, "cols", 32, "panel width in pixels")
	cmd.Flags().IntVar(&f.chain, "chain", 1, "panels wired in series per output")
	cmd.Flags().IntVar(&f.parallel, "parallel", 1, "number of parallel output chains")
	cmd.Flags().StringVar(&f.mapper, "mapper", "", `pixel-mapper sequence, e.g. "U-mapper;Rotate:90"`)
}

// resolve merges the config file (if any) with explicitly set flags and
// validates the result.
func (f *displayFlags) resolve(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()

	if f.configPath != "" {
		loaded, err := config.Load(f.configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("rows") {
		cfg.Matrix.Rows = f.rows
	}
	if flags.Changed("cols") {
		cfg.Matrix.Cols = f.cols
	}
	if flags.Changed("chain") {
		cfg.Matrix.Chain = f.chain
	}
	if flags.Changed("parallel") {
		cfg.Matrix.Parallel = f.parallel
	}
	if flags.Changed("mapper") {
		cfg.Matrix.PixelMapper = f.mapper
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
