package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/ledgrid/panelmap/pkg/config"
	"github.com/ledgrid/panelmap/pkg/errors"
)

// resolveWith runs resolve after parsing args against a throwaway command.
func resolveWith(t *testing.T, args ...string) (config.Config, error) {
	t.Helper()
	flags := &displayFlags{}
	cmd := &cobra.Command{Use: "test", RunE: func(*cobra.Command, []string) error { return nil }}
	flags.register(cmd)
	if err := cmd.ParseFlags(args); err != nil {
		t.Fatalf("ParseFlags(%v) failed: %v", args, err)
	}
	return flags.resolve(cmd)
}

func TestResolveDefaults(t *testing.T) {
	cfg, err := resolveWith(t)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if w, h := cfg.Width(), cfg.Height(); w != 32 || h != 32 {
		t.Errorf("default size = %dx%d, want 32x32", w, h)
	}
}

func TestResolveFlagsOverrideDefaults(t *testing.T) {
	cfg, err := resolveWith(t, "--cols", "64", "--chain", "4", "--parallel", "2")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if w := cfg.Width(); w != 256 {
		t.Errorf("width = %d, want 256", w)
	}
	if h := cfg.Height(); h != 64 {
		t.Errorf("height = %d, want 64", h)
	}
}

func TestResolveConfigFileAndFlagLayering(t *testing.T) {
	path := filepath.Join(t.TempDir(), "display.toml")
	content := `[matrix]
rows = 64
cols = 64
chain = 2
parallel = 2
pixel-mapper = "Rotate:90"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	// Flags set on the command line win over the file; unset flags keep
	// the file's values.
	cfg, err := resolveWith(t, "--config", path, "--chain", "3")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if w := cfg.Width(); w != 192 {
		t.Errorf("width = %d, want 192 (cols 64 from file, chain 3 from flag)", w)
	}
	if h := cfg.Height(); h != 128 {
		t.Errorf("height = %d, want 128 (rows and parallel from file)", h)
	}
	if cfg.Matrix.PixelMapper != "Rotate:90" {
		t.Errorf("pixel-mapper = %q, want %q", cfg.Matrix.PixelMapper, "Rotate:90")
	}
}

func TestResolveMissingConfigFile(t *testing.T) {
	_, err := resolveWith(t, "--config", filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
	if code := errors.GetCode(err); code != errors.ErrCodeFileNotFound {
		t.Errorf("error code = %v, want %v", code, errors.ErrCodeFileNotFound)
	}
}

func TestResolveInvalidTopology(t *testing.T) {
	_, err := resolveWith(t, "--chain", "0")
	if err == nil {
		t.Fatal("expected validation error for chain=0")
	}
}
