package mapper

import (
	"testing"

	"github.com/ledgrid/panelmap/pkg/errors"
)

// Four 32x32 panels in one chain, folded: physical matrix 128x32 becomes a
// 64x64 display.
func newU(t *testing.T, chain, parallel int) *UArrangementMapper {
	t.Helper()
	m := NewUArrangementMapper(testLogger())
	if err := m.SetParameters(chain, parallel, ""); err != nil {
		t.Fatalf("SetParameters(chain=%d, parallel=%d): %v", chain, parallel, err)
	}
	return m
}

func TestUSetParameters(t *testing.T) {
	tests := []struct {
		name    string
		chain   int
		wantErr bool
	}{
		{name: "SinglePanelChainFails", chain: 1, wantErr: true},
		{name: "OddChainFails", chain: 3, wantErr: true},
		{name: "ChainOfTwo", chain: 2},
		{name: "ChainOfFour", chain: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewUArrangementMapper(testLogger())
			err := m.SetParameters(tt.chain, 1, "")
			if tt.wantErr {
				if err == nil {
					t.Fatal("SetParameters should fail")
				}
				if !errors.Is(err, errors.ErrCodeInvalidTopology) {
					t.Errorf("error code = %q, want INVALID_TOPOLOGY", errors.GetCode(err))
				}
				return
			}
			if err != nil {
				t.Fatalf("SetParameters: %v", err)
			}
		})
	}
}

func TestUVisibleSize(t *testing.T) {
	m := newU(t, 4, 1)
	w, h, err := m.VisibleSize(128, 32)
	if err != nil {
		t.Fatalf("VisibleSize: %v", err)
	}
	if w != 64 || h != 64 {
		t.Errorf("VisibleSize = %dx%d, want 64x64", w, h)
	}
}

func TestUVisibleSizeIndivisibleHeight(t *testing.T) {
	m := newU(t, 4, 3)
	_, _, err := m.VisibleSize(128, 32)
	if err == nil {
		t.Fatal("VisibleSize should fail for height not divisible by parallel")
	}
	if !errors.Is(err, errors.ErrCodeInvalidSize) {
		t.Errorf("error code = %q, want INVALID_SIZE", errors.GetCode(err))
	}
}

func TestUMap(t *testing.T) {
	m := newU(t, 4, 1)

	tests := []struct {
		name           string
		x, y           int
		wantMX, wantMY int
	}{
		// Upper half of the fold maps onto the far half of the chain.
		{name: "TopLeft", x: 0, y: 0, wantMX: 64, wantMY: 0},
		{name: "TopRight", x: 63, y: 0, wantMX: 127, wantMY: 0},
		// Lower half folds back, reversed in both axes.
		{name: "FoldStart", x: 0, y: 32, wantMX: 63, wantMY: 31},
		{name: "BottomRight", x: 63, y: 63, wantMX: 0, wantMY: 0},
		{name: "BottomLeft", x: 0, y: 63, wantMX: 63, wantMY: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mx, my := m.MapVisibleToMatrix(128, 32, tt.x, tt.y)
			if mx != tt.wantMX || my != tt.wantMY {
				t.Errorf("Map(%d,%d) = (%d,%d), want (%d,%d)", tt.x, tt.y, mx, my, tt.wantMX, tt.wantMY)
			}
		})
	}
}

func TestUBijection(t *testing.T) {
	checkBijection(t, newU(t, 4, 1), 128, 32)
}

// Two parallel chains fold into two independent slabs.
func TestUMapParallelChains(t *testing.T) {
	m := newU(t, 4, 2)

	// 128x64 matrix: each chain is a 128x32 strip, visible canvas 64x128.
	tests := []struct {
		name           string
		x, y           int
		wantMX, wantMY int
	}{
		{name: "FirstSlabTop", x: 0, y: 0, wantMX: 64, wantMY: 0},
		{name: "SecondSlabTop", x: 0, y: 64, wantMX: 64, wantMY: 32},
		{name: "SecondSlabFold", x: 0, y: 96, wantMX: 63, wantMY: 63},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mx, my := m.MapVisibleToMatrix(128, 64, tt.x, tt.y)
			if mx != tt.wantMX || my != tt.wantMY {
				t.Errorf("Map(%d,%d) = (%d,%d), want (%d,%d)", tt.x, tt.y, mx, my, tt.wantMX, tt.wantMY)
			}
		})
	}
}
