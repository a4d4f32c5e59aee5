package mapper

import (
	"testing"
)

func newReorder(t *testing.T, chain, parallel int, param string) *ReorderMapper {
	t.Helper()
	m := NewReorderMapper(testLogger())
	if err := m.SetParameters(chain, parallel, param); err != nil {
		t.Fatalf("SetParameters(%q): %v", param, err)
	}
	return m
}

func TestReorderSetParameters(t *testing.T) {
	tests := []struct {
		name     string
		param    string
		wantDest map[int]int
	}{
		{name: "Empty", param: "", wantDest: map[int]int{}},
		{name: "Swap", param: "0|1,1|0", wantDest: map[int]int{0: 1, 1: 0}},
		// Fail-soft: bad entries drop out, the rest still applies.
		{name: "DestinationTooHighSkipped", param: "0|5,1|0", wantDest: map[int]int{1: 0}},
		{name: "SourceTooHighSkipped", param: "7|0,0|1", wantDest: map[int]int{0: 1}},
		{name: "NonDigitSkipped", param: "0|x,1|0", wantDest: map[int]int{1: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewReorderMapper(testLogger())
			if err := m.SetParameters(2, 1, tt.param); err != nil {
				t.Fatalf("SetParameters: %v", err)
			}
			if len(m.dest) != len(tt.wantDest) {
				t.Fatalf("dest = %v, want %v", m.dest, tt.wantDest)
			}
			for from, to := range tt.wantDest {
				if m.dest[from] != to {
					t.Errorf("dest[%d] = %d, want %d", from, m.dest[from], to)
				}
			}
		})
	}
}

func TestReorderVisibleSize(t *testing.T) {
	m := newReorder(t, 2, 1, "0|1,1|0")
	w, h, err := m.VisibleSize(128, 32)
	if err != nil {
		t.Fatalf("VisibleSize: %v", err)
	}
	if w != 128 || h != 32 {
		t.Errorf("VisibleSize = %dx%d, want 128x32", w, h)
	}
}

// Two 64x32 panels side by side, swapped: a pixel in panel 0 lands in
// panel 1's physical block with its within-panel offset preserved.
func TestReorderSwapSingleRow(t *testing.T) {
	m := newReorder(t, 2, 1, "0|1,1|0")

	tests := []struct {
		name           string
		x, y           int
		wantMX, wantMY int
	}{
		{name: "Panel0Origin", x: 0, y: 0, wantMX: 64, wantMY: 0},
		{name: "Panel0Offset", x: 6, y: 5, wantMX: 70, wantMY: 5},
		{name: "Panel1Origin", x: 64, y: 0, wantMX: 0, wantMY: 0},
		{name: "Panel1Offset", x: 127, y: 31, wantMX: 63, wantMY: 31},
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

func TestReorderUnlistedPanelIsIdentity(t *testing.T) {
	m := newReorder(t, 2, 1, "0|1")

	mx, my := m.MapVisibleToMatrix(128, 32, 100, 10)
	if mx != 100 || my != 10 {
		t.Errorf("Map(100,10) = (%d,%d), want identity", mx, my)
	}
}

// Known quirk: for parallel >= 2 the destination index decomposes by
// parallel-1 instead of parallel, so with chain=2, parallel=2 a move to
// index 1 lands in the second row instead of the second column. Kept until
// the intended semantics are confirmed; this test pins the behavior.
func TestReorderParallelMinusOneQuirk(t *testing.T) {
	m := newReorder(t, 2, 2, "0|1")

	// 128x64 matrix of 64x32 panels. Proper row-major decomposition of
	// destination 1 would be column 1, row 0, i.e. (64,0).
	mx, my := m.MapVisibleToMatrix(128, 64, 0, 0)
	if mx != 0 || my != 32 {
		t.Errorf("Map(0,0) = (%d,%d), want the quirky (0,32)", mx, my)
	}
}
