package mapper

import (
	"testing"
)

// Two 64x32 panels in one chain, transposed into a 64x64 display.
func newVertical(t *testing.T, param string) *VerticalMapper {
	t.Helper()
	m := NewVerticalMapper(testLogger())
	if err := m.SetParameters(2, 1, param); err != nil {
		t.Fatalf("SetParameters(%q): %v", param, err)
	}
	return m
}

func TestVerticalSetParameters(t *testing.T) {
	tests := []struct {
		name       string
		param      string
		wantZigzag bool
	}{
		{name: "Empty", param: ""},
		{name: "UpperZ", param: "Z", wantZigzag: true},
		{name: "LowerZ", param: "z", wantZigzag: true},
		{name: "OtherTextIgnored", param: "zigzag"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewVerticalMapper(testLogger())
			if err := m.SetParameters(2, 1, tt.param); err != nil {
				t.Fatalf("SetParameters: %v", err)
			}
			if m.zigzag != tt.wantZigzag {
				t.Errorf("zigzag = %v, want %v", m.zigzag, tt.wantZigzag)
			}
		})
	}
}

func TestVerticalVisibleSize(t *testing.T) {
	tests := []struct {
		name           string
		chain          int
		parallel       int
		w, h           int
		wantW, wantH   int
	}{
		{name: "WideToTall", chain: 2, parallel: 1, w: 128, h: 32, wantW: 64, wantH: 64},
		{name: "ThreeChains", chain: 3, parallel: 1, w: 96, h: 32, wantW: 32, wantH: 96},
		{name: "Balanced", chain: 2, parallel: 2, w: 128, h: 64, wantW: 128, wantH: 64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewVerticalMapper(testLogger())
			if err := m.SetParameters(tt.chain, tt.parallel, ""); err != nil {
				t.Fatalf("SetParameters: %v", err)
			}
			w, h, err := m.VisibleSize(tt.w, tt.h)
			if err != nil {
				t.Fatalf("VisibleSize: %v", err)
			}
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("VisibleSize = %dx%d, want %dx%d", w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestVerticalMap(t *testing.T) {
	tests := []struct {
		name           string
		param          string
		x, y           int
		wantMX, wantMY int
	}{
		{name: "FirstPanelOrigin", param: "", x: 0, y: 0, wantMX: 0, wantMY: 0},
		{name: "SecondPanelOrigin", param: "", x: 0, y: 32, wantMX: 64, wantMY: 0},
		{name: "WithinSecondPanel", param: "", x: 10, y: 40, wantMX: 74, wantMY: 8},
		{name: "ZigzagFlipsOddRows", param: "Z", x: 0, y: 32, wantMX: 127, wantMY: 31},
		{name: "ZigzagKeepsEvenRows", param: "Z", x: 10, y: 8, wantMX: 10, wantMY: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newVertical(t, tt.param)
			mx, my := m.MapVisibleToMatrix(128, 32, tt.x, tt.y)
			if mx != tt.wantMX || my != tt.wantMY {
				t.Errorf("Map(%d,%d) = (%d,%d), want (%d,%d)", tt.x, tt.y, mx, my, tt.wantMX, tt.wantMY)
			}
		})
	}
}

func TestVerticalBijection(t *testing.T) {
	checkBijection(t, newVertical(t, ""), 128, 32)
	checkBijection(t, newVertical(t, "Z"), 128, 32)
}
