package mapper_test

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/ledgrid/panelmap/pkg/mapper"
)

func ExampleRegistry_Find() {
	reg := mapper.NewRegistry(log.New(io.Discard))

	// Four 32x32 panels on one chain, folded into a U.
	m, err := reg.Find("U-mapper", 4, 1, "")
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	w, h, err := m.VisibleSize(128, 32)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Printf("visible canvas: %dx%d\n", w, h)

	x, y := m.MapVisibleToMatrix(128, 32, 0, 0)
	fmt.Printf("(0,0) lands on: %d,%d\n", x, y)
	// Output:
	// visible canvas: 64x64
	// (0,0) lands on: 64,0
}

func ExampleParseSequence() {
	reg := mapper.NewRegistry(log.New(io.Discard))

	// Fold the chain into a U, then rotate the whole canvas.
	seq, err := mapper.ParseSequence(reg, "U-mapper;Rotate:90", 4, 1)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	w, h, err := seq.VisibleSize(128, 32)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Printf("visible canvas: %dx%d\n", w, h)
	// Output:
	// visible canvas: 64x64
}
