// Package mapper remaps visible pixel coordinates onto physically wired
// LED panel coordinates.
//
// An assembled display is described by its topology: the number of panels
// wired in series behind one output connector (chain) and the number of
// parallel output connectors (parallel). Applications draw into a visible
// canvas; a [PixelMapper] translates every visible coordinate into the
// matching coordinate on the physical matrix so that panels can be mounted
// rotated, mirrored, reordered, stacked or folded without changing the
// drawing code.
//
// # Architecture
//
// The package is organized around three pieces:
//
//   - [PixelMapper]: the contract a single coordinate transform satisfies
//   - [Registry]: name → mapper resolution with case-insensitive lookup
//   - [Sequence]: an ordered composition of configured mappers
//
// # Built-in mappers
//
// Seven transforms ship with the package:
//
//	Row-mapper     collapse parallel chains into one long logical row
//	Rotate-panel   rotate individual panels by 0/90/180/270 degrees
//	Reorder        move whole panels to different grid positions
//	Rotate         rotate the entire canvas by a multiple of 90 degrees
//	Mirror         flip the canvas horizontally or vertically
//	U-mapper       fold one long chain into a serpentine two-row display
//	V-mapper       transpose chain and parallel into a tall display
//
// # Usage
//
// Resolve a mapper by name and map coordinates:
//
//	reg := mapper.NewRegistry(logger)
//	m, err := reg.Find("Rotate", chain, parallel, "90")
//	if err != nil {
//	    return err
//	}
//	w, h, err := m.VisibleSize(matrixWidth, matrixHeight)
//	mx, my := m.MapVisibleToMatrix(matrixWidth, matrixHeight, x, y)
//
// Multiple transforms compose through a [Sequence], written as a
// semicolon-separated list:
//
//	seq, err := mapper.ParseSequence(reg, "U-mapper;Rotate:90", chain, parallel)
//
// # Concurrency
//
// A mapper returned by [Registry.Find] is fully configured and immutable; it
// is safe to call VisibleSize and MapVisibleToMatrix concurrently from any
// number of rendering goroutines. The registry itself must be populated
// before concurrent lookups begin; Register is not safe to call concurrently
// with Find.
package mapper
