package terrain

import "github.com/fenwick-stacks/labyrinth/internal/geom"

// forEachCell calls fn once per cell of a Width x Height board, in
// row-major scan order -- the fixed order every automaton's scan phase
// uses before its PRNG-shuffled apply phase (spec.md §4.5, §5).
func forEachCell(width, height int, fn func(pos geom.Vector)) {
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			fn(geom.Vector{X: x, Y: y})
		}
	}
}
