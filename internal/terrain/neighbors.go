// Package terrain implements the four terrain automata -- fire, water,
// steam, plants -- that make up the simulation's tick (spec.md §4.5). Each
// automaton shares the same two-phase scan/apply shape: a full scan over
// every board's cells computes intended updates into a side buffer without
// ever reading from it, then the buffer is shuffled with the shared PRNG
// and applied, each update re-checked against current state so a
// double-enqueue (two neighbors proposing the same target) cannot double
// apply.
package terrain

import (
	"github.com/fenwick-stacks/labyrinth/internal/geom"
	"github.com/fenwick-stacks/labyrinth/internal/world"
)

// Neighbor is a portal-aware neighbor of a cell: the (board, cell) reached
// by stepping in one of the four cardinal directions, following a portal
// edge if one is installed (spec.md §4.1).
type Neighbor struct {
	Board world.BoardID
	Cell  geom.Vector
}

// PortalNeighbors returns every on-board neighbor of (board, pos) reached
// via internal/world.Step, skipping directions that run off the world with
// no portal edge.
func PortalNeighbors(w *world.World, board world.BoardID, pos geom.Vector) []Neighbor {
	var out []Neighbor
	for _, dir := range geom.CardinalDirections {
		res := w.Step(board, pos, dir)
		if res.OffBoard {
			continue
		}
		out = append(out, Neighbor{Board: res.Board, Cell: res.Cell})
	}
	return out
}
