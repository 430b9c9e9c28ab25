package sight

import (
	"github.com/fenwick-stacks/labyrinth/internal/geom"
	"github.com/fenwick-stacks/labyrinth/internal/raycast"
	"github.com/fenwick-stacks/labyrinth/internal/world"
)

// Update casts the full ray fan from (board, pos) in back-to-front draw
// order, reporting entity occupants to observe along the way (may be nil).
// It returns pure Line values; painting them to a screen and to the memory
// map is internal/view's job (spec.md §9 Design Notes: "Rendering
// coupling" -- this redesign separates sight-update from render).
func Update(w *world.World, board world.BoardID, pos geom.Vector, observe raycast.OccupantObserver) []raycast.Line {
	targets := Fan()
	lines := make([]raycast.Line, len(targets))
	for i, target := range targets {
		lines[i] = raycast.LineCast(w, board, pos, target, true, observe)
	}
	return lines
}
