package world

import "github.com/fenwick-stacks/labyrinth/internal/geom"

// PairPortal installs two reciprocal portal edges so that stepping from
// (boardA, cellA) in dirA lands at (boardB, cellB) with transform t applied
// to subsequent directions, and stepping back from (boardB, cellB) in the
// transformed opposite direction returns to (boardA, cellA) with t's
// inverse (spec.md §3 invariant 2: stepping through and back returns to the
// origin cell, T_forward . T_back == Identity).
//
// Invalid construction (either endpoint off-board, or a non-unit direction)
// is a no-op per spec.md §7 -- there is no assertion panic here, only a
// silent skip, to match the "no exception surface" design.
func PairPortal(w *World, boardA BoardID, cellA geom.Vector, dirA geom.Direction, boardB BoardID, cellB geom.Vector, dirB geom.Direction, t geom.Transform, tint Tint) {
	if !isUnit(dirA) || !isUnit(dirB) {
		return
	}
	a := w.Board(boardA)
	b := w.Board(boardB)
	if !a.InBounds(cellA) || !b.InBounds(cellB) {
		return
	}

	a.At(cellA).Edges[EdgeIndex(dirA)] = &PortalEdge{
		TargetBoard: boardB,
		TargetCell:  cellB,
		Transform:   t,
		Tint:        tint,
	}

	inv := t.Inverse()
	backDir := inv.Apply(dirA.Neg())
	b.At(cellB).Edges[EdgeIndex(backDir)] = &PortalEdge{
		TargetBoard: boardA,
		TargetCell:  cellA,
		Transform:   inv,
		Tint:        tint,
	}
}

// PairRetroReflector installs a single self-looping edge at (board, cell)
// on side dir whose transform reflects across the axis of dir, so a ray
// entering the cell from dir exits back the way it came -- the "magic
// mirror" construction used by spec.md §8 scenario 6 and the original's
// retro-reflector portals (SPEC_FULL §5.3).
func PairRetroReflector(w *World, board BoardID, cell geom.Vector, dir geom.Direction, tint Tint) {
	if !isUnit(dir) {
		return
	}
	b := w.Board(board)
	if !b.InBounds(cell) {
		return
	}

	var reflect geom.Transform
	if dir == geom.Right || dir == geom.Left {
		reflect = geom.FlipX
	} else {
		reflect = geom.FlipY
	}

	b.At(cell).Edges[EdgeIndex(dir)] = &PortalEdge{
		TargetBoard: board,
		TargetCell:  cell,
		Transform:   reflect,
		Tint:        tint,
	}
}

func isUnit(v geom.Vector) bool {
	return (v.X == 0) != (v.Y == 0) && (v.X == 1 || v.X == -1 || v.Y == 1 || v.Y == -1)
}
