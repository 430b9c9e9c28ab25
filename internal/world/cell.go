package world

import "github.com/fenwick-stacks/labyrinth/internal/geom"

// EntityID is a small integer handle into the entity registry
// (internal/entity.Registry), also stored in board entity lists. Zero is
// the "no entity" sentinel -- cell occupant slots and entity self-references
// use it rather than a pointer, so destruction is two index writes and
// nothing needs reference counting (spec.md §9 design note on cyclic
// ownership).
type EntityID int

const NoEntity EntityID = 0

// Tint is a cumulative color override a ray picks up while crossing a
// tinted portal edge. The zero value is the neutral sentinel: no override.
type Tint struct {
	Set    bool
	FG, BG Color
}

// Color is a terminal-agnostic RGB triple; internal/view maps it to the
// concrete front end's color type.
type Color struct {
	R, G, B uint8
}

// Cell is one unit of a board's grid (spec.md §3).
type Cell struct {
	Wall  bool
	Fire  bool
	Water int // depth, >= 0
	Plant int // [0, config.PlantMax]
	Steam int // pressure, >= 0

	GrassGlyph rune
	GrassColor Color

	// Portal edges keyed by direction index: 0=Right,1=Up,2=Left,3=Down.
	Edges [4]*PortalEdge

	Occupant EntityID
}

// EdgeIndex maps a unit direction to the Cell.Edges slot. Panics-free: an
// off-axis vector maps to index 0, but callers never pass one (diagonals
// are never step directions, per spec.md §3).
func EdgeIndex(dir geom.Direction) int {
	switch dir {
	case geom.Right:
		return 0
	case geom.Up:
		return 1
	case geom.Left:
		return 2
	case geom.Down:
		return 3
	default:
		return 0
	}
}

// PortalEdge is a directed rewiring of one cell's neighbor in one direction
// (spec.md §3). Reciprocal edges are two separate records, constructed
// together by PairPortal / PairRetroReflector so that stepping through and
// back returns to the origin (invariant 2).
type PortalEdge struct {
	TargetBoard BoardID
	TargetCell  geom.Vector
	Transform   geom.Transform
	Tint        Tint
}
