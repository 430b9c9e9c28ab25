package raycast

import (
	"testing"

	"github.com/fenwick-stacks/labyrinth/internal/geom"
	"github.com/fenwick-stacks/labyrinth/internal/world"
)

func TestLineCastOnEmptyBoardReachesTarget(t *testing.T) {
	w := world.NewWorld()
	b := w.AddBoard(20, 20)

	line := LineCast(w, b, geom.Vector{5, 5}, geom.Vector{6, 0}, false, nil)
	last, ok := line.Last()
	if !ok {
		t.Fatal("expected at least one mapping")
	}
	if last.Cell != (geom.Vector{11, 5}) {
		t.Errorf("last.Cell = %v, want {11 5}", last.Cell)
	}
	if !last.Transform.Equal(geom.Identity) {
		t.Errorf("last.Transform = %v, want Identity (no portals crossed)", last.Transform)
	}
}

func TestLineCastTerminatesOffBoard(t *testing.T) {
	w := world.NewWorld()
	b := w.AddBoard(10, 10)

	// Ray longer than the world still terminates (spec.md §8 boundary behavior).
	line := LineCast(w, b, geom.Vector{1, 1}, geom.Vector{500, 0}, false, nil)
	last, ok := line.Last()
	if !ok {
		t.Fatal("expected at least one mapping before running off-board")
	}
	if last.Cell.X != 9 {
		t.Errorf("last.Cell.X = %d, want 9 (board edge)", last.Cell.X)
	}
}

func TestLineCastIdentityPortalEqualsOrdinaryBoundary(t *testing.T) {
	// spec.md §8 round-trip law: an identity portal (same target, Identity
	// transform) behaves exactly like an ordinary boundary.
	w1 := world.NewWorld()
	b1 := w1.AddBoard(10, 10)
	plain := LineCast(w1, b1, geom.Vector{2, 2}, geom.Vector{5, 0}, false, nil)

	w2 := world.NewWorld()
	b2 := w2.AddBoard(10, 10)
	world.PairPortal(w2, b2, geom.Vector{3, 2}, geom.Right, b2, geom.Vector{4, 2}, geom.Right, geom.Identity, world.Tint{})
	portaled := LineCast(w2, b2, geom.Vector{2, 2}, geom.Vector{5, 0}, false, nil)

	if len(plain.Mappings) != len(portaled.Mappings) {
		t.Fatalf("mapping count differs: plain=%d portaled=%d", len(plain.Mappings), len(portaled.Mappings))
	}
	for i := range plain.Mappings {
		if plain.Mappings[i].Cell != portaled.Mappings[i].Cell {
			t.Errorf("mapping %d: plain cell %v, portaled cell %v", i, plain.Mappings[i].Cell, portaled.Mappings[i].Cell)
		}
	}
}

func TestSightCastStopsAtWall(t *testing.T) {
	w := world.NewWorld()
	b := w.AddBoard(10, 10)
	w.Board(b).At(geom.Vector{6, 5}).Wall = true

	line := LineCast(w, b, geom.Vector{2, 5}, geom.Vector{6, 0}, true, nil)
	last, ok := line.Last()
	if !ok {
		t.Fatal("expected at least one mapping")
	}
	if last.Cell != (geom.Vector{6, 5}) {
		t.Errorf("sight line stopped at %v, want the wall cell {6 5}", last.Cell)
	}
}

func TestSightCastNotifiesOccupant(t *testing.T) {
	w := world.NewWorld()
	b := w.AddBoard(10, 10)
	w.Board(b).At(geom.Vector{5, 5}).Occupant = world.EntityID(42)

	var notified world.EntityID
	var observedOffset geom.Vector
	observe := func(occupant world.EntityID, board world.BoardID, cell geom.Vector, rayOriginRelative geom.Vector) {
		notified = occupant
		observedOffset = rayOriginRelative
	}

	LineCast(w, b, geom.Vector{2, 5}, geom.Vector{4, 0}, true, observe)
	if notified != 42 {
		t.Errorf("notified entity = %d, want 42", notified)
	}
	if observedOffset != (geom.Vector{-3, 0}) {
		t.Errorf("observed offset = %v, want {-3 0}", observedOffset)
	}
}
