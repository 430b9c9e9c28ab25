package player

import (
	"testing"

	"github.com/fenwick-stacks/labyrinth/internal/geom"
	"github.com/fenwick-stacks/labyrinth/internal/sight"
	"github.com/fenwick-stacks/labyrinth/internal/world"
)

func TestAttemptMoveStepsIntoWalkableCell(t *testing.T) {
	w := world.NewWorld()
	b := w.AddBoard(20, 20)
	p := New(w, sight.NewMemoryMap(5), b, geom.Vector{X: 10, Y: 10})

	if !p.AttemptMove(geom.Right, true) {
		t.Fatal("move into an empty cell should succeed")
	}
	if p.Pos != (geom.Vector{X: 11, Y: 10}) {
		t.Errorf("Pos = %v, want {11 10}", p.Pos)
	}
	if p.Faced != geom.Right {
		t.Errorf("Faced = %v, want Right", p.Faced)
	}
}

func TestAttemptMoveAbortsOnWall(t *testing.T) {
	w := world.NewWorld()
	b := w.AddBoard(20, 20)
	w.Board(b).At(geom.Vector{X: 11, Y: 10}).Wall = true
	p := New(w, sight.NewMemoryMap(5), b, geom.Vector{X: 10, Y: 10})

	if p.AttemptMove(geom.Right, true) {
		t.Error("move into a wall should abort")
	}
	if p.Pos != (geom.Vector{X: 10, Y: 10}) {
		t.Errorf("Pos changed on aborted move: %v", p.Pos)
	}
}

func TestAttemptMoveVoluntaryFalseStillMovesButLeavesFacedUnchanged(t *testing.T) {
	w := world.NewWorld()
	b := w.AddBoard(20, 20)
	p := New(w, sight.NewMemoryMap(5), b, geom.Vector{X: 10, Y: 10})
	p.Faced = geom.Up

	if !p.AttemptMove(geom.Right, false) {
		t.Fatal("involuntary move into an empty cell should succeed")
	}
	if p.Faced != geom.Up {
		t.Errorf("Faced = %v, want unchanged Up", p.Faced)
	}
	if p.Pos != (geom.Vector{X: 11, Y: 10}) {
		t.Errorf("Pos = %v, want {11 10}", p.Pos)
	}
}

func TestAttemptMoveThroughRotatingPortalUpdatesTransform(t *testing.T) {
	w := world.NewWorld()
	b := w.AddBoard(20, 20)
	from := geom.Vector{X: 10, Y: 10}
	to := geom.Vector{X: 10, Y: 15}
	world.PairPortal(w, b, from, geom.Right, b, to, geom.Up, geom.CCW, world.Tint{})

	p := New(w, sight.NewMemoryMap(5), b, from)
	if !p.AttemptMove(geom.Right, true) {
		t.Fatal("move through the portal should succeed")
	}
	if p.Pos != to {
		t.Errorf("Pos = %v, want %v", p.Pos, to)
	}
	if !p.Transform.Equal(geom.CCW) {
		t.Errorf("Transform = %v, want CCW", p.Transform)
	}
	if p.Faced != geom.CCW.Apply(geom.Right) {
		t.Errorf("Faced = %v, want %v", p.Faced, geom.CCW.Apply(geom.Right))
	}
}
