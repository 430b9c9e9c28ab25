package terrain

import (
	"testing"

	"github.com/fenwick-stacks/labyrinth/internal/geom"
	"github.com/fenwick-stacks/labyrinth/internal/rng"
	"github.com/fenwick-stacks/labyrinth/internal/world"
)

type stubPlayerMover struct {
	board   world.BoardID
	pos     geom.Vector
	present bool
	pushed  geom.Direction
	didPush bool
}

func (s stubPlayerMover) PlayerBoardPos() (world.BoardID, geom.Vector) { return s.board, s.pos }
func (s *stubPlayerMover) PushPlayer(dir geom.Direction) {
	s.pushed = dir
	s.didPush = true
}

func TestTickWaterExtinguishingCellProducesSteam(t *testing.T) {
	w := world.NewWorld()
	b := w.AddBoard(10, 10)
	c := w.Board(b).At(geom.Vector{X: 5, Y: 5})
	c.Water = 3
	c.Fire = true

	TickWater(w, rng.New(1), nil)

	// One unit boils off (3 -> 2); the remaining 2 exceed each dry neighbor
	// by 2, so exactly one more unit flows out before the difference drops
	// below 2.
	if c.Water != 1 {
		t.Errorf("water = %d, want 1", c.Water)
	}
	if c.Steam != 100 {
		t.Errorf("steam = %d, want 100", c.Steam)
	}
	if !c.Fire {
		t.Error("water alone should not extinguish fire -- that's steam's job")
	}
}

func TestTickWaterFlowsToShallowerNeighbor(t *testing.T) {
	w := world.NewWorld()
	b := w.AddBoard(10, 10)
	board := w.Board(b)
	pos := geom.Vector{X: 5, Y: 5}
	board.At(pos).Water = 5
	east := w.Step(b, pos, geom.Right).Cell

	TickWater(w, rng.New(1), nil)

	// All four dry neighbors qualify and flow is unconditional at the
	// default AvgWaterFlowTime, so each receives one unit: 5 -> 1.
	if board.At(pos).Water != 1 {
		t.Errorf("source water = %d, want 1", board.At(pos).Water)
	}
	if board.At(east).Water != 1 {
		t.Errorf("dest water = %d, want 1", board.At(east).Water)
	}
}

func TestTickWaterNeverFlowsThroughWallOrOntoPlant(t *testing.T) {
	w := world.NewWorld()
	b := w.AddBoard(10, 10)
	board := w.Board(b)
	pos := geom.Vector{X: 5, Y: 5}
	board.At(pos).Water = 5

	for _, dir := range geom.CardinalDirections {
		res := w.Step(b, pos, dir)
		board.At(res.Cell).Wall = true
	}

	TickWater(w, rng.New(1), nil)

	if board.At(pos).Water != 5 {
		t.Errorf("water = %d, want 5 (no eligible neighbor)", board.At(pos).Water)
	}
}

func TestTickWaterPushesPlayerOutOfFlowingSourceCell(t *testing.T) {
	w := world.NewWorld()
	b := w.AddBoard(10, 10)
	board := w.Board(b)
	pos := geom.Vector{X: 5, Y: 5}
	board.At(pos).Water = 5

	mover := &stubPlayerMover{board: b, pos: pos, present: true}
	TickWater(w, rng.New(1), mover)

	if !mover.didPush {
		t.Error("player standing in the flowing source cell should have been pushed")
	}
}
