package terrain

import (
	"testing"

	"github.com/fenwick-stacks/labyrinth/internal/geom"
	"github.com/fenwick-stacks/labyrinth/internal/rng"
	"github.com/fenwick-stacks/labyrinth/internal/world"
)

func TestTickSteamExtinguishesFire(t *testing.T) {
	w := world.NewWorld()
	b := w.AddBoard(10, 10)
	c := w.Board(b).At(geom.Vector{X: 5, Y: 5})
	c.Steam = 4
	c.Fire = true

	TickSteam(w, rng.New(1))

	if c.Fire {
		t.Error("steam should have extinguished fire")
	}
}

func TestTickSteamFadesToZeroAtOne(t *testing.T) {
	w := world.NewWorld()
	b := w.AddBoard(10, 10)
	c := w.Board(b).At(geom.Vector{X: 5, Y: 5})
	c.Steam = 1

	TickSteam(w, rng.New(1))

	if c.Steam != 0 {
		t.Errorf("steam = %d, want 0", c.Steam)
	}
}

func TestTickSteamDiffusesToMidpointWithSingleDownhill(t *testing.T) {
	w := world.NewWorld()
	b := w.AddBoard(10, 10)
	board := w.Board(b)
	pos := geom.Vector{X: 5, Y: 5}
	board.At(pos).Steam = 10

	// Wall off every direction except West so there is exactly one
	// downhill neighbor and the result is fully deterministic.
	for _, dir := range []geom.Direction{geom.Right, geom.Up, geom.Down} {
		res := w.Step(b, pos, dir)
		board.At(res.Cell).Wall = true
	}
	west := w.Step(b, pos, geom.Left).Cell

	TickSteam(w, rng.New(1))

	if board.At(pos).Steam != 5 {
		t.Errorf("source steam = %d, want 5", board.At(pos).Steam)
	}
	if board.At(west).Steam != 5 {
		t.Errorf("dest steam = %d, want 5", board.At(west).Steam)
	}
}

func TestTickSteamNeverDiffusesThroughWalls(t *testing.T) {
	w := world.NewWorld()
	b := w.AddBoard(10, 10)
	board := w.Board(b)
	pos := geom.Vector{X: 5, Y: 5}
	board.At(pos).Steam = 10

	for _, dir := range geom.CardinalDirections {
		res := w.Step(b, pos, dir)
		board.At(res.Cell).Wall = true
	}

	TickSteam(w, rng.New(1))

	if board.At(pos).Steam != 10 {
		t.Errorf("steam = %d, want 10 (no eligible neighbor)", board.At(pos).Steam)
	}
}
