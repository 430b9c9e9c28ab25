package terrain

import (
	"testing"

	"github.com/fenwick-stacks/labyrinth/internal/config"
	"github.com/fenwick-stacks/labyrinth/internal/geom"
	"github.com/fenwick-stacks/labyrinth/internal/rng"
	"github.com/fenwick-stacks/labyrinth/internal/world"
)

func TestTickPlantsNeverSpawnsFromBareCell(t *testing.T) {
	w := world.NewWorld()
	b := w.AddBoard(10, 10)
	board := w.Board(b)
	pos := geom.Vector{X: 5, Y: 5}
	// No plant at all: a bare cell never proposes a spawn.

	TickPlants(w, rng.New(1))

	east := w.Step(b, pos, geom.Right).Cell
	if board.At(east).Plant != 0 {
		t.Errorf("neighbor plant = %d, want 0", board.At(east).Plant)
	}
}

func TestTickPlantsNeverSpawnsWhileBurning(t *testing.T) {
	w := world.NewWorld()
	b := w.AddBoard(10, 10)
	board := w.Board(b)
	pos := geom.Vector{X: 5, Y: 5}
	board.At(pos).Plant = 5
	board.At(pos).Fire = true

	for seed := int64(0); seed < 200; seed++ {
		TickPlants(w, rng.New(seed))
	}

	for _, dir := range geom.CardinalDirections {
		res := w.Step(b, pos, dir)
		if board.At(res.Cell).Plant != 0 {
			t.Errorf("burning plant cell spawned a neighbor at %v", res.Cell)
		}
	}
}

func TestTickPlantsNeverRespawnsOnAlreadyPlantedNeighbor(t *testing.T) {
	w := world.NewWorld()
	b := w.AddBoard(10, 10)
	board := w.Board(b)
	pos := geom.Vector{X: 5, Y: 5}
	board.At(pos).Plant = 5
	east := w.Step(b, pos, geom.Right).Cell
	board.At(east).Plant = 3

	TickPlants(w, rng.New(1))

	if board.At(east).Plant != 3 {
		t.Errorf("already-planted neighbor changed to %d", board.At(east).Plant)
	}
}

func TestTickPlantsSpawnsOverManyTrialsNearExpectedProbability(t *testing.T) {
	prob := config.PlantSpawnProbability()
	trials := 4000
	spawns := 0

	for seed := int64(0); seed < int64(trials); seed++ {
		w := world.NewWorld()
		b := w.AddBoard(10, 10)
		board := w.Board(b)
		pos := geom.Vector{X: 5, Y: 5}
		board.At(pos).Plant = 5
		east := w.Step(b, pos, geom.Right).Cell
		for _, dir := range []geom.Direction{geom.Up, geom.Down, geom.Left} {
			res := w.Step(b, pos, dir)
			board.At(res.Cell).Wall = true
		}

		TickPlants(w, rng.New(seed))

		if board.At(east).Plant > 0 {
			spawns++
		}
	}

	got := float64(spawns) / float64(trials)
	if diff := got - prob; diff < -0.02 || diff > 0.02 {
		t.Errorf("spawn rate = %.4f, want close to %.4f (+/-0.02)", got, prob)
	}
}
