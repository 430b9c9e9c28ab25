package entity

import (
	"github.com/fenwick-stacks/labyrinth/internal/geom"
	"github.com/fenwick-stacks/labyrinth/internal/raycast"
	"github.com/fenwick-stacks/labyrinth/internal/rng"
	"github.com/fenwick-stacks/labyrinth/internal/world"
)

// PlayerLocator tells the entity tick where the player currently stands, so
// a turret's detection ray can recognize "the player is here" the same way
// it recognizes an occupied cell, without this package depending on
// internal/player.
type PlayerLocator interface {
	PlayerAt(board world.BoardID, cell geom.Vector) bool
}

// Tick runs the per-tick behavior of spec.md §4.4 for every board, for
// every entity in board-insertion order: face-player for homing entities,
// one step for moving entities, and a detection-ray shot for turrets.
// Deletions are collected during the pass and applied afterward, so the
// board's live-entity slice is never mutated while it is being iterated
// (spec.md §5 iterator-safety guarantee).
func Tick(w *world.World, reg *Registry, r *rng.Source, player PlayerLocator) {
	var toRemove []world.EntityID
	var toSpawn []spawnRequest

	for _, b := range w.Boards() {
		ids := make([]world.EntityID, len(b.Entities))
		copy(ids, b.Entities)

		for _, id := range ids {
			e, ok := reg.Get(id)
			if !ok {
				continue
			}

			if e.Homing {
				facePlayer(e, r)
			}

			if e.Moving {
				tickMoving(w, reg, e, &toRemove)
			}

			if e.CanShoot {
				tickShooting(w, e, player, &toSpawn)
			}
		}
	}

	for _, id := range toRemove {
		reg.Remove(w, id)
	}
	for _, req := range toSpawn {
		newEntity := NewArrow(req.faced)
		reg.Spawn(w, newEntity, req.board, req.pos)
	}
}

type spawnRequest struct {
	board world.BoardID
	pos   geom.Vector
	faced geom.Direction
}

// facePlayer sets e.Faced to the axis-aligned direction whose sign matches
// the larger-magnitude component of e.RelPlayerPos; on an exact tie it
// picks the axis with a uniform random bit, then the direction from that
// component's sign. A zero RelPlayerPos (never observed / lost) leaves
// Faced unchanged (spec.md §4.4).
func facePlayer(e *Entity, r *rng.Source) {
	rel := e.RelPlayerPos
	if rel.IsZero() {
		return
	}

	axisX := abs(rel.X) > abs(rel.Y)
	if abs(rel.X) == abs(rel.Y) {
		axisX = r.Bool()
	}

	if axisX {
		if rel.X > 0 {
			e.Faced = geom.Right
		} else {
			e.Faced = geom.Left
		}
	} else {
		if rel.Y > 0 {
			e.Faced = geom.Up
		} else {
			e.Faced = geom.Down
		}
	}
}

// tickMoving steps e one cell in its faced direction if the destination is
// flyable; otherwise, if die-on-touch, inflicts the touch effect on
// whatever blocked the step and marks e for removal (spec.md §4.4).
func tickMoving(w *world.World, reg *Registry, e *Entity, toRemove *[]world.EntityID) {
	res := w.Step(e.Board, e.Pos, e.Faced)
	if res.OffBoard {
		if e.DieOnTouch {
			*toRemove = append(*toRemove, e.ID)
		}
		return
	}

	destBoard := w.Board(res.Board)
	if world.Flyable(w, res.Board, res.Cell, false) {
		step := e.Faced
		reg.Move(w, e, res.Board, res.Cell)
		e.RelPlayerPos = res.Transform.Apply(e.RelPlayerPos.Sub(step))
		e.Faced = res.Transform.Apply(step)
		return
	}

	if !e.DieOnTouch {
		return
	}

	blocker := destBoard.At(res.Cell)
	switch {
	case blocker.Wall:
		// No effect; arrow simply stops and is removed below.
	case blocker.Plant > 0:
		blocker.Plant--
	case blocker.Occupant != world.NoEntity:
		*toRemove = append(*toRemove, blocker.Occupant)
	}
	*toRemove = append(*toRemove, e.ID)
}

// tickShooting ticks a turret's cooldown and, once ready, casts a detection
// ray; if it finds a target before the first wall and the first cell of
// the ray is flyable, it requests an arrow spawn there and resets the
// cooldown (spec.md §4.4).
func tickShooting(w *world.World, e *Entity, player PlayerLocator, toSpawn *[]spawnRequest) {
	if e.Cooldown > 0 {
		e.Cooldown--
		return
	}

	plotted := raycast.Plot(vectorOf(e.DetectionRange, e.Faced))
	translated := make([]geom.Vector, len(plotted))
	for i, p := range plotted {
		translated[i] = p.Add(e.Pos)
	}
	line := raycast.CurveCast(w, e.Board, translated, false, nil)

	var firstStepBoard world.BoardID
	var firstStepCell geom.Vector
	var firstStepTransform geom.Transform
	foundTarget := false

	for i, m := range line.Mappings {
		if i == 0 {
			firstStepBoard = m.Board
			firstStepCell = m.Cell
			firstStepTransform = m.Transform
		}
		cell := w.Board(m.Board).At(m.Cell)
		if cell.Wall {
			break
		}
		if cell.Occupant != world.NoEntity || player.PlayerAt(m.Board, m.Cell) {
			foundTarget = true
			break
		}
	}

	if !foundTarget || len(line.Mappings) == 0 {
		return
	}
	if !world.Flyable(w, firstStepBoard, firstStepCell, player.PlayerAt(firstStepBoard, firstStepCell)) {
		return
	}

	*toSpawn = append(*toSpawn, spawnRequest{
		board: firstStepBoard,
		pos:   firstStepCell,
		faced: firstStepTransform.Apply(e.Faced),
	})
	e.Cooldown = e.MaxCooldown
}

func vectorOf(magnitude int, dir geom.Direction) geom.Vector {
	return geom.Vector{X: dir.X * magnitude, Y: dir.Y * magnitude}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
