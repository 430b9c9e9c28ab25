package world

import "github.com/fenwick-stacks/labyrinth/internal/geom"

// World is the arena of all boards, generalizing the teacher's ECS World
// (engine/world.go) from a single dynamic entity/component registry to a
// fixed set of boards created at init and indexed by BoardID for the
// lifetime of the run (spec.md §5, §9).
type World struct {
	boards []*Board
}

// NewWorld returns an empty arena.
func NewWorld() *World {
	return &World{}
}

// AddBoard allocates a new Width x Height board and returns its id.
func (w *World) AddBoard(width, height int) BoardID {
	id := BoardID(len(w.boards))
	w.boards = append(w.boards, NewBoard(id, width, height))
	return id
}

// Board resolves a BoardID. Every BoardID ever handed out by AddBoard
// resolves for the lifetime of the World (spec.md §5 resource-sharing
// guarantee); there is no RemoveBoard.
func (w *World) Board(id BoardID) *Board {
	return w.boards[id]
}

// Boards returns every board in creation order, for the terrain automata's
// "iterate every cell on every board" scan phase (spec.md §4.5).
func (w *World) Boards() []*Board {
	return w.boards
}

// StepResult is the outcome of the portal-aware stepping primitive
// (spec.md §4.1).
type StepResult struct {
	Board     BoardID
	Cell      geom.Vector
	Transform geom.Transform
	Tint      Tint
	OffBoard  bool
}

// Step maps (board, cell, dir) to the neighbor reached by leaving cell in
// direction dir, following a portal edge if one is installed on that side.
// This is the single primitive every movement, sight, and projectile
// operation in the simulation is built from (spec.md §4.1).
func (w *World) Step(boardID BoardID, cell geom.Vector, dir geom.Direction) StepResult {
	b := w.Board(boardID)
	if edge := b.At(cell).Edges[EdgeIndex(dir)]; edge != nil {
		return StepResult{
			Board:     edge.TargetBoard,
			Cell:      edge.TargetCell,
			Transform: edge.Transform,
			Tint:      edge.Tint,
		}
	}

	next := cell.Add(dir)
	if !b.InBounds(next) {
		return StepResult{OffBoard: true}
	}
	return StepResult{
		Board:     boardID,
		Cell:      next,
		Transform: geom.Identity,
	}
}
