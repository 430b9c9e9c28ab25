package entity

import (
	"github.com/fenwick-stacks/labyrinth/internal/geom"
	"github.com/fenwick-stacks/labyrinth/internal/world"
)

// Registry is the authoritative entity list: a map from EntityID to *Entity,
// generalizing the teacher's engine.ComponentStore pattern (one typed store
// per component kind) down to the single uniform Entity record spec.md §3
// calls for. Cell occupant slots and board entity lists are non-owning
// references into this map (spec.md §9 design note on cyclic ownership).
type Registry struct {
	entities map[world.EntityID]*Entity
	nextID   world.EntityID
}

// NewRegistry returns an empty registry. EntityID zero is reserved as the
// NoEntity sentinel, so ids start at 1.
func NewRegistry() *Registry {
	return &Registry{
		entities: make(map[world.EntityID]*Entity),
		nextID:   1,
	}
}

// Get resolves an EntityID, or reports false if it is not (or no longer)
// live.
func (r *Registry) Get(id world.EntityID) (*Entity, bool) {
	e, ok := r.entities[id]
	return e, ok
}

// Spawn places e on (board, pos), assuming the caller has already checked
// the destination is suitable (Flyable for arrows/motes, Walkable for
// turrets, per spec.md §4.8) -- Spawn itself only wires the invariants:
// cell.Occupant, the board's entity list, and the registry entry
// (spec.md §3 invariant 1).
func (r *Registry) Spawn(w *world.World, e *Entity, board world.BoardID, pos geom.Vector) *Entity {
	id := r.nextID
	r.nextID++

	e.ID = id
	e.Board = board
	e.Pos = pos

	r.entities[id] = e

	b := w.Board(board)
	b.At(pos).Occupant = id
	b.AddEntity(id)

	return e
}

// Remove destroys an entity: clears the cell occupant slot, drops it from
// its board's list, and removes it from the registry. A no-op if id is
// already gone (spec.md §7: already-removed entity tolerates duplicates).
func (r *Registry) Remove(w *world.World, id world.EntityID) {
	e, ok := r.entities[id]
	if !ok {
		return
	}

	b := w.Board(e.Board)
	if b.InBounds(e.Pos) {
		if cell := b.At(e.Pos); cell.Occupant == id {
			cell.Occupant = world.NoEntity
		}
	}
	b.RemoveEntity(id)

	delete(r.entities, id)
}

// Move relocates an already-spawned entity to a new board/cell, updating
// both cells' occupant slots and, if the entity crossed to a new board,
// both boards' lists (spec.md §4.4).
func (r *Registry) Move(w *world.World, e *Entity, newBoard world.BoardID, newPos geom.Vector) {
	oldBoard := w.Board(e.Board)
	if oldBoard.InBounds(e.Pos) {
		if cell := oldBoard.At(e.Pos); cell.Occupant == e.ID {
			cell.Occupant = world.NoEntity
		}
	}

	if e.Board != newBoard {
		oldBoard.RemoveEntity(e.ID)
		w.Board(newBoard).AddEntity(e.ID)
	}

	e.Board = newBoard
	e.Pos = newPos
	w.Board(newBoard).At(newPos).Occupant = e.ID
}
