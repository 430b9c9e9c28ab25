package world

import (
	"github.com/fenwick-stacks/labyrinth/internal/geom"
	"github.com/google/uuid"
)

// BoardID indexes into the World arena. Boards are created at init and
// never destroyed (spec.md §5): portal edges and entities reference a
// board by this small integer rather than a pointer, so the board <->
// portal <-> entity <-> cell cycle needs no reference counting (spec.md §9).
type BoardID int

// Board is a fixed-size dense grid of cells plus the ordered list of live
// entities currently on it (spec.md §3). Entities is ordered by insertion:
// the entity tick (internal/entity) iterates it in that order. NoEntity
// (EntityID 0) is never handed out, so it never appears in the list.
type Board struct {
	ID     BoardID
	Tag    uuid.UUID // log-correlation only, not used for control flow
	Width  int
	Height int
	Cells  []Cell // row-major, len == Width*Height

	Entities []EntityID // live entities on this board, insertion order
}

// NewBoard allocates a Width x Height grid of empty cells.
func NewBoard(id BoardID, width, height int) *Board {
	return &Board{
		ID:     id,
		Tag:    uuid.New(),
		Width:  width,
		Height: height,
		Cells:  make([]Cell, width*height),
	}
}

// InBounds reports whether pos lies on this board.
func (b *Board) InBounds(pos geom.Vector) bool {
	return pos.X >= 0 && pos.X < b.Width && pos.Y >= 0 && pos.Y < b.Height
}

func (b *Board) index(pos geom.Vector) int {
	return pos.Y*b.Width + pos.X
}

// At returns a pointer to the cell at pos. Callers must check InBounds
// first; At does not bounds-check (hot path, called once per ray step).
func (b *Board) At(pos geom.Vector) *Cell {
	return &b.Cells[b.index(pos)]
}

// AddEntity appends id to the board's live entity list.
func (b *Board) AddEntity(id EntityID) {
	b.Entities = append(b.Entities, id)
}

// RemoveEntity drops id from the board's live entity list. A no-op if id is
// not present (spec.md §7: already-removed entity is an absorbing no-op).
func (b *Board) RemoveEntity(id EntityID) {
	for i, e := range b.Entities {
		if e == id {
			b.Entities = append(b.Entities[:i], b.Entities[i+1:]...)
			return
		}
	}
}
