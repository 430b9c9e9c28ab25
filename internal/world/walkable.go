package world

import (
	"github.com/fenwick-stacks/labyrinth/internal/config"
	"github.com/fenwick-stacks/labyrinth/internal/geom"
)

// Empty reports whether pos is on-board, has no wall, fire, water (even a
// trace), plant, or entity, and is not the player's cell (spec.md §4.7).
func Empty(w *World, board BoardID, pos geom.Vector, playerHere bool) bool {
	b := w.Board(board)
	if !b.InBounds(pos) || playerHere {
		return false
	}
	c := b.At(pos)
	return !c.Wall && !c.Fire && c.Water == 0 && c.Plant == 0 && c.Occupant == NoEntity
}

// Walkable reports whether pos is on-board, has no wall, plant, fire, or
// entity, is not the player's cell, and has water depth at most
// config.ShallowWaterDepth (spec.md §4.7).
func Walkable(w *World, board BoardID, pos geom.Vector, playerHere bool) bool {
	b := w.Board(board)
	if !b.InBounds(pos) || playerHere {
		return false
	}
	c := b.At(pos)
	return !c.Wall && c.Plant == 0 && !c.Fire && c.Occupant == NoEntity && c.Water <= config.ShallowWaterDepth
}

// Flyable reports whether pos is on-board, has no wall, plant, or entity,
// and is not the player's cell. Water and fire are permitted (spec.md §4.7).
func Flyable(w *World, board BoardID, pos geom.Vector, playerHere bool) bool {
	b := w.Board(board)
	if !b.InBounds(pos) || playerHere {
		return false
	}
	c := b.At(pos)
	return !c.Wall && c.Plant == 0 && c.Occupant == NoEntity
}
