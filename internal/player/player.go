// Package player implements the player singleton and its action loop
// (spec.md §2 row "Player model"/"Player action loop", §3, §4.8): attempted
// movement, arrow/turret spawning, and the multi-stream laser.
package player

import (
	"github.com/fenwick-stacks/labyrinth/internal/geom"
	"github.com/fenwick-stacks/labyrinth/internal/sight"
	"github.com/fenwick-stacks/labyrinth/internal/world"
)

// Player is the single player record (spec.md §3): its board/cell, the
// direction it currently faces, the cumulative transform accumulated by
// every portal it has stepped through, and the laser charge-up counter.
type Player struct {
	Board     world.BoardID
	Pos       geom.Vector
	Faced     geom.Direction
	Transform geom.Transform

	// LaserRounds is consecutive_laser_rounds (spec.md §4.8): incremented
	// each consecutive laser turn, reset to 0 on any other command.
	LaserRounds int

	world  *world.World
	memory *sight.MemoryMap
}

// New returns a player standing at (board, pos), facing Right, with the
// identity transform -- the spec.md §3 zero state.
func New(w *world.World, memory *sight.MemoryMap, board world.BoardID, pos geom.Vector) *Player {
	return &Player{
		Board:     board,
		Pos:       pos,
		Faced:     geom.Right,
		Transform: geom.Identity,
		world:     w,
		memory:    memory,
	}
}

// PlayerAt satisfies internal/entity.PlayerLocator: turret detection rays
// recognize the player's cell without this package's dependents needing to
// import internal/player.
func (p *Player) PlayerAt(board world.BoardID, cell geom.Vector) bool {
	return p.Board == board && p.Pos == cell
}

// PlayerBoardPos satisfies internal/terrain.PlayerMover.
func (p *Player) PlayerBoardPos() (world.BoardID, geom.Vector) {
	return p.Board, p.Pos
}

// PushPlayer satisfies internal/terrain.PlayerMover: an involuntary
// one-step move, e.g. being carried by a water flow (spec.md §4.5).
func (p *Player) PushPlayer(dir geom.Direction) {
	p.AttemptMove(dir, false)
}
