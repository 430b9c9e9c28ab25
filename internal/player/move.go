package player

import (
	"github.com/fenwick-stacks/labyrinth/internal/geom"
	"github.com/fenwick-stacks/labyrinth/internal/raycast"
	"github.com/fenwick-stacks/labyrinth/internal/world"
)

// AttemptMove implements spec.md §4.8 attemptMove. step is already expressed
// in the world's frame at the player's current cell -- the caller (the
// input-to-command layer) is the one that turns a raw local key direction
// into this world-frame step by applying the player's current Transform,
// mirroring the original source's `attemptMove(dp * player_transform)` call
// convention. Returns whether the move actually happened.
func (p *Player) AttemptMove(step geom.Vector, voluntary bool) bool {
	if voluntary {
		p.Faced = step
	}

	line := raycast.LineCast(p.world, p.Board, p.Pos, step, false, nil)
	mapping, ok := line.Last()
	if !ok {
		return false
	}

	playerHere := p.PlayerAt(mapping.Board, mapping.Cell)
	if !world.Walkable(p.world, mapping.Board, mapping.Cell, playerHere) {
		return false
	}

	if p.memory != nil {
		localShift := p.Transform.Inverse().Apply(step)
		p.memory.Shift(localShift)
	}

	edge := mapping.Transform
	p.Faced = edge.Apply(p.Faced)
	p.Transform = p.Transform.Compose(edge)
	p.Board = mapping.Board
	p.Pos = mapping.Cell

	return true
}
