package sim

import "github.com/fenwick-stacks/labyrinth/internal/geom"

// CommandKind is one of the player inputs a turn can carry (spec.md §6:
// "Quit, LaserFire, ShootArrow, BuildTurret" plus the four movement
// directions).
type CommandKind int

const (
	Move CommandKind = iota
	LaserFire
	ShootArrow
	BuildTurret
	Quit
)

// Command is one turn's worth of player input. Dir is only meaningful for
// Move, and is already in the world's frame at the player's current cell
// (the input layer applies the player's Transform to the raw key direction
// before building this, mirroring the original's `attemptMove(dp *
// player_transform)` call convention -- see internal/player.AttemptMove).
type Command struct {
	Kind CommandKind
	Dir  geom.Direction
}
