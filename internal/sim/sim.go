// Package sim is the turn orchestrator: it wires internal/world,
// internal/entity, internal/terrain, internal/sight, and internal/player
// together into the fixed six-phase-plus-entity-tick turn spec.md §5
// mandates (spec.md §2 row "Control flow", §5).
package sim

import (
	"github.com/fenwick-stacks/labyrinth/internal/entity"
	"github.com/fenwick-stacks/labyrinth/internal/geom"
	"github.com/fenwick-stacks/labyrinth/internal/player"
	"github.com/fenwick-stacks/labyrinth/internal/raycast"
	"github.com/fenwick-stacks/labyrinth/internal/rng"
	"github.com/fenwick-stacks/labyrinth/internal/sight"
	"github.com/fenwick-stacks/labyrinth/internal/world"
)

// World is the simulation-scoped aggregate a turn runs against -- not the
// teacher's ECS World, but the board arena plus the player, entity
// registry, shared PRNG, and memory map, generalizing the teacher's
// engine.World.systems + sequential Update() pattern (engine/world.go) into
// our spec's fixed, non-reorderable phase order (SPEC_FULL.md §4.8).
type World struct {
	Boards   *world.World
	Player   *player.Player
	Entities *entity.Registry
	RNG      *rng.Source
	Memory   *sight.MemoryMap

	// Rays holds the most recent sight fan, rebuilt every turn's sight
	// phase and read by internal/view to render the current frame
	// (spec.md §9 Design Notes "Rendering coupling": sight update stays
	// pure, the renderer is a separate consumer of its output).
	Rays []raycast.Line
}

// New assembles a fresh simulation World over an already-built board arena:
// a player standing at (board, pos), an empty entity registry, a PRNG
// seeded from seed, and a memory map sized to config.MemoryMapSize.
func New(boards *world.World, board world.BoardID, pos geom.Vector, seed int64) *World {
	memory := sight.NewDefaultMemoryMap()
	return &World{
		Boards:   boards,
		Player:   player.New(boards, memory, board, pos),
		Entities: entity.NewRegistry(),
		RNG:      rng.New(seed),
		Memory:   memory,
	}
}
