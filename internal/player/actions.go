package player

import (
	"github.com/fenwick-stacks/labyrinth/internal/entity"
	"github.com/fenwick-stacks/labyrinth/internal/raycast"
	"github.com/fenwick-stacks/labyrinth/internal/world"
)

// ShootArrow line-casts one step in the player's faced direction and, if
// the destination is flyable, spawns an arrow there facing the step's
// transformed direction (spec.md §4.8).
func (p *Player) ShootArrow(reg *entity.Registry) {
	mapping, ok := p.stepTarget()
	if !ok {
		return
	}
	if !world.Flyable(p.world, mapping.Board, mapping.Cell, p.PlayerAt(mapping.Board, mapping.Cell)) {
		return
	}

	arrow := entity.NewArrow(mapping.Transform.Apply(p.Faced))
	reg.Spawn(p.world, arrow, mapping.Board, mapping.Cell)
}

// BuildTurret line-casts one step in the player's faced direction and, if
// the destination is walkable, spawns a stationary turret there
// (spec.md §4.8).
func (p *Player) BuildTurret(reg *entity.Registry, maxCooldown, detectionRange int) {
	mapping, ok := p.stepTarget()
	if !ok {
		return
	}
	if !world.Walkable(p.world, mapping.Board, mapping.Cell, p.PlayerAt(mapping.Board, mapping.Cell)) {
		return
	}

	turret := entity.NewTurret(mapping.Transform.Apply(p.Faced), maxCooldown, detectionRange)
	reg.Spawn(p.world, turret, mapping.Board, mapping.Cell)
}

// stepTarget single-cell line-casts from the player's cell in its faced
// direction, returning the destination mapping (spec.md §4.8: "line-cast
// one step in player.faced_direction").
func (p *Player) stepTarget() (raycast.Mapping, bool) {
	line := raycast.LineCast(p.world, p.Board, p.Pos, p.Faced, false, nil)
	return line.Last()
}
