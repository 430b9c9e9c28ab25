package sim

import (
	"github.com/fenwick-stacks/labyrinth/internal/config"
	"github.com/fenwick-stacks/labyrinth/internal/entity"
	"github.com/fenwick-stacks/labyrinth/internal/geom"
	"github.com/fenwick-stacks/labyrinth/internal/raycast"
	"github.com/fenwick-stacks/labyrinth/internal/terrain"
	"github.com/fenwick-stacks/labyrinth/internal/world"

	"github.com/fenwick-stacks/labyrinth/internal/sight"
)

// RunTurn executes one full turn in the fixed order spec.md §5 makes
// load-bearing: mutate player -> fire -> laser (if fired) -> plants ->
// water -> steam -> sight -> entities. Quit is handled by the caller (the
// input loop simply stops calling RunTurn); if a Quit command is passed
// here anyway, RunTurn returns without changing anything.
func RunTurn(w *World, cmd Command) {
	if cmd.Kind == Quit {
		return
	}

	switch cmd.Kind {
	case Move:
		w.Player.AttemptMove(cmd.Dir, true)
	case ShootArrow:
		w.Player.ShootArrow(w.Entities)
	case BuildTurret:
		w.Player.BuildTurret(w.Entities, config.TurretMaxCooldown, config.TurretDetectionRange)
	}

	terrain.TickFire(w.Boards, w.RNG)

	if cmd.Kind == LaserFire {
		w.Player.ShootLaser(w.Entities)
		w.Player.LaserRounds++
	} else {
		w.Player.LaserRounds = 0
	}

	terrain.TickPlants(w.Boards, w.RNG)
	terrain.TickWater(w.Boards, w.RNG, w.Player)
	terrain.TickSteam(w.Boards, w.RNG)

	w.Rays = sight.Update(w.Boards, w.Player.Board, w.Player.Pos, observeOccupant(w.Entities))

	entity.Tick(w.Boards, w.Entities, w.RNG, w.Player)
}

// observeOccupant adapts internal/entity's RelPlayerPos write to
// internal/raycast's OccupantObserver callback shape.
func observeOccupant(reg *entity.Registry) raycast.OccupantObserver {
	return func(occupant world.EntityID, board world.BoardID, cell geom.Vector, rel geom.Vector) {
		if e, ok := reg.Get(occupant); ok {
			e.RelPlayerPos = rel
		}
	}
}
