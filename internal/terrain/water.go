package terrain

import (
	"github.com/fenwick-stacks/labyrinth/internal/config"
	"github.com/fenwick-stacks/labyrinth/internal/geom"
	"github.com/fenwick-stacks/labyrinth/internal/rng"
	"github.com/fenwick-stacks/labyrinth/internal/world"
)

// PlayerMover lets the water automaton push the player out of a flowing
// cell without this package depending on internal/player (spec.md §4.5:
// "If the source cell is the player's cell, also push the player one step
// in the flow direction").
type PlayerMover interface {
	PlayerBoardPos() (world.BoardID, geom.Vector)
	PushPlayer(dir geom.Direction)
}

type waterFlow struct {
	source Neighbor
	dest   Neighbor
	dir    geom.Direction
}

// TickWater runs one water step over every board (spec.md §4.5). First
// pass: any cell with both water and fire loses one unit of water and
// gains config.SteamPerWater steam. Second pass: any cell with water > 1
// proposes a one-unit flow to each portal-aware neighbor that is not wall,
// has no plant, and is at least 2 units shallower, with probability
// config.WaterFlowProbability(). Apply: shuffled, each flow re-checked
// against current depths before moving a unit; if the source was the
// player's cell, the player is pushed one step in the flow direction.
func TickWater(w *world.World, r *rng.Source, player PlayerMover) {
	for _, b := range w.Boards() {
		forEachCell(b.Width, b.Height, func(pos geom.Vector) {
			cell := b.At(pos)
			if cell.Water > 0 && cell.Fire {
				cell.Water--
				cell.Steam += config.SteamPerWater
			}
		})
	}

	var pending []waterFlow
	prob := config.WaterFlowProbability()

	for _, b := range w.Boards() {
		forEachCell(b.Width, b.Height, func(pos geom.Vector) {
			cell := b.At(pos)
			if cell.Water <= 1 {
				return
			}
			for _, dir := range geom.CardinalDirections {
				res := w.Step(b.ID, pos, dir)
				if res.OffBoard {
					continue
				}
				nc := w.Board(res.Board).At(res.Cell)
				if nc.Wall || nc.Plant > 0 || nc.Water > cell.Water-2 {
					continue
				}
				if r.Chance(prob) {
					pending = append(pending, waterFlow{
						source: Neighbor{Board: b.ID, Cell: pos},
						dest:   Neighbor{Board: res.Board, Cell: res.Cell},
						dir:    dir,
					})
				}
			}
		})
	}

	r.Shuffle(len(pending), func(i, j int) { pending[i], pending[j] = pending[j], pending[i] })
	for _, flow := range pending {
		src := w.Board(flow.source.Board).At(flow.source.Cell)
		dst := w.Board(flow.dest.Board).At(flow.dest.Cell)
		if src.Water-dst.Water < 2 {
			continue
		}

		if player != nil {
			if pb, pp := player.PlayerBoardPos(); pb == flow.source.Board && pp == flow.source.Cell {
				player.PushPlayer(flow.dir)
			}
		}

		src.Water--
		dst.Water++
	}
}
