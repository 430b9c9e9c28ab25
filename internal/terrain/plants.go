package terrain

import (
	"github.com/fenwick-stacks/labyrinth/internal/config"
	"github.com/fenwick-stacks/labyrinth/internal/geom"
	"github.com/fenwick-stacks/labyrinth/internal/rng"
	"github.com/fenwick-stacks/labyrinth/internal/world"
)

type plantSpawn struct {
	target Neighbor
}

// TickPlants runs one plant-growth step over every board (spec.md §4.5).
// Scan: every cell with plant > 0 and no fire proposes spawning a fresh
// plant at each portal-aware neighbor that is walkable and plant-free, with
// probability config.PlantSpawnProbability() -- a spawned plant starts at
// config.PlantMax (original_source/main.cpp:136's PLANT_MAX_HEALTH), not
// a seedling value, so it takes several fire ticks to burn out rather than
// dying on first contact. Apply: proposals are shuffled and applied, each
// re-checked against the target's current plant count so two neighbors
// proposing the same cell in the same tick only grow it once.
func TickPlants(w *world.World, r *rng.Source) {
	var pending []plantSpawn
	prob := config.PlantSpawnProbability()

	for _, b := range w.Boards() {
		forEachCell(b.Width, b.Height, func(pos geom.Vector) {
			cell := b.At(pos)
			if cell.Fire || cell.Plant <= 0 {
				return
			}

			for _, n := range PortalNeighbors(w, b.ID, pos) {
				if !world.Walkable(w, n.Board, n.Cell, false) {
					continue
				}
				if r.Chance(prob) {
					pending = append(pending, plantSpawn{target: n})
				}
			}
		})
	}

	r.Shuffle(len(pending), func(i, j int) { pending[i], pending[j] = pending[j], pending[i] })
	for _, p := range pending {
		nc := w.Board(p.target.Board).At(p.target.Cell)
		if nc.Plant > 0 {
			continue
		}
		nc.Plant = config.PlantMax
	}
}
