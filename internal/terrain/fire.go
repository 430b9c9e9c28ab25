package terrain

import (
	"github.com/fenwick-stacks/labyrinth/internal/config"
	"github.com/fenwick-stacks/labyrinth/internal/geom"
	"github.com/fenwick-stacks/labyrinth/internal/rng"
	"github.com/fenwick-stacks/labyrinth/internal/world"
)

type fireSpawn struct {
	target Neighbor
}

// TickFire runs one fire-spread step over every board (spec.md §4.5).
// Scan: every burning cell consumes one point of plant, self-extinguishes
// once plant reaches 0, and otherwise proposes spreading to each non-wall,
// non-burning neighbor with probability config.FireSpreadProbability().
// Apply: proposals are shuffled and set, each still conditional on the
// target not already burning.
func TickFire(w *world.World, r *rng.Source) {
	var pending []fireSpawn
	prob := config.FireSpreadProbability()

	for _, b := range w.Boards() {
		forEachCell(b.Width, b.Height, func(pos geom.Vector) {
			cell := b.At(pos)
			if !cell.Fire {
				return
			}

			if cell.Plant > 0 {
				cell.Plant--
			}
			if cell.Plant == 0 {
				cell.Fire = false
				return
			}

			for _, n := range PortalNeighbors(w, b.ID, pos) {
				nc := w.Board(n.Board).At(n.Cell)
				if nc.Wall || nc.Fire {
					continue
				}
				if r.Chance(prob) {
					pending = append(pending, fireSpawn{target: n})
				}
			}
		})
	}

	r.Shuffle(len(pending), func(i, j int) { pending[i], pending[j] = pending[j], pending[i] })
	for _, p := range pending {
		w.Board(p.target.Board).At(p.target.Cell).Fire = true
	}
}
