// Package sight implements the player's ray fan and the persistent memory
// map (spec.md §2 row "Sight & memory", §4.6). The fan casts sight rays in
// the world's frame -- not the player's rotated local frame -- from back to
// front draw order; internal/view is the one that re-expresses each ray's
// line_pos in the player's local frame via player_transform^-1.
package sight

import (
	"github.com/fenwick-stacks/labyrinth/internal/config"
	"github.com/fenwick-stacks/labyrinth/internal/geom"
)

// Fan returns the ordered list of perimeter targets every sight ray is cast
// toward: the four orthogonals, then each octant pair moving from orthogonal
// toward diagonal, then the four diagonals last (spec.md §4.6: "axis-
// aligned directions outward, octant-by-octant, with diagonals last"). This
// is also the rendering back-to-front paint order.
func Fan() []geom.Vector {
	radius := config.SightRadius
	targets := make([]geom.Vector, 0, 4*radius)

	targets = append(targets,
		geom.Vector{X: radius, Y: 0},
		geom.Vector{X: 0, Y: radius},
		geom.Vector{X: -radius, Y: 0},
		geom.Vector{X: 0, Y: -radius},
	)

	for i := 1; i < radius; i++ {
		targets = append(targets,
			geom.Vector{X: radius, Y: i},
			geom.Vector{X: i, Y: radius},
			geom.Vector{X: -i, Y: radius},
			geom.Vector{X: -radius, Y: i},
			geom.Vector{X: -radius, Y: -i},
			geom.Vector{X: -i, Y: -radius},
			geom.Vector{X: i, Y: -radius},
			geom.Vector{X: radius, Y: -i},
		)
	}

	targets = append(targets,
		geom.Vector{X: radius, Y: radius},
		geom.Vector{X: -radius, Y: radius},
		geom.Vector{X: radius, Y: -radius},
		geom.Vector{X: -radius, Y: -radius},
	)

	return targets
}
