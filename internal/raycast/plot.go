// Package raycast implements the Bresenham-like plotter and the line-cast
// engine built on top of it (spec.md §4.2-§4.3): the discrete traversal of
// a target displacement into an ordered chain of orthogonally-adjacent
// cells, and the portal-aware walk of that chain that accumulates a
// cumulative transform and tint.
package raycast

import (
	"math"

	"github.com/fenwick-stacks/labyrinth/internal/geom"
)

// Plot produces the chain of integer cells from (0,0) to target in which
// each consecutive pair differs by exactly one orthogonal unit step -- no
// diagonals. The sequence includes (0,0) as its first element (spec.md
// §4.2). Ported from the original's orthogonalBresneham(vect2Di): walk
// num_steps = max(|target.x|, |target.y|) straight ticks along the ideal
// line, and wherever a tick would otherwise land diagonally, insert the
// orthogonal intermediate cell the ideal line actually crosses first.
func Plot(target geom.Vector) []geom.Vector {
	output := []geom.Vector{{0, 0}}

	numSteps := max(abs(target.X), abs(target.Y))
	if numSteps == 0 {
		return output
	}

	dx := float64(target.X) / float64(numSteps)
	dy := float64(target.Y) / float64(numSteps)

	x, y := 0.0, 0.0
	pos := geom.Vector{0, 0}

	for step := 0; step < numSteps; step++ {
		nextX := x + dx
		nextY := y + dy
		nextPos := geom.Vector{X: roundToInt(nextX), Y: roundToInt(nextY)}

		if abs(nextPos.X-pos.X)+abs(nextPos.Y-pos.Y) > 1 {
			// Diagonal step: insert the orthogonal intermediate cell the
			// ideal line crosses first.
			yDivision := math.Round(math.Min(y, nextY)) + 0.5
			xDivision := math.Round(math.Min(x, nextX)) + 0.5
			stepSlope := (nextY - y) / (nextX - x)
			yAtXDivision := y + stepSlope*(xDivision-x)

			horizontalFirst := (nextY > y && yAtXDivision < yDivision) ||
				(nextY < y && yAtXDivision > yDivision)

			if horizontalFirst {
				output = append(output, geom.Vector{X: nextPos.X, Y: pos.Y})
			} else {
				output = append(output, geom.Vector{X: pos.X, Y: nextPos.Y})
			}
		}

		output = append(output, nextPos)
		x, y = nextX, nextY
		pos = nextPos
	}

	return output
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func roundToInt(f float64) int {
	return int(math.Round(f))
}
