package world

import (
	"github.com/fenwick-stacks/labyrinth/internal/config"
	"github.com/fenwick-stacks/labyrinth/internal/geom"
)

// NewDemoWorld builds a small hand-authored arena for cmd/labyrinth to boot
// into: a walled room with a water pool, a patch of plants, one turret
// site, a pair of boards joined by a straight, a rotated, and a reflected
// portal, and a retro-reflecting portal inside the main board -- one of
// each geometry spec.md §8's
// scenarios exercise, so the default run demonstrates all four from the
// first keypress (SPEC_FULL.md §4.10). Returns the arena, the id of the
// board the player should start on, the player's starting cell, and the
// cell a demo turret should be spawned on (spawning itself is
// cmd/labyrinth's job: it needs the entity registry, which does not exist
// until internal/sim.New runs).
func NewDemoWorld() (*World, BoardID, geom.Vector, geom.Vector) {
	w := NewWorld()
	main := w.AddBoard(config.BoardSize, config.BoardSize)
	annex := w.AddBoard(config.BoardSize/2, config.BoardSize/2)

	ringWalls(w.Board(main))
	ringWalls(w.Board(annex))

	pool(w.Board(main), geom.Vector{X: 10, Y: 10}, 4)
	thicket(w.Board(main), geom.Vector{X: 30, Y: 10}, 3)

	turretCell := geom.Vector{X: 50, Y: 50}
	w.Board(main).At(turretCell).GrassGlyph = 'o'

	// Straight portal: walking off the east wall of the main room drops you
	// at the west wall of the annex, facing unchanged.
	PairPortal(w, main, geom.Vector{X: config.BoardSize - 2, Y: 20}, geom.Right,
		annex, geom.Vector{X: 1, Y: 20}, geom.Left,
		geom.Identity, Tint{})

	// Rotated portal: a second doorway a few cells south twists the player
	// 90 degrees CCW on the way through.
	PairPortal(w, main, geom.Vector{X: config.BoardSize - 2, Y: 25}, geom.Right,
		annex, geom.Vector{X: 5, Y: 5}, geom.Up,
		geom.CCW, Tint{Set: true, FG: Color{R: 200, G: 0, B: 200}, BG: Color{R: 0, G: 0, B: 0}})

	// Reflected portal: a mirror doorway that flips the player's horizontal
	// facing.
	PairPortal(w, main, geom.Vector{X: config.BoardSize - 2, Y: 30}, geom.Right,
		annex, geom.Vector{X: 10, Y: 10}, geom.Right,
		geom.FlipX, Tint{Set: true, FG: Color{R: 0, G: 200, B: 200}, BG: Color{R: 0, G: 0, B: 0}})

	// Retro-reflector: a dead-end mirror that bounces a ray (or the player)
	// straight back the way it came.
	PairRetroReflector(w, main, geom.Vector{X: 60, Y: 60}, geom.Up, Tint{})

	return w, main, geom.Vector{X: 5, Y: 5}, turretCell
}

func ringWalls(b *Board) {
	for x := 0; x < b.Width; x++ {
		b.At(geom.Vector{X: x, Y: 0}).Wall = true
		b.At(geom.Vector{X: x, Y: b.Height - 1}).Wall = true
	}
	for y := 0; y < b.Height; y++ {
		b.At(geom.Vector{X: 0, Y: y}).Wall = true
		b.At(geom.Vector{X: b.Width - 1, Y: y}).Wall = true
	}
}

func pool(b *Board, center geom.Vector, radius int) {
	for y := center.Y - radius; y <= center.Y+radius; y++ {
		for x := center.X - radius; x <= center.X+radius; x++ {
			p := geom.Vector{X: x, Y: y}
			if !b.InBounds(p) {
				continue
			}
			dx, dy := x-center.X, y-center.Y
			if dx*dx+dy*dy <= radius*radius {
				b.At(p).Water = 2
			}
		}
	}
}

func thicket(b *Board, center geom.Vector, radius int) {
	for y := center.Y - radius; y <= center.Y+radius; y++ {
		for x := center.X - radius; x <= center.X+radius; x++ {
			p := geom.Vector{X: x, Y: y}
			if !b.InBounds(p) {
				continue
			}
			dx, dy := x-center.X, y-center.Y
			if dx*dx+dy*dy <= radius*radius {
				b.At(p).Plant = config.PlantMax
			}
		}
	}
}
