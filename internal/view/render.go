package view

import (
	"github.com/fenwick-stacks/labyrinth/internal/entity"
	"github.com/fenwick-stacks/labyrinth/internal/geom"
	"github.com/fenwick-stacks/labyrinth/internal/sight"
	"github.com/fenwick-stacks/labyrinth/internal/sim"
	"github.com/fenwick-stacks/labyrinth/internal/world"
)

// ScreenCell is one character cell of the rendered frame: a screen
// position plus the glyph/colors appearanceFor resolved for it.
type ScreenCell struct {
	Row, Col int
	Rune     rune
	FG, BG   world.Color
}

// playerGlyphs selects the facing indicator's '>'/'^'/'<'/'v' by
// quarter-turns CCW from Right, the same rotation-to-glyph convention
// original_source/main.cpp's drawEverything() uses.
var playerGlyphs = [4]rune{'>', '^', '<', 'v'}

// Render produces one frame's worth of screen cells for a numRows x numCols
// viewport centered on the player (spec.md §6): the memory map paints first
// as a dimmed backdrop ("rendered beneath the sight map", spec.md §4.6),
// then the current turn's sight fan (w.Rays, in sight.Fan's back-to-front
// order) overwrites every cell it actually reaches, and each painted sight
// cell is copied back into the memory map at its screen-relative offset as
// it goes (spec.md §4.6's memory-write contract). The player glyph (at
// screen center) and a facing indicator (one cell from center, toward the
// player's facing) are drawn last.
func Render(w *sim.World, numRows, numCols int) []ScreenCell {
	var cells []ScreenCell
	centerRow, centerCol := numRows/2, numCols/2
	playerTransformInv := w.Player.Transform.Inverse()

	toScreen := func(local geom.Vector) (int, int, bool) {
		row := centerRow - local.Y
		col := local.X + centerCol
		if row < 0 || row >= numRows || col < 0 || col >= numCols {
			return 0, 0, false
		}
		return row, col, true
	}

	w.Memory.Range(func(offset geom.Vector, g sight.Glyph) {
		row, col, ok := toScreen(offset)
		if !ok {
			return
		}
		cells = append(cells, ScreenCell{Row: row, Col: col, Rune: g.Rune, FG: dim(g.FG), BG: dim(g.BG)})
	})

	for _, line := range w.Rays {
		for _, m := range line.Mappings {
			local := playerTransformInv.Apply(m.LinePos)
			row, col, ok := toScreen(local)
			if !ok {
				continue
			}

			var a cellAppearance
			if m.Board == w.Player.Board && m.Cell == w.Player.Pos {
				// A mapping can loop back onto the player's own cell through a
				// portal (e.g. a retro-reflector) and land at a non-center
				// screen offset; spec.md §6 puts the player glyph ahead of
				// wall/steam/entity/water/plant/grass in the priority order,
				// so that offset still draws '@' rather than whatever terrain
				// or entity occupies the cell.
				a = cellAppearance{Rune: '@', FG: Yellow, BG: Black}
			} else {
				board := w.Boards.Board(m.Board)
				cell := board.At(m.Cell)

				var occupant *entity.Entity
				if cell.Occupant != world.NoEntity {
					occupant, _ = w.Entities.Get(cell.Occupant)
				}

				a = appearanceFor(cell, occupant, m, playerTransformInv)
			}

			cells = append(cells, ScreenCell{Row: row, Col: col, Rune: a.Rune, FG: a.FG, BG: a.BG})
			w.Memory.Paint(local, sight.Glyph{Rune: a.Rune, FG: a.FG, BG: a.BG})
		}
	}

	localFaced := playerTransformInv.Apply(w.Player.Faced)
	rotation := localFaced.CCWRotationsFromRight()
	cells = append(cells, ScreenCell{Row: centerRow, Col: centerCol, Rune: '@', FG: Yellow, BG: Black})

	aimRow, aimCol := centerRow, centerCol
	switch localFaced {
	case geom.Right:
		aimCol++
	case geom.Left:
		aimCol--
	case geom.Up:
		aimRow--
	case geom.Down:
		aimRow++
	}
	if aimRow >= 0 && aimRow < numRows && aimCol >= 0 && aimCol < numCols {
		cells = append(cells, ScreenCell{Row: aimRow, Col: aimCol, Rune: playerGlyphs[rotation], FG: Yellow, BG: Black})
	}

	return cells
}
