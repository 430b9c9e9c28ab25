package view

import (
	"github.com/fenwick-stacks/labyrinth/internal/config"
	"github.com/fenwick-stacks/labyrinth/internal/entity"
	"github.com/fenwick-stacks/labyrinth/internal/geom"
	"github.com/fenwick-stacks/labyrinth/internal/raycast"
	"github.com/fenwick-stacks/labyrinth/internal/world"
)

const plantGlyph = 'E'

// arrowGlyphs/moteGlyphs/turretGlyphs are indexed by the rotation count
// spec.md §6 derives for an entity: "(entity.faced_direction . mapping.T^-1)
// .ccw_rotations_from_right + player_transform^-1.ccw_rotations mod 4".
var arrowGlyphs = [4]rune{'>', '^', '<', 'v'}
var moteGlyphs = [4]rune{'#', '#', '#', '#'}
var turretGlyphs = [4]rune{'T', 'T', 'T', 'T'}

// cellAppearance is the glyph/fg/bg a single mapped cell resolves to, before
// the memory map or player overlay are considered.
type cellAppearance struct {
	Rune rune
	FG   world.Color
	BG   world.Color
}

// appearanceFor implements the glyph/color priority table of spec.md §6:
// player > wall > steam > entity > water > plant > grass, with fire always
// overriding background to red and a non-neutral mapping tint overriding
// any non-black foreground/background last. The player case is handled by
// the caller (render.go) before this function is reached, since it depends
// on the mapping's board/cell matching the player's own position rather
// than anything on the cell itself.
func appearanceFor(cell *world.Cell, occupant *entity.Entity, mapping raycast.Mapping, playerTransformInv geom.Transform) cellAppearance {
	a := cellAppearance{Rune: cell.GrassGlyph, FG: cell.GrassColor, BG: Black}

	switch {
	case cell.Wall:
		a = cellAppearance{Rune: ' ', FG: Black, BG: White}
	case cell.Steam > 0:
		a = cellAppearance{Rune: ' ', FG: White, BG: Gray}
	case occupant != nil:
		a = entityAppearance(occupant, mapping, playerTransformInv)
	case cell.Water > 0:
		a.Rune = ' '
		a.FG = White
		if cell.Water <= config.ShallowWaterDepth {
			a.BG = Cyan
		} else {
			a.BG = Blue
		}
	case cell.Plant > 0:
		a = cellAppearance{Rune: plantGlyph, FG: Green, BG: Black}
	}

	if cell.Fire {
		a.BG = Red
	}

	if mapping.Color.Set {
		if !isBlack(a.FG) {
			a.FG = mapping.Color.FG
		}
		if !isBlack(a.BG) {
			a.BG = mapping.Color.BG
		}
	}

	return a
}

func entityAppearance(e *entity.Entity, mapping raycast.Mapping, playerTransformInv geom.Transform) cellAppearance {
	localFaced := mapping.Transform.Inverse().Apply(e.Faced)
	rotation := (localFaced.CCWRotationsFromRight() + playerTransformInv.CCWRotationsFromRight()) % 4

	var glyph rune
	switch e.Kind {
	case entity.KindArrow:
		glyph = arrowGlyphs[rotation]
	case entity.KindTurret:
		glyph = turretGlyphs[rotation]
	default:
		glyph = moteGlyphs[rotation]
	}

	fg := White
	if e.Kind == entity.KindTurret && e.Cooldown > 0 {
		fg = Gray
	}
	return cellAppearance{Rune: glyph, FG: fg, BG: Black}
}
