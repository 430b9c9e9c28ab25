package raycast

import (
	"github.com/fenwick-stacks/labyrinth/internal/geom"
	"github.com/fenwick-stacks/labyrinth/internal/world"
)

// Mapping is one entry of a cast Line: the cell a ray visited, its position
// in the ray's own frame, and the cumulative transform/tint accumulated to
// reach it (spec.md §4.3's SquareMap-equivalent record).
type Mapping struct {
	Board     world.BoardID
	Cell      geom.Vector
	LinePos   geom.Vector
	Transform geom.Transform
	Color     world.Tint
}

// Line is the ordered sequence of mappings a cast produces, from (but
// excluding) the ray's start toward its end.
type Line struct {
	Mappings []Mapping
}

// Last returns the final mapping, or false if the line never left its
// start (plotted had only one element, or the first step went off-board).
func (l Line) Last() (Mapping, bool) {
	if len(l.Mappings) == 0 {
		return Mapping{}, false
	}
	return l.Mappings[len(l.Mappings)-1], true
}

// OccupantObserver is called once per visited cell during a sight cast, for
// any cell that holds an entity, so the entity can record the ray's origin
// relative to itself (spec.md §4.3.g, the rel_player_pos write). Kept as a
// callback rather than a direct dependency so internal/raycast does not
// import internal/entity.
type OccupantObserver func(occupant world.EntityID, board world.BoardID, cell geom.Vector, rayOriginRelativeToCell geom.Vector)

// CurveCast walks a plotted chain of cells through the world graph,
// composing portal transforms at every step and returning the sequence of
// visited cells plus their cumulative transform and tint (spec.md §4.3).
// When isSight is true, the walk additionally stops at the first cell in
// the opacity set (wall, plant>0, steam>0) and, for every cell visited
// up to and including that one, reports any occupant to observe (may be
// nil).
func CurveCast(w *world.World, startBoard world.BoardID, plotted []geom.Vector, isSight bool, observe OccupantObserver) Line {
	var line Line
	if len(plotted) == 0 {
		return line
	}

	currentBoard := startBoard
	currentCell := plotted[0]
	transform := geom.Identity
	var color world.Tint

	for i := 1; i < len(plotted); i++ {
		naiveStep := plotted[i].Sub(plotted[i-1])
		localStep := transform.Apply(naiveStep)

		res := w.Step(currentBoard, currentCell, localStep)
		if res.OffBoard {
			break
		}

		transform = transform.Compose(res.Transform)
		if res.Tint.Set {
			color = res.Tint
		}

		currentBoard = res.Board
		currentCell = res.Cell

		line.Mappings = append(line.Mappings, Mapping{
			Board:     currentBoard,
			Cell:      currentCell,
			LinePos:   plotted[i].Sub(plotted[0]),
			Transform: transform,
			Color:     color,
		})

		if isSight {
			cell := w.Board(currentBoard).At(currentCell)
			if observe != nil && cell.Occupant != world.NoEntity {
				observe(cell.Occupant, currentBoard, currentCell, plotted[0].Sub(plotted[i]))
			}
			if cell.Wall || cell.Plant > 0 || cell.Steam > 0 {
				break
			}
		}
	}

	return line
}

// LineCast casts a straight ray of the given displacement from (board,
// cell): LineCast = CurveCast(board, Plot(displacement) translated to
// start at cell, isSight).
func LineCast(w *world.World, board world.BoardID, cell geom.Vector, displacement geom.Vector, isSight bool, observe OccupantObserver) Line {
	plotted := Plot(displacement)
	translated := make([]geom.Vector, len(plotted))
	for i, p := range plotted {
		translated[i] = p.Add(cell)
	}
	return CurveCast(w, board, translated, isSight, observe)
}
