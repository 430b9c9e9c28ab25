package terrain

import (
	"github.com/fenwick-stacks/labyrinth/internal/geom"
	"github.com/fenwick-stacks/labyrinth/internal/rng"
	"github.com/fenwick-stacks/labyrinth/internal/world"
)

type steamFlow struct {
	source    Neighbor
	dest      Neighbor
	magnitude int
}

// TickSteam runs one steam-diffusion step over every board (spec.md §4.5).
// Pre-step: steam extinguishes fire outright, and a cell at steam==1 fades
// to 0. Scan: every cell with steam > 1 finds its portal-aware "downhill"
// neighbors (not wall, at least 2 units shallower) and proposes a flow to
// each that brings it toward the post-move average, spreading any leftover
// single units across the shuffled downhill list (spec.md §9: the leftover
// redistribution decrements its counter before checking it, so a leftover
// of 0 or less can go unused -- documented as-is, not a bug to silently
// "fix"). Apply: shuffled, each flow clamped so the move never overshoots
// past the midpoint differential, rounding toward zero.
func TickSteam(w *world.World, r *rng.Source) {
	for _, b := range w.Boards() {
		forEachCell(b.Width, b.Height, func(pos geom.Vector) {
			cell := b.At(pos)
			if cell.Steam > 0 && cell.Fire {
				cell.Fire = false
			}
			if cell.Steam == 1 {
				cell.Steam = 0
			}
		})
	}

	var pending []steamFlow

	for _, b := range w.Boards() {
		forEachCell(b.Width, b.Height, func(pos geom.Vector) {
			cell := b.At(pos)
			if cell.Steam <= 1 {
				return
			}

			var downhill []Neighbor
			total := cell.Steam
			for _, dir := range geom.CardinalDirections {
				res := w.Step(b.ID, pos, dir)
				if res.OffBoard {
					continue
				}
				nc := w.Board(res.Board).At(res.Cell)
				if nc.Wall || nc.Steam > cell.Steam-2 {
					continue
				}
				downhill = append(downhill, Neighbor{Board: res.Board, Cell: res.Cell})
				total += nc.Steam
			}
			if len(downhill) == 0 {
				return
			}

			count := 1 + len(downhill)
			avg := total / count
			extra := total - avg*count - 1

			r.Shuffle(len(downhill), func(i, j int) { downhill[i], downhill[j] = downhill[j], downhill[i] })
			for _, n := range downhill {
				nc := w.Board(n.Board).At(n.Cell)
				amount := avg - nc.Steam
				extra--
				if extra >= 0 {
					amount++
				}
				if amount <= 0 {
					continue
				}
				pending = append(pending, steamFlow{
					source:    Neighbor{Board: b.ID, Cell: pos},
					dest:      n,
					magnitude: amount,
				})
			}
		})
	}

	r.Shuffle(len(pending), func(i, j int) { pending[i], pending[j] = pending[j], pending[i] })
	for _, flow := range pending {
		src := w.Board(flow.source.Board).At(flow.source.Cell)
		dst := w.Board(flow.dest.Board).At(flow.dest.Cell)

		diff := src.Steam - dst.Steam
		if diff < 2 {
			continue
		}
		// Clamp to the midpoint differential, rounding toward zero
		// (spec.md §9 Design Notes): the move must not overshoot past
		// dst+m <= src-m.
		m := diff / 2
		if flow.magnitude < m {
			m = flow.magnitude
		}
		if m <= 0 {
			continue
		}
		src.Steam -= m
		dst.Steam += m
	}
}
