package player

import (
	"math"

	"github.com/fenwick-stacks/labyrinth/internal/config"
	"github.com/fenwick-stacks/labyrinth/internal/entity"
	"github.com/fenwick-stacks/labyrinth/internal/geom"
	"github.com/fenwick-stacks/labyrinth/internal/raycast"
	"github.com/fenwick-stacks/labyrinth/internal/world"
)

// laserShape is the closed-form trajectory of one laser stream (spec.md
// §4.8), ported directly from original_source/main.cpp's laserShape: x is
// in cells along the stream, t is consecutive_laser_rounds, phase is
// scaled so a full circle is 1.0.
func laserShape(x, t, phase float64) float64 {
	growth := math.Min(math.Exp(t*config.LaserGrowthScale)-1, config.LaserGrowthMax)
	return math.Sin(x/config.LaserWavelength-t/config.LaserPeriod+phase*2*math.Pi) * x * config.LaserDistScale * growth
}

// naiveLaserSquares samples y(x) at x = 0, stride, 2*stride, ... up to
// 2*SIGHT_RADIUS and stitches a straight Plot chain between each consecutive
// sample, skipping the duplicate leading cell of every chain but the first
// (spec.md §4.8, §9 Design Notes "Laser multi-stream sinusoid").
func naiveLaserSquares(t int, phase float64) []geom.Vector {
	laserRange := config.SightRadius * 2
	squares := []geom.Vector{{X: 0, Y: 0}}
	prev := geom.Vector{X: 0, Y: 0}

	for x := config.LaserSampleStride; x <= laserRange; x += config.LaserSampleStride {
		y := int(math.Round(laserShape(float64(x), float64(t), phase)))
		next := geom.Vector{X: x, Y: y}

		segment := raycast.Plot(next.Sub(prev))
		for i := 1; i < len(segment); i++ {
			squares = append(squares, segment[i].Add(prev))
		}
		prev = next
	}

	return squares
}

// ShootLaser fires NUM_STREAMS sinusoidal beams from the player's cell,
// rotated to its faced direction, each setting fire and deleting entities up
// to the first wall -- plants absorb one hit and block the rest of the beam
// (spec.md §4.8). The caller is responsible for LaserRounds bookkeeping:
// internal/sim.RunTurn increments it after each laser turn and resets it to
// 0 on any other command, so the first shot of a run fires with t=0.
func (p *Player) ShootLaser(reg *entity.Registry) {
	rot := rotationTransform(p.Faced)

	for stream := 0; stream < config.LaserNumStreams; stream++ {
		phase := float64(stream) / float64(config.LaserNumStreams+25)
		naive := naiveLaserSquares(p.LaserRounds, phase)

		plotted := make([]geom.Vector, len(naive))
		for i, v := range naive {
			plotted[i] = rot.Apply(v).Add(p.Pos)
		}

		line := raycast.CurveCast(p.world, p.Board, plotted, false, nil)
		for _, m := range line.Mappings {
			cell := p.world.Board(m.Board).At(m.Cell)
			if cell.Wall {
				break
			}

			cell.Fire = true
			if cell.Occupant != world.NoEntity {
				reg.Remove(p.world, cell.Occupant)
			}
			if cell.Plant > 0 {
				cell.Plant--
				break
			}
		}
	}
}

// rotationTransform returns the transform that carries Right onto dir,
// built as CCW raised to the quarter-turn count the original computes via
// `player_faced_direction.ccwRotations()`.
func rotationTransform(dir geom.Direction) geom.Transform {
	t := geom.Identity
	for i := 0; i < dir.CCWRotationsFromRight(); i++ {
		t = t.Compose(geom.CCW)
	}
	return t
}
