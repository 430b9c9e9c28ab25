package player

import (
	"testing"

	"github.com/fenwick-stacks/labyrinth/internal/config"
	"github.com/fenwick-stacks/labyrinth/internal/entity"
	"github.com/fenwick-stacks/labyrinth/internal/geom"
	"github.com/fenwick-stacks/labyrinth/internal/sight"
	"github.com/fenwick-stacks/labyrinth/internal/world"
)

func TestShootLaserSetsFireAlongTheStraightLineStream(t *testing.T) {
	w := world.NewWorld()
	b := w.AddBoard(160, 160)
	origin := geom.Vector{X: 80, Y: 80}
	p := New(w, sight.NewMemoryMap(5), b, origin)
	p.Faced = geom.Right

	reg := entity.NewRegistry()
	p.ShootLaser(reg)

	// At t=0 every laserShape sample is 0 (sin of a phase-only argument
	// times x*DIST_SCALE*0, since exp(0)-1 == 0), so every stream's plotted
	// chain lies on y=0: the cell directly ahead of the player must ignite.
	ahead := geom.Vector{X: 81, Y: 80}
	if !w.Board(b).At(ahead).Fire {
		t.Error("expected the cell directly ahead of the player to catch fire")
	}
}

func TestShootLaserStopsAtFirstWall(t *testing.T) {
	w := world.NewWorld()
	b := w.AddBoard(160, 160)
	origin := geom.Vector{X: 80, Y: 80}
	wallAt := geom.Vector{X: 82, Y: 80}
	w.Board(b).At(wallAt).Wall = true

	p := New(w, sight.NewMemoryMap(5), b, origin)
	p.Faced = geom.Right

	reg := entity.NewRegistry()
	p.ShootLaser(reg)

	beyond := geom.Vector{X: 85, Y: 80}
	if w.Board(b).At(beyond).Fire {
		t.Error("laser should not set fire beyond the first wall")
	}
	if w.Board(b).At(wallAt).Fire {
		t.Error("the wall cell itself should not catch fire")
	}
}

func TestShootLaserPlantAbsorbsOneHitAndBlocksRest(t *testing.T) {
	w := world.NewWorld()
	b := w.AddBoard(160, 160)
	origin := geom.Vector{X: 80, Y: 80}
	plantAt := geom.Vector{X: 81, Y: 80}
	w.Board(b).At(plantAt).Plant = 5

	p := New(w, sight.NewMemoryMap(5), b, origin)
	p.Faced = geom.Right

	reg := entity.NewRegistry()
	p.ShootLaser(reg)

	// At t=0 all streams share the y=0 chain, and each stream's beam takes
	// one hit point off the plant before stopping.
	if got, want := w.Board(b).At(plantAt).Plant, 5-config.LaserNumStreams; got != want {
		t.Errorf("plant = %d, want %d", got, want)
	}
	beyond := geom.Vector{X: 82, Y: 80}
	if w.Board(b).At(beyond).Fire {
		t.Error("laser should stop at the first plant cell")
	}
}
