package sight

import (
	"testing"

	"github.com/fenwick-stacks/labyrinth/internal/config"
	"github.com/fenwick-stacks/labyrinth/internal/geom"
)

func TestFanStartsWithTheFourOrthogonals(t *testing.T) {
	r := config.SightRadius
	want := []geom.Vector{
		{X: r, Y: 0}, {X: 0, Y: r}, {X: -r, Y: 0}, {X: 0, Y: -r},
	}
	got := Fan()
	for i, w := range want {
		if got[i] != w {
			t.Errorf("targets[%d] = %v, want %v", i, got[i], w)
		}
	}
}

func TestFanEndsWithTheFourDiagonals(t *testing.T) {
	r := config.SightRadius
	got := Fan()
	want := []geom.Vector{
		{X: r, Y: r}, {X: -r, Y: r}, {X: r, Y: -r}, {X: -r, Y: -r},
	}
	last := got[len(got)-4:]
	for i, w := range want {
		if last[i] != w {
			t.Errorf("last four[%d] = %v, want %v", i, last[i], w)
		}
	}
}

func TestFanLength(t *testing.T) {
	r := config.SightRadius
	got := Fan()
	want := 4 + 8*(r-1) + 4
	if len(got) != want {
		t.Errorf("len(Fan()) = %d, want %d", len(got), want)
	}
}
