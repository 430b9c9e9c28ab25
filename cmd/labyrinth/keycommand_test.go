package main

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/fenwick-stacks/labyrinth/internal/geom"
	"github.com/fenwick-stacks/labyrinth/internal/sim"
	"github.com/fenwick-stacks/labyrinth/internal/world"
)

func newTestSimWorld(t *testing.T) *sim.World {
	t.Helper()
	boards := world.NewWorld()
	b := boards.AddBoard(20, 20)
	return sim.New(boards, b, geom.Vector{X: 10, Y: 10}, 1)
}

func TestKeyCommandMovementRotatesByPlayerTransform(t *testing.T) {
	w := newTestSimWorld(t)
	w.Player.Transform = geom.CCW

	ev := tcell.NewEventKey(tcell.KeyRune, 'l', tcell.ModNone)
	cmd, ok := keyCommand(ev, w)
	if !ok {
		t.Fatal("expected 'l' to produce a command")
	}
	want := geom.CCW.Apply(geom.Right)
	if cmd.Kind != sim.Move || cmd.Dir != want {
		t.Errorf("cmd = %+v, want Move with Dir %v", cmd, want)
	}
}

func TestKeyCommandFireMapsToLaserFire(t *testing.T) {
	w := newTestSimWorld(t)
	ev := tcell.NewEventKey(tcell.KeyRune, 'f', tcell.ModNone)
	cmd, ok := keyCommand(ev, w)
	if !ok || cmd.Kind != sim.LaserFire {
		t.Errorf("cmd = %+v, ok=%v, want LaserFire", cmd, ok)
	}
}

func TestKeyCommandEscapeQuits(t *testing.T) {
	w := newTestSimWorld(t)
	ev := tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)
	cmd, ok := keyCommand(ev, w)
	if !ok || cmd.Kind != sim.Quit {
		t.Errorf("cmd = %+v, ok=%v, want Quit", cmd, ok)
	}
}

func TestKeyCommandUnmappedKeyIgnored(t *testing.T) {
	w := newTestSimWorld(t)
	ev := tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone)
	if _, ok := keyCommand(ev, w); ok {
		t.Error("expected an unmapped key to be ignored")
	}
}
