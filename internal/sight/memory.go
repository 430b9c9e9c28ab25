package sight

import (
	"github.com/fenwick-stacks/labyrinth/internal/config"
	"github.com/fenwick-stacks/labyrinth/internal/geom"
	"github.com/fenwick-stacks/labyrinth/internal/world"
)

// Glyph is the last-seen appearance of a cell, as painted by some prior
// render (spec.md §4.6: "each painted screen cell's glyph is copied to the
// map at the corresponding coordinate").
type Glyph struct {
	Rune rune
	FG   world.Color
	BG   world.Color
}

// MemoryMap is the persistent grid of last-seen glyphs centered on the
// player, indexed by offset from the player in the player's local (screen)
// frame: a ray's LinePos re-expressed through player_transform^-1. It
// survives across turns and shifts when the player moves.
type MemoryMap struct {
	radius int
	size   int
	cells  []Glyph
	set    []bool
}

// NewMemoryMap builds a (2*radius+1)^2 grid, empty at every offset.
func NewMemoryMap(radius int) *MemoryMap {
	size := 2*radius + 1
	return &MemoryMap{
		radius: radius,
		size:   size,
		cells:  make([]Glyph, size*size),
		set:    make([]bool, size*size),
	}
}

// NewDefaultMemoryMap builds a memory map sized to config.MemoryMapSize.
func NewDefaultMemoryMap() *MemoryMap {
	return NewMemoryMap((config.MemoryMapSize - 1) / 2)
}

func (m *MemoryMap) index(offset geom.Vector) (int, bool) {
	x, y := offset.X+m.radius, offset.Y+m.radius
	if x < 0 || x >= m.size || y < 0 || y >= m.size {
		return 0, false
	}
	return y*m.size + x, true
}

// Get returns the glyph last painted at offset from the player, or false if
// nothing has ever been painted there (or offset is out of range).
func (m *MemoryMap) Get(offset geom.Vector) (Glyph, bool) {
	i, ok := m.index(offset)
	if !ok || !m.set[i] {
		return Glyph{}, false
	}
	return m.cells[i], true
}

// Paint records a glyph at offset from the player, overwriting whatever was
// there before. No-op if offset is out of range.
func (m *MemoryMap) Paint(offset geom.Vector, g Glyph) {
	i, ok := m.index(offset)
	if !ok {
		return
	}
	m.cells[i] = g
	m.set[i] = true
}

// Range calls fn once for every offset that currently holds a painted
// glyph, in row-major order. Used by internal/view to render the memory
// layer beneath the live sight map (spec.md §4.6/§6).
func (m *MemoryMap) Range(fn func(offset geom.Vector, g Glyph)) {
	for y := -m.radius; y <= m.radius; y++ {
		for x := -m.radius; x <= m.radius; x++ {
			offset := geom.Vector{X: x, Y: y}
			i, _ := m.index(offset)
			if m.set[i] {
				fn(offset, m.cells[i])
			}
		}
	}
}

// Shift re-centers the map on a player that has moved by step (in the
// player's local frame): content that was at offset+step is now at
// offset, and offsets that shift in from beyond the old edge are refilled
// blank (spec.md §4.8 step 4: "Shift memory map by -step . player_transform
// ^-1", applied by the caller before calling Shift with the local-frame
// step).
func (m *MemoryMap) Shift(step geom.Vector) {
	next := make([]Glyph, len(m.cells))
	nextSet := make([]bool, len(m.set))

	for y := -m.radius; y <= m.radius; y++ {
		for x := -m.radius; x <= m.radius; x++ {
			offset := geom.Vector{X: x, Y: y}
			src := offset.Add(step)
			i, _ := m.index(offset)
			if j, ok := m.index(src); ok && m.set[j] {
				next[i] = m.cells[j]
				nextSet[i] = true
			}
		}
	}

	m.cells = next
	m.set = nextSet
}
