// Package entity implements the uniform entity record and its per-tick
// behavior (spec.md §2 row "Entity model", §3, §4.4): motes, arrows, and
// turrets are all the same struct, shaped by which flags are set.
package entity

import (
	"github.com/fenwick-stacks/labyrinth/internal/geom"
	"github.com/fenwick-stacks/labyrinth/internal/world"
)

// Kind labels which factory shape an Entity was built from. It does not
// drive behavior by itself -- the flags do -- but internal/view uses it to
// pick a glyph.
type Kind int

const (
	KindArrow Kind = iota
	KindMote
	KindTurret
)

// Entity is the uniform record spec.md §3 describes: a single shape shared
// by arrows, motes, and turrets, distinguished only by which flags are set.
type Entity struct {
	ID    world.EntityID
	Kind  Kind
	Board world.BoardID
	Pos   geom.Vector

	Faced geom.Direction

	Moving     bool
	Homing     bool
	CanShoot   bool
	DieOnTouch bool

	// RelPlayerPos is the last observed vector from this entity to the
	// player, in the entity's local frame at the moment of observation, or
	// the zero vector if never observed / lost (spec.md §9 Design Notes:
	// "Frame of rel_player_pos").
	RelPlayerPos geom.Vector

	MaxCooldown    int
	Cooldown       int
	DetectionRange int
}

// NewArrow builds the moving, die-on-touch projectile shape.
func NewArrow(faced geom.Direction) *Entity {
	return &Entity{
		Kind:       KindArrow,
		Faced:      faced,
		Moving:     true,
		DieOnTouch: true,
	}
}

// NewMote builds the moving, homing shape.
func NewMote(faced geom.Direction) *Entity {
	return &Entity{
		Kind:   KindMote,
		Faced:  faced,
		Moving: true,
		Homing: true,
	}
}

// NewTurret builds the stationary, shooting shape.
func NewTurret(faced geom.Direction, maxCooldown, detectionRange int) *Entity {
	return &Entity{
		Kind:           KindTurret,
		Faced:          faced,
		CanShoot:       true,
		MaxCooldown:    maxCooldown,
		DetectionRange: detectionRange,
	}
}
