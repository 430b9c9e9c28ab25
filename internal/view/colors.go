// Package view implements the render contract of spec.md §6: a function
// from a simulation World plus its most recent sight fan to a stream of
// (row, col, glyph, fg, bg) screen cells. It is not pure: Render also
// copies every painted sight cell into the World's memory map. Grounded on
// render/colors.go's palette-of-named-RGB-constants style and
// terminal/tui/render.go's Region.Cell writer shape, generalized from a
// live tcell.Screen writer to a pure []ScreenCell producer.
package view

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/fenwick-stacks/labyrinth/internal/world"
)

// memoryDimFactor is how far a memory-layer glyph's colors are blended
// toward black relative to the live sight map, so a remembered cell reads
// as dimmer than one currently in view (spec.md §4.6: the memory map is
// "rendered beneath the sight map" -- drawn here as a visually receding
// backdrop, not merely a lower paint priority).
const memoryDimFactor = 0.55

// dim blends c toward black by memoryDimFactor using go-colorful's RGB
// blend (linear interpolation in sRGB space is close enough for a terminal
// palette of eight named colors -- no need for the perceptual Lab blend
// go-colorful also offers).
func dim(c world.Color) world.Color {
	src := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	blended := src.BlendRgb(colorful.Color{}, memoryDimFactor).Clamped()
	return world.Color{
		R: uint8(blended.R * 255),
		G: uint8(blended.G * 255),
		B: uint8(blended.B * 255),
	}
}

// The fixed palette every glyph-selection rule below draws from
// (spec.md §6; colors named for what the original ncurses build used
// COLOR_WHITE/BLACK/GREEN/CYAN/BLUE/RED/YELLOW for).
var (
	White  = world.Color{R: 255, G: 255, B: 255}
	Black  = world.Color{R: 0, G: 0, B: 0}
	Green  = world.Color{R: 0, G: 180, B: 0}
	Cyan   = world.Color{R: 0, G: 200, B: 200}
	Blue   = world.Color{R: 40, G: 80, B: 220}
	Red    = world.Color{R: 200, G: 30, B: 30}
	Yellow = world.Color{R: 200, G: 180, B: 0}
	Gray   = world.Color{R: 120, G: 120, B: 120}
)

func isBlack(c world.Color) bool { return c == Black }
