package view

import (
	"fmt"

	runewidth "github.com/mattn/go-runewidth"

	"github.com/fenwick-stacks/labyrinth/internal/sim"
)

// StatusLine formats the one-line HUD text the terminal frontend paints
// below the board (facing and consecutive laser rounds). Not
// part of spec.md's screen-cell contract (§6 only names the board itself)
// -- SPEC_FULL adds it as a small, clearly-separated frontend convenience,
// grounded on terminal/tui/status_bar.go's single-line-of-derived-text
// pattern.
func StatusLine(w *sim.World) string {
	return fmt.Sprintf("facing %v  laser rounds %d", w.Player.Faced, w.Player.LaserRounds)
}

// PadStatusLine right-pads s with spaces to exactly width display columns,
// truncating if s is already wider. Uses go-runewidth rather than len(s) or
// utf8.RuneCountInString so double-width glyphs in the HUD text still line
// up the status bar's trailing border (render/terminal_renderer.go and
// terminal/tui/status_bar.go both size their bar this way).
func PadStatusLine(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return runewidth.Truncate(s, width, "")
	}
	return s + padSpaces(width-w)
}

func padSpaces(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
