package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/fenwick-stacks/labyrinth/internal/entity"
	"github.com/fenwick-stacks/labyrinth/internal/geom"
	"github.com/fenwick-stacks/labyrinth/internal/sight"
	"github.com/fenwick-stacks/labyrinth/internal/sim"
	"github.com/fenwick-stacks/labyrinth/internal/view"
	"github.com/fenwick-stacks/labyrinth/internal/world"
)

const (
	logDir        = "logs"
	logFileName   = "labyrinth.log"
	maxLogSize    = 10 * 1024 * 1024 // 10MB
	maxLogBackups = 5
)

// setupLogging configures log output based on the debug flag: file logging
// with size-based rotation when enabled, complete silence otherwise, so a
// normal run never writes to the terminal the game itself occupies. Unlike
// a plain rotate-and-forget scheme, old backups beyond maxLogBackups are
// pruned at rotation time, since a debug session left running for days of
// portal-crossing logs (see logBoardCrossing) would otherwise fill logs/
// without bound.
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to create logs directory: %v\n", err)
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)

	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		timestamp := time.Now().Format("2006-01-02-15-04-05")
		rotatedName := filepath.Join(logDir, fmt.Sprintf("labyrinth-%s.log", timestamp))
		if err := os.Rename(logPath, rotatedName); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to rotate log file: %v\n", err)
		}
		pruneOldBackups()
	}

	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to open log file: %v\n", err)
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(logFile)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Printf("=== labyrinth started ===")

	return logFile
}

// pruneOldBackups deletes rotated log files beyond maxLogBackups, oldest
// first. The rotated name embeds a sortable timestamp, so lexical order is
// chronological order.
func pruneOldBackups() {
	matches, err := filepath.Glob(filepath.Join(logDir, "labyrinth-*.log"))
	if err != nil || len(matches) <= maxLogBackups {
		return
	}
	sort.Strings(matches)
	for _, stale := range matches[:len(matches)-maxLogBackups] {
		if err := os.Remove(stale); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to prune old log %s: %v\n", stale, err)
		}
	}
}

// logBoardCrossing records a portal jump by the boards' Tag (internal/
// world.Board.Tag), a per-board correlation id, rather than their BoardID --
// a BoardID is just a slice index and means nothing once a debug log
// outlives a single run.
func logBoardCrossing(w *sim.World, from world.BoardID) {
	log.Printf("portal crossing: board %s -> board %s, player now at %v",
		w.Boards.Board(from).Tag, w.Boards.Board(w.Player.Board).Tag, w.Player.Pos)
}

// keyCommand maps a raw key event to the world-frame command it produces.
// Movement keys are interpreted relative to the player's own facing (vi
// h/j/k/l = left/down/up/right in the player's local frame, per the
// original's key mapping), then rotated into world-frame by the player's
// current transform before being handed to sim.RunTurn -- AttemptMove's
// step parameter is always world-frame (internal/player/move.go).
func keyCommand(ev *tcell.EventKey, w *sim.World) (sim.Command, bool) {
	localStep := func(dir geom.Direction) sim.Command {
		return sim.Command{Kind: sim.Move, Dir: w.Player.Transform.Apply(dir)}
	}

	switch ev.Rune() {
	case 'h':
		return localStep(geom.Left), true
	case 'l':
		return localStep(geom.Right), true
	case 'k':
		return localStep(geom.Up), true
	case 'j':
		return localStep(geom.Down), true
	case 'f':
		return sim.Command{Kind: sim.LaserFire}, true
	case 'a':
		return sim.Command{Kind: sim.ShootArrow, Dir: w.Player.Faced}, true
	case 't':
		return sim.Command{Kind: sim.BuildTurret, Dir: w.Player.Faced}, true
	case 'q':
		return sim.Command{Kind: sim.Quit}, true
	}

	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
		return sim.Command{Kind: sim.Quit}, true
	}
	return sim.Command{}, false
}

func toTcellColor(c world.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func draw(screen tcell.Screen, w *sim.World) {
	screen.Clear()
	cols, rows := screen.Size()
	boardRows := rows - 1

	for _, cell := range view.Render(w, boardRows, cols) {
		style := tcell.StyleDefault.
			Foreground(toTcellColor(cell.FG)).
			Background(toTcellColor(cell.BG))
		screen.SetContent(cell.Col, cell.Row, cell.Rune, nil, style)
	}

	status := view.PadStatusLine(view.StatusLine(w), cols)
	for i, r := range status {
		screen.SetContent(i, boardRows, r, nil, tcell.StyleDefault)
	}

	screen.Show()
}

func main() {
	debug := flag.Bool("debug", false, "Enable debug logging to file")
	flag.Parse()

	logFile := setupLogging(*debug)
	if logFile != nil {
		defer logFile.Close()
	}

	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		log.Printf("detected terminal size %dx%d before screen init", w, h)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	boards, startBoard, startPos, turretCell := world.NewDemoWorld()
	w := sim.New(boards, startBoard, startPos, time.Now().UnixNano())
	w.Entities.Spawn(w.Boards, entity.NewTurret(geom.Down, 10, 20), startBoard, turretCell)
	w.Rays = sight.Update(w.Boards, w.Player.Board, w.Player.Pos, nil)

	draw(screen, w)

	for {
		ev := screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			screen.Sync()
			draw(screen, w)
		case *tcell.EventKey:
			cmd, ok := keyCommand(ev, w)
			if !ok {
				continue
			}
			if cmd.Kind == sim.Quit {
				log.Printf("quit requested")
				return
			}

			prevBoard := w.Player.Board
			sim.RunTurn(w, cmd)
			if w.Player.Board != prevBoard {
				logBoardCrossing(w, prevBoard)
			}
			draw(screen, w)
		}
	}
}
