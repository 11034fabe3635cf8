package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/dshills/graphedit/internal/engine"
)

// editor is the interactive terminal frontend. It consumes only the engine
// API: every edit goes through a queued command followed by a flush, so
// undo and redo behave exactly as they do for any other engine consumer.
type editor struct {
	screen   tcell.Screen
	eng      *engine.Engine
	savePath string

	cursorX int
	cursorY int

	// Armed edge endpoint, nil when not picking an edge
	edgeFrom *engine.Node

	status string
}

func newEditor(eng *engine.Engine, savePath string) (*editor, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return &editor{
		screen:   screen,
		eng:      eng,
		savePath: savePath,
	}, nil
}

func (ed *editor) shutdown() {
	ed.screen.Fini()
}

// run drives the event loop until the user quits.
func (ed *editor) run() error {
	for {
		ed.draw()

		ev := ed.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			ed.screen.Sync()
		case *tcell.EventKey:
			quit, err := ed.handleKey(ev)
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
		}
	}
}

func (ed *editor) handleKey(ev *tcell.EventKey) (quit bool, err error) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true, nil
	case tcell.KeyUp:
		ed.moveCursor(0, -1)
	case tcell.KeyDown:
		ed.moveCursor(0, 1)
	case tcell.KeyLeft:
		ed.moveCursor(-1, 0)
	case tcell.KeyRight:
		ed.moveCursor(1, 0)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true, nil
		case 'h':
			ed.moveCursor(-1, 0)
		case 'j':
			ed.moveCursor(0, 1)
		case 'k':
			ed.moveCursor(0, -1)
		case 'l':
			ed.moveCursor(1, 0)
		case 'n':
			ed.addNode()
		case 'e':
			ed.pickEdgeEndpoint()
		case 'u':
			ed.undo()
		case 'r':
			ed.redo()
		case 's':
			err = ed.save()
		}
	}
	return false, err
}

func (ed *editor) moveCursor(dx, dy int) {
	w, h := ed.screen.Size()
	ed.cursorX = clamp(ed.cursorX+dx, 0, w-1)
	ed.cursorY = clamp(ed.cursorY+dy, 0, h-2) // last row is the status line
}

func (ed *editor) addNode() {
	n := engine.Node{X: ed.cursorX, Y: ed.cursorY}
	ed.eng.AddNode(n)
	if err := ed.eng.Flush(); err != nil {
		ed.status = fmt.Sprintf("add node: %v", err)
		return
	}
	ed.status = fmt.Sprintf("added node (%d,%d)", n.X, n.Y)
}

func (ed *editor) pickEdgeEndpoint() {
	n := engine.Node{X: ed.cursorX, Y: ed.cursorY}
	if !ed.eng.ContainsNode(n) {
		ed.status = "no node under the cursor"
		return
	}

	if ed.edgeFrom == nil {
		ed.edgeFrom = &n
		ed.status = fmt.Sprintf("edge from (%d,%d): pick the other endpoint", n.X, n.Y)
		return
	}

	from := *ed.edgeFrom
	ed.edgeFrom = nil
	ed.eng.AddEdge(from, n)
	if err := ed.eng.Flush(); err != nil {
		ed.status = fmt.Sprintf("add edge: %v", err)
		return
	}
	ed.status = fmt.Sprintf("added edge (%d,%d)-(%d,%d)", from.X, from.Y, n.X, n.Y)
}

func (ed *editor) undo() {
	if err := ed.eng.Undo(); err != nil {
		if errors.Is(err, engine.ErrNothingToUndo) {
			ed.status = "nothing to undo"
			return
		}
		ed.status = fmt.Sprintf("undo: %v", err)
		return
	}
	if info, ok := ed.eng.PeekRedo(); ok {
		ed.status = "undid " + info.Description
	}
}

func (ed *editor) redo() {
	if err := ed.eng.Redo(); err != nil {
		if errors.Is(err, engine.ErrNothingToRedo) {
			ed.status = "nothing to redo"
			return
		}
		ed.status = fmt.Sprintf("redo: %v", err)
		return
	}
	if info, ok := ed.eng.PeekUndo(); ok {
		ed.status = "redid " + info.Description
	}
}

func (ed *editor) save() error {
	data, err := ed.eng.MarshalJSON()
	if err != nil {
		return fmt.Errorf("encode graph: %w", err)
	}
	if err := os.WriteFile(ed.savePath, data, 0o644); err != nil {
		return fmt.Errorf("save graph: %w", err)
	}
	ed.status = "saved to " + ed.savePath
	return nil
}

// Rendering

var (
	styleDefault = tcell.StyleDefault
	styleEdge    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleStatus  = tcell.StyleDefault.Reverse(true)
)

func (ed *editor) draw() {
	ed.screen.Clear()
	w, h := ed.screen.Size()

	for _, e := range ed.eng.Edges() {
		drawLine(ed.screen, e.From.X, e.From.Y, e.To.X, e.To.Y, h-1)
	}

	for i, n := range ed.eng.Nodes() {
		if n.X < 0 || n.X >= w || n.Y < 0 || n.Y >= h-1 {
			continue
		}
		ed.screen.SetContent(n.X, n.Y, '●', nil, styleDefault.Foreground(nodeColor(i)))
	}

	ed.drawStatus(w, h)
	ed.screen.ShowCursor(ed.cursorX, ed.cursorY)
	ed.screen.Show()
}

func (ed *editor) drawStatus(w, h int) {
	mode := ""
	if ed.edgeFrom != nil {
		mode = " [edge]"
	}
	line := fmt.Sprintf(" rev %d  cursor %d  log %d%s  %s",
		ed.eng.Revision(), ed.eng.Cursor(), ed.eng.LogLen(), mode, ed.status)

	for x := 0; x < w; x++ {
		r := ' '
		if x < len(line) {
			r = rune(line[x])
		}
		ed.screen.SetContent(x, h-1, r, nil, styleStatus)
	}
}

// nodeColor derives a stable, well-spread color from the node's insertion
// index. The golden-angle hue step keeps neighboring nodes visually distinct.
func nodeColor(i int) tcell.Color {
	hue := float64((i * 137) % 360)
	c := colorful.Hsv(hue, 0.65, 0.95)
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// drawLine renders an edge with a simple integer line walk.
// Endpoints are left to the node pass so node glyphs stay on top.
func drawLine(s tcell.Screen, x0, y0, x1, y1, maxY int) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := sign(x1 - x0)
	sy := sign(y1 - y0)
	err := dx + dy

	x, y := x0, y0
	for {
		if x == x1 && y == y1 {
			break
		}
		if !(x == x0 && y == y0) && y >= 0 && y < maxY && x >= 0 {
			s.SetContent(x, y, '·', nil, styleEdge)
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
