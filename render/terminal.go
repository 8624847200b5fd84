package render

import (
	"context"
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/mazepath/maze"
)

// Theme selects the styles used by Terminal.
type Theme struct {
	Maze     tcell.Style // walls, open cells and unvisited endpoints
	Path     tcell.Style // highlighted path cells
	PathRune rune
	// ColStride spreads columns apart so the maze looks square.
	ColStride int
}

// DefaultTheme is blue-on-black maze text with the path drawn as red X marks.
func DefaultTheme() Theme {
	return Theme{
		Maze:      tcell.StyleDefault.Foreground(tcell.ColorBlue).Background(tcell.ColorBlack),
		Path:      tcell.StyleDefault.Foreground(tcell.ColorRed).Background(tcell.ColorBlack),
		PathRune:  'X',
		ColStride: 2,
	}
}

// Terminal is a full-screen Sink backed by a tcell.Screen. It owns the
// screen from NewTerminal until Close.
type Terminal struct {
	screen tcell.Screen
	theme  Theme
	keys   chan *tcell.EventKey
	closer sync.Once
}

// OpenTerminal initializes the controlling terminal.
func OpenTerminal(theme Theme) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("render: new screen: %w", err)
	}
	return NewTerminal(screen, theme)
}

// NewTerminal initializes screen and starts pumping its events.
// Tests pass a tcell.SimulationScreen here.
func NewTerminal(screen tcell.Screen, theme Theme) (*Terminal, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("render: init screen: %w", err)
	}
	if theme.ColStride < 1 {
		theme.ColStride = 1
	}
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack))
	screen.Clear()

	t := &Terminal{
		screen: screen,
		theme:  theme,
		keys:   make(chan *tcell.EventKey, 8),
	}
	go t.pump()

	return t, nil
}

// pump forwards key events until the screen is finalized. Resizes force a
// full redraw; keys that arrive while the buffer is full are dropped.
func (t *Terminal) pump() {
	for {
		switch ev := t.screen.PollEvent().(type) {
		case nil:
			close(t.keys)
			return
		case *tcell.EventResize:
			t.screen.Sync()
		case *tcell.EventKey:
			select {
			case t.keys <- ev:
			default:
			}
		}
	}
}

// Draw clears the screen, paints g and overlays highlighted, then shows the frame.
func (t *Terminal) Draw(g *maze.Grid, highlighted []maze.Cell) error {
	w, h := t.screen.Size()
	needW := (g.Cols()-1)*t.theme.ColStride + 1
	if needW > w || g.Rows() > h {
		return fmt.Errorf("%w: need %dx%d, have %dx%d", ErrScreenTooSmall, needW, g.Rows(), w, h)
	}

	onPath := pathSet(highlighted)
	t.screen.Clear()
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			cell := maze.Cell{Row: r, Col: c}
			x := c * t.theme.ColStride
			if _, ok := onPath[cell]; ok {
				t.screen.SetContent(x, r, t.theme.PathRune, nil, t.theme.Path)
				continue
			}
			k, err := g.CellKind(cell)
			if err != nil {
				return err
			}
			t.screen.SetContent(x, r, k.Marker(), nil, t.theme.Maze)
		}
	}
	t.screen.Show()
	return nil
}

// WaitForKey blocks until a key is pressed or ctx is done.
func (t *Terminal) WaitForKey(ctx context.Context) (*tcell.EventKey, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case ev, ok := <-t.keys:
		if !ok {
			return nil, ErrScreenClosed
		}
		return ev, nil
	}
}

// Close restores the terminal. It is safe to call more than once.
func (t *Terminal) Close() error {
	t.closer.Do(t.screen.Fini)
	return nil
}

// IsQuit reports whether ev asks to abandon the run: Esc, Ctrl-C or 'q'.
func IsQuit(ev *tcell.EventKey) bool {
	if ev == nil {
		return false
	}
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}
