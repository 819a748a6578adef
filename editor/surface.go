package editor

import (
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/iw2rmb/dosedit/engine"
)

// textSurface is the engine's drawable surface. It keeps the visible rows
// pushed by the engine and renders them through a bubbles viewport.
type textSurface struct {
	vp    viewport.Model
	rows  []string
	dirty bool
}

var _ engine.Surface = (*textSurface)(nil)

func newTextSurface() *textSurface {
	return &textSurface{vp: viewport.New(0, 0), dirty: true}
}

func (s *textSurface) SetVisibleText(rows []string) { s.rows = rows }

func (s *textSurface) RequestRepaint() { s.dirty = true }

func (s *textSurface) setSize(width, height int) {
	s.vp.Width = width
	s.vp.Height = height
	s.dirty = true
}

// caret records the absolute cursor position reported by the engine.
type caret struct {
	row, col int
}

var _ engine.CursorSink = (*caret)(nil)

func (c *caret) SetAbsoluteCursor(row, col int) {
	c.row = row
	c.col = col
}
