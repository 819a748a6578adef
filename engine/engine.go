package engine

import (
	"fmt"

	"github.com/iw2rmb/dosedit/buffer"
)

// TabWidth is the number of spaces the Tab key inserts.
const TabWidth = 4

// Engine dispatches keys over a Session. It keeps no editing state of its own.
type Engine struct {
	s       *Session
	surface Surface
	cursor  CursorSink
}

// New binds an engine to s and paints the initial state. Nil collaborators
// are replaced by NopSurface and NopCursor.
func New(s *Session, surface Surface, cursor CursorSink) *Engine {
	if surface == nil {
		surface = NopSurface
	}
	if cursor == nil {
		cursor = NopCursor
	}
	e := &Engine{s: s, surface: surface, cursor: cursor}
	e.s.Cursor.MoveTo(e.s.Doc, e.s.Cursor.Line, e.s.Cursor.Col)
	_ = e.sync()
	return e
}

func (e *Engine) Session() *Session { return e.s }

// Handle applies one key. The returned error is an internal invariant
// violation; the session is left as it was before the key.
func (e *Engine) Handle(k Key) error {
	switch k.Kind {
	case KeyRune:
		return e.Insert(k.Rune)
	case KeyText:
		return e.InsertText(k.Text)
	case KeyLeft:
		return e.Left()
	case KeyRight:
		return e.Right()
	case KeyUp:
		return e.Up()
	case KeyDown:
		return e.Down()
	case KeyHome:
		return e.Home()
	case KeyEnd:
		return e.End()
	case KeyWordLeft:
		return e.WordLeft()
	case KeyWordRight:
		return e.WordRight()
	case KeyPageUp:
		return e.PageUp()
	case KeyPageDown:
		return e.PageDown()
	case KeyDocStart:
		return e.DocStart()
	case KeyDocEnd:
		return e.DocEnd()
	case KeyEnter:
		return e.Enter()
	case KeyBackspace:
		return e.Backspace()
	case KeyDelete:
		return e.Delete()
	case KeyTab:
		return e.Tab()
	case KeySpace:
		return e.Space()
	case KeyCutLine:
		_, err := e.CutLine()
		return err
	default:
		return nil
	}
}

// MoveTo places the cursor, clamped to the document.
func (e *Engine) MoveTo(line, col int) error {
	return e.move(func() buffer.Pos { return buffer.Pos{Line: line, Col: col} })
}

// Resize changes the viewport size and keeps the cursor line visible.
func (e *Engine) Resize(width, height int) error {
	e.s.View.Resize(width, height)
	return e.sync()
}

// move sets the cursor to the position next computes, then syncs.
func (e *Engine) move(next func() buffer.Pos) error {
	p := next()
	e.s.Cursor.MoveTo(e.s.Doc, p.Line, p.Col)
	return e.sync()
}

// edit runs op against a journal. On failure the document, cursor and
// viewport are restored and the error returned.
func (e *Engine) edit(name string, op func(j *journal) (buffer.Pos, error)) error {
	prevCursor := e.s.Cursor
	prevView := e.s.View

	j := &journal{doc: e.s.Doc}
	next, err := op(j)
	if err != nil {
		j.rollback()
		e.s.Cursor = prevCursor
		e.s.View = prevView
		_ = e.sync()
		return fmt.Errorf("engine: %s: %w", name, err)
	}

	e.s.Cursor.MoveTo(e.s.Doc, next.Line, next.Col)
	return e.sync()
}

// sync re-anchors the viewport on the cursor line and pushes the visible rows
// and the cursor cell to the collaborators.
func (e *Engine) sync() error {
	e.s.View.EnsureVisible(e.s.Cursor.Line)
	e.surface.SetVisibleText(e.s.VisibleLines())
	e.surface.RequestRepaint()

	pos, err := e.s.ScreenPosition()
	if err != nil {
		return err
	}
	e.cursor.SetAbsoluteCursor(pos.Row, pos.Col)
	return nil
}
