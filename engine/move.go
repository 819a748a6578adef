package engine

import (
	"github.com/iw2rmb/dosedit/buffer"
	"github.com/iw2rmb/dosedit/internal/words"
)

func (e *Engine) lastLine() int { return e.s.Doc.LineCount() - 1 }

// Left moves one rune left, wrapping to the end of the previous line.
func (e *Engine) Left() error {
	return e.move(func() buffer.Pos {
		p := e.s.Cursor.Pos
		switch {
		case p.Col > 0:
			return buffer.Pos{Line: p.Line, Col: p.Col - 1}
		case p.Line > 0:
			return buffer.Pos{Line: p.Line - 1, Col: e.s.Doc.LineLen(p.Line - 1)}
		default:
			return p
		}
	})
}

// Right moves one rune right, wrapping to the start of the next line.
func (e *Engine) Right() error {
	return e.move(func() buffer.Pos {
		p := e.s.Cursor.Pos
		switch {
		case p.Col < e.s.Doc.LineLen(p.Line):
			return buffer.Pos{Line: p.Line, Col: p.Col + 1}
		case p.Line < e.lastLine():
			return buffer.Pos{Line: p.Line + 1, Col: 0}
		default:
			return p
		}
	})
}

// Up moves to the previous line; the column is kept when the line is long
// enough and lands at its end otherwise.
func (e *Engine) Up() error {
	return e.move(func() buffer.Pos {
		p := e.s.Cursor.Pos
		if p.Line == 0 {
			return p
		}
		return buffer.Pos{Line: p.Line - 1, Col: min(p.Col, e.s.Doc.LineLen(p.Line-1))}
	})
}

// Down moves to the next line with the same column rule as Up.
func (e *Engine) Down() error {
	return e.move(func() buffer.Pos {
		p := e.s.Cursor.Pos
		if p.Line == e.lastLine() {
			return p
		}
		return buffer.Pos{Line: p.Line + 1, Col: min(p.Col, e.s.Doc.LineLen(p.Line+1))}
	})
}

func (e *Engine) Home() error {
	return e.move(func() buffer.Pos {
		return buffer.Pos{Line: e.s.Cursor.Line, Col: 0}
	})
}

func (e *Engine) End() error {
	return e.move(func() buffer.Pos {
		line := e.s.Cursor.Line
		return buffer.Pos{Line: line, Col: e.s.Doc.LineLen(line)}
	})
}

func (e *Engine) DocStart() error {
	return e.move(func() buffer.Pos { return buffer.Pos{} })
}

func (e *Engine) DocEnd() error {
	return e.move(func() buffer.Pos {
		last := e.lastLine()
		return buffer.Pos{Line: last, Col: e.s.Doc.LineLen(last)}
	})
}

// WordLeft jumps to the start of the previous word on the line. At column 0
// it wraps like Left.
func (e *Engine) WordLeft() error {
	if e.s.Cursor.Col == 0 {
		return e.Left()
	}
	return e.move(func() buffer.Pos {
		p := e.s.Cursor.Pos
		return buffer.Pos{Line: p.Line, Col: words.Prev(e.s.CurrentLine(), p.Col)}
	})
}

// WordRight jumps to the end of the next word on the line. At the line end
// it wraps like Right.
func (e *Engine) WordRight() error {
	if e.s.Cursor.Col >= e.s.Doc.LineLen(e.s.Cursor.Line) {
		return e.Right()
	}
	return e.move(func() buffer.Pos {
		p := e.s.Cursor.Pos
		return buffer.Pos{Line: p.Line, Col: words.Next(e.s.CurrentLine(), p.Col)}
	})
}

func (e *Engine) PageUp() error { return e.page(-1) }

func (e *Engine) PageDown() error { return e.page(1) }

// page scrolls the window by one height and carries the cursor line along by
// the same amount, so it keeps its row when the window can move.
func (e *Engine) page(dir int) error {
	delta := dir * e.s.View.Height
	e.s.View.ScrollBy(delta, e.s.Doc.LineCount())
	return e.move(func() buffer.Pos {
		p := e.s.Cursor.Pos
		return buffer.Pos{Line: p.Line + delta, Col: p.Col}
	})
}
