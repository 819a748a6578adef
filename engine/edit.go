package engine

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/iw2rmb/dosedit/buffer"
)

var tabSpaces = strings.Repeat(" ", TabWidth)

// Insert splices ch into the cursor line and advances one column. Tab is
// expanded; other control characters and invalid runes are ignored.
func (e *Engine) Insert(ch rune) error {
	switch {
	case ch == '\t':
		return e.Tab()
	case ch == ' ':
		return e.Space()
	case ch == 0 || ch == utf8.RuneError || unicode.IsControl(ch):
		return nil
	}
	return e.insertString("insert", string(ch))
}

func (e *Engine) Space() error {
	return e.insertString("space", " ")
}

// Tab inserts TabWidth spaces; there are no tab stops.
func (e *Engine) Tab() error {
	return e.insertString("tab", tabSpaces)
}

// insertString splices s, which holds no newline, at the cursor.
func (e *Engine) insertString(name, s string) error {
	if s == "" {
		return nil
	}
	return e.edit(name, func(j *journal) (buffer.Pos, error) {
		p := e.s.Cursor.Pos
		line := []rune(e.s.CurrentLine())
		ins := []rune(s)
		next := make([]rune, 0, len(line)+len(ins))
		next = append(next, line[:p.Col]...)
		next = append(next, ins...)
		next = append(next, line[p.Col:]...)
		if err := j.setLine(p.Line, string(next)); err != nil {
			return p, err
		}
		return buffer.Pos{Line: p.Line, Col: p.Col + len(ins)}, nil
	})
}

// Backspace deletes the rune before the cursor. At column 0 it merges the
// cursor line into the previous one and leaves the cursor at the join.
func (e *Engine) Backspace() error {
	p := e.s.Cursor.Pos
	if p.Line == 0 && p.Col == 0 {
		return nil
	}
	if p.Col > 0 {
		return e.edit("backspace", func(j *journal) (buffer.Pos, error) {
			line := []rune(e.s.CurrentLine())
			next := append(line[:p.Col-1:p.Col-1], line[p.Col:]...)
			if err := j.setLine(p.Line, string(next)); err != nil {
				return p, err
			}
			return buffer.Pos{Line: p.Line, Col: p.Col - 1}, nil
		})
	}
	return e.edit("backspace", func(j *journal) (buffer.Pos, error) {
		return e.join(j, p.Line-1)
	})
}

// Delete removes the rune under the cursor. At the line end it pulls the next
// line up; at the end of the last line it does nothing.
func (e *Engine) Delete() error {
	p := e.s.Cursor.Pos
	n := e.s.Doc.LineLen(p.Line)
	if p.Col >= n && p.Line == e.lastLine() {
		return nil
	}
	if p.Col < n {
		return e.edit("delete", func(j *journal) (buffer.Pos, error) {
			line := []rune(e.s.CurrentLine())
			next := append(line[:p.Col:p.Col], line[p.Col+1:]...)
			if err := j.setLine(p.Line, string(next)); err != nil {
				return p, err
			}
			return p, nil
		})
	}
	return e.edit("delete", func(j *journal) (buffer.Pos, error) {
		return e.join(j, p.Line)
	})
}

// join appends line i+1 to line i, removes line i+1 and returns the join point.
func (e *Engine) join(j *journal, i int) (buffer.Pos, error) {
	head, err := e.s.Doc.Line(i)
	if err != nil {
		return buffer.Pos{}, err
	}
	tail, err := e.s.Doc.Line(i + 1)
	if err != nil {
		return buffer.Pos{}, err
	}
	if err := j.setLine(i, head+tail); err != nil {
		return buffer.Pos{}, err
	}
	if err := j.deleteLine(i + 1); err != nil {
		return buffer.Pos{}, err
	}
	return buffer.Pos{Line: i, Col: utf8.RuneCountInString(head)}, nil
}

// Enter splits the cursor line at the cursor; the cursor moves to the start
// of the second half. At column 0 this inserts an empty line above and the
// cursor moves down with the line's content.
func (e *Engine) Enter() error {
	p := e.s.Cursor.Pos
	return e.edit("enter", func(j *journal) (buffer.Pos, error) {
		if p.Col == 0 {
			if err := j.insertLine(p.Line, ""); err != nil {
				return p, err
			}
			return buffer.Pos{Line: p.Line + 1, Col: 0}, nil
		}
		line := []rune(e.s.CurrentLine())
		if err := j.setLine(p.Line, string(line[:p.Col])); err != nil {
			return p, err
		}
		if err := j.insertLine(p.Line+1, string(line[p.Col:])); err != nil {
			return p, err
		}
		return buffer.Pos{Line: p.Line + 1, Col: 0}, nil
	})
}

// CutLine removes the cursor line and returns its text. The only line is
// emptied instead. The cursor goes to column 0 of the line that takes its
// place.
func (e *Engine) CutLine() (string, error) {
	p := e.s.Cursor.Pos
	text := e.s.CurrentLine()
	err := e.edit("cut line", func(j *journal) (buffer.Pos, error) {
		if e.s.Doc.LineCount() == 1 {
			if err := j.setLine(0, ""); err != nil {
				return p, err
			}
			return buffer.Pos{}, nil
		}
		if err := j.deleteLine(p.Line); err != nil {
			return p, err
		}
		return buffer.Pos{Line: min(p.Line, e.lastLine()), Col: 0}, nil
	})
	if err != nil {
		return "", err
	}
	return text, nil
}

// InsertText pastes s at the cursor. Line breaks split lines the way Enter
// does, tabs expand to spaces and other control characters are dropped. The
// cursor ends after the pasted text.
func (e *Engine) InsertText(s string) error {
	parts := strings.Split(normalizeText(s), "\n")
	if len(parts) == 1 {
		return e.insertString("insert text", parts[0])
	}

	p := e.s.Cursor.Pos
	return e.edit("insert text", func(j *journal) (buffer.Pos, error) {
		line := []rune(e.s.CurrentLine())
		head, tail := string(line[:p.Col]), string(line[p.Col:])

		if err := j.setLine(p.Line, head+parts[0]); err != nil {
			return p, err
		}
		last := len(parts) - 1
		for k := 1; k < last; k++ {
			if err := j.insertLine(p.Line+k, parts[k]); err != nil {
				return p, err
			}
		}
		if err := j.insertLine(p.Line+last, parts[last]+tail); err != nil {
			return p, err
		}
		return buffer.Pos{Line: p.Line + last, Col: utf8.RuneCountInString(parts[last])}, nil
	})
}

func normalizeText(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = strings.ReplaceAll(s, "\t", tabSpaces)
	return strings.Map(func(r rune) rune {
		if r == '\n' {
			return r
		}
		if r == utf8.RuneError || unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}
