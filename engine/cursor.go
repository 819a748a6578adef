package engine

import "github.com/iw2rmb/dosedit/buffer"

// Lines is the read side of a document the cursor clamps against.
type Lines interface {
	LineCount() int
	LineLen(i int) int
}

// Cursor is the insertion point in document coordinates. Col may equal the
// line length (after the last rune) but never exceed it.
type Cursor struct {
	buffer.Pos
}

// MoveTo clamps line into [0, LineCount) and col into [0, LineLen(line)], then
// sets the position. Every cursor update goes through here.
func (c *Cursor) MoveTo(doc Lines, line, col int) {
	c.Pos = buffer.ClampPos(buffer.Pos{Line: line, Col: col}, doc.LineCount(), doc.LineLen)
}

// ClampColumnToLine pulls Col back to lineLen when the line got shorter.
func (c *Cursor) ClampColumnToLine(lineLen int) {
	if c.Col > lineLen {
		c.Col = max(lineLen, 0)
	}
}
