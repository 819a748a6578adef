package buffer

import (
	"fmt"
	"slices"
	"strings"
)

// Buffer is the document: an ordered, never-empty sequence of lines.
type Buffer struct {
	lines   [][]rune
	version uint64
}

// New splits text on '\n' into lines. The empty string yields one empty line;
// a trailing newline yields a trailing empty line.
func New(text string) *Buffer {
	return &Buffer{
		lines:   splitLines(text),
		version: 0,
	}
}

// Text joins the lines with '\n'.
func (b *Buffer) Text() string {
	if len(b.lines) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, line := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(line))
	}
	return sb.String()
}

// Version increments on every effective mutation.
func (b *Buffer) Version() uint64 { return b.version }

func (b *Buffer) LineCount() int { return len(b.lines) }

// LineLen returns the rune length of line i, or 0 when i is out of range.
func (b *Buffer) LineLen(i int) int {
	if i < 0 || i >= len(b.lines) {
		return 0
	}
	return len(b.lines[i])
}

// Line returns the text of line i.
func (b *Buffer) Line(i int) (string, error) {
	if err := b.checkIndex(i, len(b.lines)); err != nil {
		return "", err
	}
	return string(b.lines[i]), nil
}

// Lines returns the text of lines [from, to), clipped to the document.
func (b *Buffer) Lines(from, to int) []string {
	from = clampInt(from, 0, len(b.lines))
	to = clampInt(to, from, len(b.lines))
	out := make([]string, 0, to-from)
	for _, line := range b.lines[from:to] {
		out = append(out, string(line))
	}
	return out
}

// SetLine replaces the content of line i in place.
func (b *Buffer) SetLine(i int, text string) error {
	if err := b.checkIndex(i, len(b.lines)); err != nil {
		return err
	}
	if err := checkText(text); err != nil {
		return err
	}
	next := []rune(text)
	if slices.Equal(b.lines[i], next) {
		return nil
	}
	b.lines[i] = next
	b.version++
	return nil
}

// InsertLine inserts a new line at i; lines from i on shift down by one.
// i == LineCount appends.
func (b *Buffer) InsertLine(i int, text string) error {
	if err := b.checkIndex(i, len(b.lines)+1); err != nil {
		return err
	}
	if err := checkText(text); err != nil {
		return err
	}
	b.lines = slices.Insert(b.lines, i, []rune(text))
	b.version++
	return nil
}

// DeleteLine removes line i; later lines shift up by one. The only remaining
// line can be emptied with SetLine but never removed.
func (b *Buffer) DeleteLine(i int) error {
	if err := b.checkIndex(i, len(b.lines)); err != nil {
		return err
	}
	if len(b.lines) == 1 {
		return fmt.Errorf("buffer: delete line %d: last remaining line: %w", i, ErrInvalidOperation)
	}
	b.lines = slices.Delete(b.lines, i, i+1)
	b.version++
	return nil
}

func (b *Buffer) checkIndex(i, limit int) error {
	if i < 0 || i >= limit {
		return fmt.Errorf("buffer: line %d not in [0, %d): %w", i, limit, ErrIndexOutOfRange)
	}
	return nil
}

func checkText(text string) error {
	if strings.ContainsRune(text, '\n') {
		return fmt.Errorf("buffer: line text contains newline: %w", ErrInvalidOperation)
	}
	return nil
}

func splitLines(text string) [][]rune {
	parts := strings.Split(text, "\n")
	lines := make([][]rune, 0, len(parts))
	for _, s := range parts {
		lines = append(lines, []rune(s))
	}
	if len(lines) == 0 {
		lines = append(lines, nil)
	}
	return lines
}
