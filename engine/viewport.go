package engine

import "fmt"

// Viewport is the visible window of document lines: Height rows starting at
// Top, each Width cells wide.
type Viewport struct {
	Top    int
	Height int
	Width  int
}

func NewViewport(width, height int) Viewport {
	v := Viewport{}
	v.Resize(width, height)
	return v
}

// Resize sets the window size. Both dimensions are at least 1.
func (v *Viewport) Resize(width, height int) {
	v.Width = max(width, 1)
	v.Height = max(height, 1)
}

// Bottom returns the index of the last line the window can show.
func (v Viewport) Bottom() int { return v.Top + v.Height - 1 }

// EnsureVisible re-anchors Top by the minimum amount that brings line into
// the window.
func (v *Viewport) EnsureVisible(line int) {
	if line < v.Top {
		v.Top = line
		return
	}
	if line > v.Bottom() {
		v.Top = line - v.Height + 1
	}
}

// ScreenRowOf returns the window row of line. Callers run EnsureVisible first.
func (v Viewport) ScreenRowOf(line int) (int, error) {
	row := line - v.Top
	if row < 0 || row >= v.Height {
		return 0, fmt.Errorf("engine: line %d outside rows [%d, %d]: %w", line, v.Top, v.Bottom(), ErrNotVisible)
	}
	return row, nil
}

// ScrollBy moves Top by delta, clamped to [0, max(0, lineCount-Height)].
func (v *Viewport) ScrollBy(delta, lineCount int) {
	maxTop := max(0, lineCount-v.Height)
	v.Top = min(max(v.Top+delta, 0), maxTop)
}
