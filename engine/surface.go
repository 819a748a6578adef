package engine

// Surface is the drawable region the engine paints the visible rows into.
type Surface interface {
	// SetVisibleText receives the lines for rows [Top, Top+Height), clipped
	// to the end of the document.
	SetVisibleText(lines []string)
	RequestRepaint()
}

// CursorSink places the terminal cursor at an absolute screen position.
type CursorSink interface {
	SetAbsoluteCursor(row, col int)
}

// ScreenPos is a physical terminal cell.
type ScreenPos struct {
	Row int
	Col int
}

type nopSurface struct{}

func (nopSurface) SetVisibleText([]string) {}
func (nopSurface) RequestRepaint()         {}

type nopCursor struct{}

func (nopCursor) SetAbsoluteCursor(int, int) {}

// NopSurface discards all painting.
var NopSurface Surface = nopSurface{}

// NopCursor discards all cursor placement.
var NopCursor CursorSink = nopCursor{}
