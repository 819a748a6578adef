package engine

import "github.com/iw2rmb/dosedit/buffer"

// Session is the state of one open document: the document itself, the cursor
// and the viewport. Origin is where the viewport's top-left cell sits on the
// terminal, after any chrome above or to the left of it.
type Session struct {
	Doc    *buffer.Buffer
	Cursor Cursor
	View   Viewport
	Origin ScreenPos
}

// NewSession starts a session on doc with the cursor at (0,0). A nil doc is an
// empty document.
func NewSession(doc *buffer.Buffer, width, height int) *Session {
	if doc == nil {
		doc = buffer.New("")
	}
	return &Session{
		Doc:  doc,
		View: NewViewport(width, height),
	}
}

// ScreenPosition derives the terminal cell of the cursor.
func (s *Session) ScreenPosition() (ScreenPos, error) {
	row, err := s.View.ScreenRowOf(s.Cursor.Line)
	if err != nil {
		return ScreenPos{}, err
	}
	return ScreenPos{
		Row: row + s.Origin.Row,
		Col: s.Cursor.Col + s.Origin.Col,
	}, nil
}

// CurrentLine returns the text of the cursor line.
func (s *Session) CurrentLine() string {
	line, _ := s.Doc.Line(s.Cursor.Line)
	return line
}

// VisibleLines returns the document lines inside the viewport window.
func (s *Session) VisibleLines() []string {
	return s.Doc.Lines(s.View.Top, s.View.Top+s.View.Height)
}
