package editor

import (
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/dosedit/buffer"
	"github.com/iw2rmb/dosedit/engine"
)

// chromeRows is the number of rows taken by the menu and status bars.
const chromeRows = 2

// textOrigin is the screen position of the text area's top-left cell.
var textOrigin = engine.ScreenPos{Row: 1, Col: 0}

// Model is a Bubble Tea component that edits one document.
type Model struct {
	cfg Config

	sess    *engine.Session
	eng     *engine.Engine
	surface *textSurface
	caret   *caret

	width, height int
	focused       bool
	showHelp      bool

	path   string
	status string
	disk   diskStamp

	savedVersion uint64
	lastVersion  uint64
	lastCursor   buffer.Pos
}

func New(cfg Config) Model {
	if cfg.KeyMap.isZero() {
		cfg.KeyMap = DefaultKeyMap()
	}
	doc := cfg.Doc
	if doc == nil {
		doc = buffer.New(cfg.Text)
	}

	m := Model{
		cfg:     cfg,
		sess:    engine.NewSession(doc, 0, 1),
		surface: newTextSurface(),
		caret:   &caret{},
		focused: true,
		path:    cfg.Path,
	}
	if m.path != "" {
		m.disk = statFile(m.path)
	}
	m.sess.Origin = textOrigin
	m.eng = engine.New(m.sess, m.surface, m.caret)
	m.savedVersion = doc.Version()
	m.lastVersion = doc.Version()
	m.lastCursor = m.sess.Cursor.Pos
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// Session exposes the engine state for hosts and tests.
func (m Model) Session() *engine.Session { return m.sess }

func (m Model) Engine() *engine.Engine { return m.eng }

func (m Model) Buffer() *buffer.Buffer { return m.sess.Doc }

// SetSize sizes the whole editor; the text area gets the rows left over
// by the menu and status bars.
func (m Model) SetSize(width, height int) Model {
	m.width = max(width, 0)
	m.height = max(height, 0)
	textHeight := max(m.height-chromeRows, 1)

	m.surface.setSize(m.width, textHeight)
	// Height is at least 1, so the cursor line always fits.
	_ = m.eng.Resize(m.width, textHeight)
	return m
}

func (m Model) Focus() Model {
	m.focused = true
	m.surface.dirty = true
	return m
}

func (m Model) Blur() Model {
	m.focused = false
	m.surface.dirty = true
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) ReadOnly() bool { return m.cfg.ReadOnly }

func (m Model) HelpVisible() bool { return m.showHelp }

// Status returns the transient status message, if any.
func (m Model) Status() string { return m.status }

// Path is the file the document saves to; empty for an untitled document.
func (m Model) Path() string { return m.path }

// FileName is the name shown in the chrome.
func (m Model) FileName() string {
	if m.path == "" {
		return "UNTITLED"
	}
	return filepath.Base(m.path)
}

// Modified reports whether the document changed since it was loaded or saved.
func (m Model) Modified() bool { return m.sess.Doc.Version() != m.savedVersion }

// MarkSaved records the current document version as saved.
func (m Model) MarkSaved() Model {
	m.savedVersion = m.sess.Doc.Version()
	return m
}
