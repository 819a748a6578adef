package editor

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/dosedit/buffer"
)

type memClipboard struct {
	s   string
	err error
}

func (c *memClipboard) ReadText() (string, error) { return c.s, c.err }
func (c *memClipboard) WriteText(s string) error {
	if c.err != nil {
		return c.err
	}
	c.s = s
	return nil
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func keyOf(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }

func typeText(m Model, s string) Model {
	for _, r := range s {
		if r == ' ' {
			m, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
			continue
		}
		m, _ = m.Update(runes(string(r)))
	}
	return m
}

func TestUpdate_TypingMovementAndDelete(t *testing.T) {
	m := New(Config{Text: "ab"}).SetSize(40, 10)

	m, _ = m.Update(keyOf(tea.KeyRight))
	m, _ = m.Update(runes("X"))
	if got := m.Buffer().Text(); got != "aXb" {
		t.Fatalf("text after insert: got %q, want %q", got, "aXb")
	}
	if got := m.Session().Cursor.Pos; got != (buffer.Pos{Line: 0, Col: 2}) {
		t.Fatalf("cursor after insert: got %v, want %v", got, buffer.Pos{Line: 0, Col: 2})
	}

	m, _ = m.Update(keyOf(tea.KeyBackspace))
	if got := m.Buffer().Text(); got != "ab" {
		t.Fatalf("text after backspace: got %q, want %q", got, "ab")
	}
	if got := m.Session().Cursor.Pos; got != (buffer.Pos{Line: 0, Col: 1}) {
		t.Fatalf("cursor after backspace: got %v, want %v", got, buffer.Pos{Line: 0, Col: 1})
	}
}

func TestUpdate_SpaceTabAndEnter(t *testing.T) {
	m := New(Config{}).SetSize(40, 10)

	m = typeText(m, "a b")
	m, _ = m.Update(keyOf(tea.KeyTab))
	m, _ = m.Update(keyOf(tea.KeyEnter))
	m = typeText(m, "c")

	if got, want := m.Buffer().Text(), "a b    \nc"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
	if got := m.Session().Cursor.Pos; got != (buffer.Pos{Line: 1, Col: 1}) {
		t.Fatalf("cursor: got %v, want %v", got, buffer.Pos{Line: 1, Col: 1})
	}
}

func TestUpdate_ReadOnly_IgnoresMutations(t *testing.T) {
	m := New(Config{
		Text:      "ab",
		ReadOnly:  true,
		Clipboard: &memClipboard{s: "zz"},
	}).SetSize(40, 10)

	m, _ = m.Update(keyOf(tea.KeyRight))
	if got := m.Session().Cursor.Pos; got != (buffer.Pos{Line: 0, Col: 1}) {
		t.Fatalf("cursor after move: got %v, want %v", got, buffer.Pos{Line: 0, Col: 1})
	}

	for _, msg := range []tea.KeyMsg{
		runes("X"),
		keyOf(tea.KeyBackspace),
		keyOf(tea.KeyDelete),
		keyOf(tea.KeyEnter),
		keyOf(tea.KeyTab),
		keyOf(tea.KeyCtrlY),
		keyOf(tea.KeyCtrlV),
		{Type: tea.KeyRunes, Runes: []rune("pasted"), Paste: true},
	} {
		m, _ = m.Update(msg)
		if got := m.Buffer().Text(); got != "ab" {
			t.Fatalf("text after %q in read-only: got %q, want %q", msg.String(), got, "ab")
		}
	}
	if m.Modified() {
		t.Fatalf("read-only document reported modified")
	}
}

func TestUpdate_Blurred_IgnoresKeys(t *testing.T) {
	m := New(Config{Text: "ab"}).SetSize(40, 10).Blur()

	m, _ = m.Update(runes("X"))
	m, _ = m.Update(keyOf(tea.KeyRight))
	if got := m.Buffer().Text(); got != "ab" {
		t.Fatalf("text: got %q, want %q", got, "ab")
	}
	if got := m.Session().Cursor.Pos; got != (buffer.Pos{}) {
		t.Fatalf("cursor: got %v, want %v", got, buffer.Pos{})
	}

	m = m.Focus()
	m, _ = m.Update(keyOf(tea.KeyRight))
	if got := m.Session().Cursor.Pos; got != (buffer.Pos{Line: 0, Col: 1}) {
		t.Fatalf("cursor after focus: got %v, want %v", got, buffer.Pos{Line: 0, Col: 1})
	}
}

func TestUpdate_CutLineAndPaste(t *testing.T) {
	clip := &memClipboard{}
	m := New(Config{Text: "one\ntwo", Clipboard: clip}).SetSize(40, 10)

	m, _ = m.Update(keyOf(tea.KeyCtrlY))
	if got := m.Buffer().Text(); got != "two" {
		t.Fatalf("text after cut: got %q, want %q", got, "two")
	}
	if clip.s != "one\n" {
		t.Fatalf("clipboard after cut: got %q, want %q", clip.s, "one\n")
	}

	m, _ = m.Update(keyOf(tea.KeyCtrlV))
	if got := m.Buffer().Text(); got != "one\ntwo" {
		t.Fatalf("text after paste: got %q, want %q", got, "one\ntwo")
	}
	if got := m.Session().Cursor.Pos; got != (buffer.Pos{Line: 1, Col: 0}) {
		t.Fatalf("cursor after paste: got %v, want %v", got, buffer.Pos{Line: 1, Col: 0})
	}
}

func TestUpdate_ClipboardErrorsAreIgnored(t *testing.T) {
	clip := &memClipboard{err: errors.New("no clipboard")}
	m := New(Config{Text: "one\ntwo", Clipboard: clip}).SetSize(40, 10)

	m, _ = m.Update(keyOf(tea.KeyCtrlV))
	if got := m.Buffer().Text(); got != "one\ntwo" {
		t.Fatalf("text after failed paste: got %q, want %q", got, "one\ntwo")
	}
	m, _ = m.Update(keyOf(tea.KeyCtrlY))
	if got := m.Buffer().Text(); got != "two" {
		t.Fatalf("text after cut with failing clipboard: got %q, want %q", got, "two")
	}
}

func TestUpdate_BracketedPasteInsertsText(t *testing.T) {
	m := New(Config{Text: "ab"}).SetSize(40, 10)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x\r\ny"), Paste: true})
	if got, want := m.Buffer().Text(), "x\nyab"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
	if got := m.Session().Cursor.Pos; got != (buffer.Pos{Line: 1, Col: 1}) {
		t.Fatalf("cursor: got %v, want %v", got, buffer.Pos{Line: 1, Col: 1})
	}
}

func TestUpdate_QuitKeys(t *testing.T) {
	for _, msg := range []tea.KeyMsg{keyOf(tea.KeyCtrlW), keyOf(tea.KeyF4)} {
		m := New(Config{}).SetSize(40, 10)
		_, cmd := m.Update(msg)
		if cmd == nil {
			t.Fatalf("%s: expected a command", msg)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("%s: expected tea.QuitMsg", msg)
		}
	}
}

func TestUpdate_HelpClosesOnAnyKey(t *testing.T) {
	m := New(Config{Text: "ab"}).SetSize(80, 24)

	m, _ = m.Update(keyOf(tea.KeyF1))
	if !m.HelpVisible() {
		t.Fatalf("help not visible after F1")
	}

	m, _ = m.Update(runes("x"))
	if m.HelpVisible() {
		t.Fatalf("help still visible after a key")
	}
	if got := m.Buffer().Text(); got != "ab" {
		t.Fatalf("key that closed help edited the text: got %q", got)
	}
}

func TestUpdate_WindowSizeLeavesRoomForChrome(t *testing.T) {
	m := New(Config{Text: "ab"})

	m, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 12})
	v := m.Session().View
	if v.Width != 80 || v.Height != 10 {
		t.Fatalf("viewport: got %dx%d, want %dx%d", v.Width, v.Height, 80, 10)
	}
}

func TestUpdate_ScrollingFollowsCursor(t *testing.T) {
	lines := make([]string, 10)
	for i := range lines {
		lines[i] = "line"
	}
	m := New(Config{Text: strings.Join(lines, "\n")}).SetSize(20, 7)

	for range 7 {
		m, _ = m.Update(keyOf(tea.KeyDown))
	}
	if got := m.Session().View.Top; got != 3 {
		t.Fatalf("top after moving to line 7: got %d, want %d", got, 3)
	}

	m, _ = m.Update(tea.WindowSizeMsg{Width: 20, Height: 4})
	v := m.Session().View
	if line := m.Session().Cursor.Line; line < v.Top || line > v.Bottom() {
		t.Fatalf("cursor line %d outside [%d, %d] after resize", line, v.Top, v.Bottom())
	}
}

func TestSave_WritesFileAndClearsModified(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	m := New(Config{Path: path}).SetSize(60, 10)

	m = typeText(m, "hi")
	if !m.Modified() {
		t.Fatalf("expected modified after typing")
	}

	m, _ = m.Update(keyOf(tea.KeyCtrlS))
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read saved file: %v", err)
	}
	if string(data) != "hi" {
		t.Fatalf("saved content: got %q, want %q", data, "hi")
	}
	if m.Modified() {
		t.Fatalf("still modified after save")
	}
	if got, want := m.Status(), "Saved notes.txt (2 B)"; got != want {
		t.Fatalf("status: got %q, want %q", got, want)
	}

	m = typeText(m, "!")
	if m.Status() != "" {
		t.Fatalf("status not cleared by editing: %q", m.Status())
	}
}

func TestSave_UntitledUsesDefaultPath(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	m := New(Config{Text: "x"})
	if got := m.FileName(); got != "UNTITLED" {
		t.Fatalf("file name: got %q, want %q", got, "UNTITLED")
	}

	m, err := m.Save()
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if m.Path() != UntitledPath {
		t.Fatalf("path after save: got %q, want %q", m.Path(), UntitledPath)
	}
	if _, err := os.Stat(filepath.Join(dir, UntitledPath)); err != nil {
		t.Fatalf("stat saved file: %v", err)
	}
}

func TestSave_FailureKeepsModified(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "notes.txt")
	m := New(Config{Path: path})
	m = typeText(m, "x")

	m, err := m.Save()
	if err == nil {
		t.Fatalf("expected save error")
	}
	if !m.Modified() {
		t.Fatalf("failed save cleared modified")
	}
	if !strings.HasPrefix(m.Status(), "Save failed: ") {
		t.Fatalf("status: got %q, want a save failure", m.Status())
	}
}

func TestFileChanged_ReportsExternalWritesOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(path, []byte("one"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	m := New(Config{Text: "one", Path: path}).SetSize(60, 10)

	m, _ = m.Update(FileChangedMsg{})
	if m.Status() != "" {
		t.Fatalf("status without a change: got %q, want empty", m.Status())
	}

	if err := os.WriteFile(path, []byte("changed elsewhere"), 0o644); err != nil {
		t.Fatalf("external write: %v", err)
	}
	m, _ = m.Update(FileChangedMsg{})
	if got, want := m.Status(), "notes.txt changed on disk"; got != want {
		t.Fatalf("status after external write: got %q, want %q", got, want)
	}

	m = typeText(m, "!")
	m, _ = m.Update(FileChangedMsg{})
	if m.Status() != "" {
		t.Fatalf("same change reported twice: %q", m.Status())
	}

	m, _ = m.Save()
	m, _ = m.Update(FileChangedMsg{})
	if !strings.HasPrefix(m.Status(), "Saved ") {
		t.Fatalf("own save reported as external change: %q", m.Status())
	}

	if err := os.Remove(path); err != nil {
		t.Fatalf("remove: %v", err)
	}
	m, _ = m.Update(FileChangedMsg{})
	if got, want := m.Status(), "notes.txt removed from disk"; got != want {
		t.Fatalf("status after remove: got %q, want %q", got, want)
	}
}
