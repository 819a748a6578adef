package editor

import (
	"fmt"
	"log"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/iw2rmb/dosedit/engine"
)

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	case FileChangedMsg:
		m.checkDisk()
		return m, nil
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}
	if !m.focused {
		return m, nil
	}

	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Quit):
		return m, tea.Quit
	case key.Matches(msg, km.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, km.Save):
		m, _ = m.Save()
		return m, nil
	case key.Matches(msg, km.Paste) && !msg.Paste:
		m.paste()
		m.emitChange()
		return m, nil
	}

	k, ok := km.Resolve(msg)
	if !ok {
		return m, nil
	}
	if m.cfg.ReadOnly && k.Kind.Mutates() {
		return m, nil
	}
	m.status = ""

	if k.Kind == engine.KeyCutLine {
		m.cutLine()
	} else if err := m.eng.Handle(k); err != nil {
		log.Printf("key %s: %v", k.Kind, err)
	}
	m.emitChange()
	return m, nil
}

func (m *Model) cutLine() {
	text, err := m.eng.CutLine()
	if err != nil {
		log.Printf("key %s: %v", engine.KeyCutLine, err)
		return
	}
	if m.cfg.Clipboard != nil {
		// The trailing newline makes a paste at column 0 restore the line.
		_ = m.cfg.Clipboard.WriteText(text + "\n")
	}
}

func (m *Model) paste() {
	if m.cfg.ReadOnly || m.cfg.Clipboard == nil {
		return
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil || s == "" {
		return
	}
	m.status = ""
	if err := m.eng.InsertText(s); err != nil {
		log.Printf("paste: %v", err)
	}
}

// Save writes the document to its path, or to UntitledPath when it has none,
// and marks it saved. The status bar reports the outcome.
func (m Model) Save() (Model, error) {
	path := m.path
	if path == "" {
		path = UntitledPath
	}
	n, err := m.sess.Doc.Save(path)
	if err != nil {
		log.Printf("save %s: %v", path, err)
		m.status = fmt.Sprintf("Save failed: %v", err)
		return m, err
	}
	m.path = path
	m.disk = statFile(path)
	m = m.MarkSaved()
	m.status = fmt.Sprintf("Saved %s (%s)", m.FileName(), humanize.Bytes(uint64(n)))
	log.Printf("saved %s: %d lines, %d bytes", path, m.sess.Doc.LineCount(), n)
	return m, nil
}
