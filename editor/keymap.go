package editor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/dosedit/engine"
)

// KeyMap defines the editor key bindings.
//
// Bindings must be portable across terminals (ctrl/alt fallbacks).
type KeyMap struct {
	Left, Right, Up, Down key.Binding
	WordLeft, WordRight   key.Binding
	Home, End             key.Binding
	DocStart, DocEnd      key.Binding
	PageUp, PageDown      key.Binding

	Backspace, Delete key.Binding
	Enter, Tab        key.Binding

	CutLine, Paste key.Binding

	Save, Quit, Help key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),

		// Portable word movement: terminals vary between alt+arrows and ctrl+arrows.
		WordLeft:  key.NewBinding(key.WithKeys("alt+left", "ctrl+left"), key.WithHelp("ctrl+←", "word left")),
		WordRight: key.NewBinding(key.WithKeys("alt+right", "ctrl+right"), key.WithHelp("ctrl+→", "word right")),

		Home: key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("home", "line start")),
		End:  key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "line end")),

		DocStart: key.NewBinding(key.WithKeys("ctrl+home"), key.WithHelp("ctrl+home", "top of file")),
		DocEnd:   key.NewBinding(key.WithKeys("ctrl+end"), key.WithHelp("ctrl+end", "end of file")),
		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Delete:    key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "delete right")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "new line")),
		Tab:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "indent")),

		CutLine: key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "cut line")),
		Paste:   key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),

		Save: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("Ctrl+S", "Save")),
		Quit: key.NewBinding(key.WithKeys("ctrl+w", "f4"), key.WithHelp("Ctrl+W", "Quit")),
		Help: key.NewBinding(key.WithKeys("f1"), key.WithHelp("F1", "Help")),
	}
}

// isZero reports whether no binding was configured at all.
func (km KeyMap) isZero() bool {
	for _, b := range km.all() {
		if len(b.Keys()) > 0 {
			return false
		}
	}
	return true
}

func (km KeyMap) all() []key.Binding {
	return []key.Binding{
		km.Left, km.Right, km.Up, km.Down,
		km.WordLeft, km.WordRight, km.Home, km.End,
		km.DocStart, km.DocEnd, km.PageUp, km.PageDown,
		km.Backspace, km.Delete, km.Enter, km.Tab,
		km.CutLine, km.Paste,
		km.Save, km.Quit, km.Help,
	}
}

// ShortHelp implements help.KeyMap.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Quit, km.Help}
}

// FullHelp implements help.KeyMap.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Left, km.Right, km.Up, km.Down, km.WordLeft, km.WordRight, km.Home, km.End},
		{km.DocStart, km.DocEnd, km.PageUp, km.PageDown, km.Backspace, km.Delete, km.Enter, km.Tab},
		{km.CutLine, km.Paste, km.Save, km.Quit, km.Help},
	}
}

// namedKeys pairs each engine key with the binding that produces it.
// Order matters: more specific bindings come first.
func (km KeyMap) namedKeys() []struct {
	b    key.Binding
	kind engine.KeyKind
} {
	return []struct {
		b    key.Binding
		kind engine.KeyKind
	}{
		{km.DocStart, engine.KeyDocStart},
		{km.DocEnd, engine.KeyDocEnd},
		{km.WordLeft, engine.KeyWordLeft},
		{km.WordRight, engine.KeyWordRight},
		{km.Left, engine.KeyLeft},
		{km.Right, engine.KeyRight},
		{km.Up, engine.KeyUp},
		{km.Down, engine.KeyDown},
		{km.Home, engine.KeyHome},
		{km.End, engine.KeyEnd},
		{km.PageUp, engine.KeyPageUp},
		{km.PageDown, engine.KeyPageDown},
		{km.Backspace, engine.KeyBackspace},
		{km.Delete, engine.KeyDelete},
		{km.Enter, engine.KeyEnter},
		{km.Tab, engine.KeyTab},
		{km.CutLine, engine.KeyCutLine},
	}
}

// Resolve maps a terminal key message onto an engine key.
// Bracketed paste and multi-rune input resolve to a text key.
func (km KeyMap) Resolve(msg tea.KeyMsg) (engine.Key, bool) {
	if msg.Paste {
		return engine.TextKey(string(msg.Runes)), len(msg.Runes) > 0
	}
	for _, nk := range km.namedKeys() {
		if key.Matches(msg, nk.b) {
			return engine.NamedKey(nk.kind), true
		}
	}

	switch msg.Type {
	case tea.KeySpace:
		return engine.NamedKey(engine.KeySpace), true
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return engine.Key{}, false
		}
		if len(msg.Runes) == 1 {
			return engine.RuneKey(msg.Runes[0]), true
		}
		return engine.TextKey(string(msg.Runes)), true
	}
	return engine.Key{}, false
}
