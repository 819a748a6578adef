package engine

// KeyKind names a logical key category.
type KeyKind int

const (
	KeyNone KeyKind = iota
	KeyRune         // printable character in Key.Rune
	KeyText         // literal text in Key.Text (paste)

	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyWordLeft
	KeyWordRight
	KeyPageUp
	KeyPageDown
	KeyDocStart
	KeyDocEnd

	KeyEnter
	KeyBackspace
	KeyDelete
	KeyTab
	KeySpace
	KeyCutLine
)

var keyNames = map[KeyKind]string{
	KeyNone:      "none",
	KeyRune:      "rune",
	KeyText:      "text",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyWordLeft:  "word-left",
	KeyWordRight: "word-right",
	KeyPageUp:    "page-up",
	KeyPageDown:  "page-down",
	KeyDocStart:  "doc-start",
	KeyDocEnd:    "doc-end",
	KeyEnter:     "enter",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",
	KeyTab:       "tab",
	KeySpace:     "space",
	KeyCutLine:   "cut-line",
}

func (k KeyKind) String() string {
	if s, ok := keyNames[k]; ok {
		return s
	}
	return "unknown"
}

// Mutates reports whether the key edits the document.
func (k KeyKind) Mutates() bool {
	switch k {
	case KeyRune, KeyText, KeyEnter, KeyBackspace, KeyDelete, KeyTab, KeySpace, KeyCutLine:
		return true
	default:
		return false
	}
}

// Key is one logical key event.
type Key struct {
	Kind KeyKind
	Rune rune
	Text string
}

func RuneKey(r rune) Key { return Key{Kind: KeyRune, Rune: r} }

func TextKey(s string) Key { return Key{Kind: KeyText, Text: s} }

func NamedKey(k KeyKind) Key { return Key{Kind: k} }
