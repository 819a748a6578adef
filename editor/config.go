package editor

import "github.com/iw2rmb/dosedit/buffer"

// UntitledPath is where a document without a path is saved.
const UntitledPath = "UNTITLED.TXT"

// Config configures the editor Model.
type Config struct {
	// Doc is the document to edit. When nil, a document is built from Text.
	Doc  *buffer.Buffer
	Text string

	// Path is the save target. Empty means an untitled document that saves
	// to UntitledPath.
	Path string

	// ReadOnly blocks every key that edits the document.
	ReadOnly bool

	// KeyMap defaults to DefaultKeyMap when no binding is set.
	KeyMap KeyMap
	// Style is used as given; pass DefaultStyle for the classic look.
	Style Style

	// OnChange is called after a key changes the document or moves the cursor.
	OnChange func(ChangeEvent)

	// Clipboard backs cut-line and paste. Nil disables both.
	Clipboard Clipboard
}
