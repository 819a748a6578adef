// Package engine is the key-driven editing core of dosedit.
//
// A Session owns the document (buffer.Buffer), the Cursor and the Viewport.
// An Engine dispatches logical keys over one Session: it mutates the document,
// moves the cursor through its single clamped setter, re-anchors the viewport
// so the cursor line stays visible, and then pushes the visible rows and the
// derived screen position to its Surface and CursorSink collaborators.
//
// Coordinates are 0-based. Columns count runes.
package engine
