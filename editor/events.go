package editor

import "github.com/iw2rmb/dosedit/buffer"

// ChangeEvent describes the editor state after a key changed it.
type ChangeEvent struct {
	Version  uint64
	Cursor   buffer.Pos
	Top      int
	Modified bool
}

func (m Model) buildChangeEvent() ChangeEvent {
	return ChangeEvent{
		Version:  m.sess.Doc.Version(),
		Cursor:   m.sess.Cursor.Pos,
		Top:      m.sess.View.Top,
		Modified: m.Modified(),
	}
}

// emitChange fires OnChange when the document version or the cursor moved
// since the last event.
func (m *Model) emitChange() {
	ver := m.sess.Doc.Version()
	cur := m.sess.Cursor.Pos
	if ver == m.lastVersion && cur == m.lastCursor {
		return
	}
	m.lastVersion = ver
	m.lastCursor = cur
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(m.buildChangeEvent())
	}
}
