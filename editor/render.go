package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	overlay "github.com/rmhubbert/bubbletea-overlay"
)

const menuItems = "  File  Edit  Search  View  Options  Help"

func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	view := lipgloss.JoinVertical(lipgloss.Left,
		m.renderMenuBar(),
		m.renderText(),
		m.renderStatusBar(),
	)
	if m.showHelp {
		return overlay.Composite(m.renderHelp(), view, overlay.Center, overlay.Center, 0, 0)
	}
	return view
}

func (m Model) renderMenuBar() string {
	st := m.cfg.Style
	title := st.Title.Render(" " + m.FileName() + " ")
	return spread(m.width, st.MenuBar, st.MenuBar.Render(menuItems), "", title+st.MenuBar.Render(" "))
}

func (m Model) renderStatusBar() string {
	st := m.cfg.Style
	left := " " + m.FileName()
	if m.Modified() {
		left += " [modified]"
	}
	mid := m.status
	if mid == "" {
		q, h := m.cfg.KeyMap.Quit.Help(), m.cfg.KeyMap.Help.Help()
		mid = fmt.Sprintf("< %s=%s  %s=%s >", q.Key, q.Desc, h.Key, h.Desc)
	}
	p := m.sess.Cursor.Pos
	right := fmt.Sprintf("Line %d | Col %d ", p.Line+1, p.Col+1)
	return spread(m.width, st.StatusBar, st.StatusBar.Render(left), st.StatusBar.Render(mid), st.StatusBar.Render(right))
}

// spread lays out left, mid and right across one row of the given width,
// centering mid in the space between the other two. Rows that do not fit
// are clipped.
func spread(width int, fill lipgloss.Style, left, mid, right string) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		return lipgloss.NewStyle().MaxWidth(width).Render(left + right)
	}
	midW := lipgloss.Width(mid)
	if midW > gap {
		mid, midW = "", 0
	}
	before := (gap - midW) / 2
	after := gap - midW - before
	return left +
		fill.Render(strings.Repeat(" ", before)) +
		mid +
		fill.Render(strings.Repeat(" ", after)) +
		right
}

// renderText draws the visible rows through the surface's viewport. The
// content is rebuilt only after the engine asked for a repaint.
func (m Model) renderText() string {
	s := m.surface
	if s.dirty {
		s.vp.SetContent(m.textContent())
		s.dirty = false
	}
	return s.vp.View()
}

func (m Model) textContent() string {
	st := m.cfg.Style
	width := m.surface.vp.Width
	cursorRow := m.caret.row - textOrigin.Row
	cursorCol := m.caret.col - textOrigin.Col

	out := make([]string, 0, m.surface.vp.Height)
	for i, row := range m.surface.rows {
		if m.focused && i == cursorRow {
			out = append(out, renderCursorRow(st, row, cursorCol, width))
			continue
		}
		out = append(out, renderRow(st, row, width))
	}
	for len(out) < m.surface.vp.Height {
		out = append(out, renderRow(st, "", width))
	}
	return strings.Join(out, "\n")
}

func renderRow(st Style, row string, width int) string {
	row = runewidth.Truncate(row, width, "")
	return st.Text.Render(runewidth.FillRight(row, width))
}

// renderCursorRow paints the cell under the cursor with the cursor style.
// A cursor past the right edge is not drawn.
func renderCursorRow(st Style, row string, col, width int) string {
	runes := []rune(row)
	col = min(max(col, 0), len(runes))

	before := string(runes[:col])
	if runewidth.StringWidth(before) >= width {
		return renderRow(st, row, width)
	}
	at, after := " ", ""
	if col < len(runes) {
		at = string(runes[col])
		after = string(runes[col+1:])
	}
	rest := width - runewidth.StringWidth(before) - runewidth.StringWidth(at)
	if rest < 0 {
		return renderRow(st, row, width)
	}
	after = runewidth.FillRight(runewidth.Truncate(after, rest, ""), rest)

	var sb strings.Builder
	if before != "" {
		sb.WriteString(st.Text.Render(before))
	}
	sb.WriteString(st.Cursor.Render(at))
	if after != "" {
		sb.WriteString(st.Text.Render(after))
	}
	return sb.String()
}
