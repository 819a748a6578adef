package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
)

const helpTitle = "Keyboard Help"

// renderHelp draws the F1 box listing every key binding.
func (m Model) renderHelp() string {
	h := help.New()
	h.ShowAll = true
	h.FullSeparator = "   "

	var sb strings.Builder
	sb.WriteString(helpTitle)
	sb.WriteString("\n\n")
	sb.WriteString(h.View(m.cfg.KeyMap))
	sb.WriteString("\n\nPress any key to close")
	return m.cfg.Style.HelpBox.Render(sb.String())
}
