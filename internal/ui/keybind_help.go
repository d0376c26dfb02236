package ui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func newHelpModel() help.Model {
	m := help.New()
	m.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true)
	m.Styles.ShortDesc = Styles.Muted
	m.Styles.ShortSeparator = Styles.Muted
	m.Styles.FullKey = m.Styles.ShortKey
	m.Styles.FullDesc = Styles.Muted
	m.Styles.FullSeparator = Styles.Muted
	return m
}

// RenderKeybindHelp produces the transient hint bar shown after SPC.
// Only bindings that apply in state are listed.
func RenderKeybindHelp(keyHandler *KeyHandler, state StackState) string {
	if keyHandler == nil {
		return ""
	}
	bindings := NewKeyMap(keyHandler.Registry, keyHandler, state).ShortHelp()
	if len(bindings) == 0 {
		return ""
	}

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1)

	content := Styles.Muted.Render(keyHandler.CurrentSeq()) + " " + newHelpModel().ShortHelpView(bindings)
	return boxStyle.Render(content)
}

// HelpView lists every binding that applies in the current stack state.
// It is shown as an overlay, never pushed on the stack.
type HelpView struct {
	BaseView
	keys help.KeyMap
}

// Ensure HelpView implements View.
var _ View = (*HelpView)(nil)

// NewHelpView creates a help overlay for the given bindings.
func NewHelpView(keys help.KeyMap) *HelpView {
	return &HelpView{BaseView: NewBaseView("Help"), keys: keys}
}

// Update implements View.
func (h *HelpView) Update(tea.Msg) (View, tea.Cmd) {
	return h, nil
}

// View implements View.
func (h *HelpView) View() string {
	content := Styles.Title.Render("Keys") + "\n\n" + newHelpModel().FullHelpView(h.keys.FullHelp())
	content += "\n\n" + Styles.Hint.Render("esc/?: close")
	return Styles.Box.Render(content)
}
