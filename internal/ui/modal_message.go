package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ModalMessageView shows a titled message with a single OK button.
// Enter pops it.
type ModalMessageView struct {
	BaseView
	nav     *NavigationStack
	Message string
}

// Ensure ModalMessageView implements View.
var _ View = (*ModalMessageView)(nil)

// NewModalMessageView creates a message dialog bound to nav.
func NewModalMessageView(nav *NavigationStack, title, message string) *ModalMessageView {
	return &ModalMessageView{
		BaseView: NewBaseView(title),
		nav:      nav,
		Message:  message,
	}
}

// Update implements View.
func (m *ModalMessageView) Update(msg tea.Msg) (View, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "enter", " ":
			m.nav.Pop()
		}
	}
	return m, nil
}

// View implements View.
func (m *ModalMessageView) View() string {
	content := Styles.Title.Render(m.Title()) + "\n\n"
	content += Styles.Label.Render(m.Message)
	content += "\n\n" + RenderButton("OK", m.Focused())
	box := Styles.Box.Render(content)

	b := m.Bounds()
	if b.W == 0 || b.H == 0 {
		return box
	}
	return lipgloss.Place(b.W, b.H, lipgloss.Center, lipgloss.Center, box)
}
