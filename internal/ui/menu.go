package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// MenuItem is one selectable row of a MenuView.
type MenuItem struct {
	Label  string
	Action Action
}

// menuItem implements list.Item for MenuItem.
type menuItem struct {
	MenuItem
}

func (m menuItem) FilterValue() string { return m.Label }
func (m menuItem) Title() string       { return m.Label }
func (m menuItem) Description() string { return "" }

// MenuOption configures a MenuView.
type MenuOption func(*MenuView)

// WithBackOnLeft makes left (or h) pop the menu, like a submenu.
func WithBackOnLeft() MenuOption {
	return func(m *MenuView) {
		m.backOnLeft = true
	}
}

// MenuView is a vertical list of labeled actions. Enter opens the selected
// item's action on the navigation stack; a failing action is reported in a
// modal message.
type MenuView struct {
	BaseView
	nav        *NavigationStack
	list       list.Model
	items      []MenuItem
	backOnLeft bool
}

// Ensure MenuView implements View.
var _ View = (*MenuView)(nil)

// NewMenuView creates a menu bound to nav.
func NewMenuView(nav *NavigationStack, title string, items []MenuItem, opts ...MenuOption) *MenuView {
	l := list.New(nil, NewCompactListDelegate(), 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.SetShowPagination(false)
	l.DisableQuitKeybindings()

	m := &MenuView{
		BaseView: NewBaseView(title),
		nav:      nav,
		list:     l,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.SetItems(items)
	return m
}

// SetItems replaces the menu entries.
func (m *MenuView) SetItems(items []MenuItem) {
	m.items = items
	li := make([]list.Item, len(items))
	for i, it := range items {
		li[i] = menuItem{MenuItem: it}
	}
	m.list.SetItems(li)
}

// Items returns the menu entries.
func (m *MenuView) Items() []MenuItem {
	return m.items
}

// Selected returns the index of the highlighted entry.
func (m *MenuView) Selected() int {
	return m.list.Index()
}

// Select highlights the entry at index i and opens its action.
func (m *MenuView) Select(i int) {
	if i < 0 || i >= len(m.items) {
		return
	}
	m.list.Select(i)
	if err := m.nav.Open(m.items[i].Action); err != nil {
		m.nav.DisplayModal("Error", err.Error())
	}
}

// Attach implements View.
func (m *MenuView) Attach(bounds Rect) {
	m.BaseView.Attach(bounds)
	m.list.SetSize(bounds.W, bounds.H)
}

// Update implements View.
func (m *MenuView) Update(msg tea.Msg) (View, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "enter":
			m.Select(m.list.Index())
			return m, nil
		case "left", "h":
			if m.backOnLeft {
				m.nav.Pop()
				return m, nil
			}
		}
	}

	// j/k, arrows, g/G are handled natively by list.Model.
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View implements View.
func (m *MenuView) View() string {
	// Set default dimensions if not attached yet (for tests)
	if m.list.Width() == 0 {
		m.list.SetWidth(80)
	}
	if m.list.Height() == 0 {
		m.list.SetHeight(20)
	}

	var b strings.Builder
	b.WriteString(m.list.View())
	if len(m.items) == 0 {
		b.WriteString(Styles.Hint.Render("(empty)"))
	}
	return b.String()
}
