package ui

import tea "github.com/charmbracelet/bubbletea"

// Rect is a region of the display surface, in terminal cells.
type Rect struct {
	X, Y int
	W, H int
}

// View is the unit of navigation; implements Bubble Tea's Init/Update/View
// plus the attach and focus lifecycle driven by NavigationStack.
// Implementations must be pointer types: the stack compares views by identity.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string

	// Title is shown in the status bar while the view is on top.
	Title() string
	Focus()
	Blur()
	// Attach places the view on the display surface with the given bounds.
	Attach(bounds Rect)
	Detach()
}

// Destroyer is implemented by views holding resources to release once popped.
// The stack calls Destroy exactly once, after Detach.
type Destroyer interface {
	Destroy()
}

// Factory builds a view for the stack. The stack passes itself so that the
// view's actions can push and pop.
type Factory func(nav *NavigationStack) View

// BaseView provides the lifecycle half of View. Embed it and implement
// Update and View.
type BaseView struct {
	title    string
	bounds   Rect
	attached bool
	focused  bool
}

// NewBaseView creates a base with the given status bar title.
func NewBaseView(title string) BaseView {
	return BaseView{title: title}
}

// Init implements View.
func (b *BaseView) Init() tea.Cmd {
	return nil
}

// Title implements View.
func (b *BaseView) Title() string {
	return b.title
}

// SetTitle changes the title. It is picked up on the next view change.
func (b *BaseView) SetTitle(title string) {
	b.title = title
}

// Focus implements View.
func (b *BaseView) Focus() {
	b.focused = true
}

// Blur implements View.
func (b *BaseView) Blur() {
	b.focused = false
}

// Focused reports whether the view holds input focus.
func (b *BaseView) Focused() bool {
	return b.focused
}

// Attach implements View.
func (b *BaseView) Attach(bounds Rect) {
	b.bounds = bounds
	b.attached = true
}

// Detach implements View.
func (b *BaseView) Detach() {
	b.attached = false
	b.focused = false
}

// Attached reports whether the view is on the display surface.
func (b *BaseView) Attached() bool {
	return b.attached
}

// Bounds returns the bounds from the last Attach.
func (b *BaseView) Bounds() Rect {
	return b.bounds
}
