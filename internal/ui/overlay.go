package ui

import (
	"slices"

	tea "github.com/charmbracelet/bubbletea"
)

// Overlay is a popup drawn over the navigation surface. It is not part of
// the navigation stack: opening one never changes the title or back state.
type Overlay struct {
	View    View
	Dismiss []string // Keys that dismiss (e.g. "esc", "?")
}

// IsDismissKey returns true if the given key string should dismiss this overlay.
func (o *Overlay) IsDismissKey(key string) bool {
	return slices.Contains(o.Dismiss, key)
}

// Update passes msg to the overlay's view and keeps the result.
// Returns the cmd from the view's Update. Caller must run the cmd.
func (o *Overlay) Update(msg tea.Msg) tea.Cmd {
	next, cmd := o.View.Update(msg)
	if next != nil {
		o.View = next
	}
	return cmd
}
