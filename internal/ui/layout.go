package ui

// BoundsFunc returns a panel's bounds given the terminal dimensions.
type BoundsFunc func(width, height int) Rect

// Panel is a named region of the screen.
type Panel struct {
	ID     string
	Bounds BoundsFunc
}

// Layout arranges panels and defines focus order.
type Layout interface {
	Panels() []Panel
	FocusOrder() []string // Tab order for focus
}

// Panel IDs used by the shell layout.
const (
	PanelStatus     = "status"
	PanelNavigation = "navigation"
)

// StatusBarHeight is the number of rows the status bar occupies.
const StatusBarHeight = 1

// shellLayout is the status bar stacked over the navigation surface, which
// fills the rest of the screen.
type shellLayout struct {
	status *StatusBar
}

func (l shellLayout) Panels() []Panel {
	return []Panel{
		{ID: PanelStatus, Bounds: func(w, h int) Rect {
			return Rect{W: w, H: min(StatusBarHeight, h)}
		}},
		{ID: PanelNavigation, Bounds: func(w, h int) Rect {
			return Rect{Y: StatusBarHeight, W: w, H: max(h-StatusBarHeight, 0)}
		}},
	}
}

// FocusOrder puts the content first, then whichever status controls are
// currently focusable.
func (l shellLayout) FocusOrder() []string {
	order := []string{FocusContent}
	for _, c := range l.status.Focusable() {
		order = append(order, string(c))
	}
	return order
}

// boundsOf returns the bounds of the panel with the given ID.
func boundsOf(l Layout, id string, width, height int) Rect {
	for _, p := range l.Panels() {
		if p.ID == id {
			return p.Bounds(width, height)
		}
	}
	return Rect{}
}
