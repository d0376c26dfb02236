package ui

// FocusContent is the focus ID of the navigation stack's top view.
const FocusContent = "content"

// FocusManager tracks and rotates focus across the content view and the
// status bar controls.
type FocusManager struct {
	Current  string   // ID of the focused target
	Order    []string // Tab order for focus rotation
	OnChange func(from, to string)
}

// SetOrder replaces the tab order. If the current target is no longer in
// the order, focus moves to the first entry.
func (f *FocusManager) SetOrder(order []string) {
	f.Order = append(f.Order[:0], order...)
	if f.index(f.Current) >= 0 || len(f.Order) == 0 {
		return
	}
	f.move(f.Order[0])
}

// Next advances focus to the next target in order.
// Returns the new current focus ID.
func (f *FocusManager) Next() string {
	if len(f.Order) == 0 {
		return ""
	}
	f.move(f.Order[(f.index(f.Current)+1)%len(f.Order)])
	return f.Current
}

// Prev moves focus to the previous target in order.
func (f *FocusManager) Prev() string {
	if len(f.Order) == 0 {
		return ""
	}
	i := f.index(f.Current) - 1
	if i < 0 {
		i = len(f.Order) - 1
	}
	f.move(f.Order[i])
	return f.Current
}

// SetFocus sets focus to the given target.
// Returns true if the ID exists in order.
func (f *FocusManager) SetFocus(id string) bool {
	if f.index(id) < 0 {
		return false
	}
	f.move(id)
	return true
}

func (f *FocusManager) index(id string) int {
	for i, o := range f.Order {
		if o == id {
			return i
		}
	}
	return -1
}

func (f *FocusManager) move(to string) {
	from := f.Current
	f.Current = to
	if f.OnChange != nil && from != to {
		f.OnChange(from, to)
	}
}
