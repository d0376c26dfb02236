package ui

// StackState is the depth state of the navigation stack.
// Modal display is orthogonal to it.
type StackState int

const (
	StateRoot   StackState = iota // only the root view is on the stack
	StateNested                   // at least one view above the root
)

func (s StackState) String() string {
	switch s {
	case StateRoot:
		return "Root"
	case StateNested:
		return "Nested"
	default:
		return "Unknown"
	}
}

// ChangeKind says which stack operation produced a ViewChange.
type ChangeKind int

const (
	ChangePush ChangeKind = iota
	ChangePop
	ChangeReplace
)

func (k ChangeKind) String() string {
	switch k {
	case ChangePush:
		return "push"
	case ChangePop:
		return "pop"
	case ChangeReplace:
		return "replace"
	default:
		return "unknown"
	}
}

// ViewChange is delivered to OnViewChanged after the new top view is
// attached and focused.
type ViewChange struct {
	Kind  ChangeKind
	View  View
	Depth int
}

// IsRoot reports whether the change left only the root on the stack.
func (c ViewChange) IsRoot() bool {
	return c.Depth == 1
}
