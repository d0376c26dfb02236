package ui

import "fmt"

// Screen identifies a registered screen.
type Screen int

// ScreenNone is the zero Screen; an Action with it names no screen.
const ScreenNone Screen = 0

// ScreenFactory builds the view for a screen from the action's arguments.
type ScreenFactory func(nav *NavigationStack, args any) View

// Action describes what a menu item does when selected. Exactly one of the
// fields is expected to be set; Run wins over Back, Back over Push, and Push
// over Screen.
type Action struct {
	Screen Screen
	Args   any
	Back   bool
	Push   Factory
	Run    func(nav *NavigationStack)
}

// OpenScreen is an action pushing the given screen.
func OpenScreen(sc Screen) Action {
	return Action{Screen: sc}
}

// OpenScreenWith is OpenScreen with arguments for the screen factory.
func OpenScreenWith(sc Screen, args any) Action {
	return Action{Screen: sc, Args: args}
}

// PushView is an action pushing a view built by f.
func PushView(f Factory) Action {
	return Action{Push: f}
}

// Back is an action popping the current view.
func Back() Action {
	return Action{Back: true}
}

// Run is an action calling fn with the stack.
func Run(fn func(nav *NavigationStack)) Action {
	return Action{Run: fn}
}

func (a Action) apply(nav *NavigationStack, r *Router) error {
	switch {
	case a.Run != nil:
		a.Run(nav)
	case a.Back:
		nav.Pop()
	case a.Push != nil:
		nav.Push(a.Push)
	case a.Screen == ScreenNone:
		// Nothing to do.
	case r == nil:
		return fmt.Errorf("router: screen %d: %w", a.Screen, ErrNoRouter)
	default:
		f, ok := r.screens[a.Screen]
		if !ok {
			return fmt.Errorf("router: screen %d: %w", a.Screen, ErrUnknownScreen)
		}
		args := a.Args
		nav.Push(func(nav *NavigationStack) View {
			return f(nav, args)
		})
	}
	return nil
}

// Router maps screens to the factories that build them.
type Router struct {
	screens map[Screen]ScreenFactory
}

// NewRouter creates an empty router.
func NewRouter() *Router {
	return &Router{screens: make(map[Screen]ScreenFactory)}
}

// Register binds a screen to its factory, replacing any earlier binding.
func (r *Router) Register(sc Screen, f ScreenFactory) *Router {
	r.screens[sc] = f
	return r
}

// Has reports whether the screen is registered.
func (r *Router) Has(sc Screen) bool {
	_, ok := r.screens[sc]
	return ok
}

// Open evaluates a against nav.
func (r *Router) Open(nav *NavigationStack, a Action) error {
	return a.apply(nav, r)
}
