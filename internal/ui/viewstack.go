package ui

import tea "github.com/charmbracelet/bubbletea"

// DefaultMaxDepth bounds the stack when no WithMaxDepth option is given.
const DefaultMaxDepth = 32

// Handle refers to one stack entry. It stays valid only while that entry is
// on the stack; a handle to a popped or replaced entry never matches again,
// even if another view later lands at the same index.
type Handle struct {
	Index int
	Gen   uint64
}

// IsZero reports whether the handle refers to nothing.
func (h Handle) IsZero() bool {
	return h.Gen == 0
}

type entry struct {
	view View
	gen  uint64
}

// NavigationStack owns an ordered stack of views. Index 0 is the root and is
// never popped. Only the top view is attached to the surface and focused.
//
// All methods must be called from the Bubble Tea update goroutine. Views
// handed out by Push and Current must not be retained across a Pop.
type NavigationStack struct {
	entries  []entry
	bounds   Rect
	modal    Handle
	nextGen  uint64
	maxDepth int
	router   *Router
	dirty    bool

	// OnViewChanged fires after every push, pop and replace.
	OnViewChanged func(ViewChange)
}

// StackOption configures a NavigationStack.
type StackOption func(*NavigationStack)

// WithMaxDepth bounds the number of entries. Values below 1 disable the bound.
func WithMaxDepth(n int) StackOption {
	return func(s *NavigationStack) {
		s.maxDepth = n
	}
}

// WithBounds sets the surface bounds views are attached with.
func WithBounds(r Rect) StackOption {
	return func(s *NavigationStack) {
		s.bounds = r
	}
}

// WithRouter lets menu actions name screens instead of building views.
func WithRouter(r *Router) StackOption {
	return func(s *NavigationStack) {
		s.router = r
	}
}

// WithOnViewChanged subscribes fn before the root is pushed, so the root's
// change is observed too.
func WithOnViewChanged(fn func(ViewChange)) StackOption {
	return func(s *NavigationStack) {
		s.OnViewChanged = fn
	}
}

// NewNavigationStack creates a stack seeded with the view built by root.
func NewNavigationStack(root Factory, opts ...StackOption) *NavigationStack {
	s := &NavigationStack{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(s)
	}
	s.Push(root)
	return s
}

// Push builds a view with f, detaches the current top, and makes the new
// view the attached, focused top. The returned view is valid until it is
// popped.
//
// Push panics with a *StackError if the stack is at its depth bound.
func (s *NavigationStack) Push(f Factory) View {
	return s.push(f, false)
}

// push records the modal handle before observers are notified when modal is set.
func (s *NavigationStack) push(f Factory, modal bool) View {
	if s.maxDepth > 0 && len(s.entries) >= s.maxDepth {
		panic(&StackError{Op: "push", Depth: len(s.entries), Err: ErrDepthExceeded})
	}
	v := f(s)
	if v == nil {
		panic(&StackError{Op: "push", Depth: len(s.entries), Err: ErrNilView})
	}

	s.freeView()
	s.nextGen++
	s.entries = append(s.entries, entry{view: v, gen: s.nextGen})
	if modal {
		s.modal = s.TopHandle()
	}
	s.updateView(ChangePush)
	return v
}

// Pop destroys the top view and reveals the one below it.
// Popping the root is a no-op.
func (s *NavigationStack) Pop() {
	if s.isModalTop() {
		s.modal = Handle{}
	}

	// Can't pop the last view.
	if len(s.entries) <= 1 {
		return
	}
	s.removeTop()
	s.updateView(ChangePop)
}

// PopToRoot pops everything above the root and notifies once.
func (s *NavigationStack) PopToRoot() {
	if len(s.entries) <= 1 {
		return
	}
	for len(s.entries) > 1 {
		s.removeTop()
	}
	s.updateView(ChangePop)
}

// ReplaceTop swaps the top view for one built by f, keeping the depth.
// The old top is detached and destroyed; if it was the modal, the modal is
// cleared.
func (s *NavigationStack) ReplaceTop(f Factory) View {
	if len(s.entries) == 0 {
		return s.Push(f)
	}
	v := f(s)
	if v == nil {
		panic(&StackError{Op: "replace", Depth: len(s.entries), Err: ErrNilView})
	}

	i := len(s.entries) - 1
	old := s.entries[i]
	old.view.Blur()
	old.view.Detach()
	s.nextGen++
	s.entries[i] = entry{view: v, gen: s.nextGen}
	s.release(old)
	s.updateView(ChangeReplace)
	return v
}

// DisplayModal pushes a message dialog unless one is already open.
func (s *NavigationStack) DisplayModal(title, message string) {
	// If a modal view is already open, don't display another.
	if s.HasModal() {
		return
	}
	s.push(func(nav *NavigationStack) View {
		return NewModalMessageView(nav, title, message)
	}, true)
}

// HasModal reports whether a modal opened by DisplayModal is still on the stack.
func (s *NavigationStack) HasModal() bool {
	_, ok := s.Lookup(s.modal)
	return ok
}

// Open evaluates a menu action against this stack.
func (s *NavigationStack) Open(a Action) error {
	if s.router == nil {
		return a.apply(s, nil)
	}
	return s.router.Open(s, a)
}

// IsRoot reports whether only the root view is on the stack.
func (s *NavigationStack) IsRoot() bool {
	return len(s.entries) == 1
}

// Depth returns the number of views on the stack.
func (s *NavigationStack) Depth() int {
	return len(s.entries)
}

// State returns Root or Nested.
func (s *NavigationStack) State() StackState {
	if len(s.entries) > 1 {
		return StateNested
	}
	return StateRoot
}

// Current returns the top view, or nil if the stack was closed.
func (s *NavigationStack) Current() View {
	if len(s.entries) == 0 {
		return nil
	}
	return s.entries[len(s.entries)-1].view
}

// TopHandle returns a handle to the top entry.
func (s *NavigationStack) TopHandle() Handle {
	if len(s.entries) == 0 {
		return Handle{}
	}
	i := len(s.entries) - 1
	return Handle{Index: i, Gen: s.entries[i].gen}
}

// Lookup returns the view a handle refers to if its entry is still on the stack.
func (s *NavigationStack) Lookup(h Handle) (View, bool) {
	if h.IsZero() || h.Index < 0 || h.Index >= len(s.entries) {
		return nil, false
	}
	e := s.entries[h.Index]
	if e.gen != h.Gen {
		return nil, false
	}
	return e.view, true
}

// Views returns the views bottom to top.
func (s *NavigationStack) Views() []View {
	out := make([]View, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.view
	}
	return out
}

// Focus gives input focus to the top view.
func (s *NavigationStack) Focus() {
	if v := s.Current(); v != nil {
		v.Focus()
	}
}

// Blur takes input focus away from the top view while it stays attached.
func (s *NavigationStack) Blur() {
	if v := s.Current(); v != nil {
		v.Blur()
	}
}

// Resize changes the surface bounds and re-attaches the top view.
func (s *NavigationStack) Resize(r Rect) {
	s.bounds = r
	if v := s.Current(); v != nil {
		v.Attach(r)
	}
	s.dirty = true
}

// Bounds returns the surface bounds.
func (s *NavigationStack) Bounds() Rect {
	return s.bounds
}

// Dirty reports whether the surface changed since MarkClean.
func (s *NavigationStack) Dirty() bool {
	return s.dirty
}

// MarkClean is called after the surface is redrawn.
func (s *NavigationStack) MarkClean() {
	s.dirty = false
}

// UpdateTop passes msg to the top view. If the view answers with a different
// View and its entry is still on top, the entry is replaced.
// Returns the cmd from the view's Update. Caller must run the cmd.
func (s *NavigationStack) UpdateTop(msg tea.Msg) tea.Cmd {
	if len(s.entries) == 0 {
		return nil
	}
	top := s.TopHandle()
	v := s.entries[top.Index].view
	next, cmd := v.Update(msg)
	if next == nil || next == v {
		return cmd
	}
	// The view may have pushed or popped while handling msg.
	if s.TopHandle() == top {
		s.ReplaceTop(func(*NavigationStack) View { return next })
	}
	return cmd
}

// Close detaches and destroys every view, top first. The stack is empty
// afterwards and must not be used again.
func (s *NavigationStack) Close() {
	for len(s.entries) > 0 {
		s.removeTop()
	}
	s.modal = Handle{}
}

func (s *NavigationStack) isModalTop() bool {
	return !s.modal.IsZero() && s.modal == s.TopHandle()
}

// freeView detaches the current top before another view covers it.
func (s *NavigationStack) freeView() {
	if v := s.Current(); v != nil {
		v.Blur()
		v.Detach()
	}
}

// removeTop detaches the top, drops it from the stack, then destroys it.
func (s *NavigationStack) removeTop() {
	i := len(s.entries) - 1
	top := s.entries[i]
	top.view.Blur()
	top.view.Detach()
	s.entries[i] = entry{}
	s.entries = s.entries[:i]
	s.release(top)
}

// release destroys a view that is no longer on the stack.
func (s *NavigationStack) release(e entry) {
	if e.gen == s.modal.Gen {
		s.modal = Handle{}
	}
	if d, ok := e.view.(Destroyer); ok {
		d.Destroy()
	}
}

func (s *NavigationStack) updateView(kind ChangeKind) {
	v := s.Current()
	v.Attach(s.bounds)
	s.Focus()
	s.dirty = true

	if s.OnViewChanged != nil {
		s.OnViewChanged(ViewChange{Kind: kind, View: v, Depth: len(s.entries)})
	}
}
