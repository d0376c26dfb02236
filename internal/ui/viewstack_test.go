package ui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testView records its lifecycle calls into a shared log.
type testView struct {
	BaseView
	name      string
	log       *[]string
	destroyed int
	next      View // returned from Update when set
}

func (v *testView) record(ev string) {
	if v.log != nil {
		*v.log = append(*v.log, v.name+":"+ev)
	}
}

func (v *testView) Update(tea.Msg) (View, tea.Cmd) {
	if v.next != nil {
		return v.next, nil
	}
	return v, nil
}

func (v *testView) View() string { return v.name }

func (v *testView) Attach(b Rect) {
	v.BaseView.Attach(b)
	v.record("attach")
}

func (v *testView) Detach() {
	v.BaseView.Detach()
	v.record("detach")
}

func (v *testView) Destroy() {
	v.destroyed++
	v.record("destroy")
}

func newTestView(name string, log *[]string) *testView {
	return &testView{BaseView: NewBaseView(name), name: name, log: log}
}

func factoryOf(v View) Factory {
	return func(*NavigationStack) View { return v }
}

// assertOnlyTopAttached checks that exactly the top view is attached and focused.
func assertOnlyTopAttached(t *testing.T, s *NavigationStack) {
	t.Helper()
	views := s.Views()
	for i, v := range views {
		tv := v.(interface {
			Attached() bool
			Focused() bool
		})
		top := i == len(views)-1
		assert.Equal(t, top, tv.Attached(), "view %d attached", i)
		assert.Equal(t, top, tv.Focused(), "view %d focused", i)
	}
}

func TestNewNavigationStack_SeedsRoot(t *testing.T) {
	var changes []ViewChange
	root := newTestView("root", nil)
	bounds := Rect{Y: 1, W: 40, H: 20}

	s := NewNavigationStack(factoryOf(root),
		WithBounds(bounds),
		WithOnViewChanged(func(c ViewChange) { changes = append(changes, c) }),
	)

	assert.True(t, s.IsRoot())
	assert.Equal(t, 1, s.Depth())
	assert.Equal(t, StateRoot, s.State())
	assert.Same(t, root, s.Current())
	assert.True(t, root.Attached())
	assert.True(t, root.Focused())
	assert.Equal(t, bounds, root.Bounds())
	assert.True(t, s.Dirty())
	require.Len(t, changes, 1)
	assert.Equal(t, ChangePush, changes[0].Kind)
	assert.True(t, changes[0].IsRoot())
}

func TestPush_AttachesAndFocusesNewTop(t *testing.T) {
	var log []string
	a := newTestView("a", &log)
	b := newTestView("b", &log)
	s := NewNavigationStack(factoryOf(a))
	s.MarkClean()
	log = nil

	var seen ViewChange
	s.OnViewChanged = func(c ViewChange) {
		// Fires only once the new top is fully in place.
		assert.Same(t, b, s.Current())
		assert.True(t, b.Attached())
		assert.True(t, b.Focused())
		assert.False(t, a.Attached())
		seen = c
	}

	got := s.Push(factoryOf(b))

	assert.Same(t, b, got)
	assert.Same(t, b, s.Current())
	assert.Equal(t, 2, s.Depth())
	assert.Equal(t, StateNested, s.State())
	assert.True(t, s.Dirty())
	assert.Equal(t, []string{"a:detach", "b:attach"}, log)
	assert.Equal(t, ViewChange{Kind: ChangePush, View: b, Depth: 2}, seen)
	assertOnlyTopAttached(t, s)
}

func TestPush_FactoryReceivesStack(t *testing.T) {
	s := NewNavigationStack(factoryOf(newTestView("root", nil)))
	var got *NavigationStack
	s.Push(func(nav *NavigationStack) View {
		got = nav
		return newTestView("child", nil)
	})
	assert.Same(t, s, got)
}

func TestPop_DetachesThenDestroys(t *testing.T) {
	var log []string
	a := newTestView("a", &log)
	b := newTestView("b", &log)
	s := NewNavigationStack(factoryOf(a))
	s.Push(factoryOf(b))
	log = nil

	var changes []ViewChange
	s.OnViewChanged = func(c ViewChange) { changes = append(changes, c) }
	s.Pop()

	assert.Same(t, a, s.Current())
	assert.Equal(t, 1, s.Depth())
	assert.Equal(t, []string{"b:detach", "b:destroy", "a:attach"}, log)
	assert.Equal(t, 1, b.destroyed)
	assert.Equal(t, 0, a.destroyed)
	require.Len(t, changes, 1)
	assert.Equal(t, ChangePop, changes[0].Kind)
	assert.Same(t, a, changes[0].View)
	assertOnlyTopAttached(t, s)
}

func TestPop_AtRootIsNoop(t *testing.T) {
	root := newTestView("root", nil)
	s := NewNavigationStack(factoryOf(root))
	s.MarkClean()

	fired := false
	s.OnViewChanged = func(ViewChange) { fired = true }
	s.Pop()
	s.Pop()

	assert.Equal(t, 1, s.Depth())
	assert.Same(t, root, s.Current())
	assert.False(t, fired)
	assert.False(t, s.Dirty())
	assert.Equal(t, 0, root.destroyed)
}

func TestPush_DepthBoundPanics(t *testing.T) {
	s := NewNavigationStack(factoryOf(newTestView("root", nil)), WithMaxDepth(3))
	s.Push(factoryOf(newTestView("1", nil)))
	s.Push(factoryOf(newTestView("2", nil)))

	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic")
		err, ok := r.(error)
		require.True(t, ok)
		assert.True(t, errors.Is(err, ErrDepthExceeded))
		var se *StackError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, "push", se.Op)
		assert.Equal(t, 3, se.Depth)
		assert.Equal(t, 3, s.Depth(), "failed push leaves the stack unchanged")
	}()
	s.Push(factoryOf(newTestView("3", nil)))
}

func TestPush_NilViewPanics(t *testing.T) {
	s := NewNavigationStack(factoryOf(newTestView("root", nil)))
	assert.PanicsWithError(t, "navstack: push at depth 1: factory returned nil view", func() {
		s.Push(func(*NavigationStack) View { return nil })
	})
}

func TestReplaceTop_KeepsDepth(t *testing.T) {
	var log []string
	a := newTestView("a", &log)
	b := newTestView("b", &log)
	c := newTestView("c", &log)
	s := NewNavigationStack(factoryOf(a))
	s.Push(factoryOf(b))
	log = nil

	var changes []ViewChange
	s.OnViewChanged = func(ch ViewChange) { changes = append(changes, ch) }
	s.ReplaceTop(factoryOf(c))

	assert.Equal(t, 2, s.Depth())
	assert.Same(t, c, s.Current())
	assert.Equal(t, 1, b.destroyed)
	assert.Equal(t, []string{"b:detach", "b:destroy", "c:attach"}, log)
	require.Len(t, changes, 1)
	assert.Equal(t, ChangeReplace, changes[0].Kind)
	assertOnlyTopAttached(t, s)
}

func TestReplaceTop_Root(t *testing.T) {
	a := newTestView("a", nil)
	b := newTestView("b", nil)
	s := NewNavigationStack(factoryOf(a))

	s.ReplaceTop(factoryOf(b))

	assert.True(t, s.IsRoot())
	assert.Same(t, b, s.Current())
	assert.Equal(t, 1, a.destroyed)
}

func TestPopToRoot(t *testing.T) {
	root := newTestView("root", nil)
	s := NewNavigationStack(factoryOf(root))
	var pushed []*testView
	for _, n := range []string{"1", "2", "3"} {
		v := newTestView(n, nil)
		pushed = append(pushed, v)
		s.Push(factoryOf(v))
	}

	var changes []ViewChange
	s.OnViewChanged = func(c ViewChange) { changes = append(changes, c) }
	s.PopToRoot()

	assert.True(t, s.IsRoot())
	assert.Same(t, root, s.Current())
	for _, v := range pushed {
		assert.Equal(t, 1, v.destroyed, "view %s", v.name)
	}
	require.Len(t, changes, 1, "one notification for the whole unwind")
	assert.Equal(t, ChangePop, changes[0].Kind)

	s.PopToRoot()
	assert.Len(t, changes, 1, "no-op at root")
}

func TestDisplayModal_Scenario(t *testing.T) {
	s := NewNavigationStack(factoryOf(newTestView("root", nil)))

	s.DisplayModal("Error", "Disk full")
	assert.Equal(t, 2, s.Depth())
	assert.True(t, s.HasModal())
	modal, ok := s.Current().(*ModalMessageView)
	require.True(t, ok)
	assert.Equal(t, "Error", modal.Title())
	assert.Equal(t, "Disk full", modal.Message)

	s.DisplayModal("Error", "Something else")
	assert.Equal(t, 2, s.Depth(), "second modal is suppressed")
	assert.Same(t, modal, s.Current())

	s.Pop()
	assert.Equal(t, 1, s.Depth())
	assert.False(t, s.HasModal())

	s.DisplayModal("Error", "Disk full")
	assert.Equal(t, 2, s.Depth())
	assert.True(t, s.HasModal())
}

func TestDisplayModal_ObserversSeeModal(t *testing.T) {
	var s *NavigationStack
	var seen []bool
	s = NewNavigationStack(factoryOf(newTestView("root", nil)),
		WithOnViewChanged(func(c ViewChange) {
			if s != nil {
				seen = append(seen, s.HasModal())
			}
		}),
	)

	s.Push(factoryOf(newTestView("child", nil)))
	s.DisplayModal("Error", "Disk full")
	s.Pop()

	assert.Equal(t, []bool{false, true, false}, seen)
}

func TestDisplayModal_DoneButtonPops(t *testing.T) {
	s := NewNavigationStack(factoryOf(newTestView("root", nil)))
	s.DisplayModal("Error", "Disk full")

	s.UpdateTop(keyMsg("enter"))

	assert.True(t, s.IsRoot())
	assert.False(t, s.HasModal())
}

func TestDisplayModal_ClearedByPopToRoot(t *testing.T) {
	s := NewNavigationStack(factoryOf(newTestView("root", nil)))
	s.Push(factoryOf(newTestView("menu", nil)))
	s.DisplayModal("Error", "Disk full")
	s.Push(factoryOf(newTestView("above", nil)))
	assert.True(t, s.HasModal(), "modal stays recorded while covered")

	s.PopToRoot()

	assert.False(t, s.HasModal())
	s.DisplayModal("Error", "again")
	assert.Equal(t, 2, s.Depth())
}

func TestDisplayModal_ClearedByReplaceTop(t *testing.T) {
	s := NewNavigationStack(factoryOf(newTestView("root", nil)))
	s.DisplayModal("Error", "Disk full")

	s.ReplaceTop(factoryOf(newTestView("other", nil)))

	assert.False(t, s.HasModal())
	s.DisplayModal("Error", "again")
	assert.Equal(t, 3, s.Depth())
}

func TestHandle_StaleAfterPop(t *testing.T) {
	s := NewNavigationStack(factoryOf(newTestView("root", nil)))
	s.Push(factoryOf(newTestView("a", nil)))
	h := s.TopHandle()

	v, ok := s.Lookup(h)
	require.True(t, ok)
	assert.Same(t, s.Current(), v)

	s.Pop()
	s.Push(factoryOf(newTestView("b", nil)))

	_, ok = s.Lookup(h)
	assert.False(t, ok, "same index, new generation")
	_, ok = s.Lookup(Handle{})
	assert.False(t, ok)
}

func TestUpdateTop_ReplacesWhenViewReturnsAnother(t *testing.T) {
	a := newTestView("a", nil)
	b := newTestView("b", nil)
	s := NewNavigationStack(factoryOf(newTestView("root", nil)))
	s.Push(factoryOf(a))
	a.next = b

	s.UpdateTop(keyMsg("x"))

	assert.Equal(t, 2, s.Depth())
	assert.Same(t, b, s.Current())
	assert.Equal(t, 1, a.destroyed)
	assert.True(t, b.Attached())
}

func TestResize_ReattachesTop(t *testing.T) {
	a := newTestView("a", nil)
	s := NewNavigationStack(factoryOf(a))
	s.MarkClean()

	r := Rect{Y: 1, W: 80, H: 23}
	s.Resize(r)

	assert.Equal(t, r, a.Bounds())
	assert.Equal(t, r, s.Bounds())
	assert.True(t, s.Dirty())

	b := newTestView("b", nil)
	s.Push(factoryOf(b))
	assert.Equal(t, r, b.Bounds(), "new views get the full surface")
}

func TestFocusAndBlur(t *testing.T) {
	a := newTestView("a", nil)
	s := NewNavigationStack(factoryOf(a))

	s.Blur()
	assert.False(t, a.Focused())
	assert.True(t, a.Attached())
	s.Focus()
	assert.True(t, a.Focused())
}

func TestClose_DestroysAllTopFirst(t *testing.T) {
	var log []string
	s := NewNavigationStack(factoryOf(newTestView("a", &log)))
	s.Push(factoryOf(newTestView("b", &log)))
	log = nil

	s.Close()

	assert.Equal(t, 0, s.Depth())
	assert.Nil(t, s.Current())
	assert.Equal(t, []string{"b:detach", "b:destroy", "a:detach", "a:destroy"}, log)
}

func TestDepthNeverBelowOne(t *testing.T) {
	s := NewNavigationStack(factoryOf(newTestView("root", nil)))
	ops := []func(){
		func() { s.Push(factoryOf(newTestView("x", nil))) },
		s.Pop,
		s.Pop,
		func() { s.DisplayModal("t", "m") },
		s.PopToRoot,
		s.Pop,
		func() { s.ReplaceTop(factoryOf(newTestView("y", nil))) },
		s.Pop,
	}
	for i, op := range ops {
		op()
		assert.GreaterOrEqual(t, s.Depth(), 1, "after op %d", i)
		assertOnlyTopAttachedAny(t, s)
	}
}

// assertOnlyTopAttachedAny is assertOnlyTopAttached for stacks holding
// views other than testView.
func assertOnlyTopAttachedAny(t *testing.T, s *NavigationStack) {
	t.Helper()
	views := s.Views()
	for i, v := range views {
		a, ok := v.(interface{ Attached() bool })
		if !ok {
			continue
		}
		assert.Equal(t, i == len(views)-1, a.Attached(), "view %d", i)
	}
}
