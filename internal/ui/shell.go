package ui

import (
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"portanav/internal/power"
)

// Snapshotter saves a rendered frame and returns where it went.
type Snapshotter interface {
	Capture(frame string) (string, error)
}

// Tracer records navigation transitions.
type Tracer interface {
	Transition(kind, title string, depth int)
}

// ShellOption configures a Shell.
type ShellOption func(*Shell)

// WithScreens resolves menu actions that name screens.
func WithScreens(r *Router) ShellOption {
	return func(s *Shell) { s.router = r }
}

// WithStackDepth bounds the navigation stack. Zero keeps DefaultMaxDepth.
func WithStackDepth(n int) ShellOption {
	return func(s *Shell) { s.maxDepth = n }
}

// WithCaptions sets the status bar captions.
func WithCaptions(c Captions) ShellOption {
	return func(s *Shell) { s.status.SetCaptions(c) }
}

// WithSnapshotter enables the camera action.
func WithSnapshotter(sn Snapshotter) ShellOption {
	return func(s *Shell) { s.snapshots = sn }
}

// WithPowerSink routes sleep requests to sink instead of sleeping directly.
func WithPowerSink(sink power.Sink) ShellOption {
	return func(s *Shell) { s.power = sink }
}

// WithTracer records a span per view change.
func WithTracer(t Tracer) ShellOption {
	return func(s *Shell) { s.tracer = t }
}

// WithLogger sets the logger. The default discards.
func WithLogger(l *log.Logger) ShellOption {
	return func(s *Shell) { s.logger = l }
}

// WithClipboard copies each saved snapshot path with fn.
func WithClipboard(fn func(string) error) ShellOption {
	return func(s *Shell) { s.clipboard = fn }
}

// Shell composes the status bar over the navigation stack and implements
// tea.Model. It is the only subscriber to the stack's view changes.
type Shell struct {
	nav      *NavigationStack
	status   *StatusBar
	focus    *FocusManager
	layout   shellLayout
	keys     *KeyHandler
	registry *KeybindRegistry
	help     *Overlay

	router    *Router
	maxDepth  int
	snapshots Snapshotter
	power     power.Sink
	tracer    Tracer
	logger    *log.Logger
	clipboard func(string) error

	width, height int
	ready         bool
	asleep        bool
	closed        bool
	lastFrame     string
	pending       []tea.Cmd
}

// Ensure Shell implements tea.Model.
var _ tea.Model = (*Shell)(nil)

// NewShell creates the shell with root as the bottom of the stack.
func NewShell(root Factory, opts ...ShellOption) *Shell {
	s := &Shell{
		status:   NewStatusBar(DefaultCaptions()),
		registry: NewKeybindRegistry(),
	}
	s.keys = NewKeyHandler(s.registry)
	s.layout = shellLayout{status: s.status}
	s.focus = &FocusManager{Current: FocusContent, OnChange: s.focusChanged}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}

	s.status.OnBack = func() tea.Cmd { return msgCmd(BackMsg{}) }
	s.status.OnCamera = func() tea.Cmd { return msgCmd(CameraMsg{}) }
	s.status.OnSleep = func() tea.Cmd { return msgCmd(SleepMsg{}) }
	s.bindKeys()

	stackOpts := []StackOption{WithOnViewChanged(s.handleViewChanged)}
	if s.maxDepth > 0 {
		stackOpts = append(stackOpts, WithMaxDepth(s.maxDepth))
	}
	if s.router != nil {
		stackOpts = append(stackOpts, WithRouter(s.router))
	}
	s.nav = NewNavigationStack(root, stackOpts...)
	return s
}

func msgCmd(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

func (s *Shell) bindKeys() {
	r := s.registry
	r.BindWithDesc("esc", msgCmd(BackMsg{}), "Back")
	r.BindWithDesc("ctrl+c", msgCmd(QuitMsg{}), "Quit")
	r.BindWithDesc("tab", msgCmd(FocusNextMsg{}), "Next control")
	r.BindWithDesc("shift+tab", msgCmd(FocusPrevMsg{}), "Previous control")
	r.BindWithDesc("?", msgCmd(ToggleHelpMsg{}), "Help")
	r.BindWithDesc("SPC c", msgCmd(CameraMsg{}), "Snapshot")
	r.BindWithDesc("SPC s", msgCmd(SleepMsg{}), "Sleep")
	r.BindForStates("SPC h", msgCmd(HomeMsg{}), "Home", []StackState{StateNested})
	r.BindWithDesc("SPC q", msgCmd(QuitMsg{}), "Quit")
}

// Nav returns the navigation stack.
func (s *Shell) Nav() *NavigationStack {
	return s.nav
}

// Status returns the status bar.
func (s *Shell) Status() *StatusBar {
	return s.status
}

// Focused returns the focus ID: FocusContent or a status control.
func (s *Shell) Focused() string {
	return s.focus.Current
}

// Asleep reports whether the display is blanked.
func (s *Shell) Asleep() bool {
	return s.asleep
}

// HelpOpen reports whether the key help overlay is showing.
func (s *Shell) HelpOpen() bool {
	return s.help != nil
}

// LastFrame returns the most recently rendered screen.
func (s *Shell) LastFrame() string {
	return s.lastFrame
}

// Init implements tea.Model. It runs the root view's Init.
func (s *Shell) Init() tea.Cmd {
	return tea.Batch(s.flush()...)
}

// Update implements tea.Model.
func (s *Shell) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := s.update(msg)
	if len(s.pending) == 0 {
		return s, cmd
	}
	return s, tea.Batch(append(s.flush(), cmd)...)
}

func (s *Shell) flush() []tea.Cmd {
	cmds := s.pending
	s.pending = nil
	return cmds
}

func (s *Shell) update(msg tea.Msg) tea.Cmd {
	if s.closed {
		return nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.resize(msg.Width, msg.Height)
		return nil
	case tea.KeyMsg:
		return s.handleKey(msg)
	case power.Event:
		return s.handlePower(msg)
	case SnapshotSavedMsg:
		s.handleSnapshot(msg)
		return nil
	case ConfigReloadedMsg:
		s.status.SetCaptions(msg.Captions)
		s.logger.Info("config reloaded")
		return nil
	case BackMsg:
		s.nav.Pop()
		return nil
	case HomeMsg:
		s.nav.PopToRoot()
		return nil
	case QuitMsg:
		s.Close()
		return tea.Quit
	case FocusNextMsg:
		s.focus.Next()
		return nil
	case FocusPrevMsg:
		s.focus.Prev()
		return nil
	case ToggleHelpMsg:
		s.toggleHelp()
		return nil
	case CameraMsg:
		return s.snapshot()
	case SleepMsg:
		return s.sleep()
	}
	return s.nav.UpdateTop(msg)
}

func (s *Shell) handleKey(msg tea.KeyMsg) tea.Cmd {
	// Any key wakes the display and is otherwise ignored.
	if s.asleep {
		s.asleep = false
		s.nav.dirty = true
		return nil
	}

	key := msg.String()
	if s.help != nil && s.help.IsDismissKey(key) {
		s.help = nil
		return nil
	}

	// An open modal takes space as its done key, ahead of the leader.
	if key == s.keys.LeaderKey && !s.keys.LeaderWaiting && s.help == nil &&
		s.focus.Current == FocusContent && s.nav.isModalTop() {
		return s.nav.UpdateTop(msg)
	}

	if consumed, cmd := s.keys.Handle(msg, s.nav.State()); consumed {
		if cmd == nil {
			return nil
		}
		return s.update(cmd())
	}
	if s.help != nil {
		return s.help.Update(msg)
	}

	if s.focus.Current != FocusContent {
		switch key {
		case "enter":
			if cmd := s.status.Activate(Control(s.focus.Current)); cmd != nil {
				return s.update(cmd())
			}
		case "left":
			s.focus.Prev()
		case "right":
			s.focus.Next()
		}
		return nil
	}
	return s.nav.UpdateTop(msg)
}

func (s *Shell) handlePower(ev power.Event) tea.Cmd {
	switch ev.Kind {
	case power.Sleep:
		s.asleep = true
		s.keys.Reset()
		s.logger.Info("display sleeping")
	case power.Stop:
		s.logger.Info("stopping for firmware handoff")
		s.Close()
		return tea.Quit
	}
	return nil
}

func (s *Shell) sleep() tea.Cmd {
	ev := power.Event{Kind: power.Sleep, Timestamp: time.Now()}
	if s.power == nil {
		return msgCmd(ev)
	}
	s.power.Notify(ev)
	return nil
}

func (s *Shell) snapshot() tea.Cmd {
	if s.snapshots == nil {
		s.status.SetNotice("snapshots disabled")
		return nil
	}
	frame := s.lastFrame
	sn := s.snapshots
	return func() tea.Msg {
		path, err := sn.Capture(frame)
		return SnapshotSavedMsg{Path: path, Err: err}
	}
}

func (s *Shell) handleSnapshot(msg SnapshotSavedMsg) {
	if msg.Err != nil {
		s.logger.Error("snapshot failed", "err", msg.Err)
		s.status.SetNotice(fmt.Sprintf("snapshot failed: %v", msg.Err))
		return
	}
	s.logger.Info("snapshot saved", "path", msg.Path)
	s.status.SetNotice(msg.Path)
	if s.clipboard != nil {
		if err := s.clipboard(msg.Path); err != nil {
			s.logger.Warn("copy snapshot path", "err", err)
		}
	}
}

func (s *Shell) toggleHelp() {
	if s.help != nil {
		s.help = nil
		return
	}
	s.keys.Reset()
	keys := NewKeyMap(s.registry, s.keys, s.nav.State())
	s.help = &Overlay{View: NewHelpView(keys), Dismiss: []string{"esc", "?", "q"}}
}

func (s *Shell) resize(w, h int) {
	s.width, s.height = w, h
	s.ready = true
	s.status.SetWidth(boundsOf(s.layout, PanelStatus, w, h).W)
	s.nav.Resize(boundsOf(s.layout, PanelNavigation, w, h))
}

// handleViewChanged keeps the status bar and focus in step with the stack.
func (s *Shell) handleViewChanged(change ViewChange) {
	title := change.View.Title()
	s.status.SetBackEnabled(!change.IsRoot())
	s.status.SetTitle(title)
	s.resetFocus()

	if change.Kind != ChangePop {
		if cmd := change.View.Init(); cmd != nil {
			s.pending = append(s.pending, cmd)
		}
	}
	if s.tracer != nil {
		s.tracer.Transition(change.Kind.String(), title, change.Depth)
	}
	s.logger.Debug("view changed", "kind", change.Kind, "title", title, "depth", change.Depth)
}

// resetFocus hands focus back to the content. The stack has already focused
// its new top, so no OnChange callback runs.
func (s *Shell) resetFocus() {
	s.focus.Order = s.layout.FocusOrder()
	s.focus.Current = FocusContent
	s.status.SetFocus(ControlNone)
}

func (s *Shell) focusChanged(_, to string) {
	if to == FocusContent {
		s.status.SetFocus(ControlNone)
		s.nav.Focus()
		return
	}
	s.nav.Blur()
	s.status.SetFocus(Control(to))
}

// View implements tea.Model.
func (s *Shell) View() string {
	if s.closed {
		return ""
	}
	if !s.ready {
		return "Loading..."
	}
	if s.asleep {
		return ""
	}

	nb := s.nav.Bounds()
	body := s.nav.Current().View()
	switch {
	case s.help != nil:
		body = lipgloss.Place(nb.W, nb.H, lipgloss.Center, lipgloss.Center, s.help.View.View())
	case s.keys.LeaderWaiting:
		if hint := RenderKeybindHelp(s.keys, s.nav.State()); hint != "" {
			h := max(nb.H-lipgloss.Height(hint), 0)
			body = lipgloss.JoinVertical(lipgloss.Left, fit(body, nb.W, h), hint)
		}
	}

	frame := lipgloss.JoinVertical(lipgloss.Left, s.status.View(), fit(body, nb.W, nb.H))
	s.lastFrame = frame
	s.nav.MarkClean()
	return frame
}

func fit(s string, w, h int) string {
	return lipgloss.NewStyle().MaxWidth(w).MaxHeight(h).Render(s)
}

// Close detaches and destroys every view. Safe to call more than once.
func (s *Shell) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.nav.Close()
}
