package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"portanav/internal/ui/textutil"
)

// Control identifies a focusable status bar control.
type Control string

const (
	ControlNone   Control = ""
	ControlBack   Control = "back"
	ControlCamera Control = "camera"
	ControlSleep  Control = "sleep"
)

// Captions holds the status bar's display strings.
type Captions struct {
	BackEnabled  string // back control while a view can be popped
	BackDisabled string // back control at the root
	DefaultTitle string // title shown when the top view has none
	Camera       string
	Sleep        string
}

// DefaultCaptions returns the built-in English captions.
func DefaultCaptions() Captions {
	return Captions{
		BackEnabled:  " < ",
		BackDisabled: " * ",
		DefaultTitle: "PortaPack",
		Camera:       "[cam]",
		Sleep:        "[zz]",
	}
}

// Merge returns c with empty fields taken from fallback.
func (c Captions) Merge(fallback Captions) Captions {
	pick := func(v, d string) string {
		if v == "" {
			return d
		}
		return v
	}
	return Captions{
		BackEnabled:  pick(c.BackEnabled, fallback.BackEnabled),
		BackDisabled: pick(c.BackDisabled, fallback.BackDisabled),
		DefaultTitle: pick(c.DefaultTitle, fallback.DefaultTitle),
		Camera:       pick(c.Camera, fallback.Camera),
		Sleep:        pick(c.Sleep, fallback.Sleep),
	}
}

// StatusBar is the one-row header: back control and title on the left,
// camera and sleep controls on the right.
type StatusBar struct {
	captions    Captions
	title       string
	rawTitle    string
	backEnabled bool
	focused     Control
	notice      string
	width       int

	// Each callback runs when its control is activated. Nil means no-op.
	OnBack   func() tea.Cmd
	OnCamera func() tea.Cmd
	OnSleep  func() tea.Cmd
}

// NewStatusBar creates a status bar showing the default title with back disabled.
func NewStatusBar(c Captions) *StatusBar {
	sb := &StatusBar{captions: c.Merge(DefaultCaptions())}
	sb.SetTitle("")
	return sb
}

// SetBackEnabled switches the back control between its two captions.
// A disabled back control cannot hold focus.
func (s *StatusBar) SetBackEnabled(enabled bool) {
	s.backEnabled = enabled
	if !enabled && s.focused == ControlBack {
		s.focused = ControlNone
	}
}

// BackEnabled reports whether the back control is enabled.
func (s *StatusBar) BackEnabled() bool {
	return s.backEnabled
}

// BackCaption returns the caption currently shown on the back control.
func (s *StatusBar) BackCaption() string {
	if s.backEnabled {
		return s.captions.BackEnabled
	}
	return s.captions.BackDisabled
}

// SetTitle shows title, or the default title when title is empty.
// Any notice is cleared.
func (s *StatusBar) SetTitle(title string) {
	s.rawTitle = title
	s.title = title
	if title == "" {
		s.title = s.captions.DefaultTitle
	}
	s.notice = ""
}

// Title returns the title being shown.
func (s *StatusBar) Title() string {
	return s.title
}

// SetCaptions replaces the captions. Empty fields keep the built-in value.
func (s *StatusBar) SetCaptions(c Captions) {
	s.captions = c.Merge(DefaultCaptions())
	if s.rawTitle == "" {
		s.title = s.captions.DefaultTitle
	}
}

// Captions returns the captions in effect.
func (s *StatusBar) Captions() Captions {
	return s.captions
}

// Focusable returns the controls that can currently take focus, in tab order.
func (s *StatusBar) Focusable() []Control {
	if s.backEnabled {
		return []Control{ControlBack, ControlCamera, ControlSleep}
	}
	return []Control{ControlCamera, ControlSleep}
}

// SetFocus highlights c. ControlNone removes the highlight.
func (s *StatusBar) SetFocus(c Control) {
	s.focused = c
}

// Focused returns the highlighted control.
func (s *StatusBar) Focused() Control {
	return s.focused
}

// Activate runs c's callback. Activating the disabled back control does nothing.
func (s *StatusBar) Activate(c Control) tea.Cmd {
	var fn func() tea.Cmd
	switch c {
	case ControlBack:
		if !s.backEnabled {
			return nil
		}
		fn = s.OnBack
	case ControlCamera:
		fn = s.OnCamera
	case ControlSleep:
		fn = s.OnSleep
	}
	if fn == nil {
		return nil
	}
	return fn()
}

// SetWidth sets the row width in columns.
func (s *StatusBar) SetWidth(w int) {
	s.width = w
}

// SetNotice shows a transient message next to the controls until the next title change.
func (s *StatusBar) SetNotice(n string) {
	s.notice = n
}

// Notice returns the transient message, if any.
func (s *StatusBar) Notice() string {
	return s.notice
}

// View renders the bar as a single row.
func (s *StatusBar) View() string {
	left := s.control(ControlBack, s.BackCaption()) + Styles.Bar.Render(" ") +
		Styles.BarTitle.Render(s.title)

	right := ""
	if s.notice != "" {
		right = Styles.BarNotice.Render(textutil.Truncate(s.notice, max(s.width/2, 8))) + Styles.Bar.Render(" ")
	}
	right += s.control(ControlCamera, s.captions.Camera) + s.control(ControlSleep, s.captions.Sleep)

	if s.width <= 0 {
		return left + Styles.Bar.Render(" ") + right
	}
	return Styles.Bar.Render(textutil.Spread(left, right, s.width))
}

func (s *StatusBar) control(c Control, caption string) string {
	if s.focused == c {
		return Styles.BarFocused.Render(caption)
	}
	return Styles.BarControl.Render(caption)
}
