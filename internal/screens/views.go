package screens

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"portanav/internal/power"
	"portanav/internal/trace"
	"portanav/internal/ui"
	"portanav/internal/ui/textutil"
)

// AppView stands in for a receiver application.
type AppView struct {
	ui.BaseView
	nav         *ui.NavigationStack
	description string
}

// NewAppView creates an application placeholder titled name.
func NewAppView(nav *ui.NavigationStack, name, description string) *AppView {
	return &AppView{BaseView: ui.NewBaseView(name), nav: nav, description: description}
}

// Update implements ui.View.
func (a *AppView) Update(msg tea.Msg) (ui.View, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && (km.String() == "left" || km.String() == "h") {
		a.nav.Pop()
	}
	return a, nil
}

// View implements ui.View.
func (a *AppView) View() string {
	return ui.Styles.Title.Render(a.Title()) + "\n\n" +
		ui.Styles.Normal.Render(a.description) + "\n\n" +
		ui.Styles.Hint.Render("left/esc: back")
}

// NotImplementedView says so, with a Done button that pops it.
type NotImplementedView struct {
	ui.BaseView
	nav *ui.NavigationStack
}

// NewNotImplementedView creates the placeholder.
func NewNotImplementedView(nav *ui.NavigationStack) *NotImplementedView {
	return &NotImplementedView{BaseView: ui.NewBaseView("Not Implemented"), nav: nav}
}

// Update implements ui.View.
func (v *NotImplementedView) Update(msg tea.Msg) (ui.View, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && km.String() == "enter" {
		v.nav.Pop()
	}
	return v, nil
}

// View implements ui.View.
func (v *NotImplementedView) View() string {
	return centered(v.Bounds(),
		ui.Styles.TitleWarning.Render("Not Yet Implemented")+"\n\n"+ui.RenderButton("Bummer", v.Focused()))
}

// AboutView shows static information.
type AboutView struct {
	ui.BaseView
	nav *ui.NavigationStack
}

// NewAboutView creates the about screen.
func NewAboutView(nav *ui.NavigationStack) *AboutView {
	return &AboutView{BaseView: ui.NewBaseView("About"), nav: nav}
}

// Update implements ui.View.
func (v *AboutView) Update(msg tea.Msg) (ui.View, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && km.String() == "enter" {
		v.nav.Pop()
	}
	return v, nil
}

var aboutLines = []string{
	"PortaPack navigation shell",
	"",
	"Receiver apps: Audio, AIS, ERT, TPMS",
	"SPC c snapshot   SPC s sleep   ? keys",
}

// View implements ui.View.
func (v *AboutView) View() string {
	body := ui.Styles.Title.Render("About") + "\n\n" +
		ui.Styles.Normal.Render(strings.Join(aboutLines, "\n")) + "\n\n" +
		ui.RenderButton("Done", v.Focused())
	return centered(v.Bounds(), body)
}

// FirmwareView buttons.
const (
	buttonYes = iota
	buttonNo
)

// FirmwareView asks whether to hand the radio over to the stock HackRF
// firmware. Yes sends a stop request; No pops.
type FirmwareView struct {
	ui.BaseView
	nav    *ui.NavigationStack
	sink   power.Sink
	button int
}

// NewFirmwareView creates the handoff prompt.
func NewFirmwareView(nav *ui.NavigationStack, sink power.Sink) *FirmwareView {
	return &FirmwareView{BaseView: ui.NewBaseView("HackRF"), nav: nav, sink: sink, button: buttonNo}
}

// Focus implements ui.View. Focus always lands on No.
func (v *FirmwareView) Focus() {
	v.BaseView.Focus()
	v.button = buttonNo
}

// Button returns the highlighted button, "yes" or "no".
func (v *FirmwareView) Button() string {
	if v.button == buttonYes {
		return "yes"
	}
	return "no"
}

// Update implements ui.View.
func (v *FirmwareView) Update(msg tea.Msg) (ui.View, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}
	switch km.String() {
	case "left", "h", "up", "k":
		v.button = buttonYes
	case "right", "l", "down", "j":
		v.button = buttonNo
	case "y":
		v.button = buttonYes
		v.selectButton()
	case "n":
		v.button = buttonNo
		v.selectButton()
	case "enter":
		v.selectButton()
	}
	return v, nil
}

func (v *FirmwareView) selectButton() {
	if v.button == buttonNo {
		v.nav.Pop()
		return
	}
	if v.sink != nil {
		v.sink.Notify(power.Event{Kind: power.Stop, Timestamp: time.Now()})
	}
}

// View implements ui.View.
func (v *FirmwareView) View() string {
	body := ui.Styles.TitleWarning.Render("Run stock HackRF firmware?") + "\n\n" +
		ui.Styles.Normal.Render("This will temporarily disable\nPortaPack functionality.\n\nUse stock HackRF firmware\nto run HackRF host tools.") + "\n\n" +
		lipgloss.JoinHorizontal(lipgloss.Top,
			ui.RenderButton("Yes", v.Focused() && v.button == buttonYes),
			"  ",
			ui.RenderButton("No", v.Focused() && v.button == buttonNo),
		)
	return centered(v.Bounds(), body)
}

// HistoryView lists recent navigation transitions, newest first.
type HistoryView struct {
	ui.BaseView
	nav     *ui.NavigationStack
	history History
}

// NewHistoryView creates the history screen. A nil source shows nothing.
func NewHistoryView(nav *ui.NavigationStack, h History) *HistoryView {
	return &HistoryView{BaseView: ui.NewBaseView("History"), nav: nav, history: h}
}

// Update implements ui.View.
func (v *HistoryView) Update(msg tea.Msg) (ui.View, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && (km.String() == "left" || km.String() == "h") {
		v.nav.Pop()
	}
	return v, nil
}

// View implements ui.View. The first row is the current stack, bottom to top.
func (v *HistoryView) View() string {
	var b strings.Builder
	b.WriteString(ui.Styles.Label.Render("stack: " + v.stackPath()))
	b.WriteString("\n\n")

	var recent []trace.Transition
	if v.history != nil {
		recent = v.history.Recent()
	}
	if len(recent) == 0 {
		b.WriteString(ui.Styles.Hint.Render("no history"))
		return b.String()
	}

	rows := max(v.Bounds().H-2, 1)
	var lines strings.Builder
	for i, t := range recent {
		if i == rows {
			break
		}
		fmt.Fprintf(&lines, "%s  %s %2d  %s\n",
			t.At.Format("15:04:05"), textutil.PadRight(t.Kind, 7), t.Depth, titleOrRoot(t.Title))
	}
	b.WriteString(ui.Styles.Normal.Render(strings.TrimRight(lines.String(), "\n")))
	return b.String()
}

func (v *HistoryView) stackPath() string {
	views := v.nav.Views()
	titles := make([]string, len(views))
	for i, view := range views {
		titles[i] = titleOrRoot(view.Title())
	}
	return strings.Join(titles, " > ")
}

func titleOrRoot(title string) string {
	if title == "" {
		return "(root)"
	}
	return title
}

func centered(b ui.Rect, s string) string {
	if b.W == 0 || b.H == 0 {
		return s
	}
	return lipgloss.Place(b.W, b.H, lipgloss.Center, lipgloss.Center, s)
}
