// Package screens declares the device's menus and application views and
// registers them with a ui.Router.
package screens

import (
	"portanav/internal/power"
	"portanav/internal/trace"
	"portanav/internal/ui"
)

// Registered screens. The system menu is the root and is never opened by id.
const (
	ScreenReceiver ui.Screen = iota + 1
	ScreenTransponders
	ScreenAudio
	ScreenAIS
	ScreenERT
	ScreenTPMS
	ScreenCapture
	ScreenNotImplemented
	ScreenSetup
	ScreenAbout
	ScreenDebug
	ScreenHistory
	ScreenFirmware
)

// History supplies recent navigation transitions to the debug screen.
type History interface {
	Recent() []trace.Transition
}

// Deps are the services screens act on.
type Deps struct {
	Power   power.Sink // receives the firmware stop request
	History History    // may be nil
}

// Register binds every screen to its factory.
func Register(r *ui.Router, d Deps) *ui.Router {
	return r.
		Register(ScreenReceiver, func(nav *ui.NavigationStack, _ any) ui.View { return NewReceiverMenu(nav) }).
		Register(ScreenTransponders, func(nav *ui.NavigationStack, _ any) ui.View { return NewTranspondersMenu(nav) }).
		Register(ScreenAudio, app("Audio", "Analog audio receiver")).
		Register(ScreenAIS, app("AIS", "Boats")).
		Register(ScreenERT, app("ERT", "Utility meters")).
		Register(ScreenTPMS, app("TPMS", "Cars")).
		Register(ScreenCapture, app("Capture", "Baseband capture to SD card")).
		Register(ScreenNotImplemented, func(nav *ui.NavigationStack, _ any) ui.View { return NewNotImplementedView(nav) }).
		Register(ScreenSetup, func(nav *ui.NavigationStack, _ any) ui.View { return NewSetupMenu(nav) }).
		Register(ScreenAbout, func(nav *ui.NavigationStack, _ any) ui.View { return NewAboutView(nav) }).
		Register(ScreenDebug, func(nav *ui.NavigationStack, _ any) ui.View { return NewDebugMenu(nav) }).
		Register(ScreenHistory, func(nav *ui.NavigationStack, _ any) ui.View { return NewHistoryView(nav, d.History) }).
		Register(ScreenFirmware, func(nav *ui.NavigationStack, _ any) ui.View { return NewFirmwareView(nav, d.Power) })
}

func app(name, description string) ui.ScreenFactory {
	return func(nav *ui.NavigationStack, _ any) ui.View {
		return NewAppView(nav, name, description)
	}
}

// Root returns the factory for the bottom of the stack.
func Root() ui.Factory {
	return func(nav *ui.NavigationStack) ui.View {
		return NewSystemMenu(nav)
	}
}
