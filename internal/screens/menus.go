package screens

import "portanav/internal/ui"

// NewSystemMenu is the root menu. Its title is empty so the status bar
// shows the default title.
func NewSystemMenu(nav *ui.NavigationStack) *ui.MenuView {
	return ui.NewMenuView(nav, "", []ui.MenuItem{
		{Label: "Receiver", Action: ui.OpenScreen(ScreenReceiver)},
		{Label: "Capture", Action: ui.OpenScreen(ScreenCapture)},
		{Label: "Analyze", Action: ui.OpenScreen(ScreenNotImplemented)},
		{Label: "Setup", Action: ui.OpenScreen(ScreenSetup)},
		{Label: "About", Action: ui.OpenScreen(ScreenAbout)},
		{Label: "Debug", Action: ui.OpenScreen(ScreenDebug)},
		{Label: "HackRF", Action: ui.OpenScreen(ScreenFirmware)},
	})
}

// NewReceiverMenu lists the receiver applications.
func NewReceiverMenu(nav *ui.NavigationStack) *ui.MenuView {
	return ui.NewMenuView(nav, "Receiver", []ui.MenuItem{
		{Label: "Audio", Action: ui.OpenScreen(ScreenAudio)},
		{Label: "Transponders", Action: ui.OpenScreen(ScreenTransponders)},
	}, ui.WithBackOnLeft())
}

// NewTranspondersMenu lists the transponder decoders.
func NewTranspondersMenu(nav *ui.NavigationStack) *ui.MenuView {
	return ui.NewMenuView(nav, "Transponders", []ui.MenuItem{
		{Label: "AIS:  Boats", Action: ui.OpenScreen(ScreenAIS)},
		{Label: "ERT:  Utility Meters", Action: ui.OpenScreen(ScreenERT)},
		{Label: "TPMS: Cars", Action: ui.OpenScreen(ScreenTPMS)},
	}, ui.WithBackOnLeft())
}

// NewSetupMenu holds device settings, none of which exist yet.
func NewSetupMenu(nav *ui.NavigationStack) *ui.MenuView {
	return ui.NewMenuView(nav, "Setup", []ui.MenuItem{
		{Label: "Frequency Correction", Action: ui.OpenScreen(ScreenNotImplemented)},
		{Label: "Touch", Action: ui.OpenScreen(ScreenNotImplemented)},
		{Label: "Date/Time", Action: ui.OpenScreen(ScreenNotImplemented)},
		{Label: "Back", Action: ui.Back()},
	}, ui.WithBackOnLeft())
}

// NewDebugMenu exposes diagnostics.
func NewDebugMenu(nav *ui.NavigationStack) *ui.MenuView {
	return ui.NewMenuView(nav, "Debug", []ui.MenuItem{
		{Label: "Navigation History", Action: ui.OpenScreen(ScreenHistory)},
		{Label: "Memory", Action: ui.OpenScreen(ScreenNotImplemented)},
		{Label: "Modal Message", Action: ui.Run(func(nav *ui.NavigationStack) {
			nav.DisplayModal("Debug", "Modal message test")
		})},
		{Label: "Back", Action: ui.Back()},
	}, ui.WithBackOnLeft())
}
