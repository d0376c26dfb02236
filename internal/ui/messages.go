package ui

// BackMsg pops the top view (esc, or the back control).
type BackMsg struct{}

// HomeMsg pops everything above the root (SPC h).
type HomeMsg struct{}

// QuitMsg tears the shell down and exits (ctrl+c, SPC q).
type QuitMsg struct{}

// FocusNextMsg moves focus forward between the content and status controls (tab).
type FocusNextMsg struct{}

// FocusPrevMsg moves focus backward (shift+tab).
type FocusPrevMsg struct{}

// ToggleHelpMsg opens or closes the key help overlay (?).
type ToggleHelpMsg struct{}

// CameraMsg captures the current screen (SPC c, or the camera control).
type CameraMsg struct{}

// SleepMsg asks the power sink to put the display to sleep (SPC s, or the sleep control).
type SleepMsg struct{}

// SnapshotSavedMsg reports the outcome of a screen capture.
type SnapshotSavedMsg struct {
	Path string
	Err  error
}

// ConfigReloadedMsg carries settings re-read from the config file.
type ConfigReloadedMsg struct {
	Captions Captions
}
