// Package ui provides the navigation shell for a single-display device, built on Bubble Tea.
//
// Core abstractions:
//   - View: a full-screen unit of content with an attach/focus lifecycle (Elm-style update)
//   - NavigationStack: owns the ordered stack of views; exactly one is attached and focused
//   - StatusBar: one-row header with title, back control, camera and sleep actions
//   - Shell: the tea.Model composing StatusBar over NavigationStack and wiring their events
//   - Router: resolves menu action descriptors to screen factories
//   - FocusManager: rotates focus between the active view and the status bar controls
//   - KeybindRegistry: single keys and SPC-prefixed leader sequences
package ui
