package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestKeybindRegistry_BindLookup(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("ctrl+c", tea.Quit)
	reg.Bind("SPC q", tea.Quit)
	reg.Bind("space x", tea.Quit)
	reg.Bind("j", nil)

	if reg.Lookup("ctrl+c") == nil {
		t.Error("expected ctrl+c to be bound")
	}
	if reg.Lookup("SPC q") == nil {
		t.Error("expected SPC q to be bound")
	}
	if reg.Lookup("SPC x") == nil {
		t.Error("expected space x to normalize to SPC x")
	}
	if reg.Lookup("unknown") != nil {
		t.Error("expected unknown to be unbound")
	}
}

func TestKeybindRegistry_StateFilter(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindForStates("SPC h", tea.Quit, "Home", []StackState{StateNested})

	if reg.LookupIn("SPC h", StateRoot) != nil {
		t.Error("SPC h should not apply at the root")
	}
	if reg.LookupIn("SPC h", StateNested) == nil {
		t.Error("SPC h should apply when nested")
	}
	if _, ok := reg.LeaderHints("", StateRoot)["h"]; ok {
		t.Error("root leader hints should not list h")
	}
	if got := reg.LeaderHints("", StateNested)["h"]; got != "Home" {
		t.Errorf("nested leader hint for h: got %q", got)
	}
}

func TestKeybindRegistry_Hints(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("esc", tea.Quit, "Back")
	reg.BindWithDesc("SPC c", tea.Quit, "Snapshot")
	reg.Bind("tab", tea.Quit)

	hints := reg.Hints(StateRoot)
	if hints["esc"] != "Back" {
		t.Errorf("esc hint: got %q", hints["esc"])
	}
	if hints["tab"] != "tab" {
		t.Errorf("undescribed hint should fall back to the sequence, got %q", hints["tab"])
	}
	if _, ok := hints["SPC c"]; ok {
		t.Error("leader bindings belong in LeaderHints")
	}
}

func TestKeybindRegistry_LeaderHintsNested(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("SPC d m", tea.Quit, "Modal")
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")

	first := reg.LeaderHints("", StateRoot)
	if first["d"] != "d…" {
		t.Errorf("expected d to be shown as a submenu, got %q", first["d"])
	}
	next := reg.LeaderHints("SPC d", StateRoot)
	if next["m"] != "Modal" {
		t.Errorf("expected m under SPC d, got %v", next)
	}
}

func TestKeyHandler_LeaderKey(t *testing.T) {
	reg := NewKeybindRegistry()
	var executed bool
	reg.Bind("SPC x", func() tea.Msg {
		executed = true
		return nil
	})
	h := NewKeyHandler(reg)

	// Press space -> leader waiting (Bubble Tea reports space as " ")
	consumed, cmd := h.Handle(keyMsg(" "), StateRoot)
	if !consumed || cmd != nil {
		t.Errorf("space: consumed=%v cmd=%v", consumed, cmd)
	}
	if !h.LeaderWaiting {
		t.Error("expected leader waiting after space")
	}

	// Press x -> execute SPC x
	consumed, cmd = h.Handle(keyMsg("x"), StateRoot)
	if !consumed {
		t.Errorf("x: expected consumed")
	}
	if h.LeaderWaiting {
		t.Error("leader should not be waiting after completing sequence")
	}
	if cmd == nil {
		t.Fatal("expected command for SPC x")
	}
	cmd()
	if !executed {
		t.Error("expected command to execute")
	}
}

func TestKeyHandler_EscCancelsLeader(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("SPC x", tea.Quit)
	reg.Bind("esc", tea.Quit)
	h := NewKeyHandler(reg)

	h.Handle(keyMsg(" "), StateRoot)
	if !h.LeaderWaiting {
		t.Fatal("expected leader waiting")
	}

	consumed, cmd := h.Handle(keyMsg("esc"), StateRoot)
	if !consumed || cmd != nil {
		t.Errorf("esc: consumed=%v cmd=%v", consumed, cmd)
	}
	if h.LeaderWaiting {
		t.Error("esc should cancel leader mode")
	}
}

func TestKeyHandler_EscIsBindableOutsideLeader(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("esc", tea.Quit)
	h := NewKeyHandler(reg)

	consumed, cmd := h.Handle(keyMsg("esc"), StateNested)
	if !consumed || cmd == nil {
		t.Errorf("esc: consumed=%v cmd=%v", consumed, cmd)
	}
}

func TestKeyHandler_UnknownLeaderSequenceResets(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("SPC x", tea.Quit)
	h := NewKeyHandler(reg)

	h.Handle(keyMsg(" "), StateRoot)
	consumed, cmd := h.Handle(keyMsg("j"), StateRoot)
	if !consumed || cmd != nil {
		t.Errorf("SPC j: consumed=%v cmd=%v", consumed, cmd)
	}
	if h.LeaderWaiting {
		t.Error("unknown sequence should leave leader mode")
	}
}

func TestKeyHandler_FilteredLeaderBindingResets(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindForStates("SPC h", tea.Quit, "Home", []StackState{StateNested})
	h := NewKeyHandler(reg)

	h.Handle(keyMsg(" "), StateRoot)
	consumed, cmd := h.Handle(keyMsg("h"), StateRoot)
	if !consumed || cmd != nil {
		t.Errorf("SPC h at root: consumed=%v cmd=%v", consumed, cmd)
	}
}

func TestKeyHandler_SingleKey(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("ctrl+c", tea.Quit)
	reg.Bind("tab", tea.Quit)
	reg.Bind("shift+tab", tea.Quit)
	h := NewKeyHandler(reg)

	for _, k := range []string{"ctrl+c", "tab", "shift+tab"} {
		consumed, cmd := h.Handle(keyMsg(k), StateRoot)
		if !consumed || cmd == nil {
			t.Errorf("%s: consumed=%v cmd=%v", k, consumed, cmd)
		}
	}
}

func TestKeyHandler_UnboundFallsThrough(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("ctrl+c", tea.Quit)
	h := NewKeyHandler(reg)

	consumed, _ := h.Handle(keyMsg("j"), StateRoot)
	if consumed {
		t.Error("unbound j should not be consumed")
	}
}

func TestKeyMap_Help(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("esc", tea.Quit, "Back")
	reg.BindWithDesc("SPC c", tea.Quit, "Snapshot")
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	h := NewKeyHandler(reg)
	km := NewKeyMap(reg, h, StateRoot)

	short := km.ShortHelp()
	// c, q, then esc cancel
	if len(short) != 3 {
		t.Fatalf("expected 3 short bindings, got %d", len(short))
	}
	if short[0].Help().Key != "c" || short[0].Help().Desc != "Snapshot" {
		t.Errorf("first short binding: %+v", short[0].Help())
	}

	full := km.FullHelp()
	if len(full) != 2 {
		t.Fatalf("expected single-key and leader columns, got %d", len(full))
	}
	if full[1][0].Help().Key != "SPC c" {
		t.Errorf("leader column should be prefixed, got %q", full[1][0].Help().Key)
	}
}

func TestRenderKeybindHelp(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("SPC s", tea.Quit, "Sleep")
	h := NewKeyHandler(reg)
	h.Handle(keyMsg(" "), StateRoot)

	out := RenderKeybindHelp(h, StateRoot)
	if !strings.Contains(out, "Sleep") || !strings.Contains(out, "SPC") {
		t.Errorf("expected SPC hint bar with Sleep, got %q", out)
	}
	if RenderKeybindHelp(nil, StateRoot) != "" {
		t.Error("nil handler should render nothing")
	}
}

// keyMsg creates a tea.KeyMsg for testing. Bubble Tea uses KeyType and Runes.
// KeySpace.String() returns " ", KeyEsc returns "esc", etc.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "space", " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}
