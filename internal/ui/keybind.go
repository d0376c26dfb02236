package ui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeybindRegistry maps key sequences to commands.
// Key sequences use spacemacs-style notation: "SPC" for space, "SPC c" for SPC then c.
// Single keys: "tab", "esc", "ctrl+c", "?".
type KeybindRegistry struct {
	bindings     map[string]tea.Cmd
	descriptions map[string]string
	stateFilter  map[string][]StackState // nil/empty = applies in every state
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{
		bindings:     make(map[string]tea.Cmd),
		descriptions: make(map[string]string),
		stateFilter:  make(map[string][]StackState),
	}
}

// Bind registers a key sequence to a command.
// Overwrites any existing binding for the sequence.
func (r *KeybindRegistry) Bind(seq string, cmd tea.Cmd) {
	r.BindWithDesc(seq, cmd, "")
}

// BindWithDesc registers a key sequence with a description for the help view.
func (r *KeybindRegistry) BindWithDesc(seq string, cmd tea.Cmd, desc string) {
	r.BindForStates(seq, cmd, desc, nil)
}

// BindForStates registers a key sequence that only fires while the stack is
// in one of states. Empty states means every state.
func (r *KeybindRegistry) BindForStates(seq string, cmd tea.Cmd, desc string, states []StackState) {
	n := normalizeSeq(seq)
	r.bindings[n] = cmd
	if desc != "" {
		r.descriptions[n] = desc
	}
	if len(states) > 0 {
		r.stateFilter[n] = states
	} else {
		delete(r.stateFilter, n)
	}
}

// Lookup returns the command for a key sequence, or nil if not bound.
func (r *KeybindRegistry) Lookup(seq string) tea.Cmd {
	return r.bindings[normalizeSeq(seq)]
}

// LookupIn is Lookup restricted to bindings that apply in state.
func (r *KeybindRegistry) LookupIn(seq string, state StackState) tea.Cmd {
	n := normalizeSeq(seq)
	if !r.appliesTo(n, state) {
		return nil
	}
	return r.bindings[n]
}

// HasPrefix returns true if any binding starts with seq and a space (i.e. more keys follow).
func (r *KeybindRegistry) HasPrefix(seq string) bool {
	prefix := normalizeSeq(seq) + " "
	for k := range r.bindings {
		if strings.HasPrefix(k, prefix) {
			return true
		}
	}
	return false
}

// Hints returns single-key bindings with descriptions, filtered by state.
func (r *KeybindRegistry) Hints(state StackState) map[string]string {
	out := make(map[string]string)
	for seq, cmd := range r.bindings {
		if cmd == nil || strings.HasPrefix(seq, "SPC ") || !r.appliesTo(seq, state) {
			continue
		}
		out[seq] = r.describe(seq)
	}
	return out
}

// LeaderHints returns hints for SPC-prefixed bindings, filtered by state.
// When currentSeq is empty, returns first-level hints (e.g. "c", "s", "q").
// Keys that open a deeper level are shown as "key…".
func (r *KeybindRegistry) LeaderHints(currentSeq string, state StackState) map[string]string {
	out := make(map[string]string)
	prefix := "SPC "
	if currentSeq != "" {
		prefix = normalizeSeq(currentSeq) + " "
	}
	for seq, cmd := range r.bindings {
		if cmd == nil || !strings.HasPrefix(seq, prefix) || !r.appliesTo(seq, state) {
			continue
		}
		rest := strings.TrimPrefix(seq, prefix)
		k := rest
		if parts := strings.Fields(rest); len(parts) > 0 {
			k = parts[0]
		}
		if k != rest {
			out[k] = k + "…"
			continue
		}
		out[k] = r.describe(seq)
	}
	return out
}

func (r *KeybindRegistry) describe(seq string) string {
	if d, ok := r.descriptions[seq]; ok && d != "" {
		return d
	}
	return seq
}

func (r *KeybindRegistry) appliesTo(seq string, state StackState) bool {
	states, ok := r.stateFilter[seq]
	if !ok || len(states) == 0 {
		return true
	}
	for _, s := range states {
		if s == state {
			return true
		}
	}
	return false
}

// normalizeSeq converts tea key strings to our canonical format.
// "space" -> "SPC", "ctrl+c" -> "ctrl+c", "j" -> "j".
func normalizeSeq(seq string) string {
	parts := strings.Fields(seq)
	if len(parts) == 0 && seq == " " {
		return "SPC"
	}
	for i, p := range parts {
		if p == "space" {
			parts[i] = "SPC"
		}
	}
	return strings.Join(parts, " ")
}

// KeyHandler manages leader key state and dispatches to the registry.
type KeyHandler struct {
	Registry      *KeybindRegistry
	LeaderKey     string   // " " (tea.KeyMsg.String() format)
	LeaderSeq     string   // "SPC" (our format)
	LeaderWaiting bool     // true when waiting for key after leader
	Buffer        []string // accumulated sequence in leader mode
}

// NewKeyHandler creates a handler with SPC as leader.
// Bubble Tea reports space as " " (KeySpace), not "space".
func NewKeyHandler(reg *KeybindRegistry) *KeyHandler {
	return &KeyHandler{
		Registry:  reg,
		LeaderKey: " ",
		LeaderSeq: "SPC",
	}
}

// Handle processes a KeyMsg in the given stack state. Returns (consumed, cmd).
// If consumed is true the key belongs to the keybind system and must not
// reach views.
func (h *KeyHandler) Handle(msg tea.KeyMsg, state StackState) (consumed bool, cmd tea.Cmd) {
	s := msg.String()

	// Esc cancels leader mode; otherwise it is an ordinary key.
	if s == "esc" && h.LeaderWaiting {
		h.Reset()
		return true, nil
	}

	if s == h.LeaderKey && !h.LeaderWaiting {
		h.LeaderWaiting = true
		h.Buffer = []string{h.LeaderSeq}
		return true, nil
	}

	if h.LeaderWaiting {
		h.Buffer = append(h.Buffer, keyToSeqPart(s))
		seq := strings.Join(h.Buffer, " ")

		if c := h.Registry.LookupIn(seq, state); c != nil {
			h.Reset()
			return true, c
		}
		// No exact match; stay in leader mode if a longer binding exists
		if h.Registry.HasPrefix(seq) {
			return true, nil
		}
		h.Reset()
		return true, nil
	}

	if c := h.Registry.LookupIn(keyToSeqPart(s), state); c != nil {
		return true, c
	}
	return false, nil
}

// Reset leaves leader mode.
func (h *KeyHandler) Reset() {
	h.LeaderWaiting = false
	h.Buffer = nil
}

// CurrentSeq returns the buffered leader sequence, e.g. "SPC".
func (h *KeyHandler) CurrentSeq() string {
	return strings.Join(h.Buffer, " ")
}

// keyToSeqPart converts a tea key string to our sequence part.
func keyToSeqPart(s string) string {
	if s == " " || s == "space" {
		return "SPC"
	}
	return s
}

// KeyMap implements help.KeyMap over a registry for a given stack state.
type KeyMap struct {
	registry   *KeybindRegistry
	keyHandler *KeyHandler
	state      StackState
}

// NewKeyMap creates a KeyMap for the given registry, handler, and state.
func NewKeyMap(registry *KeybindRegistry, keyHandler *KeyHandler, state StackState) help.KeyMap {
	return &KeyMap{
		registry:   registry,
		keyHandler: keyHandler,
		state:      state,
	}
}

// ShortHelp returns the leader hints for the current sequence.
func (km *KeyMap) ShortHelp() []key.Binding {
	if km.registry == nil {
		return nil
	}
	currentSeq := ""
	if km.keyHandler != nil {
		currentSeq = km.keyHandler.CurrentSeq()
	}
	bindings := hintBindings(km.registry.LeaderHints(currentSeq, km.state), "")
	if len(bindings) == 0 {
		return nil
	}
	return append(bindings, key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	))
}

// FullHelp returns single keys in one column and SPC sequences in another.
func (km *KeyMap) FullHelp() [][]key.Binding {
	if km.registry == nil {
		return nil
	}
	var cols [][]key.Binding
	if single := hintBindings(km.registry.Hints(km.state), ""); len(single) > 0 {
		cols = append(cols, single)
	}
	if leader := hintBindings(km.registry.LeaderHints("", km.state), "SPC "); len(leader) > 0 {
		cols = append(cols, leader)
	}
	return cols
}

// hintBindings converts hints to bindings sorted by key for stable display.
func hintBindings(hints map[string]string, prefix string) []key.Binding {
	keys := make([]string, 0, len(hints))
	for k := range hints {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	bindings := make([]key.Binding, 0, len(keys))
	for _, k := range keys {
		bindings = append(bindings, key.NewBinding(
			key.WithKeys(k),
			key.WithHelp(prefix+k, hints[k]),
		))
	}
	return bindings
}
