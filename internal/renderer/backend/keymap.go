package backend

import (
	"fmt"
	"maps"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/saibendi/p4-editor/internal/engine"
)

// Actions that are handled by the terminal rather than the engine.
const (
	ActionQuit      = "quit"
	ActionBackspace = "backspace"
)

// DefaultBindings maps tcell key names to actions. An action is either one of
// the terminal actions above or an engine command line.
var DefaultBindings = map[string]string{
	"Left":       "backward",
	"Right":      "forward",
	"Up":         "up",
	"Down":       "down",
	"Home":       "row_start",
	"End":        "row_end",
	"Delete":     "remove",
	"Backspace":  ActionBackspace,
	"Backspace2": ActionBackspace,
	"Enter":      `insert \n`,
	"Tab":        `insert \t`,
	"Ctrl+Q":     ActionQuit,
	"Esc":        ActionQuit,
}

// Binding is a resolved key action. Action is set for terminal actions,
// otherwise Command holds the engine command.
type Binding struct {
	Action  string
	Command engine.Command
}

// Keymap resolves key names to actions.
type Keymap struct {
	bindings map[string]Binding
}

// NewKeymap builds a keymap from DefaultBindings with overrides applied on
// top. Every command is parsed up front so a bad binding fails at startup.
func NewKeymap(overrides map[string]string) (*Keymap, error) {
	all := maps.Clone(DefaultBindings)
	maps.Copy(all, overrides)

	km := &Keymap{bindings: make(map[string]Binding, len(all))}
	for key, action := range all {
		switch action {
		case ActionQuit, ActionBackspace:
			km.bindings[key] = Binding{Action: action}
			continue
		}
		cmd, err := engine.ParseCommand(action)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", key, err)
		}
		km.bindings[key] = Binding{Command: cmd}
	}
	return km, nil
}

// Lookup returns the binding for a key name.
func (km *Keymap) Lookup(name string) (Binding, bool) {
	b, ok := km.bindings[name]
	return b, ok
}

// KeyName returns the binding name of a key event. Control keys are always
// reported as "Ctrl+X" whether or not the terminal set the modifier.
func KeyName(ev *tcell.EventKey) string {
	name := ev.Name()
	name = strings.Replace(name, "Ctrl-", "Ctrl+", 1)
	return strings.Replace(name, "Ctrl+Ctrl+", "Ctrl+", 1)
}
