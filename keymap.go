package main

import "strings"

type Command int

const (
	CmdNone Command = iota
	CmdToggleGrid
	CmdToggleGuides
	CmdUndo
	CmdRedo
	CmdToolSelect
	CmdToolOffense
	CmdToolDefense
	CmdToolOLine
	CmdToolPath
	CmdToolRemove
)

// Shortcut binds a key plus an exact modifier set to a command. Ctrl and
// Meta are treated as the same "command" modifier.
type Shortcut struct {
	Key     string
	Ctrl    bool
	Shift   bool
	Alt     bool
	Command Command
}

type Keymap struct {
	shortcuts []Shortcut
}

func NewKeymap() *Keymap {
	return &Keymap{}
}

// DefaultKeymap returns the stock bindings.
func DefaultKeymap() *Keymap {
	k := NewKeymap()
	k.Register(Shortcut{Key: "g", Command: CmdToggleGrid})
	k.Register(Shortcut{Key: "a", Command: CmdToggleGuides})
	k.Register(Shortcut{Key: "z", Ctrl: true, Command: CmdUndo})
	k.Register(Shortcut{Key: "z", Ctrl: true, Shift: true, Command: CmdRedo})
	k.Register(Shortcut{Key: "v", Command: CmdToolSelect})
	k.Register(Shortcut{Key: "o", Command: CmdToolOffense})
	k.Register(Shortcut{Key: "d", Command: CmdToolDefense})
	k.Register(Shortcut{Key: "r", Command: CmdToolPath})
	k.Register(Shortcut{Key: "delete", Command: CmdToolRemove})
	k.Register(Shortcut{Key: "backspace", Command: CmdToolRemove})
	k.Register(Shortcut{Key: "l", Command: CmdToolOLine})
	k.Register(Shortcut{Key: "y", Ctrl: true, Command: CmdRedo})
	return k
}

func (k *Keymap) Register(s Shortcut) {
	s.Key = strings.ToLower(s.Key)
	k.shortcuts = append(k.shortcuts, s)
}

// Lookup returns the command bound to ev, matching modifiers exactly.
func (k *Keymap) Lookup(ev KeyEvent) Command {
	key := strings.ToLower(ev.Key)
	for _, s := range k.shortcuts {
		if s.Key == key &&
			s.Ctrl == ev.Modifiers.Command() &&
			s.Shift == ev.Modifiers.Shift &&
			s.Alt == ev.Modifiers.Alt {
			return s.Command
		}
	}
	return CmdNone
}
