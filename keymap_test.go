package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeymapLookup(t *testing.T) {
	k := DefaultKeymap()
	tests := []struct {
		name string
		ev   KeyEvent
		want Command
	}{
		{"grid", KeyEvent{Key: "g"}, CmdToggleGrid},
		{"grid uppercase key", KeyEvent{Key: "G"}, CmdToggleGrid},
		{"guides", KeyEvent{Key: "a"}, CmdToggleGuides},
		{"undo ctrl", KeyEvent{Key: "z", Modifiers: Modifiers{Ctrl: true}}, CmdUndo},
		{"undo meta", KeyEvent{Key: "z", Modifiers: Modifiers{Meta: true}}, CmdUndo},
		{"redo", KeyEvent{Key: "z", Modifiers: Modifiers{Ctrl: true, Shift: true}}, CmdRedo},
		{"redo ctrl y", KeyEvent{Key: "y", Modifiers: Modifiers{Ctrl: true}}, CmdRedo},
		{"plain z unbound", KeyEvent{Key: "z"}, CmdNone},
		{"shift g unbound", KeyEvent{Key: "g", Modifiers: Modifiers{Shift: true}}, CmdNone},
		{"alt o unbound", KeyEvent{Key: "o", Modifiers: Modifiers{Alt: true}}, CmdNone},
		{"remove", KeyEvent{Key: "backspace"}, CmdToolRemove},
		{"unknown", KeyEvent{Key: "q"}, CmdNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, k.Lookup(tt.ev))
		})
	}
}

func TestKeymapRegisterCustom(t *testing.T) {
	k := NewKeymap()
	k.Register(Shortcut{Key: "P", Alt: true, Command: CmdToolPath})
	assert.Equal(t, CmdToolPath, k.Lookup(KeyEvent{Key: "p", Modifiers: Modifiers{Alt: true}}))
	assert.Equal(t, CmdNone, k.Lookup(KeyEvent{Key: "p"}))
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		in   string
		want KeyEvent
	}{
		{"g", KeyEvent{Key: "g"}},
		{"ctrl+z", KeyEvent{Key: "z", Modifiers: Modifiers{Ctrl: true}}},
		{"ctrl+shift+z", KeyEvent{Key: "z", Modifiers: Modifiers{Ctrl: true, Shift: true}}},
		{"Z", KeyEvent{Key: "z", Modifiers: Modifiers{Shift: true}}},
		{"alt+o", KeyEvent{Key: "o", Modifiers: Modifiers{Alt: true}}},
		{"cmd+z", KeyEvent{Key: "z", Modifiers: Modifiers{Meta: true}}},
		{"delete", KeyEvent{Key: "delete"}},
		{"+", KeyEvent{Key: "+"}},
		{"ctrl++", KeyEvent{Key: "+", Modifiers: Modifiers{Ctrl: true}}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseKey(tt.in))
		})
	}
}

func TestParsedKeysDriveKeymap(t *testing.T) {
	k := DefaultKeymap()
	assert.Equal(t, CmdUndo, k.Lookup(parseKey("ctrl+z")))
	assert.Equal(t, CmdRedo, k.Lookup(parseKey("ctrl+Z")))
}
