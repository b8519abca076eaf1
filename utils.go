package main

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
)

// copyPlayToClipboard puts the JSON form of the play on the clipboard.
func copyPlayToClipboard(entities Entities) error {
	data, err := ExportJSON(entities)
	if err != nil {
		return fmt.Errorf("encode play: %w", err)
	}
	return clipboard.WriteAll(string(data))
}

// parseKey turns a key string such as "ctrl+shift+z", "Z" or "delete"
// into a KeyEvent.
func parseKey(s string) KeyEvent {
	var ev KeyEvent
	parts := strings.Split(s, "+")
	// "+" itself, or "ctrl++", ends in an empty part.
	if len(parts) > 1 && parts[len(parts)-1] == "" {
		parts = append(parts[:len(parts)-2], "+")
	}
	for _, mod := range parts[:len(parts)-1] {
		switch mod {
		case "ctrl":
			ev.Modifiers.Ctrl = true
		case "alt":
			ev.Modifiers.Alt = true
		case "shift":
			ev.Modifiers.Shift = true
		case "cmd", "meta", "super":
			ev.Modifiers.Meta = true
		}
	}
	key := parts[len(parts)-1]
	if r := []rune(key); len(r) == 1 && r[0] >= 'A' && r[0] <= 'Z' {
		ev.Modifiers.Shift = true
		key = strings.ToLower(key)
	}
	ev.Key = key
	return ev
}
