package main

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T) model {
	t.Helper()
	s := newTestSession(false, false)
	m := initialModel(s, defaultConfig(), nil, s.Controller.logger)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 32})
	return next.(model)
}

func press(t *testing.T, m model, msg tea.Msg) model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(model)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModelNumberKeysPickTools(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, runes("2"))
	assert.Equal(t, ToolOffense, m.session.Tools.Tool())
	m = press(t, m, runes("0"))
	assert.Equal(t, ToolRemove, m.session.Tools.Tool())
}

func TestModelForwardsShortcutsToController(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, runes("g"))
	assert.True(t, m.session.Tools.GridEnabled())
	m = press(t, m, runes("d"))
	assert.Equal(t, ToolDefense, m.session.Tools.Tool())
}

func TestModelNamePromptOwnsKeyboard(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, runes("F"))
	require.Equal(t, ModeNameInput, m.mode)

	m = press(t, m, runes("g"))
	assert.Equal(t, "g", m.input)
	assert.False(t, m.session.Tools.GridEnabled())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, ModeNormal, m.mode)
	m = press(t, m, runes("g"))
	assert.True(t, m.session.Tools.GridEnabled())
}

func TestModelMousePlacesPlayer(t *testing.T) {
	m := newTestModel(t)
	m.session.Tools.SetTool(ToolOffense)

	// Field row 22 of 30 on a 600 tall field is y=450.
	m = press(t, m, tea.MouseMsg{X: 50, Y: 22 + toolbarRows, Type: tea.MouseLeft})
	m = press(t, m, tea.MouseMsg{X: 50, Y: 22 + toolbarRows, Type: tea.MouseRelease})

	players := m.session.View().Players
	require.Len(t, players, 1)
	assert.Equal(t, 505.0, players[0].X)
	assert.Equal(t, 450.0, players[0].Y)
}

func TestModelKeyboardPointerDrawsRoute(t *testing.T) {
	m := newTestModel(t)
	m.session.Tools.SetTool(ToolPath)

	m = press(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")})
	require.True(t, m.keyboardPressed)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, m.keyboardPressed)
	routes := m.session.View().Routes
	require.Len(t, routes, 1)
	assert.Len(t, routes[0].Points, 3)
}

func TestToolAtMatchesToolbar(t *testing.T) {
	tool, ok := toolAt(0)
	require.True(t, ok)
	assert.Equal(t, ToolSelect, tool)
	_, ok = toolAt(10000)
	assert.False(t, ok)
}
