package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	toolStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("238")).Padding(0, 1)
	activeToolStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("33")).Padding(0, 1).Bold(true)
	statusStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	successStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	helpStyle       = lipgloss.NewStyle().Padding(1, 2)

	cellStyles = map[cellKind]lipgloss.Style{
		cellEmpty:       lipgloss.NewStyle().Background(lipgloss.Color("22")),
		cellYard:        lipgloss.NewStyle().Background(lipgloss.Color("22")).Foreground(lipgloss.Color("65")),
		cellLOS:         lipgloss.NewStyle().Background(lipgloss.Color("22")).Foreground(lipgloss.Color("196")),
		cellGuide:       lipgloss.NewStyle().Background(lipgloss.Color("22")).Foreground(lipgloss.Color("45")),
		cellRoute:       lipgloss.NewStyle().Background(lipgloss.Color("22")).Foreground(lipgloss.Color("231")),
		cellActiveRoute: lipgloss.NewStyle().Background(lipgloss.Color("22")).Foreground(lipgloss.Color("229")),
		cellOffense:     lipgloss.NewStyle().Background(lipgloss.Color("22")).Foreground(lipgloss.Color("231")).Bold(true),
		cellDefense:     lipgloss.NewStyle().Background(lipgloss.Color("22")).Foreground(lipgloss.Color("220")).Bold(true),
		cellOLine:       lipgloss.NewStyle().Background(lipgloss.Color("22")).Foreground(lipgloss.Color("231")).Bold(true),
		cellCursor:      lipgloss.NewStyle().Background(lipgloss.Color("238")).Foreground(lipgloss.Color("231")),
	}
)

// styledField renders the grid, styling runs of equal cell kinds together.
func styledField(grid [][]cell) string {
	lines := make([]string, len(grid))
	for y, row := range grid {
		var line strings.Builder
		var run strings.Builder
		kind := cellEmpty
		flush := func() {
			if run.Len() > 0 {
				line.WriteString(cellStyles[kind].Render(run.String()))
				run.Reset()
			}
		}
		for _, c := range row {
			if c.kind != kind {
				flush()
				kind = c.kind
			}
			run.WriteRune(c.r)
		}
		flush()
		lines[y] = line.String()
	}
	return strings.Join(lines, "\n")
}

func renderToolbar(active Tool) string {
	parts := make([]string, 0, len(Tools))
	for i, tool := range Tools {
		label := toolHotkey(i) + " " + tool.Label()
		if tool == active {
			parts = append(parts, activeToolStyle.Render(label))
		} else {
			parts = append(parts, toolStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// toolHotkey is the number key that selects the i-th toolbar tool.
func toolHotkey(i int) string {
	return string(rune('0' + (i+1)%10))
}
