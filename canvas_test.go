package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSurfaceMapping(t *testing.T) {
	s := newSurface(Field{Width: 1000, Height: 600}, 100, 30)

	assert.Equal(t, Point{X: 5, Y: 10}, s.PointAt(0, 0))
	col, row := s.CellAt(Point{X: 505, Y: 450})
	assert.Equal(t, 50, col)
	assert.Equal(t, 22, row)

	col, row = s.CellAt(Point{X: -50, Y: 5000})
	assert.Equal(t, 0, col)
	assert.Equal(t, 29, row)

	// A cell centre maps back to the same cell.
	col, row = s.CellAt(s.PointAt(17, 9))
	assert.Equal(t, 17, col)
	assert.Equal(t, 9, row)
}

func TestNewSurfaceHasAtLeastOneCell(t *testing.T) {
	s := newSurface(Field{Width: 1000, Height: 600}, 0, -3)
	col, row := s.CellAt(Point{X: 999, Y: 599})
	assert.Equal(t, 0, col)
	assert.Equal(t, 0, row)
}

func TestRenderFieldDrawsLineOfScrimmageAndPlayers(t *testing.T) {
	view := View{
		LOS: 394.8,
		Players: []Player{
			{ID: "o", Type: PlayerOffense, X: 505, Y: 450},
			{ID: "d", Type: PlayerDefense, X: 305, Y: 300},
			{ID: "c", Type: PlayerOLine, X: 705, Y: 450, Position: intPtr(2)},
		},
	}
	lines := renderField(view, Field{Width: 1000, Height: 600}, 100, 30, -1, -1)
	require.Len(t, lines, 30)

	// 394.8 of 600 lands in row 19.
	assert.Equal(t, strings.Repeat("━", 100), lines[19])
	assert.Equal(t, 'O', []rune(lines[22])[50])
	assert.Equal(t, '3', []rune(lines[22])[70])
	assert.Equal(t, 'X', []rune(lines[15])[30])
}

func TestRenderFieldRoutesAndCursor(t *testing.T) {
	view := View{
		LOS: 590,
		Routes: []Route{{
			Points: []Point{{X: 5, Y: 10}, {X: 95, Y: 10}},
			End:    RouteEndArrow,
		}},
	}
	lines := renderField(view, Field{Width: 100, Height: 60}, 10, 6, 5, 4)

	assert.Equal(t, strings.Repeat("•", 9)+">", lines[1])
	assert.Equal(t, '+', []rune(lines[4])[5])
}

func TestRenderFieldGuides(t *testing.T) {
	view := View{LOS: 590, Guides: Guides{X: 55, HasX: true}}
	lines := renderField(view, Field{Width: 100, Height: 60}, 10, 6, -1, -1)
	for _, line := range lines[:5] {
		assert.Equal(t, '│', []rune(line)[5])
	}
}
