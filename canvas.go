package main

import (
	"math"
	"strings"
)

type cellKind int

const (
	cellEmpty cellKind = iota
	cellYard
	cellLOS
	cellGuide
	cellRoute
	cellActiveRoute
	cellOffense
	cellDefense
	cellOLine
	cellCursor
)

type cell struct {
	r    rune
	kind cellKind
}

// Surface maps between terminal cells and field units.
type Surface struct {
	field Field
	cols  int
	rows  int
}

func newSurface(field Field, cols, rows int) Surface {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return Surface{field: field, cols: cols, rows: rows}
}

// PointAt is the field point at the centre of a cell.
func (s Surface) PointAt(col, row int) Point {
	return Point{
		X: (float64(col) + 0.5) * s.field.Width / float64(s.cols),
		Y: (float64(row) + 0.5) * s.field.Height / float64(s.rows),
	}
}

// CellAt is the cell containing p, clamped to the grid.
func (s Surface) CellAt(p Point) (int, int) {
	col := int(math.Floor(p.X * float64(s.cols) / s.field.Width))
	row := int(math.Floor(p.Y * float64(s.rows) / s.field.Height))
	return clampInt(col, 0, s.cols-1), clampInt(row, 0, s.rows-1)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// fieldGrid rasterises a view. Later layers overwrite earlier ones:
// yard lines, line of scrimmage, guides, routes, players, cursor.
func fieldGrid(view View, s Surface, cursorX, cursorY int) [][]cell {
	grid := make([][]cell, s.rows)
	for y := range grid {
		grid[y] = make([]cell, s.cols)
		for x := range grid[y] {
			grid[y][x] = cell{r: ' ', kind: cellEmpty}
		}
	}

	set := func(col, row int, r rune, kind cellKind) {
		if row >= 0 && row < s.rows && col >= 0 && col < s.cols {
			grid[row][col] = cell{r: r, kind: kind}
		}
	}

	for yard := 10; yard < 100; yard += 10 {
		col, _ := s.CellAt(Point{X: s.field.Width * float64(yard) / 100})
		for row := 0; row < s.rows; row++ {
			set(col, row, '┊', cellYard)
		}
	}

	_, losRow := s.CellAt(Point{Y: view.LOS})
	for col := 0; col < s.cols; col++ {
		set(col, losRow, '━', cellLOS)
	}

	if view.Guides.HasX {
		col, _ := s.CellAt(Point{X: view.Guides.X})
		for row := 0; row < s.rows; row++ {
			set(col, row, '│', cellGuide)
		}
	}
	if view.Guides.HasY {
		_, row := s.CellAt(Point{Y: view.Guides.Y})
		for col := 0; col < s.cols; col++ {
			set(col, row, '─', cellGuide)
		}
	}

	for _, route := range view.Routes {
		drawPolyline(s, route.Points, '•', cellRoute, set)
		drawRouteEnd(s, route.Points, route.End, set)
	}
	if len(view.ActiveRoute) > 0 {
		drawPolyline(s, view.ActiveRoute, '·', cellActiveRoute, set)
	}

	for _, player := range view.Players {
		col, row := s.CellAt(player.Center())
		switch player.Type {
		case PlayerDefense:
			set(col, row, 'X', cellDefense)
		case PlayerOLine:
			r := 'O'
			if player.Position != nil {
				r = rune('1' + *player.Position)
			}
			set(col, row, r, cellOLine)
		default:
			set(col, row, 'O', cellOffense)
		}
	}

	if cursorX >= 0 && cursorY >= 0 && cursorY < s.rows && cursorX < s.cols {
		if grid[cursorY][cursorX].kind == cellEmpty || grid[cursorY][cursorX].kind == cellYard {
			set(cursorX, cursorY, '+', cellCursor)
		} else {
			grid[cursorY][cursorX].kind = cellCursor
		}
	}
	return grid
}

// drawPolyline plots each segment with Bresenham's line algorithm.
func drawPolyline(s Surface, points []Point, r rune, kind cellKind, set func(int, int, rune, cellKind)) {
	if len(points) == 0 {
		return
	}
	x0, y0 := s.CellAt(points[0])
	set(x0, y0, r, kind)
	for _, p := range points[1:] {
		x1, y1 := s.CellAt(p)
		dx := absInt(x1 - x0)
		dy := -absInt(y1 - y0)
		sx, sy := 1, 1
		if x0 > x1 {
			sx = -1
		}
		if y0 > y1 {
			sy = -1
		}
		err := dx + dy
		x, y := x0, y0
		for {
			set(x, y, r, kind)
			if x == x1 && y == y1 {
				break
			}
			e2 := 2 * err
			if e2 >= dy {
				err += dy
				x += sx
			}
			if e2 <= dx {
				err += dx
				y += sy
			}
		}
		x0, y0 = x1, y1
	}
}

func drawRouteEnd(s Surface, points []Point, end RouteEnd, set func(int, int, rune, cellKind)) {
	if len(points) < 2 || end == RouteEndNone || end == "" {
		return
	}
	last := points[len(points)-1]
	prev := points[len(points)-2]
	col, row := s.CellAt(last)
	switch end {
	case RouteEndCircle:
		set(col, row, 'o', cellRoute)
	case RouteEndBlock:
		set(col, row, '┴', cellRoute)
	case RouteEndArrow:
		dx, dy := last.X-prev.X, last.Y-prev.Y
		var r rune
		switch {
		case math.Abs(dx) >= math.Abs(dy) && dx >= 0:
			r = '>'
		case math.Abs(dx) >= math.Abs(dy):
			r = '<'
		case dy >= 0:
			r = 'v'
		default:
			r = '^'
		}
		set(col, row, r, cellRoute)
	}
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// renderField returns the field as plain lines.
func renderField(view View, field Field, width, height, cursorX, cursorY int) []string {
	grid := fieldGrid(view, newSurface(field, width, height), cursorX, cursorY)
	lines := make([]string, len(grid))
	for y, row := range grid {
		var b strings.Builder
		for _, c := range row {
			b.WriteRune(c.r)
		}
		lines[y] = strings.TrimRight(b.String(), " ")
	}
	return lines
}
