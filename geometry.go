package main

import "math"

// Field is the playing surface in surface units, origin top-left.
type Field struct {
	Width  float64
	Height float64
}

// ClampToField pulls a point onto the surface.
func ClampToField(p Point, f Field) Point {
	return Point{
		X: math.Max(0, math.Min(p.X, f.Width)),
		Y: math.Max(0, math.Min(p.Y, f.Height)),
	}
}

// IsValidPoint reports whether p lies on the surface, edges included.
func IsValidPoint(p Point, f Field) bool {
	return p.X >= 0 && p.X <= f.Width && p.Y >= 0 && p.Y <= f.Height
}

// FlattenPoints turns [{x1,y1},{x2,y2}] into [x1,y1,x2,y2].
func FlattenPoints(points []Point) []float64 {
	out := make([]float64, 0, len(points)*2)
	for _, p := range points {
		out = append(out, p.X, p.Y)
	}
	return out
}

// CalculateRoutePoints returns the points to draw for a route. Routes are
// drawn as recorded; fewer than two points is passed through untouched.
func CalculateRoutePoints(points []Point) []Point {
	return points
}

// IsValidRoute reports whether a route has at least two points, all on the
// surface.
func IsValidRoute(points []Point, f Field) bool {
	if len(points) < 2 {
		return false
	}
	for _, p := range points {
		if !IsValidPoint(p, f) {
			return false
		}
	}
	return true
}

func Distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// DistanceToSegment is the distance from p to the closest point of ab.
func DistanceToSegment(p, a, b Point) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	lengthSq := dx*dx + dy*dy
	if lengthSq == 0 {
		return Distance(p, a)
	}
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / lengthSq
	t = math.Max(0, math.Min(1, t))
	return Distance(p, Point{X: a.X + t*dx, Y: a.Y + t*dy})
}

// DistanceToPolyline is the distance from p to the nearest segment of the
// polyline, or to its only point.
func DistanceToPolyline(p Point, points []Point) float64 {
	switch len(points) {
	case 0:
		return math.Inf(1)
	case 1:
		return Distance(p, points[0])
	}
	best := math.Inf(1)
	for i := 1; i < len(points); i++ {
		best = math.Min(best, DistanceToSegment(p, points[i-1], points[i]))
	}
	return best
}
