package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlattenPoints(t *testing.T) {
	assert.Equal(t, []float64{100, 100, 200, 200}, FlattenPoints([]Point{{X: 100, Y: 100}, {X: 200, Y: 200}}))
	assert.Equal(t, []float64{}, FlattenPoints([]Point{}))
	assert.Equal(t, []float64{}, FlattenPoints(nil))
}

func TestClampToField(t *testing.T) {
	f := Field{Width: 100, Height: 50}
	tests := []struct {
		name string
		in   Point
		want Point
	}{
		{"inside", Point{10, 10}, Point{10, 10}},
		{"left and above", Point{-5, -1}, Point{0, 0}},
		{"right and below", Point{150, 70}, Point{100, 50}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClampToField(tt.in, f))
		})
	}
}

func TestIsValidPoint(t *testing.T) {
	f := Field{Width: 100, Height: 50}
	assert.True(t, IsValidPoint(Point{0, 0}, f))
	assert.True(t, IsValidPoint(Point{100, 50}, f))
	assert.False(t, IsValidPoint(Point{-0.1, 10}, f))
	assert.False(t, IsValidPoint(Point{10, 50.1}, f))
}

func TestCalculateRoutePoints(t *testing.T) {
	single := []Point{{1, 1}}
	assert.Equal(t, single, CalculateRoutePoints(single))
	route := []Point{{1, 1}, {2, 3}, {4, 4}}
	assert.Equal(t, route, CalculateRoutePoints(route))
}

func TestIsValidRoute(t *testing.T) {
	f := Field{Width: 100, Height: 100}
	assert.False(t, IsValidRoute(nil, f))
	assert.False(t, IsValidRoute([]Point{{1, 1}}, f))
	assert.True(t, IsValidRoute([]Point{{1, 1}, {50, 50}}, f))
	assert.False(t, IsValidRoute([]Point{{1, 1}, {150, 50}}, f))
}

func TestDistanceToSegment(t *testing.T) {
	a, b := Point{0, 0}, Point{10, 0}
	assert.InDelta(t, 5, DistanceToSegment(Point{5, 5}, a, b), 1e-9)
	assert.InDelta(t, 5, DistanceToSegment(Point{15, 0}, a, b), 1e-9, "beyond the end measures to the endpoint")
	assert.InDelta(t, 5, DistanceToSegment(Point{3, 4}, a, a), 1e-9, "degenerate segment")
}

func TestDistanceToPolyline(t *testing.T) {
	assert.True(t, math.IsInf(DistanceToPolyline(Point{}, nil), 1))
	assert.InDelta(t, 5, DistanceToPolyline(Point{3, 4}, []Point{{0, 0}}), 1e-9)
	line := []Point{{0, 0}, {10, 0}, {10, 10}}
	assert.InDelta(t, 2, DistanceToPolyline(Point{12, 5}, line), 1e-9)
}
