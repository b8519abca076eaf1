package main

import "math"

// Rules are the tunable constants of the constraint engine. Fractions are
// relative to the field; sizes and thresholds are in surface units.
type Rules struct {
	LOSFraction      float64
	BufferFraction   float64
	RadiusFraction   float64
	OLineGapFraction float64
	GridSize         float64
	SnapThreshold    float64
}

func DefaultRules() Rules {
	return Rules{
		LOSFraction:      defaultLOSFraction,
		BufferFraction:   defaultBufferFraction,
		RadiusFraction:   defaultRadiusFraction,
		OLineGapFraction: defaultOLineGapFraction,
		GridSize:         defaultGridSize,
		SnapThreshold:    defaultSnapThreshold,
	}
}

type Constraints struct {
	field Field
	rules Rules
}

func NewConstraints(field Field, rules Rules) *Constraints {
	return &Constraints{field: field, rules: rules}
}

func (c *Constraints) Field() Field {
	return c.field
}

func (c *Constraints) Rules() Rules {
	return c.rules
}

// LineOfScrimmage is the y of the reference line.
func (c *Constraints) LineOfScrimmage() float64 {
	return c.field.Height * c.rules.LOSFraction
}

func (c *Constraints) Buffer() float64 {
	return c.field.Height * c.rules.BufferFraction
}

func (c *Constraints) PlayerRadius() float64 {
	return c.field.Width * c.rules.RadiusFraction
}

// ValidPlacement applies the line of scrimmage rule. Offense and line
// players keep their near edge (y - r) at or beyond los + buffer; defense
// keeps its near edge (y + r) at or before los - buffer. The centre must
// also be on the field.
func (c *Constraints) ValidPlacement(kind PlayerType, center Point, radius float64) bool {
	if !IsValidPoint(center, c.field) {
		return false
	}
	los := c.LineOfScrimmage()
	buffer := c.Buffer()
	switch kind {
	case PlayerOffense, PlayerOLine:
		return center.Y-radius >= los+buffer
	case PlayerDefense:
		return center.Y+radius <= los-buffer
	default:
		return false
	}
}

// SnapToGrid moves each axis to the nearest grid line when that line is
// within the snap threshold, leaving the axis raw otherwise.
func (c *Constraints) SnapToGrid(p Point) Point {
	size := c.rules.GridSize
	if size <= 0 {
		return p
	}
	return Point{
		X: snapAxis(p.X, size, c.rules.SnapThreshold),
		Y: snapAxis(p.Y, size, c.rules.SnapThreshold),
	}
}

func snapAxis(v, size, threshold float64) float64 {
	snapped := math.Round(v/size) * size
	if math.Abs(snapped-v) <= threshold {
		return snapped
	}
	return v
}

// Alignment is the outcome of an alignment-guide search.
type Alignment struct {
	Point  Point
	Guides Guides
}

// Align snaps p to the first other player, in enumeration order, whose y is
// within the snap threshold, and independently to the first whose x is.
// The first match wins even when a later one is closer.
func (c *Constraints) Align(moverID string, p Point, others []Player) Alignment {
	out := Alignment{Point: p}
	threshold := c.rules.SnapThreshold

	for _, other := range others {
		if other.ID == moverID {
			continue
		}
		if math.Abs(other.Y-p.Y) <= threshold {
			out.Point.Y = other.Y
			out.Guides.Y = other.Y
			out.Guides.HasY = true
			break
		}
	}

	for _, other := range others {
		if other.ID == moverID {
			continue
		}
		if math.Abs(other.X-p.X) <= threshold {
			out.Point.X = other.X
			out.Guides.X = other.X
			out.Guides.HasX = true
			break
		}
	}

	return out
}

// Placement is one slot of a grouped placement.
type Placement struct {
	Slot   int
	Center Point
}

// OLineSpacing is the centre-to-centre distance between linemen.
func (c *Constraints) OLineSpacing(radius float64) float64 {
	return 2*radius + c.field.Width*c.rules.OLineGapFraction
}

// OffensiveLine spreads the five line slots symmetrically around center.
func (c *Constraints) OffensiveLine(center Point, radius float64) []Placement {
	spacing := c.OLineSpacing(radius)
	mid := offensiveLineSize / 2
	out := make([]Placement, 0, offensiveLineSize)
	for i := 0; i < offensiveLineSize; i++ {
		out = append(out, Placement{
			Slot:   i,
			Center: Point{X: center.X + float64(i-mid)*spacing, Y: center.Y},
		})
	}
	return out
}
