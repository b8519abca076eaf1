package main

import "time"

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Player struct {
	ID       string     `json:"id"`
	Type     PlayerType `json:"type"`
	X        float64    `json:"x"`
	Y        float64    `json:"y"`
	Radius   float64    `json:"radius"`
	Position *int       `json:"position,omitempty"` // O-line slot 0-4
}

func (p Player) Center() Point {
	return Point{X: p.X, Y: p.Y}
}

// At returns a copy of the player centred on pt.
func (p Player) At(pt Point) Player {
	p.X, p.Y = pt.X, pt.Y
	return p
}

type Route struct {
	ID     string   `json:"id"`
	Points []Point  `json:"points"`
	End    RouteEnd `json:"end,omitempty"`
}

type Action struct {
	ID        string
	Kind      ActionKind
	Payload   Payload
	Timestamp time.Time
	Metadata  Metadata
}

type Metadata struct {
	Position *Point
	Tool     Tool
	Group    string // shared by the actions of one O-line placement
}

// Payload is the kind-specific body of an Action. The set of
// implementations is closed.
type Payload interface {
	Kind() ActionKind
	payload()
}

type PlayerAddData struct {
	Player Player
}

type PlayerMoveData struct {
	Player Player
}

type PlayerDeleteData struct {
	Player Player
}

type RouteStartData struct {
	Point Point
}

type RouteUpdateData struct {
	Points []Point
}

type RouteEndData struct {
	Points []Point
	End    RouteEnd
}

type RouteDeleteData struct {
	Route Route
}

type ToolChangeData struct {
	Tool Tool
}

func (PlayerAddData) Kind() ActionKind    { return ActionPlayerAdd }
func (PlayerMoveData) Kind() ActionKind   { return ActionPlayerMove }
func (PlayerDeleteData) Kind() ActionKind { return ActionPlayerDelete }
func (RouteStartData) Kind() ActionKind   { return ActionRouteStart }
func (RouteUpdateData) Kind() ActionKind  { return ActionRouteUpdate }
func (RouteEndData) Kind() ActionKind     { return ActionRouteEnd }
func (RouteDeleteData) Kind() ActionKind  { return ActionRouteDelete }
func (ToolChangeData) Kind() ActionKind   { return ActionToolChange }

func (PlayerAddData) payload()    {}
func (PlayerMoveData) payload()   {}
func (PlayerDeleteData) payload() {}
func (RouteStartData) payload()   {}
func (RouteUpdateData) payload()  {}
func (RouteEndData) payload()     {}
func (RouteDeleteData) payload()  {}
func (ToolChangeData) payload()   {}

type Modifiers struct {
	Shift bool
	Alt   bool
	Ctrl  bool
	Meta  bool
}

// Command reports whether ctrl or meta (cmd) is held.
func (m Modifiers) Command() bool {
	return m.Ctrl || m.Meta
}

type PointerEvent struct {
	Point     Point
	Modifiers Modifiers
}

type KeyEvent struct {
	Key       string
	Modifiers Modifiers
}

// Guides are the alignment guides active during a drag.
type Guides struct {
	X    float64 // vertical guide at x
	Y    float64 // horizontal guide at y
	HasX bool
	HasY bool
}

// Entities is the flat extraction handed to persistence and export.
type Entities struct {
	Players []Player `json:"players"`
	Routes  []Route  `json:"routes"`
}

// copyPoints returns an independent copy so later buffer growth never
// aliases a recorded payload.
func copyPoints(points []Point) []Point {
	out := make([]Point, len(points))
	copy(out, points)
	return out
}

func intPtr(v int) *int {
	return &v
}
