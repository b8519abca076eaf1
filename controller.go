package main

import (
	"io"
	"log/slog"

	"github.com/google/uuid"
)

type dragState struct {
	player    Player
	start     Point
	lastValid Point
	offset    Point // player centre minus grab point
}

// Controller turns pointer and keyboard events into log entries. It runs on
// the goroutine that delivers events and holds no locks.
type Controller struct {
	log         *ActionLog
	projector   *Projector
	constraints *Constraints
	tools       *ToolSelector
	keymap      *Keymap
	logger      *slog.Logger

	state     EditingState
	route     []Point
	routeEnd  RouteEnd
	drag      *dragState
	guides    Guides
	textFocus bool

	newID func() string
}

func NewController(log *ActionLog, projector *Projector, constraints *Constraints, tools *ToolSelector, keymap *Keymap, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Controller{
		log:         log,
		projector:   projector,
		constraints: constraints,
		tools:       tools,
		keymap:      keymap,
		logger:      logger,
		newID:       uuid.NewString,
	}
}

func (c *Controller) State() EditingState {
	return c.state
}

// ActiveRoute is the route being drawn, nil when idle.
func (c *Controller) ActiveRoute() []Point {
	if c.state != StateDrawing {
		return nil
	}
	return copyPoints(c.route)
}

func (c *Controller) Guides() Guides {
	return c.guides
}

// Dragged returns the player being dragged at its displayed position.
func (c *Controller) Dragged() (Player, bool) {
	if c.drag == nil {
		return Player{}, false
	}
	return c.drag.player.At(c.drag.lastValid), true
}

// SetTextInputFocus suppresses keyboard shortcuts while a text field owns
// the keyboard.
func (c *Controller) SetTextInputFocus(focused bool) {
	c.textFocus = focused
}

func (c *Controller) projection() *Projection {
	return c.projector.Project(c.log)
}

// PointerDown starts whatever gesture the active tool implies.
func (c *Controller) PointerDown(ev PointerEvent) {
	if c.state != StateIdle {
		return
	}
	tool := c.tools.Tool()
	switch {
	case tool.drawsRoutes():
		c.startRoute(ev)
	case tool.placesPlayers():
		c.place(ev)
	case tool == ToolRemove:
		c.remove(ev)
	case tool == ToolSelect:
		c.DragStart(ev)
	}
}

func (c *Controller) PointerMove(ev PointerEvent) {
	switch c.state {
	case StateDrawing:
		c.route = append(c.route, ev.Point)
		c.commit(updateRouteIntent{points: c.route}, ev.Point)
	case StateDragging:
		c.DragMove(ev)
	}
}

func (c *Controller) PointerUp(ev PointerEvent) {
	switch c.state {
	case StateDrawing:
		c.endRoute()
	case StateDragging:
		c.DragEnd(ev)
	}
}

// PointerLeave finishes a route in progress; drags survive leaving the
// surface.
func (c *Controller) PointerLeave(ev PointerEvent) {
	if c.state == StateDrawing {
		c.endRoute()
	}
}

func (c *Controller) startRoute(ev PointerEvent) {
	c.route = []Point{ev.Point}
	c.routeEnd = c.tools.Tool().routeEnd()
	c.state = StateDrawing
	c.commit(startRouteIntent{point: ev.Point}, ev.Point)
}

func (c *Controller) endRoute() {
	last := c.route[len(c.route)-1]
	c.commit(endRouteIntent{points: c.route, end: c.routeEnd}, last)
	c.route = nil
	c.routeEnd = RouteEndNone
	c.state = StateIdle
}

func (c *Controller) place(ev PointerEvent) {
	at := ev.Point
	if c.tools.GridEnabled() {
		at = c.constraints.SnapToGrid(at)
	}
	radius := c.constraints.PlayerRadius()

	switch tool := c.tools.Tool(); tool {
	case ToolOLine:
		group := c.newID()
		players := make([]Player, 0, offensiveLineSize)
		for _, slot := range c.constraints.OffensiveLine(at, radius) {
			players = append(players, Player{
				ID:       c.newID(),
				Type:     PlayerOLine,
				X:        slot.Center.X,
				Y:        slot.Center.Y,
				Radius:   radius,
				Position: intPtr(slot.Slot),
			})
		}
		c.commit(addPlayersIntent{players: players, group: group}, at)
	default:
		player := Player{
			ID:     c.newID(),
			Type:   PlayerType(tool),
			X:      at.X,
			Y:      at.Y,
			Radius: radius,
		}
		c.commit(addPlayersIntent{players: []Player{player}}, at)
	}
}

func (c *Controller) remove(ev PointerEvent) {
	proj := c.projection()
	if player, ok := hitPlayer(proj.Players(), ev.Point); ok {
		c.commit(deletePlayerIntent{player: player}, ev.Point)
		return
	}
	if route, ok := hitRoute(proj.Routes(), ev.Point, c.constraints.PlayerRadius()); ok {
		c.commit(deleteRouteIntent{route: route}, ev.Point)
	}
}

// hitPlayer returns the topmost player under p; later players draw on top.
func hitPlayer(players []Player, p Point) (Player, bool) {
	for i := len(players) - 1; i >= 0; i-- {
		if Distance(players[i].Center(), p) <= players[i].Radius {
			return players[i], true
		}
	}
	return Player{}, false
}

func hitRoute(routes []Route, p Point, tolerance float64) (Route, bool) {
	for i := len(routes) - 1; i >= 0; i-- {
		if DistanceToPolyline(p, routes[i].Points) <= tolerance {
			return routes[i], true
		}
	}
	return Route{}, false
}

// DragStart picks up the player under the pointer. It reports whether a
// drag began.
func (c *Controller) DragStart(ev PointerEvent) bool {
	if c.state != StateIdle || c.tools.Tool() != ToolSelect {
		return false
	}
	player, ok := hitPlayer(c.projection().Players(), ev.Point)
	if !ok {
		return false
	}
	center := player.Center()
	c.drag = &dragState{
		player:    player,
		start:     center,
		lastValid: center,
		offset:    Point{X: center.X - ev.Point.X, Y: center.Y - ev.Point.Y},
	}
	c.state = StateDragging
	return true
}

// DragMove proposes a new position for the dragged player and returns the
// position it is displayed at. A position that breaks the line of
// scrimmage rule is ignored and the player stays at its last valid spot.
func (c *Controller) DragMove(ev PointerEvent) Point {
	if c.drag == nil {
		return ev.Point
	}
	candidate := Point{X: ev.Point.X + c.drag.offset.X, Y: ev.Point.Y + c.drag.offset.Y}

	if c.tools.GridEnabled() && !ev.Modifiers.Alt {
		candidate = c.constraints.SnapToGrid(candidate)
	}

	c.guides = Guides{}
	if c.tools.GuidesEnabled() && !ev.Modifiers.Command() {
		aligned := c.constraints.Align(c.drag.player.ID, candidate, c.projection().Players())
		candidate = aligned.Point
		c.guides = aligned.Guides
	}

	if !c.constraints.ValidPlacement(c.drag.player.Type, candidate, c.drag.player.Radius) {
		c.guides = Guides{}
		return c.drag.lastValid
	}
	c.drag.lastValid = candidate
	return candidate
}

// DragEnd applies the final pointer position and records a single move if
// the player ended up somewhere new.
func (c *Controller) DragEnd(ev PointerEvent) {
	if c.drag == nil {
		return
	}
	final := c.DragMove(ev)
	drag := c.drag
	c.drag = nil
	c.guides = Guides{}
	c.state = StateIdle

	if final == drag.start {
		return
	}
	c.commit(movePlayerIntent{player: drag.player.At(final)}, final)
}

// KeyDown dispatches a shortcut. It reports whether the key was bound.
func (c *Controller) KeyDown(ev KeyEvent) bool {
	if c.textFocus {
		return false
	}
	cmd := c.keymap.Lookup(ev)
	switch cmd {
	case CmdNone:
		return false
	case CmdToggleGrid:
		c.tools.ToggleGrid()
	case CmdToggleGuides:
		c.tools.ToggleGuides()
	case CmdUndo:
		c.Undo()
	case CmdRedo:
		c.Redo()
	case CmdToolSelect:
		c.tools.SetTool(ToolSelect)
	case CmdToolOffense:
		c.tools.SetTool(ToolOffense)
	case CmdToolDefense:
		c.tools.SetTool(ToolDefense)
	case CmdToolOLine:
		c.tools.SetTool(ToolOLine)
	case CmdToolPath:
		c.tools.SetTool(ToolPath)
	case CmdToolRemove:
		c.tools.SetTool(ToolRemove)
	}
	return true
}

// Undo steps the cursor back. Ignored mid-gesture.
func (c *Controller) Undo() {
	if c.state != StateIdle {
		return
	}
	c.log.Undo()
}

// Redo steps the cursor forward. Ignored mid-gesture.
func (c *Controller) Redo() {
	if c.state != StateIdle {
		return
	}
	c.log.Redo()
}
