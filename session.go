package main

import "log/slog"

// Session wires one editor: the log is the source of truth and everything
// else is derived from it or feeds it.
type Session struct {
	Log         *ActionLog
	Projector   *Projector
	Constraints *Constraints
	Tools       *ToolSelector
	Keymap      *Keymap
	Controller  *Controller
}

func NewSession(field Field, rules Rules, gridEnabled, guidesEnabled bool, logger *slog.Logger) *Session {
	s := &Session{
		Log:         NewActionLog(),
		Projector:   NewProjector(),
		Constraints: NewConstraints(field, rules),
		Tools:       NewToolSelector(gridEnabled, guidesEnabled),
		Keymap:      DefaultKeymap(),
	}
	s.Controller = NewController(s.Log, s.Projector, s.Constraints, s.Tools, s.Keymap, logger)
	return s
}

// View is everything the rendering surface reads after a mutation.
type View struct {
	Players       []Player
	Routes        []Route
	ActiveRoute   []Point
	ActiveEnd     RouteEnd
	Guides        Guides
	Tool          Tool
	State         EditingState
	GridEnabled   bool
	GuidesEnabled bool
	CanUndo       bool
	CanRedo       bool
	Cursor        int
	Total         int
	LOS           float64
}

func (s *Session) View() View {
	proj := s.Projector.Project(s.Log)
	players := proj.Players()
	if dragged, ok := s.Controller.Dragged(); ok {
		for i := range players {
			if players[i].ID == dragged.ID {
				players[i] = dragged
			}
		}
	}
	cursor, total := s.Log.Stats()
	return View{
		Players:       players,
		Routes:        proj.Routes(),
		ActiveRoute:   s.Controller.ActiveRoute(),
		ActiveEnd:     s.Controller.routeEnd,
		Guides:        s.Controller.Guides(),
		Tool:          s.Tools.Tool(),
		State:         s.Controller.State(),
		GridEnabled:   s.Tools.GridEnabled(),
		GuidesEnabled: s.Tools.GuidesEnabled(),
		CanUndo:       s.Log.CanUndo(),
		CanRedo:       s.Log.CanRedo(),
		Cursor:        cursor,
		Total:         total,
		LOS:           s.Constraints.LineOfScrimmage(),
	}
}

// Entities extracts the applied players and routes for saving.
func (s *Session) Entities() Entities {
	return ExtractEntities(s.Log.actions, s.Log.CurrentIndex())
}

// Load appends a stored play as fresh actions. Players that break the
// line of scrimmage rule on this field are skipped like any other rejected
// placement.
func (s *Session) Load(e Entities) {
	for _, player := range e.Players {
		if !s.Constraints.ValidPlacement(player.Type, player.Center(), player.Radius) {
			continue
		}
		at := player.Center()
		s.Log.Append(PlayerAddData{Player: player}, Metadata{Position: &at, Tool: ToolSelect})
	}
	for _, route := range e.Routes {
		if len(route.Points) == 0 {
			continue
		}
		at := route.Points[len(route.Points)-1]
		end := route.End
		if end == "" {
			end = RouteEndNone
		}
		s.Log.Append(RouteEndData{Points: copyPoints(route.Points), End: end}, Metadata{Position: &at, Tool: ToolPath})
	}
}
