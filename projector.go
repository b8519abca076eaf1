package main

// Projection is the live entity state derived from an action log prefix.
// Players keep first-insertion order so that enumeration is deterministic.
type Projection struct {
	order   []string
	players map[string]Player
	routes  []Route
}

func newProjection() *Projection {
	return &Projection{players: make(map[string]Player)}
}

func (p *Projection) apply(action Action) {
	switch data := action.Payload.(type) {
	case PlayerAddData:
		p.putPlayer(data.Player)
	case PlayerMoveData:
		p.putPlayer(data.Player)
	case PlayerDeleteData:
		p.removePlayer(data.Player.ID)
	case RouteEndData:
		p.routes = append(p.routes, Route{
			ID:     action.ID,
			Points: copyPoints(data.Points),
			End:    data.End,
		})
	case RouteDeleteData:
		for i, route := range p.routes {
			if route.ID == data.Route.ID {
				p.routes = append(p.routes[:i:i], p.routes[i+1:]...)
				break
			}
		}
	}
	// ROUTE_START, ROUTE_UPDATE and TOOL_CHANGE leave no persisted entity.
}

func (p *Projection) putPlayer(player Player) {
	if _, ok := p.players[player.ID]; !ok {
		p.order = append(p.order, player.ID)
	}
	p.players[player.ID] = player
}

func (p *Projection) removePlayer(id string) {
	if _, ok := p.players[id]; !ok {
		return
	}
	delete(p.players, id)
	for i, existing := range p.order {
		if existing == id {
			p.order = append(p.order[:i:i], p.order[i+1:]...)
			break
		}
	}
}

// Players returns the live players in enumeration order.
func (p *Projection) Players() []Player {
	out := make([]Player, 0, len(p.order))
	for _, id := range p.order {
		out = append(out, p.players[id])
	}
	return out
}

func (p *Projection) Player(id string) (Player, bool) {
	player, ok := p.players[id]
	return player, ok
}

// Routes returns the completed routes in the order they were finished.
func (p *Projection) Routes() []Route {
	out := make([]Route, len(p.routes))
	for i, route := range p.routes {
		route.Points = copyPoints(route.Points)
		out[i] = route
	}
	return out
}

func (p *Projection) Len() int {
	return len(p.order)
}

func (p *Projection) Entities() Entities {
	return Entities{Players: p.Players(), Routes: p.Routes()}
}

func (p *Projection) clone() *Projection {
	c := &Projection{
		order:   append([]string(nil), p.order...),
		players: make(map[string]Player, len(p.players)),
		routes:  append([]Route(nil), p.routes...),
	}
	for id, player := range p.players {
		c.players[id] = player
	}
	return c
}

// Project folds actions[0..currentIndex] into a Projection. It is a pure
// function of its inputs; undo and redo are just different cursors.
func Project(actions []Action, currentIndex int) *Projection {
	p := newProjection()
	if currentIndex >= len(actions) {
		currentIndex = len(actions) - 1
	}
	for i := 0; i <= currentIndex; i++ {
		p.apply(actions[i])
	}
	return p
}

// ExtractEntities is the flat form of Project handed to persistence.
func ExtractEntities(actions []Action, currentIndex int) Entities {
	return Project(actions, currentIndex).Entities()
}

// Projector caches the last projection of a log and folds forward from it
// when the cursor advances over an unchanged prefix. Any other cursor
// movement recomputes from scratch.
type Projector struct {
	cached     *Projection
	index      int
	generation int
	lastID     string
}

func NewProjector() *Projector {
	return &Projector{index: -1}
}

func (pr *Projector) Project(log *ActionLog) *Projection {
	target := log.CurrentIndex()

	if pr.cached != nil && pr.reusable(log, target) {
		if target == pr.index {
			return pr.cached.clone()
		}
		for i := pr.index + 1; i <= target; i++ {
			action, _ := log.At(i)
			pr.cached.apply(action)
		}
	} else {
		pr.cached = Project(log.actions, target)
	}

	pr.index = target
	pr.generation = log.Generation()
	pr.lastID = ""
	if action, ok := log.At(target); ok {
		pr.lastID = action.ID
	}
	return pr.cached.clone()
}

func (pr *Projector) reusable(log *ActionLog, target int) bool {
	if pr.generation != log.Generation() || target < pr.index {
		return false
	}
	if pr.index < 0 {
		return true
	}
	action, ok := log.At(pr.index)
	return ok && action.ID == pr.lastID
}

// Invalidate drops the cache.
func (pr *Projector) Invalidate() {
	pr.cached = nil
	pr.index = -1
	pr.lastID = ""
}
