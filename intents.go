package main

// An intent is what a gesture wants to do to the play. The controller
// builds one per gesture, then commit validates it and turns it into
// actions. Rejected intents leave the log untouched.
type intent interface {
	isIntent()
}

type addPlayersIntent struct {
	players []Player
	group   string
}

type movePlayerIntent struct {
	player Player
}

type deletePlayerIntent struct {
	player Player
}

type startRouteIntent struct {
	point Point
}

type updateRouteIntent struct {
	points []Point
}

type endRouteIntent struct {
	points []Point
	end    RouteEnd
}

type deleteRouteIntent struct {
	route Route
}

func (addPlayersIntent) isIntent()   {}
func (movePlayerIntent) isIntent()   {}
func (deletePlayerIntent) isIntent() {}
func (startRouteIntent) isIntent()   {}
func (updateRouteIntent) isIntent()  {}
func (endRouteIntent) isIntent()     {}
func (deleteRouteIntent) isIntent()  {}

// commit validates in and appends the resulting actions. For a grouped
// placement every player is checked on its own and only the valid ones are
// recorded, one action each.
func (c *Controller) commit(in intent, at Point) []Action {
	meta := Metadata{Position: &at, Tool: c.tools.Tool()}

	var payloads []Payload
	switch in := in.(type) {
	case addPlayersIntent:
		meta.Group = in.group
		for _, player := range in.players {
			if !c.constraints.ValidPlacement(player.Type, player.Center(), player.Radius) {
				c.logger.Debug("placement rejected",
					"type", player.Type, "x", player.X, "y", player.Y)
				continue
			}
			payloads = append(payloads, PlayerAddData{Player: player})
		}
	case movePlayerIntent:
		if !c.constraints.ValidPlacement(in.player.Type, in.player.Center(), in.player.Radius) {
			c.logger.Debug("move rejected", "id", in.player.ID, "x", in.player.X, "y", in.player.Y)
			return nil
		}
		payloads = append(payloads, PlayerMoveData{Player: in.player})
	case deletePlayerIntent:
		payloads = append(payloads, PlayerDeleteData{Player: in.player})
	case startRouteIntent:
		payloads = append(payloads, RouteStartData{Point: in.point})
	case updateRouteIntent:
		payloads = append(payloads, RouteUpdateData{Points: copyPoints(in.points)})
	case endRouteIntent:
		payloads = append(payloads, RouteEndData{Points: copyPoints(in.points), End: in.end})
	case deleteRouteIntent:
		payloads = append(payloads, RouteDeleteData{Route: in.route})
	}

	actions := make([]Action, 0, len(payloads))
	for _, payload := range payloads {
		action := c.log.Append(payload, meta)
		c.logger.Debug("action appended",
			"kind", action.Kind, "id", action.ID, "index", c.log.CurrentIndex())
		actions = append(actions, action)
	}
	return actions
}
