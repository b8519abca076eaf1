package main

type Tool string

const (
	ToolSelect  Tool = "select"
	ToolOffense Tool = "offense"
	ToolDefense Tool = "defense"
	ToolOLine   Tool = "oline"
	ToolColor   Tool = "color"
	ToolPath    Tool = "path"
	ToolCircle  Tool = "circle"
	ToolArrow   Tool = "arrow"
	ToolBlock   Tool = "block"
	ToolRemove  Tool = "remove"
)

// Tools lists every tool in toolbar order.
var Tools = []Tool{
	ToolSelect, ToolOffense, ToolDefense, ToolOLine, ToolColor,
	ToolPath, ToolCircle, ToolArrow, ToolBlock, ToolRemove,
}

// Label returns the toolbar caption.
func (t Tool) Label() string {
	switch t {
	case ToolSelect:
		return "Select"
	case ToolOffense:
		return "Offense"
	case ToolDefense:
		return "Defense"
	case ToolOLine:
		return "O-Line"
	case ToolColor:
		return "Colors"
	case ToolPath:
		return "Route"
	case ToolCircle:
		return "Circle"
	case ToolArrow:
		return "Arrow"
	case ToolBlock:
		return "Block"
	case ToolRemove:
		return "Remove"
	default:
		return "Unknown"
	}
}

// placesPlayers reports whether a pointer-down with this tool places players.
func (t Tool) placesPlayers() bool {
	return t == ToolOffense || t == ToolDefense || t == ToolOLine
}

// drawsRoutes reports whether a pointer-down with this tool starts a route.
func (t Tool) drawsRoutes() bool {
	return t == ToolPath || t == ToolCircle || t == ToolArrow || t == ToolBlock
}

// routeEnd maps a drawing tool to the marker drawn at the end of its route.
func (t Tool) routeEnd() RouteEnd {
	switch t {
	case ToolCircle:
		return RouteEndCircle
	case ToolArrow:
		return RouteEndArrow
	case ToolBlock:
		return RouteEndBlock
	default:
		return RouteEndNone
	}
}

type EditingState int

const (
	StateIdle EditingState = iota
	StateDrawing
	StateDragging
)

func (s EditingState) String() string {
	switch s {
	case StateIdle:
		return "IDLE"
	case StateDrawing:
		return "DRAWING"
	case StateDragging:
		return "DRAGGING"
	default:
		return "UNKNOWN"
	}
}

type ActionKind string

const (
	ActionToolChange   ActionKind = "TOOL_CHANGE" // reserved, never emitted
	ActionPlayerAdd    ActionKind = "PLAYER_ADD"
	ActionPlayerMove   ActionKind = "PLAYER_MOVE"
	ActionPlayerDelete ActionKind = "PLAYER_DELETE"
	ActionRouteStart   ActionKind = "ROUTE_START"
	ActionRouteUpdate  ActionKind = "ROUTE_UPDATE"
	ActionRouteEnd     ActionKind = "ROUTE_END"
	ActionRouteDelete  ActionKind = "ROUTE_DELETE"
)

type PlayerType string

const (
	PlayerOffense PlayerType = "offense"
	PlayerDefense PlayerType = "defense"
	PlayerOLine   PlayerType = "oline"
)

type RouteEnd string

const (
	RouteEndNone   RouteEnd = "none"
	RouteEndCircle RouteEnd = "circle"
	RouteEndArrow  RouteEnd = "arrow"
	RouteEndBlock  RouteEnd = "block"
)

// Field geometry defaults, all fractions of the playing surface.
const (
	defaultLOSFraction      = 0.658 // line of scrimmage, from the top
	defaultBufferFraction   = 0.002 // of height
	defaultRadiusFraction   = 0.01  // of width
	defaultOLineGapFraction = 0.005 // of width
	defaultGridSize         = 10.0
	defaultSnapThreshold    = 15.0
	defaultFieldWidth       = 1000.0
	defaultFieldHeight      = 600.0
	offensiveLineSize       = 5
)

type Mode int

const (
	ModeNormal Mode = iota
	ModeNameInput
	ModeHelp
)

type NamePrompt int

const (
	PromptFormation NamePrompt = iota // save formation only
	PromptPlayFormation               // save play, asking for the formation first
	PromptPlayName
)
