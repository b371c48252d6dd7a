package core

// EventKind classifies notifications emitted by a game during a tick.
type EventKind int

const (
	EventFoodConsumed EventKind = iota
	EventPowerUpConsumed
	EventLevelUp
	EventGameOver
)

// Event is a fire-and-forget notification for cosmetic sinks (particles,
// sound, status flashes). The simulation never waits on its consumption.
type Event struct {
	Kind   EventKind
	X, Y   int    // Grid cell the event happened at, if positional
	Detail string // Optional human-readable payload (e.g. power-up name)
}

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventFoodConsumed:
		return "FoodConsumed"
	case EventPowerUpConsumed:
		return "PowerUpConsumed"
	case EventLevelUp:
		return "LevelUp"
	case EventGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}
