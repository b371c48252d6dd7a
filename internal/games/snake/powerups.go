package snake

import "github.com/vovakirdan/retro-snake/internal/core"

// PowerUpKind represents the different collectible power-up types.
type PowerUpKind int

const (
	PowerUpSpeedBoost PowerUpKind = iota
	PowerUpSlowDown
	PowerUpDoublePoints
	PowerUpInvincibility
	PowerUpShrink
	PowerUpExtend
	PowerUpKindCount // Sentinel for counting types
)

// String returns the display name of the power-up kind.
func (k PowerUpKind) String() string {
	switch k {
	case PowerUpSpeedBoost:
		return "Speed Boost"
	case PowerUpSlowDown:
		return "Slow Down"
	case PowerUpDoublePoints:
		return "Double Points"
	case PowerUpInvincibility:
		return "Invincibility"
	case PowerUpShrink:
		return "Shrink"
	case PowerUpExtend:
		return "Extend"
	default:
		return "?"
	}
}

// Glyph returns the display character for a power-up kind.
func (k PowerUpKind) Glyph() rune {
	switch k {
	case PowerUpSpeedBoost:
		return '▲'
	case PowerUpSlowDown:
		return '●'
	case PowerUpDoublePoints:
		return '$'
	case PowerUpInvincibility:
		return '◆'
	case PowerUpShrink:
		return '▽'
	case PowerUpExtend:
		return '█'
	default:
		return '?'
	}
}

// Color returns the rendering color for a power-up kind.
func (k PowerUpKind) Color() core.Color {
	switch k {
	case PowerUpSpeedBoost:
		return core.ColorCyan
	case PowerUpSlowDown:
		return core.ColorBlue
	case PowerUpDoublePoints:
		return core.ColorGold
	case PowerUpInvincibility:
		return core.ColorMagenta
	case PowerUpShrink:
		return core.ColorPink
	case PowerUpExtend:
		return core.ColorOrange
	default:
		return core.ColorDefault
	}
}

// EffectType identifies a timed modifier. Shrink and Extend change the
// body immediately and never occupy a duration slot, so they have no
// effect type.
type EffectType int

const (
	EffectSpeedBoost EffectType = iota
	EffectSlowDown
	EffectDoublePoints
	EffectInvincibility
	EffectCount // Sentinel for counting types
)

// String returns the display name of the effect.
func (e EffectType) String() string {
	switch e {
	case EffectSpeedBoost:
		return "Speed Boost"
	case EffectSlowDown:
		return "Slow Down"
	case EffectDoublePoints:
		return "Double Points"
	case EffectInvincibility:
		return "Invincibility"
	default:
		return "?"
	}
}

// Effect returns the timed effect a power-up kind maps to,
// or false for instantaneous kinds.
func (k PowerUpKind) Effect() (EffectType, bool) {
	switch k {
	case PowerUpSpeedBoost:
		return EffectSpeedBoost, true
	case PowerUpSlowDown:
		return EffectSlowDown, true
	case PowerUpDoublePoints:
		return EffectDoublePoints, true
	case PowerUpInvincibility:
		return EffectInvincibility, true
	default:
		return 0, false
	}
}

// Effects tracks remaining durations of active timed modifiers.
// A fixed-size array indexed by EffectType keeps lookups O(1) without
// stringly-typed keys. Zero means inactive.
type Effects struct {
	remaining [EffectCount]int
}

// Activate inserts or refreshes an effect with the given duration in ticks.
// Re-collecting the same kind refreshes rather than duplicates.
func (fx *Effects) Activate(e EffectType, duration int) {
	if e < 0 || e >= EffectCount || duration <= 0 {
		return
	}
	fx.remaining[e] = duration
}

// Active reports whether the effect currently applies.
func (fx *Effects) Active(e EffectType) bool {
	return e >= 0 && e < EffectCount && fx.remaining[e] > 0
}

// Remaining returns the ticks left for an effect, 0 if inactive.
func (fx *Effects) Remaining(e EffectType) int {
	if e < 0 || e >= EffectCount {
		return 0
	}
	return fx.remaining[e]
}

// Tick decrements every active duration by one and returns the effects
// that expired on this tick.
func (fx *Effects) Tick() []EffectType {
	var expired []EffectType
	for e := EffectType(0); e < EffectCount; e++ {
		if fx.remaining[e] == 0 {
			continue
		}
		fx.remaining[e]--
		if fx.remaining[e] == 0 {
			expired = append(expired, e)
		}
	}
	return expired
}

// Clear deactivates every effect.
func (fx *Effects) Clear() {
	fx.remaining = [EffectCount]int{}
}

// PowerUpItem is a transient power-up sitting on the grid, waiting to be
// collected before its countdown runs out.
type PowerUpItem struct {
	Cell  Cell
	Kind  PowerUpKind
	TTL   int // Ticks before despawn
	Blink int // Advancing phase for the expiry blink animation
}
