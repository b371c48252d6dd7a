package snake

// EffectStatus is one active modifier with its remaining duration.
type EffectStatus struct {
	Effect    EffectType
	Remaining int
}

// Snapshot is an immutable copy of the session state, taken between ticks.
// Renderers and tests read it without ever touching the live game.
type Snapshot struct {
	Tick      uint64
	State     SessionState
	Won       bool
	Score     int
	HighScore int
	Level     int
	Speed     int
	DelayMS   int

	Dir  Direction
	Body []Cell

	Food    Cell
	Items   []PowerUpItem
	Effects []EffectStatus
}

// Snapshot captures the complete game state for rendering, determinism
// testing, and replay.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:      g.tick,
		State:     g.state,
		Won:       g.won,
		Score:     g.score,
		HighScore: g.highScore,
		Level:     g.diff.Level(),
		Speed:     g.diff.Speed(),
		DelayMS:   g.moveDelayMS,
		Dir:       g.direction,
		Body:      append([]Cell(nil), g.snake...),
		Food:      g.food,
	}

	if len(g.items) > 0 {
		snap.Items = append([]PowerUpItem(nil), g.items...)
	}

	for e := EffectType(0); e < EffectCount; e++ {
		if g.effects.Active(e) {
			snap.Effects = append(snap.Effects, EffectStatus{
				Effect:    e,
				Remaining: g.effects.Remaining(e),
			})
		}
	}

	return snap
}
