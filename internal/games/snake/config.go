package snake

// Config holds every gameplay tunable. A Game owns its Config by value;
// nothing in the simulation reads process-wide state.
type Config struct {
	GridWidth  int
	GridHeight int

	BaseSpeed  int // Cells per second at level 1
	MaxSpeed   int // Cap applied during level-ups
	MinDelayMS int // Floor for the move delay under Speed Boost
	MaxDelayMS int // Ceiling for the move delay under Slow Down

	FoodPoints int // Points per collectible
	LevelEvery int // Points per level

	PowerUpsEnabled bool
	SpawnEveryTicks int // Ticks between power-up spawns
	ItemTTLTicks    int // Ticks before an uncollected item despawns
	ExtendSegments  int // Segments appended by an Extend pickup

	EffectDurations [EffectCount]int // Ticks per timed effect
}

// DefaultConfig returns the retro rule set.
func DefaultConfig() Config {
	return Config{
		GridWidth:  40,
		GridHeight: 20,

		BaseSpeed:  8,
		MaxSpeed:   20,
		MinDelayMS: 50,
		MaxDelayMS: 500,

		FoodPoints: 10,
		LevelEvery: 50,

		PowerUpsEnabled: true,
		SpawnEveryTicks: 600, // 10 seconds at 60 ticks/s
		ItemTTLTicks:    300,
		ExtendSegments:  3,

		EffectDurations: [EffectCount]int{
			EffectSpeedBoost:    300,
			EffectSlowDown:      300,
			EffectDoublePoints:  300,
			EffectInvincibility: 200,
		},
	}
}
