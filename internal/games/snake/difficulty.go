package snake

// Difficulty derives the simulation speed from the score. The base move
// delay is 1000ms divided by the current speed; timed speed modifiers are
// layered on top of it by the engine and expire back to this base.
type Difficulty struct {
	baseSpeed  int
	maxSpeed   int
	levelEvery int

	level int
	speed int
}

func newDifficulty(cfg Config) Difficulty {
	d := Difficulty{
		baseSpeed:  cfg.BaseSpeed,
		maxSpeed:   cfg.MaxSpeed,
		levelEvery: cfg.LevelEvery,
	}
	d.Reset()
	return d
}

// Reset restores level 1 at the base speed.
func (d *Difficulty) Reset() {
	d.level = 1
	d.speed = d.baseSpeed
}

// Level returns the current level, positive and non-decreasing
// within a session.
func (d *Difficulty) Level() int {
	return d.level
}

// Speed returns the current speed in cells per second.
func (d *Difficulty) Speed() int {
	return d.speed
}

// BaseDelayMS returns the move delay implied by the current speed.
func (d *Difficulty) BaseDelayMS() int {
	return 1000 / d.speed
}

// Observe recomputes the level from the score and reports whether it
// changed. Deriving the level from the total keeps it monotonic even
// when Double Points steps the score over an exact threshold.
func (d *Difficulty) Observe(score int) bool {
	level := score/d.levelEvery + 1
	if level <= d.level {
		return false
	}
	d.level = level
	d.speed = d.baseSpeed + d.level
	if d.speed > d.maxSpeed {
		d.speed = d.maxSpeed
	}
	return true
}
