// Package snake implements the retro snake simulation: tick-driven grid
// movement, collectibles, timed power-up modifiers, and score-based
// difficulty scaling. The package is pure game logic; rendering and input
// mapping live in the platform layer.
package snake

import (
	"math/rand"

	"github.com/vovakirdan/retro-snake/internal/core"
	"github.com/vovakirdan/retro-snake/internal/registry"
)

// SessionState is the top-level state machine of a game session.
type SessionState int

const (
	StateIdle SessionState = iota // Zero value before Reset seeds the session
	StateRunning
	StatePaused
	StateOver
)

func (s SessionState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateOver:
		return "over"
	default:
		return "unknown"
	}
}

// Game is a single snake session. It owns every piece of mutable state:
// the body, the collectible, pending items, active effects, score and
// speed. The platform reads it only through State, Snapshot, and Render.
type Game struct {
	classic bool
	cfg     Config
	grid    Grid
	rng     *rand.Rand

	tick      uint64
	state     SessionState
	won       bool
	score     int
	highScore int
	diff      Difficulty

	// Snake state, head at index 0
	snake     []Cell
	direction Direction
	nextDir   Direction // Buffered direction for the next move
	growing   bool      // Tail stays put on the current move

	food    Cell
	items   []PowerUpItem
	effects Effects

	spawnTimer  int
	moveDelayMS int // Effective delay between moves
	msAcc       int // Accumulated milliseconds toward the next move
	msPerTick   int

	events []core.Event

	// Screen placement
	screenW, screenH       int
	hudHeight              int
	mapOffsetX, mapOffsetY int
	tooSmall               bool
}

// New creates the full retro mode with power-ups.
func New() *Game {
	return NewWithConfig(DefaultConfig())
}

// NewClassic creates the classic rule set: no power-up spawning, so walls
// and self-collision are always fatal.
func NewClassic() *Game {
	return NewClassicWithConfig(DefaultConfig())
}

// NewClassicWithConfig creates a classic-rules game with an explicit
// configuration. Power-up spawning is forced off.
func NewClassicWithConfig(cfg Config) *Game {
	cfg.PowerUpsEnabled = false
	g := NewWithConfig(cfg)
	g.classic = true
	return g
}

// NewWithConfig creates a game with an explicit configuration.
func NewWithConfig(cfg Config) *Game {
	return &Game{
		cfg:  cfg,
		grid: Grid{Width: cfg.GridWidth, Height: cfg.GridHeight},
	}
}

func init() {
	registry.Register("snake", func() registry.Game {
		return New()
	})
	registry.Register("snake_classic", func() registry.Game {
		return NewClassic()
	})
}

// ID returns the mode identifier.
func (g *Game) ID() string {
	if g.classic {
		return "snake_classic"
	}
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.classic {
		return "Snake (Classic)"
	}
	return "Retro Snake"
}

// Reset seeds the session and performs the Idle -> Running transition.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.hudHeight = 2
	g.highScore = cfg.HighScore
	g.tick = 0

	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	g.msPerTick = 1000 / tickRate

	g.layout()
	g.start()
}

// layout centers the grid on the screen and flags undersized terminals.
func (g *Game) layout() {
	requiredW := g.grid.Width + 2
	requiredH := g.grid.Height + g.hudHeight + 2
	if g.screenW < requiredW || g.screenH < requiredH {
		g.tooSmall = true
		return
	}
	g.tooSmall = false
	g.mapOffsetX = (g.screenW - g.grid.Width) / 2
	g.mapOffsetY = g.hudHeight + 1
}

// start reinitializes all per-session state: a single segment at the grid
// center facing right, fresh collectible, no modifiers, score and speed
// back to their initial constants.
func (g *Game) start() {
	g.state = StateRunning
	g.won = false
	g.score = 0
	g.diff = newDifficulty(g.cfg)
	g.moveDelayMS = g.diff.BaseDelayMS()
	g.msAcc = 0

	g.snake = []Cell{g.grid.Center()}
	g.direction = DirRight
	g.nextDir = DirRight
	g.growing = false

	g.effects.Clear()
	g.items = g.items[:0]
	g.spawnTimer = 0

	if err := g.spawnFood(); err != nil {
		// Degenerate board with no room for food; nothing to play for.
		g.won = true
		g.state = StateOver
	}
}

// Step advances the session by one tick at the platform tick rate.
// Movement is gated by a millisecond accumulator so the cell rate follows
// the current move delay while modifiers, item countdowns, and the spawn
// timer advance exactly once per tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++
	g.events = g.events[:0]

	// The zero value sits in StateIdle until Reset seeds the session;
	// until then there is nothing to simulate and input is ignored.
	if g.state == StateIdle {
		return g.result()
	}

	// Restart is only legal from a terminal state; elsewhere it is an
	// invalid transition and the tick proceeds as if the key were not held.
	if input.Has(core.ActionRestart) && g.state == StateOver {
		if g.score > g.highScore {
			g.highScore = g.score
		}
		g.start()
		return g.result()
	}

	if input.Has(core.ActionPause) {
		switch g.state {
		case StateRunning:
			g.state = StatePaused
		case StatePaused:
			g.state = StateRunning
		}
	}

	// While paused nothing advances and direction input is discarded.
	if g.state != StateRunning || g.tooSmall {
		return g.result()
	}

	g.bufferDirection(input)

	g.msAcc += g.msPerTick
	for g.msAcc >= g.moveDelayMS && g.state == StateRunning {
		g.msAcc -= g.moveDelayMS
		g.advance()
	}

	if g.state == StateRunning {
		g.tickEffects()
		g.tickItems()
		g.tickSpawner()
	}

	return g.result()
}

// bufferDirection records the requested direction for the next move,
// discarding reversals. Repeating the current request is a no-op.
func (g *Game) bufferDirection(input core.InputFrame) {
	want := g.nextDir
	switch {
	case input.Has(core.ActionUp):
		want = DirUp
	case input.Has(core.ActionDown):
		want = DirDown
	case input.Has(core.ActionLeft):
		want = DirLeft
	case input.Has(core.ActionRight):
		want = DirRight
	}

	if want != g.direction.Opposite() {
		g.nextDir = want
	}
}

// advance moves the snake one cell and resolves collisions, food, and
// power-up pickups.
func (g *Game) advance() {
	g.direction = g.nextDir
	newHead := g.snake[0].Step(g.direction)

	if !g.grid.InBounds(newHead) {
		if !g.effects.Active(EffectInvincibility) {
			g.gameOver()
			return
		}
		newHead = g.grid.Wrap(newHead)
	}

	if g.hitsBody(newHead) && !g.effects.Active(EffectInvincibility) {
		g.gameOver()
		return
	}

	g.snake = append([]Cell{newHead}, g.snake...)

	if newHead == g.food {
		points := g.cfg.FoodPoints
		if g.effects.Active(EffectDoublePoints) {
			points *= 2
		}
		g.score += points
		g.emit(core.EventFoodConsumed, newHead, "")

		if g.diff.Observe(g.score) {
			g.recomputeDelay()
			g.emit(core.EventLevelUp, newHead, "")
		}

		g.growing = true
		if err := g.spawnFood(); err != nil {
			// The body fills the board: there is nothing left to eat.
			g.won = true
			g.gameOver()
			return
		}
	}

	if g.growing {
		g.growing = false
	} else if len(g.snake) > 1 {
		g.snake = g.snake[:len(g.snake)-1]
	}

	g.collectPowerUps(newHead)
}

// hitsBody checks the new head against the body, excluding the tail cell.
// The tail vacates on this move unless food is eaten, and food can never
// sit on the body, so the tail cell is always safe to enter.
func (g *Game) hitsBody(c Cell) bool {
	for _, seg := range g.snake[:len(g.snake)-1] {
		if seg == c {
			return true
		}
	}
	return false
}

// collectPowerUps resolves every pending item under the head, in item-list
// order, compacting the retained items in place.
func (g *Game) collectPowerUps(head Cell) {
	kept := g.items[:0]
	for _, it := range g.items {
		if it.Cell == head {
			g.applyPowerUp(it.Kind, head)
			continue
		}
		kept = append(kept, it)
	}
	g.items = kept
}

// applyPowerUp applies a collected power-up: timed kinds activate their
// modifier, Shrink and Extend restructure the body immediately.
func (g *Game) applyPowerUp(kind PowerUpKind, at Cell) {
	switch kind {
	case PowerUpSpeedBoost:
		g.effects.Activate(EffectSpeedBoost, g.cfg.EffectDurations[EffectSpeedBoost])
		g.recomputeDelay()
	case PowerUpSlowDown:
		g.effects.Activate(EffectSlowDown, g.cfg.EffectDurations[EffectSlowDown])
		g.recomputeDelay()
	case PowerUpDoublePoints:
		g.effects.Activate(EffectDoublePoints, g.cfg.EffectDurations[EffectDoublePoints])
	case PowerUpInvincibility:
		g.effects.Activate(EffectInvincibility, g.cfg.EffectDurations[EffectInvincibility])
	case PowerUpShrink:
		if len(g.snake) > 1 {
			g.snake = g.snake[:core.Max(1, len(g.snake)/2)]
		}
	case PowerUpExtend:
		tail := g.snake[len(g.snake)-1]
		for i := 0; i < g.cfg.ExtendSegments; i++ {
			g.snake = append(g.snake, tail)
		}
	}

	g.emit(core.EventPowerUpConsumed, at, kind.String())
}

// recomputeDelay derives the effective move delay from the current base
// speed and layers any surviving speed modifiers on top. Expiry and
// level-ups always recompute from base, never from a saved transient.
func (g *Game) recomputeDelay() {
	delay := g.diff.BaseDelayMS()
	if g.effects.Active(EffectSpeedBoost) {
		delay = core.Max(g.cfg.MinDelayMS, delay/2)
	}
	if g.effects.Active(EffectSlowDown) {
		delay = core.Min(g.cfg.MaxDelayMS, delay*2)
	}
	g.moveDelayMS = delay
}

// tickEffects advances every active modifier, recomputing the move delay
// when a speed modifier drops off.
func (g *Game) tickEffects() {
	for _, e := range g.effects.Tick() {
		if e == EffectSpeedBoost || e == EffectSlowDown {
			g.recomputeDelay()
		}
	}
}

// tickItems counts pending items down and prunes expired ones by building
// the retained list in place. Expired items are never collected and have
// no score effect.
func (g *Game) tickItems() {
	kept := g.items[:0]
	for _, it := range g.items {
		it.TTL--
		it.Blink++
		if it.TTL > 0 {
			kept = append(kept, it)
		}
	}
	g.items = kept
}

// tickSpawner requests one new power-up item every SpawnEveryTicks.
func (g *Game) tickSpawner() {
	if !g.cfg.PowerUpsEnabled {
		return
	}
	g.spawnTimer++
	if g.spawnTimer >= g.cfg.SpawnEveryTicks {
		g.spawnTimer = 0
		g.spawnPowerUp()
	}
}

// gameOver performs the Running -> Over transition.
func (g *Game) gameOver() {
	g.state = StateOver
	g.emit(core.EventGameOver, g.snake[0], "")
}

func (g *Game) emit(kind core.EventKind, at Cell, detail string) {
	g.events = append(g.events, core.Event{Kind: kind, X: at.X, Y: at.Y, Detail: detail})
}

func (g *Game) result() core.StepResult {
	res := core.StepResult{State: g.State()}
	if len(g.events) > 0 {
		res.Events = append([]core.Event(nil), g.events...)
	}
	return res
}

// State returns the platform-facing session status.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.score,
		HighScore: g.highScore,
		GameOver:  g.state == StateOver,
		Paused:    g.state == StatePaused,
	}
}
