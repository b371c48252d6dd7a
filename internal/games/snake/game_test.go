package snake

import (
	"strings"
	"testing"

	"github.com/vovakirdan/retro-snake/internal/core"
)

func dirInput(a core.Action) core.InputFrame {
	in := core.NewInputFrame()
	in.Set(a)
	return in
}

// placeSnake positions a body (head first) with a known heading.
func placeSnake(g *Game, dir Direction, body ...Cell) {
	g.snake = append(g.snake[:0], body...)
	g.direction = dir
	g.nextDir = dir
	g.growing = false
}

func TestEatGrowsAndScores(t *testing.T) {
	// Grid 10x10, single segment at (5,5) heading right, food at (6,5).
	g := testGame(t, smallConfig(), 42)
	placeSnake(g, DirRight, Cell{5, 5})
	g.food = Cell{6, 5}

	res := g.Step(core.NewInputFrame())

	if head := g.snake[0]; head != (Cell{6, 5}) {
		t.Errorf("head = %v, expected (6, 5)", head)
	}
	if len(g.snake) != 2 {
		t.Errorf("length = %d, expected 2 after eating", len(g.snake))
	}
	if g.score != 10 {
		t.Errorf("score = %d, expected 10", g.score)
	}
	if g.food == (Cell{6, 5}) {
		t.Error("collectible should move after being consumed")
	}

	var sawFood bool
	for _, ev := range res.Events {
		if ev.Kind == core.EventFoodConsumed {
			sawFood = true
			if ev.X != 6 || ev.Y != 5 {
				t.Errorf("food event at (%d, %d), expected (6, 5)", ev.X, ev.Y)
			}
		}
	}
	if !sawFood {
		t.Error("expected a FoodConsumed event")
	}
}

func TestWallCollisionEndsSession(t *testing.T) {
	g := testGame(t, smallConfig(), 42)
	placeSnake(g, DirLeft, Cell{0, 5})

	g.Step(core.NewInputFrame())

	if g.state != StateOver {
		t.Errorf("state = %v, expected over after leaving the grid", g.state)
	}
}

func TestInvincibilityWrapsAtWall(t *testing.T) {
	g := testGame(t, smallConfig(), 42)
	placeSnake(g, DirLeft, Cell{0, 5})
	g.effects.Activate(EffectInvincibility, 50)

	g.Step(core.NewInputFrame())

	if g.state != StateRunning {
		t.Fatalf("state = %v, expected running under invincibility", g.state)
	}
	if head := g.snake[0]; head != (Cell{g.grid.Width - 1, 5}) {
		t.Errorf("head = %v, expected wrap to (%d, 5)", head, g.grid.Width-1)
	}
	if got := g.effects.Remaining(EffectInvincibility); got != 49 {
		t.Errorf("invincibility remaining = %d, expected 49", got)
	}
}

func TestSelfCollisionEndsSession(t *testing.T) {
	g := testGame(t, smallConfig(), 42)
	// Hook shape: moving right from (5,5) enters (6,5), which stays occupied.
	placeSnake(g, DirRight,
		Cell{5, 5}, Cell{5, 6}, Cell{6, 6}, Cell{6, 5}, Cell{6, 4}, Cell{7, 4})

	g.Step(core.NewInputFrame())

	if g.state != StateOver {
		t.Errorf("state = %v, expected over after self collision", g.state)
	}
}

func TestTailCellIsSafeToEnter(t *testing.T) {
	g := testGame(t, smallConfig(), 42)
	// A closed loop: the head chases its own vacating tail at (5,5).
	placeSnake(g, DirLeft,
		Cell{6, 5}, Cell{6, 6}, Cell{5, 6}, Cell{5, 5})
	g.food = Cell{0, 0}

	g.Step(core.NewInputFrame())

	if g.state != StateRunning {
		t.Errorf("entering the vacating tail cell should be safe, state = %v", g.state)
	}
	if head := g.snake[0]; head != (Cell{5, 5}) {
		t.Errorf("head = %v, expected (5, 5)", head)
	}
}

func TestSelfOverlapHarmlessWhileInvincible(t *testing.T) {
	g := testGame(t, smallConfig(), 42)
	placeSnake(g, DirRight,
		Cell{5, 5}, Cell{5, 6}, Cell{6, 6}, Cell{6, 5}, Cell{6, 4}, Cell{7, 4})
	g.food = Cell{0, 0}
	g.effects.Activate(EffectInvincibility, 100)

	g.Step(core.NewInputFrame())

	if g.state != StateRunning {
		t.Errorf("overlap should be harmless while invincible, state = %v", g.state)
	}
}

func TestReversalRejected(t *testing.T) {
	g := testGame(t, smallConfig(), 42)
	placeSnake(g, DirRight, Cell{5, 5})
	g.food = Cell{0, 0}

	g.Step(dirInput(core.ActionLeft))

	if g.direction != DirRight {
		t.Errorf("direction = %v, reversal should be discarded", g.direction)
	}
	if head := g.snake[0]; head != (Cell{6, 5}) {
		t.Errorf("head = %v, expected continued movement right", head)
	}
}

func TestDirectionCommandIdempotent(t *testing.T) {
	run := func(repeats int) []Cell {
		g := testGame(t, smallConfig(), 42)
		placeSnake(g, DirRight, Cell{2, 5})
		g.food = Cell{0, 0}

		for i := 0; i < repeats; i++ {
			g.Step(dirInput(core.ActionDown))
		}
		for len(g.snake) > 0 && g.state == StateRunning && g.tick < 4 {
			g.Step(core.NewInputFrame())
		}
		return append([]Cell(nil), g.snake...)
	}

	once := run(1)
	twice := run(2)

	// Same number of total ticks either way, so trajectories must match.
	if len(once) != len(twice) || once[0] != twice[0] {
		t.Errorf("repeating a direction command changed the trajectory: %v vs %v", once, twice)
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := testGame(t, smallConfig(), 42)
	placeSnake(g, DirRight, Cell{3, 5})
	g.food = Cell{0, 0}
	g.effects.Activate(EffectDoublePoints, 100)
	g.items = append(g.items, PowerUpItem{Cell: Cell{8, 8}, Kind: PowerUpExtend, TTL: 40})

	g.Step(dirInput(core.ActionPause))
	if g.state != StatePaused {
		t.Fatalf("state = %v, expected paused", g.state)
	}

	head := g.snake[0]
	for i := 0; i < 10; i++ {
		g.Step(dirInput(core.ActionDown))
	}

	if g.snake[0] != head {
		t.Error("body moved while paused")
	}
	if got := g.effects.Remaining(EffectDoublePoints); got != 100 {
		t.Errorf("modifier ticked while paused: remaining = %d", got)
	}
	if g.items[0].TTL != 40 {
		t.Errorf("item TTL ticked while paused: %d", g.items[0].TTL)
	}
	if g.nextDir != DirRight {
		t.Error("direction input should be discarded while paused")
	}

	// Resume continues from the same spot
	g.Step(dirInput(core.ActionPause))
	if g.state != StateRunning {
		t.Errorf("state = %v, expected running after resume", g.state)
	}
}

func TestLengthNeverBelowOne(t *testing.T) {
	g := testGame(t, smallConfig(), 42)
	placeSnake(g, DirRight, Cell{5, 5})
	g.food = Cell{0, 0}

	// Shrink on a single segment must keep it
	g.applyPowerUp(PowerUpShrink, Cell{5, 5})
	if len(g.snake) != 1 {
		t.Fatalf("length = %d, expected 1 after shrinking a single segment", len(g.snake))
	}

	for i := 0; i < 20 && g.state == StateRunning; i++ {
		g.Step(core.NewInputFrame())
		if len(g.snake) < 1 {
			t.Fatal("body length dropped below 1")
		}
	}
}

func TestShrinkHalvesBody(t *testing.T) {
	g := testGame(t, smallConfig(), 42)
	placeSnake(g, DirRight,
		Cell{5, 5}, Cell{4, 5}, Cell{3, 5}, Cell{2, 5}, Cell{1, 5}, Cell{0, 5})

	g.applyPowerUp(PowerUpShrink, Cell{5, 5})

	if len(g.snake) != 3 {
		t.Errorf("length = %d, expected 6/2 = 3", len(g.snake))
	}
	if g.snake[0] != (Cell{5, 5}) {
		t.Error("shrink must drop segments from the tail, not the head")
	}
}

func TestExtendAppendsTailCopies(t *testing.T) {
	g := testGame(t, smallConfig(), 42)
	placeSnake(g, DirRight, Cell{5, 5}, Cell{4, 5})

	g.applyPowerUp(PowerUpExtend, Cell{5, 5})

	if len(g.snake) != 5 {
		t.Fatalf("length = %d, expected 2+3 = 5", len(g.snake))
	}
	for _, seg := range g.snake[2:] {
		if seg != (Cell{4, 5}) {
			t.Errorf("appended segment %v, expected copies of the tail (4, 5)", seg)
		}
	}
}

func TestDoublePointsScoring(t *testing.T) {
	g := testGame(t, smallConfig(), 42)
	placeSnake(g, DirRight, Cell{5, 5})
	g.food = Cell{6, 5}
	g.effects.Activate(EffectDoublePoints, 100)

	g.Step(core.NewInputFrame())

	if g.score != 20 {
		t.Errorf("score = %d, expected 20 under Double Points", g.score)
	}
}

func TestSpeedModifiersCombineAgainstBase(t *testing.T) {
	g := testGame(t, smallConfig(), 42)
	base := g.diff.BaseDelayMS() // 125ms at speed 8

	g.applyPowerUp(PowerUpSlowDown, Cell{0, 0})
	if g.moveDelayMS != 250 {
		t.Fatalf("delay = %d, expected min(500, 125*2) = 250", g.moveDelayMS)
	}

	g.applyPowerUp(PowerUpSpeedBoost, Cell{0, 0})
	// Both active: base halved then doubled, clamped
	if g.moveDelayMS != 124 {
		t.Fatalf("delay = %d, expected max(50, 125/2)*2 = 124", g.moveDelayMS)
	}

	// SpeedBoost expires first; the surviving SlowDown multiplier applies
	// against the current base, not a saved transient.
	g.effects.remaining[EffectSpeedBoost] = 1
	g.tickEffects()
	if g.moveDelayMS != 2*base {
		t.Errorf("delay = %d, expected %d from base under SlowDown", g.moveDelayMS, 2*base)
	}

	// SlowDown expires too: back to the plain base delay
	g.effects.remaining[EffectSlowDown] = 1
	g.tickEffects()
	if g.moveDelayMS != base {
		t.Errorf("delay = %d, expected base %d after all expiries", g.moveDelayMS, base)
	}
}

func TestPowerUpPickupActivatesEffect(t *testing.T) {
	g := testGame(t, smallConfig(), 42)
	placeSnake(g, DirRight, Cell{5, 5})
	g.food = Cell{0, 0}
	g.items = append(g.items,
		PowerUpItem{Cell: Cell{6, 5}, Kind: PowerUpInvincibility, TTL: 100})

	res := g.Step(core.NewInputFrame())

	if len(g.items) != 0 {
		t.Error("collected item should be removed")
	}
	if !g.effects.Active(EffectInvincibility) {
		t.Error("invincibility should be active after pickup")
	}
	// Activated at 200, then ticked once in the same step
	if got := g.effects.Remaining(EffectInvincibility); got != 199 {
		t.Errorf("remaining = %d, expected 199", got)
	}

	var sawPickup bool
	for _, ev := range res.Events {
		if ev.Kind == core.EventPowerUpConsumed && ev.Detail == "Invincibility" {
			sawPickup = true
		}
	}
	if !sawPickup {
		t.Error("expected a PowerUpConsumed event")
	}
}

func TestItemCountdownPrunes(t *testing.T) {
	g := testGame(t, smallConfig(), 42)
	placeSnake(g, DirRight, Cell{5, 5})
	g.food = Cell{0, 0}
	g.items = append(g.items,
		PowerUpItem{Cell: Cell{8, 8}, Kind: PowerUpShrink, TTL: 2},
		PowerUpItem{Cell: Cell{9, 9}, Kind: PowerUpExtend, TTL: 10})

	g.Step(core.NewInputFrame())
	g.Step(core.NewInputFrame())

	if len(g.items) != 1 {
		t.Fatalf("items = %d, expected the short-lived one pruned", len(g.items))
	}
	if g.items[0].Kind != PowerUpExtend {
		t.Errorf("surviving item = %v, expected Extend", g.items[0].Kind)
	}
	if len(g.snake) != 1 {
		t.Error("expired items must never apply their effect")
	}
}

func TestSpawnTimerEmitsItem(t *testing.T) {
	cfg := smallConfig()
	cfg.SpawnEveryTicks = 5
	g := testGame(t, cfg, 42)
	placeSnake(g, DirRight, Cell{1, 1})
	g.food = Cell{9, 9}

	for i := 0; i < 5; i++ {
		g.Step(core.NewInputFrame())
	}

	if len(g.items) != 1 {
		t.Errorf("items = %d, expected one spawn after the timer fires", len(g.items))
	}
}

func TestClassicModeNeverSpawnsPowerUps(t *testing.T) {
	cfg := smallConfig()
	cfg.PowerUpsEnabled = false
	cfg.SpawnEveryTicks = 2
	g := testGame(t, cfg, 42)
	placeSnake(g, DirRight, Cell{1, 1})
	g.food = Cell{9, 9}

	for i := 0; i < 20; i++ {
		g.Step(core.NewInputFrame())
	}

	if len(g.items) != 0 {
		t.Errorf("items = %d, classic rules must not spawn power-ups", len(g.items))
	}
}

func TestFoodNeverInsideBody(t *testing.T) {
	g := testGame(t, smallConfig(), 1234)

	dirs := []core.Action{core.ActionDown, core.ActionRight, core.ActionUp, core.ActionLeft}
	for i := 0; i < 500 && g.state == StateRunning; i++ {
		in := core.NewInputFrame()
		if i%3 == 0 {
			in.Set(dirs[(i/3)%len(dirs)])
		}
		g.Step(in)

		if g.isSnakeAt(g.food) {
			t.Fatalf("tick %d: collectible %v inside the body", i, g.food)
		}
	}
}

func TestRestartOnlyLegalWhenOver(t *testing.T) {
	g := testGame(t, smallConfig(), 42)
	placeSnake(g, DirRight, Cell{3, 3}, Cell{2, 3})
	g.food = Cell{9, 9}
	g.score = 30

	// Restart while running is an invalid transition: ignored
	g.Step(dirInput(core.ActionRestart))
	if g.score != 30 || g.state != StateRunning {
		t.Fatal("restart while running should be ignored")
	}

	// Force game over, then restart works and rolls the high score forward
	placeSnake(g, DirLeft, Cell{0, 3})
	g.Step(core.NewInputFrame())
	if g.state != StateOver {
		t.Fatal("expected game over")
	}

	g.Step(dirInput(core.ActionRestart))
	if g.state != StateRunning {
		t.Errorf("state = %v, expected running after restart", g.state)
	}
	if g.score != 0 {
		t.Errorf("score = %d, expected reset to 0", g.score)
	}
	if g.highScore != 30 {
		t.Errorf("high score = %d, expected 30 carried over", g.highScore)
	}
	if len(g.snake) != 1 || g.snake[0] != g.grid.Center() {
		t.Error("restart should place a single segment at the grid center")
	}
	if g.direction != DirRight {
		t.Errorf("direction = %v, expected right after reset", g.direction)
	}
}

func TestRestartHeldMidGameStillAdvancesTick(t *testing.T) {
	g := testGame(t, smallConfig(), 42)
	placeSnake(g, DirRight, Cell{2, 5})
	g.food = Cell{0, 0}
	g.effects.Activate(EffectDoublePoints, 100)
	g.items = append(g.items, PowerUpItem{Cell: Cell{8, 8}, Kind: PowerUpExtend, TTL: 40})

	for i := 0; i < 3; i++ {
		g.Step(dirInput(core.ActionRestart))
	}

	if g.state != StateRunning {
		t.Fatalf("state = %v, expected still running", g.state)
	}
	if g.snake[0] != (Cell{5, 5}) {
		t.Errorf("head = %v, expected {5 5} after 3 ticks of held restart", g.snake[0])
	}
	if got := g.effects.Remaining(EffectDoublePoints); got != 97 {
		t.Errorf("modifier remaining = %d, expected 97", got)
	}
	if g.items[0].TTL != 37 {
		t.Errorf("item TTL = %d, expected 37", g.items[0].TTL)
	}
}

func TestStepBeforeResetIsInert(t *testing.T) {
	g := NewWithConfig(smallConfig())

	for _, a := range []core.Action{core.ActionRestart, core.ActionUp, core.ActionPause} {
		res := g.Step(dirInput(a))
		if res.State.GameOver || res.State.Paused {
			t.Errorf("action %v before Reset produced state %+v", a, res.State)
		}
	}
	if g.state != StateIdle {
		t.Errorf("state = %v, expected idle until Reset", g.state)
	}
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		g := testGame(t, smallConfig(), 12345)
		for i := 0; i < 300; i++ {
			in := core.NewInputFrame()
			switch i {
			case 20:
				in.Set(core.ActionDown)
			case 40:
				in.Set(core.ActionLeft)
			case 60:
				in.Set(core.ActionUp)
			}
			g.Step(in)
		}
		return g.Snapshot()
	}

	a, b := run(), run()

	if a.Tick != b.Tick || a.Score != b.Score || a.State != b.State {
		t.Errorf("run mismatch: %+v vs %+v", a, b)
	}
	if len(a.Body) != len(b.Body) || (len(a.Body) > 0 && a.Body[0] != b.Body[0]) {
		t.Errorf("body mismatch: %v vs %v", a.Body, b.Body)
	}
	if a.Food != b.Food {
		t.Errorf("food mismatch: %v vs %v", a.Food, b.Food)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	g := testGame(t, smallConfig(), 42)
	placeSnake(g, DirRight, Cell{5, 5}, Cell{4, 5})
	g.effects.Activate(EffectDoublePoints, 100)

	snap := g.Snapshot()
	snap.Body[0] = Cell{0, 0}

	if g.snake[0] != (Cell{5, 5}) {
		t.Error("mutating a snapshot must not touch the live body")
	}
	if len(snap.Effects) != 1 || snap.Effects[0].Effect != EffectDoublePoints {
		t.Errorf("snapshot effects = %v", snap.Effects)
	}
}

func TestModeIdentity(t *testing.T) {
	retro := New()
	if retro.ID() != "snake" || retro.Title() != "Retro Snake" {
		t.Errorf("retro mode identity = %q / %q", retro.ID(), retro.Title())
	}

	classic := NewClassic()
	if classic.ID() != "snake_classic" || classic.Title() != "Snake (Classic)" {
		t.Errorf("classic mode identity = %q / %q", classic.ID(), classic.Title())
	}
	if classic.cfg.PowerUpsEnabled {
		t.Error("classic mode must disable power-up spawning")
	}
}

func TestRender(t *testing.T) {
	g := testGame(t, smallConfig(), 42)
	g.items = append(g.items, PowerUpItem{Cell: Cell{1, 1}, Kind: PowerUpSpeedBoost, TTL: 100})

	screen := core.NewScreen(80, 30)
	g.Render(screen)

	content := screen.String()
	if len(content) == 0 {
		t.Fatal("rendered screen should not be empty")
	}
	// HUD names the mode
	if !strings.Contains(content, "Retro Snake") {
		t.Error("HUD should contain the mode title")
	}
}
