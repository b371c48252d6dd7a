package snake

import "errors"

// ErrGridExhausted is reported when no free cell remains for placement.
// The session treats it as a win rather than retrying forever.
var ErrGridExhausted = errors.New("snake: no free cell left on the grid")

// freeCells collects every grid cell not excluded by the given predicate.
// Uniform sampling over the collected list both terminates and avoids the
// long-tail retries of rejection sampling on a crowded board.
func (g *Game) freeCells(exclude func(Cell) bool) []Cell {
	cells := make([]Cell, 0, g.grid.Area())
	for y := 0; y < g.grid.Height; y++ {
		for x := 0; x < g.grid.Width; x++ {
			c := Cell{X: x, Y: y}
			if !exclude(c) {
				cells = append(cells, c)
			}
		}
	}
	return cells
}

// spawnFood places the collectible on a uniformly random cell outside the
// snake body. Returns ErrGridExhausted when the body fills the grid.
func (g *Game) spawnFood() error {
	free := g.freeCells(g.isSnakeAt)
	if len(free) == 0 {
		return ErrGridExhausted
	}
	g.food = free[g.rng.Intn(len(free))]
	return nil
}

// spawnPowerUp places a new power-up item of a uniformly random kind on a
// cell occupied by neither the snake, the collectible, nor another item.
// When the board has no room the spawn cycle is simply skipped.
func (g *Game) spawnPowerUp() {
	free := g.freeCells(func(c Cell) bool {
		return g.isSnakeAt(c) || c == g.food || g.itemAt(c) != nil
	})
	if len(free) == 0 {
		return
	}

	g.items = append(g.items, PowerUpItem{
		Cell: free[g.rng.Intn(len(free))],
		Kind: PowerUpKind(g.rng.Intn(int(PowerUpKindCount))),
		TTL:  g.cfg.ItemTTLTicks,
	})
}

// isSnakeAt reports whether any body segment occupies the cell.
func (g *Game) isSnakeAt(c Cell) bool {
	for _, seg := range g.snake {
		if seg == c {
			return true
		}
	}
	return false
}

// itemAt returns the pending power-up item at the cell, or nil.
func (g *Game) itemAt(c Cell) *PowerUpItem {
	for i := range g.items {
		if g.items[i].Cell == c {
			return &g.items[i]
		}
	}
	return nil
}
