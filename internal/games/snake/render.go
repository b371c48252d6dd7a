package snake

import (
	"fmt"

	"github.com/vovakirdan/retro-snake/internal/core"
)

// Render draws the game to the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderFrame(dst)
	g.renderFood(dst)
	g.renderItems(dst)
	g.renderSnake(dst)

	switch {
	case g.state == StateOver && g.won:
		g.renderOverlay(dst, "YOU WIN!", fmt.Sprintf("Final Score: %d", g.score))
	case g.state == StateOver && g.score > g.highScore:
		g.renderOverlay(dst, "GAME OVER - NEW HIGH SCORE!", "Press R to play again")
	case g.state == StateOver:
		g.renderOverlay(dst, "GAME OVER", "Press R to play again")
	case g.state == StatePaused:
		g.renderOverlay(dst, "PAUSED", "Press P to resume")
	}
}

// renderHUD draws the top status bar: score, best, level, speed, and the
// remaining seconds of every active modifier.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s | Score: %d  Best: %d  Level: %d  Speed: %d",
		g.Title(), g.score, core.Max(g.highScore, g.score), g.diff.Level(), g.diff.Speed())
	dst.DrawText(0, 0, hud)

	x := len(hud) + 2
	for e := EffectType(0); e < EffectCount; e++ {
		if !g.effects.Active(e) {
			continue
		}
		// Ceiling of the remaining seconds at 60 ticks/s
		label := fmt.Sprintf("[%s %ds]", e, g.effects.Remaining(e)/60+1)
		dst.DrawTextColored(x, 0, label, core.ColorMagenta)
		x += len(label) + 1
	}

	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderFrame draws the border around the playfield.
func (g *Game) renderFrame(dst *core.Screen) {
	dst.DrawBox(core.NewRect(g.mapOffsetX-1, g.mapOffsetY-1, g.grid.Width+2, g.grid.Height+2))
}

// renderSnake draws the body, head first. Gold while invincible.
func (g *Game) renderSnake(dst *core.Screen) {
	headColor, bodyColor := core.ColorLime, core.ColorGreen
	if g.effects.Active(EffectInvincibility) {
		headColor, bodyColor = core.ColorGold, core.ColorBrightYellow
	}

	for i, seg := range g.snake {
		x := g.mapOffsetX + seg.X
		y := g.mapOffsetY + seg.Y
		if i == 0 {
			dst.SetWithColor(x, y, 'O', headColor)
		} else {
			dst.SetWithColor(x, y, 'o', bodyColor)
		}
	}
}

// renderFood draws the collectible with a two-phase pulse.
func (g *Game) renderFood(dst *core.Screen) {
	glyph := '●'
	if g.tick/15%2 == 1 {
		glyph = '◉'
	}
	dst.SetWithColor(g.mapOffsetX+g.food.X, g.mapOffsetY+g.food.Y, glyph, core.ColorRed)
}

// renderItems draws pending power-ups, blinking during their final second.
func (g *Game) renderItems(dst *core.Screen) {
	for _, it := range g.items {
		if it.TTL < 60 && it.Blink%10 < 5 {
			continue
		}
		dst.SetWithColor(g.mapOffsetX+it.Cell.X, g.mapOffsetY+it.Cell.Y, it.Kind.Glyph(), it.Kind.Color())
	}
}

// renderOverlay draws a centered boxed message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w, h := dst.Width(), dst.Height()

	boxW := core.Max(len(line1), len(line2)) + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.FillRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
