package kokaton

import (
	"fmt"

	"github.com/vovakirdan/kokaton/internal/core"
)

// Minimum screen size the play field can be scaled onto.
const (
	MinScreenW = 40
	MinScreenH = 12
)

// Visual characters for rendering
const (
	BackgroundChar = '·'
	HazardChar     = '█'
)

// Score label position in world units, measured from the bottom-left corner.
const (
	scoreLabelX      = 100
	scoreLabelBottom = 50
)

// viewport maps world coordinates onto screen cells.
type viewport struct {
	sx, sy float64 // Cells per world unit
}

func newViewport(world core.Size, screenW, screenH int) viewport {
	return viewport{
		sx: float64(screenW) / float64(world.W),
		sy: float64(screenH) / float64(world.H),
	}
}

// cell converts a world point to a screen cell.
func (v viewport) cell(x, y int) (int, int) {
	return int(float64(x) * v.sx), int(float64(y) * v.sy)
}

// Render draws the current frame: background, score, explosions, player,
// hazards, projectiles, then the game over banner if the player was hit.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small")
		return
	}

	v := newViewport(g.world, dst.Width(), dst.Height())

	g.drawBackground(dst)
	g.drawScore(dst, v)

	for _, e := range g.explosions {
		g.drawSprite(dst, v, e.SpriteKey(), e.X, e.Y)
	}

	if g.player != nil {
		cx, cy := g.player.Rect.Center()
		g.drawSprite(dst, v, g.player.SpriteKey(), cx, cy)
	}

	for _, h := range g.hazards {
		cx, cy := h.Center()
		x, y := v.cell(cx, cy)
		r := float64(h.Radius)
		dst.DrawDisc(float64(x), float64(y), r*v.sx, r*v.sy, HazardChar, h.Color)
	}

	for _, p := range g.projectiles {
		cx, cy := p.Center()
		g.drawSprite(dst, v, SpriteProjectile, cx, cy)
	}

	if g.phase == core.PhaseGameOver {
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d", g.score.Value()))
	}
}

// drawBackground scatters faint dots over the play field.
func (g *Game) drawBackground(dst *core.Screen) {
	for y := 0; y < dst.Height(); y++ {
		for x := 0; x < dst.Width(); x++ {
			if (x*7+y*13)%29 == 0 {
				dst.SetColored(x, y, BackgroundChar, core.ColorGray)
			}
		}
	}
}

// drawScore renders the score label near the bottom-left of the world.
func (g *Game) drawScore(dst *core.Screen, v viewport) {
	x, y := v.cell(scoreLabelX, g.world.H-scoreLabelBottom)
	dst.DrawTextColored(x, core.Clamp(y, 0, dst.Height()-1), fmt.Sprintf("Score: %d", g.score.Value()), core.ColorBrightBlue)
}

// drawSprite draws the sprite for key centered on the world point (wx, wy).
func (g *Game) drawSprite(dst *core.Screen, v viewport, key SpriteKey, wx, wy int) {
	s := g.atlas.Get(key)
	x, y := v.cell(wx, wy)
	dst.DrawLines(x-s.Width()/2, y-s.Height()/2, s.Rows, s.Color)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	// Draw text
	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
