package platformer

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Visual characters for rendering
const (
	PlatformChar = '█'
	GoalChar     = '▓'
	PlayerChar   = '█'
	CoinChar     = 'o'
)

// Minimum screen size that still shows every platform.
const (
	MinScreenW = 32
	MinScreenH = 12
)

// hudRows is the number of rows above the playfield.
const hudRows = 1

// viewport maps world units to screen cells below the HUD.
type viewport struct {
	sx, sy float64
	rows   int
	cols   int
}

func newViewport(dst *core.Screen, worldW, worldH float64) viewport {
	cols := dst.Width()
	rows := dst.Height() - hudRows
	return viewport{
		sx:   float64(cols) / worldW,
		sy:   float64(rows) / worldH,
		cols: cols,
		rows: rows,
	}
}

// rect converts a world box to the cells it covers, at least one cell each way.
func (v viewport) rect(r core.RectF) core.Rect {
	x0 := int(math.Floor(r.X * v.sx))
	y0 := int(math.Floor(r.Y * v.sy))
	x1 := int(math.Ceil(r.Right() * v.sx))
	y1 := int(math.Ceil(r.Bottom() * v.sy))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return core.NewRect(x0, y0+hudRows, x1-x0, y1-y0)
}

// point converts a world point to a cell.
func (v viewport) point(x, y float64) (int, int) {
	cx := core.Clamp(int(x*v.sx), 0, v.cols-1)
	cy := int(y*v.sy) + hudRows
	return cx, cy
}

// Render draws the level, coins, player, HUD and overlays into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2, "Window too small")
		return
	}

	v := newViewport(dst, g.worldW, g.worldH)

	g.renderHUD(dst)

	for _, p := range g.level.Platforms {
		if p.IsGoal() {
			dst.FillRect(v.rect(p.Rect()), GoalChar, core.ColorGreen)
		} else {
			dst.FillRect(v.rect(p.Rect()), PlatformChar, core.ColorGray)
		}
	}

	for _, c := range g.coins {
		if c.Collected {
			continue
		}
		x, y := v.point(c.X, c.Y)
		dst.SetWithColor(x, y, CoinChar, core.ColorBrightYellow)
	}

	dst.FillRect(v.rect(g.player.Rect()), PlayerChar, core.ColorOrange)

	g.renderOverlay(dst)
}

// renderHUD draws the status line.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s  Coins: %d/%d  Falls: %d", g.level.Name, g.score, len(g.coins), g.falls)
	dst.DrawTextColor(0, 0, hud, core.ColorBrightWhite)

	hint := "tab: runs  q: quit "
	if x := dst.Width() - len(hint); x > len(hud) {
		dst.DrawTextColor(x, 0, hint, core.ColorGray)
	}
}

// renderOverlay draws the message banner and the modal.
func (g *Game) renderOverlay(dst *core.Screen) {
	if text, visible, persistent := g.overlay.Message(); visible {
		lines := []string{text}
		color := core.ColorCyan
		if persistent {
			lines = append(lines, "", "Enter or R to play again")
			color = core.ColorBrightGreen
		}
		drawPanel(dst, hudRows+1, lines, color)
	}

	if text, open := g.overlay.Modal(); open {
		lines := []string{text, "", "Esc/Enter: continue   R: restart"}
		drawPanel(dst, dst.Height()/2-len(lines)/2-1, lines, core.ColorBrightYellow)
	}
}

// drawPanel draws a bordered box centered horizontally, starting at row top.
func drawPanel(dst *core.Screen, top int, lines []string, color core.Color) {
	inner := 0
	for _, l := range lines {
		inner = core.Max(inner, len([]rune(l)))
	}
	inner = core.Min(inner, dst.Width()-4)

	w := inner + 4
	h := len(lines) + 2
	box := core.NewRect((dst.Width()-w)/2, top, w, h)

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, color)
	for i, l := range lines {
		runes := []rune(l)
		if len(runes) > inner {
			runes = runes[:inner]
		}
		x := box.X + 2 + (inner-len(runes))/2
		dst.DrawTextColor(x, top+1+i, string(runes), core.ColorBrightWhite)
	}
}
