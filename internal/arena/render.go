package arena

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/haptic-arena/internal/core"
)

// Visual characters for rendering
const (
	ObstacleChar = '█'
	CursorChar   = '●'
	MeterOn      = '▮'
	MeterOff     = '▯'
	meterCells   = 10
)

// viewport maps world coordinates onto screen cells.
type viewport struct {
	sx, sy float64
}

func (a *Arena) viewport(cols, rows int) viewport {
	return viewport{
		sx: float64(cols) / a.world.X,
		sy: float64(rows) / a.world.Y,
	}
}

// ScreenToWorld maps the centre of screen cell (x, y) back into world
// coordinates for a screen of the given size. Cells on or below the status
// row clamp to the bottom edge of the world.
func (a *Arena) ScreenToWorld(width, height, x, y int) core.Vec2 {
	rows := height - 1
	if rows < 1 || width < 1 {
		return core.Vec2{}
	}
	vp := a.viewport(width, rows)
	x = core.Clamp(x, 0, width-1)
	y = core.Clamp(y, 0, rows-1)
	return core.Vec2{
		X: (float64(x) + 0.5) / vp.sx,
		Y: (float64(y) + 0.5) / vp.sy,
	}
}

// cellSpan returns the half-open cell range covering [lo, hi) world units.
// Every non-empty span covers at least one cell.
func cellSpan(lo, hi, scale float64) (int, int) {
	c0 := int(math.Floor(lo * scale))
	c1 := int(math.Ceil(hi * scale))
	if c1 <= c0 {
		c1 = c0 + 1
	}
	return c0, c1
}

// Render draws obstacles in declaration order, then the cursor on top, then
// the status line on the last row.
func (a *Arena) Render(dst *core.Screen) {
	dst.Clear()

	rows := dst.Height() - 1
	if rows < 1 || dst.Width() < 1 {
		return
	}
	vp := a.viewport(dst.Width(), rows)

	for _, o := range a.obstacles {
		x0, x1 := cellSpan(o.Rect.X, o.Rect.Right(), vp.sx)
		y0, y1 := cellSpan(o.Rect.Y, o.Rect.Bottom(), vp.sy)
		dst.FillRect(x0, core.Max(y0, 0), x1, core.Min(y1, rows), ObstacleChar, o.Color)
	}

	a.drawCursor(dst, vp, rows)
	a.drawStatus(dst, rows)
}

// drawCursor rasterises the circle: a cell is lit when its centre lies
// inside the circle. A cursor smaller than a cell still lights its centre cell.
func (a *Arena) drawCursor(dst *core.Screen, vp viewport, rows int) {
	c := a.actor.Center()
	r := a.actor.Radius

	x0, x1 := cellSpan(c.X-r, c.X+r, vp.sx)
	y0, y1 := cellSpan(c.Y-r, c.Y+r, vp.sy)

	lit := false
	for cy := core.Max(y0, 0); cy < core.Min(y1, rows); cy++ {
		for cx := x0; cx < x1; cx++ {
			p := core.Vec2{X: (float64(cx) + 0.5) / vp.sx, Y: (float64(cy) + 0.5) / vp.sy}
			if p.Sub(c).Len() <= r {
				dst.SetCell(cx, cy, CursorChar, a.actor.Color)
				lit = true
			}
		}
	}

	if !lit {
		cx := int(math.Floor(c.X * vp.sx))
		cy := int(math.Floor(c.Y * vp.sy))
		if cy >= 0 && cy < rows {
			dst.SetCell(cx, cy, CursorChar, a.actor.Color)
		}
	}
}

// drawStatus writes the controller state, rumble meter and contact on row y.
func (a *Arena) drawStatus(dst *core.Screen, y int) {
	x := 0
	write := func(text string, c core.Color) {
		dst.DrawTextColor(x, y, text, c)
		x += len([]rune(text))
	}

	if a.title != "" {
		write(a.title, core.ColorBrightWhite)
		write(" │ ", core.ColorGray)
	}

	write(a.backend+" ", core.ColorDefault)
	if a.connected {
		write("connected", core.ColorGreen)
	} else {
		write("no controller", core.ColorRed)
	}
	write(" │ ", core.ColorGray)

	write("rumble "+RumbleMeter(a.last.Rumble), core.ColorOrange)
	write(fmt.Sprintf(" %.2f", a.last.Rumble), core.ColorDefault)

	if a.last.Hit >= 0 {
		o := a.obstacles[a.last.Hit]
		write(" │ ", core.ColorGray)
		label := fmt.Sprintf("touching %s %.2f", o.Kind, o.Intensity)
		if o.Bouncy {
			label += " (bouncy)"
		}
		write(label, o.Color)
	}
}

// RumbleMeter renders an intensity in [0,1] as a ten-cell bar.
func RumbleMeter(level float64) string {
	n := int(math.Round(core.ClampF(level, 0, 1) * meterCells))
	return strings.Repeat(string(MeterOn), n) + strings.Repeat(string(MeterOff), meterCells-n)
}
