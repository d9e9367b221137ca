package render

import (
	"github.com/gdamore/tcell/v2"
)

// BodyRenderer draws every body in the snapshot as a single glyph at
// its mapped cell. Bodies inside the zone render bold.
type BodyRenderer struct{}

func NewBodyRenderer() *BodyRenderer {
	return &BodyRenderer{}
}

func (r *BodyRenderer) Render(ctx *Context, screen tcell.Screen) {
	for i := range ctx.Snap.Bodies {
		b := &ctx.Snap.Bodies[i]

		x, y := ctx.Cell(b.X, b.Y)
		style := StyleDefault.Foreground(BodyColor(b.Color.R, b.Color.G, b.Color.B))
		if b.InZone {
			style = style.Bold(true)
		}

		screen.SetContent(x, y, BodyGlyph(b.Radius, b.Controlled), nil, style)
	}
}
