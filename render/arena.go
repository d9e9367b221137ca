package render

import (
	"github.com/gdamore/tcell/v2"
)

// ArenaRenderer draws the arena frame: a box around the interior
// region where bodies move.
type ArenaRenderer struct{}

func NewArenaRenderer() *ArenaRenderer {
	return &ArenaRenderer{}
}

func (r *ArenaRenderer) Render(ctx *Context, screen tcell.Screen) {
	if ctx.Width < 3 || ctx.Height < 3 {
		return
	}

	right := ctx.Width - 1
	bottom := ctx.Height - 2 // row above the status bar

	for x := 1; x < right; x++ {
		screen.SetContent(x, 0, tcell.RuneHLine, nil, StyleBorder)
		screen.SetContent(x, bottom, tcell.RuneHLine, nil, StyleBorder)
	}
	for y := 1; y < bottom; y++ {
		screen.SetContent(0, y, tcell.RuneVLine, nil, StyleBorder)
		screen.SetContent(right, y, tcell.RuneVLine, nil, StyleBorder)
	}

	screen.SetContent(0, 0, tcell.RuneULCorner, nil, StyleBorder)
	screen.SetContent(right, 0, tcell.RuneURCorner, nil, StyleBorder)
	screen.SetContent(0, bottom, tcell.RuneLLCorner, nil, StyleBorder)
	screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, StyleBorder)
}
