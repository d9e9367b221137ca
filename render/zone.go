package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// ZoneRenderer draws the capacity zone outline with an occupancy
// label. Open zones render green, full zones amber.
type ZoneRenderer struct{}

func NewZoneRenderer() *ZoneRenderer {
	return &ZoneRenderer{}
}

func (r *ZoneRenderer) Render(ctx *Context, screen tcell.Screen) {
	snap := ctx.Snap
	if snap.Zone.W <= 0 || snap.Zone.H <= 0 {
		return
	}

	style := StyleDefault.Foreground(RgbZoneOpen)
	if snap.ZoneOccupants >= snap.ZoneCapacity {
		style = StyleDefault.Foreground(RgbZoneFull)
	}

	x0, y0 := ctx.Cell(snap.Zone.X, snap.Zone.Y)
	x1, y1 := ctx.Cell(snap.Zone.MaxX(), snap.Zone.MaxY())
	if x1 <= x0 || y1 <= y0 {
		// Zone collapses below one cell at this scale; mark the spot.
		screen.SetContent(x0, y0, '+', nil, style)
		return
	}

	for x := x0 + 1; x < x1; x++ {
		screen.SetContent(x, y0, tcell.RuneHLine, nil, style)
		screen.SetContent(x, y1, tcell.RuneHLine, nil, style)
	}
	for y := y0 + 1; y < y1; y++ {
		screen.SetContent(x0, y, tcell.RuneVLine, nil, style)
		screen.SetContent(x1, y, tcell.RuneVLine, nil, style)
	}

	screen.SetContent(x0, y0, tcell.RuneULCorner, nil, style)
	screen.SetContent(x1, y0, tcell.RuneURCorner, nil, style)
	screen.SetContent(x0, y1, tcell.RuneLLCorner, nil, style)
	screen.SetContent(x1, y1, tcell.RuneLRCorner, nil, style)

	label := fmt.Sprintf(" %d/%d ", snap.ZoneOccupants, snap.ZoneCapacity)
	drawText(screen, x0+1, y0, style, label)
}
