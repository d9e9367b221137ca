package render

import (
	"github.com/lixenwraith/orb-arena/engine"
)

// Context carries one frame's inputs: the snapshot being drawn and
// the viewport mapping from arena px to screen cells. The bottom row
// is reserved for the status bar and the outer ring of the remaining
// area for the border; bodies land in the interior.
type Context struct {
	Snap *engine.Snapshot

	// Screen dimensions in cells.
	Width  int
	Height int

	// Interior viewport: the cells px coordinates map onto.
	InteriorX int
	InteriorY int
	InteriorW int
	InteriorH int

	// px-to-cell scale factors.
	ScaleX float64
	ScaleY float64

	// App state surfaced on the status bar.
	Muted     bool
	SpawnerOn bool
}

// NewContext builds the frame context for a screen of the given size.
func NewContext(snap *engine.Snapshot, width, height int) *Context {
	c := &Context{
		Snap:      snap,
		Width:     width,
		Height:    height,
		InteriorX: 1,
		InteriorY: 1,
		InteriorW: width - 2,
		InteriorH: height - 3, // border rows plus the status bar
	}
	if c.InteriorW < 1 {
		c.InteriorW = 1
	}
	if c.InteriorH < 1 {
		c.InteriorH = 1
	}
	if snap.ArenaW > 0 {
		c.ScaleX = float64(c.InteriorW) / snap.ArenaW
	}
	if snap.ArenaH > 0 {
		c.ScaleY = float64(c.InteriorH) / snap.ArenaH
	}
	return c
}

// Cell maps an arena position to its screen cell, clamped to the
// interior.
func (c *Context) Cell(x, y float64) (int, int) {
	col := c.InteriorX + int(x*c.ScaleX)
	row := c.InteriorY + int(y*c.ScaleY)
	return c.clamp(col, row)
}

func (c *Context) clamp(col, row int) (int, int) {
	if col < c.InteriorX {
		col = c.InteriorX
	}
	if last := c.InteriorX + c.InteriorW - 1; col > last {
		col = last
	}
	if row < c.InteriorY {
		row = c.InteriorY
	}
	if last := c.InteriorY + c.InteriorH - 1; row > last {
		row = last
	}
	return col, row
}
