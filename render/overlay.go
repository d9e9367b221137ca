package render

import (
	"fmt"
	"runtime"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/orb-arena/status"
)

const overlayMinWidth = 34

// keyBinding is one row of the help panel.
type keyBinding struct {
	key  string
	desc string
}

var helpBindings = []keyBinding{
	{"space", "pause / resume"},
	{"a / A", "add one body / add ten"},
	{"d / D", "remove last / remove all"},
	{"c", "toggle controlled body"},
	{"arrows, hjkl", "steer controlled body"},
	{"x", "release steering"},
	{".", "stop the simulation"},
	{"m", "mute audio"},
	{"s", "stats overlay"},
	{"?", "this help"},
	{"q, Esc", "quit"},
}

// HelpOverlay draws a centered key binding panel when toggled on.
type HelpOverlay struct {
	visible atomic.Bool
}

func NewHelpOverlay() *HelpOverlay {
	return &HelpOverlay{}
}

// Toggle flips visibility and reports the new state.
func (o *HelpOverlay) Toggle() bool {
	for {
		v := o.visible.Load()
		if o.visible.CompareAndSwap(v, !v) {
			return !v
		}
	}
}

func (o *HelpOverlay) Hide() { o.visible.Store(false) }

// IsVisible implements VisibilityToggle.
func (o *HelpOverlay) IsVisible() bool {
	return o.visible.Load()
}

func (o *HelpOverlay) Render(ctx *Context, screen tcell.Screen) {
	keyWidth := 0
	for _, b := range helpBindings {
		if len(b.key) > keyWidth {
			keyWidth = len(b.key)
		}
	}

	lines := make([]string, 0, len(helpBindings))
	for _, b := range helpBindings {
		lines = append(lines, fmt.Sprintf("%-*s  %s", keyWidth, b.key, b.desc))
	}

	drawPanel(ctx, screen, " controls ", lines, keyWidth)
}

// StatsOverlay dumps every registered metric, grouped by type, in a
// centered panel. Values are read live each frame.
type StatsOverlay struct {
	visible atomic.Bool
	reg     *status.Registry
}

func NewStatsOverlay(reg *status.Registry) *StatsOverlay {
	return &StatsOverlay{reg: reg}
}

// Toggle flips visibility and reports the new state.
func (o *StatsOverlay) Toggle() bool {
	for {
		v := o.visible.Load()
		if o.visible.CompareAndSwap(v, !v) {
			return !v
		}
	}
}

func (o *StatsOverlay) Hide() { o.visible.Store(false) }

// IsVisible implements VisibilityToggle.
func (o *StatsOverlay) IsVisible() bool {
	return o.visible.Load()
}

func (o *StatsOverlay) Render(ctx *Context, screen tcell.Screen) {
	lines := make([]string, 0, o.reg.TotalCount())

	o.reg.Labels.Range(func(key string, ptr *status.AtomicString) {
		lines = append(lines, fmt.Sprintf("%-22s %s", key, ptr.Load()))
	})
	o.reg.Counters.Range(func(key string, ptr *atomic.Int64) {
		lines = append(lines, fmt.Sprintf("%-22s %d", key, ptr.Load()))
	})
	o.reg.Gauges.Range(func(key string, ptr *status.AtomicFloat) {
		lines = append(lines, fmt.Sprintf("%-22s %.3f", key, ptr.Load()))
	})
	o.reg.Flags.Range(func(key string, ptr *atomic.Bool) {
		lines = append(lines, fmt.Sprintf("%-22s %t", key, ptr.Load()))
	})

	lines = append(lines, fmt.Sprintf("%-22s %d", "runtime.goroutines", runtime.NumGoroutine()))

	drawPanel(ctx, screen, " stats ", lines, 0)
}

// drawPanel fills a centered bordered box and writes lines inside it.
// Keys at the start of each line (keyWidth > 0) use the hint style.
func drawPanel(ctx *Context, screen tcell.Screen, title string, lines []string, keyWidth int) {
	width := overlayMinWidth
	for _, line := range lines {
		if len(line)+6 > width {
			width = len(line) + 6
		}
	}
	if width > ctx.Width-2 {
		width = ctx.Width - 2
	}
	height := len(lines) + 4
	if height > ctx.Height-2 {
		height = ctx.Height - 2
	}

	startX := (ctx.Width - width) / 2
	startY := (ctx.Height - 1 - height) / 2
	if startX < 0 {
		startX = 0
	}
	if startY < 0 {
		startY = 0
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			screen.SetContent(startX+x, startY+y, ' ', nil, StyleOverlay)
		}
	}

	borderStyle := StyleOverlay.Foreground(RgbBorder)
	for x := 1; x < width-1; x++ {
		screen.SetContent(startX+x, startY, tcell.RuneHLine, nil, borderStyle)
		screen.SetContent(startX+x, startY+height-1, tcell.RuneHLine, nil, borderStyle)
	}
	for y := 1; y < height-1; y++ {
		screen.SetContent(startX, startY+y, tcell.RuneVLine, nil, borderStyle)
		screen.SetContent(startX+width-1, startY+y, tcell.RuneVLine, nil, borderStyle)
	}
	screen.SetContent(startX, startY, tcell.RuneULCorner, nil, borderStyle)
	screen.SetContent(startX+width-1, startY, tcell.RuneURCorner, nil, borderStyle)
	screen.SetContent(startX, startY+height-1, tcell.RuneLLCorner, nil, borderStyle)
	screen.SetContent(startX+width-1, startY+height-1, tcell.RuneLRCorner, nil, borderStyle)

	drawText(screen, startX+2, startY, StyleHintKey, title)

	maxLines := height - 4
	for i, line := range lines {
		if i >= maxLines {
			break
		}
		y := startY + 2 + i
		x := startX + 3
		if keyWidth > 0 && len(line) > keyWidth {
			drawText(screen, x, y, StyleHintKey, line[:keyWidth])
			drawText(screen, x+keyWidth, y, StyleOverlay, line[keyWidth:])
		} else {
			drawText(screen, x, y, StyleOverlay, line)
		}
	}
}
