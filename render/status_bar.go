package render

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
)

// StatusBarRenderer draws the bottom status row: audio badge, engine
// state, body count, zone occupancy, tick counter and frame rate.
type StatusBarRenderer struct {
	// FPS tracking
	frameCount    int
	lastFpsUpdate time.Time
	currentFps    int
}

func NewStatusBarRenderer() *StatusBarRenderer {
	return &StatusBarRenderer{
		lastFpsUpdate: time.Now(),
	}
}

func (s *StatusBarRenderer) Render(ctx *Context, screen tcell.Screen) {
	s.frameCount++
	now := time.Now()
	if now.Sub(s.lastFpsUpdate) >= time.Second {
		s.currentFps = s.frameCount
		s.frameCount = 0
		s.lastFpsUpdate = now
	}

	snap := ctx.Snap
	y := ctx.Height - 1

	for x := 0; x < ctx.Width; x++ {
		screen.SetContent(x, y, ' ', nil, StyleDefault)
	}

	x := 0

	// Audio badge, always first
	audioBg := RgbAudioUnmuted
	audioText := " SND "
	if ctx.Muted {
		audioBg = RgbAudioMuted
		audioText = " MUTE "
	}
	audioStyle := StyleDefault.Foreground(tcell.ColorBlack).Background(audioBg)
	drawText(screen, x, y, audioStyle, audioText)
	x += len(audioText)

	// Engine state badge
	var stateText string
	var stateBg tcell.Color
	switch {
	case snap.Paused:
		stateText = " PAUSED "
		stateBg = RgbStatePauseBg
	case snap.Running:
		stateText = " RUNNING "
		stateBg = RgbStateRunBg
	default:
		stateText = " IDLE "
		stateBg = RgbStateIdleBg
	}
	stateStyle := StyleDefault.Foreground(RgbStatusText).Background(stateBg).Bold(snap.Paused)
	drawText(screen, x, y, stateStyle, stateText)
	x += len(stateText) + 1

	drawText(screen, x, y, StyleDim, "bodies ")
	x += 7
	bodies := fmt.Sprintf("%d", snap.BodyCount())
	drawText(screen, x, y, StyleStatus, bodies)
	x += len(bodies) + 1

	if snap.Zone.W > 0 && snap.Zone.H > 0 {
		drawText(screen, x, y, StyleDim, "zone ")
		x += 5
		zone := fmt.Sprintf("%d/%d", snap.ZoneOccupants, snap.ZoneCapacity)
		drawText(screen, x, y, StyleStatus, zone)
		x += len(zone) + 1
	}

	if ctx.SpawnerOn {
		drawText(screen, x, y, StyleDim, "spawn ")
		x += 6
		drawText(screen, x, y, StyleStatus, "on")
		x += 3
	}

	// Right-aligned timing block
	right := fmt.Sprintf("tick %d  %.2fms  %dfps ",
		snap.Tick, float64(snap.TickDuration)/float64(time.Millisecond), s.currentFps)
	rx := ctx.Width - len(right)
	if rx > x {
		drawText(screen, rx, y, StyleDim, right)
	}
}
