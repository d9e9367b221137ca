package render

import (
	"github.com/gdamore/tcell/v2"
)

// RGB color definitions for the simulation view
var (
	RgbBackground = tcell.NewRGBColor(20, 20, 30)    // Near-black blue
	RgbBorder     = tcell.NewRGBColor(110, 110, 140) // Muted steel
	RgbZoneOpen   = tcell.NewRGBColor(70, 160, 90)   // Green while capacity remains
	RgbZoneFull   = tcell.NewRGBColor(210, 140, 50)  // Amber when full
	RgbStatusText = tcell.NewRGBColor(220, 220, 220) // Light gray
	RgbStatusDim  = tcell.NewRGBColor(140, 140, 140) // Dimmed labels
	RgbPausedText = tcell.NewRGBColor(255, 200, 80)  // Pause banner
	RgbOverlayBg  = tcell.NewRGBColor(32, 34, 48)    // Overlay panel
	RgbOverlayKey = tcell.NewRGBColor(130, 190, 255) // Key hints

	RgbAudioMuted   = tcell.NewRGBColor(200, 60, 60) // Badge when muted
	RgbAudioUnmuted = tcell.NewRGBColor(60, 160, 60) // Badge when live
	RgbStateRunBg   = tcell.NewRGBColor(40, 110, 60)
	RgbStatePauseBg = tcell.NewRGBColor(150, 110, 30)
	RgbStateIdleBg  = tcell.NewRGBColor(70, 70, 90)
)

// Base styles
var (
	StyleDefault = tcell.StyleDefault.Background(RgbBackground).Foreground(RgbStatusText)
	StyleBorder  = StyleDefault.Foreground(RgbBorder)
	StyleStatus  = StyleDefault.Foreground(RgbStatusText)
	StyleDim     = StyleDefault.Foreground(RgbStatusDim)
	StylePaused  = StyleDefault.Foreground(RgbPausedText).Bold(true)
	StyleOverlay = tcell.StyleDefault.Background(RgbOverlayBg).Foreground(RgbStatusText)
	StyleHintKey = tcell.StyleDefault.Background(RgbOverlayBg).Foreground(RgbOverlayKey).Bold(true)
)

// Body glyph thresholds in px radius
const (
	glyphMediumRadius = 11
	glyphLargeRadius  = 16
)

// BodyGlyph picks the rune for a body. Size maps to visual weight;
// the controlled body is always '#'.
func BodyGlyph(radius int, controlled bool) rune {
	if controlled {
		return '#'
	}
	switch {
	case radius < glyphMediumRadius:
		return 'o'
	case radius < glyphLargeRadius:
		return 'O'
	default:
		return '@'
	}
}

// BodyColor converts a body's RGB triple to a tcell color.
func BodyColor(r, g, b uint8) tcell.Color {
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// drawText writes a string at a position, clipped to the screen.
func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	w, h := screen.Size()
	if y < 0 || y >= h {
		return
	}
	for i, r := range text {
		cx := x + i
		if cx < 0 || cx >= w {
			continue
		}
		screen.SetContent(cx, y, r, nil, style)
	}
}
