package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/orb-arena/audio"
	"github.com/lixenwraith/orb-arena/engine"
	"github.com/lixenwraith/orb-arena/physics"
	"github.com/lixenwraith/orb-arena/render"
)

// InputHandler translates terminal key events into engine commands.
// Terminals deliver key-down only, so steering keys toggle their
// direction flag; pressing a direction releases its opposite.
type InputHandler struct {
	eng   *engine.Engine
	sound *audio.SoundManager
	help  *render.HelpOverlay
	stats *render.StatsOverlay
}

func NewInputHandler(eng *engine.Engine, sound *audio.SoundManager, help *render.HelpOverlay, stats *render.StatsOverlay) *InputHandler {
	return &InputHandler{
		eng:   eng,
		sound: sound,
		help:  help,
		stats: stats,
	}
}

// HandleKey processes one key event. Returns false to quit.
func (h *InputHandler) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return false

	case tcell.KeyEscape:
		// Esc closes an open overlay before it quits
		if h.help.IsVisible() {
			h.help.Hide()
			return true
		}
		if h.stats.IsVisible() {
			h.stats.Hide()
			return true
		}
		return false

	case tcell.KeyUp:
		h.steer(physics.DirUp)
		return true
	case tcell.KeyDown:
		h.steer(physics.DirDown)
		return true
	case tcell.KeyLeft:
		h.steer(physics.DirLeft)
		return true
	case tcell.KeyRight:
		h.steer(physics.DirRight)
		return true

	case tcell.KeyRune:
		return h.handleRune(ev.Rune())
	}

	return true
}

func (h *InputHandler) handleRune(r rune) bool {
	switch r {
	case 'q':
		return false

	case ' ':
		h.eng.TogglePause()

	case 'a':
		h.eng.AddRandomBody()
	case 'A':
		h.eng.AddRandomBodies(10)

	case 'd':
		h.eng.RemoveLastBody()
	case 'D':
		h.eng.RemoveAllBodies()

	case 'c':
		h.eng.SetControlledBodyPresent(!h.eng.HasControlledBody())

	case 'h':
		h.steer(physics.DirLeft)
	case 'j':
		h.steer(physics.DirDown)
	case 'k':
		h.steer(physics.DirUp)
	case 'l':
		h.steer(physics.DirRight)
	case 'x':
		h.eng.ClearControlDirections()

	case '.':
		h.eng.Stop()

	case 'm':
		h.sound.ToggleMuted()

	case 's':
		h.stats.Toggle()
	case '?':
		h.help.Toggle()
	}

	return true
}

// steer toggles one direction flag and releases its opposite when
// engaging.
func (h *InputHandler) steer(d physics.Direction) {
	if h.eng.ControlDirectionHeld(d) {
		h.eng.SetControlDirection(d, false)
		return
	}
	h.eng.SetControlDirection(d, true)
	h.eng.SetControlDirection(oppositeDirection(d), false)
}

func oppositeDirection(d physics.Direction) physics.Direction {
	switch d {
	case physics.DirUp:
		return physics.DirDown
	case physics.DirDown:
		return physics.DirUp
	case physics.DirLeft:
		return physics.DirRight
	default:
		return physics.DirLeft
	}
}
