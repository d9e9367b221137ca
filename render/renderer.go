package render

import (
	"github.com/gdamore/tcell/v2"
)

// Priority determines render order. Lower values render first.
type Priority int

const (
	PriorityArena Priority = iota
	PriorityZone
	PriorityBodies
	PriorityStatusBar
	PriorityOverlay
)

// Renderer is implemented by every visual layer.
type Renderer interface {
	Render(ctx *Context, screen tcell.Screen)
}

// VisibilityToggle is optionally implemented for runtime show/hide.
type VisibilityToggle interface {
	IsVisible() bool
}
