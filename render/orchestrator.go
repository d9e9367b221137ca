package render

import (
	"slices"

	"github.com/gdamore/tcell/v2"
)

type rendererEntry struct {
	renderer Renderer
	priority Priority
}

// Orchestrator owns the render pipeline: layers registered by
// priority, drawn back to front each frame.
type Orchestrator struct {
	renderers []rendererEntry
}

// NewOrchestrator creates an empty pipeline.
func NewOrchestrator() *Orchestrator {
	return &Orchestrator{
		renderers: make([]rendererEntry, 0, 8),
	}
}

// Register adds a renderer at the given priority. Equal priorities
// keep registration order.
func (o *Orchestrator) Register(r Renderer, priority Priority) {
	pos := slices.IndexFunc(o.renderers, func(e rendererEntry) bool {
		return e.priority > priority
	})
	if pos < 0 {
		pos = len(o.renderers)
	}
	o.renderers = slices.Insert(o.renderers, pos, rendererEntry{renderer: r, priority: priority})
}

// RenderFrame executes the pipeline: clear, draw all visible layers,
// show.
func (o *Orchestrator) RenderFrame(ctx *Context, screen tcell.Screen) {
	screen.Fill(' ', StyleDefault)

	for _, entry := range o.renderers {
		if vt, ok := entry.renderer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		entry.renderer.Render(ctx, screen)
	}

	screen.Show()
}
