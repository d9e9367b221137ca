package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/orb-arena/engine"
	"github.com/lixenwraith/orb-arena/physics"
)

// recordingRenderer appends its tag to a shared call log.
type recordingRenderer struct {
	tag     string
	log     *[]string
	visible bool
}

func (r *recordingRenderer) Render(ctx *Context, screen tcell.Screen) {
	*r.log = append(*r.log, r.tag)
}

// gatedRenderer wraps recording with a VisibilityToggle.
type gatedRenderer struct {
	recordingRenderer
}

func (r *gatedRenderer) IsVisible() bool { return r.visible }

func newFrameScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Expected simulation screen to initialize, got %v", err)
	}
	screen.SetSize(80, 24)
	return screen
}

func frameSnapshot() *engine.Snapshot {
	return &engine.Snapshot{
		Tick:   42,
		ArenaW: 600,
		ArenaH: 400,
		Bodies: []engine.BodyState{
			{X: 300, Y: 200, VX: 1, Radius: 8, Color: physics.Color{R: 255, G: 80, B: 80}},
		},
		Zone:          physics.Rect{X: 150, Y: 100, W: 300, H: 200},
		ZoneOccupants: 0,
		ZoneCapacity:  1,
		Running:       true,
	}
}

// TestOrchestratorPriorityOrder verifies renderers run lowest priority
// first regardless of registration order.
func TestOrchestratorPriorityOrder(t *testing.T) {
	screen := newFrameScreen(t)
	defer screen.Fini()

	var log []string
	o := NewOrchestrator()
	o.Register(&recordingRenderer{tag: "overlay", log: &log}, PriorityOverlay)
	o.Register(&recordingRenderer{tag: "arena", log: &log}, PriorityArena)
	o.Register(&recordingRenderer{tag: "bodies", log: &log}, PriorityBodies)
	o.Register(&recordingRenderer{tag: "zone", log: &log}, PriorityZone)

	ctx := NewContext(frameSnapshot(), 80, 24)
	o.RenderFrame(ctx, screen)

	want := []string{"arena", "zone", "bodies", "overlay"}
	if len(log) != len(want) {
		t.Fatalf("Expected %d renderer calls, got %d: %v", len(want), len(log), log)
	}
	for i, tag := range want {
		if log[i] != tag {
			t.Errorf("Expected call %d to be %q, got %q", i, tag, log[i])
		}
	}
}

// TestOrchestratorStableOrderWithinPriority verifies equal priorities
// keep registration order.
func TestOrchestratorStableOrderWithinPriority(t *testing.T) {
	screen := newFrameScreen(t)
	defer screen.Fini()

	var log []string
	o := NewOrchestrator()
	o.Register(&recordingRenderer{tag: "first", log: &log}, PriorityBodies)
	o.Register(&recordingRenderer{tag: "second", log: &log}, PriorityBodies)
	o.Register(&recordingRenderer{tag: "third", log: &log}, PriorityBodies)

	o.RenderFrame(NewContext(frameSnapshot(), 80, 24), screen)

	want := []string{"first", "second", "third"}
	for i, tag := range want {
		if log[i] != tag {
			t.Errorf("Expected call %d to be %q, got %q", i, tag, log[i])
		}
	}
}

// TestOrchestratorSkipsInvisible verifies VisibilityToggle gating.
func TestOrchestratorSkipsInvisible(t *testing.T) {
	screen := newFrameScreen(t)
	defer screen.Fini()

	var log []string
	hidden := &gatedRenderer{recordingRenderer{tag: "hidden", log: &log, visible: false}}
	shown := &gatedRenderer{recordingRenderer{tag: "shown", log: &log, visible: true}}

	o := NewOrchestrator()
	o.Register(hidden, PriorityOverlay)
	o.Register(shown, PriorityOverlay)

	o.RenderFrame(NewContext(frameSnapshot(), 80, 24), screen)

	if len(log) != 1 || log[0] != "shown" {
		t.Errorf("Expected only the visible renderer to run, got %v", log)
	}
}

// TestFrameDrawsArenaBorder verifies the box corners land on the
// screen edges with the bottom row left for the status bar.
func TestFrameDrawsArenaBorder(t *testing.T) {
	screen := newFrameScreen(t)
	defer screen.Fini()

	o := NewOrchestrator()
	o.Register(NewArenaRenderer(), PriorityArena)
	o.RenderFrame(NewContext(frameSnapshot(), 80, 24), screen)

	checks := []struct {
		name string
		x, y int
		want rune
	}{
		{"Top left", 0, 0, tcell.RuneULCorner},
		{"Top right", 79, 0, tcell.RuneURCorner},
		{"Bottom left", 0, 22, tcell.RuneLLCorner},
		{"Bottom right", 79, 22, tcell.RuneLRCorner},
		{"Top edge", 40, 0, tcell.RuneHLine},
		{"Left edge", 0, 10, tcell.RuneVLine},
	}

	for _, c := range checks {
		r, _, _, _ := screen.GetContent(c.x, c.y)
		if r != c.want {
			t.Errorf("%s: expected rune %q at (%d,%d), got %q", c.name, c.want, c.x, c.y, r)
		}
	}

	// Status bar row stays clear of the border
	r, _, _, _ := screen.GetContent(0, 23)
	if r == tcell.RuneLLCorner || r == tcell.RuneVLine {
		t.Errorf("Expected no border on the status row, got %q", r)
	}
}

// TestFrameDrawsBodyGlyph verifies a body lands on its mapped cell
// with the size-selected glyph.
func TestFrameDrawsBodyGlyph(t *testing.T) {
	screen := newFrameScreen(t)
	defer screen.Fini()

	o := NewOrchestrator()
	o.Register(NewBodyRenderer(), PriorityBodies)
	o.RenderFrame(NewContext(frameSnapshot(), 80, 24), screen)

	// Arena 600x400 on an 78x21 interior: (300,200) -> (40,11)
	r, _, _, _ := screen.GetContent(40, 11)
	if r != 'o' {
		t.Errorf("Expected small body glyph 'o' at (40,11), got %q", r)
	}
}

// TestFrameBoldInsideZone verifies zone membership switches the body
// style to bold.
func TestFrameBoldInsideZone(t *testing.T) {
	screen := newFrameScreen(t)
	defer screen.Fini()

	snap := frameSnapshot()
	snap.Bodies[0].InZone = true

	o := NewOrchestrator()
	o.Register(NewBodyRenderer(), PriorityBodies)
	o.RenderFrame(NewContext(snap, 80, 24), screen)

	_, _, style, _ := screen.GetContent(40, 11)
	_, _, attrs := style.Decompose()
	if attrs&tcell.AttrBold == 0 {
		t.Error("Expected bold style for a body inside the zone")
	}
}

// TestFrameDrawsZoneOutline verifies the zone rect maps to the right
// cells and carries the occupancy label.
func TestFrameDrawsZoneOutline(t *testing.T) {
	screen := newFrameScreen(t)
	defer screen.Fini()

	o := NewOrchestrator()
	o.Register(NewZoneRenderer(), PriorityZone)
	o.RenderFrame(NewContext(frameSnapshot(), 80, 24), screen)

	// Zone {150,100,300,200} maps to corners (20,6) and (59,16)
	r, _, _, _ := screen.GetContent(20, 6)
	if r != tcell.RuneULCorner {
		t.Errorf("Expected zone corner at (20,6), got %q", r)
	}
	r, _, _, _ = screen.GetContent(59, 16)
	if r != tcell.RuneLRCorner {
		t.Errorf("Expected zone corner at (59,16), got %q", r)
	}

	// Label " 0/1 " starts one cell right of the corner
	r, _, _, _ = screen.GetContent(22, 6)
	if r != '0' {
		t.Errorf("Expected occupancy digit at (22,6), got %q", r)
	}
}

// TestFrameStatusBarContent verifies the bottom row badges.
func TestFrameStatusBarContent(t *testing.T) {
	screen := newFrameScreen(t)
	defer screen.Fini()

	o := NewOrchestrator()
	o.Register(NewStatusBarRenderer(), PriorityStatusBar)

	ctx := NewContext(frameSnapshot(), 80, 24)
	ctx.Muted = true
	o.RenderFrame(ctx, screen)

	readRow := func(y, from, n int) string {
		out := make([]rune, 0, n)
		for x := from; x < from+n; x++ {
			r, _, _, _ := screen.GetContent(x, y)
			out = append(out, r)
		}
		return string(out)
	}

	if got := readRow(23, 0, 6); got != " MUTE " {
		t.Errorf("Expected mute badge on the status row, got %q", got)
	}
	if got := readRow(23, 6, 9); got != " RUNNING " {
		t.Errorf("Expected state badge after the audio badge, got %q", got)
	}
}

// TestHelpOverlayToggle verifies the help panel renders only while
// toggled on.
func TestHelpOverlayToggle(t *testing.T) {
	screen := newFrameScreen(t)
	defer screen.Fini()

	help := NewHelpOverlay()
	o := NewOrchestrator()
	o.Register(help, PriorityOverlay)

	ctx := NewContext(frameSnapshot(), 80, 24)

	o.RenderFrame(ctx, screen)
	r, _, _, _ := screen.GetContent(40, 12)
	if r != ' ' {
		t.Errorf("Expected blank center before toggling help, got %q", r)
	}

	if on := help.Toggle(); !on {
		t.Fatal("Expected Toggle to report visible")
	}
	o.RenderFrame(ctx, screen)

	found := false
	for y := 0; y < 24 && !found; y++ {
		for x := 0; x < 79; x++ {
			r1, _, _, _ := screen.GetContent(x, y)
			r2, _, _, _ := screen.GetContent(x+1, y)
			if r1 == 'q' && r2 == ',' {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("Expected the quit binding to appear in the help panel")
	}

	if on := help.Toggle(); on {
		t.Fatal("Expected second Toggle to report hidden")
	}
}
