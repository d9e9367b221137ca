package engine

import (
	"time"

	"github.com/lixenwraith/orb-arena/physics"
)

// BodyState is the published per-body view: plain values, safe to read
// from any goroutine, never aliased to live engine state.
type BodyState struct {
	X, Y       float64
	VX, VY     float64
	Radius     int
	Color      physics.Color
	Impacts    int
	Controlled bool
	InZone     bool
}

// Snapshot is the engine's published view of one consistent moment:
// rebuilt after every tick and after structural commands, swapped in
// atomically. Readers hold a snapshot as long as they like; it never
// mutates.
type Snapshot struct {
	Tick          uint64
	Bodies        []BodyState
	ArenaW        float64
	ArenaH        float64
	Zone          physics.Rect
	ZoneOccupants int
	ZoneCapacity  int
	Running       bool
	Paused        bool
	TickDuration  time.Duration
}

// BodyCount returns the number of bodies in the snapshot.
func (s *Snapshot) BodyCount() int {
	return len(s.Bodies)
}
