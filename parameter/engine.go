package parameter

import "time"

// Simulation & Render Timing
const (
	// TickInterval is the simulation loop cadence (~60Hz)
	TickInterval = 16 * time.Millisecond

	// TickMillis is the logical integration step in milliseconds. Physical
	// state is expressed in px/ms, so every tick advances physics by this
	// fixed amount regardless of measured wall time.
	TickMillis = 16.0

	// MinSleep is the floor for inter-tick sleep after subtracting the
	// measured tick duration from TickInterval
	MinSleep = time.Millisecond

	// FrameInterval is the terminal redraw cadence (~60 FPS)
	FrameInterval = 16 * time.Millisecond
)

// Event Queue
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 2048

	// EventBufferMask is the bitmask for fast modulo operations (2048 - 1)
	EventBufferMask = EventQueueSize - 1
)

// Spatial Grid
const (
	// GridCellSize is the broad-phase cell edge in px. Pair coverage over
	// adjacent cells only holds while no body radius exceeds half of this.
	GridCellSize = 40
)

// Worker stepping strategy
const (
	// DefaultWorkers is the pool size when none is configured
	DefaultWorkers = 4

	// WorkerChunkMin is the smallest body index range dispatched per task;
	// below this, task overhead outweighs the parallelism
	WorkerChunkMin = 16
)
