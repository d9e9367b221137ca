package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/orb-arena/event"
	"github.com/lixenwraith/orb-arena/parameter"
	"github.com/lixenwraith/orb-arena/physics"
	"github.com/lixenwraith/orb-arena/status"
	"github.com/lixenwraith/orb-arena/vmath"
)

// Options configures a new Engine. Zero values fall back to defaults.
type Options struct {
	ArenaWidth  float64
	ArenaHeight float64

	// ZoneCapacity is the initial occupant limit; clamped to 1.
	ZoneCapacity int

	// ParallelStepping selects the worker-pool strategy for the
	// per-body phase. Chosen once here; the engine never switches
	// strategies mid-run.
	ParallelStepping bool
	Workers          int

	// Seed fixes the spawn randomization; zero seeds from the clock.
	Seed uint64

	// Events and Status may be shared with other producers; created
	// internally when nil.
	Events *event.Queue
	Status *status.Registry
}

// Engine owns the simulation: the body registry, the zone, the broad
// phase, and the tick loop. The loop goroutine is the only writer of
// kinetic and zone state; commands from other goroutines serialize
// against it on the engine mutex and take effect between ticks.
// Readers get consistent state through Snapshot without locking.
//
// The loop runs only while bodies exist: the first insertion starts
// it, emptying the registry (or an explicit Stop) ends it, and a later
// insertion starts a fresh one.
type Engine struct {
	mu   sync.Mutex
	cond *sync.Cond

	registry *Registry
	grid     *SpatialGrid
	zone     *ZoneTracker
	pool     *stepPool
	rng      *vmath.FastRand
	events   *event.Queue
	status   *status.Registry

	arenaW     float64
	arenaH     float64
	controlled *physics.Body

	running  bool
	paused   bool
	closed   bool
	stopCh   chan struct{}
	loopDone chan struct{}
	tick     uint64

	listenersMu sync.Mutex
	listeners   atomic.Pointer[[]func()]

	snap          atomic.Pointer[Snapshot]
	lastTickNanos atomic.Int64

	// Cached metric pointers; the tick loop writes these directly.
	statTicks      *atomic.Int64
	statBodies     *atomic.Int64
	statCollisions *atomic.Int64
	statRemoved    *atomic.Int64
	statAdmits     *atomic.Int64
	statBounces    *atomic.Int64
	statOccupants  *atomic.Int64
	statTickMs     *status.AtomicFloat
	statEnergy     *status.AtomicFloat
	statState      *status.AtomicString
}

// New creates an engine in the idle state. No goroutine runs until the
// first body is added.
func New(opts Options) *Engine {
	w, h := opts.ArenaWidth, opts.ArenaHeight
	if w <= 0 {
		w = parameter.DefaultArenaWidth
	}
	if h <= 0 {
		h = parameter.DefaultArenaHeight
	}
	if w < parameter.MinArenaWidth {
		w = parameter.MinArenaWidth
	}
	if h < parameter.MinArenaHeight {
		h = parameter.MinArenaHeight
	}

	e := &Engine{
		registry: NewRegistry(),
		grid:     NewSpatialGrid(parameter.GridCellSize),
		zone:     NewZoneTracker(opts.ZoneCapacity),
		rng:      vmath.NewFastRand(opts.Seed),
		events:   opts.Events,
		status:   opts.Status,
		arenaW:   w,
		arenaH:   h,
	}
	e.cond = sync.NewCond(&e.mu)
	if e.events == nil {
		e.events = event.NewQueue()
	}
	if e.status == nil {
		e.status = status.NewRegistry()
	}
	if opts.ParallelStepping {
		e.pool = newStepPool(opts.Workers)
	}

	empty := make([]func(), 0)
	e.listeners.Store(&empty)

	e.statTicks = e.status.Counters.Get("engine.ticks")
	e.statBodies = e.status.Counters.Get("engine.bodies")
	e.statCollisions = e.status.Counters.Get("engine.collisions")
	e.statRemoved = e.status.Counters.Get("engine.removed")
	e.statAdmits = e.status.Counters.Get("zone.admits")
	e.statBounces = e.status.Counters.Get("zone.bounces")
	e.statOccupants = e.status.Counters.Get("zone.occupants")
	e.statTickMs = e.status.Gauges.Get("engine.tick_ms")
	e.statEnergy = e.status.Gauges.Get("engine.energy")
	e.statState = e.status.Labels.Get("engine.state")
	e.status.Flags.Get("engine.parallel").Store(opts.ParallelStepping)
	e.statState.Store("idle")

	e.mu.Lock()
	e.publishSnapshotLocked()
	e.mu.Unlock()
	return e
}

// Events returns the engine's event queue. Single consumer.
func (e *Engine) Events() *event.Queue { return e.events }

// Status returns the metrics registry the engine writes to.
func (e *Engine) Status() *status.Registry { return e.status }

// Snapshot returns the most recently published simulation view.
// Never nil; safe from any goroutine.
func (e *Engine) Snapshot() *Snapshot {
	return e.snap.Load()
}

// BodyCount returns the current body count, controlled body included.
func (e *Engine) BodyCount() int {
	return e.registry.Len()
}

// LastTickDuration returns the measured wall time of the latest tick.
func (e *Engine) LastTickDuration() time.Duration {
	return time.Duration(e.lastTickNanos.Load())
}

// AddListener registers fn to run after every tick and after
// structural changes. Callbacks run on the engine or command
// goroutine and must not block.
func (e *Engine) AddListener(fn func()) {
	e.listenersMu.Lock()
	defer e.listenersMu.Unlock()

	cur := *e.listeners.Load()
	next := make([]func(), 0, len(cur)+1)
	next = append(next, cur...)
	next = append(next, fn)
	e.listeners.Store(&next)
}

func (e *Engine) notifyListeners() {
	for _, fn := range *e.listeners.Load() {
		fn()
	}
}

// AddBody spawns one passive body. A positive radius is used as given;
// zero or negative draws a random radius. Starts the loop when idle.
func (e *Engine) AddBody(radius int) {
	e.mu.Lock()
	zone := e.zone.Rect(e.arenaW, e.arenaH)
	var b *physics.Body
	if radius > 0 {
		b = physics.NewBodyWithRadius(e.rng, radius, e.arenaW, e.arenaH, zone)
	} else {
		b = physics.NewBody(e.rng, e.arenaW, e.arenaH, zone)
	}
	e.registry.Append(b)
	e.startLoopLocked()
	e.publishSnapshotLocked()
	tick := e.tick
	e.mu.Unlock()

	e.events.Push(event.Event{Type: event.TypeBodyAdded, Tick: tick, Value: 1})
	e.notifyListeners()
}

// AddRandomBody spawns one passive body with a random radius.
func (e *Engine) AddRandomBody() {
	e.AddBody(0)
}

// AddRandomBodies spawns n random bodies in one registry publication
// and one notification.
func (e *Engine) AddRandomBodies(n int) {
	if n <= 0 {
		return
	}
	e.mu.Lock()
	zone := e.zone.Rect(e.arenaW, e.arenaH)
	batch := make([]*physics.Body, n)
	for i := range batch {
		batch[i] = physics.NewBody(e.rng, e.arenaW, e.arenaH, zone)
	}
	e.registry.Append(batch...)
	e.startLoopLocked()
	e.publishSnapshotLocked()
	tick := e.tick
	e.mu.Unlock()

	e.events.Push(event.Event{Type: event.TypeBodyAdded, Tick: tick, Value: n})
	e.notifyListeners()
}

// RemoveLastBody removes the most recently added passive body. The
// controlled body is never the one removed. Returns true if a body
// was removed.
func (e *Engine) RemoveLastBody() bool {
	e.mu.Lock()
	removed := e.registry.RemoveLastPassive()
	if removed == nil {
		e.mu.Unlock()
		return false
	}
	e.zone.Forget(removed)
	if e.registry.Len() == 0 {
		e.stopLoopLocked()
	}
	e.publishSnapshotLocked()
	tick := e.tick
	e.mu.Unlock()

	e.events.Push(event.Event{Type: event.TypeBodyRemoved, Tick: tick, Value: 1})
	e.notifyListeners()
	return true
}

// RemoveAllBodies clears the registry, controlled body included, and
// stops the loop. Returns the number of bodies removed.
func (e *Engine) RemoveAllBodies() int {
	e.mu.Lock()
	cleared := e.registry.Clear()
	e.controlled = nil
	e.zone.Reset()
	e.stopLoopLocked()
	e.publishSnapshotLocked()
	tick := e.tick
	e.mu.Unlock()

	if len(cleared) > 0 {
		e.events.Push(event.Event{Type: event.TypeBodyRemoved, Tick: tick, Value: len(cleared)})
	}
	e.notifyListeners()
	return len(cleared)
}

// HasControlledBody reports whether the player body is present.
func (e *Engine) HasControlledBody() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.controlled != nil
}

// SetControlledBodyPresent adds or removes the player body. Adding
// when present and removing when absent are no-ops. The fresh body
// spawns centered and at rest.
func (e *Engine) SetControlledBodyPresent(present bool) {
	e.mu.Lock()
	switch {
	case present && e.controlled == nil:
		b := physics.NewControlledBody(e.arenaW, e.arenaH)
		e.controlled = b
		e.registry.Append(b)
		e.startLoopLocked()
		e.publishSnapshotLocked()
		tick := e.tick
		e.mu.Unlock()
		e.events.Push(event.Event{Type: event.TypeBodyAdded, Tick: tick, Value: 1})
		e.notifyListeners()
	case !present && e.controlled != nil:
		b := e.controlled
		e.controlled = nil
		e.registry.Remove(b)
		e.zone.Forget(b)
		if e.registry.Len() == 0 {
			e.stopLoopLocked()
		}
		e.publishSnapshotLocked()
		tick := e.tick
		e.mu.Unlock()
		e.events.Push(event.Event{Type: event.TypeBodyRemoved, Tick: tick, Value: 1})
		e.notifyListeners()
	default:
		e.mu.Unlock()
	}
}

// SetControlDirection updates one steering flag on the controlled
// body. No-op when the controlled body is absent.
func (e *Engine) SetControlDirection(d physics.Direction, pressed bool) {
	e.mu.Lock()
	b := e.controlled
	e.mu.Unlock()
	if b != nil {
		b.SetDirection(d, pressed)
	}
}

// ControlDirectionHeld reports one steering flag's state.
func (e *Engine) ControlDirectionHeld(d physics.Direction) bool {
	e.mu.Lock()
	b := e.controlled
	e.mu.Unlock()
	return b != nil && b.DirectionHeld(d)
}

// ClearControlDirections releases every steering flag.
func (e *Engine) ClearControlDirections() {
	e.mu.Lock()
	b := e.controlled
	e.mu.Unlock()
	if b != nil {
		b.ClearDirections()
	}
}

// SetArenaSize resizes the arena, clamped to the minimum. Bodies left
// outside are clamped back by the next tick's wall pass.
func (e *Engine) SetArenaSize(w, h float64) {
	if w < parameter.MinArenaWidth {
		w = parameter.MinArenaWidth
	}
	if h < parameter.MinArenaHeight {
		h = parameter.MinArenaHeight
	}
	e.mu.Lock()
	e.arenaW = w
	e.arenaH = h
	e.publishSnapshotLocked()
	e.mu.Unlock()
	e.notifyListeners()
}

// ArenaSize returns the current arena dimensions in px.
func (e *Engine) ArenaSize() (w, h float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.arenaW, e.arenaH
}

// SetZoneRect pins the zone to an explicit rectangle.
func (e *Engine) SetZoneRect(x, y, w, h float64) {
	e.mu.Lock()
	e.zone.SetRect(physics.Rect{X: x, Y: y, W: w, H: h})
	e.publishSnapshotLocked()
	e.mu.Unlock()
	e.notifyListeners()
}

// ClearZoneRect returns the zone to tracking the arena dimensions.
func (e *Engine) ClearZoneRect() {
	e.mu.Lock()
	e.zone.ClearRect()
	e.publishSnapshotLocked()
	e.mu.Unlock()
	e.notifyListeners()
}

// SetZoneCapacity updates the occupant limit, clamped to 1. Excess
// occupants are evicted newest-first.
func (e *Engine) SetZoneCapacity(n int) {
	e.mu.Lock()
	e.zone.SetCapacity(n)
	e.publishSnapshotLocked()
	e.mu.Unlock()
	e.notifyListeners()
}

// ZoneOccupancy returns the current occupant count and capacity.
func (e *Engine) ZoneOccupancy() (occupants, capacity int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.zone.OccupantCount(), e.zone.Capacity()
}

// Pause suspends stepping. The loop blocks on the pause condition
// without burning cycles; body state freezes in place. Idempotent,
// and the flag persists across idle periods.
func (e *Engine) Pause() {
	e.mu.Lock()
	if e.paused {
		e.mu.Unlock()
		return
	}
	e.paused = true
	e.statState.Store(e.stateLocked())
	e.publishSnapshotLocked()
	tick := e.tick
	e.mu.Unlock()

	e.events.Push(event.Event{Type: event.TypePaused, Tick: tick})
	e.notifyListeners()
}

// Resume lifts a pause and wakes the loop. Idempotent.
func (e *Engine) Resume() {
	e.mu.Lock()
	if !e.paused {
		e.mu.Unlock()
		return
	}
	e.paused = false
	e.cond.Broadcast()
	e.statState.Store(e.stateLocked())
	e.publishSnapshotLocked()
	tick := e.tick
	e.mu.Unlock()

	e.events.Push(event.Event{Type: event.TypeResumed, Tick: tick})
	e.notifyListeners()
}

// TogglePause flips the pause state and returns the new value.
func (e *Engine) TogglePause() bool {
	e.mu.Lock()
	paused := e.paused
	e.mu.Unlock()
	if paused {
		e.Resume()
		return false
	}
	e.Pause()
	return true
}

// IsPaused reports the pause flag.
func (e *Engine) IsPaused() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.paused
}

// IsRunning reports whether the tick loop is active.
func (e *Engine) IsRunning() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.running
}

// Stop ends the tick loop and waits for it to exit. Body state is left
// as-is; a later insertion starts a fresh loop.
func (e *Engine) Stop() {
	e.mu.Lock()
	e.stopLoopLocked()
	e.statState.Store(e.stateLocked())
	done := e.loopDone
	e.mu.Unlock()

	if done != nil {
		<-done
	}
}

// Close shuts the engine down for good: stops the loop, waits for it,
// and releases the worker pool. The loop never restarts after Close.
func (e *Engine) Close() {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.closed = true
	e.stopLoopLocked()
	e.statState.Store("closed")
	done := e.loopDone
	e.mu.Unlock()

	if done != nil {
		<-done
	}
	if e.pool != nil {
		e.pool.close()
	}
}

// startLoopLocked launches the tick goroutine if idle. Caller holds mu.
func (e *Engine) startLoopLocked() {
	if e.running || e.closed {
		return
	}
	e.running = true
	e.stopCh = make(chan struct{})
	e.loopDone = make(chan struct{})
	go e.run(e.stopCh, e.loopDone)

	e.statState.Store(e.stateLocked())
	e.events.Push(event.Event{Type: event.TypeEngineStarted, Tick: e.tick})
}

// stopLoopLocked signals the tick goroutine to exit, waking it from
// pause-wait or sleep. Caller holds mu; does not wait for exit.
func (e *Engine) stopLoopLocked() {
	if !e.running {
		return
	}
	e.running = false
	close(e.stopCh)
	e.cond.Broadcast()

	e.statState.Store(e.stateLocked())
	e.events.Push(event.Event{Type: event.TypeEngineStopped, Tick: e.tick})
}

// stateLocked derives the state label. Caller holds mu.
func (e *Engine) stateLocked() string {
	switch {
	case e.closed:
		return "closed"
	case !e.running:
		return "idle"
	case e.paused:
		return "paused"
	default:
		return "running"
	}
}

// publishSnapshotLocked rebuilds and swaps in the public view.
// Caller holds mu.
func (e *Engine) publishSnapshotLocked() {
	bodies := e.registry.Snapshot()
	states := make([]BodyState, len(bodies))
	for i, b := range bodies {
		states[i] = BodyState{
			X:          b.X,
			Y:          b.Y,
			VX:         b.VX,
			VY:         b.VY,
			Radius:     b.Radius(),
			Color:      b.Color(),
			Impacts:    b.Impacts(),
			Controlled: b.Controlled(),
			InZone:     e.zone.IsOccupant(b),
		}
	}
	snap := &Snapshot{
		Tick:          e.tick,
		Bodies:        states,
		ArenaW:        e.arenaW,
		ArenaH:        e.arenaH,
		Zone:          e.zone.Rect(e.arenaW, e.arenaH),
		ZoneOccupants: e.zone.OccupantCount(),
		ZoneCapacity:  e.zone.Capacity(),
		Running:       e.running,
		Paused:        e.paused,
		TickDuration:  time.Duration(e.lastTickNanos.Load()),
	}
	e.snap.Store(snap)

	e.statBodies.Store(int64(len(bodies)))
	e.statOccupants.Store(int64(e.zone.OccupantCount()))
}
