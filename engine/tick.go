package engine

import (
	"time"

	"github.com/lixenwraith/orb-arena/event"
	"github.com/lixenwraith/orb-arena/parameter"
	"github.com/lixenwraith/orb-arena/physics"
	"github.com/lixenwraith/orb-arena/vmath"
)

// run is the tick loop. One goroutine per active period; it exits when
// running drops, whether from Stop, Close, or the registry emptying
// mid-step. Tick pacing subtracts the measured step time from the
// interval so load does not slow the simulation until a step overruns
// the interval itself.
func (e *Engine) run(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	timer := time.NewTimer(parameter.TickInterval)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		start := time.Now()

		e.mu.Lock()
		for e.paused && e.running {
			e.cond.Wait()
		}
		if !e.running {
			e.mu.Unlock()
			return
		}
		e.step(parameter.TickMillis)
		stillRunning := e.running
		e.mu.Unlock()

		e.notifyListeners()

		elapsed := time.Since(start)
		e.lastTickNanos.Store(elapsed.Nanoseconds())
		e.statTickMs.Store(float64(elapsed.Nanoseconds()) / 1e6)

		if !stillRunning {
			return
		}

		sleep := parameter.TickInterval - elapsed
		if sleep < parameter.MinSleep {
			sleep = parameter.MinSleep
		}
		timer.Reset(sleep)
		select {
		case <-timer.C:
		case <-stop:
			return
		}
	}
}

// step advances the simulation by dt logical milliseconds. Caller
// holds mu. Phases run in a fixed order: per-body motion and wall
// bounces, pair collisions, zone crossings, impact culling.
func (e *Engine) step(dt float64) {
	e.tick++
	e.statTicks.Store(int64(e.tick))

	bodies := e.registry.Snapshot()

	if e.pool != nil {
		e.pool.stepAll(bodies, dt, e.arenaW, e.arenaH)
	} else {
		for _, b := range bodies {
			b.Step(dt)
			physics.ReflectBounds(&b.Kinetic, float64(b.Radius()), e.arenaW, e.arenaH)
		}
	}

	e.grid.Rebuild(bodies, e.arenaW, e.arenaH)
	collisions := 0
	e.grid.ForEachPair(func(a, b *physics.Body) {
		if physics.ResolveCollision(a, b) {
			collisions++
		}
	})
	if collisions > 0 {
		e.statCollisions.Add(int64(collisions))
		e.events.Push(event.Event{Type: event.TypeCollision, Tick: e.tick, Value: collisions})
	}

	e.zone.Update(bodies, e.arenaW, e.arenaH,
		func(*physics.Body) {
			e.statAdmits.Add(1)
			e.events.Push(event.Event{Type: event.TypeZoneAdmitted, Tick: e.tick, Value: 1})
		},
		func(*physics.Body) {
			e.statBounces.Add(1)
			e.events.Push(event.Event{Type: event.TypeZoneBounced, Tick: e.tick, Value: 1})
		})

	removed := e.registry.RemoveWhere(func(b *physics.Body) bool {
		return !b.Controlled() && b.Impacts() >= parameter.ImpactRemovalLimit
	})
	if len(removed) > 0 {
		e.zone.Forget(removed...)
		e.statRemoved.Add(int64(len(removed)))
		e.events.Push(event.Event{Type: event.TypeBodyRemoved, Tick: e.tick, Value: len(removed)})
		bodies = e.registry.Snapshot()
	}

	var energy float64
	for _, b := range bodies {
		energy += 0.5 * b.Mass() * vmath.MagnitudeSq(b.VX, b.VY)
	}
	e.statEnergy.Store(energy)

	if e.registry.Len() == 0 {
		e.stopLoopLocked()
	}

	e.publishSnapshotLocked()
}
