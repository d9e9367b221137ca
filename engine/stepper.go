package engine

import (
	"runtime"
	"sync"

	"github.com/lixenwraith/orb-arena/parameter"
	"github.com/lixenwraith/orb-arena/physics"
)

// stepTask is one chunk of the integrate-and-walls phase. Chunks are
// disjoint index ranges, so no two workers ever touch the same body.
type stepTask struct {
	bodies []*physics.Body
	dt     float64
	width  float64
	height float64
	done   *sync.WaitGroup
}

// stepPool fans the per-body stepping phase out to a fixed worker set.
// Only that phase parallelizes: it has no cross-body interactions, so
// chunk ownership is the only synchronization needed. Collision and
// zone phases stay on the engine goroutine.
type stepPool struct {
	workers int
	tasks   chan stepTask
	quit    chan struct{}
	once    sync.Once
	wg      sync.WaitGroup
}

// newStepPool starts the workers. A non-positive count falls back to
// DefaultWorkers capped by GOMAXPROCS.
func newStepPool(workers int) *stepPool {
	if workers <= 0 {
		workers = parameter.DefaultWorkers
		if n := runtime.GOMAXPROCS(0); n < workers {
			workers = n
		}
	}
	p := &stepPool{
		workers: workers,
		tasks:   make(chan stepTask, workers*2),
		quit:    make(chan struct{}),
	}
	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.worker()
	}
	return p
}

func (p *stepPool) worker() {
	defer p.wg.Done()
	for {
		select {
		case t := <-p.tasks:
			for _, b := range t.bodies {
				b.Step(t.dt)
				physics.ReflectBounds(&b.Kinetic, float64(b.Radius()), t.width, t.height)
			}
			t.done.Done()
		case <-p.quit:
			return
		}
	}
}

// stepAll splits the body list into per-worker chunks and blocks until
// every body has been stepped and wall-checked. Small lists run as a
// single chunk; dispatch overhead beats parallelism below that size.
func (p *stepPool) stepAll(bodies []*physics.Body, dt, width, height float64) {
	n := len(bodies)
	if n == 0 {
		return
	}

	chunk := (n + p.workers - 1) / p.workers
	if chunk < parameter.WorkerChunkMin {
		chunk = parameter.WorkerChunkMin
	}

	var done sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}
		done.Add(1)
		p.tasks <- stepTask{
			bodies: bodies[start:end],
			dt:     dt,
			width:  width,
			height: height,
			done:   &done,
		}
	}
	done.Wait()
}

// close stops the workers and waits for them to exit. Idempotent.
func (p *stepPool) close() {
	p.once.Do(func() {
		close(p.quit)
	})
	p.wg.Wait()
}
