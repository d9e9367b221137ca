package spawner

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/orb-arena/config"
	"github.com/lixenwraith/orb-arena/status"
	"github.com/lixenwraith/orb-arena/vmath"
)

// sleepSlice bounds how long a spawner nap ignores the stop signal.
const sleepSlice = 200 * time.Millisecond

// pauseProbe is how often a waiting spawner rechecks the pause state.
const pauseProbe = 100 * time.Millisecond

// Target is the sink the spawner feeds. The engine satisfies it.
type Target interface {
	AddBody(radius int)
	IsPaused() bool
}

// Spawner trickles random bodies into the target on a randomized
// interval. It never spawns into a paused simulation: a due spawn
// waits for the resume instead of dropping.
type Spawner struct {
	cfg    config.SpawnerConfig
	target Target
	rng    *vmath.FastRand

	stopCh  chan struct{}
	once    sync.Once
	wg      sync.WaitGroup
	running atomic.Bool

	spawned *atomic.Int64
}

// New creates a spawner from its config section. Start launches it.
func New(target Target, cfg config.SpawnerConfig, seed uint64, st *status.Registry) *Spawner {
	if st == nil {
		st = status.NewRegistry()
	}
	return &Spawner{
		cfg:     cfg,
		target:  target,
		rng:     vmath.NewFastRand(seed),
		stopCh:  make(chan struct{}),
		spawned: st.Counters.Get("spawner.spawned"),
	}
}

// Start launches the spawn goroutine. Idempotent; a stopped spawner
// does not restart.
func (s *Spawner) Start() {
	if !s.running.CompareAndSwap(false, true) {
		return
	}
	s.wg.Add(1)
	go s.run()
}

// Stop ends the spawn goroutine and waits for it. Idempotent.
func (s *Spawner) Stop() {
	s.once.Do(func() {
		close(s.stopCh)
	})
	s.wg.Wait()
	s.running.Store(false)
}

// Running reports whether the spawn goroutine is live.
func (s *Spawner) Running() bool {
	return s.running.Load()
}

func (s *Spawner) run() {
	defer s.wg.Done()

	for {
		interval := time.Duration(s.rng.IntRange(s.cfg.MinIntervalMs, s.cfg.MaxIntervalMs+1)) * time.Millisecond
		if !s.sleep(interval) {
			return
		}

		// Hold a due spawn while paused rather than skipping it.
		for s.target.IsPaused() {
			if !s.sleep(pauseProbe) {
				return
			}
		}

		count := s.rng.IntRange(s.cfg.MinCount, s.cfg.MaxCount+1)
		for i := 0; i < count; i++ {
			s.target.AddBody(s.rng.IntRange(s.cfg.MinRadius, s.cfg.MaxRadius+1))
		}
		s.spawned.Add(int64(count))
	}
}

// sleep naps for d in slices, returning false when stopped.
func (s *Spawner) sleep(d time.Duration) bool {
	deadline := time.Now().Add(d)
	for {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return true
		}
		if remaining > sleepSlice {
			remaining = sleepSlice
		}
		select {
		case <-s.stopCh:
			return false
		case <-time.After(remaining):
		}
	}
}
