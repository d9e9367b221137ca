package spawner

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/lixenwraith/orb-arena/config"
	"github.com/lixenwraith/orb-arena/status"
)

// fakeTarget records spawn calls and simulates pause state.
type fakeTarget struct {
	mu     sync.Mutex
	radii  []int
	paused atomic.Bool
}

func (f *fakeTarget) AddBody(radius int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.radii = append(f.radii, radius)
}

func (f *fakeTarget) IsPaused() bool {
	return f.paused.Load()
}

func (f *fakeTarget) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.radii)
}

func (f *fakeTarget) snapshot() []int {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]int, len(f.radii))
	copy(out, f.radii)
	return out
}

func fastConfig() config.SpawnerConfig {
	return config.SpawnerConfig{
		Enabled:       true,
		MinCount:      2,
		MaxCount:      2,
		MinIntervalMs: 100,
		MaxIntervalMs: 100,
		MinRadius:     8,
		MaxRadius:     20,
	}
}

// TestSpawnerSpawnsOnInterval verifies periodic batches reach the
// target
func TestSpawnerSpawnsOnInterval(t *testing.T) {
	target := &fakeTarget{}
	st := status.NewRegistry()
	s := New(target, fastConfig(), 1, st)

	s.Start()
	defer s.Stop()

	deadline := time.Now().Add(3 * time.Second)
	for target.count() < 4 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}

	if got := target.count(); got < 4 {
		t.Fatalf("Expected at least 2 batches of 2 spawns, got %d", got)
	}
	for i, r := range target.snapshot() {
		if r < 8 || r > 20 {
			t.Errorf("Spawn %d: expected radius in [8, 20], got %d", i, r)
		}
	}
	if got := st.Counters.Get("spawner.spawned").Load(); got < 4 {
		t.Errorf("Expected spawn metric at least 4, got %d", got)
	}
}

// TestSpawnerHoldsWhilePaused verifies no spawns reach a paused target
func TestSpawnerHoldsWhilePaused(t *testing.T) {
	target := &fakeTarget{}
	target.paused.Store(true)
	s := New(target, fastConfig(), 2, nil)

	s.Start()
	defer s.Stop()

	time.Sleep(400 * time.Millisecond)
	if got := target.count(); got != 0 {
		t.Fatalf("Expected no spawns while paused, got %d", got)
	}

	// The held spawn lands after resume.
	target.paused.Store(false)
	deadline := time.Now().Add(2 * time.Second)
	for target.count() == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if target.count() == 0 {
		t.Fatal("Expected the held spawn to land after resume")
	}
}

// TestSpawnerStop verifies shutdown halts spawning and is idempotent
func TestSpawnerStop(t *testing.T) {
	target := &fakeTarget{}
	s := New(target, fastConfig(), 3, nil)

	s.Start()
	if !s.Running() {
		t.Fatal("Expected running after start")
	}
	s.Start() // second start is a no-op

	s.Stop()
	if s.Running() {
		t.Fatal("Expected stopped after stop")
	}

	settled := target.count()
	time.Sleep(250 * time.Millisecond)
	if got := target.count(); got != settled {
		t.Errorf("Expected no spawns after stop, got %d then %d", settled, got)
	}

	s.Stop() // idempotent
}
