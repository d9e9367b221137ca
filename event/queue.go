package event

import (
	"sync/atomic"

	"github.com/lixenwraith/orb-arena/parameter"
)

// Queue carries events from the tick loop and command goroutines to
// the single UI consumer over a fixed ring. Push is lock-free and safe
// from any goroutine; Consume must stay on one goroutine. Per-slot
// published flags keep the consumer from reading half-written slots,
// and producers that lap the consumer overwrite the oldest events.
type Queue struct {
	slots     [parameter.EventQueueSize]Event
	published [parameter.EventQueueSize]atomic.Bool
	head      atomic.Uint64
	tail      atomic.Uint64
}

func NewQueue() *Queue {
	return &Queue{}
}

// Push claims a slot by advancing tail, writes the event, then marks
// the slot published. On overflow the head is dragged forward so the
// consumer skips the overwritten region.
func (q *Queue) Push(ev Event) {
	for {
		tail := q.tail.Load()
		if !q.tail.CompareAndSwap(tail, tail+1) {
			continue
		}

		slot := tail & parameter.EventBufferMask
		q.slots[slot] = ev
		q.published[slot].Store(true) // publish only after the write

		if head := q.head.Load(); tail+1-head > parameter.EventQueueSize {
			q.head.CompareAndSwap(head, tail+1-parameter.EventQueueSize)
		}
		return
	}
}

// Consume drains everything pending in FIFO order, stopping early at
// the first slot a producer has claimed but not yet published.
func (q *Queue) Consume() []Event {
	for {
		head := q.head.Load()
		tail := q.tail.Load()
		if head == tail {
			return nil
		}

		pending := tail - head
		if pending > parameter.EventQueueSize {
			// Lapped; resume at the oldest surviving slot
			pending = parameter.EventQueueSize
			head = tail - parameter.EventQueueSize
		}

		out := make([]Event, 0, pending)
		for i := uint64(0); i < pending; i++ {
			slot := (head + i) & parameter.EventBufferMask
			if !q.published[slot].Load() {
				break
			}
			out = append(out, q.slots[slot])
			q.published[slot].Store(false)
		}

		if q.head.CompareAndSwap(head, head+uint64(len(out))) {
			if len(out) == 0 {
				return nil
			}
			return out
		}
	}
}
