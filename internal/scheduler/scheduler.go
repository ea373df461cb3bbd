// Package scheduler implements the engine's single cooperative task queue:
// the thing every Mapper.Schedule/Cancel/Now call is backed by. There is no
// goroutine, no real timer, and no wall clock here — a Scheduler advances
// only when its owner calls Advance, and every due callback runs inline on
// that call, in (time, insertion-order) order. Actions built against Mapper
// never need to coordinate around concurrency because there isn't any.
package scheduler

import (
	"container/heap"
	"time"

	"github.com/galago-remap/scte/internal/action"
)

// task is one pending callback. seq breaks ties between tasks scheduled for
// the same absolute time, so equal-time ordering matches insertion order.
type task struct {
	id       uint64
	at       time.Time
	seq      uint64
	fn       func()
	canceled bool
	index    int
}

type taskHeap []*task

func (h taskHeap) Len() int { return len(h) }

func (h taskHeap) Less(i, j int) bool {
	if h[i].at.Equal(h[j].at) {
		return h[i].seq < h[j].seq
	}
	return h[i].at.Before(h[j].at)
}

func (h taskHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index, h[j].index = i, j
}

func (h *taskHeap) Push(x any) {
	t := x.(*task)
	t.index = len(*h)
	*h = append(*h, t)
}

func (h *taskHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*h = old[:n-1]
	return t
}

// Scheduler is one cooperative queue, normally owned one-per-Mapper. It
// satisfies the Schedule/Cancel/Now trio action.Mapper requires.
type Scheduler struct {
	now     time.Time
	nextID  uint64
	nextSeq uint64
	pending taskHeap
	byID    map[uint64]*task
}

// New creates a Scheduler whose virtual clock starts at start. Production
// callers normally pass time.Now(); tests pass a fixed epoch so ticks are
// exactly reproducible.
func New(start time.Time) *Scheduler {
	return &Scheduler{now: start, byID: make(map[uint64]*task)}
}

// Now returns the scheduler's current virtual time.
func (s *Scheduler) Now() time.Time { return s.now }

// Schedule queues fn to run once the virtual clock reaches now+delay, and
// returns a handle Cancel accepts.
func (s *Scheduler) Schedule(delay time.Duration, fn func()) action.ScheduledTask {
	s.nextID++
	s.nextSeq++
	t := &task{id: s.nextID, at: s.now.Add(delay), seq: s.nextSeq, fn: fn}
	heap.Push(&s.pending, t)
	s.byID[t.id] = t
	return action.NewScheduledTask(t.id)
}

// Cancel marks a pending task canceled. Canceling an already-fired (or
// already-canceled) task is a no-op; the task is skipped in place when
// Advance reaches it rather than removed from the heap eagerly.
func (s *Scheduler) Cancel(handle action.ScheduledTask) {
	id := action.TaskID(handle)
	if t, ok := s.byID[id]; ok {
		t.canceled = true
	}
}

// Advance moves the virtual clock forward by delta, running every due,
// non-canceled task in order. A task whose own callback schedules another
// task due before target fires within this same Advance call — this is how
// a macro's step-to-step chain or a tap's press/release alternation
// re-arms itself across a single tick.
func (s *Scheduler) Advance(delta time.Duration) {
	target := s.now.Add(delta)
	for s.pending.Len() > 0 && !s.pending[0].at.After(target) {
		t := heap.Pop(&s.pending).(*task)
		delete(s.byID, t.id)
		if t.canceled {
			continue
		}
		s.now = t.at
		t.fn()
	}
	s.now = target
}

// Pending reports the number of not-yet-run tasks still queued (including
// canceled ones awaiting their turn to be skipped).
func (s *Scheduler) Pending() int { return s.pending.Len() }
