package scheduler

import (
	"testing"
	"time"
)

var epoch = time.Unix(0, 0)

func TestAdvanceRunsDueTask(t *testing.T) {
	s := New(epoch)
	fired := false
	s.Schedule(5*time.Millisecond, func() { fired = true })

	s.Advance(4 * time.Millisecond)
	if fired {
		t.Fatalf("task fired early")
	}
	s.Advance(1 * time.Millisecond)
	if !fired {
		t.Fatalf("task did not fire at its due time")
	}
}

func TestAdvanceOrdersByTimeThenInsertion(t *testing.T) {
	s := New(epoch)
	var order []string
	s.Schedule(10*time.Millisecond, func() { order = append(order, "a") })
	s.Schedule(5*time.Millisecond, func() { order = append(order, "b") })
	s.Schedule(5*time.Millisecond, func() { order = append(order, "c") })

	s.Advance(10 * time.Millisecond)

	want := []string{"b", "c", "a"}
	if len(order) != len(want) {
		t.Fatalf("got %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("got %v, want %v", order, want)
		}
	}
}

func TestCancelSkipsTask(t *testing.T) {
	s := New(epoch)
	fired := false
	handle := s.Schedule(5*time.Millisecond, func() { fired = true })
	s.Cancel(handle)
	s.Advance(10 * time.Millisecond)
	if fired {
		t.Fatalf("canceled task fired")
	}
}

func TestCancelAfterFireIsNoop(t *testing.T) {
	s := New(epoch)
	handle := s.Schedule(1*time.Millisecond, func() {})
	s.Advance(1 * time.Millisecond)
	s.Cancel(handle) // must not panic
}

func TestTaskCanReScheduleItself(t *testing.T) {
	s := New(epoch)
	count := 0
	var step func()
	step = func() {
		count++
		if count < 3 {
			s.Schedule(0, step)
		}
	}
	s.Schedule(1*time.Millisecond, step)

	s.Advance(1 * time.Millisecond)
	if count != 3 {
		t.Fatalf("got %d steps in one Advance, want 3 (chained zero-delay re-scheduling)", count)
	}
}

func TestNowTracksVirtualClock(t *testing.T) {
	s := New(epoch)
	s.Advance(100 * time.Millisecond)
	if got, want := s.Now(), epoch.Add(100*time.Millisecond); !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}
