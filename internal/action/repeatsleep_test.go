package action

import (
	"testing"

	"github.com/galago-remap/scte/internal/constants"
	"github.com/galago-remap/scte/internal/param"
)

func TestSleepReportsItsDurationAndNoChild(t *testing.T) {
	a, err := New("sleep", []param.Parameter{param.NewFloat(1.5)})
	if err != nil {
		t.Fatalf("building sleep(): %v", err)
	}
	s := a.(*sleepRepeatAction)

	if got, want := s.duration(), 1500000000; got.Nanoseconds() != int64(want) {
		t.Fatalf("duration() = %v, want 1.5s", got)
	}
	if s.GetChild() != NoAction {
		t.Fatalf("expected sleep()'s GetChild to be NoAction")
	}
}

func TestRepeatLoopsAChildUntilReleased(t *testing.T) {
	m := newFakeMapper()
	a, err := New("repeat", []param.Parameter{param.NewAction(NewButton(constants.KeyTab))})
	if err != nil {
		t.Fatalf("building repeat(): %v", err)
	}
	a = a.Compress()
	r := a.(ButtonPresser)

	r.ButtonPress(m)
	if !m.pressed[constants.KeyTab] {
		t.Fatalf("expected the first cycle pressed immediately")
	}

	m.advance(macroPause)
	if !m.pressed[constants.KeyTab] {
		t.Fatalf("expected the loop to release and instantly re-press once macroPause elapses")
	}

	a.(ButtonReleaser).ButtonRelease(m)
	m.advance(macroPause)
	if m.pressed[constants.KeyTab] {
		t.Fatalf("expected the loop to stop, releasing with nothing re-pressed, once released")
	}
}
