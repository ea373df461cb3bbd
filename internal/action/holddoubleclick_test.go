package action

import (
	"testing"
	"time"

	"github.com/galago-remap/scte/internal/constants"
	"github.com/galago-remap/scte/internal/param"
)

func TestHoldFiresOnlyAfterTimeout(t *testing.T) {
	m := newFakeMapper()
	a, err := New("hold", []param.Parameter{param.NewAction(NewButton(constants.KeyA))})
	if err != nil {
		t.Fatalf("building hold(): %v", err)
	}
	h := a.(ButtonPresser)

	h.ButtonPress(m)
	if m.pressed[constants.KeyA] {
		t.Fatalf("expected no press before the hold timeout elapses")
	}
	m.advance(holdDblDefaultTimeout)
	if !m.pressed[constants.KeyA] {
		t.Fatalf("expected a press once the hold timeout elapses")
	}

	a.(ButtonReleaser).ButtonRelease(m)
	if m.pressed[constants.KeyA] {
		t.Fatalf("expected release once the physical button comes up")
	}
}

// With a default action set, releasing before the hold timeout cancels the
// timer and fires the default instead of the held action.
func TestHoldReleasedEarlyFiresDefaultInstead(t *testing.T) {
	m := newFakeMapper()
	a, err := New("hold", []param.Parameter{
		param.NewAction(NewButton(constants.KeyA)),
		param.NewAction(NewButton(constants.KeyB)),
	})
	if err != nil {
		t.Fatalf("building hold(): %v", err)
	}
	h := a.(ButtonPresser)
	r := a.(ButtonReleaser)

	h.ButtonPress(m)
	r.ButtonRelease(m)
	if !m.pressed[constants.KeyB] {
		t.Fatalf("expected the default action pressed immediately on an early release")
	}

	m.advance(time.Millisecond)
	if m.pressed[constants.KeyB] {
		t.Fatalf("expected the default action released a tick later")
	}

	m.advance(holdDblDefaultTimeout)
	if m.pressed[constants.KeyA] {
		t.Fatalf("expected the hold action to never fire since its timer was canceled")
	}
}

func TestDoubleclickFiresOnSecondPressWithinTimeout(t *testing.T) {
	m := newFakeMapper()
	a, err := New("doubleclick", []param.Parameter{param.NewAction(NewButton(constants.KeyB))})
	if err != nil {
		t.Fatalf("building doubleclick(): %v", err)
	}
	h := a.(ButtonPresser)
	r := a.(ButtonReleaser)

	h.ButtonPress(m)
	r.ButtonRelease(m)
	if m.pressed[constants.KeyB] {
		t.Fatalf("expected no press on the first click alone")
	}
	h.ButtonPress(m)
	if !m.pressed[constants.KeyB] {
		t.Fatalf("expected a press on the second press within the timeout")
	}
	r.ButtonRelease(m)
	if m.pressed[constants.KeyB] {
		t.Fatalf("expected release once the second click's button comes back up")
	}
}
