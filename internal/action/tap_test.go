package action

import (
	"testing"

	"github.com/galago-remap/scte/internal/constants"
	"github.com/galago-remap/scte/internal/param"
)

func TestTapSingleReleasesAfterPause(t *testing.T) {
	m := newFakeMapper()
	a, err := New("tap", []param.Parameter{param.NewInt(int64(constants.KeyA))})
	if err != nil {
		t.Fatalf("building tap(): %v", err)
	}
	tp := a.(ButtonPresser)

	tp.ButtonPress(m)
	if !m.pressed[constants.KeyA] {
		t.Fatalf("expected immediate press")
	}
	m.advance(tapPause)
	if m.pressed[constants.KeyA] {
		t.Fatalf("expected release after tapPause")
	}
}

func TestTapCountBlipsMultipleTimes(t *testing.T) {
	m := newFakeMapper()
	a, err := New("tap", []param.Parameter{param.NewInt(int64(constants.KeyB)), param.NewInt(2)})
	if err != nil {
		t.Fatalf("building tap(): %v", err)
	}
	tp := a.(ButtonPresser)

	tp.ButtonPress(m)
	m.advance(3 * tapPause)

	if m.pressed[constants.KeyB] {
		t.Fatalf("expected final state released for a tap(KeyB, 2) sequence")
	}
	// press, release, press, release: four key events total.
	if len(m.keyLog) != 4 {
		t.Fatalf("got %d key events, want 4: %v", len(m.keyLog), m.keyLog)
	}
}
