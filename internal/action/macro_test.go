package action

import (
	"testing"

	"github.com/galago-remap/scte/internal/constants"
	"github.com/galago-remap/scte/internal/param"
)

// TestMacroHoldsSleepsAndReleasesOnSchedule pins the exact tick/state
// timeline for `button(KEY_A); sleep(0.1); button(KEY_B)`: KEY_A presses
// immediately and stays held for macroPause (2 ticks) before releasing;
// the embedded sleep then stands in for the gap to the next press, so
// KEY_B doesn't press until 8 more ticks go by (cumulative tick 10); it in
// turn stays held for another macroPause before releasing at tick 12.
func TestMacroHoldsSleepsAndReleasesOnSchedule(t *testing.T) {
	m := newFakeMapper()
	a, err := New("macro", []param.Parameter{
		param.NewAction(NewButton(constants.KeyA)),
		param.NewAction(mustSleep(t, 0.1)),
		param.NewAction(NewButton(constants.KeyB)),
	})
	if err != nil {
		t.Fatalf("building macro(): %v", err)
	}
	ma := a.(ButtonPresser)

	ma.ButtonPress(m)
	if !m.pressed[constants.KeyA] {
		t.Fatalf("expected the first step pressed immediately")
	}

	m.advance(macroTick) // tick 1
	if !m.pressed[constants.KeyA] {
		t.Fatalf("expected the first step still held one tick in")
	}

	m.advance(macroTick) // tick 2: macroPause elapses, KEY_A releases
	if m.pressed[constants.KeyA] {
		t.Fatalf("expected the first step released after macroPause")
	}
	if m.pressed[constants.KeyB] {
		t.Fatalf("expected the second step not yet pressed during the sleep")
	}

	m.advance(7 * macroTick) // tick 9: still mid-sleep
	if m.pressed[constants.KeyB] {
		t.Fatalf("expected the second step still waiting out the sleep at tick 9")
	}

	m.advance(macroTick) // tick 10: sleep elapses, KEY_B presses
	if !m.pressed[constants.KeyB] {
		t.Fatalf("expected the second step pressed once the sleep elapses, at tick 10")
	}

	m.advance(macroTick) // tick 11
	if !m.pressed[constants.KeyB] {
		t.Fatalf("expected the second step still held one tick later")
	}

	m.advance(macroTick) // tick 12: macroPause elapses, KEY_B releases
	if m.pressed[constants.KeyB] {
		t.Fatalf("expected the second step released after macroPause, at tick 12")
	}
}

func TestMacroIgnoresPressWhileAlreadyRunning(t *testing.T) {
	m := newFakeMapper()
	a, err := New("macro", []param.Parameter{
		param.NewAction(NewButton(constants.KeyA)),
		param.NewAction(NewButton(constants.KeyB)),
	})
	if err != nil {
		t.Fatalf("building macro(): %v", err)
	}
	ma := a.(ButtonPresser)

	ma.ButtonPress(m)
	firstLen := len(m.keyLog)
	ma.ButtonPress(m)
	if len(m.keyLog) != firstLen {
		t.Fatalf("expected a second press mid-sequence to be ignored, got %v", m.keyLog)
	}
}

func mustSleep(t *testing.T, seconds float64) Action {
	t.Helper()
	a, err := New("sleep", []param.Parameter{param.NewFloat(seconds)})
	if err != nil {
		t.Fatalf("building sleep(): %v", err)
	}
	return a
}
