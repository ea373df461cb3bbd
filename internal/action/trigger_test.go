package action

import (
	"testing"

	"github.com/galago-remap/scte/internal/constants"
	"github.com/galago-remap/scte/internal/param"
)

func TestTriggerPlainThreshold(t *testing.T) {
	m := newFakeMapper()
	a, err := New("trigger", []param.Parameter{
		param.NewInt(100),
		param.NewAction(NewButton(constants.KeyA)),
	})
	if err != nil {
		t.Fatalf("building trigger(): %v", err)
	}
	tr := a.(TriggerHandler)

	tr.Trigger(m, 50, 150, constants.PSTLeft)
	if !m.pressed[constants.KeyA] {
		t.Fatalf("expected press crossing pressLevel")
	}
	tr.Trigger(m, 150, 50, constants.PSTLeft)
	if m.pressed[constants.KeyA] {
		t.Fatalf("expected release crossing back under pressLevel")
	}
}

func TestTriggerDeadBandHysteresis(t *testing.T) {
	m := newFakeMapper()
	a, err := New("trigger", []param.Parameter{
		param.NewInt(50),
		param.NewInt(150),
		param.NewAction(NewButton(constants.KeyB)),
	})
	if err != nil {
		t.Fatalf("building trigger(): %v", err)
	}
	tr := a.(TriggerHandler)

	tr.Trigger(m, 0, 60, constants.PSTLeft)
	if !m.pressed[constants.KeyB] {
		t.Fatalf("expected press at pressLevel=50")
	}
	// Stays pressed through the dead band between 50 and 150.
	tr.Trigger(m, 60, 120, constants.PSTLeft)
	if !m.pressed[constants.KeyB] {
		t.Fatalf("expected to remain pressed inside dead band")
	}
	tr.Trigger(m, 120, 160, constants.PSTLeft)
	if m.pressed[constants.KeyB] {
		t.Fatalf("expected release past releaseLevel=150")
	}
}
