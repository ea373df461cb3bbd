package action

import (
	"testing"

	"github.com/galago-remap/scte/internal/constants"
	"github.com/galago-remap/scte/internal/param"
)

func TestModePicksButtonConditionOverDefault(t *testing.T) {
	m := newFakeMapper()
	a, err := New("mode", []param.Parameter{
		param.NewConstString("B"),
		param.NewAction(NewButton(constants.KeyA)),
		param.NewAction(NewButton(constants.KeyC)),
	})
	if err != nil {
		t.Fatalf("building mode(): %v", err)
	}
	bp := a.(ButtonPresser)

	// Default (KeyC) fires when the condition button isn't held.
	bp.ButtonPress(m)
	if !m.pressed[constants.KeyC] {
		t.Fatalf("expected default action pressed, log=%v", m.keyLog)
	}
	a.(ButtonReleaser).ButtonRelease(m)

	// Hold the condition button, then the modal press should pick KeyA.
	m.pressed[constants.BtnB] = true
	bp.ButtonPress(m)
	if !m.pressed[constants.KeyA] {
		t.Fatalf("expected conditioned action pressed while BtnB held, log=%v", m.keyLog)
	}
}

func TestModeReleaseDeactivatesWhicheverWasActive(t *testing.T) {
	m := newFakeMapper()
	a, err := New("mode", []param.Parameter{
		param.NewAction(NewButton(constants.KeyA)),
	})
	if err != nil {
		t.Fatalf("building mode(): %v", err)
	}
	a.(ButtonPresser).ButtonPress(m)
	if !m.pressed[constants.KeyA] {
		t.Fatalf("expected default pressed")
	}
	a.(ButtonReleaser).ButtonRelease(m)
	if m.pressed[constants.KeyA] {
		t.Fatalf("expected default released")
	}
}
