package action

import (
	"testing"

	"github.com/galago-remap/scte/internal/constants"
	"github.com/galago-remap/scte/internal/param"
)

func TestTiltFiresFrontDownPastThreshold(t *testing.T) {
	m := newFakeMapper()
	a, err := New("tilt", []param.Parameter{
		param.NewAction(NewButton(constants.KeyA)), // front down
		param.NewAction(NewButton(constants.KeyB)), // front up
		param.NewAction(NoAction),                  // yaw-left slot, required by schema
	})
	if err != nil {
		t.Fatalf("building tilt(): %v", err)
	}
	tilt := a.(GyroHandler)

	tilt.Gyro(m, -1.0, 0, 0, 0, 0, 0, 1)
	if !m.pressed[constants.KeyA] {
		t.Fatalf("expected front-down action pressed past negative pitch threshold, log=%v", m.keyLog)
	}
	if m.pressed[constants.KeyB] {
		t.Fatalf("expected front-up action to stay released")
	}
}

func TestTiltStaysInertBelowThreshold(t *testing.T) {
	m := newFakeMapper()
	a, err := New("tilt", []param.Parameter{
		param.NewAction(NewButton(constants.KeyA)),
		param.NewAction(NoAction),
		param.NewAction(NoAction),
	})
	if err != nil {
		t.Fatalf("building tilt(): %v", err)
	}
	a.(GyroHandler).Gyro(m, -0.1, 0, 0, 0, 0, 0, 1)
	if m.pressed[constants.KeyA] {
		t.Fatalf("expected no press below the tilt threshold")
	}
}
