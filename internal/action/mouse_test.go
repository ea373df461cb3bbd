package action

import (
	"testing"

	"github.com/galago-remap/scte/internal/constants"
	"github.com/galago-remap/scte/internal/param"
)

func TestMouseButtonPressMovesPointerAFixedAmount(t *testing.T) {
	m := newFakeMapper()
	a, err := New("mouse", nil)
	if err != nil {
		t.Fatalf("building mouse(): %v", err)
	}
	a.(ButtonPresser).ButtonPress(m)
	if len(m.mouseLog) != 1 || m.mouseLog[0][0] != 100 {
		t.Fatalf("expected a single 100-unit mouse move, got %v", m.mouseLog)
	}
}

func TestMousePadTracksDeltaBetweenTouches(t *testing.T) {
	m := newFakeMapper()
	a, err := New("mouse", nil)
	if err != nil {
		t.Fatalf("building mouse(): %v", err)
	}
	mouse := a.(WholeHandler)

	m.setTouched(constants.PSTLPad, true)
	mouse.Whole(m, 100, 100, constants.PSTLPad)
	if len(m.mouseLog) != 0 {
		t.Fatalf("expected no move on the first touch sample (no prior position), got %v", m.mouseLog)
	}

	m.setTouched(constants.PSTLPad, true)
	mouse.Whole(m, 110, 90, constants.PSTLPad)
	if len(m.mouseLog) != 1 || m.mouseLog[0][0] != 10 || m.mouseLog[0][1] != -10 {
		t.Fatalf("expected delta (10, -10) from the previous sample, got %v", m.mouseLog)
	}
}

func TestMouseWheelAxisScrollsInstead(t *testing.T) {
	m := newFakeMapper()
	a, err := New("mouse", []param.Parameter{param.NewInt(int64(constants.AxisWheel)), param.NewFloat(1.0)})
	if err != nil {
		t.Fatalf("building mouse(): %v", err)
	}
	a.(AxisHandler).Axis(m, 1000, constants.PSTRight)
	if len(m.mouseLog) != 0 {
		t.Fatalf("expected wheel movement not to log as a mouse move, got %v", m.mouseLog)
	}
}
