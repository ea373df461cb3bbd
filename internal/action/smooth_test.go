package action

import (
	"testing"

	"github.com/galago-remap/scte/internal/constants"
	"github.com/galago-remap/scte/internal/param"
)

func TestSmoothDispatchesWeightedAverageOnTouch(t *testing.T) {
	m := newFakeMapper()
	child, err := New("XY", []param.Parameter{
		param.NewAction(mustAxis(t, constants.AxisLX)),
		param.NewAction(mustAxis(t, constants.AxisLY)),
	})
	if err != nil {
		t.Fatalf("building XY(): %v", err)
	}
	a, err := New("smooth", []param.Parameter{param.NewInt(1), param.NewAction(child)})
	if err != nil {
		t.Fatalf("building smooth(): %v", err)
	}

	m.setTouched(constants.PSTLPad, true)
	a.(WholeHandler).Whole(m, 100, 50, constants.PSTLPad)

	if len(m.axisLog) != 2 || m.axisLog[0] != 100 || m.axisLog[1] != 50 {
		t.Fatalf("expected smoothed passthrough (100, 50) with a single-sample window, got %v", m.axisLog)
	}
}

func TestSmoothPassesStickStraightThrough(t *testing.T) {
	m := newFakeMapper()
	child, err := New("XY", []param.Parameter{
		param.NewAction(mustAxis(t, constants.AxisLX)),
		param.NewAction(mustAxis(t, constants.AxisLY)),
	})
	if err != nil {
		t.Fatalf("building XY(): %v", err)
	}
	a, err := New("smooth", []param.Parameter{param.NewInt(4), param.NewAction(child)})
	if err != nil {
		t.Fatalf("building smooth(): %v", err)
	}

	a.(WholeHandler).Whole(m, 10000, -5000, constants.PSTStick)
	if len(m.axisLog) != 2 || m.axisLog[0] != 10000 || m.axisLog[1] != -5000 {
		t.Fatalf("expected stick input to bypass smoothing, got %v", m.axisLog)
	}
}
