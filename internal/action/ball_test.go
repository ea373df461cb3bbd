package action

import (
	"testing"
	"time"

	"github.com/galago-remap/scte/internal/constants"
	"github.com/galago-remap/scte/internal/param"
)

func TestBallTracksTouchDeltaAsChangeWhileTouched(t *testing.T) {
	m := newFakeMapper()
	a, err := New("ball", []param.Parameter{param.NewAction(mustAxis(t, constants.AxisLX))})
	if err != nil {
		t.Fatalf("building ball(): %v", err)
	}
	ball := a.(WholeHandler)

	m.setTouched(constants.PSTLPad, true)
	ball.Whole(m, 1000, 0, constants.PSTLPad)
	if len(m.axisLog) != 0 {
		t.Fatalf("expected no change dispatched on the first touch sample, got %v", m.axisLog)
	}

	m.now = m.now.Add(10 * time.Millisecond)
	m.setTouched(constants.PSTLPad, true)
	ball.Whole(m, 1100, 0, constants.PSTLPad)
	if len(m.axisLog) == 0 {
		t.Fatalf("expected a Change dispatch once a second touch sample establishes velocity")
	}
}

func TestBallPassesStickThroughUntouched(t *testing.T) {
	m := newFakeMapper()
	a, err := New("ball", []param.Parameter{param.NewAction(newXYAxisPair(t))})
	if err != nil {
		t.Fatalf("building ball(): %v", err)
	}
	a.(WholeHandler).Whole(m, 12345, 6789, constants.PSTStick)
	if len(m.axisLog) != 2 || m.axisLog[0] != 12345 || m.axisLog[1] != 6789 {
		t.Fatalf("expected ball bound to a physical stick to pass values straight through, got %v", m.axisLog)
	}
}
