package action

import (
	"testing"

	"github.com/galago-remap/scte/internal/constants"
	"github.com/galago-remap/scte/internal/param"
)

func newXYAxisPair(t *testing.T) Action {
	t.Helper()
	xy, err := New("XY", []param.Parameter{
		param.NewAction(mustAxis(t, constants.AxisLX)),
		param.NewAction(mustAxis(t, constants.AxisLY)),
	})
	if err != nil {
		t.Fatalf("building XY(): %v", err)
	}
	return xy
}

func TestRingRoutesInnerThenSwapsToOuterAcrossRadius(t *testing.T) {
	m := newFakeMapper()
	inner := newXYAxisPair(t)
	outer := newXYAxisPair(t)
	a, err := New("ring", []param.Parameter{param.NewFloat(0.5), param.NewAction(inner), param.NewAction(outer)})
	if err != nil {
		t.Fatalf("building ring(): %v", err)
	}
	r := a.(WholeHandler)

	// Well inside the inner radius: routed and rescaled into the inner child.
	r.Whole(m, 1000, 0, constants.PSTStick)
	if len(m.axisLog) != 2 {
		t.Fatalf("expected 2 axis writes from the inner child, got %v", m.axisLog)
	}
	if m.axisLog[0] != 2000 {
		t.Fatalf("expected inner rescale to double a value half the inner radius in, got %v", m.axisLog)
	}

	// Far past the inner radius: the inner child is centered, the outer
	// child takes over.
	r.Whole(m, 30000, 0, constants.PSTStick)
	n := len(m.axisLog)
	if n < 4 {
		t.Fatalf("expected at least 4 more axis writes after crossing into outer, got %v", m.axisLog)
	}
	if m.axisLog[n-4] != 0 || m.axisLog[n-3] != 0 {
		t.Fatalf("expected former inner child centered on radius crossing, got %v", m.axisLog)
	}
}
