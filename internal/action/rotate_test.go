package action

import (
	"testing"

	"github.com/galago-remap/scte/internal/constants"
	"github.com/galago-remap/scte/internal/param"
)

func TestRotate180FlipsBothAxes(t *testing.T) {
	m := newFakeMapper()
	child, err := New("XY", []param.Parameter{
		param.NewAction(mustAxis(t, constants.AxisLX)),
		param.NewAction(mustAxis(t, constants.AxisLY)),
	})
	if err != nil {
		t.Fatalf("building XY(): %v", err)
	}
	a, err := New("rotate", []param.Parameter{param.NewFloat(180), param.NewAction(child)})
	if err != nil {
		t.Fatalf("building rotate(): %v", err)
	}
	a.(WholeHandler).Whole(m, 100, 50, constants.PSTStick)
	if len(m.axisLog) != 2 || m.axisLog[0] != -100 || m.axisLog[1] != -50 {
		t.Fatalf("expected rotated axes (-100, -50), got %v", m.axisLog)
	}
}

func TestRotateGetChildReturnsUnderlyingAction(t *testing.T) {
	child := NewButton(constants.KeyA)
	a, err := New("rotate", []param.Parameter{param.NewFloat(90), param.NewAction(child)})
	if err != nil {
		t.Fatalf("building rotate(): %v", err)
	}
	if a.(ChildGetter).GetChild() != child {
		t.Fatalf("expected GetChild to return the wrapped action")
	}
}

func mustAxis(t *testing.T, axis constants.Axis) Action {
	t.Helper()
	a, err := New("axis", []param.Parameter{param.NewInt(int64(axis))})
	if err != nil {
		t.Fatalf("building axis(): %v", err)
	}
	return a
}
