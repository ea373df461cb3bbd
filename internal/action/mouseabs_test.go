package action

import (
	"testing"

	"github.com/galago-remap/scte/internal/constants"
	"github.com/galago-remap/scte/internal/param"
)

func TestMouseAbsAxisScalesIntoPointerMovement(t *testing.T) {
	m := newFakeMapper()
	a, err := New("mouseabs", []param.Parameter{param.NewInt(int64(constants.AxisRelX)), param.NewFloat(2.0)})
	if err != nil {
		t.Fatalf("building mouseabs(): %v", err)
	}
	a.(AxisHandler).Axis(m, 1000, constants.PSTLeft)
	if len(m.mouseLog) != 1 || m.mouseLog[0][0] != 1000*2.0*0.005 || m.mouseLog[0][1] != 0 {
		t.Fatalf("expected scaled X-only movement, got %v", m.mouseLog)
	}
}

func TestMouseAbsWholeMovesBothAxes(t *testing.T) {
	m := newFakeMapper()
	a, err := New("mouseabs", nil)
	if err != nil {
		t.Fatalf("building mouseabs(): %v", err)
	}
	a.(WholeHandler).Whole(m, 100, 200, constants.PSTStick)
	if len(m.mouseLog) != 1 || m.mouseLog[0][0] != 100*0.005 || m.mouseLog[0][1] != 200*0.005 {
		t.Fatalf("expected both axes scaled by the fixed factor, got %v", m.mouseLog)
	}
}
