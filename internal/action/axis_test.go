package action

import (
	"testing"

	"github.com/galago-remap/scte/internal/constants"
	"github.com/galago-remap/scte/internal/param"
)

func TestAxisFullRangeOnButton(t *testing.T) {
	m := newFakeMapper()
	a, err := New("axis", []param.Parameter{param.NewInt(int64(constants.AxisLX))})
	if err != nil {
		t.Fatalf("building axis(): %v", err)
	}
	bp := a.(ButtonPresser)
	bp.ButtonPress(m)
	if len(m.axisLog) != 1 || m.axisLog[0] != constants.StickPadMax {
		t.Fatalf("expected max axis value on press, got %v", m.axisLog)
	}
	a.(ButtonReleaser).ButtonRelease(m)
	if m.axisLog[1] != -constants.StickPadMax {
		t.Fatalf("expected min axis value on release, got %v", m.axisLog)
	}
}

func TestAxisReversedSwapsRange(t *testing.T) {
	m := newFakeMapper()
	a, err := New("raxis", []param.Parameter{param.NewInt(int64(constants.AxisLX))})
	if err != nil {
		t.Fatalf("building raxis(): %v", err)
	}
	a.(ButtonPresser).ButtonPress(m)
	if m.axisLog[0] != -constants.StickPadMax {
		t.Fatalf("expected reversed axis to drive min on press, got %v", m.axisLog)
	}
}

func TestAxisTriggerRangeClampsToZero255(t *testing.T) {
	m := newFakeMapper()
	a, err := New("axis", []param.Parameter{param.NewInt(int64(constants.AxisLTrigger))})
	if err != nil {
		t.Fatalf("building axis(): %v", err)
	}
	tr := a.(TriggerHandler)
	tr.Trigger(m, 0, constants.TriggerMax, constants.PSTLeft)
	if m.axisLog[0] != constants.TriggerMax {
		t.Fatalf("expected trigger axis clamped to TriggerMax, got %v", m.axisLog)
	}
}

func TestHatupFixedRange(t *testing.T) {
	a, err := New("hatup", []param.Parameter{param.NewInt(int64(constants.AxisHat0Y))})
	if err != nil {
		t.Fatalf("building hatup(): %v", err)
	}
	m := newFakeMapper()
	a.(ButtonPresser).ButtonPress(m)
	if len(m.axisLog) != 1 {
		t.Fatalf("expected one axis write, got %d", len(m.axisLog))
	}
}
