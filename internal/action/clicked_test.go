package action

import (
	"testing"

	"github.com/galago-remap/scte/internal/constants"
	"github.com/galago-remap/scte/internal/param"
)

func TestClickedForwardsAxisOnlyWhilePadButtonHeld(t *testing.T) {
	m := newFakeMapper()
	a, err := New("clicked", []param.Parameter{param.NewAction(mustAxis(t, constants.AxisLX))})
	if err != nil {
		t.Fatalf("building clicked(): %v", err)
	}
	c := a.(AxisHandler)

	padButton := constants.WhatToPressedButton(constants.PSTLPad)

	c.Axis(m, 12345, constants.PSTLPad)
	if len(m.axisLog) != 0 {
		t.Fatalf("expected no forwarding while the pad button is up, got %v", m.axisLog)
	}

	m.pressed[padButton] = true
	c.Axis(m, 12345, constants.PSTLPad)
	if len(m.axisLog) != 1 || m.axisLog[0] != 12345 {
		t.Fatalf("expected the value forwarded once the pad button is held, got %v", m.axisLog)
	}

	m.wasPressed[padButton] = true
	m.pressed[padButton] = false
	c.Axis(m, 12345, constants.PSTLPad)
	if len(m.axisLog) != 2 || m.axisLog[1] != 0 {
		t.Fatalf("expected a zeroed value dispatched on the release tick, got %v", m.axisLog)
	}
}
