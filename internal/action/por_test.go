package action

import (
	"testing"
	"time"

	"github.com/galago-remap/scte/internal/constants"
	"github.com/galago-remap/scte/internal/param"
)

func TestPorPressedPulses(t *testing.T) {
	m := newFakeMapper()
	p, err := New("pressed", []param.Parameter{param.NewAction(NewButton(constants.KeyB))})
	if err != nil {
		t.Fatalf("building pressed(): %v", err)
	}

	p.(ButtonPresser).ButtonPress(m)
	if !m.pressed[constants.KeyB] {
		t.Fatalf("expected pulse to press KeyB immediately")
	}
	m.advance(porPulseDuration)
	if m.pressed[constants.KeyB] {
		t.Fatalf("expected pulse to release KeyB after porPulseDuration")
	}
}

func TestPorTouchedUntouched(t *testing.T) {
	m := newFakeMapper()
	touchBtn := constants.WhatToTouchButton(constants.PSTLPad)

	touched, err := New("touched", []param.Parameter{param.NewAction(NewButton(constants.KeyC))})
	if err != nil {
		t.Fatalf("building touched(): %v", err)
	}
	wh := touched.(WholeHandler)

	// Simulate the touch edge rising.
	m.wasPressed[touchBtn] = false
	m.pressed[touchBtn] = true
	wh.Whole(m, 0, 0, constants.PSTLPad)

	if !m.pressed[constants.KeyC] {
		t.Fatalf("expected touched() to fire its pulse on the rising edge")
	}
	m.advance(2 * time.Millisecond)
	m.advance(porPulseDuration)
	if m.pressed[constants.KeyC] {
		t.Fatalf("expected pulse to self-release")
	}
}
