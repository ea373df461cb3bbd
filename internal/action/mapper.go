package action

import (
	"time"

	"github.com/galago-remap/scte/internal/constants"
)

// Mapper is the runtime dispatch contract: the thing an action calls back
// into to actually emit input. A test/reference implementation lives in
// internal/mapper; production code would back this with a real uinput or
// platform input-injection layer, which is out of scope here.
type Mapper interface {
	// Flags reports capability bits of the backing virtual devices.
	Flags() MapperFlags

	KeyPress(key constants.Keycode, release bool)
	KeyRelease(key constants.Keycode)
	IsVirtualKeyPressed(key constants.Keycode) bool

	SetAxis(axis constants.Axis, value int32)
	MoveMouse(dx, dy float64)
	MoveWheel(dx, dy float64)

	// IsPressed/WasPressed report the current/previous state of a virtual
	// button synthesized for a pad's "whole surface as one button" or
	// touch-edge bindings (see constants.WhatToPressedButton/
	// WhatToTouchButton) — not the physical PST itself.
	IsPressed(key constants.Keycode) bool
	WasPressed(key constants.Keycode) bool
	IsTouched(what constants.PST) bool
	WasTouched(what constants.PST) bool

	HapticEffect(data HapticData)

	// SpecialAction dispatches a non-input side effect (open menu, load
	// profile, turn off, emulate cemuhook UDP, emulate a soft keyboard).
	// Returns false if the Mapper has no handler for that type, in which
	// case the caller falls back to its own default behavior.
	SpecialAction(kind SpecialActionKind, payload any) bool

	// Schedule arranges for fn to run after delay ticks (not wall-clock
	// time — see internal/scheduler) and returns a handle cancelable via
	// Cancel. Scheduling is the only way an action may have a delayed
	// effect; nothing may block or sleep.
	Schedule(delay time.Duration, fn func()) ScheduledTask
	Cancel(task ScheduledTask)

	// Now returns the scheduler's current tick time. Physics-integrating
	// actions (ball) read elapsed time through this instead of calling
	// time.Now() directly, so a test Mapper can drive them with a fake
	// clock.
	Now() time.Time
}

// MapperFlags are capability bits a Mapper reports (e.g. whether it backs a
// real haptic-capable gamepad).
type MapperFlags uint32

const (
	MapperHasHaptics MapperFlags = 1 << iota
	MapperHasRumble
	// MapperHasRStick reports a physical right analog stick rather than a
	// touchpad, changing how ball/ring modifiers treat PST_RPAD.
	MapperHasRStick
)

// ScheduledTask is an opaque handle to a pending scheduled callback.
type ScheduledTask interface{ taskMarker() }

// taskHandle is the concrete ScheduledTask a Mapper's scheduler hands back.
// A scheduler living outside this package (internal/scheduler) can't
// implement ScheduledTask directly since taskMarker is unexported, so it
// builds handles through NewScheduledTask instead and recovers its own id
// back out through TaskID; the id itself is scheduler-defined.
type taskHandle struct{ id uint64 }

func (taskHandle) taskMarker() {}

// NewScheduledTask wraps a scheduler-assigned id as an opaque ScheduledTask.
func NewScheduledTask(id uint64) ScheduledTask { return taskHandle{id} }

// TaskID recovers the id a ScheduledTask was built with via
// NewScheduledTask. Panics if task didn't come from this package's
// schedulers, which is always a programming error.
func TaskID(task ScheduledTask) uint64 { return task.(taskHandle).id }

// SpecialActionKind enumerates the non-input side effects a mapper may
// support.
type SpecialActionKind int

const (
	SpecialActionMenu SpecialActionKind = iota
	SpecialActionProfile
	SpecialActionTurnoff
	SpecialActionKeyboard
	SpecialActionCemuhook
)
