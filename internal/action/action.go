// Package action implements the Action tree: the ~40 action/modifier kinds,
// their keyword registry, the compressor, and the dispatch contract a Mapper
// drives at runtime.
//
// Dispatch is polymorphic without a class hierarchy: Action is a small core
// interface, and each optional behavior (button press/release, axis, whole,
// trigger, gyro, the extended GUI-facing slots, the to_string/describe/
// compress meta slots) is its own single-method interface. The dispatcher
// type-asserts for the behavior it needs and falls back to a no-op (with a
// rate-limited warning, except where a no-op is expected and correct, such
// as NoAction) when an action kind doesn't implement it — the same
// "dispatch table with sane defaults" contract the original dispatch-table
// struct encoded with defaulted function pointers.
package action

import (
	"fmt"

	"github.com/galago-remap/scte/internal/constants"
	"github.com/galago-remap/scte/internal/logx"
	"github.com/galago-remap/scte/internal/param"
)

// Flags is the ActionFlags bitmask describing what an action kind is and
// which GUI-facing modifiers it accepts.
type Flags uint32

const (
	AFAction Flags = 1 << iota
	AFKeycode
	AFAxis
	AFModFeedback
	AFModOSD
	AFModName
	AFModRotate
	AFModSensitivity
	AFModDeadzone
	AFModSmooth
	AFModClick
	AFModBall
	AFError
)

func (f Flags) Has(mask Flags) bool { return f&mask != 0 }

// DescContext selects which label variant Describe should return (the same
// action can read differently on a button vs. in an on-screen display).
type DescContext int

const (
	ACButton DescContext = iota
	ACOSD
	ACSwitcher
)

// Action is the minimal core every action kind implements: an identity
// (keyword, flags), its textual form, a human description, and the
// single-pass compressor hook.
type Action interface {
	Keyword() string
	Flags() Flags
	ToString() string
	Describe(ctx DescContext) string
	// Compress returns an equivalent, possibly simplified action. Returning
	// the receiver itself signals "nothing to simplify" and lets the
	// compressor detect a fixed point.
	Compress() Action
}

// Optional per-event dispatch interfaces. An action kind implements exactly
// the ones relevant to how it's bound; everything else falls back to
// dispatchWarn inside the Dispatch* helpers below.

type ButtonPresser interface{ ButtonPress(m Mapper) }
type ButtonReleaser interface{ ButtonRelease(m Mapper) }
type AxisHandler interface {
	Axis(m Mapper, value int32, what constants.PST)
}
type WholeHandler interface {
	Whole(m Mapper, x, y int32, what constants.PST)
}
type TriggerHandler interface {
	Trigger(m Mapper, oldPos, pos int32, what constants.PST)
}
type GyroHandler interface {
	Gyro(m Mapper, pitch, yaw, roll float64, q1, q2, q3, q4 float64)
}
type ChangeHandler interface {
	Change(m Mapper, dx, dy float64, what constants.PST)
}

// Extended / GUI-facing slots.

type SensitivitySetter interface{ SetSensitivity(x, y, z float64) }
type HapticSetter interface{ SetHaptic(data HapticData) }
type ChildGetter interface{ GetChild() Action }
type ChildrenGetter interface{ GetChildren() []Action }
type PropertyGetter interface {
	GetProperty(name string) (param.Parameter, bool)
}

// HapticData mirrors HapticData's fields: which actuator, intensity and
// period, used by rumble-capable bindings.
type HapticData struct {
	Enabled   bool
	Position  constants.PST
	Amplitude uint16
	Period    uint16
	// Frequency is the accumulated-distance threshold wholeHaptic fires a
	// pulse at for continuous "rolling" movement, distinct from Period
	// (which paces a held button's repeat rate).
	Frequency uint16
}

// dispatchWarn rate-limits a "no handler for this event" warning, mirroring
// the original dispatch table's RATE_LIMIT-guarded default handlers: an
// action bound somewhere it can't usefully react is a configuration mistake,
// not a crash.
func dispatchWarn(a Action, event string) {
	if logx.L == nil {
		return
	}
	logx.L.RateLimitedWarn(
		fmt.Sprintf("%s:%s", a.Keyword(), event), rateLimitInterval,
		"action has no handler for event",
		logx.Keyword(a.Keyword()),
	)
}

// DispatchButtonPress invokes a's button-press handler if it has one.
func DispatchButtonPress(a Action, m Mapper) {
	if h, ok := a.(ButtonPresser); ok {
		h.ButtonPress(m)
		return
	}
	dispatchWarn(a, "button_press")
}

// DispatchButtonRelease invokes a's button-release handler if it has one.
func DispatchButtonRelease(a Action, m Mapper) {
	if h, ok := a.(ButtonReleaser); ok {
		h.ButtonRelease(m)
		return
	}
	dispatchWarn(a, "button_release")
}

// DispatchAxis invokes a's axis handler if it has one.
func DispatchAxis(a Action, m Mapper, value int32, what constants.PST) {
	if h, ok := a.(AxisHandler); ok {
		h.Axis(m, value, what)
		return
	}
	dispatchWarn(a, "axis")
}

// DispatchWhole invokes a's whole handler if it has one.
func DispatchWhole(a Action, m Mapper, x, y int32, what constants.PST) {
	if h, ok := a.(WholeHandler); ok {
		h.Whole(m, x, y, what)
		return
	}
	dispatchWarn(a, "whole")
}

// DispatchTrigger invokes a's trigger handler if it has one.
func DispatchTrigger(a Action, m Mapper, oldPos, pos int32, what constants.PST) {
	if h, ok := a.(TriggerHandler); ok {
		h.Trigger(m, oldPos, pos, what)
		return
	}
	dispatchWarn(a, "trigger")
}

// DispatchGyro invokes a's gyro handler if it has one.
func DispatchGyro(a Action, m Mapper, pitch, yaw, roll float64, q1, q2, q3, q4 float64) {
	if h, ok := a.(GyroHandler); ok {
		h.Gyro(m, pitch, yaw, roll, q1, q2, q3, q4)
		return
	}
	dispatchWarn(a, "gyro")
}

// DispatchChange invokes a's change handler if it has one (ball's inertia
// and XY's per-axis split use this).
func DispatchChange(a Action, m Mapper, dx, dy float64, what constants.PST) {
	if h, ok := a.(ChangeHandler); ok {
		h.Change(m, dx, dy, what)
		return
	}
	dispatchWarn(a, "change")
}

// GetChild returns a's single child action, or nil if it has none.
func GetChild(a Action) Action {
	if h, ok := a.(ChildGetter); ok {
		return h.GetChild()
	}
	return nil
}

// GetChildren returns a's child actions, or nil if it has none.
func GetChildren(a Action) []Action {
	if h, ok := a.(ChildrenGetter); ok {
		return h.GetChildren()
	}
	return nil
}

// GetProperty returns a GUI-facing property of a, or ok=false if a does not
// expose one by that name.
func GetProperty(a Action, name string) (param.Parameter, bool) {
	if h, ok := a.(PropertyGetter); ok {
		return h.GetProperty(name)
	}
	return nil, false
}
