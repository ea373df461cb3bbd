// Package mapper provides a reference action.Mapper: an in-memory virtual
// input sink backed by an internal/scheduler.Scheduler, driven entirely by
// Advance instead of wall-clock timers. It exists for tests that exercise
// whole action trees end to end, and as the template a real uinput/Win32
// backend would follow for the stateful pieces (pressed-key bookkeeping,
// touch edges, haptic log) that every backend needs regardless of how it
// actually emits events.
package mapper

import (
	"strconv"
	"time"

	"github.com/galago-remap/scte/internal/action"
	"github.com/galago-remap/scte/internal/constants"
	"github.com/galago-remap/scte/internal/scheduler"
	"github.com/galago-remap/scte/internal/trace"
)

// traceRingCapacity bounds how many dispatch trace events a Mapper keeps,
// so a long-running instance (e.g. behind the debug server) doesn't grow
// its trace log without bound.
const traceRingCapacity = 256

// KeyEvent records one KeyPress/KeyRelease call, in order, for tests to
// assert against — the "key-log" scenarios in this package's tests read
// off of exactly this.
type KeyEvent struct {
	Key     constants.Keycode
	Press   bool
	Release bool // KeyPress's "release" (press-through) flag; unused when Press is false
}

// AxisEvent records one SetAxis call.
type AxisEvent struct {
	Axis  constants.Axis
	Value int32
}

// SpecialEvent records one SpecialAction call and whether this Mapper
// claimed to handle it.
type SpecialEvent struct {
	Kind    action.SpecialActionKind
	Payload any
	Handled bool
}

// Mapper is the reference action.Mapper implementation. Zero value is not
// ready to use; construct with New.
type Mapper struct {
	sched *scheduler.Scheduler
	flags action.MapperFlags

	pressed    map[constants.Keycode]bool
	wasPressed map[constants.Keycode]bool
	touched    map[constants.PST]bool
	wasTouched map[constants.PST]bool

	KeyLog     []KeyEvent
	AxisLog    []AxisEvent
	MouseLog   []struct{ DX, DY float64 }
	WheelLog   []struct{ DX, DY float64 }
	HapticLog  []action.HapticData
	SpecialLog []SpecialEvent

	// Trace is a bounded log of dispatch events, independent of the
	// per-kind logs above — it's what a debug introspection endpoint
	// would read to answer "what has this mapper actually done lately."
	Trace *trace.Ring

	// handleSpecial, if set, lets a test opt into claiming SpecialAction
	// calls instead of always reporting "unhandled" back to the caller.
	handleSpecial func(action.SpecialActionKind, any) bool
}

// New builds a Mapper with its own Scheduler starting at start.
func New(start time.Time, flags action.MapperFlags) *Mapper {
	return &Mapper{
		sched:      scheduler.New(start),
		flags:      flags,
		pressed:    make(map[constants.Keycode]bool),
		wasPressed: make(map[constants.Keycode]bool),
		touched:    make(map[constants.PST]bool),
		wasTouched: make(map[constants.PST]bool),
		Trace:      trace.NewRing(traceRingCapacity),
	}
}

// Advance drives the backing scheduler forward, the only way time passes
// for any action bound through this Mapper.
func (m *Mapper) Advance(delta time.Duration) { m.sched.Advance(delta) }

// HandleSpecialWith installs a callback SpecialAction delegates to,
// letting a test simulate a host that understands e.g. SpecialActionMenu.
func (m *Mapper) HandleSpecialWith(fn func(action.SpecialActionKind, any) bool) {
	m.handleSpecial = fn
}

func (m *Mapper) Flags() action.MapperFlags { return m.flags }

func (m *Mapper) KeyPress(key constants.Keycode, release bool) {
	m.wasPressed[key] = m.pressed[key]
	m.pressed[key] = true
	m.KeyLog = append(m.KeyLog, KeyEvent{Key: key, Press: true, Release: release})
	m.Trace.Add(trace.NewEvent(trace.ButtonPress, constants.KeyName(key), "press"))
}

func (m *Mapper) KeyRelease(key constants.Keycode) {
	m.wasPressed[key] = m.pressed[key]
	m.pressed[key] = false
	m.KeyLog = append(m.KeyLog, KeyEvent{Key: key, Press: false})
	m.Trace.Add(trace.NewEvent(trace.ButtonRelease, constants.KeyName(key), "release"))
}

func (m *Mapper) IsVirtualKeyPressed(key constants.Keycode) bool { return m.pressed[key] }

func (m *Mapper) SetAxis(axis constants.Axis, value int32) {
	m.AxisLog = append(m.AxisLog, AxisEvent{Axis: axis, Value: value})
	m.Trace.Add(trace.NewEvent(trace.Axis, constants.DescribeAxis(axis, 0), "value="+strconv.FormatInt(int64(value), 10)))
}

func (m *Mapper) MoveMouse(dx, dy float64) {
	m.MouseLog = append(m.MouseLog, struct{ DX, DY float64 }{dx, dy})
}

func (m *Mapper) MoveWheel(dx, dy float64) {
	m.WheelLog = append(m.WheelLog, struct{ DX, DY float64 }{dx, dy})
}

func (m *Mapper) IsPressed(key constants.Keycode) bool  { return m.pressed[key] }
func (m *Mapper) WasPressed(key constants.Keycode) bool { return m.wasPressed[key] }

// SetTouched lets a test drive a pad/stick touch edge directly, since no
// action kind in this package originates touch state itself — it only
// reacts to it.
func (m *Mapper) SetTouched(what constants.PST, touched bool) {
	m.wasTouched[what] = m.touched[what]
	m.touched[what] = touched
}

func (m *Mapper) IsTouched(what constants.PST) bool  { return m.touched[what] }
func (m *Mapper) WasTouched(what constants.PST) bool { return m.wasTouched[what] }

func (m *Mapper) HapticEffect(data action.HapticData) {
	m.HapticLog = append(m.HapticLog, data)
}

func (m *Mapper) SpecialAction(kind action.SpecialActionKind, payload any) bool {
	handled := false
	if m.handleSpecial != nil {
		handled = m.handleSpecial(kind, payload)
	}
	m.SpecialLog = append(m.SpecialLog, SpecialEvent{Kind: kind, Payload: payload, Handled: handled})
	tag := trace.SpecialAction
	if !handled {
		tag = trace.Unhandled
	}
	m.Trace.Add(trace.NewEvent(tag, strconv.Itoa(int(kind)), ""))
	return handled
}

func (m *Mapper) Schedule(delay time.Duration, fn func()) action.ScheduledTask {
	m.Trace.Add(trace.NewEvent(trace.Schedule, "schedule", "delay="+delay.String()))
	return m.sched.Schedule(delay, fn)
}

func (m *Mapper) Cancel(task action.ScheduledTask) { m.sched.Cancel(task) }

func (m *Mapper) Now() time.Time { return m.sched.Now() }
