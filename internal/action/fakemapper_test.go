package action

import (
	"time"

	"github.com/galago-remap/scte/internal/constants"
)

// fakeMapper is a minimal in-package Mapper double for unit-testing
// individual action kinds without dragging in a real scheduler — tasks
// run whenever the test calls advance(), not on a wall clock.
type fakeMapper struct {
	now time.Time

	pressed    map[constants.Keycode]bool
	wasPressed map[constants.Keycode]bool
	touched    map[constants.PST]bool
	wasTouched map[constants.PST]bool

	keyLog    []string
	axisLog   []int32
	mouseLog  [][2]float64
	hapticLog []HapticData

	tasks []*fakeTask

	// handleSpecialHook, if set, lets a test claim a SpecialAction call
	// and inspect its payload.
	handleSpecialHook func(kind SpecialActionKind, payload any) bool
}

type fakeTask struct {
	at       time.Time
	fn       func()
	canceled bool
	ran      bool
}

func (*fakeTask) taskMarker() {}

func newFakeMapper() *fakeMapper {
	return &fakeMapper{
		now:        time.Unix(0, 0),
		pressed:    map[constants.Keycode]bool{},
		wasPressed: map[constants.Keycode]bool{},
		touched:    map[constants.PST]bool{},
		wasTouched: map[constants.PST]bool{},
	}
}

func (m *fakeMapper) Flags() MapperFlags { return 0 }

func (m *fakeMapper) KeyPress(key constants.Keycode, release bool) {
	m.wasPressed[key] = m.pressed[key]
	m.pressed[key] = true
	m.keyLog = append(m.keyLog, constants.KeyName(key)+"+")
}

func (m *fakeMapper) KeyRelease(key constants.Keycode) {
	m.wasPressed[key] = m.pressed[key]
	m.pressed[key] = false
	m.keyLog = append(m.keyLog, constants.KeyName(key)+"-")
}

func (m *fakeMapper) IsVirtualKeyPressed(key constants.Keycode) bool { return m.pressed[key] }

func (m *fakeMapper) SetAxis(axis constants.Axis, value int32) { m.axisLog = append(m.axisLog, value) }
func (m *fakeMapper) MoveMouse(dx, dy float64)                 { m.mouseLog = append(m.mouseLog, [2]float64{dx, dy}) }
func (m *fakeMapper) MoveWheel(dx, dy float64)                 {}

func (m *fakeMapper) IsPressed(key constants.Keycode) bool  { return m.pressed[key] }
func (m *fakeMapper) WasPressed(key constants.Keycode) bool { return m.wasPressed[key] }
func (m *fakeMapper) IsTouched(what constants.PST) bool     { return m.touched[what] }
func (m *fakeMapper) WasTouched(what constants.PST) bool    { return m.wasTouched[what] }

func (m *fakeMapper) setTouched(what constants.PST, v bool) {
	m.wasTouched[what] = m.touched[what]
	m.touched[what] = v
}

func (m *fakeMapper) HapticEffect(data HapticData) { m.hapticLog = append(m.hapticLog, data) }

func (m *fakeMapper) SpecialAction(kind SpecialActionKind, payload any) bool {
	if m.handleSpecialHook != nil {
		return m.handleSpecialHook(kind, payload)
	}
	return false
}

func (m *fakeMapper) Schedule(delay time.Duration, fn func()) ScheduledTask {
	t := &fakeTask{at: m.now.Add(delay), fn: fn}
	m.tasks = append(m.tasks, t)
	return t
}

func (m *fakeMapper) Cancel(task ScheduledTask) {
	if t, ok := task.(*fakeTask); ok {
		t.canceled = true
	}
}

func (m *fakeMapper) Now() time.Time { return m.now }

// advance runs every not-yet-run, non-canceled task due by now+delta, in
// scheduling order, then sets now to now+delta. It re-scans after each run
// so a task that schedules another task due within the same advance fires
// too, same as the real scheduler.
func (m *fakeMapper) advance(delta time.Duration) {
	target := m.now.Add(delta)
	for {
		ran := false
		for _, t := range m.tasks {
			if t.ran || t.canceled || t.at.After(target) {
				continue
			}
			t.ran = true
			m.now = t.at
			t.fn()
			ran = true
			break
		}
		if !ran {
			break
		}
	}
	m.now = target
}
