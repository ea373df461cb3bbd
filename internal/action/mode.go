package action

import (
	"strings"

	"github.com/galago-remap/scte/internal/constants"
	"github.com/galago-remap/scte/internal/param"
)

const (
	modeDefaultTimeout = 0.2
	modeMinTrigger     = 2
	modeMinStick       = 2
)

type modeConditionKind int

const (
	modeConditionButton modeConditionKind = iota
	modeConditionRange
	modeConditionDefault
)

type modeEntry struct {
	kind     modeConditionKind
	button   constants.Keycode
	rangeVal param.Parameter
	action   Action
	active   bool
}

func init() { Register("mode", modeConstructor) }

// modeModifier picks one of several child actions based on which physical
// button is currently held (or a default when none is), switching instantly
// and deactivating whatever was previously active as soon as the condition
// no longer matches. Range conditions (modeConditionRange) parse and
// round-trip, but never match at dispatch.
type modeModifier struct {
	entries []*modeEntry
}

func modeConstructor(keyword string, params []param.Parameter) (Action, error) {
	mm := &modeModifier{}
	var pending *modeEntry

	for i, p := range params {
		if pending == nil {
			switch {
			case p.Type()&param.TString != 0:
				if b, ok := constants.StringToButton(strings.ToUpper(p.AsString())); ok {
					pending = &modeEntry{kind: modeConditionButton, button: b}
					continue
				}
			case p.Type()&param.TRange != 0:
				pending = &modeEntry{kind: modeConditionRange, rangeVal: p}
				continue
			case p.Type()&param.TAction != 0:
				if i == len(params)-1 {
					mm.entries = append(mm.entries, &modeEntry{
						kind:   modeConditionDefault,
						action: actionFromParam(p),
					})
					pending = nil
					continue
				}
			}
			return nil, invalidParameterType(keyword, p.ToString(), i+1)
		}
		if p.Type()&param.TAction == 0 {
			return nil, invalidParameterType(keyword, p.ToString(), i+1)
		}
		pending.action = actionFromParam(p)
		mm.entries = append(mm.entries, pending)
		pending = nil
	}
	if pending != nil {
		return nil, invalidArity(keyword)
	}
	return mm, nil
}

func (mm *modeModifier) Keyword() string { return "mode" }
func (mm *modeModifier) Flags() Flags    { return AFAction }

func (mm *modeModifier) ToString() string {
	parts := make([]string, 0, len(mm.entries)*2)
	for _, e := range mm.entries {
		switch e.kind {
		case modeConditionButton:
			parts = append(parts, constants.ButtonToString(e.button))
		case modeConditionRange:
			parts = append(parts, e.rangeVal.ToString())
		}
		parts = append(parts, e.action.ToString())
	}
	return "mode(" + strings.Join(parts, ", ") + ")"
}

func (mm *modeModifier) Describe(ctx DescContext) string {
	if len(mm.entries) == 0 {
		return ""
	}
	return mm.entries[0].action.Describe(ctx)
}

func (mm *modeModifier) Compress() Action {
	for _, e := range mm.entries {
		e.action = e.action.Compress()
	}
	return mm
}

func (mm *modeModifier) choose(m Mapper) *modeEntry {
	var deflt *modeEntry
	for _, e := range mm.entries {
		switch e.kind {
		case modeConditionButton:
			if m.IsPressed(e.button) {
				return e
			}
		case modeConditionRange:
			// Range conditions (trigger/stick position bands) never
			// match here; the default entry, if any, is used instead.
		case modeConditionDefault:
			deflt = e
		}
	}
	return deflt
}

// deactivateAll fires fn against every active entry for which keep returns
// false, and clears their active flag.
func (mm *modeModifier) deactivateAll(keep func(*modeEntry) bool, fn func(Action)) {
	for _, e := range mm.entries {
		if e.active && !keep(e) {
			fn(e.action)
			e.active = false
		}
	}
}

func (mm *modeModifier) ButtonPress(m Mapper) {
	if e := mm.choose(m); e != nil {
		DispatchButtonPress(e.action, m)
		e.active = true
	}
}

func (mm *modeModifier) ButtonRelease(m Mapper) {
	mm.deactivateAll(func(*modeEntry) bool { return false }, func(a Action) { DispatchButtonRelease(a, m) })
}

func (mm *modeModifier) Axis(m Mapper, value int32, what constants.PST) {
	if e := mm.choose(m); e != nil {
		DispatchAxis(e.action, m, value, what)
	}
}

func (mm *modeModifier) Whole(m Mapper, x, y int32, what constants.PST) {
	if what == constants.PSTStick {
		if abs32(x) < modeMinStick && abs32(y) < modeMinStick {
			mm.deactivateAll(func(*modeEntry) bool { return false },
				func(a Action) { DispatchWhole(a, m, 0, 0, what) })
			return
		}
		chosen := mm.choose(m)
		if chosen == nil {
			mm.deactivateAll(func(*modeEntry) bool { return false },
				func(a Action) { DispatchWhole(a, m, 0, 0, what) })
			return
		}
		mm.deactivateAll(func(e *modeEntry) bool { return e == chosen },
			func(a Action) { DispatchWhole(a, m, 0, 0, what) })
		DispatchWhole(chosen.action, m, x, y, what)
		chosen.active = true
		return
	}

	chosen := mm.choose(m)
	if chosen == nil || !chosen.active {
		mm.deactivateAll(func(*modeEntry) bool { return false },
			func(a Action) { DispatchWhole(a, m, 0, 0, what) })
		if chosen != nil {
			DispatchWhole(chosen.action, m, x, y, what)
			chosen.active = true
		}
		return
	}
	DispatchWhole(chosen.action, m, x, y, what)
	chosen.active = true
}

func (mm *modeModifier) Trigger(m Mapper, oldPos, pos int32, what constants.PST) {
	if pos < modeMinTrigger {
		mm.deactivateAll(func(*modeEntry) bool { return false },
			func(a Action) { DispatchTrigger(a, m, oldPos, pos, what) })
		return
	}
	if e := mm.choose(m); e != nil {
		DispatchTrigger(e.action, m, oldPos, pos, what)
		e.active = true
	}
}

func (mm *modeModifier) Gyro(m Mapper, pitch, yaw, roll float64, q1, q2, q3, q4 float64) {
	chosen := mm.choose(m)
	if chosen == nil || !chosen.active {
		mm.deactivateAll(func(*modeEntry) bool { return false },
			func(a Action) { DispatchGyro(a, m, 0, 0, 0, q1, q2, q3, q4) })
	}
	if chosen != nil {
		DispatchGyro(chosen.action, m, pitch, yaw, roll, q1, q2, q3, q4)
		chosen.active = true
	}
}

func (mm *modeModifier) Change(Mapper, float64, float64, constants.PST) {}

func (mm *modeModifier) SetHaptic(data HapticData) {
	for _, e := range mm.entries {
		if h, ok := e.action.(HapticSetter); ok {
			h.SetHaptic(data)
		}
	}
}

func (mm *modeModifier) SetSensitivity(x, y, z float64) {
	for _, e := range mm.entries {
		if s, ok := e.action.(SensitivitySetter); ok {
			s.SetSensitivity(x, y, z)
		}
	}
}

func (mm *modeModifier) GetProperty(name string) (param.Parameter, bool) {
	switch name {
	case "default":
		for _, e := range mm.entries {
			if e.kind == modeConditionDefault {
				return param.NewAction(e.action), true
			}
		}
		return param.NewAction(NoAction), true
	case "timeout":
		return param.NewFloat(modeDefaultTimeout), true
	}
	return nil, false
}
