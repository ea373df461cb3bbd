package action

import (
	"fmt"
	"time"

	"github.com/galago-remap/scte/internal/constants"
	"github.com/galago-remap/scte/internal/param"
	"github.com/galago-remap/scte/internal/paramcheck"
)

const holdDblDefaultTimeout = 200 * time.Millisecond

type holdDblState int

const (
	holdDblIdle holdDblState = iota
	holdDblButtonDown1
	holdDblButtonUp1
	holdDblExecuting
)

var holdDblChecker = paramcheck.New("aa?f?")

func init() {
	holdDblChecker.SetDefaults(param.None, param.NewFloat(holdDblDefaultTimeout.Seconds()))
	Register("hold", holdDblConstructor)
	Register("doubleclick", holdDblConstructor)
}

// holdDblClick implements both 'hold' (runs an action only once a button has
// been held past a timeout) and 'doubleclick' (runs an action only on a
// second press within the timeout). Both live in one type because binding
// both to the same physical button has to merge into a single state
// machine — only one of holdAction/dblclickAction is set by any single
// constructor call; merge() combines two instances at compress time.
type holdDblClick struct {
	holdAction     Action
	dblclickAction Action
	defaultAction  Action

	timeout time.Duration
	state   holdDblState
	active  Action
	task    ScheduledTask
}

func holdDblConstructor(keyword string, params []param.Parameter) (Action, error) {
	if keyword != "hold" {
		keyword = "doubleclick"
	}
	if err := holdDblChecker.Check(keyword, params); err != nil {
		return nil, err
	}
	params = holdDblChecker.FillDefaults(params)

	h := &holdDblClick{
		defaultAction: actionOrNilFromParam(params[1]),
		timeout:       time.Duration(params[2].AsFloat() * float64(time.Second)),
		state:         holdDblIdle,
	}
	if keyword == "hold" {
		h.holdAction = actionFromParam(params[0])
	} else {
		h.dblclickAction = actionFromParam(params[0])
	}
	return h, nil
}

func (h *holdDblClick) Keyword() string {
	if h.holdAction != nil {
		return "hold"
	}
	return "doubleclick"
}

func (h *holdDblClick) Flags() Flags { return AFAction }

func (h *holdDblClick) ToString() string {
	var child Action
	if h.holdAction != nil {
		child = h.holdAction
	} else {
		child = h.dblclickAction
	}
	if h.defaultAction != nil {
		return fmt.Sprintf("%s(%s, %s)", h.Keyword(), child.ToString(), h.defaultAction.ToString())
	}
	return fmt.Sprintf("%s(%s)", h.Keyword(), child.ToString())
}

func (h *holdDblClick) Describe(ctx DescContext) string {
	if h.holdAction != nil {
		return h.holdAction.Describe(ctx)
	}
	if h.dblclickAction != nil {
		return h.dblclickAction.Describe(ctx)
	}
	return ""
}

// mergableHoldDbl reports whether a is a hold/doubleclick instance this one
// can absorb fields from.
func mergableHoldDbl(a Action) bool {
	_, ok := a.(*holdDblClick)
	return ok
}

func (h *holdDblClick) merge(a Action) {
	h2, ok := a.(*holdDblClick)
	if !ok {
		return
	}
	if h2.holdAction != nil && (h.holdAction == nil || h.holdAction == a) {
		h.holdAction = h2.holdAction
	}
	if h2.dblclickAction != nil && (h.dblclickAction == nil || h.dblclickAction == a) {
		h.dblclickAction = h2.dblclickAction
	}
	if h2.defaultAction != nil && (h.defaultAction == nil || h.defaultAction == a) {
		h.defaultAction = h2.defaultAction
	}
	if h.timeout == holdDblDefaultTimeout {
		h.timeout = h2.timeout
	}
}

func (h *holdDblClick) Compress() Action {
	if h.holdAction != nil {
		h.holdAction = h.holdAction.Compress()
	}
	if h.dblclickAction != nil {
		h.dblclickAction = h.dblclickAction.Compress()
	}
	if h.defaultAction != nil {
		h.defaultAction = h.defaultAction.Compress()
	}
	if mergableHoldDbl(h.holdAction) {
		h.merge(h.holdAction)
	}
	if mergableHoldDbl(h.dblclickAction) {
		h.merge(h.dblclickAction)
	}
	if mergableHoldDbl(h.defaultAction) {
		h.merge(h.defaultAction)
	}
	return h
}

func (h *holdDblClick) releaseButton(m Mapper) {
	if h.active != nil {
		DispatchButtonRelease(h.active, m)
		h.active = nil
	}
}

func (h *holdDblClick) onTimeout(m Mapper) {
	h.task = nil
	switch h.state {
	case holdDblButtonDown1:
		h.active = h.holdAction
		if h.active == nil {
			h.active = h.defaultAction
		}
		if h.active != nil {
			DispatchButtonPress(h.active, m)
			h.state = holdDblExecuting
		} else {
			h.state = holdDblIdle
		}
	case holdDblButtonUp1:
		h.active = h.holdAction
		if h.active == nil {
			h.active = h.defaultAction
		}
		if h.active != nil {
			DispatchButtonPress(h.active, m)
			active := h.active
			m.Schedule(time.Millisecond, func() {
				DispatchButtonRelease(active, m)
				h.active = nil
			})
		}
		h.state = holdDblIdle
	case holdDblIdle, holdDblExecuting:
		// A timeout can't legitimately fire in these states.
	}
}

func (h *holdDblClick) stopTimer(m Mapper) {
	if h.task == nil {
		return
	}
	m.Cancel(h.task)
	h.task = nil
}

func (h *holdDblClick) startTimer(m Mapper) {
	h.stopTimer(m)
	h.task = m.Schedule(h.timeout, func() { h.onTimeout(m) })
}

func (h *holdDblClick) ButtonPress(m Mapper) {
	switch h.state {
	case holdDblIdle:
		h.state = holdDblButtonDown1
		h.startTimer(m)
	case holdDblButtonUp1:
		if h.dblclickAction != nil {
			h.active = h.dblclickAction
			DispatchButtonPress(h.active, m)
		}
		h.state = holdDblExecuting
	case holdDblButtonDown1, holdDblExecuting:
		// A button press while already down can't happen.
	}
}

func (h *holdDblClick) ButtonRelease(m Mapper) {
	switch h.state {
	case holdDblButtonDown1:
		if h.dblclickAction != nil {
			h.state = holdDblButtonUp1
		} else if h.defaultAction != nil {
			h.stopTimer(m)
			h.active = h.defaultAction
			DispatchButtonPress(h.active, m)
			active := h.active
			m.Schedule(time.Millisecond, func() {
				DispatchButtonRelease(active, m)
				h.active = nil
			})
			h.state = holdDblIdle
		}
	case holdDblExecuting:
		if h.active != nil {
			DispatchButtonRelease(h.active, m)
			h.active = nil
		}
		h.state = holdDblIdle
	case holdDblIdle, holdDblButtonUp1:
		// A release without a matching press can't happen.
	}
}

func (h *holdDblClick) Trigger(m Mapper, oldPos, pos int32, what constants.PST) {
	if pos == constants.TriggerMax && oldPos < constants.TriggerMax {
		h.ButtonPress(m)
	} else if oldPos == constants.TriggerMax && pos < constants.TriggerMax {
		h.ButtonRelease(m)
	}
}

func (h *holdDblClick) GetProperty(name string) (param.Parameter, bool) {
	switch name {
	case "hold_action":
		if h.holdAction == nil {
			return param.None, true
		}
		return param.NewAction(h.holdAction), true
	case "dblclick_action":
		if h.dblclickAction == nil {
			return param.None, true
		}
		return param.NewAction(h.dblclickAction), true
	case "default_action":
		if h.defaultAction == nil {
			return param.None, true
		}
		return param.NewAction(h.defaultAction), true
	case "timeout":
		return param.NewFloat(h.timeout.Seconds()), true
	}
	return nil, false
}

func (h *holdDblClick) SetHaptic(data HapticData) {
	if s, ok := h.holdAction.(HapticSetter); ok {
		s.SetHaptic(data)
	}
	if s, ok := h.dblclickAction.(HapticSetter); ok {
		s.SetHaptic(data)
	}
}

func (h *holdDblClick) SetSensitivity(x, y, z float64) {
	if s, ok := h.holdAction.(SensitivitySetter); ok {
		s.SetSensitivity(x, y, z)
	}
	if s, ok := h.dblclickAction.(SensitivitySetter); ok {
		s.SetSensitivity(x, y, z)
	}
}
