package action

import (
	"fmt"

	"github.com/galago-remap/scte/internal/constants"
	"github.com/galago-remap/scte/internal/param"
	"github.com/galago-remap/scte/internal/paramcheck"
)

const (
	buttonStickDeadzone = 100
	triggerHalf         = constants.TriggerMax / 2 // half of the trigger's analog range
)

var buttonChecker = paramcheck.New("cc?")

func init() {
	buttonChecker.SetDefaults(param.NewInt(0))
	Register("button", buttonConstructor)
}

// buttonAction presses a single virtual key/button, bound to a stick, pad,
// trigger or gyro slot depending on where it's placed in a profile.
type buttonAction struct {
	param0, param1 param.Parameter
	button0        constants.Keycode
	button1        constants.Keycode
	pressedButton  constants.Keycode
	haptic         HapticData
}

// NewButton builds a button action directly from a keycode, bypassing the
// checker/constructor path — used when another action kind (e.g. press/
// release's bare-keycode form, or type's per-character steps) needs to
// synthesize one internally.
func NewButton(key constants.Keycode) Action {
	return &buttonAction{button0: key, button1: 0}
}

func buttonConstructor(keyword string, params []param.Parameter) (Action, error) {
	if err := buttonChecker.Check(keyword, params); err != nil {
		return nil, err
	}
	params = buttonChecker.FillDefaults(params)
	return &buttonAction{
		param0:  params[0],
		param1:  params[1],
		button0: constants.Keycode(params[0].AsInt()),
		button1: constants.Keycode(params[1].AsInt()),
	}, nil
}

func (b *buttonAction) Keyword() string { return "button" }
func (b *buttonAction) Flags() Flags {
	return AFAction | AFKeycode | AFModFeedback | AFModOSD
}

func (b *buttonAction) ToString() string {
	if b.param0 == nil {
		return fmt.Sprintf("button(%d)", b.button0)
	}
	if b.button1 == 0 {
		return fmt.Sprintf("button(%s)", b.param0.ToString())
	}
	return fmt.Sprintf("button(%s, %s)", b.param0.ToString(), b.param1.ToString())
}

func (b *buttonAction) Describe(ctx DescContext) string {
	if s := constants.DescribeButton(b.button0); s != "" {
		switch b.button0 {
		case constants.KeyLeftShift, constants.KeyRightShift:
			if ctx == ACOSD {
				return "Shift"
			}
		case constants.KeyLeftAlt, constants.KeyRightAlt:
			if ctx == ACOSD {
				return "Alt"
			}
		case constants.KeyLeftCtrl, constants.KeyRightCtrl:
			if ctx == ACOSD {
				return "CTRL"
			}
		}
		return s
	}
	return b.ToString()
}

func (b *buttonAction) Compress() Action { return b }

func (b *buttonAction) ButtonPress(m Mapper) {
	if b.haptic.Enabled {
		m.HapticEffect(b.haptic)
	}
	m.KeyPress(b.button0, false)
}

func (b *buttonAction) ButtonRelease(m Mapper) {
	m.KeyRelease(b.button0)
}

func (b *buttonAction) Whole(m Mapper, x, y int32, what constants.PST) {
	switch what {
	case constants.PSTStick:
		// Stick used as one big button, typically inside a ring binding.
		if abs32(x) < buttonStickDeadzone && abs32(y) < buttonStickDeadzone {
			if b.pressedButton == b.button0 {
				m.KeyRelease(b.button0)
				b.pressedButton = 0
			}
		} else if b.pressedButton != b.button0 {
			m.KeyPress(b.button0, false)
			b.pressedButton = b.button0
		}
	case constants.PSTLPad, constants.PSTRPad:
		// Whole pad used as a single button, e.g. as part of a click() binding.
		press := constants.WhatToPressedButton(what)
		if m.IsPressed(press) && !m.WasPressed(press) {
			m.KeyPress(b.button0, false)
		} else if !m.IsPressed(press) && m.WasPressed(press) {
			m.KeyRelease(b.button0)
		}
	case constants.PSTCPad:
		if m.IsTouched(what) && !m.WasTouched(what) {
			m.KeyPress(b.button0, false)
		}
		if m.WasTouched(what) && !m.IsTouched(what) {
			m.KeyRelease(b.button0)
		}
	default:
		// trigger / gyro never reach whole()
	}
}

func (b *buttonAction) Trigger(m Mapper, oldPos, pos int32, what constants.PST) {
	if pos >= triggerHalf && oldPos < triggerHalf {
		b.ButtonPress(m)
	} else if pos < triggerHalf && oldPos >= triggerHalf {
		b.ButtonRelease(m)
	}
}

func (b *buttonAction) SetHaptic(data HapticData) { b.haptic = data }

func (b *buttonAction) GetProperty(name string) (param.Parameter, bool) {
	switch name {
	case "button", "keycode":
		return param.NewInt(int64(b.button0)), true
	case "haptic":
		return hapticProperty(b.haptic), true
	}
	return nil, false
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
