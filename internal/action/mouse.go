package action

import (
	"fmt"

	"github.com/galago-remap/scte/internal/constants"
	"github.com/galago-remap/scte/internal/param"
	"github.com/galago-remap/scte/internal/paramcheck"
)

// mouseAxisFactor puts stick-driven mouse movement into a sane default
// speed range; arbitrary, matches the original's own admission of the same.
const mouseAxisFactor = 0.005

var mouseChecker = paramcheck.New("c?f?")

func init() {
	mouseChecker.SetDefaults(param.NewInt(int64(constants.AxisRelBoth)), param.NewFloat(1.0))
	Register("mouse", mouseConstructor)
	Register("trackpad", mouseConstructor)
}

// mouseAction moves the system mouse pointer (or scroll wheel) from a
// stick, pad, trigger, or axis binding.
type mouseAction struct {
	wholeHaptic
	axis        constants.Axis
	sensX, sensY float64
	oldX, oldY  int32
	oldPosSet   bool
}

func mouseConstructor(keyword string, params []param.Parameter) (Action, error) {
	if err := mouseChecker.Check(keyword, params); err != nil {
		return nil, err
	}
	params = mouseChecker.FillDefaults(params)

	sens := params[1].AsFloat()
	return &mouseAction{
		axis:  constants.Axis(params[0].AsInt()),
		sensX: sens,
		sensY: sens,
	}, nil
}

func (b *mouseAction) Keyword() string { return "mouse" }
func (b *mouseAction) Flags() Flags    { return AFAction }

func (b *mouseAction) ToString() string {
	if b.axis == constants.AxisRelBoth && b.sensX == 1.0 {
		return "mouse()"
	}
	return fmt.Sprintf("mouse(%s, %g)", param.NewInt(int64(b.axis)).ToString(), b.sensX)
}

func (b *mouseAction) Describe(ctx DescContext) string { return "Mouse" }

func (b *mouseAction) Compress() Action { return b }

func (b *mouseAction) SetSensitivity(x, y, z float64) { b.sensX, b.sensY = x, y }

func (b *mouseAction) SetHaptic(data HapticData) { b.setHaptic(data) }

func (b *mouseAction) GetProperty(name string) (param.Parameter, bool) {
	if name == "haptic" {
		return hapticProperty(b.data), true
	}
	return nil, false
}

func (b *mouseAction) change(m Mapper, dx, dy float64, what constants.PST) {
	b.wholeHaptic.change(m, dx, dy)
	dx *= b.sensX
	dy *= b.sensY
	switch b.axis {
	case constants.AxisRelBoth:
		m.MoveMouse(dx, dy)
	case constants.AxisRelX:
		m.MoveMouse(dx, 0)
	case constants.AxisRelY:
		m.MoveMouse(0, dx)
	case constants.AxisWheel:
		m.MoveWheel(0, -dx)
	case constants.AxisHWheel:
		m.MoveWheel(dx, 0)
	}
}

func (b *mouseAction) Change(m Mapper, dx, dy float64, what constants.PST) { b.change(m, dx, dy, what) }

func (b *mouseAction) ButtonPress(m Mapper) {
	if b.axis == constants.AxisWheel || b.axis == constants.AxisHWheel {
		b.change(m, 100000, 0, 0)
	} else {
		b.change(m, 100, 0, 0)
	}
}

func (b *mouseAction) Axis(m Mapper, value int32, what constants.PST) {
	b.change(m, float64(value)*mouseAxisFactor, 0, what)
}

func (b *mouseAction) pad(m Mapper, x, y int32, what constants.PST) {
	if m.IsTouched(what) {
		if b.oldPosSet && m.WasTouched(what) {
			b.change(m, float64(x-b.oldX), float64(y-b.oldY), what)
		}
		b.oldX, b.oldY = x, y
		b.oldPosSet = true
	} else {
		b.oldPosSet = false
	}
}

func (b *mouseAction) Whole(m Mapper, x, y int32, what constants.PST) {
	switch what {
	case constants.PSTStick:
		m.MoveMouse(float64(x)*b.sensX*0.01, float64(y)*b.sensY*0.01)
	case constants.PSTLPad, constants.PSTCPad:
		b.pad(m, x, y, what)
	case constants.PSTRPad:
		if m.Flags().Has(MapperHasRStick) {
			m.MoveMouse(float64(x)*b.sensX*0.01, float64(y)*b.sensY*0.01)
		} else {
			b.pad(m, x, y, what)
		}
	}
}

func (b *mouseAction) Trigger(m Mapper, oldPos, pos int32, what constants.PST) {
	delta := float64(pos - oldPos)
	b.change(m, delta, delta, 0)
}

// Gyro intentionally does nothing: mapping gyro rotation straight to mouse
// movement needs a design decision (which axis feeds yaw vs. roll) that was
// never settled upstream either.
func (b *mouseAction) Gyro(Mapper, float64, float64, float64, float64, float64, float64, float64) {}
