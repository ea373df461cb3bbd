package action

import (
	"fmt"

	"github.com/galago-remap/scte/internal/constants"
	"github.com/galago-remap/scte/internal/param"
	"github.com/galago-remap/scte/internal/paramcheck"
)

var axisChecker = paramcheck.New("xi16?i16?")

func init() {
	Register("axis", axisConstructor)
	Register("raxis", axisConstructor)
	Register("hatup", axisConstructor)
	Register("hatdown", axisConstructor)
	Register("hatleft", axisConstructor)
	Register("hatright", axisConstructor)
}

// axisAction drives one gamepad axis directly from a stick/pad/trigger
// reading, optionally rescaled to a custom (min, max) range and optionally
// reversed (raxis), or pinned to a DPAD hat direction (hatup/down/left/right).
type axisAction struct {
	keyword string
	axis    constants.Axis
	scale   float64
	min     int32
	max     int32
}

func axisConstructor(keyword string, params []param.Parameter) (Action, error) {
	if err := axisChecker.Check(keyword, params); err != nil {
		return nil, err
	}

	ax := &axisAction{keyword: keyword, axis: constants.Axis(params[0].AsInt()), scale: 1.0}

	isHat := keyword == "hatup" || keyword == "hatdown" || keyword == "hatleft" || keyword == "hatright"
	if isHat {
		ax.min, ax.max = 0, -(constants.StickPadMax+1)
		if keyword == "hatdown" || keyword == "hatright" {
			ax.min, ax.max = 0, constants.StickPadMax-1
		}
		if len(params) != 1 {
			return nil, invalidArity(keyword)
		}
		return ax, nil
	}

	ax.min, ax.max = -constants.StickPadMax, constants.StickPadMax
	if ax.axis == constants.AxisLTrigger || ax.axis == constants.AxisRTrigger {
		ax.min, ax.max = 0, constants.TriggerMax
	}
	if len(params) > 1 {
		ax.min = int32(params[1].AsInt())
	}
	if len(params) > 2 {
		ax.max = int32(params[2].AsInt())
	}
	if keyword == "raxis" {
		ax.min, ax.max = ax.max, ax.min
	}
	return ax, nil
}

func (a *axisAction) Keyword() string { return a.keyword }
func (a *axisAction) Flags() Flags    { return AFAction | AFAxis | AFModDeadzone }

func (a *axisAction) ToString() string {
	if a.keyword == "axis" || a.keyword == "raxis" {
		return fmt.Sprintf("%s(%s, %d, %d)", a.keyword, param.NewInt(int64(a.axis)).ToString(), a.min, a.max)
	}
	return fmt.Sprintf("%s(%s)", a.keyword, param.NewInt(int64(a.axis)).ToString())
}

func (a *axisAction) Describe(ctx DescContext) string {
	dir := 1
	if a.min > a.max {
		dir = -1
	}
	return constants.DescribeAxis(a.axis, dir)
}

func (a *axisAction) Compress() Action { return a }

func (a *axisAction) SetSensitivity(x, y, z float64) { a.scale = x }

func (a *axisAction) GetProperty(name string) (param.Parameter, bool) {
	switch name {
	case "sensitivity":
		return param.NewTuple([]param.Parameter{param.NewFloat(a.scale)}), true
	case "axis":
		return param.NewInt(int64(a.axis)), true
	}
	return nil, false
}

func (a *axisAction) clamp(v float64) int32 {
	lo, hi := a.min, a.max
	if lo > hi {
		lo, hi = hi, lo
	}
	switch a.axis {
	case constants.AxisLTrigger, constants.AxisRTrigger:
		return int32(clampF(0, v, constants.TriggerMax))
	case constants.AxisHat0X, constants.AxisHat0Y:
		return int32(clampF(-1, v, 1))
	default:
		return int32(clampF(float64(lo), v, float64(hi)))
	}
}

func (a *axisAction) ButtonPress(m Mapper) { m.SetAxis(a.axis, a.clamp(float64(a.max))) }

func (a *axisAction) ButtonRelease(m Mapper) { m.SetAxis(a.axis, a.clamp(float64(a.min))) }

func (a *axisAction) Axis(m Mapper, value int32, what constants.PST) {
	p := (float64(value)*a.scale - float64(-constants.StickPadMax)) / float64(2*constants.StickPadMax)
	p = p*float64(a.max-a.min) + float64(a.min)
	m.SetAxis(a.axis, a.clamp(p))
}

func (a *axisAction) Change(m Mapper, dx, dy float64, what constants.PST) {
	v := clampF(-constants.StickPadMax, dx, constants.StickPadMax)
	a.Axis(m, int32(v), what)
}

func (a *axisAction) Trigger(m Mapper, oldPos, pos int32, what constants.PST) {
	p := (float64(pos)*a.scale - 0) / float64(constants.TriggerMax)
	p = p*float64(a.max-a.min) + float64(a.min)
	m.SetAxis(a.axis, a.clamp(p))
}
