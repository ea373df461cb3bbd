package action

import (
	"fmt"
	"math"

	"github.com/galago-remap/scte/internal/constants"
	"github.com/galago-remap/scte/internal/param"
	"github.com/galago-remap/scte/internal/paramcheck"
)

var xyChecker = paramcheck.New("aa?")

func init() {
	xyChecker.SetDefaults(param.NewAction(NoAction))
	Register("XY", xyConstructor)
	Register("relXY", xyConstructor)
}

// xyAction splits a stick or pad's two axes between two independent child
// actions. relXY is the same thing but treats wherever the pad was first
// touched as the origin, instead of the pad's physical center.
type xyAction struct {
	x, y         Action
	isRelative   bool
	origin       [2]int32
	oldPos       [2]int32
	haptic       HapticData
	bigHaptic    HapticData
	hapticCounter [2]float64
	innerCircle  bool
}

func xyConstructor(keyword string, params []param.Parameter) (Action, error) {
	if err := xyChecker.Check(keyword, params); err != nil {
		return nil, err
	}
	params = xyChecker.FillDefaults(params)
	return &xyAction{
		isRelative: keyword == "relXY",
		x:          actionFromParam(params[0]),
		y:          actionFromParam(params[1]),
	}, nil
}

func (xy *xyAction) Keyword() string {
	if xy.isRelative {
		return "relXY"
	}
	return "XY"
}

func (xy *xyAction) Flags() Flags {
	f := AFAction | AFModFeedback | AFModSensitivity | AFModRotate | AFModSmooth
	if !xy.isRelative {
		f |= AFModBall
	}
	return f
}

func (xy *xyAction) ToString() string {
	if xy.y == NoAction {
		return fmt.Sprintf("%s(%s)", xy.Keyword(), xy.x.ToString())
	}
	return fmt.Sprintf("%s(%s, %s)", xy.Keyword(), xy.x.ToString(), xy.y.ToString())
}

func (xy *xyAction) Describe(ctx DescContext) string {
	if ctx == ACSwitcher {
		return xy.x.Describe(ctx) + "\n" + xy.y.Describe(ctx)
	}
	return xy.x.Describe(ctx) + " " + xy.y.Describe(ctx)
}

func (xy *xyAction) Compress() Action {
	xy.x = xy.x.Compress()
	xy.y = xy.y.Compress()
	return xy
}

func (xy *xyAction) GetChildren() []Action { return []Action{xy.x, xy.y} }

func (xy *xyAction) GetProperty(name string) (param.Parameter, bool) {
	switch name {
	case "x":
		return param.NewAction(xy.x), true
	case "y":
		return param.NewAction(xy.y), true
	case "haptic":
		return hapticProperty(xy.haptic), true
	case "sensitivity":
		sx, sy := xy.childSensitivity()
		return param.NewTuple([]param.Parameter{param.NewFloat(sx), param.NewFloat(sy)}), true
	}
	return nil, false
}

func (xy *xyAction) childSensitivity() (float64, float64) {
	get := func(a Action) float64 {
		pg, ok := a.(PropertyGetter)
		if !ok {
			return 1.0
		}
		p, ok := pg.GetProperty("sensitivity")
		if !ok {
			return 1.0
		}
		t, ok := param.AsTuple(p)
		if !ok || len(t) == 0 {
			return 1.0
		}
		return t[0].AsFloat()
	}
	return get(xy.x), get(xy.y)
}

func (xy *xyAction) SetSensitivity(x, y, z float64) {
	if s, ok := xy.x.(SensitivitySetter); ok {
		s.SetSensitivity(x, 1, 1)
	}
	if s, ok := xy.y.(SensitivitySetter); ok {
		s.SetSensitivity(y, 1, 1)
	}
}

func (xy *xyAction) SetHaptic(data HapticData) {
	xSetter, xOK := xy.x.(HapticSetter)
	ySetter, yOK := xy.y.(HapticSetter)
	if xOK || yOK {
		if xOK {
			xSetter.SetHaptic(data)
		}
		if yOK {
			ySetter.SetHaptic(data)
		}
		return
	}
	// Neither child supports feedback on its own, so XY drives it directly.
	xy.haptic = data
	xy.bigHaptic = data
	amp := uint32(data.Amplitude) * 4
	if amp > 0xFFFF {
		amp = 0xFFFF
	}
	xy.bigHaptic.Amplitude = uint16(amp)
}

func isInnerCircle(x, y int32) bool {
	distance := math.Hypot(float64(x), float64(y))
	return distance > float64(constants.StickPadMax)*2.0/3.0
}

func (xy *xyAction) Change(m Mapper, dx, dy float64, what constants.PST) {
	DispatchChange(xy.x, m, dx, 0, what)
	DispatchChange(xy.y, m, 0, dy, what)
}

func (xy *xyAction) Whole(m Mapper, x, y int32, what constants.PST) {
	if m.Flags().Has(MapperHasRStick) && what == constants.PSTRPad {
		DispatchAxis(xy.x, m, x, what)
		DispatchAxis(xy.y, m, y, what)
		return
	}
	if what != constants.PSTLPad && what != constants.PSTRPad && what != constants.PSTCPad {
		DispatchAxis(xy.x, m, x, what)
		DispatchAxis(xy.y, m, y, what)
		return
	}

	if xy.isRelative && m.IsTouched(what) {
		if !m.WasTouched(what) {
			xy.origin = [2]int32{x, y}
		}
		x = clampInt32(constants.StickPadMax, x-xy.origin[0])
		y = clampInt32(constants.StickPadMax, y-xy.origin[1])
	}

	if xy.haptic.Enabled {
		if m.WasTouched(what) {
			inner := isInnerCircle(x, y)
			distance := math.Hypot(xy.hapticCounter[0], xy.hapticCounter[1])
			xy.hapticCounter[0] += float64(x - xy.oldPos[0])
			xy.hapticCounter[1] += float64(y - xy.oldPos[1])
			if xy.innerCircle != inner {
				xy.innerCircle = inner
				m.HapticEffect(xy.bigHaptic)
			} else if distance > float64(xy.haptic.Frequency) {
				xy.hapticCounter = [2]float64{0, 0}
				m.HapticEffect(xy.haptic)
			}
		} else {
			xy.innerCircle = isInnerCircle(x, y)
		}
		xy.oldPos = [2]int32{x, y}
	}

	DispatchAxis(xy.x, m, x, what)
	DispatchAxis(xy.y, m, y, what)
}

func clampInt32(limit, v int32) int32 {
	if v < -limit {
		return -limit
	}
	if v > limit {
		return limit
	}
	return v
}
