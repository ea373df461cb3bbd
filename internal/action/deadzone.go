package action

import (
	"fmt"
	"math"

	"github.com/galago-remap/scte/internal/constants"
	"github.com/galago-remap/scte/internal/param"
	"github.com/galago-remap/scte/internal/paramcheck"
)

// jumpHardcodedLimit is the minimum analog magnitude below which MINIMUM mode
// snaps straight to zero instead of rescaling, avoiding a visible jump for
// sensor noise near the origin.
const jumpHardcodedLimit = 5

type deadzoneModeKind int

const (
	deadzoneCut deadzoneModeKind = iota
	deadzoneRound
	deadzoneLinear
	deadzoneMinimum
)

var deadzoneChecker = paramcheck.New("s?ii?a")

func init() {
	deadzoneChecker.SetDefaults(param.NewConstString("CUT"), param.NewInt(constants.StickPadMax))
	Register("deadzone", deadzoneConstructor)
}

// deadzoneModifier rescales or cuts off analog input near the rest position,
// in one of four modes, before handing the result to its child.
type deadzoneModifier struct {
	child      Action
	mode       deadzoneModeKind
	modeName   string
	lower      int32
	upper      int32
}

func deadzoneConstructor(keyword string, params []param.Parameter) (Action, error) {
	if err := deadzoneChecker.Check(keyword, params); err != nil {
		return nil, err
	}
	params = deadzoneChecker.FillDefaults(params)

	modeName := params[0].AsString()
	var mode deadzoneModeKind
	switch modeName {
	case "CUT":
		mode = deadzoneCut
	case "ROUND":
		mode = deadzoneRound
	case "LINEAR":
		mode = deadzoneLinear
	case "MINIMUM":
		mode = deadzoneMinimum
	default:
		return nil, invalidParamType(keyword, params[0], 1)
	}

	return &deadzoneModifier{
		mode:     mode,
		modeName: modeName,
		lower:    int32(params[1].AsInt()),
		upper:    int32(params[2].AsInt()),
		child:    actionFromParam(params[3]),
	}, nil
}

func (d *deadzoneModifier) Keyword() string { return "deadzone" }
func (d *deadzoneModifier) Flags() Flags    { return 0 }

func (d *deadzoneModifier) ToString() string {
	return fmt.Sprintf("deadzone(%s, %d, %d, %s)", d.modeName, d.lower, d.upper, d.child.ToString())
}

func (d *deadzoneModifier) Describe(ctx DescContext) string { return d.child.Describe(ctx) }

func (d *deadzoneModifier) Compress() Action {
	d.child = d.child.Compress()

	switch c := d.child.(type) {
	case *ballAction:
		if d.mode == deadzoneMinimum {
			// The ball's physics must run on the raw stick input; splice
			// this deadzone between the ball and its own child instead of
			// between the stick and the ball.
			inner := c.child
			c.child = d
			d.child = inner
			return c
		}
	case *gyroAction:
		if c.isAbs {
			// GyroAbs needs the deadzone applied to its already-computed
			// output, not to the raw gyro input it receives.
			c.deadzoneFn = d.apply
			return c
		}
	}
	return d
}

func (d *deadzoneModifier) GetChild() Action { return d.child }

func (d *deadzoneModifier) GetProperty(name string) (param.Parameter, bool) {
	switch name {
	case "upper":
		return param.NewInt(int64(d.upper)), true
	case "lower":
		return param.NewInt(int64(d.lower)), true
	}
	return nil, false
}

// apply runs the configured mode function over (x, y) in place, used both
// for direct dispatch and as the deadzone hook spliced into gyroabs.
func (d *deadzoneModifier) apply(x, y int32, rng int32) (int32, int32) {
	switch d.mode {
	case deadzoneCut:
		return d.modeCut(x, y)
	case deadzoneRound:
		return d.modeRound(x, y, rng)
	case deadzoneLinear:
		return d.modeLinear(x, y, rng)
	default:
		return d.modeMinimum(x, y, rng)
	}
}

func (d *deadzoneModifier) modeCut(x, y int32) (int32, int32) {
	if y == 0 {
		if abs32(x) < d.lower || abs32(x) > d.upper {
			return 0, 0
		}
		return x, y
	}
	distance := math.Hypot(float64(x), float64(y))
	if distance < float64(d.lower) || distance > float64(d.upper) {
		return 0, 0
	}
	return x, y
}

func (d *deadzoneModifier) modeRound(x, y, rng int32) (int32, int32) {
	if y == 0 {
		switch {
		case abs32(x) > d.upper:
			return int32(math.Copysign(float64(rng), float64(x))), y
		case abs32(x) < d.lower:
			return 0, y
		}
		return x, y
	}
	distance := math.Hypot(float64(x), float64(y))
	if distance < float64(d.lower) {
		return 0, 0
	}
	if distance > float64(d.upper) {
		angle := math.Atan2(float64(x), float64(y))
		return int32(float64(rng) * math.Sin(angle)), int32(float64(rng) * math.Cos(angle))
	}
	return x, y
}

func (d *deadzoneModifier) modeLinear(x, y, rng int32) (int32, int32) {
	span := float64(d.upper - d.lower)
	if y == 0 {
		clamped := clampF(0, (float64(x-d.lower)/span)*float64(rng), float64(rng))
		return int32(math.Copysign(clamped, float64(x))), y
	}
	distance := math.Hypot(float64(x), float64(y))
	distance = clampF(float64(d.lower), distance, float64(d.upper))
	distance = (distance - float64(d.lower)) / span * float64(rng)
	angle := math.Atan2(float64(x), float64(y))
	return int32(distance * math.Sin(angle)), int32(distance * math.Cos(angle))
}

func (d *deadzoneModifier) modeMinimum(x, y, rng int32) (int32, int32) {
	span := float64(d.upper - d.lower)
	if y == 0 {
		if abs32(x) < jumpHardcodedLimit {
			return 0, y
		}
		v := (float64(abs32(x))/float64(rng))*span + float64(d.lower)
		return int32(math.Copysign(v, float64(x))), y
	}
	distance := math.Hypot(float64(x), float64(y))
	if distance < jumpHardcodedLimit {
		return 0, 0
	}
	distance = distance/float64(rng)*span + float64(d.lower)
	angle := math.Atan2(float64(x), float64(y))
	return int32(distance * math.Sin(angle)), int32(distance * math.Cos(angle))
}

func clampF(lo, v, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (d *deadzoneModifier) Axis(m Mapper, value int32, what constants.PST) {
	value, _ = d.apply(value, 0, constants.StickPadMax)
	DispatchAxis(d.child, m, value, what)
}

func (d *deadzoneModifier) Trigger(m Mapper, oldPos, pos int32, what constants.PST) {
	pos, _ = d.apply(pos, 0, constants.TriggerMax)
	oldPos, _ = d.apply(oldPos, 0, constants.TriggerMax)
	DispatchTrigger(d.child, m, oldPos, pos, what)
}

func (d *deadzoneModifier) Whole(m Mapper, x, y int32, what constants.PST) {
	x, y = d.apply(x, y, constants.StickPadMax)
	DispatchWhole(d.child, m, x, y, what)
}
