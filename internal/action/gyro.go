package action

import (
	"fmt"
	"strings"

	"github.com/galago-remap/scte/internal/constants"
	"github.com/galago-remap/scte/internal/param"
	"github.com/galago-remap/scte/internal/paramcheck"
)

var gyroChecker = paramcheck.New("xx+?x+?")

func init() {
	gyroChecker.SetDefaults(param.NewInt(int64(constants.AxisNone)), param.NewInt(int64(constants.AxisNone)))
	Register("gyro", gyroConstructor)
	Register("gyroabs", gyroConstructor)
}

// gyroAction drives up to three axes straight from gyroscope pitch/yaw/roll.
// "gyro" feeds relative motion (e.g. mouse REL axes); "gyroabs" feeds
// absolute stick/pad axes and additionally exposes deadzoneFn, a hook a
// wrapping deadzone modifier splices itself into at compress time so the
// deadzone applies to the already-computed output rather than the raw
// gyro input.
type gyroAction struct {
	isAbs       bool
	axes        [3]constants.Axis
	sensitivity [3]float64
	haptic      HapticData
	deadzoneFn  func(x, y int32, rng int32) (int32, int32)
}

func gyroConstructor(keyword string, params []param.Parameter) (Action, error) {
	if err := gyroChecker.Check(keyword, params); err != nil {
		return nil, err
	}
	params = gyroChecker.FillDefaults(params)

	g := &gyroAction{
		isAbs:       keyword == "gyroabs",
		sensitivity: [3]float64{1, 1, 1},
	}
	g.axes[0] = constants.Axis(params[0].AsInt())
	g.axes[1] = constants.Axis(params[1].AsInt())
	g.axes[2] = constants.Axis(params[2].AsInt())
	return g, nil
}

func (g *gyroAction) Keyword() string {
	if g.isAbs {
		return "gyroabs"
	}
	return "gyro"
}

func (g *gyroAction) Flags() Flags {
	f := AFAction | AFModSensitivity
	if g.isAbs {
		f |= AFModDeadzone
	}
	return f
}

func (g *gyroAction) ToString() string {
	parts := make([]string, 0, 3)
	for _, ax := range g.axes {
		parts = append(parts, param.NewInt(int64(ax)).ToString())
	}
	for len(parts) > 1 && parts[len(parts)-1] == param.NewInt(int64(constants.AxisNone)).ToString() {
		parts = parts[:len(parts)-1]
	}
	return fmt.Sprintf("%s(%s)", g.Keyword(), strings.Join(parts, ", "))
}

func (g *gyroAction) Describe(ctx DescContext) string {
	if g.axes[0] == constants.AxisRelX || g.axes[0] == constants.AxisRelY {
		return "Mouse"
	}
	lines := make([]string, 0, 3)
	for _, ax := range g.axes {
		if ax != constants.AxisNone {
			lines = append(lines, constants.DescribeAxis(ax, 0))
		}
	}
	return strings.Join(lines, "\n")
}

func (g *gyroAction) Compress() Action { return g }

func (g *gyroAction) SetSensitivity(x, y, z float64) {
	g.sensitivity[0], g.sensitivity[1], g.sensitivity[2] = x, y, z
}

func (g *gyroAction) SetHaptic(data HapticData) { g.haptic = data }

func (g *gyroAction) GetProperty(name string) (param.Parameter, bool) {
	if name == "haptic" {
		return hapticProperty(g.haptic), true
	}
	return nil, false
}

func (g *gyroAction) Gyro(m Mapper, pitch, yaw, roll float64, q1, q2, q3, q4 float64) {
	pyr := [3]float64{pitch, yaw, roll}
	for i, ax := range g.axes {
		if ax == constants.AxisNone {
			continue
		}
		v := pyr[i] * g.sensitivity[i] * -10.0
		x := clampAxisValue(int32(v), constants.StickPadMax)
		if g.deadzoneFn != nil {
			x, _ = g.deadzoneFn(x, 0, constants.StickPadMax)
		}
		m.SetAxis(ax, x)
	}
}

func clampAxisValue(v int32, max int32) int32 {
	if v < -max {
		return -max
	}
	if v > max {
		return max
	}
	return v
}
