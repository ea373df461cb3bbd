package action

import (
	"fmt"

	"github.com/galago-remap/scte/internal/constants"
	"github.com/galago-remap/scte/internal/param"
	"github.com/galago-remap/scte/internal/paramcheck"
)

const mouseAbsFactor = 0.005

var mouseAbsChecker = paramcheck.New("c?f?")

func init() {
	mouseAbsChecker.SetDefaults(param.NewInt(int64(constants.AxisRelX)), param.NewFloat(1.0))
	Register("mouseabs", mouseAbsConstructor)
}

// mouseAbsAction maps an absolute axis value or pad/stick position straight
// to mouse movement — the mouse analogue of gyroabs's stick mapping.
type mouseAbsAction struct {
	axis         constants.Axis
	sensX, sensY float64
}

func mouseAbsConstructor(keyword string, params []param.Parameter) (Action, error) {
	if err := mouseAbsChecker.Check(keyword, params); err != nil {
		return nil, err
	}
	params = mouseAbsChecker.FillDefaults(params)

	sens := params[1].AsFloat()
	return &mouseAbsAction{
		axis:  constants.Axis(params[0].AsInt()),
		sensX: sens,
		sensY: sens,
	}, nil
}

func (b *mouseAbsAction) Keyword() string { return "mouseabs" }
func (b *mouseAbsAction) Flags() Flags {
	return AFAction | AFModSensitivity | AFModDeadzone
}

func (b *mouseAbsAction) ToString() string {
	return fmt.Sprintf("mouseabs(%s)", param.NewInt(int64(b.axis)).ToString())
}

func (b *mouseAbsAction) Describe(ctx DescContext) string { return "Mouse" }

func (b *mouseAbsAction) Compress() Action { return b }

func (b *mouseAbsAction) SetSensitivity(x, y, z float64) { b.sensX, b.sensY = x, y }

func (b *mouseAbsAction) Axis(m Mapper, value int32, what constants.PST) {
	d := float64(value) * b.sensX * mouseAbsFactor
	switch b.axis {
	case constants.AxisRelX:
		m.MoveMouse(d, 0)
	case constants.AxisRelY:
		m.MoveMouse(0, d)
	case constants.AxisWheel:
		m.MoveWheel(0, -d)
	case constants.AxisHWheel:
		m.MoveWheel(d, 0)
	}
}

func (b *mouseAbsAction) Whole(m Mapper, x, y int32, what constants.PST) {
	m.MoveMouse(float64(x)*b.sensX*mouseAbsFactor, float64(y)*b.sensY*mouseAbsFactor)
}
