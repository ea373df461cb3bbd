package action

import (
	"github.com/galago-remap/scte/internal/param"
	"github.com/galago-remap/scte/internal/paramcheck"
)

const tiltThreshold = 0.75

var tiltChecker = paramcheck.New("a?a?aa?a?a?")

func init() {
	none := param.NewAction(NoAction)
	tiltChecker.SetDefaults(none, none, none, none, none)
	Register("tilt", tiltConstructor)
}

// tiltAction fires one of six button-like children depending on which way
// the controller is physically tilted or rotated: front down/up, tilted
// left/right, rotated left/right — one pair of actions per euler axis.
type tiltAction struct {
	actions     [6]Action
	states      [6]bool
	sensitivity [3]float64
}

func tiltConstructor(keyword string, params []param.Parameter) (Action, error) {
	if err := tiltChecker.Check(keyword, params); err != nil {
		return nil, err
	}
	params = tiltChecker.FillDefaults(params)

	t := &tiltAction{sensitivity: [3]float64{1, 1, 1}}
	for i := 0; i < 6; i++ {
		t.actions[i] = actionFromParam(params[i])
	}
	return t, nil
}

func (t *tiltAction) Keyword() string { return "tilt" }
func (t *tiltAction) Flags() Flags    { return AFAction | AFModSensitivity }

func (t *tiltAction) ToString() string {
	out := "tilt("
	for i, a := range t.actions {
		if i > 0 {
			out += ", "
		}
		out += a.ToString()
	}
	return out + ")"
}

func (t *tiltAction) Describe(ctx DescContext) string { return "tilt" }

func (t *tiltAction) Compress() Action {
	for i := range t.actions {
		t.actions[i] = t.actions[i].Compress()
	}
	return t
}

func (t *tiltAction) GetChildren() []Action {
	children := make([]Action, 0, 6)
	for _, a := range t.actions {
		if a != NoAction {
			children = append(children, a)
		}
	}
	return children
}

func (t *tiltAction) SetSensitivity(x, y, z float64) {
	t.sensitivity[0], t.sensitivity[1], t.sensitivity[2] = x, y, z
}

func (t *tiltAction) GetProperty(name string) (param.Parameter, bool) {
	if name == "sensitivity" {
		return param.NewTuple([]param.Parameter{
			param.NewFloat(t.sensitivity[0]), param.NewFloat(t.sensitivity[1]), param.NewFloat(t.sensitivity[2]),
		}), true
	}
	return nil, false
}

func (t *tiltAction) edge(m Mapper, i int, active bool) {
	if t.actions[i] == NoAction {
		return
	}
	if active && !t.states[i] {
		DispatchButtonPress(t.actions[i], m)
		t.states[i] = true
	} else if !active && t.states[i] {
		DispatchButtonRelease(t.actions[i], m)
		t.states[i] = false
	}
}

func (t *tiltAction) Gyro(m Mapper, pitch, yaw, roll float64, q1, q2, q3, q4 float64) {
	pyr := [3]float64{pitch, yaw, roll}
	for j := 0; j < 3; j++ {
		i := j * 2
		t.edge(m, i, pyr[j] < tiltThreshold*-1/t.sensitivity[j])
		t.edge(m, i+1, pyr[j] > tiltThreshold/t.sensitivity[j])
	}
}
