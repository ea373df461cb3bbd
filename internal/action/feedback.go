package action

import (
	"fmt"

	"github.com/galago-remap/scte/internal/constants"
	"github.com/galago-remap/scte/internal/param"
	"github.com/galago-remap/scte/internal/paramcheck"
)

var feedbackChecker = paramcheck.New("sc?f?c?a")

func init() {
	feedbackChecker.SetDefaults(param.NewInt(512), param.NewFloat(4.0), param.NewInt(1024))
	Register("feedback", feedbackConstructor)
}

// feedbackModifier enables haptic rumble for a child action that supports
// it, then vanishes at Compress time — the same carrier-then-disappear
// shape as sensitivityModifier.
type feedbackModifier struct {
	haptic HapticData
	child  Action
}

func feedbackConstructor(keyword string, params []param.Parameter) (Action, error) {
	if err := feedbackChecker.Check(keyword, params); err != nil {
		return nil, err
	}
	params = feedbackChecker.FillDefaults(params)

	var pos constants.PST
	switch params[0].AsString() {
	case "LEFT":
		pos = constants.PSTLeft
	case "RIGHT":
		pos = constants.PSTRight
	case "BOTH":
		pos = constants.PSTBoth
	default:
		return nil, invalidParamType(keyword, params[0], 1)
	}

	frequency := 1000.0 * params[2].AsFloat()
	if frequency < 1.0 {
		frequency = 1.0
	}

	return &feedbackModifier{
		haptic: HapticData{
			Enabled:   true,
			Position:  pos,
			Amplitude: uint16(params[1].AsInt()),
			Frequency: uint16(frequency),
			Period:    uint16(params[3].AsInt()),
		},
		child: actionFromParam(params[4]),
	}, nil
}

func (f *feedbackModifier) Keyword() string { return "feedback" }
func (f *feedbackModifier) Flags() Flags    { return 0 }

func (f *feedbackModifier) ToString() string {
	return fmt.Sprintf("feedback(%s)", f.child.ToString())
}

func (f *feedbackModifier) Describe(ctx DescContext) string { return f.child.Describe(ctx) }

func (f *feedbackModifier) Compress() Action {
	f.child = f.child.Compress()
	if setter, ok := f.child.(HapticSetter); ok {
		setter.SetHaptic(f.haptic)
	}
	return f.child
}

func (f *feedbackModifier) GetChild() Action { return f.child }

func (f *feedbackModifier) GetProperty(name string) (param.Parameter, bool) {
	if name == "haptic" {
		return hapticProperty(f.haptic), true
	}
	return nil, false
}
