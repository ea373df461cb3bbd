package action

import (
	"fmt"

	"github.com/galago-remap/scte/internal/constants"
	"github.com/galago-remap/scte/internal/param"
	"github.com/galago-remap/scte/internal/paramcheck"
)

var triggerChecker = paramcheck.New("ui8ui8?a")

func init() { Register("trigger", triggerConstructor) }

// triggerAction fires its child once a trigger crosses press_level, and
// releases it again on the level crossing back past release_level. Three
// hysteresis shapes fall out of how press_level and release_level compare:
// release_level > press_level gives a dead band the child stays pressed
// through; equal gives a plain threshold; release_level < press_level
// gives a reverse band (released again only once the level drops back
// below release_level).
type triggerAction struct {
	child        Action
	pressLevel   int32
	releaseLevel int32
	haptic       HapticData
	pressed      bool
}

func triggerConstructor(keyword string, params []param.Parameter) (Action, error) {
	if err := triggerChecker.Check(keyword, params); err != nil {
		return nil, err
	}

	t := &triggerAction{pressLevel: int32(params[0].AsInt())}
	if len(params) == 3 {
		t.releaseLevel = int32(params[1].AsInt())
		t.child = actionFromParam(params[2])
	} else {
		t.releaseLevel = t.pressLevel
		t.child = actionFromParam(params[1])
	}
	return t, nil
}

func (t *triggerAction) Keyword() string { return "trigger" }
func (t *triggerAction) Flags() Flags    { return AFAction | AFModFeedback }

func (t *triggerAction) ToString() string {
	if t.pressLevel != t.releaseLevel {
		return fmt.Sprintf("trigger(%d, %d, %s)", t.pressLevel, t.releaseLevel, t.child.ToString())
	}
	return fmt.Sprintf("trigger(%d, %s)", t.pressLevel, t.child.ToString())
}

func (t *triggerAction) Describe(ctx DescContext) string { return t.child.Describe(ctx) }

func (t *triggerAction) Compress() Action {
	t.child = t.child.Compress()
	return t
}

func (t *triggerAction) GetChild() Action { return t.child }

func (t *triggerAction) SetHaptic(data HapticData) { t.haptic = data }

func (t *triggerAction) GetProperty(name string) (param.Parameter, bool) {
	switch name {
	case "haptic":
		return hapticProperty(t.haptic), true
	case "child":
		return param.NewAction(t.child), true
	case "press_level":
		return param.NewInt(int64(t.pressLevel)), true
	case "release_level":
		return param.NewInt(int64(t.releaseLevel)), true
	}
	return nil, false
}

func (t *triggerAction) press(m Mapper) {
	t.pressed = true
	if t.haptic.Enabled {
		m.HapticEffect(t.haptic)
	}
	if !t.child.Flags().Has(AFAxis) {
		DispatchButtonPress(t.child, m)
	}
}

func (t *triggerAction) release(m Mapper, oldPos int32, what constants.PST) {
	t.pressed = false
	if t.child.Flags().Has(AFAxis) {
		DispatchTrigger(t.child, m, oldPos, 0, what)
	} else {
		DispatchButtonRelease(t.child, m)
	}
}

func (t *triggerAction) Trigger(m Mapper, oldPos, pos int32, what constants.PST) {
	switch {
	case t.releaseLevel > t.pressLevel:
		switch {
		case !t.pressed && pos >= t.pressLevel && oldPos < t.pressLevel:
			t.press(m)
		case t.pressed && pos > t.releaseLevel && oldPos <= t.releaseLevel:
			t.release(m, oldPos, what)
		case t.pressed && pos < t.pressLevel && oldPos >= t.pressLevel:
			t.release(m, oldPos, what)
		}
	case t.releaseLevel == t.pressLevel:
		switch {
		case !t.pressed && pos >= t.pressLevel && oldPos < t.pressLevel:
			t.press(m)
		case t.pressed && pos < t.pressLevel && oldPos >= t.pressLevel:
			t.release(m, oldPos, what)
		}
	default:
		switch {
		case !t.pressed && pos >= t.pressLevel && oldPos < t.pressLevel:
			t.press(m)
		case t.pressed && pos < t.releaseLevel && oldPos >= t.releaseLevel:
			t.release(m, oldPos, what)
		}
	}

	if t.child.Flags().Has(AFAxis) && t.pressed {
		DispatchTrigger(t.child, m, oldPos, pos, what)
	}
}
