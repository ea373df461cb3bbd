package action

import (
	"fmt"
	"time"

	"github.com/galago-remap/scte/internal/constants"
	"github.com/galago-remap/scte/internal/param"
	"github.com/galago-remap/scte/internal/paramcheck"
)

const tapPause = 1 * time.Millisecond

var tapChecker = paramcheck.New("cc?")

func init() {
	tapChecker.SetDefaults(param.NewInt(1))
	Register("tap", tapConstructor)
}

// tapAction presses and releases a single keycode count times in quick
// succession. If the key is already held by something else when tap fires,
// it instead cycles release-press-release-press so the held key visibly
// blips rather than simply staying down.
type tapAction struct {
	button      constants.Keycode
	count       int64
	remaining   int64
	nextIsPress bool
	keepPressed bool
}

func tapConstructor(keyword string, params []param.Parameter) (Action, error) {
	if err := tapChecker.Check(keyword, params); err != nil {
		return nil, err
	}
	params = tapChecker.FillDefaults(params)
	return &tapAction{
		button: constants.Keycode(params[0].AsInt()),
		count:  params[1].AsInt(),
	}, nil
}

func (t *tapAction) Keyword() string { return "tap" }
func (t *tapAction) Flags() Flags    { return AFAction | AFKeycode }

func (t *tapAction) ToString() string {
	if t.count == 1 {
		return fmt.Sprintf("tap(%d)", t.button)
	}
	return fmt.Sprintf("tap(%d, %d)", t.button, t.count)
}

func (t *tapAction) Describe(ctx DescContext) string {
	return "Tap " + constants.ButtonToString(t.button)
}

func (t *tapAction) Compress() Action { return t }

func (t *tapAction) timer(m Mapper) {
	switch {
	case t.nextIsPress:
		m.KeyPress(t.button, true)
		t.nextIsPress = false
		t.remaining--
		m.Schedule(tapPause, func() { t.timer(m) })
	case t.remaining > 0:
		m.KeyRelease(t.button)
		t.nextIsPress = true
		m.Schedule(tapPause, func() { t.timer(m) })
	default:
		if !t.keepPressed {
			m.KeyRelease(t.button)
		}
	}
}

func (t *tapAction) ButtonPress(m Mapper) {
	if t.remaining > 0 {
		return
	}
	if m.IsVirtualKeyPressed(t.button) {
		t.keepPressed = true
		m.KeyPress(t.button, true)
	} else {
		t.keepPressed = false
		m.KeyPress(t.button, false)
	}
	t.nextIsPress = false
	t.remaining = t.count - 1
	m.Schedule(tapPause, func() { t.timer(m) })
}

func (t *tapAction) ButtonRelease(m Mapper) {}
