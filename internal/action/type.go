package action

import (
	"fmt"

	"github.com/galago-remap/scte/internal/constants"
	"github.com/galago-remap/scte/internal/param"
	"github.com/galago-remap/scte/internal/paramcheck"
)

var typeChecker = paramcheck.New("s")

func init() { Register("type", typeConstructor) }

var typeLetterKeys = map[byte]constants.Keycode{
	'a': constants.KeyA, 'b': constants.KeyB, 'c': constants.KeyC, 'd': constants.KeyD,
	'e': constants.KeyE, 'f': constants.KeyF, 'g': constants.KeyG, 'h': constants.KeyH,
	'i': constants.KeyI, 'j': constants.KeyJ, 'k': constants.KeyK, 'l': constants.KeyL,
	'm': constants.KeyM, 'n': constants.KeyN, 'o': constants.KeyO, 'p': constants.KeyP,
	'q': constants.KeyQ, 'r': constants.KeyR, 's': constants.KeyS, 't': constants.KeyT,
	'u': constants.KeyU, 'v': constants.KeyV, 'w': constants.KeyW, 'x': constants.KeyX,
	'y': constants.KeyY, 'z': constants.KeyZ,
}

var typeDigitKeys = map[byte]constants.Keycode{
	'0': constants.Key0, '1': constants.Key1, '2': constants.Key2, '3': constants.Key3,
	'4': constants.Key4, '5': constants.Key5, '6': constants.Key6, '7': constants.Key7,
	'8': constants.Key8, '9': constants.Key9,
}

// typeAction is a thin wrapper: at Compress time it discards itself in
// favor of a macro that presses out its string one character at a time
// (uppercase letters pick up a left-shift via multiAction), matching
// buttton(KEY_I); button(KEY_D); ... for type("id").
type typeAction struct {
	text  string
	macro Action
}

func typeConstructor(keyword string, params []param.Parameter) (Action, error) {
	if err := typeChecker.Check(keyword, params); err != nil {
		return nil, err
	}

	text := params[0].AsString()
	steps := make([]param.Parameter, 0, len(text))
	for i := 0; i < len(text); i++ {
		c := text[i]
		var key constants.Keycode
		var shift bool
		switch {
		case c == ' ':
			key = constants.KeySpace
		case c >= 'A' && c <= 'Z':
			key = typeLetterKeys[c-'A'+'a']
			shift = true
		case c >= 'a' && c <= 'z':
			key = typeLetterKeys[c]
		case c >= '0' && c <= '9':
			key = typeDigitKeys[c]
		default:
			return nil, invalidParamType(keyword, params[0], 1)
		}

		var step Action = NewButton(key)
		if shift {
			step = NewMultiaction(NewButton(constants.KeyLeftShift), step)
		}
		steps = append(steps, param.NewAction(step))
	}

	macroAct, err := New("macro", steps)
	if err != nil {
		return nil, err
	}
	return &typeAction{text: text, macro: macroAct}, nil
}

func (t *typeAction) Keyword() string { return "type" }
func (t *typeAction) Flags() Flags    { return AFAction }

func (t *typeAction) ToString() string {
	return fmt.Sprintf("type(%s)", param.NewConstString(t.text).ToString())
}

func (t *typeAction) Describe(ctx DescContext) string { return "Type " + t.text }

func (t *typeAction) Compress() Action { return t.macro.Compress() }

func (t *typeAction) GetChild() Action { return t.macro }
