package constants

// buttonNames maps the controller's own button-name vocabulary (as used in
// profile text, independent of the KEY_*/BTN_* keycode space) to a keycode.
var buttonNames = map[string]Keycode{
	"A": BtnA, "B": BtnB, "X": BtnX, "Y": BtnY,
	"START": BtnStart, "BACK": BtnSelect,
	"LB": BtnTL, "RB": BtnTR,
	"STICKPRESS": BtnThumbL, "RPAD_CLICK": BtnThumbR,
	"C": BtnMiddle,
}

// StringToButton resolves a controller button name to a keycode, returning
// ok=false (the original returns 0) for an unrecognized name.
func StringToButton(name string) (Keycode, bool) {
	k, ok := buttonNames[name]
	return k, ok
}

// ButtonNameTable returns a copy of the button-name-to-keycode table, for
// tooling that needs to dump it (e.g. a debug introspection endpoint).
func ButtonNameTable() map[string]Keycode {
	out := make(map[string]Keycode, len(buttonNames))
	for k, v := range buttonNames {
		out[k] = v
	}
	return out
}
