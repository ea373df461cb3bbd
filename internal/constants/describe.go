package constants

// stringConstants are the named string-valued constants the parser accepts
// (e.g. special-action targets). Kept small and explicit per the grammar's
// character-class "A"/"B" constant slots.
var stringConstants = map[string]string{
	"PROFILE_NAME":     "profile_name",
	"CURRENT_PROFILE":  "current_profile",
}

// GetStringConstant resolves a name to a string constant, mirroring
// scc_get_string_constant (returns ok=false instead of NULL).
func GetStringConstant(name string) (string, bool) {
	v, ok := stringConstants[name]
	return v, ok
}

// GetKeyName returns the full KEY_*/BTN_* symbolic name for a keycode, or ""
// if it is not a named constant (describe() falls back to ToString in that
// case).
func GetKeyName(k Keycode) string { return KeyName(k) }

// describeOverrides holds the small set of codes describe() special-cases
// with a friendlier label than the bare KEY_*/BTN_* name (button.c's
// describe() switch).
var describeOverrides = map[Keycode]string{
	BtnLeft: "Mouse Left", BtnMiddle: "Mouse Middle", BtnRight: "Mouse Right",
	BtnSide: "Mouse 8", BtnExtra: "Mouse 9",
	BtnTR: "Right Bumper", BtnTL: "Left Bumper",
	BtnThumbL: "LStick Click", BtnThumbR: "RStick Click",
	BtnStart: "Start >", BtnSelect: "< Select",
	BtnA: "A Button", BtnB: "B Button", BtnX: "X Button", BtnY: "Y Button",
	KeyPreviousSong: "<< Song", KeyStop: "Stop", KeyPlayPause: "Play/Pause",
	KeyNextSong: "Song >>", KeyVolumeDown: "- Volume", KeyVolumeUp: "+ Volume",
	KeyLeftShift: "LShift", KeyRightShift: "RShift",
	KeyLeftAlt: "LAlt", KeyRightAlt: "RAlt",
	KeyLeftCtrl: "LControl", KeyRightCtrl: "RControl",
	KeyBackspace: "Backspace", KeySpace: "Space", KeyTab: "Tab",
	KeyLeftBrace: "[", KeyRightBrace: "]", KeyBackslash: "\\", KeySlash: "/",
}

// DescribeButton returns the human-readable label button.describe() prints
// for a keycode, falling back to the bare KEY_*/BTN_* name stripped of its
// prefix, and finally to ButtonToString.
func DescribeButton(k Keycode) string {
	if s, ok := describeOverrides[k]; ok {
		return s
	}
	if name := KeyName(k); name != "" {
		switch {
		case len(name) > 4 && name[:4] == "KEY_":
			return name[4:]
		case len(name) > 4 && name[:4] == "BTN_":
			return name[4:]
		}
	}
	return ButtonToString(k)
}

// ButtonToString renders a keycode as parseable text: button(<int>).
func ButtonToString(k Keycode) string {
	if name := KeyName(k); name != "" {
		return "button(" + name + ")"
	}
	return "button(" + itoa(int64(k)) + ")"
}

func itoa(v int64) string {
	if v == 0 {
		return "0"
	}
	neg := v < 0
	if neg {
		v = -v
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
