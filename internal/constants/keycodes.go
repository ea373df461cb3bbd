// Package constants holds the engine's name tables: keyboard/mouse/gamepad
// keycodes, axis codes, and the pad/stick/trigger (PST) enumeration, plus the
// lookup functions the parser and action kinds need to resolve names to
// numeric constants and back.
package constants

// Keycode is a virtual key/button code, in the same numeric space Linux
// evdev uses (KEY_* / BTN_*), since that is the convention the action
// engine's constant names follow.
type Keycode int

const (
	KeyReserved Keycode = iota
	KeyEsc
)

// A representative subset of evdev KEY_* codes, enough to cover every name
// the describe() tables and tests reference. Values match the real evdev
// numbering so a Mapper backed by an actual uinput device can use them
// unmodified.
const (
	KeyBackspace  Keycode = 14
	KeyTab        Keycode = 15
	KeyEnter      Keycode = 28
	KeyLeftCtrl   Keycode = 29
	KeySpace      Keycode = 57
	KeyLeftShift  Keycode = 42
	KeyRightShift Keycode = 54
	KeyLeftAlt    Keycode = 56
	KeyRightAlt   Keycode = 100
	KeyRightCtrl  Keycode = 97
	KeyMinus      Keycode = 12
	KeyEqual      Keycode = 13
	KeyLeftBrace  Keycode = 26
	KeyRightBrace Keycode = 27
	KeyBackslash  Keycode = 43
	KeySemicolon  Keycode = 39
	KeyApostrophe Keycode = 40
	KeyGrave      Keycode = 41
	KeyComma      Keycode = 51
	KeyDot        Keycode = 52
	KeySlash      Keycode = 53

	KeyPreviousSong Keycode = 165
	KeyStop         Keycode = 128
	KeyPlayPause    Keycode = 164
	KeyNextSong     Keycode = 163
	KeyVolumeDown   Keycode = 114
	KeyVolumeUp     Keycode = 115
)

// The alphanumeric row, needed to spell out type() strings one keypress at
// a time. Values match evdev's KEY_A..KEY_Z / KEY_0..KEY_9 numbering.
const (
	KeyA Keycode = 30
	KeyB Keycode = 48
	KeyC Keycode = 46
	KeyD Keycode = 32
	KeyE Keycode = 18
	KeyF Keycode = 33
	KeyG Keycode = 34
	KeyH Keycode = 35
	KeyI Keycode = 23
	KeyJ Keycode = 36
	KeyK Keycode = 37
	KeyL Keycode = 38
	KeyM Keycode = 50
	KeyN Keycode = 49
	KeyO Keycode = 24
	KeyP Keycode = 25
	KeyQ Keycode = 16
	KeyR Keycode = 19
	KeyS Keycode = 31
	KeyT Keycode = 20
	KeyU Keycode = 22
	KeyV Keycode = 47
	KeyW Keycode = 17
	KeyX Keycode = 45
	KeyY Keycode = 21
	KeyZ Keycode = 44

	Key1 Keycode = 2
	Key2 Keycode = 3
	Key3 Keycode = 4
	Key4 Keycode = 5
	Key5 Keycode = 6
	Key6 Keycode = 7
	Key7 Keycode = 8
	Key8 Keycode = 9
	Key9 Keycode = 10
	Key0 Keycode = 11
)

const (
	BtnLeft   Keycode = 0x110
	BtnRight  Keycode = 0x111
	BtnMiddle Keycode = 0x112
	BtnSide   Keycode = 0x113
	BtnExtra  Keycode = 0x114

	BtnTL     Keycode = 0x136
	BtnTR     Keycode = 0x137
	BtnThumbL Keycode = 0x13d
	BtnThumbR Keycode = 0x13e
	BtnStart  Keycode = 0x13b
	BtnSelect Keycode = 0x13a
	BtnA      Keycode = 0x130
	BtnB      Keycode = 0x131
	BtnX      Keycode = 0x133
	BtnY      Keycode = 0x134
)

var keyNames = map[Keycode]string{
	KeyBackspace: "KEY_BACKSPACE", KeyTab: "KEY_TAB", KeyEnter: "KEY_ENTER",
	KeyLeftCtrl: "KEY_LEFTCTRL", KeySpace: "KEY_SPACE", KeyLeftShift: "KEY_LEFTSHIFT",
	KeyRightShift: "KEY_RIGHTSHIFT", KeyLeftAlt: "KEY_LEFTALT", KeyRightAlt: "KEY_RIGHTALT",
	KeyRightCtrl: "KEY_RIGHTCTRL", KeyMinus: "KEY_MINUS", KeyEqual: "KEY_EQUAL",
	KeyLeftBrace: "KEY_LEFTBRACE", KeyRightBrace: "KEY_RIGHTBRACE", KeyBackslash: "KEY_BACKSLASH",
	KeySemicolon: "KEY_SEMICOLON", KeyApostrophe: "KEY_APOSTROPHE", KeyGrave: "KEY_GRAVE",
	KeyComma: "KEY_COMMA", KeyDot: "KEY_DOT", KeySlash: "KEY_SLASH",
	KeyPreviousSong: "KEY_PREVIOUSSONG", KeyStop: "KEY_STOP", KeyPlayPause: "KEY_PLAYPAUSE",
	KeyNextSong: "KEY_NEXTSONG", KeyVolumeDown: "KEY_VOLUMEDOWN", KeyVolumeUp: "KEY_VOLUMEUP",
	KeyA: "KEY_A", KeyB: "KEY_B", KeyC: "KEY_C", KeyD: "KEY_D", KeyE: "KEY_E", KeyF: "KEY_F",
	KeyG: "KEY_G", KeyH: "KEY_H", KeyI: "KEY_I", KeyJ: "KEY_J", KeyK: "KEY_K", KeyL: "KEY_L",
	KeyM: "KEY_M", KeyN: "KEY_N", KeyO: "KEY_O", KeyP: "KEY_P", KeyQ: "KEY_Q", KeyR: "KEY_R",
	KeyS: "KEY_S", KeyT: "KEY_T", KeyU: "KEY_U", KeyV: "KEY_V", KeyW: "KEY_W", KeyX: "KEY_X",
	KeyY: "KEY_Y", KeyZ: "KEY_Z",
	BtnLeft: "BTN_LEFT", BtnRight: "BTN_RIGHT", BtnMiddle: "BTN_MIDDLE",
	BtnSide: "BTN_SIDE", BtnExtra: "BTN_EXTRA", BtnTL: "BTN_TL", BtnTR: "BTN_TR",
	BtnThumbL: "BTN_THUMBL", BtnThumbR: "BTN_THUMBR", BtnStart: "BTN_START",
	BtnSelect: "BTN_SELECT", BtnA: "BTN_A", BtnB: "BTN_B", BtnX: "BTN_X", BtnY: "BTN_Y",
}

var nameToKey = func() map[string]Keycode {
	m := make(map[string]Keycode, len(keyNames))
	for k, v := range keyNames {
		m[v] = k
	}
	return m
}()

// KeyName returns the KEY_*/BTN_* name for a keycode, or "" if unknown.
func KeyName(k Keycode) string { return keyNames[k] }

// GetIntConstant resolves a name to an integer constant (keycode), returning
// ok=false if name is not a known constant. Mirrors scc_get_int_constant,
// which the original returns as -1 on miss; Go expresses the miss with ok.
func GetIntConstant(name string) (int64, bool) {
	if k, ok := nameToKey[name]; ok {
		return int64(k), true
	}
	if k, ok := pstNameToCode[name]; ok {
		return int64(k), true
	}
	if a, ok := axisNameToCode["Axes."+name]; ok {
		return int64(a), true
	}
	return 0, false
}
