package action

import (
	"fmt"

	"github.com/galago-remap/scte/internal/constants"
	"github.com/galago-remap/scte/internal/param"
	"github.com/galago-remap/scte/internal/paramcheck"
)

const (
	menuDefaultX = 10
	menuDefaultY = -10
)

var (
	menuChecker      = paramcheck.New("sA+?B+?B+?b?i?")
	menuShortChecker = paramcheck.New("si")
	profileChecker   = paramcheck.New("s")
	noArgsSAChecker  = paramcheck.New("")
)

func init() {
	menuChecker.SetDefaults(param.NewConstString("DEFAULT"), param.NewConstString("DEFAULT"),
		param.NewConstString("DEFAULT"), param.NewInt(0), param.NewInt(0))

	Register("menu", menuConstructor)
	Register("profile", profileConstructor)
	Register("turnoff", turnoffConstructor)
	Register("keyboard", keyboardConstructor)
	Register("cemuhook", cemuhookConstructor)
}

// menuData is the payload passed to Mapper.SpecialAction for SpecialActionMenu.
type menuData struct {
	MenuID          string
	ControlWith     constants.PST
	ConfirmWith     constants.Keycode
	CancelWith      constants.Keycode
	ShowWithRelease bool
	Size            int64
	PositionX       int
	PositionY       int
}

// menuAction opens an on-screen menu, either one defined in the profile or
// loaded by id from a menu file.
type menuAction struct {
	params    []param.Parameter
	data      menuData
	shortForm bool
}

func menuConstructor(keyword string, params []param.Parameter) (Action, error) {
	// menu() has a short form — menu("id", size) — tried first, falling back
	// to the full form if it doesn't match.
	if err := menuShortChecker.Check(keyword, params); err == nil {
		return &menuAction{
			params:    params,
			shortForm: true,
			data: menuData{
				MenuID:      params[0].AsString(),
				ControlWith: 0xFF,
				ConfirmWith: 0xFF,
				CancelWith:  0xFF,
				Size:        params[1].AsInt(),
				PositionX:   menuDefaultX,
				PositionY:   menuDefaultY,
			},
		}, nil
	}

	if err := menuChecker.Check(keyword, params); err != nil {
		return nil, err
	}
	params = menuChecker.FillDefaults(params)

	controlWith, _ := constants.StringToPST(params[1].AsString())
	confirmWith, _ := constants.StringToButton(params[2].AsString())
	cancelWith, _ := constants.StringToButton(params[3].AsString())

	return &menuAction{
		params: params,
		data: menuData{
			MenuID:          params[0].AsString(),
			ControlWith:     controlWith,
			ConfirmWith:     confirmWith,
			CancelWith:      cancelWith,
			ShowWithRelease: params[4].AsInt() != 0,
			Size:            params[5].AsInt(),
			PositionX:       menuDefaultX,
			PositionY:       menuDefaultY,
		},
	}, nil
}

func (a *menuAction) Keyword() string { return "menu" }
func (a *menuAction) Flags() Flags    { return AFAction }

func (a *menuAction) ToString() string {
	out := "menu("
	for i, p := range a.params {
		if i > 0 {
			out += ", "
		}
		out += p.ToString()
	}
	return out + ")"
}

func (a *menuAction) Describe(ctx DescContext) string { return "Menu " + a.data.MenuID }

func (a *menuAction) Compress() Action { return a }

func (a *menuAction) ButtonPress(m Mapper) {
	if !m.SpecialAction(SpecialActionMenu, a.data) {
		dispatchWarn(a, "special_action(menu)")
	}
}

func (a *menuAction) ButtonRelease(m Mapper) {}

func (a *menuAction) GetProperty(name string) (param.Parameter, bool) {
	if name == "menu_id" {
		return param.NewConstString(a.data.MenuID), true
	}
	return nil, false
}

// profileAction switches to a different profile by name.
type profileAction struct {
	profile string
}

func profileConstructor(keyword string, params []param.Parameter) (Action, error) {
	if err := profileChecker.Check(keyword, params); err != nil {
		return nil, err
	}
	return &profileAction{profile: params[0].AsString()}, nil
}

func (a *profileAction) Keyword() string { return "profile" }
func (a *profileAction) Flags() Flags    { return AFAction }

func (a *profileAction) ToString() string {
	return fmt.Sprintf("profile(%s)", param.NewConstString(a.profile).ToString())
}

func (a *profileAction) Describe(ctx DescContext) string { return "Profile: " + a.profile }

func (a *profileAction) Compress() Action { return a }

func (a *profileAction) ButtonPress(m Mapper) {
	if !m.SpecialAction(SpecialActionProfile, a.profile) {
		dispatchWarn(a, "special_action(profile)")
	}
}

func (a *profileAction) GetProperty(name string) (param.Parameter, bool) {
	if name == "profile" {
		return param.NewConstString(a.profile), true
	}
	return nil, false
}

// turnoffAction powers the physical controller off.
type turnoffAction struct{}

func turnoffConstructor(keyword string, params []param.Parameter) (Action, error) {
	if err := noArgsSAChecker.Check(keyword, params); err != nil {
		return nil, err
	}
	return &turnoffAction{}, nil
}

func (a *turnoffAction) Keyword() string                    { return "turnoff" }
func (a *turnoffAction) Flags() Flags                       { return AFAction }
func (a *turnoffAction) ToString() string                   { return "turnoff()" }
func (a *turnoffAction) Describe(ctx DescContext) string    { return "Turn Off" }
func (a *turnoffAction) Compress() Action                   { return a }
func (a *turnoffAction) ButtonPress(m Mapper) {
	if !m.SpecialAction(SpecialActionTurnoff, nil) {
		dispatchWarn(a, "special_action(turnoff)")
	}
}

// keyboardAction opens the on-screen keyboard.
type keyboardAction struct{}

func keyboardConstructor(keyword string, params []param.Parameter) (Action, error) {
	if len(params) != 0 {
		return nil, invalidArity(keyword)
	}
	return &keyboardAction{}, nil
}

func (a *keyboardAction) Keyword() string                 { return "keyboard" }
func (a *keyboardAction) Flags() Flags                    { return AFAction }
func (a *keyboardAction) ToString() string                { return "keyboard()" }
func (a *keyboardAction) Describe(ctx DescContext) string { return "Keyboard" }
func (a *keyboardAction) Compress() Action                { return a }
func (a *keyboardAction) ButtonPress(m Mapper) {
	if !m.SpecialAction(SpecialActionKeyboard, nil) {
		dispatchWarn(a, "special_action(keyboard)")
	}
}

// CemuhookPayload carries the orientation fields this engine's Gyro callback
// exposes; accelerometer axes aren't threaded through GyroHandler, so they
// aren't forwarded (the CemuHook protocol tolerates a zeroed accel block).
type CemuhookPayload struct {
	Pitch, Yaw, Roll float64
}

// cemuhookAction forwards gyro orientation to a CemuHook-protocol consumer
// (an emulator or game listening over the daemon's UDP bridge).
type cemuhookAction struct {
	sensitivity [3]float64
}

func cemuhookConstructor(keyword string, params []param.Parameter) (Action, error) {
	if len(params) != 0 {
		return nil, invalidArity(keyword)
	}
	return &cemuhookAction{sensitivity: [3]float64{1, 1, 1}}, nil
}

func (a *cemuhookAction) Keyword() string                 { return "cemuhook" }
func (a *cemuhookAction) Flags() Flags                    { return AFAction | AFModSensitivity }
func (a *cemuhookAction) ToString() string                { return "cemuhook()" }
func (a *cemuhookAction) Describe(ctx DescContext) string { return "CemuHook" }
func (a *cemuhookAction) Compress() Action                { return a }

func (a *cemuhookAction) SetSensitivity(x, y, z float64) {
	a.sensitivity[0], a.sensitivity[1], a.sensitivity[2] = x, y, z
}

func (a *cemuhookAction) GetProperty(name string) (param.Parameter, bool) {
	if name == "sensitivity" {
		return param.NewTuple([]param.Parameter{
			param.NewFloat(a.sensitivity[0]), param.NewFloat(a.sensitivity[1]), param.NewFloat(a.sensitivity[2]),
		}), true
	}
	return nil, false
}

func (a *cemuhookAction) Gyro(m Mapper, pitch, yaw, roll float64, q1, q2, q3, q4 float64) {
	payload := CemuhookPayload{
		Pitch: pitch * a.sensitivity[0],
		Yaw:   yaw * a.sensitivity[1],
		Roll:  roll * a.sensitivity[2],
	}
	if !m.SpecialAction(SpecialActionCemuhook, payload) {
		dispatchWarn(a, "special_action(cemuhook)")
	}
}
