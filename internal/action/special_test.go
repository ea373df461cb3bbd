package action

import (
	"testing"

	"github.com/galago-remap/scte/internal/param"
)

func TestMenuShortFormCallsSpecialAction(t *testing.T) {
	m := newFakeMapper()
	var gotKind SpecialActionKind
	var gotPayload any
	m.handleSpecialHook = func(kind SpecialActionKind, payload any) bool {
		gotKind, gotPayload = kind, payload
		return true
	}

	a, err := New("menu", []param.Parameter{param.NewConstString("main"), param.NewInt(3)})
	if err != nil {
		t.Fatalf("building menu(): %v", err)
	}
	a.(ButtonPresser).ButtonPress(m)

	if gotKind != SpecialActionMenu {
		t.Fatalf("expected SpecialActionMenu, got %v", gotKind)
	}
	data, ok := gotPayload.(menuData)
	if !ok || data.MenuID != "main" || data.Size != 3 {
		t.Fatalf("unexpected menu payload: %+v", gotPayload)
	}
}

func TestCemuhookForwardsScaledOrientation(t *testing.T) {
	m := newFakeMapper()
	var gotPayload any
	m.handleSpecialHook = func(kind SpecialActionKind, payload any) bool {
		gotPayload = payload
		return true
	}

	a, err := New("cemuhook", nil)
	if err != nil {
		t.Fatalf("building cemuhook(): %v", err)
	}
	a.(SensitivitySetter).SetSensitivity(2, 1, 1)
	a.(GyroHandler).Gyro(m, 1, 2, 3, 0, 0, 0, 1)

	payload, ok := gotPayload.(CemuhookPayload)
	if !ok || payload.Pitch != 2 {
		t.Fatalf("expected pitch scaled by sensitivity, got %+v", gotPayload)
	}
}

func TestTurnoffWarnsWhenUnhandled(t *testing.T) {
	m := newFakeMapper()
	a, err := New("turnoff", nil)
	if err != nil {
		t.Fatalf("building turnoff(): %v", err)
	}
	// No handleSpecialHook installed: SpecialAction reports unhandled, and
	// ButtonPress should not panic even though nothing claims the event.
	a.(ButtonPresser).ButtonPress(m)
}
