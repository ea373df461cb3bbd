package action

import (
	"testing"

	"github.com/galago-remap/scte/internal/constants"
)

func TestMultiactionFansOutToAllChildren(t *testing.T) {
	m := newFakeMapper()
	a := NewMultiaction(NewButton(constants.KeyA), NewButton(constants.KeyB))

	DispatchButtonPress(a, m)
	if !m.pressed[constants.KeyA] || !m.pressed[constants.KeyB] {
		t.Fatalf("expected both children pressed simultaneously")
	}
	DispatchButtonRelease(a, m)
	if m.pressed[constants.KeyA] || m.pressed[constants.KeyB] {
		t.Fatalf("expected both children released")
	}
}

func TestMultiactionFlattensNested(t *testing.T) {
	inner := NewMultiaction(NewButton(constants.KeyA), NewButton(constants.KeyB))
	outer := NewMultiaction(inner, NewButton(constants.KeyC))

	ma, ok := outer.(*multiAction)
	if !ok {
		t.Fatalf("expected *multiAction")
	}
	if len(ma.children) != 3 {
		t.Fatalf("expected nested multiaction to flatten to 3 children, got %d", len(ma.children))
	}
}

func TestCombineActionsIsMultiaction(t *testing.T) {
	a := CombineActions(NewButton(constants.KeyA), NewButton(constants.KeyB))
	if _, ok := a.(*multiAction); !ok {
		t.Fatalf("expected CombineActions to build a *multiAction")
	}
}
