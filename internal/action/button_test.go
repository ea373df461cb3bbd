package action

import (
	"testing"

	"github.com/galago-remap/scte/internal/constants"
)

func TestButtonPressRelease(t *testing.T) {
	m := newFakeMapper()
	b := NewButton(constants.KeyA)

	DispatchButtonPress(b, m)
	if !m.pressed[constants.KeyA] {
		t.Fatalf("expected KeyA pressed")
	}
	DispatchButtonRelease(b, m)
	if m.pressed[constants.KeyA] {
		t.Fatalf("expected KeyA released")
	}
}

func TestButtonToString(t *testing.T) {
	b := NewButton(constants.KeyA)
	if got := b.ToString(); got == "" {
		t.Fatalf("expected non-empty ToString")
	}
}
