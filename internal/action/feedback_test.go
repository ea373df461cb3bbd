package action

import (
	"testing"

	"github.com/galago-remap/scte/internal/constants"
	"github.com/galago-remap/scte/internal/param"
)

func TestFeedbackVanishesAtCompressAndEnablesHapticOnChild(t *testing.T) {
	child, err := New("mouse", nil)
	if err != nil {
		t.Fatalf("building mouse(): %v", err)
	}
	a, err := New("feedback", []param.Parameter{
		param.NewConstString("LEFT"),
		param.NewInt(800),
		param.NewFloat(4.0),
		param.NewInt(1024),
		param.NewAction(child),
	})
	if err != nil {
		t.Fatalf("building feedback(): %v", err)
	}
	compressed := a.Compress()
	if compressed != child {
		t.Fatalf("expected feedback() to disappear at Compress, returning the child itself")
	}
	ms := compressed.(*mouseAction)
	if !ms.data.Enabled || ms.data.Position != constants.PSTLeft || ms.data.Amplitude != 800 {
		t.Fatalf("expected haptic settings wired onto child, got %+v", ms.data)
	}
}
