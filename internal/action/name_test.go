package action

import (
	"testing"

	"github.com/galago-remap/scte/internal/constants"
	"github.com/galago-remap/scte/internal/param"
)

func TestNameVanishesAtCompressButLabelsDescribe(t *testing.T) {
	child := NewButton(constants.KeyA)
	a, err := New("name", []param.Parameter{param.NewConstString("Jump"), param.NewAction(child)})
	if err != nil {
		t.Fatalf("building name(): %v", err)
	}
	if got := a.Describe(ACButton); got != "Jump" {
		t.Fatalf("expected label as Describe(), got %q", got)
	}
	if compressed := a.Compress(); compressed != child {
		t.Fatalf("expected name() to disappear at Compress, returning the child itself")
	}
}
