package action

import (
	"testing"

	"github.com/galago-remap/scte/internal/constants"
	"github.com/galago-remap/scte/internal/param"
)

func TestStubNoArgsRoundTrips(t *testing.T) {
	a, err := New("resetgyro", nil)
	if err != nil {
		t.Fatalf("building resetgyro(): %v", err)
	}
	if got, want := a.ToString(), "resetgyro()"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	if c := a.Compress(); c != a {
		t.Fatalf("expected a no-child stub to compress to itself")
	}
}

func TestStubOSDCompressesToChild(t *testing.T) {
	a, err := New("osd", []param.Parameter{
		param.NewConstString("hello"),
		param.NewAction(NewButton(constants.KeyA)),
	})
	if err != nil {
		t.Fatalf("building osd(): %v", err)
	}
	compressed := a.Compress()
	if _, ok := compressed.(*buttonAction); !ok {
		t.Fatalf("expected osd() to vanish at Compress in favor of its child button action, got %T", compressed)
	}
}

func TestStubButtonPressIsNoop(t *testing.T) {
	m := newFakeMapper()
	a, err := New("shell", []param.Parameter{param.NewString("echo hi")})
	if err != nil {
		t.Fatalf("building shell(): %v", err)
	}
	a.(ButtonPresser).ButtonPress(m)
	if len(m.keyLog) != 0 {
		t.Fatalf("expected shell() to have no input side effect")
	}
}
