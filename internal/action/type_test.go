package action

import (
	"testing"

	"github.com/galago-remap/scte/internal/constants"
	"github.com/galago-remap/scte/internal/param"
)

func TestTypeCompressesToMacroOfKeys(t *testing.T) {
	a, err := New("type", []param.Parameter{param.NewString("id")})
	if err != nil {
		t.Fatalf("building type(): %v", err)
	}
	compressed := a.Compress()
	ma, ok := compressed.(*macroAction)
	if !ok {
		t.Fatalf("expected type() to compress into a *macroAction, got %T", compressed)
	}
	if len(ma.children) != 2 {
		t.Fatalf("expected 2 macro steps for \"id\", got %d", len(ma.children))
	}
}

func TestTypeUppercaseAddsShift(t *testing.T) {
	a, err := New("type", []param.Parameter{param.NewString("I")})
	if err != nil {
		t.Fatalf("building type(): %v", err)
	}
	compressed := a.Compress()
	ma, ok := compressed.(*macroAction)
	if !ok {
		t.Fatalf("expected *macroAction, got %T", compressed)
	}
	if len(ma.children) != 1 {
		t.Fatalf("expected 1 macro step for a single uppercase letter")
	}
	m := newFakeMapper()
	DispatchButtonPress(ma.children[0], m)
	if !m.pressed[constants.KeyLeftShift] || !m.pressed[constants.KeyI] {
		t.Fatalf("expected shift+I to press both KeyLeftShift and KeyI")
	}
}

func TestTypeRejectsUnknownCharacter(t *testing.T) {
	_, err := New("type", []param.Parameter{param.NewString("id@")})
	if err == nil {
		t.Fatalf("expected error for unparseable character")
	}
}
