package profile

import (
	"testing"

	"github.com/galago-remap/scte/internal/constants"
)

func TestLoadBytesBindsButtonsAndPads(t *testing.T) {
	src := []byte(`{
		"A": "button(11)",
		"B": "button(12)",
		"STICK": "dpad(button(17), button(31), button(30), button(32))"
	}`)

	p, err := LoadBytes(src)
	if err != nil {
		t.Fatalf("LoadBytes: %v", err)
	}
	if _, ok := p.Buttons[constants.BtnA]; !ok {
		t.Fatalf("expected A slot bound")
	}
	if _, ok := p.Buttons[constants.BtnB]; !ok {
		t.Fatalf("expected B slot bound")
	}
	if _, ok := p.Pads[constants.PSTStick]; !ok {
		t.Fatalf("expected STICK slot bound")
	}
}

func TestLoadBytesRejectsUnknownSlot(t *testing.T) {
	_, err := LoadBytes([]byte(`{"NOPE": "button(KEY_A)"}`))
	if err == nil {
		t.Fatalf("expected error for unknown input slot")
	}
}

func TestLoadBytesPropagatesParseError(t *testing.T) {
	_, err := LoadBytes([]byte(`{"A": "not_a_real_keyword()"}`))
	if err == nil {
		t.Fatalf("expected parse error to propagate")
	}
}
