package parser

import "testing"

func TestParseNone(t *testing.T) {
	a, err := ParseAction("None")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if got := Unparse(a); got != "None" {
		t.Fatalf("got %q, want None", got)
	}
}

func TestParseButton(t *testing.T) {
	cases := []string{
		"button(11)",
		"button(Keys.KEY_BACKSPACE)",
	}
	for _, src := range cases {
		a, err := ParseAction(src)
		if err != nil {
			t.Fatalf("parse(%q): %v", src, err)
		}
		if got := Unparse(a); got == "" {
			t.Fatalf("parse(%q) produced empty unparse", src)
		}
	}
}

func TestParseButtonRoundTrip(t *testing.T) {
	a, err := ParseAction("button(11)")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if got, want := Unparse(a), "button(11)"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestParseNestedAction(t *testing.T) {
	a, err := ParseAction("XY(button(11))")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if got, want := Unparse(a), "XY(button(11))"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestParseMacroSequencing(t *testing.T) {
	a, err := ParseAction("button(11); button(12)")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if got := Unparse(a); got != "macro(button(11), button(12))" {
		t.Fatalf("got %q", got)
	}
}

func TestParseMultiactionAnd(t *testing.T) {
	a, err := ParseAction("button(11) and button(12)")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if got := Unparse(a); got == "" {
		t.Fatalf("empty unparse for and-combined action")
	}
}

func TestParseUnknownKeyword(t *testing.T) {
	_, err := ParseAction("notabutton(11)")
	if err == nil {
		t.Fatalf("expected error for unknown keyword")
	}
}

func TestParseStringParameter(t *testing.T) {
	a, err := ParseAction(`feedback(LEFT, button(11))`)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if got := Unparse(a); got == "" {
		t.Fatalf("empty unparse")
	}
}

func TestParseFloatParameter(t *testing.T) {
	a, err := ParseAction("sleep(1.5)")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if got, want := Unparse(a), "sleep(1.5)"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestTokenizeWhitespaceToken(t *testing.T) {
	tks := tokenize("a b")
	var got []string
	for tks.hasNext() {
		got = append(got, tks.next())
	}
	want := []string{"a", " ", "b"}
	if len(got) != len(want) {
		t.Fatalf("got %d tokens %q, want %d", len(got), got, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d: got %q, want %q", i, got[i], want[i])
		}
	}
}
