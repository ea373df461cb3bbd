package main

import (
	"testing"

	"github.com/galago-remap/scte/internal/action"
)

func TestDescribeContextKnownNames(t *testing.T) {
	cases := []struct {
		name string
		want action.DescContext
	}{
		{"button", action.ACButton},
		{"osd", action.ACOSD},
		{"switcher", action.ACSwitcher},
	}
	for _, c := range cases {
		got, err := describeContext(c.name)
		if err != nil {
			t.Fatalf("describeContext(%q): %v", c.name, err)
		}
		if got != c.want {
			t.Fatalf("describeContext(%q) = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestDescribeContextRejectsUnknownName(t *testing.T) {
	if _, err := describeContext("sprocket"); err == nil {
		t.Fatalf("expected an error for an unrecognized description context")
	}
}
