package debugsrv

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestParseEndpointReturnsSlotsAndToString(t *testing.T) {
	srv := httptest.NewServer(Handler())
	defer srv.Close()

	body := strings.NewReader(`{"action": "button(11)"}`)
	resp, err := http.Post(srv.URL+"/v1/parse", "application/json", body)
	if err != nil {
		t.Fatalf("POST /v1/parse: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("got status %d", resp.StatusCode)
	}

	var out parseResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.ToString != "button(11)" {
		t.Fatalf("got ToString %q", out.ToString)
	}
	if !out.Slots.ButtonPress || !out.Slots.ButtonRelease {
		t.Fatalf("expected button(11) to report button press/release slots, got %+v", out.Slots)
	}
}

func TestParseEndpointRejectsBadExpression(t *testing.T) {
	srv := httptest.NewServer(Handler())
	defer srv.Close()

	body := strings.NewReader(`{"action": "not_a_keyword()"}`)
	resp, err := http.Post(srv.URL+"/v1/parse", "application/json", body)
	if err != nil {
		t.Fatalf("POST /v1/parse: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("got status %d, want 422", resp.StatusCode)
	}
}

func TestConstantsEndpointListsButtonsAndPST(t *testing.T) {
	srv := httptest.NewServer(Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/v1/constants")
	if err != nil {
		t.Fatalf("GET /v1/constants: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("got status %d", resp.StatusCode)
	}

	var out struct {
		Buttons map[string]int `json:"buttons"`
		PST     map[string]int `json:"pst"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, ok := out.Buttons["A"]; !ok {
		t.Fatalf("expected button A in constants dump, got %+v", out.Buttons)
	}
	if _, ok := out.PST["STICK"]; !ok {
		t.Fatalf("expected PST STICK in constants dump, got %+v", out.PST)
	}
}
