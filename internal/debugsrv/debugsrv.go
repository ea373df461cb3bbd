// Package debugsrv exposes a tiny read-only HTTP introspection surface over
// the action engine: parse a single expression and report its compressed
// form and dispatch slots, or dump the constant name tables. It is explicitly not a control plane — no profile
// mutation, no device lifecycle, no session commands — just stateless tree
// introspection for local tooling, served over h2c so it works without a
// TLS certificate.
package debugsrv

import (
	"encoding/json"
	"net/http"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/galago-remap/scte/internal/action"
	"github.com/galago-remap/scte/internal/constants"
	"github.com/galago-remap/scte/internal/parser"
)

// parseRequest is the body of POST /v1/parse.
type parseRequest struct {
	Action string `json:"action"`
}

// dispatchSlots reports which optional dispatch interfaces a parsed action
// satisfies, so a caller can tell what kind of binding it would make
// without having to know every action kind's Go type.
type dispatchSlots struct {
	ButtonPress   bool `json:"button_press"`
	ButtonRelease bool `json:"button_release"`
	Axis          bool `json:"axis"`
	Whole         bool `json:"whole"`
	Trigger       bool `json:"trigger"`
	Gyro          bool `json:"gyro"`
	Change        bool `json:"change"`
	Sensitivity   bool `json:"sensitivity"`
	Haptic        bool `json:"haptic"`
	Children      bool `json:"children"`
}

type parseResponse struct {
	ToString string        `json:"to_string"`
	Keyword  string        `json:"keyword"`
	Slots    dispatchSlots `json:"slots"`
}

func slotsOf(a action.Action) dispatchSlots {
	var s dispatchSlots
	if _, ok := a.(action.ButtonPresser); ok {
		s.ButtonPress = true
	}
	if _, ok := a.(action.ButtonReleaser); ok {
		s.ButtonRelease = true
	}
	if _, ok := a.(action.AxisHandler); ok {
		s.Axis = true
	}
	if _, ok := a.(action.WholeHandler); ok {
		s.Whole = true
	}
	if _, ok := a.(action.TriggerHandler); ok {
		s.Trigger = true
	}
	if _, ok := a.(action.GyroHandler); ok {
		s.Gyro = true
	}
	if _, ok := a.(action.ChangeHandler); ok {
		s.Change = true
	}
	if _, ok := a.(action.SensitivitySetter); ok {
		s.Sensitivity = true
	}
	if _, ok := a.(action.HapticSetter); ok {
		s.Haptic = true
	}
	if _, ok := a.(action.ChildGetter); ok {
		s.Children = true
	}
	if _, ok := a.(action.ChildrenGetter); ok {
		s.Children = true
	}
	return s
}

// SlotStrings lists the dispatch slot names a parsed action satisfies, e.g.
// for an "inspect" TUI that wants the same slot information /v1/parse
// reports without going over HTTP.
func SlotStrings(a action.Action) []string {
	s := slotsOf(a)
	var names []string
	add := func(present bool, name string) {
		if present {
			names = append(names, name)
		}
	}
	add(s.ButtonPress, "button_press")
	add(s.ButtonRelease, "button_release")
	add(s.Axis, "axis")
	add(s.Whole, "whole")
	add(s.Trigger, "trigger")
	add(s.Gyro, "gyro")
	add(s.Change, "change")
	add(s.Sensitivity, "sensitivity")
	add(s.Haptic, "haptic")
	add(s.Children, "children")
	return names
}

// Handler returns the debug server's routes, split out from Serve so tests
// can exercise it with httptest without binding a real port.
func Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/parse", handleParse)
	mux.HandleFunc("/v1/constants", handleConstants)
	return mux
}

func handleParse(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "POST only", http.StatusMethodNotAllowed)
		return
	}
	var req parseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	a, err := parser.ParseAction(req.Action)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	compressed := a.Compress()
	resp := parseResponse{
		ToString: compressed.ToString(),
		Keyword:  compressed.Keyword(),
		Slots:    slotsOf(compressed),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func handleConstants(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "GET only", http.StatusMethodNotAllowed)
		return
	}
	resp := struct {
		Buttons map[string]constants.Keycode `json:"buttons"`
		PST     map[string]constants.PST     `json:"pst"`
	}{
		Buttons: constants.ButtonNameTable(),
		PST:     constants.PSTNameTable(),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// Serve starts the introspection server on addr, over plain-text HTTP/2
// (h2c) so no certificate needs to be provisioned for local tooling to use
// it. It blocks until the server stops or errors, same contract as
// http.ListenAndServe.
func Serve(addr string) error {
	h2s := &http2.Server{}
	handler := h2c.NewHandler(Handler(), h2s)
	return http.ListenAndServe(addr, handler)
}
