package action

import (
	"fmt"

	"github.com/galago-remap/scte/internal/param"
	"github.com/galago-remap/scte/internal/paramcheck"
)

// The keywords in this file cover UI-only or not-yet-wired behavior: OSD
// layout, window/desktop gestures, shell commands, gyro reset. None of them
// drive Mapper input state; a stubAction only carries its child (if any)
// through Compress so the rest of the tree still works.

var (
	circularChecker = paramcheck.New("a?a?")
	osdChecker      = paramcheck.New("s?a?")
	positionChecker = paramcheck.New("iia")
	shellChecker    = paramcheck.New("s")
	areaChecker     = paramcheck.New("ffff")
	noArgsChecker   = paramcheck.New("")
)

func init() {
	circularChecker.SetDefaults(param.NewAction(NoAction), param.NewAction(NoAction))
	osdChecker.SetDefaults(param.NewConstString(""), param.NewAction(NoAction))

	Register("circular", stubConstructor)
	Register("circularabs", stubConstructor)
	Register("resetgyro", stubConstructor)
	Register("clearosd", stubConstructor)
	Register("osd", stubConstructor)
	Register("gestures", stubConstructor)
	Register("position", stubConstructor)
	Register("restart", stubConstructor)
	Register("shell", stubConstructor)
	Register("area", stubConstructor)
	Register("relarea", stubConstructor)
	Register("winarea", stubConstructor)
	Register("relwinarea", stubConstructor)
	Register("quickmenu", stubConstructor)
}

// stubAction is a placeholder for a desktop/OSD-facing keyword this engine
// doesn't drive at runtime. It still parses, unparses and compresses through
// to its child correctly, so profiles that use it round-trip cleanly.
type stubAction struct {
	keyword string
	params  []param.Parameter
	child   Action
}

func stubConstructor(keyword string, params []param.Parameter) (Action, error) {
	var checker *paramcheck.Checker
	switch keyword {
	case "circular", "circularabs":
		checker = circularChecker
	case "resetgyro", "clearosd", "restart", "gestures", "quickmenu":
		checker = noArgsChecker
	case "osd":
		checker = osdChecker
	case "position":
		checker = positionChecker
	case "shell":
		checker = shellChecker
	case "area", "relarea", "winarea", "relwinarea":
		checker = areaChecker
	}

	if err := checker.Check(keyword, params); err != nil {
		return nil, err
	}
	params = checker.FillDefaults(params)

	s := &stubAction{keyword: keyword, params: params}
	switch keyword {
	case "osd":
		s.child = actionFromParam(params[1])
	case "position":
		s.child = actionFromParam(params[2])
	}
	return s, nil
}

func (s *stubAction) Keyword() string { return s.keyword }
func (s *stubAction) Flags() Flags    { return AFAction }

func (s *stubAction) ToString() string {
	parts := make([]string, len(s.params))
	for i, p := range s.params {
		parts[i] = p.ToString()
	}
	out := s.keyword + "("
	for i, p := range parts {
		if i > 0 {
			out += ", "
		}
		out += p
	}
	return out + ")"
}

func (s *stubAction) Describe(ctx DescContext) string { return fmt.Sprintf("(%s)", s.keyword) }

func (s *stubAction) Compress() Action {
	if s.child != nil {
		s.child = s.child.Compress()
		return s.child
	}
	return s
}

func (s *stubAction) GetChild() Action {
	if s.child != nil {
		return s.child
	}
	return NoAction
}

func (s *stubAction) ButtonPress(m Mapper)   {}
func (s *stubAction) ButtonRelease(m Mapper) {}
