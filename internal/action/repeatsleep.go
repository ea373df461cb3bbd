package action

import (
	"fmt"
	"time"

	"github.com/galago-remap/scte/internal/param"
	"github.com/galago-remap/scte/internal/paramcheck"
)

var (
	sleepChecker  = paramcheck.New("f")
	repeatChecker = paramcheck.New("a")
)

func init() {
	Register("sleep", sorConstructor)
	Register("repeat", sorConstructor)
}

// sleepRepeatAction covers two keywords that only make sense as a macro
// step: sleep() inserts a pause between two steps (and does nothing at all
// outside of one), and repeat() marks its child macro to keep looping for
// as long as the triggering button stays held.
type sleepRepeatAction struct {
	keyword string
	seconds float64 // sleep() only
	child   Action  // repeat() only, before compress folds it into macro
	macro   *macroAction
}

func sorConstructor(keyword string, params []param.Parameter) (Action, error) {
	if keyword == "repeat" {
		if err := repeatChecker.Check(keyword, params); err != nil {
			return nil, err
		}
		return &sleepRepeatAction{keyword: "repeat", child: actionFromParam(params[0])}, nil
	}
	if err := sleepChecker.Check(keyword, params); err != nil {
		return nil, err
	}
	return &sleepRepeatAction{keyword: "sleep", seconds: params[0].AsFloat()}, nil
}

func (s *sleepRepeatAction) Keyword() string { return s.keyword }
func (s *sleepRepeatAction) Flags() Flags    { return AFAction }

func (s *sleepRepeatAction) ToString() string {
	if s.keyword == "sleep" {
		return fmt.Sprintf("sleep(%g)", s.seconds)
	}
	return fmt.Sprintf("repeat(%s)", s.child.ToString())
}

func (s *sleepRepeatAction) Describe(ctx DescContext) string {
	if s.keyword == "sleep" {
		return ""
	}
	return s.child.Describe(ctx)
}

// duration returns how long a sleep() step should pause before the macro
// moves to its next child.
func (s *sleepRepeatAction) duration() time.Duration {
	return time.Duration(s.seconds * float64(time.Second))
}

func (s *sleepRepeatAction) Compress() Action {
	if s.keyword != "repeat" {
		return s
	}
	if s.macro == nil {
		s.child = s.child.Compress()
		if m, ok := s.child.(*macroAction); ok {
			s.macro = m
		} else {
			// repeat() needs a macro to set its loop flag on, so a
			// non-macro child gets wrapped in a single-step one.
			s.macro = newMacro([]Action{s.child})
		}
	}
	return s
}

func (s *sleepRepeatAction) GetChild() Action {
	if s.keyword == "sleep" {
		return NoAction
	}
	return s.child
}

func (s *sleepRepeatAction) ButtonPress(m Mapper) {
	if s.keyword != "repeat" || s.macro == nil {
		return
	}
	s.macro.setRepeat(true)
	s.macro.ButtonPress(m)
}

func (s *sleepRepeatAction) ButtonRelease(m Mapper) {
	if s.keyword != "repeat" || s.macro == nil {
		return
	}
	s.macro.setRepeat(false)
}
