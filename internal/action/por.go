package action

import (
	"time"

	"github.com/galago-remap/scte/internal/constants"
	"github.com/galago-remap/scte/internal/param"
	"github.com/galago-remap/scte/internal/paramcheck"
)

var porChecker = paramcheck.New(".")

func init() {
	Register("press", porConstructor)
	Register("release", porConstructor)
	Register("pressed", porConstructor)
	Register("released", porConstructor)
	Register("touched", porConstructor)
	Register("untouched", porConstructor)
}

// porAction fires its child in reaction to one specific edge of a button's
// or pad's press/touch state: "press"/"release" pass straight through,
// while "pressed"/"released"/"touched"/"untouched" press the child for a
// brief, fixed moment and let the timer release it again.
type porAction struct {
	keyword string
	child   Action
}

const porPulseDuration = 10 * time.Millisecond

func porConstructor(keyword string, params []param.Parameter) (Action, error) {
	if err := porChecker.Check(keyword, params); err != nil {
		return nil, err
	}

	p := params[0]
	var child Action
	switch {
	case p.Type()&param.TAction != 0:
		child = actionFromParam(p)
	case p.Type()&(param.TInt|param.TFloat) != 0:
		child = NewButton(constants.Keycode(p.AsInt()))
	default:
		return nil, invalidParamType(keyword, p, 1)
	}

	return &porAction{keyword: keyword, child: child}, nil
}

func (p *porAction) Keyword() string { return p.keyword }
func (p *porAction) Flags() Flags    { return AFAction }

func (p *porAction) ToString() string {
	return p.keyword + "(" + p.child.ToString() + ")"
}

func (p *porAction) Describe(ctx DescContext) string {
	var state string
	switch p.keyword {
	case "press":
		state = "(pressed)"
	case "release":
		state = "(release)"
	case "pressed":
		state = "(when pressed)"
	case "released":
		state = "(when released)"
	case "touched":
		state = "(when touched)"
	case "untouched":
		state = "(when untouched)"
	}
	return state + "\n" + p.child.Describe(ctx)
}

func (p *porAction) Compress() Action {
	p.child = p.child.Compress()
	return p
}

func (p *porAction) GetChild() Action { return p.child }

func (p *porAction) pulse(m Mapper) {
	DispatchButtonPress(p.child, m)
	m.Schedule(porPulseDuration, func() {
		DispatchButtonRelease(p.child, m)
	})
}

func (p *porAction) ButtonPress(m Mapper) {
	switch p.keyword {
	case "press":
		DispatchButtonPress(p.child, m)
	case "pressed":
		p.pulse(m)
	}
}

func (p *porAction) ButtonRelease(m Mapper) {
	switch p.keyword {
	case "release":
		DispatchButtonRelease(p.child, m)
	case "released":
		p.pulse(m)
	}
}

func (p *porAction) Whole(m Mapper, x, y int32, what constants.PST) {
	b := constants.WhatToTouchButton(what)
	switch p.keyword {
	case "touched":
		if !m.WasPressed(b) && m.IsPressed(b) {
			p.pulse(m)
		}
	case "untouched":
		if m.WasPressed(b) && !m.IsPressed(b) {
			p.pulse(m)
		}
	}
}
