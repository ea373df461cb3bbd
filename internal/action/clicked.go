package action

import (
	"fmt"

	"github.com/galago-remap/scte/internal/constants"
	"github.com/galago-remap/scte/internal/param"
	"github.com/galago-remap/scte/internal/paramcheck"
)

var clickedChecker = paramcheck.New("a")

func init() {
	Register("clicked", clickedConstructor)
	Register("click", clickedConstructor) // pre-rename alias
}

// clickedModifier gates its child so that a stick/pad binding (axis and
// whole events) only forwards its analog value while the surface's
// associated button is actually held down, and passes a zeroed value
// through on the tick it's released. Trigger and button events are
// forwarded to the child without gating.
type clickedModifier struct {
	child Action
}

func clickedConstructor(keyword string, params []param.Parameter) (Action, error) {
	if err := clickedChecker.Check(keyword, params); err != nil {
		return nil, err
	}
	return &clickedModifier{child: actionFromParam(params[0])}, nil
}

func (c *clickedModifier) Keyword() string { return "clicked" }
func (c *clickedModifier) Flags() Flags    { return 0 }

func (c *clickedModifier) ToString() string {
	return fmt.Sprintf("clicked(%s)", c.child.ToString())
}

func (c *clickedModifier) Describe(ctx DescContext) string { return c.child.Describe(ctx) }

func (c *clickedModifier) Compress() Action {
	c.child = c.child.Compress()
	return c
}

func (c *clickedModifier) GetChild() Action { return c.child }

func (c *clickedModifier) ButtonPress(m Mapper)   { DispatchButtonPress(c.child, m) }
func (c *clickedModifier) ButtonRelease(m Mapper) { DispatchButtonRelease(c.child, m) }

func (c *clickedModifier) Trigger(m Mapper, oldPos, pos int32, what constants.PST) {
	DispatchTrigger(c.child, m, oldPos, pos, what)
}

func (c *clickedModifier) Axis(m Mapper, value int32, what constants.PST) {
	b := constants.WhatToPressedButton(what)
	if m.IsPressed(b) {
		DispatchAxis(c.child, m, value, what)
	} else if m.WasPressed(b) {
		DispatchAxis(c.child, m, 0, what)
	}
}

func (c *clickedModifier) Whole(m Mapper, x, y int32, what constants.PST) {
	b := constants.WhatToPressedButton(what)
	if m.IsPressed(b) {
		DispatchWhole(c.child, m, x, y, what)
	} else if m.WasPressed(b) {
		DispatchWhole(c.child, m, 0, 0, what)
	}
	// A finger crossing the pad while nothing is pressed produces no event
	// here at all — there is no "blocked" callback to redirect it to.
}
