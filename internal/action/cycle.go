package action

import (
	"strings"

	"github.com/galago-remap/scte/internal/param"
	"github.com/galago-remap/scte/internal/paramcheck"
)

var cycleChecker = paramcheck.New("a*")

func init() { Register("cycle", cycleConstructor) }

// cycleAction steps through a fixed list of child actions on each press:
// the Nth press of the button runs the Nth action, wrapping back to the
// first after the last.
type cycleAction struct {
	children []Action
	next     int
}

func cycleConstructor(keyword string, params []param.Parameter) (Action, error) {
	if err := cycleChecker.Check(keyword, params); err != nil {
		return nil, err
	}
	children := make([]Action, len(params))
	for i, p := range params {
		children[i] = actionFromParam(p)
	}
	return &cycleAction{children: children}, nil
}

func (c *cycleAction) Keyword() string { return "cycle" }
func (c *cycleAction) Flags() Flags    { return AFAction }

func (c *cycleAction) ToString() string {
	parts := make([]string, len(c.children))
	for i, ch := range c.children {
		parts[i] = ch.ToString()
	}
	return "cycle(" + strings.Join(parts, ", ") + ")"
}

func (c *cycleAction) Describe(ctx DescContext) string {
	if len(c.children) == 0 {
		return "Cycle"
	}
	return c.children[c.next].Describe(ctx)
}

func (c *cycleAction) Compress() Action {
	for i := range c.children {
		c.children[i] = c.children[i].Compress()
	}
	return c
}

func (c *cycleAction) GetChildren() []Action { return c.children }

func (c *cycleAction) ButtonPress(m Mapper) {
	if len(c.children) == 0 {
		return
	}
	DispatchButtonPress(c.children[c.next], m)
}

func (c *cycleAction) ButtonRelease(m Mapper) {
	if len(c.children) == 0 {
		return
	}
	DispatchButtonRelease(c.children[c.next], m)
	c.next++
	if c.next >= len(c.children) {
		c.next = 0
	}
}
