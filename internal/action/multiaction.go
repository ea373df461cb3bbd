package action

import (
	"strings"

	"github.com/galago-remap/scte/internal/constants"
)

// multiAction fires every child action at once for the same input event —
// the action tree's representation of "A and B" in profile text. It's
// never reached through the keyword registry: the parser builds one
// directly via NewMultiaction when it sees the "and" combinator, the same
// way the engine this is ported from only ever constructs it internally.
type multiAction struct {
	children []Action
}

// NewMultiaction combines children into a single action that dispatches
// every event to all of them. Combining into an existing multiAction
// flattens instead of nesting.
func NewMultiaction(children ...Action) Action {
	flat := make([]Action, 0, len(children))
	for _, c := range children {
		if m, ok := c.(*multiAction); ok {
			flat = append(flat, m.children...)
		} else {
			flat = append(flat, c)
		}
	}
	return &multiAction{children: flat}
}

// CombineActions implements the "and" operator: two actions combine into
// one multiAction, flattening either side that's already one.
func CombineActions(a1, a2 Action) Action {
	return NewMultiaction(a1, a2)
}

func (m *multiAction) Keyword() string { return "and" }
func (m *multiAction) Flags() Flags    { return AFAction }

func (m *multiAction) ToString() string {
	parts := make([]string, len(m.children))
	for i, c := range m.children {
		parts[i] = c.ToString()
	}
	return strings.Join(parts, " and ")
}

func (m *multiAction) Describe(ctx DescContext) string {
	parts := make([]string, 0, len(m.children))
	for _, c := range m.children {
		parts = append(parts, c.Describe(ctx))
	}
	return strings.Join(parts, " and ")
}

func (m *multiAction) Compress() Action {
	for i := range m.children {
		m.children[i] = m.children[i].Compress()
	}
	return m
}

func (m *multiAction) GetChildren() []Action { return m.children }

func (m *multiAction) SetSensitivity(x, y, z float64) {
	for _, c := range m.children {
		if s, ok := c.(SensitivitySetter); ok {
			s.SetSensitivity(x, y, z)
		}
	}
}

func (m *multiAction) SetHaptic(data HapticData) {
	for _, c := range m.children {
		if s, ok := c.(HapticSetter); ok {
			s.SetHaptic(data)
		}
	}
}

func (m *multiAction) ButtonPress(mp Mapper) {
	for _, c := range m.children {
		DispatchButtonPress(c, mp)
	}
}

func (m *multiAction) ButtonRelease(mp Mapper) {
	for _, c := range m.children {
		DispatchButtonRelease(c, mp)
	}
}

func (m *multiAction) Axis(mp Mapper, value int32, what constants.PST) {
	for _, c := range m.children {
		DispatchAxis(c, mp, value, what)
	}
}

func (m *multiAction) Whole(mp Mapper, x, y int32, what constants.PST) {
	for _, c := range m.children {
		DispatchWhole(c, mp, x, y, what)
	}
}

func (m *multiAction) Trigger(mp Mapper, oldPos, pos int32, what constants.PST) {
	for _, c := range m.children {
		DispatchTrigger(c, mp, oldPos, pos, what)
	}
}

func (m *multiAction) Gyro(mp Mapper, pitch, yaw, roll float64, q1, q2, q3, q4 float64) {
	for _, c := range m.children {
		DispatchGyro(c, mp, pitch, yaw, roll, q1, q2, q3, q4)
	}
}
