package action

import (
	"github.com/galago-remap/scte/internal/param"
	"github.com/galago-remap/scte/internal/paramcheck"
)

var nameChecker = paramcheck.New("sa")

func init() { Register("name", nameConstructor) }

// nameModifier stores a GUI-facing label for its child and then, like
// sensitivityModifier and feedbackModifier, disappears at Compress time —
// the label is consumed by the editor, not by runtime dispatch.
type nameModifier struct {
	label string
	child Action
}

func nameConstructor(keyword string, params []param.Parameter) (Action, error) {
	if err := nameChecker.Check(keyword, params); err != nil {
		return nil, err
	}
	return &nameModifier{label: params[0].AsString(), child: actionFromParam(params[1])}, nil
}

func (n *nameModifier) Keyword() string { return "name" }
func (n *nameModifier) Flags() Flags    { return 0 }

func (n *nameModifier) ToString() string {
	return "name(" + param.NewConstString(n.label).ToString() + ", " + n.child.ToString() + ")"
}

func (n *nameModifier) Describe(ctx DescContext) string { return n.label }

func (n *nameModifier) Compress() Action {
	child := n.child.Compress()
	return child
}
