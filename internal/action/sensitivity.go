package action

import (
	"fmt"

	"github.com/galago-remap/scte/internal/param"
	"github.com/galago-remap/scte/internal/paramcheck"
)

var sensitivityChecker = paramcheck.New("ff?f?a")

func init() {
	sensitivityChecker.SetDefaults(param.NewFloat(1.0), param.NewFloat(1.0))
	Register("sens", sensitivityConstructor)
}

// sensitivityModifier doesn't survive past Compress: it exists purely to
// carry (x, y, z) into its child's SetSensitivity, then vanishes from the
// tree, replaced by the (now-configured) child itself.
type sensitivityModifier struct {
	x, y, z float64
	child   Action
}

func sensitivityConstructor(keyword string, params []param.Parameter) (Action, error) {
	if err := sensitivityChecker.Check(keyword, params); err != nil {
		return nil, err
	}
	params = sensitivityChecker.FillDefaults(params)
	return &sensitivityModifier{
		x:     params[0].AsFloat(),
		y:     params[1].AsFloat(),
		z:     params[2].AsFloat(),
		child: actionFromParam(params[3]),
	}, nil
}

func (s *sensitivityModifier) Keyword() string { return "sens" }
func (s *sensitivityModifier) Flags() Flags    { return 0 }

func (s *sensitivityModifier) ToString() string {
	return fmt.Sprintf("sens(%g, %g, %g, %s)", s.x, s.y, s.z, s.child.ToString())
}

func (s *sensitivityModifier) Describe(ctx DescContext) string { return s.child.Describe(ctx) }

func (s *sensitivityModifier) Compress() Action {
	child := s.child.Compress()
	if setter, ok := child.(SensitivitySetter); ok {
		setter.SetSensitivity(s.x, s.y, s.z)
	}
	return child
}
