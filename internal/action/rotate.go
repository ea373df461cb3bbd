package action

import (
	"fmt"
	"math"

	"github.com/galago-remap/scte/internal/constants"
	"github.com/galago-remap/scte/internal/param"
	"github.com/galago-remap/scte/internal/paramcheck"
)

var rotateChecker = paramcheck.New("fa")

func init() { Register("rotate", rotateConstructor) }

// rotateModifier rotates a stick/pad's (x, y) reading around its center by
// a fixed angle (degrees) before forwarding to its child.
type rotateModifier struct {
	child Action
	angle float64
}

func rotateConstructor(keyword string, params []param.Parameter) (Action, error) {
	if err := rotateChecker.Check(keyword, params); err != nil {
		return nil, err
	}
	return &rotateModifier{angle: params[0].AsFloat(), child: actionFromParam(params[1])}, nil
}

func (r *rotateModifier) Keyword() string { return "rotate" }
func (r *rotateModifier) Flags() Flags    { return 0 }

func (r *rotateModifier) ToString() string {
	return fmt.Sprintf("rotate(%g, %s)", r.angle, r.child.ToString())
}

func (r *rotateModifier) Describe(ctx DescContext) string { return r.child.Describe(ctx) }

func (r *rotateModifier) Compress() Action {
	r.child = r.child.Compress()
	return r
}

func (r *rotateModifier) GetChild() Action { return r.child }

func (r *rotateModifier) GetProperty(name string) (param.Parameter, bool) {
	if name == "angle" {
		return param.NewFloat(r.angle), true
	}
	return nil, false
}

func (r *rotateModifier) Whole(m Mapper, x, y int32, what constants.PST) {
	angle := r.angle * math.Pi / -180.0
	rx := float64(x)*math.Cos(angle) - float64(y)*math.Sin(angle)
	ry := float64(x)*math.Sin(angle) + float64(y)*math.Cos(angle)
	DispatchWhole(r.child, m, int32(rx), int32(ry), what)
}
