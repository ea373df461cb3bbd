package action

import (
	"fmt"
	"math"

	"github.com/galago-remap/scte/internal/constants"
	"github.com/galago-remap/scte/internal/param"
	"github.com/galago-remap/scte/internal/paramcheck"
)

const ringDefaultRadius = 0.5

var ringChecker = paramcheck.New("f?aa?")

func init() {
	ringChecker.SetDefaults(param.NewFloat(ringDefaultRadius), param.NewAction(NoAction))
	Register("ring", ringConstructor)
}

// circularModifier (the "ring" keyword) splits a stick/pad surface into an
// inner and outer annulus by distance from center, rescaling each region to
// the full analog range before forwarding to its own child — inner or
// outer. It also doubles as ball's circular-swap partner: ball.Compress
// splices itself between a ring and the ring's original child so ball's
// physics runs on the raw input the ring would otherwise have rescaled.
type circularModifier struct {
	radius  float64
	radiusM float64
	inner   Action
	outer   Action
	active  Action
	child   Action // set only when ball has spliced itself in via Compress
}

func ringConstructor(keyword string, params []param.Parameter) (Action, error) {
	if err := ringChecker.Check(keyword, params); err != nil {
		return nil, err
	}
	params = ringChecker.FillDefaults(params)

	radius := params[0].AsFloat()
	return &circularModifier{
		radius:  radius,
		radiusM: constants.StickPadMax * radius,
		inner:   actionFromParam(params[1]),
		outer:   actionFromParam(params[2]),
	}, nil
}

func (r *circularModifier) Keyword() string { return "ring" }
func (r *circularModifier) Flags() Flags    { return AFAction }

func (r *circularModifier) ToString() string {
	return fmt.Sprintf("ring(%g, %s, %s)", r.radius, r.inner.ToString(), r.outer.ToString())
}

func (r *circularModifier) Describe(ctx DescContext) string { return r.inner.Describe(ctx) }

func (r *circularModifier) Compress() Action {
	r.inner = r.inner.Compress()
	r.outer = r.outer.Compress()
	return r
}

func (r *circularModifier) SetHaptic(data HapticData) {
	if s, ok := r.inner.(HapticSetter); ok {
		s.SetHaptic(data)
	}
	if s, ok := r.outer.(HapticSetter); ok {
		s.SetHaptic(data)
	}
}

func (r *circularModifier) SetSensitivity(x, y, z float64) {
	if s, ok := r.inner.(SensitivitySetter); ok {
		s.SetSensitivity(x, y, z)
	}
	if s, ok := r.outer.(SensitivitySetter); ok {
		s.SetSensitivity(x, y, z)
	}
}

func (r *circularModifier) Whole(m Mapper, _x, _y int32, what constants.PST) {
	x, y := float64(_x), float64(_y)
	touching := what == constants.PSTStick || m.IsTouched(what)

	if touching {
		var action Action
		angle := math.Atan2(x, y)
		distance := math.Hypot(x, y)
		if distance < r.radiusM {
			action = r.inner
			distance /= r.radius
		} else {
			action = r.outer
			distance = (distance - r.radiusM) / (1.0 - r.radius)
		}
		nx := int32(distance * math.Sin(angle))
		ny := int32(distance * math.Cos(angle))

		switch {
		case action == r.active:
			DispatchWhole(action, m, nx, ny, what)
		case what == constants.PSTStick:
			// Stick crossed the radius border: center the former action,
			// then move the new one into place.
			if r.active != nil {
				DispatchWhole(r.active, m, 0, 0, what)
			}
			DispatchWhole(action, m, nx, ny, what)
			r.active = action
		default:
			// Finger crossed the radius border: release the former action,
			// then touch the new one.
			if r.active != nil {
				DispatchWhole(r.active, m, 0, 0, what)
			}
			DispatchWhole(action, m, nx, ny, what)
			r.active = action
		}
		return
	}

	if r.active != nil && (m.WasTouched(what) || (what == constants.PSTStick && _x == 0 && _y == 0)) {
		DispatchWhole(r.active, m, _x, _y, what)
		r.active = nil
	}
}
