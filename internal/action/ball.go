package action

import (
	"fmt"
	"math"
	"time"

	"github.com/galago-remap/scte/internal/constants"
	"github.com/galago-remap/scte/internal/param"
	"github.com/galago-remap/scte/internal/paramcheck"
)

const (
	ballDefaultFriction = 10.0
	ballDefaultMass     = 80.0
	ballDefaultMeanLen  = 10
	ballDefaultR        = 0.02
	ballDefaultAmpli    = 65536
	ballDefaultDegree   = 40.0
	// minLiftVelocity: below this speed, lifting the finger doesn't start a
	// roll — it reads as an intentional stop, not a flick.
	minLiftVelocity = 0.2
	// rollTick is the scheduling interval physics steps run at.
	rollTick = 2 * time.Millisecond
)

var ballChecker = paramcheck.New("f+?f+?c?f+?ui32?f+?a")

func init() {
	ballChecker.SetDefaults(
		param.NewFloat(ballDefaultFriction),
		param.NewFloat(ballDefaultMass),
		param.NewInt(ballDefaultMeanLen),
		param.NewFloat(ballDefaultR),
		param.NewInt(ballDefaultAmpli),
		param.NewFloat(ballDefaultDegree),
	)
	Register("ball", ballConstructor)
}

// ballAction emulates rolling-ball inertia over a pad: while touched it
// tracks velocity from finger movement, and once lifted it keeps moving the
// child action, slowing it by a constant friction deceleration each tick
// until it settles.
type ballAction struct {
	child Action
	wholeHaptic

	what constants.PST

	sensX, sensY float64
	velX, velY   float64

	friction float64
	ampli    int64
	degree   float64
	radscale float64
	mass     float64
	r, i, a  float64

	dq *dequeue

	rollTask   ScheduledTask
	lastTime   time.Time
	oldX, oldY int32
	oldPosSet  bool
}

func ballConstructor(keyword string, params []param.Parameter) (Action, error) {
	if err := ballChecker.Check(keyword, params); err != nil {
		return nil, err
	}
	params = ballChecker.FillDefaults(params)

	friction := params[0].AsFloat()
	mass := params[1].AsFloat()
	meanLen := int(params[2].AsInt())
	r := params[3].AsFloat()
	ampli := params[4].AsInt()
	degree := params[5].AsFloat()

	b := &ballAction{
		child:    actionFromParam(params[6]),
		friction: friction,
		mass:     mass,
		r:        r,
		ampli:    ampli,
		degree:   degree,
		sensX:    1, sensY: 1,
		dq: newDequeue(meanLen),
	}
	b.radscale = (degree * math.Pi / 180.0) / float64(ampli)
	b.i = (2.0 * mass * (r * r)) / 5.0
	b.a = r * friction / b.i
	return b, nil
}

func (b *ballAction) Keyword() string { return "ball" }
func (b *ballAction) Flags() Flags {
	return AFModSensitivity | AFModFeedback | AFModSmooth | AFModDeadzone
}

func (b *ballAction) ToString() string {
	return fmt.Sprintf("ball(%g, %g, %d, %g, %d, %g, %s)",
		b.friction, b.mass, b.dq.cap, b.r, b.ampli, b.degree, b.child.ToString())
}

func (b *ballAction) Describe(ctx DescContext) string {
	if isMouseAction(b.child) {
		return "Trackball"
	}
	if isXYAction(b.child) {
		if s, ok := describeXYLike(b.child); ok {
			return s
		}
	}
	return "Ball(" + b.child.Describe(ctx) + ")"
}

func (b *ballAction) Compress() Action {
	b.child = b.child.Compress()
	if cm, ok := b.child.(*circularModifier); ok {
		inner := cm.child
		cm.child = b
		b.child = inner
		return cm
	}
	return b
}

func (b *ballAction) GetChild() Action { return b.child }

func (b *ballAction) SetSensitivity(x, y, z float64) { b.sensX, b.sensY = x, y }

func (b *ballAction) SetHaptic(data HapticData) { b.setHaptic(data) }

func (b *ballAction) GetProperty(name string) (param.Parameter, bool) {
	switch name {
	case "friction":
		return param.NewFloat(b.friction), true
	case "sensitivity":
		return param.NewTuple([]param.Parameter{param.NewFloat(b.sensX), param.NewFloat(b.sensY)}), true
	case "haptic":
		return hapticProperty(b.wholeHaptic.data), true
	case "ampli":
		return param.NewInt(b.ampli), true
	case "degree":
		return param.NewFloat(b.degree), true
	case "radscale":
		return param.NewFloat(b.radscale), true
	case "mass":
		return param.NewFloat(b.mass), true
	case "r":
		return param.NewFloat(b.r), true
	case "i":
		return param.NewFloat(b.i), true
	case "a":
		return param.NewFloat(b.a), true
	}
	return nil, false
}

// stop cancels any pending roll and clears accumulated velocity samples.
func (b *ballAction) stop(m Mapper) {
	b.dq.clear()
	if b.rollTask != nil {
		m.Cancel(b.rollTask)
		b.rollTask = nil
	}
}

// add folds a new instantaneous velocity sample into the moving average,
// updating b's current velocity to the average BEFORE this sample is mixed
// in — the sample only affects future ticks.
func (b *ballAction) add(dx, dy float64) {
	b.velX, b.velY = b.dq.avg()
	b.dq.add(dx*b.radscale, dy*b.radscale)
}

// roll steps the friction-decay physics one tick and reschedules itself
// while the ball is still moving fast enough to matter.
func (b *ballAction) roll(m Mapper) {
	t := m.Now()
	dt := t.Sub(b.lastTime).Seconds()
	b.lastTime = t

	hyp := math.Hypot(b.velX, b.velY)
	var ax, ay float64
	if hyp != 0 {
		ax = b.a * (math.Abs(b.velX) / hyp)
		ay = b.a * (math.Abs(b.velY) / hyp)
	} else {
		ax, ay = b.a, b.a
	}

	dvx := math.Min(math.Abs(b.velX), ax*dt)
	dvy := math.Min(math.Abs(b.velY), ay*dt)

	vx := b.velX - math.Copysign(dvx, b.velX)
	vy := b.velY - math.Copysign(dvy, b.velY)

	dx := (((vx + b.velX) / 2.0) * dt) / b.radscale
	dy := (((vy + b.velY) / 2.0) * dt) / b.radscale

	b.velX, b.velY = vx, vy

	DispatchChange(b.child, m, dx*b.sensX, dy*b.sensY, b.what)

	if math.Abs(dx) > 0.001 || math.Abs(dy) >= 0.001 {
		b.wholeHaptic.change(m, dx, dy)
		b.rollTask = m.Schedule(rollTick, func() { b.roll(m) })
	}
}

func (b *ballAction) Whole(m Mapper, x, y int32, what constants.PST) {
	b.what = what
	if what == constants.PSTStick || (m.Flags().Has(MapperHasRStick) && what == constants.PSTRPad) {
		// Ball bound directly to a physical stick: pass the raw value
		// through untouched, physics only applies to touch surfaces.
		DispatchWhole(b.child, m, x, y, what)
		return
	}

	if m.IsTouched(what) {
		t := m.Now()
		if b.oldPosSet && m.WasTouched(what) {
			dt := t.Sub(b.lastTime).Seconds()
			if dt < 0.0075 {
				return
			}
			dx := float64(x - b.oldX)
			dy := float64(y - b.oldY)
			b.add(dx/dt, dy/dt)
			b.wholeHaptic.change(m, dx, dy)
			DispatchChange(b.child, m, dx*b.sensX, dy*b.sensY, what)
		} else {
			b.stop(m)
		}
		b.oldPosSet = true
		b.oldX, b.oldY = x, y
		b.lastTime = t
	} else if m.WasTouched(what) {
		b.oldPosSet = false
		if math.Hypot(b.velX, b.velY) > minLiftVelocity {
			b.rollTask = m.Schedule(rollTick, func() { b.roll(m) })
		}
	}
}

func isMouseAction(a Action) bool { return a.Keyword() == "mouse" }
func isAxisAction(a Action) bool  { return a.Keyword() == "axis" }
func isXYAction(a Action) bool    { return a.Keyword() == "XY" }

// describeXYLike inspects an xy() action's two children to give ball's
// description a friendlier label when both halves are axis- or
// mouse-like, matching the "Mouse-like LStick" style heuristics.
func describeXYLike(xy Action) (string, bool) {
	pg, ok := xy.(PropertyGetter)
	if !ok {
		return "", false
	}
	px, okx := pg.GetProperty("x")
	py, oky := pg.GetProperty("y")
	if !okx || !oky {
		return "", false
	}
	xa, okx2 := px.AsAction().(Action)
	ya, oky2 := py.AsAction().(Action)
	if !okx2 || !oky2 {
		return "", false
	}
	switch {
	case isAxisAction(xa) && isAxisAction(ya):
		axp, ok1 := xa.(PropertyGetter)
		ayp, ok2 := ya.(PropertyGetter)
		if !ok1 || !ok2 {
			return "", false
		}
		axv, ok1 := axp.GetProperty("axis")
		ayv, ok2 := ayp.GetProperty("axis")
		if !ok1 || !ok2 {
			return "", false
		}
		ax, ay := constants.Axis(axv.AsInt()), constants.Axis(ayv.AsInt())
		switch {
		case ax == constants.AxisLX && ay == constants.AxisLY:
			return "Mouse-like LStick", true
		case (ax == constants.AxisWheel || ax == constants.AxisHWheel) &&
			(ay == constants.AxisWheel || ay == constants.AxisHWheel):
			return "Mouse Wheel", true
		default:
			return "Mouse-like RStick", true
		}
	case isMouseAction(xa) && isMouseAction(ya):
		return "Mouse-like RStick", true
	}
	return "", false
}
