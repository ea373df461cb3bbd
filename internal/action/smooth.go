package action

import (
	"fmt"
	"math"

	"github.com/galago-remap/scte/internal/constants"
	"github.com/galago-remap/scte/internal/param"
	"github.com/galago-remap/scte/internal/paramcheck"
)

var smoothChecker = paramcheck.New("c?f?f?a")

func init() {
	smoothChecker.SetDefaults(param.NewInt(8), param.NewFloat(0.75), param.NewFloat(2.0))
	Register("smooth", smoothConstructor)
}

// smoothModifier averages the last N pad/stick positions (weighted toward
// the most recent) before handing them to its child, damping jitter.
type smoothModifier struct {
	child      Action
	multiplier float64
	filter     float64
	weights    []float64
	weightSum  float64
	dq         *dequeue
	lastX      int32
	lastY      int32
}

func smoothConstructor(keyword string, params []param.Parameter) (Action, error) {
	if err := smoothChecker.Check(keyword, params); err != nil {
		return nil, err
	}
	params = smoothChecker.FillDefaults(params)

	level := int(params[0].AsInt())
	multiplier := params[1].AsFloat()

	weights := make([]float64, level)
	sum := 0.0
	for i := 0; i < level; i++ {
		weights[i] = math.Pow(multiplier, float64(level-i-1))
		sum += weights[i]
	}

	return &smoothModifier{
		child:      actionFromParam(params[3]),
		multiplier: multiplier,
		filter:     params[2].AsFloat(),
		weights:    weights,
		weightSum:  sum,
		dq:         newDequeue(level),
	}, nil
}

func (s *smoothModifier) Keyword() string { return "smooth" }
func (s *smoothModifier) Flags() Flags    { return 0 }

func (s *smoothModifier) ToString() string {
	return fmt.Sprintf("smooth(%d, %g, %g, %s)", len(s.weights), s.multiplier, s.filter, s.child.ToString())
}

func (s *smoothModifier) Describe(ctx DescContext) string {
	return fmt.Sprintf("%s (smooth)", s.child.Describe(ctx))
}

func (s *smoothModifier) Compress() Action {
	s.child = s.child.Compress()
	return s
}

func (s *smoothModifier) GetChild() Action { return s.child }

func (s *smoothModifier) GetProperty(name string) (param.Parameter, bool) {
	switch name {
	case "multiplier":
		return param.NewFloat(s.multiplier), true
	case "filter":
		return param.NewFloat(s.filter), true
	case "level":
		return param.NewInt(int64(len(s.weights))), true
	}
	return nil, false
}

// pos computes the weighted average over whatever has accumulated in dq so
// far (dq.samples may hold fewer than len(weights) entries before the pad
// has been touched long enough to fill it).
func (s *smoothModifier) pos() (int32, int32) {
	var x, y float64
	n := s.dq.size
	for i := 0; i < n; i++ {
		sx, sy := s.dq.at(i)
		x += sx * s.weights[i]
		y += sy * s.weights[i]
	}
	return int32(x / s.weightSum), int32(y / s.weightSum)
}

func (s *smoothModifier) Whole(m Mapper, x, y int32, what constants.PST) {
	if what == constants.PSTStick || (m.Flags().Has(MapperHasRStick) && what == constants.PSTRPad) {
		DispatchWhole(s.child, m, x, y, what)
		return
	}
	if m.IsTouched(what) {
		if s.lastX == 0 && s.lastY == 0 {
			for i := 0; i < len(s.weights); i++ {
				s.dq.add(float64(x), float64(y))
			}
		} else {
			s.dq.add(float64(x), float64(y))
		}
		nx, ny := s.pos()
		if float64(abs32(s.lastX-nx)+abs32(s.lastY-ny)) > s.filter {
			DispatchWhole(s.child, m, nx, ny, what)
		}
		s.lastX, s.lastY = nx, ny
	} else {
		nx, ny := s.pos()
		DispatchWhole(s.child, m, nx, ny, what)
		s.lastX, s.lastY = 0, 0
	}
}
