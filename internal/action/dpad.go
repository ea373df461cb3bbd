package action

import (
	"fmt"
	"math"
	"strings"

	"github.com/galago-remap/scte/internal/constants"
	"github.com/galago-remap/scte/internal/param"
	"github.com/galago-remap/scte/internal/paramcheck"
)

// minDpadDistanceSq is the minimum squared distance a finger has to be from
// pad center before any side is considered active.
const minDpadDistanceSq = 2000000.0

const dpadDefaultDiagonalRange = 45

var dpadChecker = paramcheck.New("c?a?a?a?a?a?a?a?a?")

func init() {
	dpadChecker.SetDefaults(
		param.NewInt(dpadDefaultDiagonalRange),
		param.None, param.None, param.None, param.None,
		param.None, param.None, param.None, param.None,
	)
	Register("dpad", dpadConstructor)
	Register("dpad8", dpadConstructor) // backwards compatibility
}

// dpadSides maps an angle-range index to the pair of (up/down, left/right)
// slots it activates. -1 means "no side active on this axis".
var dpadSides = [9][2]int8{
	{-1, 1}, // down
	{2, 1},  // down-left
	{2, -1}, // left
	{2, 0},  // up-left
	{-1, 0}, // up
	{3, 0},  // up-right
	{3, -1}, // right
	{3, 1},  // down-right
	{-1, 1}, // same as 0
}

type dpadRange struct {
	start, end float64
	index      uint8
}

// dpadAction splits a pad or stick surface into up/down/left/right (and,
// when all 8 children are given, the four diagonals too), pressing and
// releasing each child as the finger crosses between angular ranges.
type dpadAction struct {
	diagonalRange int64
	state         [2]int8
	actions       [8]Action
	ranges        [9]dpadRange
}

func dpadConstructor(keyword string, params []param.Parameter) (Action, error) {
	if err := dpadChecker.Check(keyword, params); err != nil {
		return nil, err
	}
	params = dpadChecker.FillDefaults(params)

	d := &dpadAction{
		diagonalRange: params[0].AsInt(),
		state:         [2]int8{-1, -1},
	}
	for i := 0; i < 8; i++ {
		d.actions[i] = actionFromParam(params[i+1])
	}

	normalRange := 90 - d.diagonalRange
	i := int64(360 - normalRange/2)
	for x := 0; x < 9; x++ {
		r := normalRange
		if x%2 == 1 {
			r = d.diagonalRange
		}
		j := i
		i = (i + r) % 360
		d.ranges[x] = dpadRange{start: float64(j), end: float64(i), index: uint8(x % 8)}
	}
	return d, nil
}

func (d *dpadAction) Keyword() string { return "dpad" }
func (d *dpadAction) Flags() Flags {
	return AFAction | AFModClick | AFModRotate | AFModDeadzone | AFModFeedback
}

func (d *dpadAction) ToString() string {
	parts := make([]string, 0, 9)
	parts = append(parts, param.NewInt(d.diagonalRange).ToString())
	for _, a := range d.actions {
		parts = append(parts, a.ToString())
	}
	return fmt.Sprintf("dpad(%s)", strings.Join(parts, ", "))
}

func (d *dpadAction) Describe(ctx DescContext) string {
	// TODO: detect WSAD/arrow-key bindings and name them accordingly.
	return "DPad"
}

func (d *dpadAction) Compress() Action {
	for i, a := range d.actions {
		d.actions[i] = a.Compress()
	}
	return d
}

func (d *dpadAction) GetChildren() []Action {
	children := make([]Action, 0, 8)
	for _, a := range d.actions {
		if a != NoAction {
			children = append(children, a)
		}
	}
	return children
}

func (d *dpadAction) GetProperty(name string) (param.Parameter, bool) {
	if name == "diagonal_range" {
		return param.NewInt(d.diagonalRange), true
	}
	return nil, false
}

func (d *dpadAction) computeSide(x, y int32) [2]int8 {
	sides := [2]int8{-1, -1}
	distance := math.Pow(float64(x), 2) + math.Pow(float64(y), 2)
	if distance <= minDpadDistanceSq {
		return sides
	}
	angle := math.Atan2(float64(x), float64(y))*180.0/math.Pi + 180.0
	index := uint8(0)
	for _, r := range d.ranges {
		if angle >= r.start && angle < r.end {
			index = r.index
			break
		}
	}
	sides[0] = dpadSides[index][0]
	sides[1] = dpadSides[index][1]
	return sides
}

func (d *dpadAction) Whole(m Mapper, x, y int32, what constants.PST) {
	sides := d.computeSide(x, y)
	for i := 0; i <= 1; i++ {
		if sides[i] != d.state[i] && d.state[i] != -1 {
			DispatchButtonRelease(d.actions[d.state[i]], m)
			d.state[i] = -1
		}
		if sides[i] != -1 && sides[i] != d.state[i] {
			DispatchButtonPress(d.actions[sides[i]], m)
		}
		d.state[i] = sides[i]
	}
}
