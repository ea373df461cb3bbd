// Package paramcheck compiles the tiny character-grammar schema language
// action constructors use to declare their parameter list, and implements
// the matching, default-filling, and default-stripping algorithms against
// that schema.
//
// Grammar (one letter/symbol per parameter slot, read left to right):
//
//	s        untyped string            A   pad/stick/trigger-name string   B   button-name string
//	i        int (no bound)            i8  uint8 (needs 'u' prefix)
//	i16/i32  signed N-bit int          u   unsigned-prefix for i8/i16/i32
//	c        keycode (1..65535)        b   boolean int (0 or 1)
//	x        axis-range int (0..ABS_MAX)
//	f        float                     a   action                r   range
//	.        any type                  ?   previous slot optional ("zero-or-one")
//	*        previous slot optional+repeating          (lo,hi)    int range bound
//	+        set previous int's minimum to 0 (and its maximum to ABS_MAX if it had none), or widen a button/axis-name string to accept DEFAULT/ALWAYS/SAME
//
// Ported from the schema compiler and check/fill/strip algorithms in the
// action engine's C parameter checker.
package paramcheck

import (
	"fmt"
	"math"
	"strconv"

	"github.com/galago-remap/scte/internal/constants"
	"github.com/galago-remap/scte/internal/param"
)

const absMax = 0x3f // placeholder axis-code ceiling, mirrors ABS_MAX's role as a range bound

// stringCheck identifies which string-validation rule a string slot applies.
type stringCheck int

const (
	checkNone stringCheck = iota
	checkButton
	checkAxis
	checkButtonPlus
	checkAxisPlus
)

func (c stringCheck) accepts(v string) bool {
	switch c {
	case checkButton:
		_, ok := constants.StringToButton(v)
		return ok
	case checkAxis:
		_, ok := constants.StringToPST(v)
		return ok
	case checkButtonPlus:
		return checkKeyword(v) || checkButton.accepts(v)
	case checkAxisPlus:
		return checkKeyword(v) || checkAxis.accepts(v)
	default:
		return true
	}
}

func checkKeyword(v string) bool { return v == "DEFAULT" || v == "ALWAYS" || v == "SAME" }

// slot describes one parameter-list position.
type slot struct {
	typ        param.Type
	optional   bool
	repeating  bool
	min, max   int64
	fmin, fmax float64
	str        stringCheck
}

func newSlot(t param.Type) *slot {
	return &slot{typ: t, min: math.MinInt64, max: math.MaxInt64}
}

// Checker is a compiled parameter-list schema for one action keyword.
type Checker struct {
	slots    []*slot
	defaults []param.Parameter
}

// New compiles a schema expression into a Checker. Panics on a malformed
// expression — schemas are compile-time constants written once per action
// kind, so a bad grammar string is a programmer error, exactly like the
// original's FATAL() calls during process init.
func New(expression string) *Checker {
	pc := &Checker{}
	unsignedInt := false
	runes := []rune(expression)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		switch c {
		case '?', '*':
			if len(pc.slots) < 1 {
				panic(fmt.Sprintf("unexpected %q in param checker spec %q", c, expression))
			}
			last := pc.slots[len(pc.slots)-1]
			if last.repeating || last.optional {
				panic("'*' and '?' cannot be used at once in param checker spec")
			}
			last.optional = true
			if c == '*' {
				last.repeating = true
			}
		case '(':
			if len(pc.slots) < 1 {
				panic(fmt.Sprintf("unexpected '(' in param checker spec %q", expression))
			}
			last := pc.slots[len(pc.slots)-1]
			if last.typ != param.TInt {
				panic("'(' after non-numeric in param checker spec")
			}
			i++
			start := i
			for ; i < len(runes); i++ {
				switch {
				case runes[i] == ',':
					lo, _ := strconv.ParseInt(string(runes[start:i]), 10, 64)
					last.min = lo
					start = i + 1
				case runes[i] == ')':
					hi, _ := strconv.ParseInt(string(runes[start:i]), 10, 64)
					last.max = hi
				case runes[i] < '0' || runes[i] > '9':
					panic(fmt.Sprintf("invalid char %q in param checker range spec", runes[i]))
				}
				if runes[i] == ')' {
					break
				}
			}
			if i >= len(runes) || runes[i] != ')' {
				panic("'(' without ')' in param checker spec")
			}
		case '+':
			if len(pc.slots) == 0 {
				panic("unexpected '+' in param checker spec")
			}
			last := pc.slots[len(pc.slots)-1]
			switch {
			case last.typ == param.TInt:
				last.min = 0
				if last.max == math.MaxInt64 {
					last.max = absMax
				}
			case last.typ == param.TFloat:
				last.fmin = 0
			case last.typ == param.TString && last.str == checkButton:
				last.str = checkButtonPlus
			case last.typ == param.TString && last.str == checkAxis:
				last.str = checkAxisPlus
			default:
				panic("unexpected '+' in param checker spec")
			}
		case '.':
			pc.slots = append(pc.slots, newSlot(param.TAny))
		case 's', 'A', 'B':
			s := newSlot(param.TString)
			switch c {
			case 'B':
				s.str = checkButton
			case 'A':
				s.str = checkAxis
			}
			pc.slots = append(pc.slots, s)
		case 'c':
			s := newSlot(param.TInt)
			s.min, s.max = 1, math.MaxUint16
			pc.slots = append(pc.slots, s)
		case 'b':
			s := newSlot(param.TInt)
			s.min, s.max = 0, 1
			pc.slots = append(pc.slots, s)
		case 'x':
			s := newSlot(param.TInt)
			s.min, s.max = 0, absMax
			pc.slots = append(pc.slots, s)
		case 'a':
			pc.slots = append(pc.slots, newSlot(param.TAction))
		case 'r':
			pc.slots = append(pc.slots, newSlot(param.TRange))
		case 'f':
			s := newSlot(param.TFloat)
			s.fmin, s.fmax = -math.MaxFloat32, math.MaxFloat32
			pc.slots = append(pc.slots, s)
		case 'i':
			s := newSlot(param.TInt)
			switch {
			case i+1 < len(runes) && runes[i+1] == '8':
				i++
				if !unsignedInt {
					panic("signed i8 is not supported in param checker spec")
				}
				s.min, s.max = 0, 0xFF
			case i+2 < len(runes) && runes[i+1] == '1' && runes[i+2] == '6':
				if unsignedInt {
					s.min, s.max = 0, math.MaxUint16
				} else {
					s.min, s.max = math.MinInt16, math.MaxInt16
				}
				i += 2
			case i+2 < len(runes) && runes[i+1] == '3' && runes[i+2] == '2':
				if unsignedInt {
					s.min, s.max = 0, math.MaxUint32
				} else {
					s.min, s.max = math.MinInt32, math.MaxInt32
				}
				i += 2
			case unsignedInt:
				panic("'u' has to be followed by 'i8', 'i16' or 'i32' in param checker spec")
			}
			unsignedInt = false
			pc.slots = append(pc.slots, s)
		case 'u':
			if i+1 >= len(runes) || runes[i+1] != 'i' {
				panic("'u' prefix must be followed by 'i' in param checker spec")
			}
			unsignedInt = true
		case ' ', '\t':
			// ignored
		default:
			panic(fmt.Sprintf("unexpected %q in param checker spec %q", c, expression))
		}
	}
	return pc
}
