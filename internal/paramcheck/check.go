package paramcheck

import (
	"github.com/galago-remap/scte/internal/param"
	"github.com/galago-remap/scte/internal/scerr"
)

// isOKFor reports whether p matches a slot's type and, for numeric/string
// slots, its range/value constraint.
func isOKFor(p param.Parameter, s *slot) bool {
	if p.Type()&s.typ == 0 {
		return false
	}
	switch s.typ {
	case param.TInt:
		v := p.AsInt()
		return v >= s.min && v <= s.max
	case param.TFloat:
		v := p.AsFloat()
		return v >= s.fmin && v <= s.fmax
	case param.TString:
		return s.str.accepts(p.AsString())
	default:
		return true
	}
}

// Check validates params against the schema, returning a *scerr.Error
// describing the first mismatch, or nil if params is acceptable.
func (pc *Checker) Check(keyword string, params []param.Parameter) error {
	p, d := 0, 0
	index := 0
	for {
		if d >= len(pc.slots) {
			if p < len(params) {
				return scerr.New(scerr.InvalidArity, "invalid number of parameters for '%s'", keyword)
			}
			return nil
		}
		if p >= len(params) {
			if pc.slots[d].optional {
				index++
				d++
				continue
			}
			return scerr.New(scerr.InvalidArity, "invalid number of parameters for '%s'", keyword)
		}

		var mismatch error
		if params[p].Type()&pc.slots[d].typ == 0 {
			mismatch = scerr.InvalidParameterType(keyword, params[p].ToString(), index+1)
		} else if !isOKFor(params[p], pc.slots[d]) {
			if pc.slots[d].typ == param.TString {
				return scerr.InvalidParameterValue(keyword, index+1, params[p].ToString())
			}
			return scerr.ParameterOutOfRange(keyword, index+1, params[p].AsInt(), pc.slots[d].min, pc.slots[d].max)
		}

		if mismatch != nil && !pc.slots[d].optional {
			return mismatch
		} else if mismatch != nil {
			canSkip := false
			for next := d; next < len(pc.slots); next++ {
				canSkip = isOKFor(params[p], pc.slots[next])
				if canSkip || !pc.slots[next].optional {
					break
				}
			}
			if !canSkip {
				return mismatch
			}
		} else {
			if pc.slots[d].repeating {
				for p+1 < len(params) && isOKFor(params[p+1], pc.slots[d]) {
					p++
				}
			}
			index++
			p++
		}
		d++
	}
}

// SetDefaults records the default values used for every optional,
// non-repeating slot, in schema order. Pass nil for an action slot to mean
// "no action" (resolved by the caller to its NoAction singleton).
func (pc *Checker) SetDefaults(values ...param.Parameter) {
	pc.defaults = values
}

// FillDefaults returns a new parameter list the same length as the schema,
// filling any optional slot the caller omitted with its registered default.
func (pc *Checker) FillDefaults(src []param.Parameter) []param.Parameter {
	out := make([]param.Parameter, 0, len(pc.slots))
	s, e := 0, 0
	for d := 0; d < len(pc.slots); d++ {
		switch {
		case pc.slots[d].repeating:
			for s < len(src) && isOKFor(src[s], pc.slots[d]) {
				out = append(out, src[s])
				s++
			}
		case pc.slots[d].optional:
			if s < len(src) && isOKFor(src[s], pc.slots[d]) {
				out = append(out, src[s])
				s++
			} else {
				out = append(out, pc.defaults[e])
			}
			e++
		default:
			out = append(out, src[s])
			s++
		}
	}
	return out
}

func paramsEqual(p1, p2 param.Parameter) bool {
	switch {
	case p1.Type()&param.TAction != 0:
		return p2.Type()&param.TAction != 0 && p1.AsAction() == p2.AsAction()
	case p1.Type()&param.TRange != 0:
		return false
	case p1.Type()&param.TNone == param.TNone && p1.Type() == param.TNone:
		return p2.Type() == param.TNone
	case p1.Type()&param.TInt != 0 && p1.Type()&param.TFloat == 0:
		return p2.Type()&param.TInt != 0 && p1.AsInt() == p2.AsInt()
	case p1.Type()&param.TFloat == param.TFloat:
		return p2.Type()&param.TFloat != 0 && p1.AsFloat() == p2.AsFloat()
	case p1.Type()&param.TString != 0:
		return p2.Type()&param.TString != 0 && p1.AsString() == p2.AsString()
	default:
		return false
	}
}

// canBeStripped reports whether the optional slot at (s,d) can be dropped
// from the tail of the parameter list without making it ambiguous: dropping
// is safe only if every optional slot after it is either absent or also at
// its default, all the way to the end of the list.
func (pc *Checker) canBeStripped(params []param.Parameter, s, e, d int) bool {
	if s >= len(params)-1 {
		return true
	}
	if params[s].Type()&params[s+1].Type() == 0 {
		return true
	}
	if d < len(pc.slots)-1 && pc.slots[d+1].optional {
		if paramsEqual(pc.defaults[e+1], params[s+1]) {
			return pc.canBeStripped(params, s+1, e+1, d+1)
		}
	}
	return false
}

// StripDefaults returns params with any trailing run of default-valued
// optional parameters removed, producing the minimal text an unparse should
// emit.
func (pc *Checker) StripDefaults(params []param.Parameter) []param.Parameter {
	if params == nil {
		return nil
	}
	keep := make([]bool, len(params))
	for i := range keep {
		keep[i] = true
	}
	s, e := 0, 0
	for d := 0; d < len(pc.slots); d++ {
		switch {
		case pc.slots[d].repeating:
			for s < len(params) && isOKFor(params[s], pc.slots[d]) {
				s++
			}
		case pc.slots[d].optional:
			if s < len(params) && paramsEqual(pc.defaults[e], params[s]) && pc.canBeStripped(params, s, e, d) {
				keep[s] = false
			}
			e++
			s++
		default:
			s++
		}
	}
	out := make([]param.Parameter, 0, len(params))
	for i, k := range keep {
		if k {
			out = append(out, params[i])
		}
	}
	return out
}
