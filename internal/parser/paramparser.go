package parser

import (
	"strconv"
	"strings"

	"github.com/galago-remap/scte/internal/action"
	"github.com/galago-remap/scte/internal/constants"
	"github.com/galago-remap/scte/internal/param"
	"github.com/galago-remap/scte/internal/scerr"
)

// constantPrefixes are the namespace prefixes a profile author can write
// before a named constant (Keys.KEY_A, Axes.LX); the parser strips the
// prefix and resolves the bare name. The constant tables hold no REL_*
// names, so a Rels.-prefixed name does not resolve to an int.
var constantPrefixes = []string{"Keys.", "Rels.", "Axes."}

func stripConstantPrefix(token string) string {
	for _, prefix := range constantPrefixes {
		if strings.HasPrefix(token, prefix) {
			return token[len(prefix):]
		}
	}
	return token
}

// parseParameter reads exactly one Parameter off t: a named int constant, a
// bare action invocation, "None", an int or float literal, a quoted string,
// or an upper-case bareword (treated as a named string constant the way
// feedback()'s "LEFT"/"RIGHT"/"BOTH" position argument is written).
func parseParameter(t *tokens) (param.Parameter, error) {
	t.skipWhitespace()
	if !t.hasNext() {
		return nil, scerr.New(scerr.ParseError, "expected parameter at end of string")
	}
	token := t.next()
	bare := stripConstantPrefix(token)

	if c, ok := constants.GetIntConstant(bare); ok {
		return param.NewConstInt(bare, c), nil
	}

	if token == "None" {
		return param.None, nil
	}

	if action.Known(token) {
		a, err := parseAfterKeyword(t, token)
		if err != nil {
			return nil, err
		}
		return param.NewAction(a), nil
	}

	if i, err := strconv.ParseInt(token, 10, 64); err == nil {
		return param.NewInt(i), nil
	}

	if f, err := strconv.ParseFloat(token, 64); err == nil {
		return param.NewFloat(f), nil
	}

	if len(token) > 2 && (token[0] == '\'' || token[0] == '"') && token[len(token)-1] == token[0] {
		return param.NewString(unquote(token)), nil
	}

	if isUpperBareword(token) {
		return param.NewConstString(token), nil
	}

	return nil, scerr.New(scerr.ParseError, "unexpected '%s'", token)
}

func isUpperBareword(token string) bool {
	if token == "" {
		return false
	}
	for i := 0; i < len(token); i++ {
		c := token[i]
		upper := c >= 'A' && c <= 'Z'
		digitOrUnderscore := c == '_' || (c >= '0' && c <= '9')
		if !upper && !digitOrUnderscore {
			return false
		}
	}
	return token[0] >= 'A' && token[0] <= 'Z'
}

// unquote strips the surrounding quote characters and resolves backslash
// escapes, mirroring the escaping test_param_parser_string exercises.
func unquote(token string) string {
	inner := token[1 : len(token)-1]
	var b strings.Builder
	b.Grow(len(inner))
	for i := 0; i < len(inner); i++ {
		if inner[i] == '\\' && i+1 < len(inner) {
			i++
			switch inner[i] {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case 'r':
				b.WriteByte('\r')
			default:
				b.WriteByte(inner[i])
			}
			continue
		}
		b.WriteByte(inner[i])
	}
	return b.String()
}

// parseParameterList reads the optional "(" param, param, ... ")" suffix
// after a keyword. A keyword with no "(" at all takes zero parameters.
func parseParameterList(t *tokens) ([]param.Parameter, error) {
	var params []param.Parameter
	t.skipWhitespace()
	if t.peekChar() != '(' {
		return params, nil
	}
	t.next() // consume '('
	for {
		t.skipWhitespace()
		if t.peekChar() == ')' {
			break
		}
		p, err := parseParameter(t)
		if err != nil {
			return nil, err
		}
		params = append(params, p)

		t.skipWhitespace()
		switch t.peekChar() {
		case 0:
			return nil, scerr.New(scerr.ParseError, "expected ')'")
		case ',':
			t.next()
		case ')':
			// loop exits above
		default:
			return nil, scerr.New(scerr.ParseError, "unexpected '%c' after parameter", t.peekChar())
		}
	}
	t.next() // consume ')'
	return params, nil
}
