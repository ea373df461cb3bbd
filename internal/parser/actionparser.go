package parser

import (
	"github.com/galago-remap/scte/internal/action"
	"github.com/galago-remap/scte/internal/scerr"
)

// ParseAction parses a single action expression, e.g.
// "dpad(button(KEY_A), button(KEY_D))" or "button(1); button(2)", and
// returns the resulting Action tree uncompressed (callers compress once
// the whole binding tree for a physical input is assembled, since
// compression can fold across ';'/"and" boundaries the individual
// sub-expressions don't see).
func ParseAction(source string) (action.Action, error) {
	t := tokenize(source)
	return parseAction(t)
}

func parseAction(t *tokens) (action.Action, error) {
	t.skipWhitespace()
	if !t.hasNext() {
		return nil, scerr.New(scerr.ParseError, "syntax error")
	}
	keyword := t.next()
	if !action.Known(keyword) {
		return nil, scerr.New(scerr.ParseError, "unexpected '%s'", keyword)
	}
	return parseAfterKeyword(t, keyword)
}

// parseAfterKeyword reads keyword's parameter list and then looks for a
// trailing combinator: ';' sequences into a macro, "and" combines into a
// simultaneous multiaction, anything else after a complete action is a
// syntax error.
func parseAfterKeyword(t *tokens, keyword string) (action.Action, error) {
	params, err := parseParameterList(t)
	if err != nil {
		return nil, err
	}
	a, err := action.New(keyword, params)
	if err != nil {
		return nil, err
	}

	if !t.hasNext() {
		return a, nil
	}
	t.skipWhitespace()
	if !t.hasNext() {
		return a, nil
	}

	switch c := t.peekChar(); c {
	case ')', ',', 0:
		return a, nil
	case ';':
		t.next() // consume ';'
		t.skipWhitespace()
		a2, err := parseAction(t)
		if err != nil {
			return nil, err
		}
		return action.CombineMacro(a, a2), nil
	}

	after := t.next()
	if after == "and" {
		t.skipWhitespace()
		a2, err := parseAction(t)
		if err != nil {
			return nil, err
		}
		return action.NewMultiaction(a, a2), nil
	}
	return nil, scerr.New(scerr.ParseError, "unexpected '%s' after action", after)
}
