package parser

import "github.com/galago-remap/scte/internal/action"

// Unparse renders a back into text ParseAction can read back into an
// equal tree. Every action kind already implements this via ToString;
// Unparse exists as the named counterpart to ParseAction so callers (the
// profile/menu loaders) don't need to know that detail.
func Unparse(a action.Action) string {
	return a.ToString()
}
