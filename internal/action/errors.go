package action

import "github.com/galago-remap/scte/internal/scerr"

func unknownKeyword(keyword string) error {
	return scerr.New(scerr.UnknownKeyword, "unknown action keyword '%s'", keyword)
}

func invalidParameterType(keyword, parameter string, n int) error {
	return scerr.InvalidParameterType(keyword, parameter, n)
}

func invalidArity(keyword string) error {
	return scerr.New(scerr.InvalidArity, "expected action after last parameter of '%s'", keyword)
}
