package action

import (
	"github.com/galago-remap/scte/internal/param"
)

// actionFromParam unwraps an action-typed Parameter into the Action it
// carries, defaulting to NoAction for a None parameter — the Go analogue of
// scc_parameter_as_action's NULL-safe behavior.
func actionFromParam(p param.Parameter) Action {
	if p == nil || p.Type() == param.TNone {
		return NoAction
	}
	a, ok := p.AsAction().(Action)
	if !ok {
		return NoAction
	}
	return a
}

// actionOrNilFromParam is actionFromParam's counterpart for fields where
// "unset" (a nil Action, not NoAction) is itself meaningful state — e.g.
// hold/doubleclick's optional default_action, which changes which state
// transitions are even possible.
func actionOrNilFromParam(p param.Parameter) Action {
	if p == nil || p.Type() == param.TNone {
		return nil
	}
	a, ok := p.AsAction().(Action)
	if !ok {
		return nil
	}
	return a
}

// invalidParamType builds the "cannot take X as Nth parameter" error a
// constructor returns when a structurally-valid parameter fails a
// semantic check the schema grammar can't express (e.g. an unknown mode
// name string).
func invalidParamType(keyword string, p param.Parameter, n int) error {
	return invalidParameterType(keyword, p.ToString(), n)
}
