// Package profile loads a Profile: a JSON object binding every physical
// input (button, pad, stick, trigger, gyro) to a compressed action tree,
// the per-device configuration an engine instance runs against.
package profile

import (
	"os"

	"github.com/buger/jsonparser"
	"golang.org/x/sync/errgroup"

	"github.com/galago-remap/scte/internal/action"
	"github.com/galago-remap/scte/internal/constants"
	"github.com/galago-remap/scte/internal/parser"
	"github.com/galago-remap/scte/internal/scerr"
)

// Profile is a fully parsed and compressed set of input-slot bindings. A
// slot absent from the source JSON is simply absent from these maps —
// dispatch against a missing slot is the caller's concern, not this
// package's.
type Profile struct {
	Buttons map[constants.Keycode]action.Action
	Pads    map[constants.PST]action.Action
}

// Load reads and parses a profile file. On any per-slot parse error, the
// returned Profile is nil and any profile the caller already had loaded is
// left untouched (the caller simply doesn't assign the return value).
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return LoadBytes(data)
}

// LoadBytes parses profile JSON already read into memory.
func LoadBytes(data []byte) (*Profile, error) {
	type entry struct {
		slot   string
		text   string
		button constants.Keycode
		isBtn  bool
		pst    constants.PST
		isPST  bool
	}
	var entries []entry

	visitErr := jsonparser.ObjectEach(data, func(key, value []byte, dataType jsonparser.ValueType, offset int) error {
		if dataType != jsonparser.String {
			return scerr.New(scerr.InvalidType, "profile slot %q: expected a string action expression", string(key))
		}
		e := entry{slot: string(key), text: string(value)}
		if btn, ok := constants.StringToButton(e.slot); ok {
			e.button, e.isBtn = btn, true
		} else if pst, ok := constants.StringToPST(e.slot); ok {
			e.pst, e.isPST = pst, true
		} else {
			return scerr.New(scerr.UnknownKeyword, "profile: unknown input slot %q", e.slot)
		}
		entries = append(entries, e)
		return nil
	})
	if visitErr != nil {
		return nil, visitErr
	}

	parsed := make([]action.Action, len(entries))
	var g errgroup.Group
	for i, e := range entries {
		i, e := i, e
		g.Go(func() error {
			a, err := parser.ParseAction(e.text)
			if err != nil {
				return scerr.New(scerr.ParseError, "profile slot %q: %s", e.slot, err.Error())
			}
			parsed[i] = a.Compress()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	p := &Profile{
		Buttons: make(map[constants.Keycode]action.Action),
		Pads:    make(map[constants.PST]action.Action),
	}
	for i, e := range entries {
		switch {
		case e.isBtn:
			p.Buttons[e.button] = parsed[i]
		case e.isPST:
			p.Pads[e.pst] = parsed[i]
		}
	}
	return p, nil
}
