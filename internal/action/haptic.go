package action

import "github.com/galago-remap/scte/internal/param"

// hapticProperty renders a HapticData as the tuple property GUI editors read
// back: (position, amplitude, period), mirroring MAKE_HAPTIC_PROPERTY's
// dvec-style tuple expansion for every other GUI-facing struct property.
func hapticProperty(h HapticData) param.Parameter {
	return param.NewTuple([]param.Parameter{
		param.NewInt(int64(h.Position)),
		param.NewInt(int64(h.Amplitude)),
		param.NewInt(int64(h.Period)),
	})
}
