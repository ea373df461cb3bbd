package action

import "github.com/galago-remap/scte/internal/constants"

// noAction is the universal "do nothing" action. It legitimately implements
// every dispatch interface as an explicit no-op, so binding it anywhere
// never produces a missing-handler warning.
type noAction struct{}

// NoAction is the shared singleton returned wherever an action slot is left
// unbound.
var NoAction Action = noAction{}

func (noAction) Keyword() string             { return "None" }
func (noAction) Flags() Flags                { return 0 }
func (noAction) ToString() string            { return "None" }
func (noAction) Describe(DescContext) string { return "" }
func (noAction) Compress() Action            { return NoAction }

func (noAction) ButtonPress(Mapper)   {}
func (noAction) ButtonRelease(Mapper) {}
func (noAction) Axis(Mapper, int32, constants.PST)           {}
func (noAction) Whole(Mapper, int32, int32, constants.PST)   {}
func (noAction) Trigger(Mapper, int32, int32, constants.PST) {}
func (noAction) Gyro(Mapper, float64, float64, float64, float64, float64, float64, float64) {}
func (noAction) Change(Mapper, float64, float64, constants.PST) {}
