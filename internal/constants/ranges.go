package constants

// Analog range ceilings shared by every modifier that rescales a stick/pad
// or trigger reading (deadzone, ball, sensitivity...).
const (
	StickPadMax = 32767
	TriggerMax  = 255
)
