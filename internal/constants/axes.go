package constants

// Axis identifies an analog input in the evdev ABS_*/REL_* numbering.
type Axis int

const (
	AxisLX Axis = iota // ABS_X
	AxisLY             // ABS_Y
	AxisLTrigger       // ABS_Z
	AxisRX             // ABS_RX
	AxisRY             // ABS_RY
	AxisRTrigger       // ABS_RZ
	axisThrottle
	axisRudder
	AxisWheel  // REL_WHEEL
	AxisHWheel // REL_HWHEEL
	axisBrake
	AxisRelX // REL_X, mouse movement
	AxisRelY // REL_Y, mouse movement
	// AxisRelBoth is mouse's default axis selection: move both X and Y
	// instead of being pinned to one direction or to a wheel.
	AxisRelBoth
	_reserved3
	_reserved4
	AxisHat0X // ABS_HAT0X (dpad)
	AxisHat0Y // ABS_HAT0Y (dpad)

	// AxisNone marks a gyro/axis slot as unbound — "don't drive any axis
	// from this input".
	AxisNone Axis = -1
)

var axisNames = [][3]string{
	AxisLX:       {"LStick", "Left", "Right"},
	AxisLY:       {"LStick", "Up", "Down"},
	AxisLTrigger: {"Left Trigger", "Press", "Press"},
	AxisRX:       {"RStick", "Left", "Right"},
	AxisRY:       {"RStick", "Up", "Down"},
	AxisRTrigger: {"Right Trigger", "Press", "Press"},
	AxisWheel:    {"Mouse Wheel", "Up", "Down"},
	AxisHWheel:   {"Horizontal Wheel", "Left", "Right"},
	AxisHat0X:    {"DPAD", "Left", "Right"},
	AxisHat0Y:    {"DPAD", "Up", "Down"},
}

// DescribeAxis formats an axis the way §4.2's constant tables promise:
// direction 0 names the axis alone, negative/positive picks the low/high
// side name.
func DescribeAxis(a Axis, direction int) string {
	if int(a) < 0 || int(a) >= len(axisNames) || axisNames[a][0] == "" {
		return hexAxisFallback(a)
	}
	if direction == 0 {
		return axisNames[a][0]
	}
	lr := 2
	if direction < 0 {
		lr = 1
	}
	return axisNames[a][0] + " " + axisNames[a][lr]
}

func hexAxisFallback(a Axis) string {
	const digits = "0123456789abcdef"
	v := uint(a)
	if v == 0 {
		return "Axis 0x0"
	}
	buf := make([]byte, 0, 8)
	for v > 0 {
		buf = append([]byte{digits[v&0xf]}, buf...)
		v >>= 4
	}
	return "Axis 0x" + string(buf)
}

var axisNameToCode = map[string]Axis{
	"Axes.LX": AxisLX, "Axes.LY": AxisLY, "Axes.RX": AxisRX, "Axes.RY": AxisRY,
	"Axes.LTrigger": AxisLTrigger, "Axes.RTrigger": AxisRTrigger,
}
