package action

import "math"

// wholeHaptic accumulates relative movement and fires a haptic pulse once
// the accumulated distance crosses the configured haptic's Frequency
// threshold, then resets. Shared by every action that reports continuous
// "rolling" movement over a pad (ball, mouse-over-pad, xy).
type wholeHaptic struct {
	data HapticData
	ax   float64
	ay   float64
}

func (w *wholeHaptic) setHaptic(data HapticData) { w.data = data }

func (w *wholeHaptic) change(m Mapper, dx, dy float64) {
	if !w.data.Enabled {
		return
	}
	w.ax += dx
	w.ay += dy
	distance := math.Hypot(w.ax, w.ay)
	if distance > float64(w.data.Frequency) {
		w.ax, w.ay = 0, 0
		m.HapticEffect(w.data)
	}
}
