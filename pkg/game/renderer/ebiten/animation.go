package ebiten

import (
	"math"
	"time"
)

// advanceJumpscare fades the capture picture in by one frame and reports
// whether the scene is over: fully opaque and held for jumpscareHold.
func (e *EbitenRenderer) advanceJumpscare(now time.Time) bool {
	if e.scare.alpha < 255 {
		e.scare.alpha = min(255, e.scare.alpha+jumpscareFadeStep)
		if e.scare.alpha == 255 {
			e.scare.opaqueAt = now.UnixMilli()
		}
		return false
	}
	return now.UnixMilli()-e.scare.opaqueAt >= jumpscareHold
}

// drainedPulse returns 0.0-1.0 on a slow sine so the drained overlay throbs
func drainedPulse(now time.Time) float64 {
	const pulsePeriod = 1500.0
	phase := float64(now.UnixMilli()%int64(pulsePeriod)) / pulsePeriod
	return (math.Sin(phase*2*math.Pi) + 1.0) / 2.0
}

// easeInOut provides smooth easing for console slide animation
func easeInOut(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return -1 + (4-2*t)*t
}
