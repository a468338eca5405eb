package audio

import (
	"math"

	"github.com/gopxl/beep/v2/effects"
)

// MaxVolume is the upper bound of the user volume scale.
const MaxVolume = 100

// ClampVolume limits level to [0, MaxVolume].
func ClampVolume(level int) int {
	return min(max(level, 0), MaxVolume)
}

// levelToVolume converts a 0-100 level to beep's Volume value.
// With Base 2 the resulting amplitude gain is exactly level/100:
// 100 -> 0, 50 -> -1, 25 -> -2.
func levelToVolume(level int) float64 {
	if level >= MaxVolume {
		return 0
	}
	if level <= 0 {
		return -10
	}
	return math.Log2(float64(level) / MaxVolume)
}

// applyVolume must be called with the output locked.
func applyVolume(v *effects.Volume, level int) {
	v.Base = 2
	v.Volume = levelToVolume(level)
	v.Silent = level <= 0
}
