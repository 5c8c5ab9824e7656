package schema

import "math"

// PercentOf converts earned/possible points into a rounded integer percent.
// A zero or negative possible resolves to 0 rather than NaN; degenerate
// inputs degrade, they never raise.
func PercentOf(raw, possible float64) int {
	if possible <= 0 {
		return 0
	}
	return int(math.Round(raw / possible * 100))
}

// LikertValue resolves a raw numeric answer to its effective value on the
// 1-5 scale, applying the reverse flag and clamping out-of-range input to
// the scale bounds.
func LikertValue(raw float64, reverse bool) float64 {
	v := math.Min(math.Max(raw, LikertMin), LikertMax)
	if reverse {
		v = LikertMin + LikertMax - v
	}
	return v
}
