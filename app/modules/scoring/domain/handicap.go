package scoringdomain

import "math"

// HandicapStrokes returns the number of strokes a player receives on a hole.
//
// The raw handicap is compared against the stroke index, so a 7.8 handicap
// receives a stroke on indexes 1 through 7 only. Stroke indexes outside 1..18
// are not rejected.
func HandicapStrokes(playerHandicap float64, strokeIndex int) int {
	si := float64(strokeIndex)

	switch {
	case playerHandicap <= 0:
		return 0
	case playerHandicap <= 18:
		if si <= playerHandicap {
			return 1
		}
		return 0
	case playerHandicap <= 36:
		if si <= playerHandicap-18 {
			return 2
		}
		return 1
	default:
		base := int(math.Floor(playerHandicap / 18))
		if si <= math.Mod(playerHandicap, 18) {
			return base + 1
		}
		return base
	}
}
