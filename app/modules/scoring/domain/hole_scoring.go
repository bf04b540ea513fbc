package scoringdomain

// HoleResult scores a single hole.
//
// A nil or zero score yields nil, as does an unsupported competition type.
// Stroke play returns the net score; Stableford returns points; Par returns
// +1, 0 or -1 for a won, halved or lost hole.
func HoleResult(ct CompetitionType, score *int, par, strokeIndex int, playerHandicap float64) *int {
	if score == nil || *score == 0 {
		return nil
	}

	net := *score - HandicapStrokes(playerHandicap, strokeIndex)
	toPar := net - par

	var result int
	switch ct {
	case CompetitionStroke:
		result = net
	case CompetitionStableford:
		result = stablefordPoints(toPar)
	case CompetitionPar:
		result = parResult(toPar)
	default:
		return nil
	}
	return &result
}

func stablefordPoints(toPar int) int {
	switch {
	case toPar <= -3:
		return 5
	case toPar == -2:
		return 4
	case toPar == -1:
		return 3
	case toPar == 0:
		return 2
	case toPar == 1:
		return 1
	default:
		return 0
	}
}

func parResult(toPar int) int {
	switch {
	case toPar < 0:
		return 1
	case toPar == 0:
		return 0
	default:
		return -1
	}
}
