package scoringdomain

// RoundTotals summarises a round. Out covers holes 1-9, In covers holes 10-18.
type RoundTotals struct {
	TotalScore  int `json:"total_score"`
	TotalPoints int `json:"total_points"`
	OutScore    int `json:"out_score"`
	InScore     int `json:"in_score"`
	OutPoints   int `json:"out_points"`
	InPoints    int `json:"in_points"`
}

// AggregateRound sums gross scores and hole results across the played holes.
// The hole number, not the slice position, picks the out or in bucket.
func AggregateRound(holes []HoleRecord, ct CompetitionType, playerHandicap float64) RoundTotals {
	var t RoundTotals

	for _, h := range holes {
		if !h.Played() {
			continue
		}

		points := 0
		if r := h.Result(ct, playerHandicap); r != nil {
			points = *r
		}

		t.TotalScore += *h.Score
		t.TotalPoints += points
		if h.FrontNine() {
			t.OutScore += *h.Score
			t.OutPoints += points
		} else {
			t.InScore += *h.Score
			t.InPoints += points
		}
	}

	return t
}
