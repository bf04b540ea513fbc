package scoringdomain

// Tiger5Rule names one of the five discipline rules.
type Tiger5Rule string

const (
	RuleBogeyOnPar5  Tiger5Rule = "bogey_on_par5"
	RuleDoubleBogey  Tiger5Rule = "double_bogey"
	RuleThreePutt    Tiger5Rule = "three_putt"
	RuleShortMiss    Tiger5Rule = "short_miss"
	RuleMissedUpDown Tiger5Rule = "missed_up_down"
)

// Tiger5Rules lists the rules in evaluation order.
var Tiger5Rules = []Tiger5Rule{
	RuleBogeyOnPar5,
	RuleDoubleBogey,
	RuleThreePutt,
	RuleShortMiss,
	RuleMissedUpDown,
}

// Tiger5Hole holds the rule flags for one hole.
type Tiger5Hole struct {
	HoleNumber   int  `json:"hole_number"`
	BogeyOnPar5  bool `json:"bogey_on_par5"`
	DoubleBogey  bool `json:"double_bogey"`
	ThreePutt    bool `json:"three_putt"`
	ShortMiss    bool `json:"short_miss"`
	MissedUpDown bool `json:"missed_up_down"`
}

// Violated returns the rules broken on the hole, in rule order.
func (h Tiger5Hole) Violated() []Tiger5Rule {
	flags := []bool{h.BogeyOnPar5, h.DoubleBogey, h.ThreePutt, h.ShortMiss, h.MissedUpDown}
	var out []Tiger5Rule
	for i, f := range flags {
		if f {
			out = append(out, Tiger5Rules[i])
		}
	}
	return out
}

// Tiger5Totals counts violations per rule across a round.
type Tiger5Totals struct {
	BogeyOnPar5  int     `json:"bogey_on_par5"`
	DoubleBogey  int     `json:"double_bogey"`
	ThreePutt    int     `json:"three_putt"`
	ShortMiss    int     `json:"short_miss"`
	MissedUpDown int     `json:"missed_up_down"`
	Total        int     `json:"total"`
	MaxPossible  int     `json:"max_possible"`
	Percentage   float64 `json:"percentage"`
	Grade        string  `json:"grade"`
	Color        string  `json:"color"`
}

// Tiger5Result is the discipline report for a round.
type Tiger5Result struct {
	ByHole []Tiger5Hole `json:"by_hole"`
	Totals Tiger5Totals `json:"totals"`
}

const (
	GradeExcellent = "Excellent"
	GradeGood      = "Good"
	GradeNeedsWork = "Needs Work"
)

// EvaluateTiger5Hole applies the five rules to a single hole.
// Rules are independent: a double bogey on a par 5 breaks both of the first two.
func EvaluateTiger5Hole(h HoleRecord) Tiger5Hole {
	played := h.Played()
	return Tiger5Hole{
		HoleNumber:   h.HoleNumber,
		BogeyOnPar5:  h.Par == 5 && played && *h.Score >= h.Par+1,
		DoubleBogey:  played && h.Par != 0 && *h.Score >= h.Par+2,
		ThreePutt:    h.TotalPutts != nil && *h.TotalPutts >= 3,
		ShortMiss:    h.Tiger5ShortMiss,
		MissedUpDown: h.Tiger5MissedUpDown,
	}
}

// Tiger5 evaluates every hole, played or not, and grades the round.
func Tiger5(holes []HoleRecord) Tiger5Result {
	res := Tiger5Result{ByHole: make([]Tiger5Hole, 0, len(holes))}
	t := &res.Totals

	for _, h := range holes {
		v := EvaluateTiger5Hole(h)
		res.ByHole = append(res.ByHole, v)

		t.BogeyOnPar5 += boolToInt(v.BogeyOnPar5)
		t.DoubleBogey += boolToInt(v.DoubleBogey)
		t.ThreePutt += boolToInt(v.ThreePutt)
		t.ShortMiss += boolToInt(v.ShortMiss)
		t.MissedUpDown += boolToInt(v.MissedUpDown)
	}

	t.Total = t.BogeyOnPar5 + t.DoubleBogey + t.ThreePutt + t.ShortMiss + t.MissedUpDown
	t.MaxPossible = len(holes) * 5
	if t.MaxPossible > 0 {
		t.Percentage = RoundTenth(float64(t.Total) / float64(t.MaxPossible) * 100)
	}
	t.Grade, t.Color = Tiger5Grade(t.Total)

	return res
}

// Tiger5Grade maps a violation total to a grade and display colour.
func Tiger5Grade(total int) (grade, color string) {
	switch {
	case total <= 2:
		return GradeExcellent, "green"
	case total <= 5:
		return GradeGood, "yellow"
	default:
		return GradeNeedsWork, "red"
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
