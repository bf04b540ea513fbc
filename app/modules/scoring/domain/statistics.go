package scoringdomain

import "math"

// Statistics describes how a round was played.
type Statistics struct {
	FairwaysHit       int `json:"fairways_hit"`
	FairwaysAttempted int `json:"fairways_attempted"`
	FairwayPercentage int `json:"fairway_percentage"`

	GIRsHit       int `json:"girs_hit"`
	GIRsAttempted int `json:"girs_attempted"`
	GIRPercentage int `json:"gir_percentage"`

	UpDownsSuccessful int `json:"up_downs_successful"`
	UpDownsAttempted  int `json:"up_downs_attempted"`
	UpDownPercentage  int `json:"up_down_percentage"`

	TotalPutts   int     `json:"total_putts"`
	AveragePutts float64 `json:"average_putts"`

	BirdiesOrBetter int `json:"birdies_or_better"`
	Pars            int `json:"pars"`
	Bogeys          int `json:"bogeys"`
	DoubleBogeyPlus int `json:"double_bogey_plus"`
}

// ComputeStatistics derives play statistics from the played holes.
// Unplayed holes are skipped entirely.
func ComputeStatistics(holes []HoleRecord) Statistics {
	var s Statistics
	holesWithPutts := 0

	for _, h := range holes {
		if !h.Played() {
			continue
		}

		if h.Par >= 4 && h.Fairway != "" && h.Fairway != FairwayNA {
			s.FairwaysAttempted++
			if h.Fairway == FairwayHit {
				s.FairwaysHit++
			}
		}

		if h.GIR != nil {
			s.GIRsAttempted++
			if *h.GIR {
				s.GIRsHit++
			}
		}

		if h.UpDown != "" && h.UpDown != UpDownNA {
			s.UpDownsAttempted++
			if h.UpDown == UpDownYes || h.UpDown == UpDownChipIn {
				s.UpDownsSuccessful++
			}
		}

		// a recorded 0 (chip-in) still counts towards the average
		if h.TotalPutts != nil {
			s.TotalPutts += *h.TotalPutts
			holesWithPutts++
		}

		switch toPar := *h.Score - h.Par; {
		case toPar <= -1:
			s.BirdiesOrBetter++
		case toPar == 0:
			s.Pars++
		case toPar == 1:
			s.Bogeys++
		default:
			s.DoubleBogeyPlus++
		}
	}

	s.FairwayPercentage = percentage(s.FairwaysHit, s.FairwaysAttempted)
	s.GIRPercentage = percentage(s.GIRsHit, s.GIRsAttempted)
	s.UpDownPercentage = percentage(s.UpDownsSuccessful, s.UpDownsAttempted)
	if holesWithPutts > 0 {
		s.AveragePutts = RoundTenth(float64(s.TotalPutts) / float64(holesWithPutts))
	}

	return s
}

func percentage(hit, attempted int) int {
	if attempted == 0 {
		return 0
	}
	return int(math.Round(float64(hit) / float64(attempted) * 100))
}

// RoundTenth rounds v to one decimal place.
func RoundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
