package scoringdomain

import "testing"

func intPtr(v int) *int { return &v }

func TestHoleResultNoScore(t *testing.T) {
	for _, ct := range []CompetitionType{CompetitionStroke, CompetitionStableford, CompetitionPar} {
		if got := HoleResult(ct, nil, 4, 1, 10); got != nil {
			t.Fatalf("%s: expected nil for missing score, got %d", ct, *got)
		}
		if got := HoleResult(ct, intPtr(0), 4, 1, 10); got != nil {
			t.Fatalf("%s: expected nil for zero score, got %d", ct, *got)
		}
	}
}

func TestHoleResultUnknownCompetition(t *testing.T) {
	if got := HoleResult(CompetitionType("Skins"), intPtr(4), 4, 1, 0); got != nil {
		t.Fatalf("expected nil for unknown competition, got %d", *got)
	}
}

func TestHoleResult(t *testing.T) {
	tests := []struct {
		name     string
		ct       CompetitionType
		score    int
		par      int
		si       int
		handicap float64
		want     int
	}{
		{"stableford birdie", CompetitionStableford, 3, 4, 18, 0, 3},
		{"stableford par", CompetitionStableford, 4, 4, 18, 0, 2},
		{"stableford bogey", CompetitionStableford, 5, 4, 18, 0, 1},
		{"stableford double", CompetitionStableford, 6, 4, 18, 0, 0},
		{"stableford triple", CompetitionStableford, 9, 4, 18, 0, 0},
		{"stableford eagle", CompetitionStableford, 3, 5, 18, 0, 4},
		{"stableford albatross", CompetitionStableford, 2, 5, 18, 0, 5},
		{"stableford hole in one on par 5", CompetitionStableford, 1, 5, 18, 0, 5},
		{"stableford net par with stroke", CompetitionStableford, 5, 4, 7, 7.8, 2},
		{"stableford no stroke at index 8", CompetitionStableford, 5, 4, 8, 7.8, 1},
		{"stableford two strokes", CompetitionStableford, 6, 4, 1, 27, 2},
		{"par lost", CompetitionPar, 5, 4, 18, 0, -1},
		{"par halved", CompetitionPar, 4, 4, 18, 0, 0},
		{"par won", CompetitionPar, 3, 4, 18, 0, 1},
		{"par won on net", CompetitionPar, 4, 4, 3, 10, 1},
		{"stroke gross", CompetitionStroke, 5, 4, 18, 0, 5},
		{"stroke net", CompetitionStroke, 5, 4, 1, 18, 4},
		{"stroke net with three strokes", CompetitionStroke, 7, 5, 2, 40, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HoleResult(tt.ct, intPtr(tt.score), tt.par, tt.si, tt.handicap)
			if got == nil {
				t.Fatalf("expected %d, got nil", tt.want)
			}
			if *got != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, *got)
			}
		})
	}
}

func TestHoleRecordResultDefaultsStrokeIndex(t *testing.T) {
	// Handicap 10 gives a stroke on index 10 but not 11.
	h := HoleRecord{HoleNumber: 1, Par: 4, Score: intPtr(5)}
	got := h.Result(CompetitionStableford, 10)
	if got == nil || *got != 2 {
		t.Fatalf("expected 2 points with default stroke index, got %v", got)
	}
}

func TestParseCompetitionType(t *testing.T) {
	for _, s := range []string{"Stroke", "Stableford", "Par"} {
		ct, err := ParseCompetitionType(s)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", s, err)
		}
		if string(ct) != s {
			t.Fatalf("expected %q, got %q", s, ct)
		}
	}

	if _, err := ParseCompetitionType("stableford"); err == nil {
		t.Fatalf("expected error for lowercase competition type")
	}
}
