package interpret

import "testing"

func TestExtractScorePercent(t *testing.T) {
	score := ExtractScore("Overall this resume is an 87% match for the role.")
	if score == nil || *score != 87 {
		t.Fatalf("expected 87, got %v", score)
	}
}

func TestExtractScoreLabeledFraction(t *testing.T) {
	score := ExtractScore("MATCH SCORE: 42/100 based on the requirements.")
	if score == nil || *score != 42 {
		t.Fatalf("expected 42, got %v", score)
	}
}

func TestExtractScoreFractionScaled(t *testing.T) {
	score := ExtractScore("Match Score is 4/10 for this posting.")
	if score == nil || *score != 40 {
		t.Fatalf("expected 40, got %v", score)
	}
}

func TestExtractScorePercentWinsOverFraction(t *testing.T) {
	score := ExtractScore("Match Score: 42/100, which is roughly a 40% fit.")
	if score == nil || *score != 40 {
		t.Fatalf("expected percent to win with 40, got %v", score)
	}
}

func TestExtractScoreAbsent(t *testing.T) {
	if score := ExtractScore("No numeric rating appears in this text."); score != nil {
		t.Fatalf("expected nil, got %d", *score)
	}
}

func TestExtractScoreUnlabeledFractionIgnored(t *testing.T) {
	if score := ExtractScore("Ranked 3/10 among applicants."); score != nil {
		t.Fatalf("expected nil for unlabeled fraction, got %d", *score)
	}
}
