package extract

import (
	"strings"
	"testing"
)

func TestValidateResumeLikeText(t *testing.T) {
	text := "Jane Doe. Experience: software engineer. Education: BSc. " +
		"Skills include Go and SQL. Work history spans five years across two companies."

	report := Validate(text)
	if !report.IsValid {
		t.Fatalf("expected valid, got reason %q", report.Reason)
	}
	if report.Reason != "Looks like a resume" {
		t.Fatalf("unexpected reason %q", report.Reason)
	}
	if report.Confidence <= 0 || report.Confidence > 1 {
		t.Fatalf("confidence out of range: %v", report.Confidence)
	}
	if len(report.MatchedKeywords) == 0 {
		t.Fatalf("expected matched keywords")
	}
}

func TestValidateTooShort(t *testing.T) {
	report := Validate("short text")
	if report.IsValid {
		t.Fatalf("expected invalid")
	}
	if report.Reason != "Text too short" {
		t.Fatalf("unexpected reason %q", report.Reason)
	}
}

func TestValidateNotEnoughWords(t *testing.T) {
	// Over the length floor but ten words or fewer.
	text := "aaaaaaaaaa bbbbbbbbbb cccccccccc dddddddddd eeeeeeeeee ffffffffff"
	report := Validate(text)
	if report.IsValid {
		t.Fatalf("expected invalid, got confidence %v", report.Confidence)
	}
	if report.Reason != "Not enough words" {
		t.Fatalf("unexpected reason %q", report.Reason)
	}
}

func TestValidateNoKeywordsStillDiagnostic(t *testing.T) {
	// Word count alone decides validity; the vocabulary only drives confidence.
	text := strings.Repeat("lorem ipsum dolor sit amet ", 10)
	report := Validate(text)
	if !report.IsValid {
		t.Fatalf("expected valid, got reason %q", report.Reason)
	}
	if report.Confidence != 0 {
		t.Fatalf("expected zero confidence, got %v", report.Confidence)
	}
	if len(report.MatchedKeywords) != 0 {
		t.Fatalf("expected no matched keywords, got %v", report.MatchedKeywords)
	}
}
