package interpret

import (
	"strings"
	"testing"
)

func TestSplitSectionsAtMarker(t *testing.T) {
	raw := "Match Score: 80%\nGood alignment overall.\n\nCOVER LETTER:\nDear Hiring Manager,\nI am excited to apply."

	analysis, letter := SplitSections(raw)
	if !strings.Contains(analysis, "Good alignment") {
		t.Fatalf("expected analysis text, got %q", analysis)
	}
	if strings.Contains(strings.ToLower(analysis), "cover letter") {
		t.Fatalf("analysis should not contain the marker: %q", analysis)
	}
	if !strings.HasPrefix(letter, "Dear Hiring Manager") {
		t.Fatalf("expected marker stripped from letter, got %q", letter)
	}
}

func TestSplitSectionsMarkerWithEmphasis(t *testing.T) {
	raw := "Analysis body here.\n\n**Cover Letter**: Dear Team, I would love to join."

	_, letter := SplitSections(raw)
	if !strings.HasPrefix(letter, "Dear Team") {
		t.Fatalf("expected emphasis and colon stripped, got %q", letter)
	}
}

func TestSplitSectionsNoMarker(t *testing.T) {
	analysis, letter := SplitSections("Only analysis text, nothing else.")
	if letter != "" {
		t.Fatalf("expected empty letter, got %q", letter)
	}
	if analysis != "Only analysis text, nothing else." {
		t.Fatalf("unexpected analysis %q", analysis)
	}
}
