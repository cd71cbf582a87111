package interpret

import (
	"strings"
	"testing"
)

func TestFormatMatchAnalysisDropsScoreLines(t *testing.T) {
	content := "Match Score: 85%\nThe resume aligns well with the posting."

	out := FormatMatchAnalysis(content)
	if strings.Contains(out, "Match Score") {
		t.Fatalf("expected score line dropped, got %q", out)
	}
	if !strings.Contains(out, "aligns well") {
		t.Fatalf("expected body text kept, got %q", out)
	}
}

func TestFormatMatchAnalysisSections(t *testing.T) {
	content := "Strengths:\n- Solid Go background\n- Production experience\n\nImprovements:\n- Add cloud certifications"

	out := FormatMatchAnalysis(content)
	if !strings.Contains(out, `<div class="strength-section"><h6 class="strength-header">Strengths:</h6>`) {
		t.Fatalf("expected strength section, got %q", out)
	}
	if !strings.Contains(out, `<div class="improvement-section"><h6 class="improvement-header">Improvements:</h6>`) {
		t.Fatalf("expected improvement section, got %q", out)
	}
	if strings.Count(out, "<li>") != 3 {
		t.Fatalf("expected 3 list items, got %q", out)
	}
	if strings.Count(out, "</div>") != 2 {
		t.Fatalf("expected both sections closed, got %q", out)
	}
	if strings.Count(out, `<ul class="improvement-list">`) != strings.Count(out, "</ul>") {
		t.Fatalf("unbalanced lists: %q", out)
	}
}

func TestFormatMatchAnalysisStripsMarkdownArtifacts(t *testing.T) {
	content := "### Summary\n**Great fit** overall\n---\nMore detail"

	out := FormatMatchAnalysis(content)
	for _, artifact := range []string{"#", "**", "---"} {
		if strings.Contains(out, artifact) {
			t.Fatalf("expected %q stripped, got %q", artifact, out)
		}
	}
}

func TestFormatMatchAnalysisHighlights(t *testing.T) {
	content := `Your resume covers 75% of the requirements but lacks "Kubernetes" experience.`

	out := FormatMatchAnalysis(content)
	if !strings.Contains(out, `<span class="badge">75%</span>`) {
		t.Fatalf("expected percent badge, got %q", out)
	}
	if !strings.Contains(out, `<span class="keyword-highlight">&#34;Kubernetes&#34;</span>`) {
		t.Fatalf("expected keyword highlight, got %q", out)
	}
}

func TestFormatMatchAnalysisEscapesHTML(t *testing.T) {
	out := FormatMatchAnalysis("Avoid <script>alert(1)</script> in postings")
	if strings.Contains(out, "<script>") {
		t.Fatalf("expected markup escaped, got %q", out)
	}
}

func TestFormatCoverLetter(t *testing.T) {
	out := FormatCoverLetter("Dear Team,\nI am **excited** to apply.")
	if out != "Dear Team,<br>I am excited to apply." {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestFormatCoverLetterEmpty(t *testing.T) {
	if out := FormatCoverLetter("   \n"); out != "" {
		t.Fatalf("expected empty output, got %q", out)
	}
}
