// Package interpret turns free-form generated analysis text into the
// structured result the API serves: numeric score, categorized
// improvements, strengths, and display-safe HTML for the match analysis
// and cover letter.
package interpret

import (
	"regexp"
	"strings"
)

// StructuredHint carries fields recovered from a structured generation
// response. When present it takes precedence over free-form parsing.
type StructuredHint struct {
	Score        string
	Reasoning    string
	Strengths    []string
	Improvements []string
	CoverLetter  string
}

// Output is the interpreted analysis in the shape handlers serve.
type Output struct {
	RawText           string        `json:"-"`
	MatchScore        *int          `json:"matchScore"`
	MatchAnalysisHTML string        `json:"matchAnalysisHtml"`
	Strengths         []string      `json:"strengths"`
	Improvements      []Improvement `json:"improvements"`
	CoverLetterHTML   string        `json:"coverLetterHtml"`
}

// Interpret parses a generated response into an Output. With a hint the
// analysis text is rebuilt from the structured fields; otherwise the raw
// text is split at the cover letter marker and parsed as-is.
func Interpret(generated string, hint *StructuredHint) Output {
	var matchText, coverText string
	if hint != nil {
		matchText = renderHint(hint)
		coverText = hint.CoverLetter
	} else {
		matchText, coverText = SplitSections(generated)
	}

	return Output{
		RawText:           generated,
		MatchScore:        ExtractScore(matchText),
		MatchAnalysisHTML: FormatMatchAnalysis(matchText),
		Strengths:         ExtractStrengths(matchText),
		Improvements:      ExtractImprovements(matchText),
		CoverLetterHTML:   FormatCoverLetter(coverText),
	}
}

// renderHint lays structured fields back out as labeled text so the same
// extraction and formatting path serves both response shapes.
func renderHint(h *StructuredHint) string {
	var b strings.Builder
	if h.Score != "" {
		b.WriteString("Match Score: ")
		b.WriteString(h.Score)
		b.WriteString("\n\n")
	}
	if h.Reasoning != "" {
		b.WriteString(h.Reasoning)
		b.WriteString("\n\n")
	}
	if len(h.Strengths) > 0 {
		b.WriteString("Strengths:\n")
		for _, s := range h.Strengths {
			b.WriteString("- ")
			b.WriteString(s)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	if len(h.Improvements) > 0 {
		b.WriteString("Improvements:\n")
		for _, s := range h.Improvements {
			b.WriteString("- ")
			b.WriteString(s)
			b.WriteString("\n")
		}
	}
	return b.String()
}

var (
	strengthsHeaderPattern = regexp.MustCompile(`(?i)^(?:\d+[.)]\s*)?(strengths?|strong points?)\b[:\s]*$`)
	sectionHeaderPattern   = regexp.MustCompile(`(?i)^(?:\d+[.)]\s*)?(ways to improve|improvements?|suggestions?|recommendations?|match score|score)\b`)
)

// ExtractStrengths collects bullet lines under a strengths header. Bullets
// belonging to a later section are not included.
func ExtractStrengths(content string) []string {
	content = strings.ReplaceAll(content, "**", "")
	collecting := false
	var out []string
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(headingPattern.ReplaceAllString(line, ""))
		if trimmed == "" {
			continue
		}
		if strengthsHeaderPattern.MatchString(trimmed) {
			collecting = true
			continue
		}
		if sectionHeaderPattern.MatchString(trimmed) {
			collecting = false
			continue
		}
		if collecting && bulletLinePattern.MatchString(trimmed) {
			item := strings.TrimSpace(bulletLinePattern.ReplaceAllString(trimmed, ""))
			if item != "" {
				out = append(out, item)
			}
		}
	}
	return out
}
