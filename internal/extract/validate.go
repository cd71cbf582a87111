package extract

import "strings"

// resumeVocabulary is the fixed keyword set used to score resume-likeness.
var resumeVocabulary = []string{
	"experience", "education", "skills", "work", "project", "university",
	"degree", "certification", "professional", "email", "phone", "summary",
	"objective",
}

// Report describes how much a block of extracted text looks like a resume.
// Confidence is the fraction of the vocabulary found in the text. The report
// is diagnostic only; callers decide whether low confidence matters.
type Report struct {
	IsValid         bool     `json:"isValid"`
	Reason          string   `json:"reason"`
	Confidence      float64  `json:"confidence"`
	WordCount       int      `json:"wordCount"`
	MatchedKeywords []string `json:"matchedKeywords"`
}

// Validate scores text for resume-likeness. It is pure and never fails:
// any input yields a report.
func Validate(text string) Report {
	normalized := normalizeWhitespace(text)
	if len(normalized) < 30 {
		return Report{
			IsValid:         false,
			Reason:          "Text too short",
			MatchedKeywords: []string{},
		}
	}

	words := strings.Fields(normalized)
	lower := strings.ToLower(normalized)

	matched := make([]string, 0, len(resumeVocabulary))
	for _, keyword := range resumeVocabulary {
		if strings.Contains(lower, keyword) {
			matched = append(matched, keyword)
		}
	}

	isValid := len(words) > 10
	reason := "Looks like a resume"
	if !isValid {
		reason = "Not enough words"
	}

	return Report{
		IsValid:         isValid,
		Reason:          reason,
		Confidence:      float64(len(matched)) / float64(len(resumeVocabulary)),
		WordCount:       len(words),
		MatchedKeywords: matched,
	}
}

func normalizeWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
