package interpret

import (
	"regexp"
	"sort"
	"strings"
)

// Category classifies what part of the resume an improvement targets.
type Category string

const (
	CategorySkills     Category = "skills"
	CategoryExperience Category = "experience"
	CategoryKeywords   Category = "keywords"
	CategoryEducation  Category = "education"
	CategoryFormat     Category = "format"
	CategoryGeneral    Category = "general"
)

// Priority ranks how urgent an improvement is.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Improvement is one actionable suggestion mined from generated analysis text.
type Improvement struct {
	Text     string   `json:"text"`
	Category Category `json:"category"`
	Priority Priority `json:"priority"`
}

const (
	minSentenceLen  = 20
	maxSentenceLen  = 200
	maxImprovements = 5
)

var sentencePattern = regexp.MustCompile(`[.!?]+`)

// actionVerbs mark a sentence as an actionable suggestion.
var actionVerbs = []string{
	"add", "include", "mention", "highlight", "emphasize", "strengthen",
	"improve", "enhance", "consider", "suggest", "recommend", "focus",
}

// categoryGroups are checked in order; the first matching group wins.
var categoryGroups = []struct {
	category Category
	keywords []string
}{
	{CategorySkills, []string{"skill", "technical", "programming", "software", "technology"}},
	{CategoryExperience, []string{"experience", "project", "work", "role", "position"}},
	{CategoryKeywords, []string{"keyword", "term", "phrase", "mention", "include"}},
	{CategoryEducation, []string{"education", "degree", "certification", "course", "training"}},
	{CategoryFormat, []string{"format", "structure", "layout", "organize", "section"}},
}

var (
	highPriorityTerms = []string{"important", "critical", "essential", "must"}
	lowPriorityTerms  = []string{"consider", "might", "could"}
)

// ExtractImprovements mines match-analysis text for actionable suggestions:
// sentences of moderate length containing an action verb, categorized and
// prioritized by keyword, sorted by priority (stable within ties) and capped
// at five.
func ExtractImprovements(content string) []Improvement {
	sentences := sentencePattern.Split(content, -1)

	var out []Improvement
	for _, sentence := range sentences {
		trimmed := strings.TrimSpace(sentence)
		lower := strings.ToLower(trimmed)
		if len(lower) <= minSentenceLen || len(lower) >= maxSentenceLen {
			continue
		}
		if !containsAny(lower, actionVerbs) {
			continue
		}

		imp := Improvement{
			Text:     trimmed,
			Category: CategoryGeneral,
			Priority: PriorityMedium,
		}
		for _, group := range categoryGroups {
			if containsAny(lower, group.keywords) {
				imp.Category = group.category
				break
			}
		}
		if containsAny(lower, highPriorityTerms) {
			imp.Priority = PriorityHigh
		} else if containsAny(lower, lowPriorityTerms) {
			imp.Priority = PriorityLow
		}

		out = append(out, imp)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return priorityRank(out[i].Priority) > priorityRank(out[j].Priority)
	})
	if len(out) > maxImprovements {
		out = out[:maxImprovements]
	}
	return out
}

func priorityRank(p Priority) int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	default:
		return 1
	}
}

func containsAny(text string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}
