package interpret

import (
	"html"
	"regexp"
	"strings"
)

var (
	hrPattern      = regexp.MustCompile(`-{3,}`)
	headingPattern = regexp.MustCompile(`#+\s*`)

	scoreLinePattern        = regexp.MustCompile(`(?i)^(match score|score):`)
	improvementLabelPattern = regexp.MustCompile(`(?i)^(ways to improve|improvements?|suggestions?|recommendations?):`)
	strengthLabelPattern    = regexp.MustCompile(`(?i)^(strengths?|strong points?):`)
	bulletLinePattern       = regexp.MustCompile(`^\s*[-*]\s+`)

	percentToken = regexp.MustCompile(`(\d+)%`)
	// Quoted phrases, matched after HTML escaping turns " into &#34;.
	quotedPhrase = regexp.MustCompile(`&#34;([^&]+?)&#34;`)
)

// FormatMatchAnalysis turns raw match-analysis text into display-safe HTML.
// Markdown artifacts are stripped, bullet runs become list blocks, section
// labels become labeled blocks, and score label lines are dropped entirely:
// the numeric score is surfaced only through ExtractScore. All source text
// is HTML-escaped before markup is injected.
func FormatMatchAnalysis(content string) string {
	s := hrPattern.ReplaceAllString(content, "")
	s = headingPattern.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "**", "")

	var b strings.Builder
	listOpen := false
	sectionOpen := false

	closeList := func() {
		if listOpen {
			b.WriteString("</ul>")
			listOpen = false
		}
	}
	closeSection := func() {
		closeList()
		if sectionOpen {
			b.WriteString("</div>")
			sectionOpen = false
		}
	}

	for _, line := range strings.Split(s, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			closeList()
			b.WriteString("<br>")
		case scoreLinePattern.MatchString(trimmed):
			continue
		case improvementLabelPattern.MatchString(trimmed):
			closeSection()
			b.WriteString(`<div class="improvement-section"><h6 class="improvement-header">`)
			b.WriteString(inline(trimmed))
			b.WriteString(`</h6>`)
			sectionOpen = true
		case strengthLabelPattern.MatchString(trimmed):
			closeSection()
			b.WriteString(`<div class="strength-section"><h6 class="strength-header">`)
			b.WriteString(inline(trimmed))
			b.WriteString(`</h6>`)
			sectionOpen = true
		case bulletLinePattern.MatchString(line):
			if !listOpen {
				b.WriteString(`<ul class="improvement-list">`)
				listOpen = true
			}
			item := bulletLinePattern.ReplaceAllString(line, "")
			b.WriteString("<li>")
			b.WriteString(inline(strings.TrimSpace(item)))
			b.WriteString("</li>")
		default:
			closeList()
			b.WriteString(inline(trimmed))
			b.WriteString("<br>")
		}
	}
	closeSection()
	return b.String()
}

// FormatCoverLetter normalizes a cover letter for display: emphasis markers
// are stripped and line breaks converted, nothing else. The letter is
// presented as generated.
func FormatCoverLetter(content string) string {
	if strings.TrimSpace(content) == "" {
		return ""
	}
	s := strings.ReplaceAll(content, "**", "")
	return strings.ReplaceAll(html.EscapeString(s), "\n", "<br>")
}

// inline escapes a text fragment and highlights percentage tokens and
// quoted phrases.
func inline(text string) string {
	esc := html.EscapeString(text)
	esc = quotedPhrase.ReplaceAllString(esc, `<span class="keyword-highlight">&#34;$1&#34;</span>`)
	esc = percentToken.ReplaceAllString(esc, `<span class="badge">$1%</span>`)
	return esc
}
