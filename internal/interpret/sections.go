package interpret

import (
	"regexp"
	"strings"
)

const coverLetterMarker = "cover letter"

// coverMarkerPattern strips the marker itself plus any emphasis, colon or
// whitespace that follows it.
var coverMarkerPattern = regexp.MustCompile(`(?i)^cover letter[*:\s]*`)

// SplitSections divides generated text at the first case-insensitive
// "cover letter" occurrence. Everything before is match analysis; everything
// from the marker on, with the marker stripped, is the cover letter. If the
// marker is absent the whole text is match analysis.
func SplitSections(raw string) (matchAnalysis, coverLetter string) {
	idx := strings.Index(strings.ToLower(raw), coverLetterMarker)
	if idx < 0 {
		return strings.TrimSpace(raw), ""
	}
	matchAnalysis = strings.TrimSpace(raw[:idx])
	coverLetter = strings.TrimSpace(coverMarkerPattern.ReplaceAllString(raw[idx:], ""))
	return matchAnalysis, coverLetter
}
