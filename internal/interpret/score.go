package interpret

import (
	"math"
	"regexp"
	"strconv"
)

var (
	percentPattern = regexp.MustCompile(`(\d+)%`)
	// "MATCH SCORE: 55/100" and similar labeled fractions, with anything
	// non-digit between the label and the value.
	fractionPattern = regexp.MustCompile(`(?i)match score\D*(\d{1,3})\s*/\s*(\d{2,3})`)
)

// ExtractScore locates a match score in generated text. A percentage wins
// over a labeled fraction when both appear. Nil means no score pattern was
// found, which is a valid outcome and not an error: downstream display
// renders an explicit "not available" state instead of a fabricated value.
func ExtractScore(text string) *int {
	if m := percentPattern.FindStringSubmatch(text); m != nil {
		if value, err := strconv.Atoi(m[1]); err == nil {
			return &value
		}
	}
	if m := fractionPattern.FindStringSubmatch(text); m != nil {
		value, err1 := strconv.Atoi(m[1])
		total, err2 := strconv.Atoi(m[2])
		if err1 == nil && err2 == nil && total > 0 {
			scaled := int(math.Round(float64(value) / float64(total) * 100))
			return &scaled
		}
	}
	return nil
}
